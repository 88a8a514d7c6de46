package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateCoffeeQR generates a PNG QR code pointing at the coffee's page
	GenerateCoffeeQR(coffeeID string) ([]byte, error)
}
