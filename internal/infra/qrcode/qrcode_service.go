package qrcode

import (
	"net/url"
	"strings"

	"coffeeshop/config"
	"coffeeshop/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates the coffee page QR code generator
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	var qrCfg config.QRCodeConfig
	if cfg != nil && cfg.QRCode != nil {
		qrCfg = *cfg.QRCode
	}

	size := qrCfg.Size
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(qrCfg.ErrorCorrectionLevel),
		baseURL:              strings.TrimRight(qrCfg.BaseURL, "/"),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateCoffeeQR renders a PNG QR code that links to the coffee's page
func (s *qrcodeService) GenerateCoffeeQR(coffeeID string) ([]byte, error) {
	if coffeeID == "" {
		return nil, errors.New("coffee ID is required")
	}

	qrCode, err := qrcode.New(s.coffeeURL(coffeeID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// coffeeURL is relative when no base URL is configured.
func (s *qrcodeService) coffeeURL(coffeeID string) string {
	return s.baseURL + "/coffees/" + url.PathEscape(coffeeID)
}
