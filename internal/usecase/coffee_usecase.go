// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"coffeeshop/internal/domain/entity"
)

// CoffeeUsecase defines the coffee inventory operations.
// Each operation maps to a single document store call.
type CoffeeUsecase interface {
	ListCoffees(ctx context.Context) ([]*entity.Coffee, error)
	// GetCoffee returns nil without error when no coffee has the id.
	GetCoffee(ctx context.Context, id string) (*entity.Coffee, error)
	CreateCoffee(ctx context.Context, coffee *entity.Coffee) (*entity.InsertResult, error)
	// UpdateCoffee sets the given fields, creating the coffee when the id does not exist yet.
	UpdateCoffee(ctx context.Context, id string, fields entity.Document) (*entity.UpdateResult, error)
	DeleteCoffee(ctx context.Context, id string) (*entity.DeleteResult, error)
	// GenerateCoffeeQR returns a PNG QR code linking to an existing coffee.
	GenerateCoffeeQR(ctx context.Context, id string) ([]byte, error)
}
