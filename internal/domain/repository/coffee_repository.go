package repository

import (
	"context"

	"coffeeshop/internal/domain/entity"
)

// CoffeeRepository defines the document operations on the coffees collection.
type CoffeeRepository interface {
	// FindAll returns every coffee document.
	FindAll(ctx context.Context) ([]*entity.Coffee, error)

	// FindByID returns a single coffee or ErrCoffeeNotFound.
	FindByID(ctx context.Context, id string) (*entity.Coffee, error)

	// Insert stores a new coffee and returns its generated key.
	Insert(ctx context.Context, coffee *entity.Coffee) (*entity.InsertResult, error)

	// UpdateFields sets every supplied field on the coffee with the given key,
	// creating the document when upsert is true and no document matches.
	UpdateFields(ctx context.Context, id string, fields entity.Document, upsert bool) (*entity.UpdateResult, error)

	// Delete removes the coffee with the given key. A missing key deletes nothing.
	Delete(ctx context.Context, id string) (*entity.DeleteResult, error)
}
