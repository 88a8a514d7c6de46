package impl

import (
	"context"
	"log/slog"

	deliverycontext "coffeeshop/internal/delivery/context"
	"coffeeshop/internal/domain/entity"
	"coffeeshop/internal/domain/repository"
	"coffeeshop/internal/domain/service"
	"coffeeshop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// coffeeService implements the CoffeeUsecase interface.
type coffeeService struct {
	coffeeRepo repository.CoffeeRepository
	qrcodeSvc  service.QRCodeService
	logger     *slog.Logger
}

// CoffeeServiceParams holds dependencies for CoffeeService, injected by Fx.
type CoffeeServiceParams struct {
	fx.In

	CoffeeRepo repository.CoffeeRepository
	QRCodeSvc  service.QRCodeService
	Logger     *slog.Logger
}

// NewCoffeeService creates a new coffee service instance
func NewCoffeeService(params CoffeeServiceParams) usecase.CoffeeUsecase {
	return &coffeeService{
		coffeeRepo: params.CoffeeRepo,
		qrcodeSvc:  params.QRCodeSvc,
		logger:     params.Logger,
	}
}

func (srv *coffeeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCoffees returns every coffee
func (srv *coffeeService) ListCoffees(ctx context.Context) ([]*entity.Coffee, error) {
	coffees, err := srv.coffeeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list coffees")
	}

	return coffees, nil
}

// GetCoffee returns a single coffee, or nil when no coffee has the id
func (srv *coffeeService) GetCoffee(ctx context.Context, id string) (*entity.Coffee, error) {
	coffee, err := srv.coffeeRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrCoffeeNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translateRepoError(err, "failed to find coffee")
	}

	return coffee, nil
}

// CreateCoffee inserts a new coffee
func (srv *coffeeService) CreateCoffee(ctx context.Context, coffee *entity.Coffee) (*entity.InsertResult, error) {
	result, err := srv.coffeeRepo.Insert(ctx, coffee)
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert coffee")
	}

	srv.log(ctx).Info("Coffee created", slog.String("coffee_id", result.InsertedID), slog.Int("fields", len(coffee.Fields)))

	return result, nil
}

// UpdateCoffee sets the supplied fields with upsert enabled
func (srv *coffeeService) UpdateCoffee(ctx context.Context, id string, fields entity.Document) (*entity.UpdateResult, error) {
	result, err := srv.coffeeRepo.UpdateFields(ctx, id, fields, true)
	if err != nil {
		return nil, translateRepoError(err, "failed to update coffee")
	}

	if result.UpsertedCount > 0 {
		srv.log(ctx).Info("Coffee created by upsert", slog.String("coffee_id", result.UpsertedID))
	}

	return result, nil
}

// DeleteCoffee removes a coffee; deleting a missing coffee reports zero
func (srv *coffeeService) DeleteCoffee(ctx context.Context, id string) (*entity.DeleteResult, error) {
	result, err := srv.coffeeRepo.Delete(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to delete coffee")
	}

	srv.log(ctx).Debug("Coffee delete executed", slog.String("coffee_id", id), slog.Int64("deleted_count", result.DeletedCount))

	return result, nil
}

// GenerateCoffeeQR renders a QR code for an existing coffee
func (srv *coffeeService) GenerateCoffeeQR(ctx context.Context, id string) ([]byte, error) {
	coffee, err := srv.coffeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to find coffee")
	}

	png, err := srv.qrcodeSvc.GenerateCoffeeQR(coffee.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate coffee QR code")
	}

	return png, nil
}
