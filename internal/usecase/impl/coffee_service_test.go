package impl

import (
	"context"
	"testing"

	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/repository"
	mockRepo "coffeeshop/internal/mocks/repository"
	mockSvc "coffeeshop/internal/mocks/service"
	"coffeeshop/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type coffeeServiceFixtures struct {
	service    usecase.CoffeeUsecase
	coffeeRepo *mockRepo.MockCoffeeRepository
	qrcodeSvc  *mockSvc.MockQRCodeService
}

func createTestCoffeeService(t *testing.T) coffeeServiceFixtures {
	coffeeRepo := mockRepo.NewMockCoffeeRepository(t)
	qrcodeSvc := mockSvc.NewMockQRCodeService(t)

	service := NewCoffeeService(CoffeeServiceParams{
		CoffeeRepo: coffeeRepo,
		QRCodeSvc:  qrcodeSvc,
		Logger:     newDiscardLogger(),
	})

	return coffeeServiceFixtures{
		service:    service,
		coffeeRepo: coffeeRepo,
		qrcodeSvc:  qrcodeSvc,
	}
}

func TestCoffeeService_ListCoffees(t *testing.T) {
	fx := createTestCoffeeService(t)
	ctx := context.Background()

	coffees := []*entity.Coffee{
		{ID: "65f1c2a9e4b0a1b2c3d4e5f6", Fields: entity.Document{"name": "Espresso"}},
		{ID: "65f1c2a9e4b0a1b2c3d4e5f7", Fields: entity.Document{"name": "Latte", "quantity": float64(3)}},
	}
	fx.coffeeRepo.EXPECT().FindAll(ctx).Return(coffees, nil)

	got, err := fx.service.ListCoffees(ctx)
	require.NoError(t, err)
	assert.Equal(t, coffees, got)
}

func TestCoffeeService_ListCoffees_Empty(t *testing.T) {
	fx := createTestCoffeeService(t)
	ctx := context.Background()

	fx.coffeeRepo.EXPECT().FindAll(ctx).Return([]*entity.Coffee{}, nil)

	got, err := fx.service.ListCoffees(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCoffeeService_ListCoffees_StoreError(t *testing.T) {
	fx := createTestCoffeeService(t)
	ctx := context.Background()

	storeErr := errors.New("connection reset")
	fx.coffeeRepo.EXPECT().FindAll(ctx).Return(nil, storeErr)

	_, err := fx.service.ListCoffees(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}

func TestCoffeeService_GetCoffee(t *testing.T) {
	coffee := &entity.Coffee{ID: "65f1c2a9e4b0a1b2c3d4e5f6", Fields: entity.Document{"name": "Mocha"}}

	tests := []struct {
		name     string
		found    *entity.Coffee
		repoErr  error
		want     *entity.Coffee
		wantCode string
	}{
		{name: "found", found: coffee, want: coffee},
		{name: "missing returns nothing", repoErr: repository.ErrCoffeeNotFound},
		{name: "invalid id", repoErr: repository.ErrInvalidID, wantCode: "INVALID_ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCoffeeService(t)
			ctx := context.Background()

			fx.coffeeRepo.EXPECT().FindByID(ctx, coffee.ID).Return(tt.found, tt.repoErr)

			got, err := fx.service.GetCoffee(ctx, coffee.ID)
			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)

				return
			}

			require.Error(t, err)
			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantCode, appErr.ErrorCode())
		})
	}
}

func TestCoffeeService_CreateCoffee(t *testing.T) {
	fx := createTestCoffeeService(t)
	ctx := context.Background()

	coffee := entity.NewCoffee(entity.Document{"name": "Americano", "price": 3.5, "origin": "Brazil"})
	fx.coffeeRepo.EXPECT().Insert(ctx, coffee).Return(&entity.InsertResult{InsertedID: "65f1c2a9e4b0a1b2c3d4e5f6"}, nil)

	result, err := fx.service.CreateCoffee(ctx, coffee)
	require.NoError(t, err)
	assert.Equal(t, "65f1c2a9e4b0a1b2c3d4e5f6", result.InsertedID)
}

func TestCoffeeService_UpdateCoffee_UsesUpsert(t *testing.T) {
	fx := createTestCoffeeService(t)
	ctx := context.Background()

	id := "65f1c2a9e4b0a1b2c3d4e5f6"
	fields := entity.Document{"price": 4.0}
	fx.coffeeRepo.EXPECT().
		UpdateFields(ctx, id, fields, true).
		Return(&entity.UpdateResult{UpsertedCount: 1, UpsertedID: id}, nil)

	result, err := fx.service.UpdateCoffee(ctx, id, fields)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.UpsertedCount)
	assert.Equal(t, id, result.UpsertedID)
}

func TestCoffeeService_UpdateCoffee_InvalidID(t *testing.T) {
	fx := createTestCoffeeService(t)
	ctx := context.Background()

	fields := entity.Document{"name": "Flat White"}
	fx.coffeeRepo.EXPECT().UpdateFields(ctx, "nope", fields, true).Return(nil, repository.ErrInvalidID)

	_, err := fx.service.UpdateCoffee(ctx, "nope", fields)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidID)
}

func TestCoffeeService_DeleteCoffee_Missing(t *testing.T) {
	fx := createTestCoffeeService(t)
	ctx := context.Background()

	id := "65f1c2a9e4b0a1b2c3d4e5f6"
	fx.coffeeRepo.EXPECT().Delete(ctx, id).Return(&entity.DeleteResult{DeletedCount: 0}, nil)

	result, err := fx.service.DeleteCoffee(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.DeletedCount)
}

func TestCoffeeService_GenerateCoffeeQR(t *testing.T) {
	fx := createTestCoffeeService(t)
	ctx := context.Background()

	id := "65f1c2a9e4b0a1b2c3d4e5f6"
	png := []byte{0x89, 'P', 'N', 'G'}
	fx.coffeeRepo.EXPECT().FindByID(ctx, id).Return(&entity.Coffee{ID: id, Fields: entity.Document{"name": "Cortado"}}, nil)
	fx.qrcodeSvc.EXPECT().GenerateCoffeeQR(id).Return(png, nil)

	got, err := fx.service.GenerateCoffeeQR(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestCoffeeService_GenerateCoffeeQR_UnknownCoffee(t *testing.T) {
	fx := createTestCoffeeService(t)
	ctx := context.Background()

	id := "65f1c2a9e4b0a1b2c3d4e5f6"
	fx.coffeeRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrCoffeeNotFound)

	_, err := fx.service.GenerateCoffeeQR(ctx, id)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCoffeeNotFound)
}
