package impl

import (
	"context"
	"testing"

	deliverycontext "coffeeshop/internal/delivery/context"
	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/repository"
	"coffeeshop/internal/domain/service"
	mockRepo "coffeeshop/internal/mocks/repository"
	mockSvc "coffeeshop/internal/mocks/service"
	"coffeeshop/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testUserID     = "65f1c2a9e4b0a1b2c3d4e5f6"
	testUID        = "fb123"
	testDeletionID = "65f1c2a9e4b0a1b2c3d4e5ff"
)

type userServiceFixtures struct {
	service          usecase.UserUsecase
	userRepo         *mockRepo.MockUserRepository
	deletionRepo     *mockRepo.MockIdentityDeletionRepository
	identityProvider *mockSvc.MockIdentityProvider
	publisher        *mockSvc.MockEventPublisher
	metrics          *mockSvc.MockMetricsRecorder
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	deletionRepo := mockRepo.NewMockIdentityDeletionRepository(t)
	identityProvider := mockSvc.NewMockIdentityProvider(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)

	service := NewUserService(UserServiceParams{
		UserRepo:         userRepo,
		DeletionRepo:     deletionRepo,
		IdentityProvider: identityProvider,
		Publisher:        publisher,
		Metrics:          metrics,
		Logger:           newDiscardLogger(),
	})

	return userServiceFixtures{
		service:          service,
		userRepo:         userRepo,
		deletionRepo:     deletionRepo,
		identityProvider: identityProvider,
		publisher:        publisher,
		metrics:          metrics,
	}
}

// createTestUserServiceWithoutProvider builds the service the way the container
// does when no identity provider is configured.
func createTestUserServiceWithoutProvider(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	deletionRepo := mockRepo.NewMockIdentityDeletionRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		DeletionRepo: deletionRepo,
		Publisher:    publisher,
		Metrics:      metrics,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		deletionRepo: deletionRepo,
		publisher:    publisher,
		metrics:      metrics,
	}
}

func linkedUser() *entity.User {
	return &entity.User{ID: testUserID, Email: "ada@example.com", UID: testUID, Fields: entity.Document{"name": "Ada"}}
}

// expectIntentCreated assigns the intent its key the way the store does.
func (fx userServiceFixtures) expectIntentCreated(calls *[]string) {
	fx.deletionRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(d *entity.IdentityDeletion) bool {
			return d.UID == testUID && d.UserID == testUserID && d.Status == entity.IdentityDeletionPending && d.Attempts == 0
		})).
		Run(func(_ context.Context, d *entity.IdentityDeletion) {
			d.ID = testDeletionID
			*calls = append(*calls, "intent")
		}).
		Return(nil)
}

func TestUserService_ListUsers(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	users := []*entity.User{linkedUser()}
	fx.userRepo.EXPECT().FindAll(ctx).Return(users, nil)

	got, err := fx.service.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestUserService_CreateUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{Email: "grace@example.com", UID: "fb456", Fields: entity.Document{"name": "Grace", "age": float64(36)}}
	fx.userRepo.EXPECT().Insert(ctx, user).Return(&entity.InsertResult{InsertedID: testUserID}, nil)

	result, err := fx.service.CreateUser(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, testUserID, result.InsertedID)
}

func TestUserService_UpdateLastSignIn(t *testing.T) {
	tests := []struct {
		name    string
		matched int64
	}{
		{name: "matching email", matched: 1},
		{name: "unknown email", matched: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			ctx := context.Background()

			input := &usecase.SignInUpdate{Email: "ada@example.com", LastSignInTime: "Mon, 01 Jan 2024 10:00:00 GMT"}
			fx.userRepo.EXPECT().
				UpdateLastSignInTime(ctx, input.Email, input.LastSignInTime).
				Return(&entity.UpdateResult{MatchedCount: tt.matched, ModifiedCount: tt.matched}, nil)

			result, err := fx.service.UpdateLastSignIn(ctx, input)
			require.NoError(t, err)
			assert.Equal(t, tt.matched, result.MatchedCount)
		})
	}
}

func TestUserService_DeleteUser_RemovesRecordThenAccount(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	var calls []string

	fx.userRepo.EXPECT().FindByID(mock.Anything, testUserID).
		Run(func(context.Context, string) { calls = append(calls, "find") }).
		Return(linkedUser(), nil)
	fx.expectIntentCreated(&calls)
	fx.userRepo.EXPECT().Delete(mock.Anything, testUserID).
		Run(func(context.Context, string) { calls = append(calls, "delete") }).
		Return(&entity.DeleteResult{DeletedCount: 1}, nil)
	fx.identityProvider.EXPECT().DeleteAccount(mock.Anything, testUID).
		Run(func(context.Context, string) { calls = append(calls, "provider") }).
		Return(nil)
	fx.deletionRepo.EXPECT().
		UpdateStatus(mock.Anything, mock.MatchedBy(func(d *entity.IdentityDeletion) bool {
			return d.ID == testDeletionID && d.Status == entity.IdentityDeletionCompleted && d.Attempts == 1
		})).
		Run(func(context.Context, *entity.IdentityDeletion) { calls = append(calls, "complete") }).
		Return(nil)
	fx.metrics.EXPECT().RecordIdentityDeletion("deleted").Return()

	result, err := fx.service.DeleteUser(ctx, testUserID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.DeletedCount)
	assert.Equal(t, entity.IdentityOutcomeDeleted, result.Identity.Status)
	assert.Equal(t, testUID, result.Identity.UID)
	assert.Equal(t, testDeletionID, result.Identity.DeletionID)
	assert.False(t, result.Partial())
	assert.Equal(t, []string{"find", "intent", "delete", "provider", "complete"}, calls)
}

func TestUserService_DeleteUser_AccountAlreadyAbsent(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	var calls []string

	fx.userRepo.EXPECT().FindByID(mock.Anything, testUserID).Return(linkedUser(), nil)
	fx.expectIntentCreated(&calls)
	fx.userRepo.EXPECT().Delete(mock.Anything, testUserID).Return(&entity.DeleteResult{DeletedCount: 1}, nil)
	fx.identityProvider.EXPECT().DeleteAccount(mock.Anything, testUID).
		Return(errors.Wrap(service.ErrIdentityAccountNotFound, "firebase"))
	fx.deletionRepo.EXPECT().
		UpdateStatus(mock.Anything, mock.MatchedBy(func(d *entity.IdentityDeletion) bool {
			return d.Status == entity.IdentityDeletionCompleted
		})).
		Return(nil)
	fx.metrics.EXPECT().RecordIdentityDeletion("already_absent").Return()

	result, err := fx.service.DeleteUser(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.DeletedCount)
	assert.Equal(t, entity.IdentityOutcomeAlreadyAbsent, result.Identity.Status)
}

func TestUserService_DeleteUser_ProviderFailureSchedulesRetry(t *testing.T) {
	fx := createTestUserService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	var calls []string

	providerErr := errors.New("identity provider timeout")

	fx.userRepo.EXPECT().FindByID(mock.Anything, testUserID).Return(linkedUser(), nil)
	fx.expectIntentCreated(&calls)
	fx.userRepo.EXPECT().Delete(mock.Anything, testUserID).Return(&entity.DeleteResult{DeletedCount: 1}, nil)
	fx.identityProvider.EXPECT().DeleteAccount(mock.Anything, testUID).Return(providerErr)
	fx.deletionRepo.EXPECT().
		UpdateStatus(mock.Anything, mock.MatchedBy(func(d *entity.IdentityDeletion) bool {
			return d.Status == entity.IdentityDeletionFailed && d.Attempts == 1 && d.LastError == providerErr.Error()
		})).
		Return(nil)
	fx.publisher.EXPECT().
		PublishIdentityDeletionEvent(mock.Anything, mock.MatchedBy(func(e *service.IdentityDeletionEvent) bool {
			return e.DeletionID == testDeletionID &&
				e.UserID == testUserID &&
				e.UID == testUID &&
				e.RequestID == "req-42" &&
				e.EventID != ""
		})).
		Return(nil)
	fx.metrics.EXPECT().RecordIdentityDeletion("retry_scheduled").Return()

	result, err := fx.service.DeleteUser(ctx, testUserID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.DeletedCount)
	assert.Equal(t, entity.IdentityOutcomeRetryScheduled, result.Identity.Status)
	assert.Equal(t, providerErr.Error(), result.Identity.Error)
	assert.True(t, result.Partial())
}

func TestUserService_DeleteUser_ProviderFailureWithoutRetry(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	var calls []string

	fx.userRepo.EXPECT().FindByID(mock.Anything, testUserID).Return(linkedUser(), nil)
	fx.expectIntentCreated(&calls)
	fx.userRepo.EXPECT().Delete(mock.Anything, testUserID).Return(&entity.DeleteResult{DeletedCount: 1}, nil)
	fx.identityProvider.EXPECT().DeleteAccount(mock.Anything, testUID).Return(errors.New("quota exceeded"))
	fx.deletionRepo.EXPECT().UpdateStatus(mock.Anything, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishIdentityDeletionEvent(mock.Anything, mock.Anything).Return(errors.New("topic not found"))
	fx.metrics.EXPECT().RecordIdentityDeletion("failed").Return()

	result, err := fx.service.DeleteUser(ctx, testUserID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.DeletedCount)
	assert.Equal(t, entity.IdentityOutcomeFailed, result.Identity.Status)
	assert.Equal(t, "quota exceeded", result.Identity.Error)
	assert.True(t, result.Partial())
}

func TestUserService_DeleteUser_CancelledRequestStillFinishes(t *testing.T) {
	fx := createTestUserService(t)
	ctx, cancel := context.WithCancel(context.Background())
	var calls []string

	fx.userRepo.EXPECT().FindByID(mock.Anything, testUserID).Return(linkedUser(), nil)
	fx.expectIntentCreated(&calls)
	fx.userRepo.EXPECT().Delete(mock.Anything, testUserID).
		Run(func(context.Context, string) { cancel() }).
		Return(&entity.DeleteResult{DeletedCount: 1}, nil)
	fx.identityProvider.EXPECT().
		DeleteAccount(mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil }), testUID).
		Return(nil)
	fx.deletionRepo.EXPECT().UpdateStatus(mock.Anything, mock.Anything).Return(nil)
	fx.metrics.EXPECT().RecordIdentityDeletion("deleted").Return()

	result, err := fx.service.DeleteUser(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, entity.IdentityOutcomeDeleted, result.Identity.Status)
}

func TestUserService_DeleteUser_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, testUserID).Return(nil, repository.ErrUserNotFound)
	fx.metrics.EXPECT().RecordIdentityDeletion("not_requested").Return()

	result, err := fx.service.DeleteUser(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.DeletedCount)
	assert.Equal(t, entity.IdentityOutcomeNotRequested, result.Identity.Status)
	assert.False(t, result.Partial())
}

func TestUserService_DeleteUser_InvalidID(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, "not-an-id").Return(nil, repository.ErrInvalidID)

	_, err := fx.service.DeleteUser(ctx, "not-an-id")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidID)
}

func TestUserService_DeleteUser_NoLinkedAccount(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, testUserID).Return(&entity.User{ID: testUserID, Email: "anon@example.com"}, nil)
	fx.userRepo.EXPECT().Delete(mock.Anything, testUserID).Return(&entity.DeleteResult{DeletedCount: 1}, nil)
	fx.metrics.EXPECT().RecordIdentityDeletion("no_account").Return()

	result, err := fx.service.DeleteUser(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.DeletedCount)
	assert.Equal(t, entity.IdentityOutcomeNoAccount, result.Identity.Status)
}

func TestUserService_DeleteUser_ProviderNotConfigured(t *testing.T) {
	fx := createTestUserServiceWithoutProvider(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, testUserID).Return(linkedUser(), nil)
	fx.userRepo.EXPECT().Delete(mock.Anything, testUserID).Return(&entity.DeleteResult{DeletedCount: 1}, nil)
	fx.deletionRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(d *entity.IdentityDeletion) bool {
			return d.UID == testUID && d.UserID == testUserID && d.Status == entity.IdentityDeletionSkipped
		})).
		Run(func(_ context.Context, d *entity.IdentityDeletion) {
			d.ID = testDeletionID
		}).
		Return(nil)
	fx.metrics.EXPECT().RecordIdentityDeletion("skipped").Return()

	result, err := fx.service.DeleteUser(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.DeletedCount)
	assert.Equal(t, entity.IdentityOutcomeSkipped, result.Identity.Status)
	assert.Equal(t, testUID, result.Identity.UID)
	assert.Equal(t, testDeletionID, result.Identity.DeletionID)
}

func TestUserService_DeleteUser_ProviderNotConfiguredRecordFails(t *testing.T) {
	fx := createTestUserServiceWithoutProvider(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, testUserID).Return(linkedUser(), nil)
	fx.userRepo.EXPECT().Delete(mock.Anything, testUserID).Return(&entity.DeleteResult{DeletedCount: 1}, nil)
	fx.deletionRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("write concern timeout"))
	fx.metrics.EXPECT().RecordIdentityDeletion("skipped").Return()

	result, err := fx.service.DeleteUser(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, entity.IdentityOutcomeSkipped, result.Identity.Status)
	assert.Empty(t, result.Identity.DeletionID)
}

func TestUserService_DeleteUser_RecordVanishedBeforeDelete(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	var calls []string

	fx.userRepo.EXPECT().FindByID(mock.Anything, testUserID).Return(linkedUser(), nil)
	fx.expectIntentCreated(&calls)
	fx.userRepo.EXPECT().Delete(mock.Anything, testUserID).Return(&entity.DeleteResult{DeletedCount: 0}, nil)
	fx.deletionRepo.EXPECT().
		UpdateStatus(mock.Anything, mock.MatchedBy(func(d *entity.IdentityDeletion) bool {
			return d.Status == entity.IdentityDeletionCancelled && d.Attempts == 0
		})).
		Return(nil)
	fx.metrics.EXPECT().RecordIdentityDeletion("not_requested").Return()

	result, err := fx.service.DeleteUser(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.DeletedCount)
	assert.Equal(t, entity.IdentityOutcomeNotRequested, result.Identity.Status)
}

func TestUserService_DeleteUser_StoreDeleteFails(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	var calls []string

	storeErr := errors.New("not primary")

	fx.userRepo.EXPECT().FindByID(mock.Anything, testUserID).Return(linkedUser(), nil)
	fx.expectIntentCreated(&calls)
	fx.userRepo.EXPECT().Delete(mock.Anything, testUserID).Return(nil, storeErr)
	fx.deletionRepo.EXPECT().
		UpdateStatus(mock.Anything, mock.MatchedBy(func(d *entity.IdentityDeletion) bool {
			return d.Status == entity.IdentityDeletionCancelled && d.LastError == storeErr.Error()
		})).
		Return(nil)

	result, err := fx.service.DeleteUser(ctx, testUserID)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, storeErr)
}

func TestUserService_DeleteUser_IntentNotRecorded(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, testUserID).Return(linkedUser(), nil)
	fx.deletionRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("write concern timeout"))

	_, err := fx.service.DeleteUser(ctx, testUserID)
	require.Error(t, err)
	fx.userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
