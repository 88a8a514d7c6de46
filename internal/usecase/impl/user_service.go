package impl

import (
	"context"
	"log/slog"

	deliverycontext "coffeeshop/internal/delivery/context"
	"coffeeshop/internal/domain/entity"
	"coffeeshop/internal/domain/lifecycle"
	"coffeeshop/internal/domain/repository"
	"coffeeshop/internal/domain/service"
	"coffeeshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo         repository.UserRepository
	deletionRepo     repository.IdentityDeletionRepository
	identityProvider service.IdentityProvider
	publisher        service.EventPublisher
	metrics          service.MetricsRecorder
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
// IdentityProvider is nil when no provider is configured.
type UserServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	DeletionRepo     repository.IdentityDeletionRepository
	IdentityProvider service.IdentityProvider `optional:"true"`
	Publisher        service.EventPublisher
	Metrics          service.MetricsRecorder `optional:"true"`
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:         params.UserRepo,
		deletionRepo:     params.DeletionRepo,
		identityProvider: params.IdentityProvider,
		publisher:        params.Publisher,
		metrics:          params.Metrics,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns every user
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// CreateUser inserts a new user
func (srv *userService) CreateUser(ctx context.Context, user *entity.User) (*entity.InsertResult, error) {
	result, err := srv.userRepo.Insert(ctx, user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert user")
	}

	srv.log(ctx).Info("User created", slog.String("user_id", result.InsertedID), slog.Bool("has_uid", user.UID != ""))

	return result, nil
}

// UpdateLastSignIn sets lastSignInTime on the user matching the email
func (srv *userService) UpdateLastSignIn(ctx context.Context, input *usecase.SignInUpdate) (*entity.UpdateResult, error) {
	result, err := srv.userRepo.UpdateLastSignInTime(ctx, input.Email, input.LastSignInTime)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update last sign-in time")
	}

	if result.MatchedCount == 0 {
		srv.log(ctx).Debug("No user matched sign-in update", slog.String("email", input.Email))
	}

	return result, nil
}

// DeleteUser removes the user record, then the identity provider account it references.
//
// A pending intent is stored before the record is removed so that a provider failure
// is never lost: the intent ends up completed, cancelled, or failed with a retry event
// published for the identity worker. Without a provider a skipped intent is stored
// instead. The store deletion is never rolled back.
func (srv *userService) DeleteUser(ctx context.Context, id string) (*entity.UserDeletionResult, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Debug("User to delete does not exist", slog.String("user_id", id))

		return srv.complete(&entity.UserDeletionResult{
			Identity: &entity.IdentityDeletionOutcome{Status: entity.IdentityOutcomeNotRequested},
		}), nil
	}
	if err != nil {
		return nil, translateRepoError(err, "failed to find user")
	}

	var intent *entity.IdentityDeletion
	if user.UID != "" && srv.identityProvider != nil {
		intent = &entity.IdentityDeletion{
			UserID: user.ID,
			UID:    user.UID,
			Status: entity.IdentityDeletionPending,
		}
		if err := srv.deletionRepo.Create(ctx, intent); err != nil {
			return nil, errors.Wrap(err, "failed to record identity deletion")
		}
	}

	deleted, err := srv.userRepo.Delete(ctx, id)
	if err != nil {
		srv.closeIntent(context.WithoutCancel(ctx), intent, entity.IdentityDeletionCancelled, err.Error())

		return nil, translateRepoError(err, "failed to delete user")
	}

	// The record is gone; finish the provider step even if the caller goes away.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	result := &entity.UserDeletionResult{DeletedCount: deleted.DeletedCount}

	switch {
	case deleted.DeletedCount != 1:
		srv.closeIntent(ctx, intent, entity.IdentityDeletionCancelled, "user record was already removed")
		result.Identity = &entity.IdentityDeletionOutcome{Status: entity.IdentityOutcomeNotRequested, UID: user.UID}
	case user.UID == "":
		result.Identity = &entity.IdentityDeletionOutcome{Status: entity.IdentityOutcomeNoAccount}
	case srv.identityProvider == nil:
		srv.log(ctx).Warn("Identity provider not configured, account left in place",
			slog.String("user_id", user.ID),
			slog.String("uid", user.UID),
		)
		result.Identity = &entity.IdentityDeletionOutcome{
			Status:     entity.IdentityOutcomeSkipped,
			UID:        user.UID,
			DeletionID: srv.recordSkipped(ctx, user),
		}
	default:
		result.Identity = srv.deleteIdentity(ctx, intent)
	}

	return srv.complete(result), nil
}

// deleteIdentity calls the provider for a recorded intent and stores the result.
func (srv *userService) deleteIdentity(ctx context.Context, intent *entity.IdentityDeletion) *entity.IdentityDeletionOutcome {
	outcome := &entity.IdentityDeletionOutcome{UID: intent.UID, DeletionID: intent.ID}

	err := srv.identityProvider.DeleteAccount(ctx, intent.UID)
	intent.Attempts++

	switch {
	case err == nil:
		outcome.Status = entity.IdentityOutcomeDeleted
		srv.closeIntent(ctx, intent, entity.IdentityDeletionCompleted, "")
	case errors.Is(err, service.ErrIdentityAccountNotFound):
		outcome.Status = entity.IdentityOutcomeAlreadyAbsent
		srv.closeIntent(ctx, intent, entity.IdentityDeletionCompleted, "")
	default:
		srv.log(ctx).Warn("Identity account deletion failed",
			slog.String("deletion_id", intent.ID),
			slog.String("uid", intent.UID),
			slog.Any("error", err),
		)
		outcome.Status = entity.IdentityOutcomeFailed
		outcome.Error = err.Error()
		srv.closeIntent(ctx, intent, entity.IdentityDeletionFailed, err.Error())

		if srv.scheduleRetry(ctx, intent) {
			outcome.Status = entity.IdentityOutcomeRetryScheduled
		}
	}

	return outcome
}

// recordSkipped keeps a durable record of an account that is still owed upstream
// so a worker with a provider can delete it later. It returns the intent key, or
// "" when the record could not be stored.
func (srv *userService) recordSkipped(ctx context.Context, user *entity.User) string {
	intent := &entity.IdentityDeletion{
		UserID: user.ID,
		UID:    user.UID,
		Status: entity.IdentityDeletionSkipped,
	}
	if err := srv.deletionRepo.Create(ctx, intent); err != nil {
		srv.log(ctx).Error("Failed to record skipped identity deletion",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)

		return ""
	}

	return intent.ID
}

// scheduleRetry publishes a retry event for the identity worker.
func (srv *userService) scheduleRetry(ctx context.Context, intent *entity.IdentityDeletion) bool {
	event := &service.IdentityDeletionEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.New().String(),
		DeletionID: intent.ID,
		UserID:     intent.UserID,
		UID:        intent.UID,
	}

	if err := srv.publisher.PublishIdentityDeletionEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to schedule identity deletion retry",
			slog.String("deletion_id", intent.ID),
			slog.Any("error", err),
		)

		return false
	}

	return true
}

// closeIntent stores the new state of an intent. Failures are logged: the intent
// stays in its previous state and remains visible to operators.
func (srv *userService) closeIntent(ctx context.Context, intent *entity.IdentityDeletion, status entity.IdentityDeletionStatus, lastError string) {
	if intent == nil {
		return
	}

	intent.Status = status
	intent.LastError = lastError

	if err := srv.deletionRepo.UpdateStatus(ctx, intent); err != nil {
		srv.log(ctx).Error("Failed to update identity deletion",
			slog.String("deletion_id", intent.ID),
			slog.String("status", string(status)),
			slog.Any("error", err),
		)
	}
}

func (srv *userService) complete(result *entity.UserDeletionResult) *entity.UserDeletionResult {
	if srv.metrics != nil && result.Identity != nil {
		srv.metrics.RecordIdentityDeletion(string(result.Identity.Status))
	}

	return result
}
