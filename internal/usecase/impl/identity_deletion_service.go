package impl

import (
	"context"
	"log/slog"
	"time"

	"coffeeshop/config"
	deliverycontext "coffeeshop/internal/delivery/context"
	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/repository"
	"coffeeshop/internal/domain/service"
	"coffeeshop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultStaleAfter = 10 * time.Minute

type identityDeletionService struct {
	deletionRepo     repository.IdentityDeletionRepository
	userRepo         repository.UserRepository
	identityProvider service.IdentityProvider
	metrics          service.MetricsRecorder
	maxAttempts      int
	staleAfter       time.Duration
	now              func() time.Time
	logger           *slog.Logger
}

// IdentityDeletionServiceParams holds dependencies for IdentityDeletionService, injected by Fx.
type IdentityDeletionServiceParams struct {
	fx.In

	Config           *config.Config
	DeletionRepo     repository.IdentityDeletionRepository
	UserRepo         repository.UserRepository `optional:"true"`
	IdentityProvider service.IdentityProvider `optional:"true"`
	Metrics          service.MetricsRecorder  `optional:"true"`
	Logger           *slog.Logger
}

// NewIdentityDeletionService creates the usecase that retries recorded provider deletions.
func NewIdentityDeletionService(params IdentityDeletionServiceParams) usecase.IdentityDeletionUsecase {
	maxAttempts := 0
	staleAfter := time.Duration(0)
	if params.Config != nil && params.Config.IdentityDeletion != nil {
		maxAttempts = params.Config.IdentityDeletion.MaxAttempts
		staleAfter = params.Config.IdentityDeletion.StaleAfter
	}
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	if staleAfter <= 0 {
		staleAfter = defaultStaleAfter
	}

	return &identityDeletionService{
		deletionRepo:     params.DeletionRepo,
		userRepo:         params.UserRepo,
		identityProvider: params.IdentityProvider,
		metrics:          params.Metrics,
		maxAttempts:      maxAttempts,
		staleAfter:       staleAfter,
		now:              time.Now,
		logger:           params.Logger,
	}
}

func (srv *identityDeletionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Retry re-attempts a recorded provider deletion.
//
// A failed attempt returns the provider error so the caller can redeliver.
// Once the attempt budget is spent ErrRetryLimitReached is returned and the
// intent stays failed for manual follow-up.
func (srv *identityDeletionService) Retry(ctx context.Context, deletionID string) (*entity.IdentityDeletion, error) {
	deletion, err := srv.deletionRepo.FindByID(ctx, deletionID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find identity deletion")
	}

	logger := srv.log(ctx).With(
		slog.String("deletion_id", deletion.ID),
		slog.String("uid", deletion.UID),
		slog.Int("attempts", deletion.Attempts),
	)

	if deletion.Status.IsTerminal() {
		logger.Info("Identity deletion already settled", slog.String("status", string(deletion.Status)))

		return deletion, nil
	}

	if deletion.Attempts >= srv.maxAttempts {
		logger.Warn("Identity deletion retry limit reached")

		return deletion, errors.WithStack(usecase.ErrRetryLimitReached)
	}

	if srv.identityProvider == nil {
		return deletion, domainerrors.ErrIdentityProviderUnavailable.WrapMessage("identity provider is not configured")
	}

	providerErr := srv.identityProvider.DeleteAccount(ctx, deletion.UID)
	deletion.Attempts++

	var outcome entity.IdentityOutcome
	switch {
	case providerErr == nil:
		outcome = entity.IdentityOutcomeDeleted
		deletion.Status = entity.IdentityDeletionCompleted
		deletion.LastError = ""
	case errors.Is(providerErr, service.ErrIdentityAccountNotFound):
		outcome = entity.IdentityOutcomeAlreadyAbsent
		deletion.Status = entity.IdentityDeletionCompleted
		deletion.LastError = ""
	default:
		outcome = entity.IdentityOutcomeFailed
		deletion.Status = entity.IdentityDeletionFailed
		deletion.LastError = providerErr.Error()
	}

	if err := srv.deletionRepo.UpdateStatus(ctx, deletion); err != nil {
		return deletion, errors.Wrap(err, "failed to update identity deletion")
	}

	if srv.metrics != nil {
		srv.metrics.RecordIdentityDeletion(string(outcome))
	}

	if providerErr == nil || outcome == entity.IdentityOutcomeAlreadyAbsent {
		logger.Info("Identity deletion completed on retry", slog.String("outcome", string(outcome)))

		return deletion, nil
	}

	if deletion.Attempts >= srv.maxAttempts {
		logger.Error("Identity deletion gave up", slog.Any("error", providerErr))

		return deletion, errors.Wrap(usecase.ErrRetryLimitReached, providerErr.Error())
	}

	logger.Warn("Identity deletion retry failed", slog.Any("error", providerErr))

	return deletion, errors.Wrap(providerErr, "identity provider deletion failed")
}

// List returns intents in the given status, or every intent
func (srv *identityDeletionService) List(ctx context.Context, status entity.IdentityDeletionStatus) ([]*entity.IdentityDeletion, error) {
	var statuses []entity.IdentityDeletionStatus
	if status != "" {
		statuses = append(statuses, status)
	}

	deletions, err := srv.deletionRepo.FindByStatus(ctx, statuses...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list identity deletions")
	}

	return deletions, nil
}

// RecoverStale resumes intents nobody is driving any more: skipped intents left
// behind while no provider was configured, and pending intents older than the
// stale window whose deletion never reported back.
//
// A stale pending intent whose user record still exists is cancelled, since the
// store deletion never happened. It returns how many intents were handed to Retry.
func (srv *identityDeletionService) RecoverStale(ctx context.Context) (int, error) {
	deletions, err := srv.deletionRepo.FindByStatus(ctx, entity.IdentityDeletionPending, entity.IdentityDeletionSkipped)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list unsettled identity deletions")
	}

	cutoff := srv.now().Add(-srv.staleAfter)
	resumed := 0

	for _, deletion := range deletions {
		logger := srv.log(ctx).With(
			slog.String("deletion_id", deletion.ID),
			slog.String("status", string(deletion.Status)),
		)

		if deletion.Status == entity.IdentityDeletionPending {
			if deletion.UpdatedAt.After(cutoff) {
				continue
			}

			owed, err := srv.recordRemoved(ctx, deletion)
			if err != nil {
				logger.Error("Failed to check user of stale identity deletion", slog.Any("error", err))

				continue
			}
			if !owed {
				logger.Info("Stale identity deletion cancelled, user record still exists")

				continue
			}
		}

		resumed++
		if _, err := srv.Retry(ctx, deletion.ID); err != nil {
			logger.Warn("Recovered identity deletion did not complete", slog.Any("error", err))
		}
	}

	return resumed, nil
}

// recordRemoved reports whether the user behind a pending intent is gone.
// When the record still exists the intent is cancelled.
func (srv *identityDeletionService) recordRemoved(ctx context.Context, deletion *entity.IdentityDeletion) (bool, error) {
	if srv.userRepo == nil {
		return true, nil
	}

	_, err := srv.userRepo.FindByID(ctx, deletion.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	deletion.Status = entity.IdentityDeletionCancelled
	deletion.LastError = "user record still exists"
	if err := srv.deletionRepo.UpdateStatus(ctx, deletion); err != nil {
		return false, errors.Wrap(err, "failed to cancel identity deletion")
	}

	return false, nil
}
