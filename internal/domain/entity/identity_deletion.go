package entity

import "time"

// IdentityDeletionStatus is the state of a recorded provider account deletion.
type IdentityDeletionStatus string

const (
	// IdentityDeletionPending is recorded before the user record is removed.
	IdentityDeletionPending IdentityDeletionStatus = "pending"
	// IdentityDeletionCompleted means the provider account is gone.
	IdentityDeletionCompleted IdentityDeletionStatus = "completed"
	// IdentityDeletionFailed means the last provider call failed; the worker may retry it.
	IdentityDeletionFailed IdentityDeletionStatus = "failed"
	// IdentityDeletionCancelled means the user record was not removed, so nothing is owed upstream.
	IdentityDeletionCancelled IdentityDeletionStatus = "cancelled"
	// IdentityDeletionSkipped means the record was removed while no provider was configured.
	// The account is still owed; a worker with a provider picks it up.
	IdentityDeletionSkipped IdentityDeletionStatus = "skipped"
)

// IsTerminal reports whether no further provider call is needed.
func (s IdentityDeletionStatus) IsTerminal() bool {
	return s == IdentityDeletionCompleted || s == IdentityDeletionCancelled
}

// IdentityDeletion records the intent to remove an identity provider account
// that belonged to a deleted user record.
type IdentityDeletion struct {
	ID        string                 `json:"_id"`
	UserID    string                 `json:"userId"`
	UID       string                 `json:"uid"`
	Status    IdentityDeletionStatus `json:"status"`
	Attempts  int                    `json:"attempts"`
	LastError string                 `json:"lastError,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

// IdentityOutcome describes what happened to the identity provider account
// during a user deletion.
type IdentityOutcome string

const (
	// IdentityOutcomeNotRequested: no user record was removed, so the provider was not called.
	IdentityOutcomeNotRequested IdentityOutcome = "not_requested"
	// IdentityOutcomeNoAccount: the removed record had no uid.
	IdentityOutcomeNoAccount IdentityOutcome = "no_account"
	// IdentityOutcomeSkipped: the record had a uid but no identity provider is configured.
	IdentityOutcomeSkipped IdentityOutcome = "skipped"
	// IdentityOutcomeDeleted: the provider account was deleted.
	IdentityOutcomeDeleted IdentityOutcome = "deleted"
	// IdentityOutcomeAlreadyAbsent: the provider had no such account.
	IdentityOutcomeAlreadyAbsent IdentityOutcome = "already_absent"
	// IdentityOutcomeRetryScheduled: the provider call failed and a retry event was published.
	IdentityOutcomeRetryScheduled IdentityOutcome = "retry_scheduled"
	// IdentityOutcomeFailed: the provider call failed and no retry could be scheduled.
	IdentityOutcomeFailed IdentityOutcome = "failed"
)

// IdentityDeletionOutcome is reported back to the caller of a user deletion.
type IdentityDeletionOutcome struct {
	Status     IdentityOutcome `json:"status"`
	UID        string          `json:"uid,omitempty"`
	DeletionID string          `json:"deletionId,omitempty"`
	Error      string          `json:"error,omitempty"`
}
