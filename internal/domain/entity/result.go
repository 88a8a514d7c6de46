package entity

// InsertResult reports the key of a newly inserted document.
type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

// UpdateResult reports the effect of an update, mirroring the store's counters.
type UpdateResult struct {
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedCount int64  `json:"upsertedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

// DeleteResult reports how many documents were removed.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// UserDeletionResult is the outcome of removing a user record together with its
// identity provider account. DeletedCount is always the store's count; Identity
// describes what happened upstream.
type UserDeletionResult struct {
	DeletedCount int64                    `json:"deletedCount"`
	Identity     *IdentityDeletionOutcome `json:"identity"`
}

// Partial reports whether the user record was removed but the identity
// provider account may still exist.
func (r *UserDeletionResult) Partial() bool {
	if r == nil || r.Identity == nil || r.DeletedCount == 0 {
		return false
	}

	return r.Identity.Status == IdentityOutcomeFailed || r.Identity.Status == IdentityOutcomeRetryScheduled
}
