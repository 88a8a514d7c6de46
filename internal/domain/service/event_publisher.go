package service

import (
	"context"
)

// IdentityDeletionEvent asks the identity worker to retry a provider account deletion
type IdentityDeletionEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	EventID    string `json:"event_id"`
	DeletionID string `json:"deletion_id"`
	UserID     string `json:"user_id"`
	UID        string `json:"uid"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishIdentityDeletionEvent publishes a retry request for async processing
	PublishIdentityDeletionEvent(ctx context.Context, event *IdentityDeletionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
