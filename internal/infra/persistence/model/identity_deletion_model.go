package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IdentityDeletionModel is the BSON shape of a document in the 'identity_deletions' collection.
type IdentityDeletionModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"userId"`
	UID       string             `bson:"uid"`
	Status    string             `bson:"status"`
	Attempts  int                `bson:"attempts"`
	LastError string             `bson:"lastError,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}
