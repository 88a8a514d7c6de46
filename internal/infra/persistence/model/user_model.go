package model

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserModel is the BSON shape of a document in the 'users' collection.
// The inline map must not repeat the typed keys.
type UserModel struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Email  string             `bson:"email,omitempty"`
	UID    string             `bson:"uid,omitempty"`
	Fields bson.M             `bson:",inline"`
}
