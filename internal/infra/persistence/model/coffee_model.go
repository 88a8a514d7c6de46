// Package model holds the document shapes stored in MongoDB.
package model

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CoffeeModel is the BSON shape of a document in the 'coffees' collection.
// Every field other than the key lives in the inline map, so stored documents
// carry exactly what the client sent.
type CoffeeModel struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Fields bson.M             `bson:",inline"`
}
