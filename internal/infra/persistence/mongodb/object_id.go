package mongodb

import (
	"coffeeshop/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseObjectID converts a hex key into an ObjectID.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repository.ErrInvalidID
	}

	return oid, nil
}

// hexID renders an inserted or upserted key. Keys the driver did not generate
// are not ObjectIDs and render as empty.
func hexID(v any) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}

	return ""
}
