package mongodb

import (
	"slices"

	"coffeeshop/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
)

// toDocument converts decoded BSON into plain Go values so documents render
// as JSON objects and arrays rather than driver key/value pairs.
func toDocument(m bson.M) entity.Document {
	doc := make(entity.Document, len(m))
	for k, v := range m {
		doc[k] = plainValue(v)
	}

	return doc
}

func plainValue(v any) any {
	switch val := v.(type) {
	case bson.M:
		return map[string]any(toDocument(val))
	case bson.D:
		m := make(map[string]any, len(val))
		for _, e := range val {
			m[e.Key] = plainValue(e.Value)
		}

		return m
	case bson.A:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = plainValue(item)
		}

		return out
	default:
		return v
	}
}

// fromDocument copies a domain document into an inline map without the given keys,
// which are carried by typed model fields.
func fromDocument(doc entity.Document, typed ...string) bson.M {
	if len(doc) == 0 {
		return nil
	}

	return bson.M(doc.Without(append(typed, entity.FieldKey)...))
}

// setOf builds a $set with sorted keys so updates are deterministic.
func setOf(doc entity.Document) bson.D {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		if k != entity.FieldKey {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	set := make(bson.D, 0, len(keys))
	for _, k := range keys {
		set = append(set, bson.E{Key: k, Value: doc[k]})
	}

	return set
}
