package entity

// Document holds application-defined fields exactly as the client supplied them.
// Values are whatever a JSON or BSON decoder produces: strings, numbers, booleans,
// nested maps and slices.
type Document map[string]any

// FieldKey is the store key of every document. Clients cannot set it.
const FieldKey = "_id"

// Without returns a copy of d without the given keys.
func (d Document) Without(keys ...string) Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	for _, key := range keys {
		delete(out, key)
	}

	return out
}

// StringField returns the value of key when it is a string.
// ok is false when the key is present with a value of another type.
func (d Document) StringField(key string) (value string, ok bool) {
	raw, present := d[key]
	if !present || raw == nil {
		return "", true
	}

	value, ok = raw.(string)

	return value, ok
}
