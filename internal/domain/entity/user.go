package entity

import "encoding/json"

const (
	// UserFieldEmail is the alternate lookup key used by sign-in updates.
	UserFieldEmail = "email"
	// UserFieldUID links a record to an identity provider account.
	UserFieldUID = "uid"
	// UserFieldLastSignInTime is the only field written by sign-in updates.
	UserFieldLastSignInTime = "lastSignInTime"
)

// User is an account record of the shop.
// Email and UID are the only fields the core reads; UID may be empty.
type User struct {
	ID     string   // Store key, a hex encoded ObjectID.
	Email  string   // Alternate lookup key for sign-in updates.
	UID    string   // Identity provider account ID.
	Fields Document // name, photo, createdAt, lastSignInTime and anything else.
}

// MarshalJSON flattens the fields next to the key, email and uid.
func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(u.Fields)+3)
	for k, v := range u.Fields {
		out[k] = v
	}
	out[FieldKey] = u.ID
	if u.Email != "" {
		out[UserFieldEmail] = u.Email
	}
	if u.UID != "" {
		out[UserFieldUID] = u.UID
	}

	return json.Marshal(out)
}
