// Package entity contains the core business objects of the project.
package entity

import "encoding/json"

// Coffee is a single inventory record of the shop.
// Its fields (name, quantity, supplier, taste, price, details, photo or anything
// else) are application-defined; the core reads none of them.
type Coffee struct {
	ID     string   // Store key, a hex encoded ObjectID.
	Fields Document // Everything else, stored as-is.
}

// NewCoffee builds a coffee from a client document, dropping any client supplied key.
func NewCoffee(doc Document) *Coffee {
	return &Coffee{Fields: doc.Without(FieldKey)}
}

// MarshalJSON flattens the fields next to the key, the way the store returns them.
func (c Coffee) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Fields)+1)
	for k, v := range c.Fields {
		out[k] = v
	}
	out[FieldKey] = c.ID

	return json.Marshal(out)
}
