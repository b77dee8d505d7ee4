package catalog

import (
	"sort"

	"github.com/zhelvis/companiesdb/pkg/errors"
)

// CategoryID represents a tracker category identifier. Category IDs are
// numeric strings on the wire; they sort lexicographically like every other
// collection key.
type CategoryID string

// String returns the string representation of a CategoryID.
func (id CategoryID) String() string {
	return string(id)
}

// Categories maps category IDs to category names.
type Categories map[CategoryID]string

// UnmarshalJSON decodes a categories collection. Every value must be a plain
// string; no further validation is applied to category names.
func (c *Categories) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data)
	if err != nil {
		return err
	}
	out := make(Categories, len(fields))
	for id, raw := range fields {
		name, err := stringValue(raw)
		if err != nil {
			return &errors.ValidationError{Field: id, Value: string(raw), Message: "must be a string"}
		}
		out[CategoryID(id)] = name
	}
	*c = out
	return nil
}

// MarshalJSON encodes the collection as a JSON object with category IDs in
// ascending lexicographic order.
func (c Categories) MarshalJSON() ([]byte, error) {
	ids := c.SortedIDs()
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = string(id)
	}
	return marshalOrdered(keys, func(key string) any {
		return c[CategoryID(key)]
	})
}

// SortedIDs returns all category IDs in ascending lexicographic order.
func (c Categories) SortedIDs() []CategoryID {
	ids := make([]CategoryID, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Clone returns a copy of the collection.
// Returns nil if the input map is nil.
func (c Categories) Clone() Categories {
	if c == nil {
		return nil
	}
	out := make(Categories, len(c))
	for id, name := range c {
		out[id] = name
	}
	return out
}

// Exists checks if a category exists without returning it.
func (c Categories) Exists(id CategoryID) bool {
	_, ok := c[id]
	return ok
}
