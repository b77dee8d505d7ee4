package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
)

// TrackerID represents a tracker identifier type for compile-time safety.
type TrackerID string

// String returns the string representation of a TrackerID.
func (id TrackerID) String() string {
	return string(id)
}

// Tracker represents a tracking service.
//
// CompanyID is a foreign key into the companies collection, or null meaning
// "unknown, intentionally unset". URL carries the same permissive contract as
// Company.WebsiteURL.
type Tracker struct {
	Name       string     `json:"name" yaml:"name"`                             // Display name
	CategoryID *int       `json:"categoryId,omitempty" yaml:"categoryId,omitempty"` // Tracker category, absent when unclassified
	URL        *string    `json:"url" yaml:"url"`                               // Tracker website, null when unknown
	CompanyID  *CompanyID `json:"companyId" yaml:"companyId"`                   // Operating company, null when unknown
	Source     string     `json:"source,omitempty" yaml:"source,omitempty"`     // Provenance tag, set on override records
}

// trackerFields is the closed field set of a tracker record.
var trackerFields = []string{"name", "categoryId", "url", "companyId", "source"}

// UnmarshalJSON decodes a tracker record, rejecting unknown fields and
// enforcing the required field set.
func (t *Tracker) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data)
	if err != nil {
		return err
	}
	if err := checkFields(fields, trackerFields...); err != nil {
		return err
	}

	if t.Name, err = stringField(fields, "name"); err != nil {
		return err
	}
	if t.CategoryID, err = optionalIntField(fields, "categoryId"); err != nil {
		return err
	}
	if t.URL, err = nullableStringField(fields, "url"); err != nil {
		return err
	}
	companyID, err := nullableStringField(fields, "companyId")
	if err != nil {
		return err
	}
	if companyID != nil {
		id := CompanyID(*companyID)
		t.CompanyID = &id
	} else {
		t.CompanyID = nil
	}
	if t.Source, err = optionalStringField(fields, "source"); err != nil {
		return err
	}
	return nil
}

// Clone returns a copy of the tracker with its own pointer fields.
func (t *Tracker) Clone() *Tracker {
	if t == nil {
		return nil
	}
	clone := *t
	if t.CategoryID != nil {
		v := *t.CategoryID
		clone.CategoryID = &v
	}
	if t.URL != nil {
		v := *t.URL
		clone.URL = &v
	}
	if t.CompanyID != nil {
		v := *t.CompanyID
		clone.CompanyID = &v
	}
	return &clone
}

// Trackers maps tracker IDs to tracker records.
type Trackers map[TrackerID]*Tracker

// UnmarshalJSON decodes a trackers collection, validating every record.
func (t *Trackers) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data)
	if err != nil {
		return err
	}
	out := make(Trackers, len(fields))
	for id, raw := range fields {
		tracker := &Tracker{}
		if err := json.Unmarshal(raw, tracker); err != nil {
			return fmt.Errorf("tracker %q: %w", id, err)
		}
		out[TrackerID(id)] = tracker
	}
	*t = out
	return nil
}

// MarshalJSON encodes the collection as a JSON object with tracker IDs in
// ascending lexicographic order.
func (t Trackers) MarshalJSON() ([]byte, error) {
	ids := t.SortedIDs()
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = string(id)
	}
	return marshalOrdered(keys, func(key string) any {
		return t[TrackerID(key)]
	})
}

// SortedIDs returns all tracker IDs in ascending lexicographic order.
func (t Trackers) SortedIDs() []TrackerID {
	ids := make([]TrackerID, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Clone returns a deep copy of the collection.
// Returns nil if the input map is nil.
func (t Trackers) Clone() Trackers {
	if t == nil {
		return nil
	}
	out := make(Trackers, len(t))
	for id, tracker := range t {
		out[id] = tracker.Clone()
	}
	return out
}

// Exists checks if a tracker exists without returning it.
func (t Trackers) Exists(id TrackerID) bool {
	_, ok := t[id]
	return ok
}
