package catalog

import (
	"sort"

	"github.com/zhelvis/companiesdb/pkg/errors"
)

// Domains maps domain names to the tracker that operates them.
type Domains map[string]TrackerID

// DomainEntry is a single domain-to-tracker binding in serialization order.
type DomainEntry struct {
	Domain  string
	Tracker TrackerID
}

// UnmarshalJSON decodes a tracker domains collection. Every value must be a
// plain string tracker ID.
func (d *Domains) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data)
	if err != nil {
		return err
	}
	out := make(Domains, len(fields))
	for domain, raw := range fields {
		tracker, err := stringValue(raw)
		if err != nil {
			return &errors.ValidationError{Field: domain, Value: string(raw), Message: "must be a string"}
		}
		out[domain] = TrackerID(tracker)
	}
	*d = out
	return nil
}

// MarshalJSON encodes the collection as a JSON object ordered ascending by
// the referenced tracker ID, not by the domain key. Domains of the same
// tracker are ordered by name so that repeated runs over identical inputs
// serialize identically.
func (d Domains) MarshalJSON() ([]byte, error) {
	entries := d.SortedEntries()
	keys := make([]string, len(entries))
	for i, entry := range entries {
		keys[i] = entry.Domain
	}
	return marshalOrdered(keys, func(key string) any {
		return d[key]
	})
}

// SortedEntries returns all bindings ordered ascending by tracker ID, then by
// domain name.
func (d Domains) SortedEntries() []DomainEntry {
	entries := make([]DomainEntry, 0, len(d))
	for domain, tracker := range d {
		entries = append(entries, DomainEntry{Domain: domain, Tracker: tracker})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Tracker != entries[j].Tracker {
			return entries[i].Tracker < entries[j].Tracker
		}
		return entries[i].Domain < entries[j].Domain
	})
	return entries
}

// Clone returns a copy of the collection.
// Returns nil if the input map is nil.
func (d Domains) Clone() Domains {
	if d == nil {
		return nil
	}
	out := make(Domains, len(d))
	for domain, tracker := range d {
		out[domain] = tracker
	}
	return out
}
