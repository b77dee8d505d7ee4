package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
)

// CompanyID represents a company identifier type for compile-time safety.
type CompanyID string

// String returns the string representation of a CompanyID.
func (id CompanyID) String() string {
	return string(id)
}

// Company represents a company operating one or more trackers.
//
// WebsiteURL and Description are nullable and carry no shape validation
// beyond being strings. Whether null or non-URL values should be rejected is
// an unresolved product question; the permissive contract is intentional.
type Company struct {
	Name        string  `json:"name" yaml:"name"`                         // Display name
	WebsiteURL  *string `json:"websiteUrl" yaml:"websiteUrl"`             // Company website, null when unknown
	Description *string `json:"description" yaml:"description"`           // Short description, null when unknown
	Source      string  `json:"source,omitempty" yaml:"source,omitempty"` // Provenance tag, set on override records
}

// companyFields is the closed field set of a company record.
var companyFields = []string{"name", "websiteUrl", "description", "source"}

// UnmarshalJSON decodes a company record, rejecting unknown fields and
// enforcing the required field set.
func (c *Company) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data)
	if err != nil {
		return err
	}
	if err := checkFields(fields, companyFields...); err != nil {
		return err
	}

	if c.Name, err = stringField(fields, "name"); err != nil {
		return err
	}
	if c.WebsiteURL, err = nullableStringField(fields, "websiteUrl"); err != nil {
		return err
	}
	if c.Description, err = nullableStringField(fields, "description"); err != nil {
		return err
	}
	if c.Source, err = optionalStringField(fields, "source"); err != nil {
		return err
	}
	return nil
}

// Clone returns a copy of the company with its own pointer fields.
func (c *Company) Clone() *Company {
	if c == nil {
		return nil
	}
	clone := *c
	if c.WebsiteURL != nil {
		v := *c.WebsiteURL
		clone.WebsiteURL = &v
	}
	if c.Description != nil {
		v := *c.Description
		clone.Description = &v
	}
	return &clone
}

// Companies maps company IDs to company records.
type Companies map[CompanyID]*Company

// UnmarshalJSON decodes a companies collection, validating every record.
func (c *Companies) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data)
	if err != nil {
		return err
	}
	out := make(Companies, len(fields))
	for id, raw := range fields {
		company := &Company{}
		if err := json.Unmarshal(raw, company); err != nil {
			return fmt.Errorf("company %q: %w", id, err)
		}
		out[CompanyID(id)] = company
	}
	*c = out
	return nil
}

// MarshalJSON encodes the collection as a JSON object with company IDs in
// ascending lexicographic order.
func (c Companies) MarshalJSON() ([]byte, error) {
	ids := c.SortedIDs()
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = string(id)
	}
	return marshalOrdered(keys, func(key string) any {
		return c[CompanyID(key)]
	})
}

// SortedIDs returns all company IDs in ascending lexicographic order.
func (c Companies) SortedIDs() []CompanyID {
	ids := make([]CompanyID, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Clone returns a deep copy of the collection.
// Returns nil if the input map is nil.
func (c Companies) Clone() Companies {
	if c == nil {
		return nil
	}
	out := make(Companies, len(c))
	for id, company := range c {
		out[id] = company.Clone()
	}
	return out
}

// Exists checks if a company exists without returning it.
func (c Companies) Exists(id CompanyID) bool {
	_, ok := c[id]
	return ok
}
