package catalog

import "encoding/json"

// CompaniesDocument is the on-disk shape of a companies dataset.
type CompaniesDocument struct {
	TimeUpdated string    `json:"timeUpdated" yaml:"timeUpdated"` // ISO 8601 freshness marker, refreshed on output
	Companies   Companies `json:"companies" yaml:"companies"`     // Company records keyed by ID
}

// companiesDocumentFields is the closed field set of a companies document.
var companiesDocumentFields = []string{"timeUpdated", "companies"}

// UnmarshalJSON decodes a companies document, rejecting unknown fields and
// validating every contained record.
func (d *CompaniesDocument) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data)
	if err != nil {
		return err
	}
	if err := checkFields(fields, companiesDocumentFields...); err != nil {
		return err
	}

	if d.TimeUpdated, err = stringField(fields, "timeUpdated"); err != nil {
		return err
	}
	return unmarshalRequired(fields, "companies", &d.Companies)
}

// TrackersDocument is the on-disk shape of a trackers dataset: the category
// dictionary, the tracker records, and the domain-to-tracker bindings.
type TrackersDocument struct {
	TimeUpdated    string     `json:"timeUpdated" yaml:"timeUpdated"`       // ISO 8601 freshness marker, refreshed on output
	Categories     Categories `json:"categories" yaml:"categories"`         // Category names keyed by numeric-string ID
	Trackers       Trackers   `json:"trackers" yaml:"trackers"`             // Tracker records keyed by ID
	TrackerDomains Domains    `json:"trackerDomains" yaml:"trackerDomains"` // Domain-to-tracker bindings
}

// trackersDocumentFields is the closed field set of a trackers document.
var trackersDocumentFields = []string{"timeUpdated", "categories", "trackers", "trackerDomains"}

// UnmarshalJSON decodes a trackers document, rejecting unknown fields and
// validating every contained record.
func (d *TrackersDocument) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data)
	if err != nil {
		return err
	}
	if err := checkFields(fields, trackersDocumentFields...); err != nil {
		return err
	}

	if d.TimeUpdated, err = stringField(fields, "timeUpdated"); err != nil {
		return err
	}
	if err := unmarshalRequired(fields, "categories", &d.Categories); err != nil {
		return err
	}
	if err := unmarshalRequired(fields, "trackers", &d.Trackers); err != nil {
		return err
	}
	return unmarshalRequired(fields, "trackerDomains", &d.TrackerDomains)
}

// ParseCompanies parses raw bytes as a companies document and validates its
// schema. The returned error names the offending record and field.
func ParseCompanies(data []byte) (*CompaniesDocument, error) {
	doc := &CompaniesDocument{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseTrackers parses raw bytes as a trackers document and validates its
// schema.
func ParseTrackers(data []byte) (*TrackersDocument, error) {
	doc := &TrackersDocument{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseVPNServices parses raw bytes as the VPN services array and validates
// its schema.
func ParseVPNServices(data []byte) (VPNServices, error) {
	var services VPNServices
	if err := json.Unmarshal(data, &services); err != nil {
		return nil, err
	}
	return services, nil
}
