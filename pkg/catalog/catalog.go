// Package catalog defines the tracker intelligence data model: companies,
// trackers, tracker categories, tracker domains, and VPN services. It provides
// strict schema validation for the JSON documents the datasets are stored in
// and deterministic, order-preserving serialization for the documents the
// build pipeline produces.
//
// All collections are plain maps keyed by stable string identifiers. Input
// order is never meaningful; output order is fixed by each collection's
// MarshalJSON: companies, trackers, and categories sort ascending by key,
// tracker domains sort ascending by the referenced tracker ID.
package catalog

// OverrideSource is the provenance tag stamped on company and tracker records
// that originate from the first-party override dataset.
const OverrideSource = "companiesdb"

// Warning describes a non-fatal issue found while building a dataset, such as
// a tracker without a company reference.
type Warning struct {
	Resource string `json:"resource" yaml:"resource"` // kind of the affected record, e.g. "tracker"
	ID       string `json:"id" yaml:"id"`             // identifier of the affected record
	Message  string `json:"message" yaml:"message"`   // human-readable description
}
