// Package merge implements the override-wins merge of two tracker datasets
// and the referential integrity checks that run over the merged result.
//
// Merging is record-level: an override record fully replaces the base record
// at the same key, never combining fields from both. Company and tracker
// records taken from the overrides collection are stamped with
// catalog.OverrideSource so published datasets carry provenance for every
// overridden entry. Inputs are never mutated; merged collections are built
// from cloned records.
package merge

import (
	"github.com/zhelvis/companiesdb/pkg/catalog"
)

// Companies overlays override company records onto base. An override record
// replaces the base record at the same key wholesale and is stamped with
// catalog.OverrideSource, overwriting any source value it carried on input.
// Keys present only in base are retained unchanged.
func Companies(base, overrides catalog.Companies) catalog.Companies {
	merged := make(catalog.Companies, len(base)+len(overrides))
	for id, company := range base {
		merged[id] = company.Clone()
	}
	for id, company := range overrides {
		record := company.Clone()
		record.Source = catalog.OverrideSource
		merged[id] = record
	}
	return merged
}

// Categories overlays override categories onto base, override wins per key.
// Categories carry no source field, so nothing is stamped.
func Categories(base, overrides catalog.Categories) catalog.Categories {
	merged := make(catalog.Categories, len(base)+len(overrides))
	for id, name := range base {
		merged[id] = name
	}
	for id, name := range overrides {
		merged[id] = name
	}
	return merged
}

// Trackers overlays override tracker records onto base, stamping override
// records with catalog.OverrideSource the same way Companies does.
func Trackers(base, overrides catalog.Trackers) catalog.Trackers {
	merged := make(catalog.Trackers, len(base)+len(overrides))
	for id, tracker := range base {
		merged[id] = tracker.Clone()
	}
	for id, tracker := range overrides {
		record := tracker.Clone()
		record.Source = catalog.OverrideSource
		merged[id] = record
	}
	return merged
}

// Domains overlays override domain bindings onto base, override wins per key.
func Domains(base, overrides catalog.Domains) catalog.Domains {
	merged := make(catalog.Domains, len(base)+len(overrides))
	for domain, tracker := range base {
		merged[domain] = tracker
	}
	for domain, tracker := range overrides {
		merged[domain] = tracker
	}
	return merged
}
