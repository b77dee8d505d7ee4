package merge

import (
	"github.com/zhelvis/companiesdb/pkg/catalog"
	"github.com/zhelvis/companiesdb/pkg/errors"
)

// ValidateTrackers checks every tracker's company reference against the
// merged companies collection. A tracker with a null companyId yields a
// non-fatal warning; a tracker referencing a company that does not exist
// fails with an error naming both IDs. Trackers are visited in sorted ID
// order so the first failure is deterministic for identical inputs.
func ValidateTrackers(trackers catalog.Trackers, companies catalog.Companies) ([]catalog.Warning, error) {
	var warnings []catalog.Warning
	for _, id := range trackers.SortedIDs() {
		tracker := trackers[id]
		if tracker.CompanyID == nil {
			warnings = append(warnings, catalog.Warning{
				Resource: "tracker",
				ID:       id.String(),
				Message:  "tracker missing company, consider adding",
			})
			continue
		}
		if !companies.Exists(*tracker.CompanyID) {
			return warnings, errors.NewIntegrityError("tracker", id.String(), "company", tracker.CompanyID.String())
		}
	}
	return warnings, nil
}

// ValidateDomains checks every domain binding against the merged trackers
// collection. A binding to a tracker ID that does not exist fails with an
// error naming the domain and the dangling ID. Entries are visited in output
// order (tracker ID, then domain) so the first failure is deterministic.
func ValidateDomains(domains catalog.Domains, trackers catalog.Trackers) error {
	for _, entry := range domains.SortedEntries() {
		if !trackers.Exists(entry.Tracker) {
			return errors.NewIntegrityError("domain", entry.Domain, "tracker", entry.Tracker.String())
		}
	}
	return nil
}
