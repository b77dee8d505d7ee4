// Package export derives flat publication artifacts from merged collections.
package export

import (
	"strconv"
	"strings"

	"github.com/zhelvis/companiesdb/pkg/catalog"
	"github.com/zhelvis/companiesdb/pkg/constants"
	"github.com/zhelvis/companiesdb/pkg/errors"
)

// CSV renders the merged domain bindings as a flat domain;tracker_id;category_id
// table, rows in the same order the bindings serialize to JSON. A binding
// whose tracker has no category produces no row, only a warning. A binding to
// an unknown tracker is an error; the tracker set is re-checked here even
// though domain validation runs earlier in the pipeline.
//
// Fields are joined with a bare separator, no quoting or escaping. Domain
// names, tracker IDs and category IDs never contain the separator.
func CSV(trackers catalog.Trackers, domains catalog.Domains) (string, []catalog.Warning, error) {
	var b strings.Builder
	b.WriteString(constants.CSVHeader)
	b.WriteString("\n")

	var warnings []catalog.Warning
	for _, entry := range domains.SortedEntries() {
		tracker, ok := trackers[entry.Tracker]
		if !ok {
			return "", warnings, errors.NewIntegrityError("domain", entry.Domain, "tracker", entry.Tracker.String())
		}
		if tracker.CategoryID == nil {
			warnings = append(warnings, catalog.Warning{
				Resource: "domain",
				ID:       entry.Domain,
				Message:  "tracker has no categoryId, row skipped",
			})
			continue
		}
		b.WriteString(entry.Domain)
		b.WriteString(constants.CSVSeparator)
		b.WriteString(entry.Tracker.String())
		b.WriteString(constants.CSVSeparator)
		b.WriteString(strconv.Itoa(*tracker.CategoryID))
		b.WriteString("\n")
	}
	return b.String(), warnings, nil
}
