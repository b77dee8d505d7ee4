package companiesdb

import (
	"fmt"
	"strings"

	"github.com/zhelvis/companiesdb/pkg/catalog"
)

// Result summarizes one dataset build.
type Result struct {
	// Dataset statistics after merging.
	TimeUpdated    string // run timestamp shared by every output that carries one
	Companies      int    // merged company records
	Trackers       int    // merged tracker records
	Categories     int    // merged categories
	TrackerDomains int    // merged domain bindings
	VPNServices    int    // VPN service records passed through
	CSVRows        int    // data rows in the derived CSV, header excluded

	// Warnings collected while validating and deriving, in detection order.
	Warnings []catalog.Warning

	// Operation metadata.
	DryRun bool              // whether outputs were written
	Files  []string          // output paths in write order
	Diffs  map[string]string // path to unified diff of pending changes, dry runs only
}

// HasWarnings returns true if the build produced any warnings.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Summary returns a human-readable summary of the build.
func (r *Result) Summary() string {
	summary := fmt.Sprintf("%d companies, %d trackers, %d categories, %d tracker domains, %d VPN services",
		r.Companies, r.Trackers, r.Categories, r.TrackerDomains, r.VPNServices)

	var parts []string
	if len(r.Warnings) > 0 {
		parts = append(parts, fmt.Sprintf("%d warnings", len(r.Warnings)))
	}
	if r.DryRun {
		parts = append(parts, "(dry run)")
	}
	if len(parts) > 0 {
		summary += " " + strings.Join(parts, " ")
	}

	return summary
}
