// Package pipeline handles the file side of a dataset build: locating and
// loading the source documents, staging rendered outputs to temporary files,
// and publishing them with renames once the whole run has validated.
package pipeline

import (
	"path/filepath"

	"github.com/zhelvis/companiesdb/pkg/constants"
)

// Paths locates every input and output file of one run.
type Paths struct {
	// Inputs, read-only.
	BaseTrackers      string // third-party trackers document
	BaseCompanies     string // third-party companies document
	OverrideTrackers  string // first-party tracker overrides
	OverrideCompanies string // first-party company overrides
	VPNServices       string // VPN services array

	// Outputs, overwritten each run.
	OutSnapshot  string // third-party trackers snapshot, timestamp refreshed
	OutCompanies string // merged companies document
	OutTrackers  string // merged trackers document
	OutCSV       string // flat domain/tracker/category table
	OutVPN       string // validated VPN services passthrough
}

// DefaultPaths returns the standard repository layout rooted at sourceDir
// and distDir.
func DefaultPaths(sourceDir, distDir string) Paths {
	return Paths{
		BaseTrackers:      filepath.Join(sourceDir, constants.WhoTracksMeDir, constants.TrackersFile),
		BaseCompanies:     filepath.Join(sourceDir, constants.WhoTracksMeDir, constants.CompaniesFile),
		OverrideTrackers:  filepath.Join(sourceDir, constants.TrackersFile),
		OverrideCompanies: filepath.Join(sourceDir, constants.CompaniesFile),
		VPNServices:       filepath.Join(sourceDir, constants.VPNServicesFile),

		OutSnapshot:  filepath.Join(distDir, constants.WhoTracksMeSnapshotFile),
		OutCompanies: filepath.Join(distDir, constants.CompaniesFile),
		OutTrackers:  filepath.Join(distDir, constants.TrackersFile),
		OutCSV:       filepath.Join(distDir, constants.TrackersCSVFile),
		OutVPN:       filepath.Join(distDir, constants.VPNServicesFile),
	}
}

// File is one rendered output artifact ready to be written.
type File struct {
	Path string
	Data []byte
}
