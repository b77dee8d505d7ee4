// Package constants provides shared constants used throughout the companiesdb
// codebase. This includes file permissions, dataset layout paths, and format
// values that should be consistent across the application.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Dataset layout constants define the on-disk layout of the source and dist trees
const (
	// DefaultSourceDir is the directory holding the editable input datasets
	DefaultSourceDir = "source"

	// DefaultDistDir is the directory the merged datasets are written to
	DefaultDistDir = "dist"

	// WhoTracksMeDir is the subdirectory of the source tree holding the
	// third-party WhoTracks.me dataset snapshot
	WhoTracksMeDir = "whotracksme"

	// TrackersFile is the file name of a trackers document
	TrackersFile = "trackers.json"

	// CompaniesFile is the file name of a companies document
	CompaniesFile = "companies.json"

	// VPNServicesFile is the file name of the VPN services document
	VPNServicesFile = "vpn_services.json"

	// WhoTracksMeSnapshotFile is the file name of the re-emitted third-party
	// dataset snapshot in the dist tree
	WhoTracksMeSnapshotFile = "whotracksme.json"

	// TrackersCSVFile is the file name of the derived flat CSV in the dist tree
	TrackersCSVFile = "trackers.csv"
)

// Format constants
const (
	// TimeFormatISO8601 is the ISO 8601 format with millisecond precision used
	// for the timeUpdated field of produced documents
	TimeFormatISO8601 = "2006-01-02T15:04:05.000Z"

	// JSONIndent is the indentation unit for pretty-printed JSON outputs
	JSONIndent = "    "

	// CSVSeparator joins the fields of a derived CSV row
	CSVSeparator = ";"

	// CSVHeader is the header line of the derived trackers CSV
	CSVHeader = "domain;tracker_id;category_id"
)
