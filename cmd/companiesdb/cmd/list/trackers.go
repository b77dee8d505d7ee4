package list

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zhelvis/companiesdb"
	"github.com/zhelvis/companiesdb/internal/cmd/globals"
	"github.com/zhelvis/companiesdb/internal/cmd/output"
	"github.com/zhelvis/companiesdb/pkg/catalog"
	"github.com/zhelvis/companiesdb/pkg/errors"
)

// trackerRecord is the structured output form of a tracker.
type trackerRecord struct {
	ID         catalog.TrackerID  `json:"id" yaml:"id"`
	Name       string             `json:"name" yaml:"name"`
	CategoryID *int               `json:"categoryId" yaml:"categoryId"`
	URL        *string            `json:"url" yaml:"url"`
	CompanyID  *catalog.CompanyID `json:"companyId" yaml:"companyId"`
	Source     string             `json:"source,omitempty" yaml:"source,omitempty"`
}

// trackerRow is the table form of a tracker.
type trackerRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Company  string `json:"company"`
	Source   string `json:"source"`
}

// trackerWideRow adds the URL and domain count columns for wide output.
type trackerWideRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Company  string `json:"company"`
	URL      string `json:"url"`
	Domains  int    `json:"domains"`
	Source   string `json:"source"`
}

// NewTrackersCommand creates the list trackers subcommand using app context.
func NewTrackersCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "trackers [tracker-id]",
		Short:   "List trackers from the merged dataset",
		Aliases: []string{"tracker"},
		Args:    cobra.MaximumNArgs(1),
		Example: `  companiesdb list trackers                  # List all trackers
  companiesdb list trackers doubleclick      # Show specific tracker details
  companiesdb list trackers --search google  # Search trackers by name`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Single tracker detail view
			if len(args) == 1 {
				return showTrackerDetails(cmd, app, args[0])
			}

			// List view
			resourceFlags := globals.ParseResources(cmd)
			return listTrackers(cmd, app, resourceFlags)
		},
	}

	// Add resource-specific flags
	globals.AddResourceFlags(cmd)

	return cmd
}

// listTrackers lists all trackers using app context.
func listTrackers(cmd *cobra.Command, app AppContext, flags *globals.ResourceFlags) error {
	ds, err := app.Dataset(cmd.Context())
	if err != nil {
		return err
	}

	// Apply search filter, keeping the sorted order
	all := ds.Trackers.SortedIDs()
	var ids []catalog.TrackerID
	if flags.Search != "" {
		for _, id := range all {
			if matchesSearch(flags.Search, string(id), ds.Trackers[id].Name) {
				ids = append(ids, id)
			}
		}
	} else {
		ids = all
	}

	// Apply limit
	if flags.Limit > 0 && len(ids) > flags.Limit {
		ids = ids[:flags.Limit]
	}

	// Get global flags and format output
	globalFlags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}
	format := output.DetectFormat(globalFlags.Format)
	formatter := output.NewFormatter(format)

	// Transform to output format
	var outputData any
	switch format {
	case output.FormatWide:
		counts := domainCounts(ds.Domains)
		rows := make([]trackerWideRow, 0, len(ids))
		for _, id := range ids {
			rows = append(rows, newTrackerWideRow(ds, id, counts[id]))
		}
		outputData = rows
	case output.FormatTable:
		rows := make([]trackerRow, 0, len(ids))
		for _, id := range ids {
			t := ds.Trackers[id]
			rows = append(rows, trackerRow{
				ID:       string(id),
				Name:     t.Name,
				Category: categoryLabel(ds.Categories, t.CategoryID),
				Company:  companyLabel(t.CompanyID),
				Source:   t.Source,
			})
		}
		outputData = rows
	default:
		records := make([]trackerRecord, 0, len(ids))
		for _, id := range ids {
			records = append(records, newTrackerRecord(id, ds.Trackers[id]))
		}
		outputData = records
	}

	if !globalFlags.Quiet {
		app.Logger().Info().Msgf("Found %d trackers", len(ids))
	}

	return formatter.Format(os.Stdout, outputData)
}

// showTrackerDetails shows detailed information about a specific tracker.
func showTrackerDetails(cmd *cobra.Command, app AppContext, id string) error {
	ds, err := app.Dataset(cmd.Context())
	if err != nil {
		return err
	}

	tracker, ok := ds.Trackers[catalog.TrackerID(id)]
	if !ok {
		cmd.SilenceUsage = true
		return &errors.NotFoundError{
			Resource: "tracker",
			ID:       id,
		}
	}

	globalFlags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}
	format := output.DetectFormat(globalFlags.Format)
	formatter := output.NewFormatter(format)

	// Key-value table on the terminal, full record for structured output
	switch format {
	case output.FormatTable, output.FormatWide:
		counts := domainCounts(ds.Domains)
		return formatter.Format(os.Stdout, newTrackerWideRow(ds, catalog.TrackerID(id), counts[catalog.TrackerID(id)]))
	default:
		return formatter.Format(os.Stdout, newTrackerRecord(catalog.TrackerID(id), tracker))
	}
}

func newTrackerRecord(id catalog.TrackerID, t *catalog.Tracker) trackerRecord {
	return trackerRecord{
		ID:         id,
		Name:       t.Name,
		CategoryID: t.CategoryID,
		URL:        t.URL,
		CompanyID:  t.CompanyID,
		Source:     t.Source,
	}
}

func newTrackerWideRow(ds *companiesdb.Dataset, id catalog.TrackerID, domains int) trackerWideRow {
	t := ds.Trackers[id]
	return trackerWideRow{
		ID:       string(id),
		Name:     t.Name,
		Category: categoryLabel(ds.Categories, t.CategoryID),
		Company:  companyLabel(t.CompanyID),
		URL:      stringOrEmpty(t.URL),
		Domains:  domains,
		Source:   t.Source,
	}
}

// categoryLabel resolves a tracker's category ID to its label, falling back
// to the bare number when the category is unknown.
func categoryLabel(categories catalog.Categories, categoryID *int) string {
	if categoryID == nil {
		return ""
	}
	key := catalog.CategoryID(strconv.Itoa(*categoryID))
	if name, ok := categories[key]; ok {
		return name
	}
	return key.String()
}

// companyLabel renders an optional company reference for table cells.
func companyLabel(id *catalog.CompanyID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

// domainCounts counts the domains attributed to each tracker.
func domainCounts(domains catalog.Domains) map[catalog.TrackerID]int {
	counts := make(map[catalog.TrackerID]int, len(domains))
	for _, trackerID := range domains {
		counts[trackerID]++
	}
	return counts
}
