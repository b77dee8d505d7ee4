package list

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zhelvis/companiesdb/internal/cmd/globals"
	"github.com/zhelvis/companiesdb/internal/cmd/output"
	"github.com/zhelvis/companiesdb/pkg/catalog"
	"github.com/zhelvis/companiesdb/pkg/errors"
)

// categoryRecord is the structured output form of a category.
type categoryRecord struct {
	ID   catalog.CategoryID `json:"id" yaml:"id"`
	Name string             `json:"name" yaml:"name"`
}

// categoryWideRow adds the tracker count column for wide output.
type categoryWideRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Trackers int    `json:"trackers"`
}

// NewCategoriesCommand creates the list categories subcommand using app context.
func NewCategoriesCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories [category-id]",
		Short:   "List tracker categories from the merged dataset",
		Aliases: []string{"category"},
		Args:    cobra.MaximumNArgs(1),
		Example: `  companiesdb list categories            # List all categories
  companiesdb list categories 4          # Show specific category details
  companiesdb list categories --search ads`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Single category detail view
			if len(args) == 1 {
				return showCategoryDetails(cmd, app, args[0])
			}

			// List view
			resourceFlags := globals.ParseResources(cmd)
			return listCategories(cmd, app, resourceFlags)
		},
	}

	// Add resource-specific flags
	globals.AddResourceFlags(cmd)

	return cmd
}

// listCategories lists all categories using app context.
func listCategories(cmd *cobra.Command, app AppContext, flags *globals.ResourceFlags) error {
	ds, err := app.Dataset(cmd.Context())
	if err != nil {
		return err
	}

	// Apply search filter, keeping the sorted order
	all := ds.Categories.SortedIDs()
	var ids []catalog.CategoryID
	if flags.Search != "" {
		for _, id := range all {
			if matchesSearch(flags.Search, string(id), ds.Categories[id]) {
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
		counts := trackerCounts(ds.Trackers)
		rows := make([]categoryWideRow, 0, len(ids))
		for _, id := range ids {
			rows = append(rows, categoryWideRow{
				ID:       string(id),
				Name:     ds.Categories[id],
				Trackers: counts[id],
			})
		}
		outputData = rows
	default:
		records := make([]categoryRecord, 0, len(ids))
		for _, id := range ids {
			records = append(records, categoryRecord{ID: id, Name: ds.Categories[id]})
		}
		outputData = records
	}

	if !globalFlags.Quiet {
		app.Logger().Info().Msgf("Found %d categories", len(ids))
	}

	return formatter.Format(os.Stdout, outputData)
}

// showCategoryDetails shows detailed information about a specific category.
func showCategoryDetails(cmd *cobra.Command, app AppContext, id string) error {
	ds, err := app.Dataset(cmd.Context())
	if err != nil {
		return err
	}

	name, ok := ds.Categories[catalog.CategoryID(id)]
	if !ok {
		cmd.SilenceUsage = true
		return &errors.NotFoundError{
			Resource: "category",
			ID:       id,
		}
	}

	globalFlags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}
	format := output.DetectFormat(globalFlags.Format)
	formatter := output.NewFormatter(format)

	switch format {
	case output.FormatTable, output.FormatWide:
		counts := trackerCounts(ds.Trackers)
		return formatter.Format(os.Stdout, categoryWideRow{
			ID:       id,
			Name:     name,
			Trackers: counts[catalog.CategoryID(id)],
		})
	default:
		return formatter.Format(os.Stdout, categoryRecord{ID: catalog.CategoryID(id), Name: name})
	}
}

// trackerCounts counts the trackers classified under each category.
func trackerCounts(trackers catalog.Trackers) map[catalog.CategoryID]int {
	counts := make(map[catalog.CategoryID]int)
	for _, t := range trackers {
		if t.CategoryID == nil {
			continue
		}
		counts[catalog.CategoryID(strconv.Itoa(*t.CategoryID))]++
	}
	return counts
}
