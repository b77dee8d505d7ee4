// Package build implements the build command.
package build

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/zhelvis/companiesdb"
)

// AppContext defines the interface the build command needs from the app.
// This allows for better testability and decoupling from the full app.
type AppContext interface {
	BuilderWithOptions(opts ...companiesdb.Option) (*companiesdb.Builder, error)
}

// NewCommand creates the build command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "build",
		GroupID: "dataset",
		Short:   "Merge the source datasets and publish the outputs",
		Long: `Build loads the third-party and override datasets, merges them, checks
every cross-reference, and publishes the merged JSON and CSV files to the
dist directory.

All outputs are staged to temporary files and renamed into place only
after the whole run has validated, so a failing run never leaves a
partially updated dist directory.`,
		Example: `  companiesdb build                  # Merge and publish to dist/
  companiesdb build --dry-run        # Show pending changes without writing
  companiesdb build --source ./source --dist ./out`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := app.BuilderWithOptions(companiesdb.WithDryRun(dryRun))
			if err != nil {
				return err
			}

			result, err := b.Build(cmd.Context())
			if err != nil {
				return err
			}

			if dryRun {
				printDiffs(cmd, result)
			}
			cmd.Println(result.Summary())
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "render the outputs and show diffs without writing")

	return cmd
}

// printDiffs writes the per-file diffs in a stable order. Each diff labels
// its own file, so they are printed back to back.
func printDiffs(cmd *cobra.Command, result *companiesdb.Result) {
	paths := make([]string, 0, len(result.Diffs))
	for path := range result.Diffs {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		cmd.Print(result.Diffs[path])
	}
	if len(paths) == 0 {
		cmd.Println("No changes.")
	}
}
