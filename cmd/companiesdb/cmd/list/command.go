// Package list implements the list command and its resource subcommands.
package list

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/zhelvis/companiesdb"
)

// AppContext defines the interface that list commands need from the app.
// This allows for better testability and decoupling from the full app.
type AppContext interface {
	Dataset(ctx context.Context) (*companiesdb.Dataset, error)
	Logger() *zerolog.Logger
}

// NewCommand creates the list command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [resource]",
		GroupID: "dataset",
		Short:   "List records from the merged dataset",
		Long: `List displays records from the merged in-memory view of the source
datasets, with override records applied over the third-party base.

Available subcommands:
  companies   - Companies operating trackers
  trackers    - Tracking services
  categories  - Tracker categories
  vpn         - VPN services`,
		Example: `  companiesdb list companies                 # List all companies
  companiesdb list companies adguard         # Show specific company details
  companiesdb list trackers --search google  # Search trackers by name
  companiesdb list categories`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to help if no subcommand
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown resource: %s", args[0])
		},
	}

	// Add subcommands using the app context
	cmd.AddCommand(NewCompaniesCommand(app))
	cmd.AddCommand(NewTrackersCommand(app))
	cmd.AddCommand(NewCategoriesCommand(app))
	cmd.AddCommand(NewVPNCommand(app))

	return cmd
}
