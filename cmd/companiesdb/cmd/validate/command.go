// Package validate implements the validate command.
package validate

import (
	"github.com/spf13/cobra"

	"github.com/zhelvis/companiesdb"
)

// AppContext defines the interface the validate command needs from the app.
type AppContext interface {
	Builder() (*companiesdb.Builder, error)
}

// NewCommand creates the validate command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "validate",
		GroupID: "dataset",
		Short:   "Check the source datasets without writing outputs",
		Long: `Validate runs every schema and referential integrity check of a build
without touching the dist directory.

The exit status is non-zero when any input fails to parse, violates its
schema, or references a company or tracker that does not exist.`,
		Example: `  companiesdb validate               # Check the default source directory
  companiesdb validate --source ./source`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := app.Builder()
			if err != nil {
				return err
			}

			result, err := b.Validate(cmd.Context())
			if err != nil {
				return err
			}

			for _, w := range result.Warnings {
				cmd.Printf("warning: %s %s: %s\n", w.Resource, w.ID, w.Message)
			}
			cmd.Println(result.Summary())
			return nil
		},
	}
}
