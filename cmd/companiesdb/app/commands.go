package app

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/zhelvis/companiesdb/cmd/companiesdb/cmd/build"
	"github.com/zhelvis/companiesdb/cmd/companiesdb/cmd/list"
	"github.com/zhelvis/companiesdb/cmd/companiesdb/cmd/validate"
)

// CreateBuildCommand creates the build command with app dependencies.
func (a *App) CreateBuildCommand() *cobra.Command {
	return build.NewCommand(a)
}

// CreateValidateCommand creates the validate command with app dependencies.
func (a *App) CreateValidateCommand() *cobra.Command {
	return validate.NewCommand(a)
}

// CreateListCommand creates the list command with app dependencies.
func (a *App) CreateListCommand() *cobra.Command {
	return list.NewCommand(a)
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("companiesdb %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
				cmd.Printf("  go:       %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			}
		},
	}
}
