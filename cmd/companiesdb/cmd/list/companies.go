package list

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zhelvis/companiesdb/internal/cmd/globals"
	"github.com/zhelvis/companiesdb/internal/cmd/output"
	"github.com/zhelvis/companiesdb/pkg/catalog"
	"github.com/zhelvis/companiesdb/pkg/errors"
)

// companyRecord is the structured output form of a company.
type companyRecord struct {
	ID          catalog.CompanyID `json:"id" yaml:"id"`
	Name        string            `json:"name" yaml:"name"`
	WebsiteURL  *string           `json:"websiteUrl" yaml:"websiteUrl"`
	Description *string           `json:"description" yaml:"description"`
	Source      string            `json:"source,omitempty" yaml:"source,omitempty"`
}

// companyRow is the table form of a company.
type companyRow struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Website string `json:"website"`
	Source  string `json:"source"`
}

// companyWideRow adds the description column for wide output.
type companyWideRow struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Website     string `json:"website"`
	Description string `json:"description"`
	Source      string `json:"source"`
}

// NewCompaniesCommand creates the list companies subcommand using app context.
func NewCompaniesCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "companies [company-id]",
		Short:   "List companies from the merged dataset",
		Aliases: []string{"company"},
		Args:    cobra.MaximumNArgs(1),
		Example: `  companiesdb list companies                 # List all companies
  companiesdb list companies adguard         # Show specific company details
  companiesdb list companies --search google # Search companies by name`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Single company detail view
			if len(args) == 1 {
				return showCompanyDetails(cmd, app, args[0])
			}

			// List view
			resourceFlags := globals.ParseResources(cmd)
			return listCompanies(cmd, app, resourceFlags)
		},
	}

	// Add resource-specific flags
	globals.AddResourceFlags(cmd)

	return cmd
}

// listCompanies lists all companies using app context.
func listCompanies(cmd *cobra.Command, app AppContext, flags *globals.ResourceFlags) error {
	ds, err := app.Dataset(cmd.Context())
	if err != nil {
		return err
	}

	// Apply search filter, keeping the sorted order
	all := ds.Companies.SortedIDs()
	var ids []catalog.CompanyID
	if flags.Search != "" {
		for _, id := range all {
			if matchesSearch(flags.Search, string(id), ds.Companies[id].Name) {
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
		rows := make([]companyWideRow, 0, len(ids))
		for _, id := range ids {
			rows = append(rows, newCompanyWideRow(id, ds.Companies[id]))
		}
		outputData = rows
	case output.FormatTable:
		rows := make([]companyRow, 0, len(ids))
		for _, id := range ids {
			c := ds.Companies[id]
			rows = append(rows, companyRow{
				ID:      string(id),
				Name:    c.Name,
				Website: stringOrEmpty(c.WebsiteURL),
				Source:  c.Source,
			})
		}
		outputData = rows
	default:
		records := make([]companyRecord, 0, len(ids))
		for _, id := range ids {
			records = append(records, newCompanyRecord(id, ds.Companies[id]))
		}
		outputData = records
	}

	if !globalFlags.Quiet {
		app.Logger().Info().Msgf("Found %d companies", len(ids))
	}

	return formatter.Format(os.Stdout, outputData)
}

// showCompanyDetails shows detailed information about a specific company.
func showCompanyDetails(cmd *cobra.Command, app AppContext, id string) error {
	ds, err := app.Dataset(cmd.Context())
	if err != nil {
		return err
	}

	company, ok := ds.Companies[catalog.CompanyID(id)]
	if !ok {
		cmd.SilenceUsage = true
		return &errors.NotFoundError{
			Resource: "company",
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
		return formatter.Format(os.Stdout, newCompanyWideRow(catalog.CompanyID(id), company))
	default:
		return formatter.Format(os.Stdout, newCompanyRecord(catalog.CompanyID(id), company))
	}
}

func newCompanyRecord(id catalog.CompanyID, c *catalog.Company) companyRecord {
	return companyRecord{
		ID:          id,
		Name:        c.Name,
		WebsiteURL:  c.WebsiteURL,
		Description: c.Description,
		Source:      c.Source,
	}
}

func newCompanyWideRow(id catalog.CompanyID, c *catalog.Company) companyWideRow {
	return companyWideRow{
		ID:          string(id),
		Name:        c.Name,
		Website:     stringOrEmpty(c.WebsiteURL),
		Description: stringOrEmpty(c.Description),
		Source:      c.Source,
	}
}
