package list

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhelvis/companiesdb/internal/cmd/globals"
	"github.com/zhelvis/companiesdb/internal/cmd/output"
	"github.com/zhelvis/companiesdb/pkg/catalog"
	"github.com/zhelvis/companiesdb/pkg/errors"
)

// vpnRow is the table form of a VPN service.
type vpnRow struct {
	ID      string `json:"service_id"`
	Name    string `json:"service_name"`
	Domains int    `json:"domains"`
}

// vpnWideRow shows every field of a VPN service record.
type vpnWideRow struct {
	ID         string `json:"service_id"`
	Name       string `json:"service_name"`
	Categories string `json:"categories"`
	Domains    string `json:"domains"`
	IconDomain string `json:"icon_domain"`
	Modified   string `json:"modified_time"`
}

// NewVPNCommand creates the list vpn subcommand using app context.
func NewVPNCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vpn [service-id]",
		Short:   "List VPN services from the dataset",
		Args:    cobra.MaximumNArgs(1),
		Example: `  companiesdb list vpn                   # List all VPN services
  companiesdb list vpn nordvpn           # Show specific service details
  companiesdb list vpn --search proton   # Search services by name`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Single service detail view
			if len(args) == 1 {
				return showVPNDetails(cmd, app, args[0])
			}

			// List view
			resourceFlags := globals.ParseResources(cmd)
			return listVPN(cmd, app, resourceFlags)
		},
	}

	// Add resource-specific flags
	globals.AddResourceFlags(cmd)

	return cmd
}

// listVPN lists all VPN services in document order using app context.
func listVPN(cmd *cobra.Command, app AppContext, flags *globals.ResourceFlags) error {
	ds, err := app.Dataset(cmd.Context())
	if err != nil {
		return err
	}

	// Apply search filter, keeping the document order
	var services []catalog.VPNService
	if flags.Search != "" {
		for _, s := range ds.VPNServices {
			if matchesSearch(flags.Search, s.ServiceID, s.ServiceName) {
				services = append(services, s)
			}
		}
	} else {
		services = ds.VPNServices
	}

	// Apply limit
	if flags.Limit > 0 && len(services) > flags.Limit {
		services = services[:flags.Limit]
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
		rows := make([]vpnWideRow, 0, len(services))
		for _, s := range services {
			rows = append(rows, newVPNWideRow(s))
		}
		outputData = rows
	case output.FormatTable:
		rows := make([]vpnRow, 0, len(services))
		for _, s := range services {
			rows = append(rows, vpnRow{
				ID:      s.ServiceID,
				Name:    s.ServiceName,
				Domains: len(s.Domains),
			})
		}
		outputData = rows
	default:
		outputData = services
	}

	if !globalFlags.Quiet {
		app.Logger().Info().Msgf("Found %d VPN services", len(services))
	}

	return formatter.Format(os.Stdout, outputData)
}

// showVPNDetails shows detailed information about a specific VPN service.
func showVPNDetails(cmd *cobra.Command, app AppContext, id string) error {
	ds, err := app.Dataset(cmd.Context())
	if err != nil {
		return err
	}

	service, ok := findVPNService(ds.VPNServices, id)
	if !ok {
		cmd.SilenceUsage = true
		return &errors.NotFoundError{
			Resource: "vpn service",
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
		return formatter.Format(os.Stdout, newVPNWideRow(service))
	default:
		return formatter.Format(os.Stdout, service)
	}
}

func findVPNService(services catalog.VPNServices, id string) (catalog.VPNService, bool) {
	for _, s := range services {
		if s.ServiceID == id {
			return s, true
		}
	}
	return catalog.VPNService{}, false
}

func newVPNWideRow(s catalog.VPNService) vpnWideRow {
	return vpnWideRow{
		ID:         s.ServiceID,
		Name:       s.ServiceName,
		Categories: strings.Join(s.Categories, ", "),
		Domains:    strings.Join(s.Domains, ", "),
		IconDomain: s.IconDomain,
		Modified:   s.ModifiedTime,
	}
}
