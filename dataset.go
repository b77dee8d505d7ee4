package companiesdb

import (
	"context"

	"github.com/zhelvis/companiesdb/internal/pipeline"
	"github.com/zhelvis/companiesdb/pkg/catalog"
	"github.com/zhelvis/companiesdb/pkg/logging"
	"github.com/zhelvis/companiesdb/pkg/merge"
)

// Dataset is the merged in-memory view of the source datasets: override
// records applied over the third-party base, VPN services as loaded.
type Dataset struct {
	Companies   catalog.Companies
	Categories  catalog.Categories
	Trackers    catalog.Trackers
	Domains     catalog.Domains
	VPNServices catalog.VPNServices
}

// Dataset loads the five source documents and returns the merged view
// without checking references or writing any output. Schema violations in
// the inputs still fail; use Validate to check referential integrity.
func (b *Builder) Dataset(ctx context.Context) (*Dataset, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	in, err := pipeline.Load(b.paths)
	if err != nil {
		return nil, err
	}

	ds := newDataset(in)
	logger.Debug().
		Int("companies", len(ds.Companies)).
		Int("trackers", len(ds.Trackers)).
		Int("categories", len(ds.Categories)).
		Int("domains", len(ds.Domains)).
		Int("vpn_services", len(ds.VPNServices)).
		Msg("Merged dataset loaded")
	return ds, nil
}

// newDataset applies the override collections over the base documents.
func newDataset(in *pipeline.Inputs) *Dataset {
	return &Dataset{
		Companies:   merge.Companies(in.BaseCompanies.Companies, in.OverrideCompanies.Companies),
		Categories:  merge.Categories(in.BaseTrackers.Categories, in.OverrideTrackers.Categories),
		Trackers:    merge.Trackers(in.BaseTrackers.Trackers, in.OverrideTrackers.Trackers),
		Domains:     merge.Domains(in.BaseTrackers.TrackerDomains, in.OverrideTrackers.TrackerDomains),
		VPNServices: in.VPNServices,
	}
}
