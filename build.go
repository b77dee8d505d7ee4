package companiesdb

import (
	"context"
	"strings"

	"github.com/zhelvis/companiesdb/internal/pipeline"
	"github.com/zhelvis/companiesdb/pkg/catalog"
	"github.com/zhelvis/companiesdb/pkg/constants"
	"github.com/zhelvis/companiesdb/pkg/export"
	"github.com/zhelvis/companiesdb/pkg/logging"
	"github.com/zhelvis/companiesdb/pkg/merge"
)

// runMode selects how far a run goes after validation.
type runMode int

const (
	runPublish  runMode = iota // stage and publish outputs
	runDryRun                  // render and diff, write nothing
	runValidate                // render only, write nothing
)

// dataset holds everything one run produces before publication.
type dataset struct {
	in          *pipeline.Inputs
	timeUpdated string
	merged      *Dataset
	csv         string
	warnings    []catalog.Warning
}

// Build runs a full dataset build: load, merge, validate, derive, publish.
// With WithDryRun the outputs are rendered and diffed against the currently
// published files instead of being written.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	if b.config.dryRun {
		return b.run(ctx, runDryRun)
	}
	return b.run(ctx, runPublish)
}

// Validate runs every load, merge and integrity check of a build without
// touching the dist directory.
func (b *Builder) Validate(ctx context.Context) (*Result, error) {
	return b.run(ctx, runValidate)
}

func (b *Builder) run(ctx context.Context, mode runMode) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	// Step 1: Capture the run timestamp. Every output that carries
	// timeUpdated shares this one value.
	timeUpdated := b.config.clock().Format(constants.TimeFormatISO8601)

	// Step 2: Load and validate the five source documents.
	in, err := pipeline.Load(b.paths)
	if err != nil {
		return nil, err
	}

	// Step 3: Merge overrides over the base, then check references in
	// dependency order. Trackers are checked against the merged companies,
	// domains against the merged trackers.
	ds := &dataset{in: in, timeUpdated: timeUpdated, merged: newDataset(in)}

	ds.warnings, err = merge.ValidateTrackers(ds.merged.Trackers, ds.merged.Companies)
	if err != nil {
		return nil, err
	}
	if err := merge.ValidateDomains(ds.merged.Domains, ds.merged.Trackers); err != nil {
		return nil, err
	}

	// Step 4: Derive the flat CSV from the merged collections.
	var csvWarnings []catalog.Warning
	ds.csv, csvWarnings, err = export.CSV(ds.merged.Trackers, ds.merged.Domains)
	if err != nil {
		return nil, err
	}
	ds.warnings = append(ds.warnings, csvWarnings...)

	for _, w := range ds.warnings {
		logger.Warn().
			Str("resource", w.Resource).
			Str("id", w.ID).
			Msg(w.Message)
	}

	// Step 5: Render the five outputs in publication order.
	files, err := render(b.paths, ds)
	if err != nil {
		return nil, err
	}

	result := &Result{
		TimeUpdated:    timeUpdated,
		Companies:      len(ds.merged.Companies),
		Trackers:       len(ds.merged.Trackers),
		Categories:     len(ds.merged.Categories),
		TrackerDomains: len(ds.merged.Domains),
		VPNServices:    len(ds.merged.VPNServices),
		CSVRows:        strings.Count(ds.csv, "\n") - 1,
		Warnings:       ds.warnings,
		DryRun:         mode != runPublish,
	}
	for _, f := range files {
		result.Files = append(result.Files, f.Path)
	}

	// Step 6: Publish, diff, or stop depending on mode.
	switch mode {
	case runValidate:
		logger.Info().
			Int("warnings", len(ds.warnings)).
			Msg("Validation completed")

	case runDryRun:
		result.Diffs = make(map[string]string, len(files))
		for _, f := range files {
			diff, err := pipeline.Diff(f.Path, f.Data)
			if err != nil {
				return nil, err
			}
			if diff != "" {
				result.Diffs[f.Path] = diff
			}
		}
		logger.Info().
			Int("files_changed", len(result.Diffs)).
			Msg("Dry run completed - no changes applied")

	case runPublish:
		var stager pipeline.Stager
		defer stager.Discard()
		for _, f := range files {
			if err := stager.Stage(f.Path, f.Data); err != nil {
				return nil, err
			}
		}
		if err := stager.Commit(); err != nil {
			return nil, err
		}
		logger.Info().
			Int("files", len(files)).
			Int("companies", result.Companies).
			Int("trackers", result.Trackers).
			Int("warnings", len(ds.warnings)).
			Msg("Build completed successfully")
	}

	return result, nil
}

// render serializes the five outputs in publication order: the third-party
// snapshot, the merged companies and trackers documents, the derived CSV and
// the VPN services passthrough.
func render(paths pipeline.Paths, ds *dataset) ([]pipeline.File, error) {
	// The snapshot re-emits the third-party document as loaded, unmerged,
	// with only the timestamp refreshed.
	snapshot, err := catalog.Marshal(&catalog.TrackersDocument{
		TimeUpdated:    ds.timeUpdated,
		Categories:     ds.in.BaseTrackers.Categories,
		Trackers:       ds.in.BaseTrackers.Trackers,
		TrackerDomains: ds.in.BaseTrackers.TrackerDomains,
	})
	if err != nil {
		return nil, err
	}

	companies, err := catalog.Marshal(&catalog.CompaniesDocument{
		TimeUpdated: ds.timeUpdated,
		Companies:   ds.merged.Companies,
	})
	if err != nil {
		return nil, err
	}

	trackers, err := catalog.Marshal(&catalog.TrackersDocument{
		TimeUpdated:    ds.timeUpdated,
		Categories:     ds.merged.Categories,
		Trackers:       ds.merged.Trackers,
		TrackerDomains: ds.merged.Domains,
	})
	if err != nil {
		return nil, err
	}

	// VPN services are validated passthrough: re-serialized canonically, no
	// merge, no timestamp injection.
	vpn, err := catalog.Marshal(ds.in.VPNServices)
	if err != nil {
		return nil, err
	}

	return []pipeline.File{
		{Path: paths.OutSnapshot, Data: snapshot},
		{Path: paths.OutCompanies, Data: companies},
		{Path: paths.OutTrackers, Data: trackers},
		{Path: paths.OutCSV, Data: []byte(ds.csv)},
		{Path: paths.OutVPN, Data: vpn},
	}, nil
}
