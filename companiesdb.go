// Package companiesdb builds the published tracker intelligence dataset from
// a third-party base dataset and a first-party override dataset.
//
// A build loads five source documents, overlays the overrides onto the base
// with record-level precedence, verifies referential integrity between
// trackers, companies and domains, and publishes deterministically ordered
// JSON and CSV artifacts. Outputs are staged to temporary files and renamed
// into place only after the whole run has validated, so a failed run leaves
// previously published files untouched.
package companiesdb

import (
	"fmt"

	"github.com/agentstation/utc"

	"github.com/zhelvis/companiesdb/internal/pipeline"
	"github.com/zhelvis/companiesdb/pkg/constants"
)

// Builder runs dataset builds over a fixed source and dist layout.
type Builder struct {
	config *config
	paths  pipeline.Paths
}

// config collects the options applied to a Builder.
type config struct {
	sourceDir string
	distDir   string
	clock     func() utc.Time
	dryRun    bool
}

func defaultConfig() *config {
	return &config{
		sourceDir: constants.DefaultSourceDir,
		distDir:   constants.DefaultDistDir,
		clock:     utc.Now,
	}
}

// New creates a Builder with the given options.
func New(opts ...Option) (*Builder, error) {
	c := defaultConfig()
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	return &Builder{
		config: c,
		paths:  pipeline.DefaultPaths(c.sourceDir, c.distDir),
	}, nil
}
