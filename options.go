package companiesdb

import (
	"github.com/agentstation/utc"

	"github.com/zhelvis/companiesdb/pkg/errors"
)

// Option is a function that configures a Builder.
type Option func(*config) error

// WithSourceDir configures the directory holding the source documents.
func WithSourceDir(dir string) Option {
	return func(c *config) error {
		if dir == "" {
			return &errors.ConfigError{Component: "builder", Message: "source directory must not be empty"}
		}
		c.sourceDir = dir
		return nil
	}
}

// WithDistDir configures the directory the published dataset is written to.
func WithDistDir(dir string) Option {
	return func(c *config) error {
		if dir == "" {
			return &errors.ConfigError{Component: "builder", Message: "dist directory must not be empty"}
		}
		c.distDir = dir
		return nil
	}
}

// WithClock configures the time source for the run timestamp. Builds stamp
// every timeUpdated field from a single clock reading, so a fixed clock makes
// output byte-for-byte reproducible.
func WithClock(clock func() utc.Time) Option {
	return func(c *config) error {
		if clock == nil {
			return &errors.ConfigError{Component: "builder", Message: "clock must not be nil"}
		}
		c.clock = clock
		return nil
	}
}

// WithDryRun configures whether Build renders and diffs outputs without
// writing anything.
func WithDryRun(enabled bool) Option {
	return func(c *config) error {
		c.dryRun = enabled
		return nil
	}
}
