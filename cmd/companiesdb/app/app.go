// Package app provides the application context and dependency management
// for the companiesdb CLI. It follows idiomatic Go patterns for CLI
// applications by centralizing configuration, dependency injection, and
// lifecycle management.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/zhelvis/companiesdb"
	"github.com/zhelvis/companiesdb/pkg/errors"
)

// App represents the companiesdb application with all its dependencies.
// It provides a centralized place for configuration, logging, and the
// dataset builder, following the dependency injection pattern.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Builder instance (lazy-initialized, singleton)
	mu      sync.RWMutex
	builder *companiesdb.Builder
}

// New creates a new App instance with the given version information.
// The app is initialized with default configuration that can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "load configuration", err)
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	// Apply any custom options
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Builder returns the dataset builder, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Builder() (*companiesdb.Builder, error) {
	a.mu.RLock()
	if a.builder != nil {
		b := a.builder
		a.mu.RUnlock()
		return b, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.builder != nil {
		return a.builder, nil
	}

	b, err := companiesdb.New(a.builderOptions()...)
	if err != nil {
		return nil, err
	}

	a.builder = b
	return b, nil
}

// BuilderWithOptions returns a new builder combining the configured
// directories with the given options. This is useful for commands that
// need a one-off configuration different from the default app instance
// (e.g. build --dry-run).
func (a *App) BuilderWithOptions(opts ...companiesdb.Option) (*companiesdb.Builder, error) {
	all := append(a.builderOptions(), opts...)
	return companiesdb.New(all...)
}

// Dataset returns the merged dataset view loaded from the configured
// source directory. This is a convenience method that handles builder
// initialization and loading in one call.
func (a *App) Dataset(ctx context.Context) (*companiesdb.Dataset, error) {
	b, err := a.Builder()
	if err != nil {
		return nil, err
	}
	return b.Dataset(ctx)
}

// builderOptions constructs builder options from the app configuration.
func (a *App) builderOptions() []companiesdb.Option {
	var opts []companiesdb.Option

	if a.config.SourceDir != "" {
		opts = append(opts, companiesdb.WithSourceDir(a.config.SourceDir))
	}
	if a.config.DistDir != "" {
		opts = append(opts, companiesdb.WithDistDir(a.config.DistDir))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithBuilder sets a custom builder instance (useful for testing).
func WithBuilder(b *companiesdb.Builder) Option {
	return func(a *App) error {
		a.builder = b
		return nil
	}
}
