package app

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/zhelvis/companiesdb"
)

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app, err := New("1.0.0", "abc123", "2024-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", app.Commit())
	}
	if app.Date() != "2024-01-01" {
		t.Errorf("Date() = %s, want 2024-01-01", app.Date())
	}
	if app.BuiltBy() != "test" {
		t.Errorf("BuiltBy() = %s, want test", app.BuiltBy())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.Config() == nil {
		t.Error("Config() returned nil")
	}
}

// TestApp_Builder_Singleton verifies that Builder() returns the same instance.
func TestApp_Builder_Singleton(t *testing.T) {
	app, err := New("1.0.0", "test", "2024-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	b1, err := app.Builder()
	if err != nil {
		t.Fatalf("Builder() failed: %v", err)
	}

	b2, err := app.Builder()
	if err != nil {
		t.Fatalf("Builder() failed on second call: %v", err)
	}

	// Verify it's the same instance (same pointer)
	if b1 != b2 {
		t.Error("Builder() returned different instances, expected singleton")
	}
}

// TestApp_Builder_ThreadSafe verifies concurrent Builder() calls are safe.
func TestApp_Builder_ThreadSafe(t *testing.T) {
	app, err := New("1.0.0", "test", "2024-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	const goroutines = 50
	var wg sync.WaitGroup
	results := make([]*companiesdb.Builder, goroutines)
	errs := make([]error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			b, err := app.Builder()
			results[idx] = b
			errs[idx] = err
		}(i)
	}

	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("Goroutine %d: Builder() failed: %v", i, err)
		}
	}

	first := results[0]
	for i, b := range results[1:] {
		if b != first {
			t.Errorf("Goroutine %d got different builder instance", i+1)
		}
	}
}

// TestApp_BuilderWithOptions tests that extra options create new instances
// each time, leaving the singleton untouched.
func TestApp_BuilderWithOptions(t *testing.T) {
	app, err := New("1.0.0", "test", "2024-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	b1, err := app.BuilderWithOptions(companiesdb.WithDryRun(true))
	if err != nil {
		t.Fatalf("BuilderWithOptions() failed: %v", err)
	}

	b2, err := app.BuilderWithOptions(companiesdb.WithDryRun(true))
	if err != nil {
		t.Fatalf("BuilderWithOptions() failed on second call: %v", err)
	}

	if b1 == b2 {
		t.Error("BuilderWithOptions() returned same instance, expected new instance each time")
	}

	bDefault, err := app.Builder()
	if err != nil {
		t.Fatalf("Builder() failed: %v", err)
	}
	if b1 == bDefault {
		t.Error("BuilderWithOptions() returned default singleton, expected new instance")
	}
}

// TestApp_WithOptions tests the functional options pattern.
func TestApp_WithOptions(t *testing.T) {
	customConfig := &Config{
		Verbose: true,
		Format:  "json",
	}

	customLogger := zerolog.Nop()

	app, err := New("1.0.0", "test", "2024-01-01", "test",
		WithConfig(customConfig),
		WithLogger(&customLogger),
	)
	if err != nil {
		t.Fatalf("New() with options failed: %v", err)
	}

	if app.Config() != customConfig {
		t.Error("WithConfig() option not applied")
	}
	if app.Logger() != &customLogger {
		t.Error("WithLogger() option not applied")
	}
}

// TestApp_Dataset verifies the app wires the configured source directory
// into the builder.
func TestApp_Dataset(t *testing.T) {
	sourceDir := writeAppTestInputs(t)

	app, err := New("1.0.0", "test", "2024-01-01", "test",
		WithConfig(&Config{SourceDir: sourceDir}),
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	ds, err := app.Dataset(context.Background())
	if err != nil {
		t.Fatalf("Dataset() failed: %v", err)
	}

	if len(ds.Companies) != 1 {
		t.Errorf("Companies = %d, want 1", len(ds.Companies))
	}
	if len(ds.Trackers) != 1 {
		t.Errorf("Trackers = %d, want 1", len(ds.Trackers))
	}
}

// writeAppTestInputs lays out a minimal source directory.
func writeAppTestInputs(t *testing.T) string {
	t.Helper()
	sourceDir := filepath.Join(t.TempDir(), "source")

	files := map[string]string{
		filepath.Join("whotracksme", "trackers.json"): `{
    "timeUpdated": "2024-01-01T00:00:00.000Z",
    "categories": {"4": "advertising"},
    "trackers": {
        "doubleclick": {"name": "DoubleClick", "categoryId": 4, "url": null, "companyId": "google"}
    },
    "trackerDomains": {"doubleclick.net": "doubleclick"}
}`,
		filepath.Join("whotracksme", "companies.json"): `{
    "timeUpdated": "2024-01-01T00:00:00.000Z",
    "companies": {
        "google": {"name": "Google", "websiteUrl": null, "description": null}
    }
}`,
		"trackers.json": `{
    "timeUpdated": "2024-02-01T00:00:00.000Z",
    "categories": {},
    "trackers": {},
    "trackerDomains": {}
}`,
		"companies.json": `{
    "timeUpdated": "2024-02-01T00:00:00.000Z",
    "companies": {}
}`,
		"vpn_services.json": `[]`,
	}

	for name, content := range files {
		path := filepath.Join(sourceDir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	return sourceDir
}
