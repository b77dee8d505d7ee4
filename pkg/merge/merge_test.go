package merge

import (
	"testing"

	"github.com/zhelvis/companiesdb/pkg/catalog"
)

func stringPtr(s string) *string { return &s }

func companyIDPtr(s string) *catalog.CompanyID {
	id := catalog.CompanyID(s)
	return &id
}

func TestCompaniesOverrideWins(t *testing.T) {
	base := catalog.Companies{
		"adobe":  {Name: "Adobe", WebsiteURL: stringPtr("https://adobe.com/"), Description: stringPtr("Software")},
		"google": {Name: "Google", WebsiteURL: stringPtr("https://google.com/"), Description: nil},
	}
	overrides := catalog.Companies{
		"google": {Name: "Google LLC", WebsiteURL: stringPtr("https://about.google/"), Description: stringPtr("Search")},
		"yandex": {Name: "Yandex", WebsiteURL: nil, Description: nil},
	}

	merged := Companies(base, overrides)

	if len(merged) != 3 {
		t.Fatalf("len(merged) = %d, want 3", len(merged))
	}

	// Base-only records pass through untouched and unstamped.
	adobe := merged["adobe"]
	if adobe.Name != "Adobe" || adobe.Source != "" {
		t.Errorf("adobe = %+v, want untouched base record", adobe)
	}

	// Overridden records are fully replaced, not field merged.
	google := merged["google"]
	if google.Name != "Google LLC" {
		t.Errorf("google.Name = %q, want override name", google.Name)
	}
	if google.Description == nil || *google.Description != "Search" {
		t.Errorf("google.Description = %v, want override description", google.Description)
	}
	if google.Source != catalog.OverrideSource {
		t.Errorf("google.Source = %q, want %q", google.Source, catalog.OverrideSource)
	}

	// Override-only records appear stamped.
	yandex := merged["yandex"]
	if yandex == nil || yandex.Source != catalog.OverrideSource {
		t.Errorf("yandex = %+v, want stamped override record", yandex)
	}
}

func TestCompaniesStampOverwritesInputSource(t *testing.T) {
	overrides := catalog.Companies{
		"acme": {Name: "Acme", WebsiteURL: nil, Description: nil, Source: "somewhere-else"},
	}

	merged := Companies(nil, overrides)

	if merged["acme"].Source != catalog.OverrideSource {
		t.Errorf("Source = %q, want %q", merged["acme"].Source, catalog.OverrideSource)
	}
}

func TestCompaniesInputsNotMutated(t *testing.T) {
	base := catalog.Companies{
		"google": {Name: "Google", WebsiteURL: nil, Description: nil},
	}
	overrides := catalog.Companies{
		"google": {Name: "Google LLC", WebsiteURL: nil, Description: nil},
	}

	merged := Companies(base, overrides)
	merged["google"].Name = "changed"
	merged["google"].Source = "changed"

	if base["google"].Name != "Google" || base["google"].Source != "" {
		t.Errorf("base mutated: %+v", base["google"])
	}
	if overrides["google"].Name != "Google LLC" || overrides["google"].Source != "" {
		t.Errorf("overrides mutated: %+v", overrides["google"])
	}
}

func TestCategoriesOverlay(t *testing.T) {
	base := catalog.Categories{"4": "advertising", "6": "essential"}
	overrides := catalog.Categories{"6": "site_analytics", "101": "custom"}

	merged := Categories(base, overrides)

	want := catalog.Categories{"4": "advertising", "6": "site_analytics", "101": "custom"}
	if len(merged) != len(want) {
		t.Fatalf("len(merged) = %d, want %d", len(merged), len(want))
	}
	for id, name := range want {
		if merged[id] != name {
			t.Errorf("merged[%q] = %q, want %q", id, merged[id], name)
		}
	}
}

func TestTrackersOverrideWins(t *testing.T) {
	base := catalog.Trackers{
		"doubleclick": {Name: "DoubleClick", URL: nil, CompanyID: companyIDPtr("google")},
		"criteo":      {Name: "Criteo", URL: nil, CompanyID: companyIDPtr("criteo")},
	}
	overrides := catalog.Trackers{
		"criteo": {Name: "Criteo SA", URL: stringPtr("https://criteo.com/"), CompanyID: companyIDPtr("criteo")},
	}

	merged := Trackers(base, overrides)

	if merged["doubleclick"].Source != "" {
		t.Errorf("doubleclick.Source = %q, want empty", merged["doubleclick"].Source)
	}
	criteo := merged["criteo"]
	if criteo.Name != "Criteo SA" || criteo.Source != catalog.OverrideSource {
		t.Errorf("criteo = %+v, want stamped override record", criteo)
	}

	// Input record stays pristine.
	if overrides["criteo"].Source != "" {
		t.Errorf("overrides mutated: %+v", overrides["criteo"])
	}
}

func TestDomainsOverlay(t *testing.T) {
	base := catalog.Domains{
		"doubleclick.net": "doubleclick",
		"criteo.com":      "criteo",
	}
	overrides := catalog.Domains{
		"criteo.com": "criteo_sa",
		"criteo.net": "criteo_sa",
	}

	merged := Domains(base, overrides)

	if len(merged) != 3 {
		t.Fatalf("len(merged) = %d, want 3", len(merged))
	}
	if merged["criteo.com"] != "criteo_sa" {
		t.Errorf("merged[criteo.com] = %q, want override value", merged["criteo.com"])
	}
	if merged["doubleclick.net"] != "doubleclick" {
		t.Errorf("merged[doubleclick.net] = %q, want base value", merged["doubleclick.net"])
	}
}

func TestMergeEmptyInputs(t *testing.T) {
	companies := Companies(nil, nil)
	if companies == nil || len(companies) != 0 {
		t.Errorf("Companies(nil, nil) = %v, want empty non-nil map", companies)
	}

	categories := Categories(nil, catalog.Categories{"1": "a"})
	if len(categories) != 1 {
		t.Errorf("Categories(nil, overrides) = %v, want overlay of overrides", categories)
	}

	domains := Domains(catalog.Domains{"a.com": "t"}, nil)
	if len(domains) != 1 {
		t.Errorf("Domains(base, nil) = %v, want copy of base", domains)
	}
}
