package catalog

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	pkgerrors "github.com/zhelvis/companiesdb/pkg/errors"
)

func stringPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func companyIDPtr(id CompanyID) *CompanyID { return &id }

func TestParseCompanies(t *testing.T) {
	data := []byte(`{
		"timeUpdated": "2024-01-02T03:04:05.000Z",
		"companies": {
			"adobe": {
				"name": "Adobe",
				"websiteUrl": "https://www.adobe.com/",
				"description": "Software company"
			},
			"unknown_co": {
				"name": "Unknown",
				"websiteUrl": null,
				"description": null,
				"source": "companiesdb"
			}
		}
	}`)

	doc, err := ParseCompanies(data)
	if err != nil {
		t.Fatalf("ParseCompanies() error = %v", err)
	}

	if doc.TimeUpdated != "2024-01-02T03:04:05.000Z" {
		t.Errorf("TimeUpdated = %q", doc.TimeUpdated)
	}
	if len(doc.Companies) != 2 {
		t.Fatalf("expected 2 companies, got %d", len(doc.Companies))
	}

	adobe := doc.Companies["adobe"]
	if adobe.Name != "Adobe" || adobe.WebsiteURL == nil || *adobe.WebsiteURL != "https://www.adobe.com/" {
		t.Errorf("adobe parsed incorrectly: %+v", adobe)
	}
	if adobe.Source != "" {
		t.Errorf("adobe should have no source, got %q", adobe.Source)
	}

	unknown := doc.Companies["unknown_co"]
	if unknown.WebsiteURL != nil || unknown.Description != nil {
		t.Errorf("unknown_co nullable fields should be nil: %+v", unknown)
	}
	if unknown.Source != "companiesdb" {
		t.Errorf("unknown_co source = %q", unknown.Source)
	}
}

func TestParseCompaniesErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "not json",
			data:    `{"timeUpdated": `,
			wantErr: "unexpected end of JSON input",
		},
		{
			name:    "document is an array",
			data:    `[]`,
			wantErr: "must be a JSON object",
		},
		{
			name:    "document is null",
			data:    `null`,
			wantErr: "must be a JSON object",
		},
		{
			name:    "missing timeUpdated",
			data:    `{"companies": {}}`,
			wantErr: "timeUpdated: required field missing",
		},
		{
			name:    "missing companies",
			data:    `{"timeUpdated": "t"}`,
			wantErr: "companies: required field missing",
		},
		{
			name:    "unknown document field",
			data:    `{"timeUpdated": "t", "companies": {}, "extra": 1}`,
			wantErr: "extra: unknown field",
		},
		{
			name:    "company record not an object",
			data:    `{"timeUpdated": "t", "companies": {"c1": null}}`,
			wantErr: `company "c1"`,
		},
		{
			name:    "company missing name",
			data:    `{"timeUpdated": "t", "companies": {"c1": {"websiteUrl": null, "description": null}}}`,
			wantErr: "name: required field missing",
		},
		{
			name:    "company name is null",
			data:    `{"timeUpdated": "t", "companies": {"c1": {"name": null, "websiteUrl": null, "description": null}}}`,
			wantErr: "name: must be a string",
		},
		{
			name:    "company websiteUrl is a number",
			data:    `{"timeUpdated": "t", "companies": {"c1": {"name": "C", "websiteUrl": 1, "description": null}}}`,
			wantErr: "websiteUrl: must be a string or null",
		},
		{
			name:    "company websiteUrl missing",
			data:    `{"timeUpdated": "t", "companies": {"c1": {"name": "C", "description": null}}}`,
			wantErr: "websiteUrl: required field missing",
		},
		{
			name:    "company unknown field",
			data:    `{"timeUpdated": "t", "companies": {"c1": {"name": "C", "websiteUrl": null, "description": null, "icon": "x"}}}`,
			wantErr: "icon: unknown field",
		},
		{
			name:    "company source is null",
			data:    `{"timeUpdated": "t", "companies": {"c1": {"name": "C", "websiteUrl": null, "description": null, "source": null}}}`,
			wantErr: "source: must be a string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCompanies([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestParseCompaniesErrorTypes(t *testing.T) {
	_, err := ParseCompanies([]byte(`{"timeUpdated": "t", "companies": {"c1": {"name": 1, "websiteUrl": null, "description": null}}}`))
	if !pkgerrors.IsValidationError(err) {
		t.Errorf("schema violation should be a validation error, got %v", err)
	}

	_, err = ParseCompanies([]byte(`{`))
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Errorf("malformed input should surface a syntax error, got %v", err)
	}
}

func TestParseTrackers(t *testing.T) {
	data := []byte(`{
		"timeUpdated": "2024-01-02T03:04:05.000Z",
		"categories": {
			"4": "advertising",
			"6": "essential"
		},
		"trackers": {
			"doubleclick": {
				"name": "DoubleClick",
				"categoryId": 4,
				"url": "https://doubleclick.net/",
				"companyId": "google"
			},
			"orphan": {
				"name": "Orphan",
				"url": null,
				"companyId": null,
				"source": "companiesdb"
			}
		},
		"trackerDomains": {
			"doubleclick.net": "doubleclick",
			"stats.g.doubleclick.net": "doubleclick"
		}
	}`)

	doc, err := ParseTrackers(data)
	if err != nil {
		t.Fatalf("ParseTrackers() error = %v", err)
	}

	if len(doc.Categories) != 2 || doc.Categories["4"] != "advertising" {
		t.Errorf("categories parsed incorrectly: %+v", doc.Categories)
	}

	dc := doc.Trackers["doubleclick"]
	if dc.CategoryID == nil || *dc.CategoryID != 4 {
		t.Errorf("doubleclick categoryId parsed incorrectly: %+v", dc)
	}
	if dc.CompanyID == nil || *dc.CompanyID != "google" {
		t.Errorf("doubleclick companyId parsed incorrectly: %+v", dc)
	}

	orphan := doc.Trackers["orphan"]
	if orphan.CategoryID != nil {
		t.Errorf("orphan categoryId should be nil")
	}
	if orphan.URL != nil || orphan.CompanyID != nil {
		t.Errorf("orphan nullable fields should be nil: %+v", orphan)
	}

	if doc.TrackerDomains["doubleclick.net"] != "doubleclick" {
		t.Errorf("trackerDomains parsed incorrectly: %+v", doc.TrackerDomains)
	}
}

func TestParseTrackersErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "missing trackerDomains",
			data:    `{"timeUpdated": "t", "categories": {}, "trackers": {}}`,
			wantErr: "trackerDomains: required field missing",
		},
		{
			name:    "tracker categoryId is a string",
			data:    `{"timeUpdated": "t", "categories": {}, "trackers": {"t1": {"name": "T", "categoryId": "4", "url": null, "companyId": null}}, "trackerDomains": {}}`,
			wantErr: "categoryId: must be a number",
		},
		{
			name:    "tracker categoryId is fractional",
			data:    `{"timeUpdated": "t", "categories": {}, "trackers": {"t1": {"name": "T", "categoryId": 4.5, "url": null, "companyId": null}}, "trackerDomains": {}}`,
			wantErr: "categoryId: must be an integer",
		},
		{
			name:    "tracker companyId missing",
			data:    `{"timeUpdated": "t", "categories": {}, "trackers": {"t1": {"name": "T", "url": null}}, "trackerDomains": {}}`,
			wantErr: "companyId: required field missing",
		},
		{
			name:    "tracker unknown field",
			data:    `{"timeUpdated": "t", "categories": {}, "trackers": {"t1": {"name": "T", "url": null, "companyId": null, "domains": []}}, "trackerDomains": {}}`,
			wantErr: "domains: unknown field",
		},
		{
			name:    "category value is a number",
			data:    `{"timeUpdated": "t", "categories": {"4": 4}, "trackers": {}, "trackerDomains": {}}`,
			wantErr: "4: must be a string",
		},
		{
			name:    "domain value is null",
			data:    `{"timeUpdated": "t", "categories": {}, "trackers": {}, "trackerDomains": {"a.com": null}}`,
			wantErr: "a.com: must be a string",
		},
		{
			name:    "categories is an array",
			data:    `{"timeUpdated": "t", "categories": [], "trackers": {}, "trackerDomains": {}}`,
			wantErr: "categories: validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTrackers([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestParseVPNServices(t *testing.T) {
	data := []byte(`[
		{
			"service_id": "nordvpn",
			"service_name": "NordVPN",
			"categories": ["VPN"],
			"domains": ["nordvpn.com"],
			"icon_domain": "nordvpn.com",
			"modified_time": "2023-05-11T12:00:00Z"
		}
	]`)

	services, err := ParseVPNServices(data)
	if err != nil {
		t.Fatalf("ParseVPNServices() error = %v", err)
	}
	if len(services) != 1 {
		t.Fatalf("expected 1 service, got %d", len(services))
	}

	svc := services[0]
	if svc.ServiceID != "nordvpn" || svc.ServiceName != "NordVPN" {
		t.Errorf("service parsed incorrectly: %+v", svc)
	}
	if len(svc.Categories) != 1 || svc.Categories[0] != "VPN" {
		t.Errorf("categories parsed incorrectly: %+v", svc.Categories)
	}
}

func TestParseVPNServicesErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "document is an object",
			data:    `{}`,
			wantErr: "must be a JSON array",
		},
		{
			name:    "document is null",
			data:    `null`,
			wantErr: "must be a JSON array",
		},
		{
			name:    "missing field",
			data:    `[{"service_id": "x", "service_name": "X", "categories": [], "domains": [], "icon_domain": "x.com"}]`,
			wantErr: "modified_time: required field missing",
		},
		{
			name:    "categories not an array",
			data:    `[{"service_id": "x", "service_name": "X", "categories": null, "domains": [], "icon_domain": "x.com", "modified_time": "t"}]`,
			wantErr: "categories: must be an array of strings",
		},
		{
			name:    "domains contains a number",
			data:    `[{"service_id": "x", "service_name": "X", "categories": [], "domains": [1], "icon_domain": "x.com", "modified_time": "t"}]`,
			wantErr: "domains: must be an array of strings",
		},
		{
			name:    "unknown field",
			data:    `[{"service_id": "x", "service_name": "X", "categories": [], "domains": [], "icon_domain": "x.com", "modified_time": "t", "premium": true}]`,
			wantErr: "premium: unknown field",
		},
		{
			name:    "error names the record index",
			data:    `[{"service_id": "a", "service_name": "A", "categories": [], "domains": [], "icon_domain": "a.com", "modified_time": "t"}, null]`,
			wantErr: "service at index 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVPNServices([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestParseTrackersEmptyCollections(t *testing.T) {
	doc, err := ParseTrackers([]byte(`{"timeUpdated": "t", "categories": {}, "trackers": {}, "trackerDomains": {}}`))
	if err != nil {
		t.Fatalf("ParseTrackers() error = %v", err)
	}
	if doc.Categories == nil || doc.Trackers == nil || doc.TrackerDomains == nil {
		t.Error("empty collections should decode to non-nil maps")
	}
}
