package catalog

import (
	"encoding/json"
	"errors"
	"fmt"

	pkgerrors "github.com/zhelvis/companiesdb/pkg/errors"
)

// VPNService represents a single VPN service record. The collection is
// validated and passed through to the output unchanged: no merge, no
// cross-references to the tracker data, and no timestamp injection, since
// each record carries its own modified_time.
type VPNService struct {
	ServiceID    string   `json:"service_id" yaml:"service_id"`       // Stable service identifier
	ServiceName  string   `json:"service_name" yaml:"service_name"`   // Display name
	Categories   []string `json:"categories" yaml:"categories"`       // Free-form category labels
	Domains      []string `json:"domains" yaml:"domains"`             // Domains operated by the service
	IconDomain   string   `json:"icon_domain" yaml:"icon_domain"`     // Domain to source the service icon from
	ModifiedTime string   `json:"modified_time" yaml:"modified_time"` // Per-record modification marker
}

// vpnServiceFields is the closed field set of a VPN service record.
var vpnServiceFields = []string{
	"service_id",
	"service_name",
	"categories",
	"domains",
	"icon_domain",
	"modified_time",
}

// UnmarshalJSON decodes a VPN service record. All six fields are required
// and unknown fields are rejected.
func (s *VPNService) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data)
	if err != nil {
		return err
	}
	if err := checkFields(fields, vpnServiceFields...); err != nil {
		return err
	}

	if s.ServiceID, err = stringField(fields, "service_id"); err != nil {
		return err
	}
	if s.ServiceName, err = stringField(fields, "service_name"); err != nil {
		return err
	}
	if s.Categories, err = stringSliceField(fields, "categories"); err != nil {
		return err
	}
	if s.Domains, err = stringSliceField(fields, "domains"); err != nil {
		return err
	}
	if s.IconDomain, err = stringField(fields, "icon_domain"); err != nil {
		return err
	}
	if s.ModifiedTime, err = stringField(fields, "modified_time"); err != nil {
		return err
	}
	return nil
}

// VPNServices is the full VPN services document: a bare JSON array with no
// wrapper object and no timeUpdated field.
type VPNServices []VPNService

// UnmarshalJSON decodes the VPN services array, validating every record.
func (v *VPNServices) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &pkgerrors.ValidationError{Message: "document must be a JSON array"}
		}
		return err
	}
	if items == nil {
		return &pkgerrors.ValidationError{Message: "document must be a JSON array"}
	}
	out := make(VPNServices, 0, len(items))
	for i, item := range items {
		var service VPNService
		if err := json.Unmarshal(item, &service); err != nil {
			return fmt.Errorf("service at index %d: %w", i, err)
		}
		out = append(out, service)
	}
	*v = out
	return nil
}
