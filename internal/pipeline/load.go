package pipeline

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/zhelvis/companiesdb/pkg/catalog"
	pkgerrors "github.com/zhelvis/companiesdb/pkg/errors"
	"github.com/zhelvis/companiesdb/pkg/logging"
)

// Inputs holds the five parsed source documents of one run.
type Inputs struct {
	BaseTrackers      *catalog.TrackersDocument
	BaseCompanies     *catalog.CompaniesDocument
	OverrideTrackers  *catalog.TrackersDocument
	OverrideCompanies *catalog.CompaniesDocument
	VPNServices       catalog.VPNServices
}

// Load reads and validates every input document. The first failure aborts
// the load with an error naming the offending file; no partial result is
// returned.
func Load(paths Paths) (*Inputs, error) {
	in := &Inputs{}
	var err error

	if in.BaseTrackers, err = loadTrackers(paths.BaseTrackers); err != nil {
		return nil, err
	}
	if in.BaseCompanies, err = loadCompanies(paths.BaseCompanies); err != nil {
		return nil, err
	}
	if in.OverrideTrackers, err = loadTrackers(paths.OverrideTrackers); err != nil {
		return nil, err
	}
	if in.OverrideCompanies, err = loadCompanies(paths.OverrideCompanies); err != nil {
		return nil, err
	}
	if in.VPNServices, err = loadVPNServices(paths.VPNServices); err != nil {
		return nil, err
	}

	return in, nil
}

func loadTrackers(path string) (*catalog.TrackersDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.WrapIO("read", path, err)
	}
	doc, err := catalog.ParseTrackers(data)
	if err != nil {
		return nil, parseError(path, err)
	}

	logging.Debug().
		Str("file", path).
		Int("trackers", len(doc.Trackers)).
		Int("categories", len(doc.Categories)).
		Int("domains", len(doc.TrackerDomains)).
		Msg("Loaded trackers document")

	return doc, nil
}

func loadCompanies(path string) (*catalog.CompaniesDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.WrapIO("read", path, err)
	}
	doc, err := catalog.ParseCompanies(data)
	if err != nil {
		return nil, parseError(path, err)
	}

	logging.Debug().
		Str("file", path).
		Int("companies", len(doc.Companies)).
		Msg("Loaded companies document")

	return doc, nil
}

func loadVPNServices(path string) (catalog.VPNServices, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.WrapIO("read", path, err)
	}
	services, err := catalog.ParseVPNServices(data)
	if err != nil {
		return nil, parseError(path, err)
	}

	logging.Debug().
		Str("file", path).
		Int("services", len(services)).
		Msg("Loaded VPN services document")

	return services, nil
}

// parseError attributes a document error to the file it came from. Raw JSON
// syntax errors carry a byte offset; schema violations do not.
func parseError(path string, err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &pkgerrors.ParseError{
			Format:  "json",
			File:    path,
			Offset:  syntaxErr.Offset,
			Message: syntaxErr.Error(),
			Err:     err,
		}
	}
	return pkgerrors.WrapParse("json", path, err)
}
