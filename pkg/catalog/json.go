package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/zhelvis/companiesdb/pkg/constants"
	pkgerrors "github.com/zhelvis/companiesdb/pkg/errors"
)

// Marshal renders v in the canonical output format shared by every produced
// JSON document: pretty-printed with 4-space indentation, no HTML escaping of
// URL characters, and a trailing newline.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", constants.JSONIndent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encodeCompact encodes v as compact JSON without HTML escaping. The
// collection MarshalJSON implementations build ordered objects from these
// fragments; the outer encoder re-indents them.
func encodeCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// marshalOrdered encodes a JSON object whose keys appear exactly in the given
// order. Values are fetched through the value function.
func marshalOrdered(keys []string, value func(key string) any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := encodeCompact(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := encodeCompact(value(key))
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// objectFields decodes data as a JSON object and returns its raw fields.
func objectFields(data []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &pkgerrors.ValidationError{Message: "must be a JSON object"}
		}
		return nil, err
	}
	// json.Unmarshal leaves the map nil for a literal null
	if fields == nil {
		return nil, &pkgerrors.ValidationError{Message: "must be a JSON object"}
	}
	return fields, nil
}

// checkFields rejects any field not in the allowed set. Schemas are closed:
// an unknown field fails validation rather than being dropped.
func checkFields(fields map[string]json.RawMessage, allowed ...string) error {
	for _, key := range sortedFieldNames(fields) {
		known := false
		for _, name := range allowed {
			if key == name {
				known = true
				break
			}
		}
		if !known {
			return &pkgerrors.ValidationError{Field: key, Message: "unknown field"}
		}
	}
	return nil
}

// sortedFieldNames returns the field names in ascending order so that
// validation errors are deterministic.
func sortedFieldNames(fields map[string]json.RawMessage) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// unmarshalRequired decodes a required field into dst, prefixing errors with
// the field name.
func unmarshalRequired(fields map[string]json.RawMessage, name string, dst any) error {
	raw, ok := fields[name]
	if !ok {
		return &pkgerrors.ValidationError{Field: name, Message: "required field missing"}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// stringField returns the value of a required string field.
func stringField(fields map[string]json.RawMessage, name string) (string, error) {
	raw, ok := fields[name]
	if !ok {
		return "", &pkgerrors.ValidationError{Field: name, Message: "required field missing"}
	}
	s, err := stringValue(raw)
	if err != nil {
		return "", &pkgerrors.ValidationError{Field: name, Value: string(raw), Message: "must be a string"}
	}
	return s, nil
}

// nullableStringField returns the value of a required string-or-null field.
// A JSON null yields a nil pointer.
func nullableStringField(fields map[string]json.RawMessage, name string) (*string, error) {
	raw, ok := fields[name]
	if !ok {
		return nil, &pkgerrors.ValidationError{Field: name, Message: "required field missing"}
	}
	if isNull(raw) {
		return nil, nil
	}
	s, err := stringValue(raw)
	if err != nil {
		return nil, &pkgerrors.ValidationError{Field: name, Value: string(raw), Message: "must be a string or null"}
	}
	return &s, nil
}

// optionalStringField returns the value of an optional string field, or the
// empty string when the field is absent.
func optionalStringField(fields map[string]json.RawMessage, name string) (string, error) {
	raw, ok := fields[name]
	if !ok {
		return "", nil
	}
	s, err := stringValue(raw)
	if err != nil {
		return "", &pkgerrors.ValidationError{Field: name, Value: string(raw), Message: "must be a string"}
	}
	return s, nil
}

// optionalIntField returns the value of an optional integer field, or nil
// when the field is absent.
func optionalIntField(fields map[string]json.RawMessage, name string) (*int, error) {
	raw, ok := fields[name]
	if !ok {
		return nil, nil
	}
	// json.Number would accept a quoted numeric literal, so rule strings out
	// up front.
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] == '"' || isNull(raw) {
		return nil, &pkgerrors.ValidationError{Field: name, Value: string(raw), Message: "must be a number"}
	}
	var num json.Number
	if err := json.Unmarshal(raw, &num); err != nil {
		return nil, &pkgerrors.ValidationError{Field: name, Value: string(raw), Message: "must be a number"}
	}
	n, err := strconv.Atoi(num.String())
	if err != nil {
		return nil, &pkgerrors.ValidationError{Field: name, Value: string(raw), Message: "must be an integer"}
	}
	return &n, nil
}

// stringSliceField returns the value of a required array-of-strings field.
func stringSliceField(fields map[string]json.RawMessage, name string) ([]string, error) {
	raw, ok := fields[name]
	if !ok {
		return nil, &pkgerrors.ValidationError{Field: name, Message: "required field missing"}
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || isNull(raw) {
		return nil, &pkgerrors.ValidationError{Field: name, Value: string(raw), Message: "must be an array of strings"}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, err := stringValue(item)
		if err != nil {
			return nil, &pkgerrors.ValidationError{Field: name, Value: string(item), Message: "must be an array of strings"}
		}
		out = append(out, s)
	}
	return out, nil
}

// stringValue decodes a raw JSON string. Null is not a string.
func stringValue(raw json.RawMessage) (string, error) {
	if isNull(raw) {
		return "", errors.New("null is not a string")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", err
	}
	return s, nil
}

// isNull reports whether raw is the JSON null literal.
func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
