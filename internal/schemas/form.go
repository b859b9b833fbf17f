// Package schemas declares the five registration forms of the registry
// and decodes their accepted values into typed records.
package schemas

import (
	"fmt"

	"cadastro/pkg/formrules"

	"github.com/go-viper/mapstructure/v2"
)

// Form binds a schema to its route and to the record type it produces.
type Form struct {
	Schema *formrules.Schema
	Path   string
	decode func(formrules.Values) (interface{}, error)
}

// Slug identifies the form in URLs and metrics.
func (f *Form) Slug() string { return f.Schema.Slug }

// Title is the heading shown above the form.
func (f *Form) Title() string { return f.Schema.Title }

// Decode turns accepted values into the form's typed record.
func (f *Form) Decode(values formrules.Values) (interface{}, error) {
	return f.decode(values)
}

func newForm[T any](path string, schema *formrules.Schema) *Form {
	return &Form{Schema: schema, Path: path, decode: decodeInto[T]}
}

// decodeInto fails when the schema and the record disagree on a field,
// in either direction.
func decodeInto[T any](values formrules.Values) (interface{}, error) {
	var record T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &record,
		ErrorUnused: true,
		ErrorUnset:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := dec.Decode(map[string]string(values)); err != nil {
		return nil, fmt.Errorf("failed to decode %T: %w", record, err)
	}
	return &record, nil
}

var all = []*Form{
	Customer(),
	Employee(),
	Product(),
	Supplier(),
	Competitor(),
}

// All returns the registry forms in menu order.
func All() []*Form {
	out := make([]*Form, len(all))
	copy(out, all)
	return out
}
