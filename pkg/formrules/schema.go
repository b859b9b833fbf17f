// Package formrules holds the field-level validation and normalization
// rules shared by every registration form, and the Schema type that
// composes them into an ordered form definition.
package formrules

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownField is returned when a field name is not part of a schema.
var ErrUnknownField = errors.New("unknown field")

// Kind tells the presentation layer which input widget a field needs.
type Kind string

const (
	KindText     Kind = "text"
	KindEmail    Kind = "email"
	KindDigits   Kind = "digits"
	KindNumber   Kind = "number"
	KindDate     Kind = "date"
	KindSelect   Kind = "select"
	KindRadio    Kind = "radio"
	KindTextArea Kind = "textarea"
)

// Field is one entry of a schema: the rules a raw value must pass, in
// order, and the normalizer applied once all of them pass.
type Field struct {
	Name        string
	Label       string
	Kind        Kind
	Rules       []Rule
	Normalize   Normalizer
	Options     []string
	Placeholder string
	Hint        string
}

// Apply runs the field's rules against raw. It returns the normalized
// value, or the message of the first rule that rejected it.
func (f Field) Apply(raw string) (string, string, bool) {
	for _, r := range f.Rules {
		if !r.Check(raw) {
			return "", r.Message, false
		}
	}
	if f.Normalize == nil {
		return raw, "", true
	}
	return f.Normalize(raw), "", true
}

// FieldError is the rejection of a single field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldErrors maps a field name to the message of its first failing rule.
type FieldErrors map[string]string

// Fields returns the rejected field names sorted alphabetically.
func (fe FieldErrors) Fields() []string {
	names := make([]string, 0, len(fe))
	for name := range fe {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, name := range fe.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", name, fe[name]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Values holds the normalized value of every field of an accepted form.
type Values map[string]string

// Schema is the ordered set of field rules for one entity type.
type Schema struct {
	Slug   string
	Title  string
	Fields []Field

	index map[string]int
}

// NewSchema builds a schema. Field names must be unique.
func NewSchema(slug, title string, fields ...Field) *Schema {
	s := &Schema{
		Slug:   slug,
		Title:  title,
		Fields: fields,
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		if _, dup := s.index[f.Name]; dup {
			panic(fmt.Sprintf("formrules: schema %s declares field %q twice", slug, f.Name))
		}
		s.index[f.Name] = i
	}
	return s
}

// Field looks a field up by name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.Fields[i], true
}

// Names returns the field names in declaration order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// ValidateField validates a single raw value. A rejection comes back as a
// *FieldError; a name outside the schema as ErrUnknownField.
func (s *Schema) ValidateField(name, raw string) (string, error) {
	f, ok := s.Field(name)
	if !ok {
		return "", fmt.Errorf("%w %q in form %s", ErrUnknownField, name, s.Slug)
	}
	value, msg, ok := f.Apply(raw)
	if !ok {
		return "", &FieldError{Field: name, Message: msg}
	}
	return value, nil
}

// Validate runs every field independently. Missing entries in raw are
// treated as empty input and extra entries are ignored. On success the
// returned errors are nil; on failure the values are nil.
func (s *Schema) Validate(raw map[string]string) (Values, FieldErrors) {
	values := make(Values, len(s.Fields))
	errs := FieldErrors{}
	for _, f := range s.Fields {
		value, msg, ok := f.Apply(raw[f.Name])
		if !ok {
			errs[f.Name] = msg
			continue
		}
		values[f.Name] = value
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return values, nil
}

// JSONSchema describes the accepted request body: an object whose known
// properties are strings and which carries nothing else.
func (s *Schema) JSONSchema() map[string]interface{} {
	props := make(map[string]interface{}, len(s.Fields))
	for _, f := range s.Fields {
		props[f.Name] = map[string]interface{}{"type": "string"}
	}
	return map[string]interface{}{
		"$schema":              "http://json-schema.org/draft-07/schema#",
		"title":                s.Title,
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
}
