package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"cadastro/internal/metrics"
	"cadastro/internal/repositories"
	"cadastro/internal/schemas"
	"cadastro/pkg/formrules"

	"github.com/rs/zerolog"
)

// FormService handles business logic related to form submissions.
type FormService struct {
	repo repositories.FormRepository
	log  zerolog.Logger
}

// NewFormService creates a new FormService.
func NewFormService(repo repositories.FormRepository, log zerolog.Logger) *FormService {
	return &FormService{
		repo: repo,
		log:  log.With().Str("component", "form_service").Logger(),
	}
}

// Submission is the outcome of validating one form. Exactly one of Record
// and Errors is set.
type Submission struct {
	Form   *schemas.Form
	Values formrules.Values
	Record interface{}
	Errors formrules.FieldErrors
}

// Accepted reports whether every field passed.
func (s *Submission) Accepted() bool {
	return len(s.Errors) == 0 && s.Record != nil
}

// Output renders the accepted record as two-space indented JSON.
func (s *Submission) Output() (string, error) {
	if !s.Accepted() {
		return "", fmt.Errorf("submission to %s was rejected", s.Form.Slug())
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.Record); err != nil {
		return "", fmt.Errorf("failed to encode %s record: %w", s.Form.Slug(), err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// FieldResult is the outcome of validating a single field.
type FieldResult struct {
	Field   string `json:"field"`
	OK      bool   `json:"ok"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message,omitempty"`
}

// GetAllForms retrieves every registry form.
func (s *FormService) GetAllForms() ([]*schemas.Form, error) {
	return s.repo.GetAll()
}

// GetForm retrieves a single form by its slug.
func (s *FormService) GetForm(slug string) (*schemas.Form, error) {
	return s.repo.GetBySlug(slug)
}

// Submit validates raw input against the form's schema. A rejected
// submission is not an error: it comes back with Errors set. Labels and
// log fields use the registered slug, never the caller's string, which
// may alias a request buffer.
func (s *FormService) Submit(slug string, raw map[string]string) (*Submission, error) {
	form, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	name := form.Slug()

	start := time.Now()
	values, fieldErrs := form.Schema.Validate(raw)
	metrics.ValidationDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	if len(fieldErrs) > 0 {
		metrics.FormSubmissions.WithLabelValues(name, metrics.OutcomeRejected).Inc()
		for _, field := range fieldErrs.Fields() {
			metrics.FieldRejections.WithLabelValues(name, field).Inc()
		}
		s.log.Debug().Str("form", name).Strs("fields", fieldErrs.Fields()).Msg("submission rejected")
		return &Submission{Form: form, Errors: fieldErrs}, nil
	}

	record, err := form.Decode(values)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s record: %w", name, err)
	}

	metrics.FormSubmissions.WithLabelValues(name, metrics.OutcomeAccepted).Inc()
	s.log.Info().Str("form", name).Msg("submission accepted")
	return &Submission{Form: form, Values: values, Record: record}, nil
}

// CheckField validates one field of a form.
func (s *FormService) CheckField(slug, field, raw string) (*FieldResult, error) {
	form, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	value, err := form.Schema.ValidateField(field, raw)
	var fieldErr *formrules.FieldError
	switch {
	case err == nil:
		return &FieldResult{Field: field, OK: true, Value: value}, nil
	case errors.As(err, &fieldErr):
		f, _ := form.Schema.Field(field)
		metrics.FieldRejections.WithLabelValues(form.Slug(), f.Name).Inc()
		return &FieldResult{Field: field, OK: false, Message: fieldErr.Message}, nil
	default:
		return nil, err
	}
}
