package repositories

import (
	"errors"

	"cadastro/internal/schemas"
)

// ErrFormNotFound is returned when no form answers to a slug.
var ErrFormNotFound = errors.New("form not found")

// FormRepository defines the interface for looking up registry forms.
type FormRepository interface {
	GetAll() ([]*schemas.Form, error)
	GetBySlug(slug string) (*schemas.Form, error)
	Register(form *schemas.Form) error
}
