package repositories

import (
	"fmt"
	"sync"

	"cadastro/internal/schemas"
)

// MemoryFormRepository is an in-memory implementation of FormRepository.
// Forms are registered at startup and read for every request afterwards.
type MemoryFormRepository struct {
	forms map[string]*schemas.Form
	order []string
	mu    sync.RWMutex
}

// NewMemoryFormRepository creates a new instance of MemoryFormRepository.
func NewMemoryFormRepository() *MemoryFormRepository {
	return &MemoryFormRepository{
		forms: make(map[string]*schemas.Form),
	}
}

// GetAll returns every registered form in registration order.
func (r *MemoryFormRepository) GetAll() ([]*schemas.Form, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formList := make([]*schemas.Form, 0, len(r.order))
	for _, slug := range r.order {
		formList = append(formList, r.forms[slug])
	}
	return formList, nil
}

// GetBySlug returns a form by its slug.
func (r *MemoryFormRepository) GetBySlug(slug string) (*schemas.Form, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	form, ok := r.forms[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFormNotFound, slug)
	}
	return form, nil
}

// Register adds a form. Slugs and paths must be unique.
func (r *MemoryFormRepository) Register(form *schemas.Form) error {
	if form == nil || form.Schema == nil {
		return fmt.Errorf("cannot register a form without schema")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.forms[form.Slug()]; ok {
		return fmt.Errorf("form %s already registered", form.Slug())
	}
	for _, existing := range r.forms {
		if existing.Path == form.Path {
			return fmt.Errorf("path %s already taken by form %s", form.Path, existing.Slug())
		}
	}
	r.forms[form.Slug()] = form
	r.order = append(r.order, form.Slug())
	return nil
}
