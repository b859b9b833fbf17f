package handlers

import (
	"errors"

	"cadastro/internal/repositories"
	"cadastro/internal/services"
	"cadastro/internal/views"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// FormHandler serves the HTML pages of the registry.
type FormHandler struct {
	service *services.FormService
	views   *views.Renderer
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(service *services.FormService, renderer *views.Renderer) *FormHandler {
	return &FormHandler{
		service: service,
		views:   renderer,
	}
}

// RegisterRoutes registers the home page and one page per form.
func (h *FormHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleHome)
	router.Get("/:form", h.HandleShowForm)
	router.Post("/:form", h.HandleSubmitForm)
}

// HandleHome lists the registry forms.
func (h *FormHandler) HandleHome(c *fiber.Ctx) error {
	forms, err := h.service.GetAllForms()
	if err != nil {
		return err
	}
	return h.views.Render(c, fiber.StatusOK, "home", views.NewPage("Início", "", forms))
}

// HandleShowForm renders an empty form.
func (h *FormHandler) HandleShowForm(c *fiber.Ctx) error {
	slug := c.Params("form")
	c.Locals(LocalForm, slug)

	form, err := h.service.GetForm(slug)
	if err != nil {
		return pageError(err)
	}
	forms, err := h.service.GetAllForms()
	if err != nil {
		return err
	}
	return h.views.Render(c, fiber.StatusOK, "form", views.FormPage{
		Page: views.NewPage(form.Title(), form.Slug(), forms),
		Form: views.NewFormView(form, nil, nil),
	})
}

// HandleSubmitForm validates a posted form. The inputs are rendered back
// as typed; an accepted record is shown below them.
func (h *FormHandler) HandleSubmitForm(c *fiber.Ctx) error {
	slug := c.Params("form")
	c.Locals(LocalForm, slug)

	form, err := h.service.GetForm(slug)
	if err != nil {
		return pageError(err)
	}

	raw := make(map[string]string, len(form.Schema.Fields))
	for _, name := range form.Schema.Names() {
		raw[name] = c.FormValue(name)
	}

	sub, err := h.service.Submit(slug, raw)
	if err != nil {
		log.Error().Err(err).Str("form", slug).Msg("submit")
		return pageError(err)
	}
	forms, err := h.service.GetAllForms()
	if err != nil {
		return err
	}

	page := views.FormPage{
		Page: views.NewPage(form.Title(), form.Slug(), forms),
		Form: views.NewFormView(form, raw, sub.Errors),
	}
	if !sub.Accepted() {
		return h.views.Render(c, fiber.StatusUnprocessableEntity, "form", page)
	}

	page.Output, err = sub.Output()
	if err != nil {
		return err
	}
	return h.views.Render(c, fiber.StatusOK, "form", page)
}

func pageError(err error) error {
	if errors.Is(err, repositories.ErrFormNotFound) {
		return fiber.ErrNotFound
	}
	return err
}
