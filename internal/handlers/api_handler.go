package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cadastro/internal/repositories"
	"cadastro/internal/schemas"
	"cadastro/internal/services"
	"cadastro/pkg/formrules"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/xeipuuv/gojsonschema"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// APIHandler exposes the forms as JSON for other front ends.
type APIHandler struct {
	service *services.FormService
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(service *services.FormService) *APIHandler {
	return &APIHandler{
		service: service,
	}
}

// RegisterRoutes registers the form API routes with the Fiber app.
func (h *APIHandler) RegisterRoutes(router fiber.Router) {
	formRoutes := router.Group("/forms")
	formRoutes.Get("/", h.HandleGetForms)
	formRoutes.Get("/:form", h.HandleGetForm)
	formRoutes.Post("/:form/validate", h.HandleValidateForm)
	formRoutes.Post("/:form/fields/:field", h.HandleValidateField)
	formRoutes.Post("/:form/export", h.HandleExportForm)
}

type formSummary struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

type fieldDescriptor struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Kind        string   `json:"kind"`
	Options     []string `json:"options,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Hint        string   `json:"hint,omitempty"`
}

type formDescriptor struct {
	formSummary
	Fields []fieldDescriptor `json:"fields"`
}

func summarize(form *schemas.Form) formSummary {
	return formSummary{Slug: form.Slug(), Title: form.Title(), Path: form.Path}
}

// HandleGetForms lists every form.
func (h *APIHandler) HandleGetForms(c *fiber.Ctx) error {
	forms, err := h.service.GetAllForms()
	if err != nil {
		log.Error().Err(err).Msg("Error getting all forms")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve forms",
			"error":   err.Error(),
		})
	}
	out := make([]formSummary, 0, len(forms))
	for _, form := range forms {
		out = append(out, summarize(form))
	}
	return c.JSON(out)
}

// HandleGetForm describes the fields of one form.
func (h *APIHandler) HandleGetForm(c *fiber.Ctx) error {
	form, err := h.lookup(c)
	if err != nil {
		return err
	}
	desc := formDescriptor{formSummary: summarize(form)}
	for _, f := range form.Schema.Fields {
		desc.Fields = append(desc.Fields, fieldDescriptor{
			Name:        f.Name,
			Label:       f.Label,
			Kind:        string(f.Kind),
			Options:     f.Options,
			Placeholder: f.Placeholder,
			Hint:        f.Hint,
		})
	}
	return c.JSON(desc)
}

// HandleValidateForm validates a whole record.
func (h *APIHandler) HandleValidateForm(c *fiber.Ctx) error {
	sub, err := h.submit(c)
	if err != nil {
		return err
	}
	if !sub.Accepted() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"ok":     false,
			"errors": sub.Errors,
		})
	}
	return c.JSON(fiber.Map{
		"ok":     true,
		"record": sub.Record,
	})
}

// HandleValidateField validates a single value.
func (h *APIHandler) HandleValidateField(c *fiber.Ctx) error {
	slug, field := c.Params("form"), c.Params("field")
	c.Locals(LocalForm, slug)

	var body struct {
		Value *string `json:"value"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil || body.Value == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Request body must be an object with a string \"value\"",
		})
	}

	res, err := h.service.CheckField(slug, field, *body.Value)
	switch {
	case errors.Is(err, repositories.ErrFormNotFound):
		return notFound(c, fmt.Sprintf("Form %s not found", slug))
	case errors.Is(err, formrules.ErrUnknownField):
		return notFound(c, fmt.Sprintf("Field %s not found in form %s", field, slug))
	case err != nil:
		log.Error().Err(err).Str("form", slug).Msg("Error checking field")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not validate field",
			"error":   err.Error(),
		})
	}

	if !res.OK {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(res)
	}
	return c.JSON(res)
}

// HandleExportForm validates a record and returns it as a spreadsheet.
func (h *APIHandler) HandleExportForm(c *fiber.Ctx) error {
	sub, err := h.submit(c)
	if err != nil {
		return err
	}
	if !sub.Accepted() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"ok":     false,
			"errors": sub.Errors,
		})
	}

	data, err := services.ExportXLSX(sub)
	if err != nil {
		log.Error().Err(err).Str("form", sub.Form.Slug()).Msg("Error exporting record")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not export record",
			"error":   err.Error(),
		})
	}
	c.Attachment(sub.Form.Slug() + ".xlsx")
	c.Set(fiber.HeaderContentType, mimeXLSX)
	return c.Send(data)
}

// lookup resolves the :form parameter.
func (h *APIHandler) lookup(c *fiber.Ctx) (*schemas.Form, error) {
	slug := c.Params("form")
	c.Locals(LocalForm, slug)

	form, err := h.service.GetForm(slug)
	if errors.Is(err, repositories.ErrFormNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Form %s not found", slug))
	}
	return form, err
}

// submit checks the body against the form's JSON Schema and validates it.
func (h *APIHandler) submit(c *fiber.Ctx) (*services.Submission, error) {
	form, err := h.lookup(c)
	if err != nil {
		return nil, err
	}

	raw, problems, err := decodeRecord(form, c.Body())
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}
	if len(problems) > 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, strings.Join(problems, "; "))
	}

	return h.service.Submit(form.Slug(), raw)
}

// decodeRecord returns the record as raw strings, or the JSON Schema
// violations of the body.
func decodeRecord(form *schemas.Form, body []byte) (map[string]string, []string, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(form.Schema.JSONSchema()),
		gojsonschema.NewBytesLoader(body),
	)
	if err != nil {
		return nil, nil, err
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			problems = append(problems, e.String())
		}
		return nil, problems, nil
	}

	raw := map[string]string{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, nil, err
	}
	return raw, nil, nil
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": msg,
	})
}
