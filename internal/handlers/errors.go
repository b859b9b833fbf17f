package handlers

import (
	"errors"
	"strings"

	"cadastro/internal/repositories"
	"cadastro/pkg/formrules"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/rs/zerolog/log"
)

// LocalForm is the fiber.Ctx local holding the slug of the form a request
// addresses.
const LocalForm = "form"

// ErrorHandler answers errors returned by handlers: JSON under /api,
// plain text elsewhere.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := utils.StatusMessage(code)

	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		code, msg = fe.Code, fe.Message
	case errors.Is(err, repositories.ErrFormNotFound), errors.Is(err, formrules.ErrUnknownField):
		code, msg = fiber.StatusNotFound, err.Error()
	}

	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}

	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(code).JSON(fiber.Map{
			"message": msg,
		})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(code).SendString(msg)
}
