package formrules_test

import (
	"errors"
	"testing"

	"cadastro/pkg/formrules"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() *formrules.Schema {
	return formrules.NewSchema("teste", "Cadastro de Teste",
		formrules.Field{
			Name:      "name",
			Label:     "Nome",
			Rules:     []formrules.Rule{formrules.Required("O nome é obrigatório")},
			Normalize: formrules.TitleCase,
		},
		formrules.Field{
			Name: "email",
			Rules: []formrules.Rule{
				formrules.Required("O e-mail é obrigatório"),
				formrules.EmailShape("Formato inválido"),
			},
			Normalize: formrules.LowerCase,
		},
		formrules.Field{
			Name: "cpf",
			Rules: []formrules.Rule{
				formrules.Required("O cpf é obrigatório"),
				formrules.DigitCount(11, "O CPF deve ter 11 digitos"),
			},
			Normalize: formrules.DigitsOnly,
		},
		formrules.Field{
			Name:  "nota",
			Rules: []formrules.Rule{formrules.Required("obrigatório")},
		},
	)
}

func TestSchema_ValidateAccepts(t *testing.T) {
	values, errs := testSchema().Validate(map[string]string{
		"name":  "  ana  maria ",
		"email": "ANA@Example.com",
		"cpf":   "123.456.789-09",
		"nota":  "x",
		"extra": "ignored",
	})

	require.Nil(t, errs)
	assert.Equal(t, formrules.Values{
		"name":  "Ana Maria",
		"email": "ana@example.com",
		"cpf":   "12345678909",
		"nota":  "x",
	}, values)
}

func TestSchema_ValidateReportsFirstFailurePerField(t *testing.T) {
	values, errs := testSchema().Validate(map[string]string{
		"email": "",
		"cpf":   "123",
	})

	assert.Nil(t, values)
	assert.Equal(t, formrules.FieldErrors{
		"name":  "O nome é obrigatório",
		"email": "O e-mail é obrigatório",
		"cpf":   "O CPF deve ter 11 digitos",
		"nota":  "obrigatório",
	}, errs)
	assert.Equal(t, []string{"cpf", "email", "name", "nota"}, errs.Fields())
	assert.Contains(t, errs.Error(), "email: O e-mail é obrigatório")
}

func TestSchema_ValidateIsIdempotent(t *testing.T) {
	s := testSchema()
	first, errs := s.Validate(map[string]string{
		"name":  "joão  da silva",
		"email": "JOAO@Example.COM",
		"cpf":   "123.456.789-09",
		"nota":  "ok",
	})
	require.Nil(t, errs)

	second, errs := s.Validate(first)
	require.Nil(t, errs)
	assert.Equal(t, first, second)
}

func TestSchema_ValidateField(t *testing.T) {
	s := testSchema()

	value, err := s.ValidateField("email", "TEST@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", value)

	_, err = s.ValidateField("email", "not-an-email")
	var fieldErr *formrules.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "email", fieldErr.Field)
	assert.NotEmpty(t, fieldErr.Message)

	_, err = s.ValidateField("missing", "x")
	assert.True(t, errors.Is(err, formrules.ErrUnknownField))
}

func TestSchema_Names(t *testing.T) {
	assert.Equal(t, []string{"name", "email", "cpf", "nota"}, testSchema().Names())
}

func TestNewSchema_PanicsOnDuplicateField(t *testing.T) {
	assert.Panics(t, func() {
		formrules.NewSchema("dup", "Dup",
			formrules.Field{Name: "name"},
			formrules.Field{Name: "name"},
		)
	})
}

func TestSchema_JSONSchema(t *testing.T) {
	js := testSchema().JSONSchema()

	assert.Equal(t, "object", js["type"])
	assert.Equal(t, false, js["additionalProperties"])
	props, ok := js["properties"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, props, 4)
	assert.Equal(t, map[string]interface{}{"type": "string"}, props["cpf"])
}
