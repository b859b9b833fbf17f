package formrules_test

import (
	"testing"

	"cadastro/pkg/formrules"

	"github.com/stretchr/testify/assert"
)

func TestTitleCase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple words", in: "ana maria", want: "Ana Maria"},
		{name: "surrounding whitespace", in: "  joão  silva", want: "João Silva"},
		{name: "double space inside", in: "rua  das flores", want: "Rua Das Flores"},
		{name: "keeps rest of word", in: "mcDonald da silva", want: "McDonald Da Silva"},
		{name: "accented first letter", in: "érica", want: "Érica"},
		{name: "only spaces", in: "   ", want: ""},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() { formrules.TitleCase(tt.in) })
			assert.Equal(t, tt.want, formrules.TitleCase(tt.in))
		})
	}
}

func TestLowerCase(t *testing.T) {
	assert.Equal(t, "test@example.com", formrules.LowerCase("TEST@Example.com"))
	assert.Equal(t, "são paulo", formrules.LowerCase("SÃO PAULO"))
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "12345678909", formrules.DigitsOnly("123.456.789-09"))
	assert.Equal(t, "11987654321", formrules.DigitsOnly("(11) 98765-4321"))
	assert.Equal(t, "", formrules.DigitsOnly("abc"))
}

func TestCountDigits(t *testing.T) {
	assert.Equal(t, 11, formrules.CountDigits("123.456.789-09"))
	assert.Equal(t, 0, formrules.CountDigits("no digits"))
}

func TestNormalizersAreIdempotent(t *testing.T) {
	inputs := []string{"ana maria", "  joão  silva ", "TEST@Example.com", "123.456.789-09", "a  b   c", ""}
	normalizers := map[string]formrules.Normalizer{
		"TitleCase":  formrules.TitleCase,
		"LowerCase":  formrules.LowerCase,
		"DigitsOnly": formrules.DigitsOnly,
		"Trim":       formrules.Trim,
		"Identity":   formrules.Identity,
	}

	for name, normalize := range normalizers {
		for _, in := range inputs {
			once := normalize(in)
			assert.Equal(t, once, normalize(once), "%s is not idempotent for %q", name, in)
		}
	}
}
