package formrules_test

import (
	"testing"

	"cadastro/pkg/formrules"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	rule := formrules.Required("O nome é obrigatório")

	assert.True(t, rule.Check("Ana"))
	assert.False(t, rule.Check(""))
	assert.False(t, rule.Check("   "))
	assert.Equal(t, "O nome é obrigatório", rule.Message)
}

func TestLengthExact(t *testing.T) {
	rule := formrules.LengthExact(3, "tamanho inválido")

	assert.True(t, rule.Check("abc"))
	assert.True(t, rule.Check("ção"))
	assert.False(t, rule.Check("ab"))
	assert.False(t, rule.Check("abcd"))
}

func TestLengthRange(t *testing.T) {
	rule := formrules.LengthRange(2, 4, "tamanho inválido")

	assert.True(t, rule.Check("ab"))
	assert.True(t, rule.Check("abcd"))
	assert.False(t, rule.Check("a"))
	assert.False(t, rule.Check("abcde"))
}

func TestEmailShape(t *testing.T) {
	rule := formrules.EmailShape("Formato inválido")

	assert.True(t, rule.Check("TEST@Example.com"))
	assert.True(t, rule.Check("joao.silva+tag@empresa.com.br"))
	assert.False(t, rule.Check("not-an-email"))
	assert.False(t, rule.Check("user@localhost"))
	assert.False(t, rule.Check("@example.com"))
	assert.False(t, rule.Check(""))
}

func TestDigitCount(t *testing.T) {
	rule := formrules.DigitCount(11, "O CPF deve ter 11 digitos")

	assert.True(t, rule.Check("12345678909"))
	assert.True(t, rule.Check("123.456.789-09"))
	assert.False(t, rule.Check("123.456.789-0"))
	assert.False(t, rule.Check("123456789091"))
	assert.False(t, rule.Check(""))
}

func TestMinEnumLength(t *testing.T) {
	rule := formrules.MinEnumLength(7, "Campo inválido")

	assert.False(t, rule.Check("padrao"))
	assert.True(t, rule.Check("SP - São Paulo"))
}

func TestOneOf(t *testing.T) {
	rule := formrules.OneOf([]string{"masculino", "feminino", "outro"}, "Campo inválido")

	assert.True(t, rule.Check("outro"))
	assert.False(t, rule.Check("Outro"))
	assert.False(t, rule.Check(""))
}

func TestZeroRuleAccepts(t *testing.T) {
	var rule formrules.Rule
	assert.True(t, rule.Check("anything"))
}
