package schemas

import (
	"fmt"

	"cadastro/internal/models"
	"cadastro/pkg/formrules"
)

const invalidOption = "Campo inválido"

// titleField is a required free-text field stored in title case.
func titleField(name, label, requiredMsg string) formrules.Field {
	return formrules.Field{
		Name:      name,
		Label:     label,
		Kind:      formrules.KindText,
		Rules:     []formrules.Rule{formrules.Required(requiredMsg)},
		Normalize: formrules.TitleCase,
	}
}

func emailField() formrules.Field {
	return formrules.Field{
		Name:  "email",
		Label: "E-mail",
		Kind:  formrules.KindEmail,
		Rules: []formrules.Rule{
			formrules.Required("O e-mail é obrigatório"),
			formrules.EmailShape("Formato inválido"),
		},
		Normalize: func(s string) string { return formrules.LowerCase(formrules.Trim(s)) },
	}
}

// digitsField accepts masked input and stores the bare digits.
func digitsField(name, label string, digits int, requiredMsg, lengthMsg, hint string) formrules.Field {
	return formrules.Field{
		Name:  name,
		Label: label,
		Kind:  formrules.KindDigits,
		Rules: []formrules.Rule{
			formrules.Required(requiredMsg),
			formrules.DigitCount(digits, lengthMsg),
		},
		Normalize: formrules.DigitsOnly,
		Hint:      hint,
	}
}

func cpfField() formrules.Field {
	return digitsField("cpf", "CPF", models.CPFLength, "O cpf é obrigatório",
		fmt.Sprintf("O CPF deve ter %d digitos", models.CPFLength), "999.999.999-99")
}

func cnpjField(name, label, requiredMsg string) formrules.Field {
	return digitsField(name, label, models.CNPJLength, requiredMsg,
		fmt.Sprintf("O %s deve ter %d digitos", label, models.CNPJLength), "99.999.999/9999-99")
}

func phoneField() formrules.Field {
	return digitsField("telefone", "Telefone", models.PhoneLength, "O telefone é obrigatório",
		fmt.Sprintf("O telefone deve ter %d digitos", models.PhoneLength), "DDD + número")
}

func cepField() formrules.Field {
	msg := fmt.Sprintf("CEP deve ter %d digitos", models.CEPLength)
	return digitsField("cep", "CEP", models.CEPLength, msg, msg, "Somente números")
}

// dateField is only checked for presence; the input widget owns the format.
func dateField(name, label, requiredMsg string) formrules.Field {
	return formrules.Field{
		Name:      name,
		Label:     label,
		Kind:      formrules.KindDate,
		Rules:     []formrules.Rule{formrules.Required(requiredMsg)},
		Normalize: formrules.Trim,
	}
}

// numericField is free text that looks numeric. Only presence is checked.
func numericField(name, label, requiredMsg string) formrules.Field {
	return formrules.Field{
		Name:      name,
		Label:     label,
		Kind:      formrules.KindNumber,
		Rules:     []formrules.Rule{formrules.Required(requiredMsg)},
		Normalize: formrules.Trim,
	}
}

// selectField rejects the placeholder through the minimum length proxy
// first, then anything outside the closed list.
func selectField(name, label, placeholder string, minLen int, options []string, requiredMsg string) formrules.Field {
	return formrules.Field{
		Name:  name,
		Label: label,
		Kind:  formrules.KindSelect,
		Rules: []formrules.Rule{
			formrules.MinEnumLength(minLen, invalidOption),
			formrules.Required(requiredMsg),
			formrules.OneOf(options, invalidOption),
		},
		Normalize:   formrules.Identity,
		Options:     options,
		Placeholder: placeholder,
	}
}

func addressFields() []formrules.Field {
	return []formrules.Field{
		titleField("endereco", "Endereço", "O endereço é obrigatório"),
		titleField("bairro", "Bairro", "O bairro é obrigatório"),
		titleField("cidade", "Cidade", "A cidade é obrigatória"),
	}
}
