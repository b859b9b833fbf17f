package schemas

import (
	"cadastro/internal/models"
	"cadastro/pkg/formrules"
)

func genderField() formrules.Field {
	return formrules.Field{
		Name:  "sexo",
		Label: "Sexo",
		Kind:  formrules.KindRadio,
		Rules: []formrules.Rule{
			formrules.Required("O sexo é obrigatório"),
			formrules.OneOf(models.Genders(), invalidOption),
		},
		Normalize: formrules.Identity,
		Options:   models.Genders(),
	}
}

func stateField() formrules.Field {
	return selectField("estado", "Estado", models.PlaceholderDefault, 7, models.States(), "O estado é obrigatório")
}

// personFields are shared by the customer and employee forms.
func personFields() []formrules.Field {
	return []formrules.Field{
		titleField("name", "Nome", "O nome é obrigatório"),
		titleField("sobrenome", "Sobrenome", "O sobrenome é obrigatório"),
		emailField(),
		cpfField(),
		genderField(),
		dateField("datanasc", "Data Nasc.", "A data é obrigatória"),
		phoneField(),
	}
}

// Customer is the form behind /cliente.
func Customer() *Form {
	fields := append(personFields(), addressFields()...)
	fields = append(fields, stateField())
	return newForm[models.Customer]("/cliente",
		formrules.NewSchema("cliente", "Cadastro de Cliente", fields...))
}
