package schemas

import (
	"cadastro/internal/models"
	"cadastro/pkg/formrules"
)

// Employee is the form behind /funcionario.
func Employee() *Form {
	fields := append(personFields(), cepField())
	fields = append(fields, addressFields()...)
	fields = append(fields,
		stateField(),
		selectField("cargo", "Cargo", models.PlaceholderDefault, 7, models.JobTitles(), "Cargo é obrigatório"),
	)
	return newForm[models.Employee]("/funcionario",
		formrules.NewSchema("funcionario", "Cadastro de Funcionário", fields...))
}
