package schemas

import (
	"cadastro/internal/models"
	"cadastro/pkg/formrules"
)

// Competitor is the form behind /concorrente.
func Competitor() *Form {
	fields := append(companyFields(),
		numericField("capital", "Capital social", "Capital é obrigatório"),
		sectorField(),
		selectField("porte", "Porte da empresa", models.PlaceholderShort, 4, models.CompanySizes(), "O porte é obrigatório"),
	)
	fields = append(fields, addressFields()...)
	fields = append(fields, stateField())
	return newForm[models.Competitor]("/concorrente",
		formrules.NewSchema("concorrente", "Cadastro de Concorrente", fields...))
}
