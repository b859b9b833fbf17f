package schemas

import (
	"cadastro/internal/models"
	"cadastro/pkg/formrules"
)

func sectorField() formrules.Field {
	return selectField("ramo", "Ramo", models.PlaceholderShort, 4, models.Sectors(), "O ramo é obrigatório")
}

// companyFields are shared by the supplier and competitor forms.
func companyFields() []formrules.Field {
	return []formrules.Field{
		titleField("name", "Razão social", "O nome é obrigatório"),
		titleField("fantasia", "Nome fantasia", "O nome fantasia é obrigatório"),
		emailField(),
		cnpjField("cnpj", "CNPJ", "O CNPJ é obrigatório"),
		dateField("datainic", "Início das atividades", "A data é obrigatória"),
	}
}

// Supplier is the form behind /fornecedor.
func Supplier() *Form {
	descricao := titleField("descricao", "Descrição", "Descrição obrigatória")
	descricao.Kind = formrules.KindTextArea

	fields := append(companyFields(), sectorField(), cepField())
	fields = append(fields, addressFields()...)
	fields = append(fields, stateField(), descricao)
	return newForm[models.Supplier]("/fornecedor",
		formrules.NewSchema("fornecedor", "Cadastro de Fornecedor", fields...))
}
