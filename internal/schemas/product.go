package schemas

import (
	"cadastro/internal/models"
	"cadastro/pkg/formrules"
)

// Product is the form behind /produto. Expiry is not checked against
// manufacture date.
func Product() *Form {
	descricao := titleField("descricao", "Descrição", "A descrição é obrigatória")
	descricao.Kind = formrules.KindTextArea

	return newForm[models.Product]("/produto", formrules.NewSchema("produto", "Cadastro de Produto",
		titleField("name", "Nome", "O nome é obrigatório"),
		descricao,
		numericField("codbarras", "Código de barras", "O código de barras é obrigatório"),
		numericField("precovenda", "Preço de venda", "O preço de venda é obrigatório"),
		numericField("precocusto", "Preço de custo", "O preço de custo é obrigatório"),
		dateField("datafab", "Data de fabricação", "A data de fabricação é obrigatória"),
		dateField("datavalid", "Data de validade", "A data de validade é obrigatória"),
		numericField("qtdestoque", "Quantidade em estoque", "A quantidade do estoque é obrigatória"),
		selectField("categoria", "Categoria", models.PlaceholderShort, 5, models.Categories(), "A categoria é obrigatória"),
		titleField("nomefornecedor", "Nome do fornecedor", "O nome do fornecedor é obrigatório"),
		cnpjField("cnpjfornecedor", "CNPJ do fornecedor", "O CNPJ do fornecedor é obrigatório"),
	))
}
