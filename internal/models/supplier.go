package models

// Supplier is a company registered through the supplier form.
type Supplier struct {
	LegalName         string `json:"name" mapstructure:"name"`
	TradeName         string `json:"fantasia" mapstructure:"fantasia"`
	Email             string `json:"email" mapstructure:"email"`
	TaxID             CNPJ   `json:"cnpj" mapstructure:"cnpj"`
	ActivityStartDate string `json:"datainic" mapstructure:"datainic"`
	Address           string `json:"endereco" mapstructure:"endereco"`
	Neighborhood      string `json:"bairro" mapstructure:"bairro"`
	City              string `json:"cidade" mapstructure:"cidade"`
	State             State  `json:"estado" mapstructure:"estado"`
	Sector            Sector `json:"ramo" mapstructure:"ramo"`
	PostalCode        CEP    `json:"cep" mapstructure:"cep"`
	Description       string `json:"descricao" mapstructure:"descricao"`
}
