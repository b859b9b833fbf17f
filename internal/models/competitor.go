package models

// Competitor is a rival company registered through the competitor form.
type Competitor struct {
	LegalName         string      `json:"name" mapstructure:"name"`
	TradeName         string      `json:"fantasia" mapstructure:"fantasia"`
	Email             string      `json:"email" mapstructure:"email"`
	TaxID             CNPJ        `json:"cnpj" mapstructure:"cnpj"`
	ActivityStartDate string      `json:"datainic" mapstructure:"datainic"`
	Address           string      `json:"endereco" mapstructure:"endereco"`
	Neighborhood      string      `json:"bairro" mapstructure:"bairro"`
	City              string      `json:"cidade" mapstructure:"cidade"`
	State             State       `json:"estado" mapstructure:"estado"`
	Sector            Sector      `json:"ramo" mapstructure:"ramo"`
	Size              CompanySize `json:"porte" mapstructure:"porte"`
	ShareCapital      string      `json:"capital" mapstructure:"capital"`
}
