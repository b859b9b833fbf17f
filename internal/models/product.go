package models

// Product is an item registered through the product form. Prices,
// quantities and the barcode are kept as typed, with no numeric parsing.
type Product struct {
	Name            string   `json:"name" mapstructure:"name"`
	Description     string   `json:"descricao" mapstructure:"descricao"`
	Barcode         string   `json:"codbarras" mapstructure:"codbarras"`
	SalePrice       string   `json:"precovenda" mapstructure:"precovenda"`
	CostPrice       string   `json:"precocusto" mapstructure:"precocusto"`
	StockQuantity   string   `json:"qtdestoque" mapstructure:"qtdestoque"`
	Category        Category `json:"categoria" mapstructure:"categoria"`
	SupplierName    string   `json:"nomefornecedor" mapstructure:"nomefornecedor"`
	SupplierTaxID   CNPJ     `json:"cnpjfornecedor" mapstructure:"cnpjfornecedor"`
	ManufactureDate string   `json:"datafab" mapstructure:"datafab"`
	ExpiryDate      string   `json:"datavalid" mapstructure:"datavalid"`
}
