package models

// Customer is a person registered through the customer form.
type Customer struct {
	Name         string `json:"name" mapstructure:"name"`
	Surname      string `json:"sobrenome" mapstructure:"sobrenome"`
	Email        string `json:"email" mapstructure:"email"`
	CPF          CPF    `json:"cpf" mapstructure:"cpf"`
	Phone        Phone  `json:"telefone" mapstructure:"telefone"`
	BirthDate    string `json:"datanasc" mapstructure:"datanasc"`
	Address      string `json:"endereco" mapstructure:"endereco"`
	Neighborhood string `json:"bairro" mapstructure:"bairro"`
	City         string `json:"cidade" mapstructure:"cidade"`
	State        State  `json:"estado" mapstructure:"estado"`
	Gender       Gender `json:"sexo" mapstructure:"sexo"`
}
