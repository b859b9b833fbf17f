package models

// Employee is a staff member registered through the employee form.
type Employee struct {
	Name         string   `json:"name" mapstructure:"name"`
	Surname      string   `json:"sobrenome" mapstructure:"sobrenome"`
	Email        string   `json:"email" mapstructure:"email"`
	CPF          CPF      `json:"cpf" mapstructure:"cpf"`
	Phone        Phone    `json:"telefone" mapstructure:"telefone"`
	BirthDate    string   `json:"datanasc" mapstructure:"datanasc"`
	Address      string   `json:"endereco" mapstructure:"endereco"`
	Neighborhood string   `json:"bairro" mapstructure:"bairro"`
	City         string   `json:"cidade" mapstructure:"cidade"`
	State        State    `json:"estado" mapstructure:"estado"`
	PostalCode   CEP      `json:"cep" mapstructure:"cep"`
	Gender       Gender   `json:"sexo" mapstructure:"sexo"`
	JobTitle     JobTitle `json:"cargo" mapstructure:"cargo"`
}
