package models

// Fixed-length digit strings. Values of these types hold digits only.
type (
	// CPF is the 11-digit individual taxpayer number.
	CPF string
	// CNPJ is the 14-digit company registration number.
	CNPJ string
	// Phone is an 11-digit number: area code plus subscriber number.
	Phone string
	// CEP is the 8-digit postal code.
	CEP string
)

// Document lengths, in digits.
const (
	CPFLength   = 11
	CNPJLength  = 14
	PhoneLength = 11
	CEPLength   = 8
)
