package models

import "slices"

// Placeholder values sent by select boxes when nothing was chosen. Both
// are shorter than any real option of their list.
const (
	PlaceholderDefault = "padrao"
	PlaceholderShort   = "pad"
)

// State is a Brazilian federative unit, written "UF - Nome".
type State string

// Gender as chosen on the customer and employee forms.
type Gender string

const (
	GenderMale   Gender = "masculino"
	GenderFemale Gender = "feminino"
	GenderOther  Gender = "outro"
)

// JobTitle is one of the employee positions the registry knows.
type JobTitle string

// Category classifies a product.
type Category string

// Sector is the business sector of a supplier or competitor.
type Sector string

// CompanySize is the size bracket of a competitor.
type CompanySize string

var states = []string{
	"AC - Acre",
	"AL - Alagoas",
	"AP - Amapá",
	"AM - Amazonas",
	"BA - Bahia",
	"CE - Ceará",
	"DF - Distrito Federal",
	"ES - Espírito Santo",
	"GO - Goiás",
	"MA - Maranhão",
	"MT - Mato Grosso",
	"MS - Mato Grosso do Sul",
	"MG - Minas Gerais",
	"PA - Pará",
	"PB - Paraíba",
	"PR - Paraná",
	"PE - Pernambuco",
	"PI - Piauí",
	"RJ - Rio de Janeiro",
	"RN - Rio Grande do Norte",
	"RS - Rio Grande do Sul",
	"RO - Rondônia",
	"RR - Roraima",
	"SC - Santa Catarina",
	"SP - São Paulo",
	"SE - Sergipe",
	"TO - Tocantins",
}

var genders = []string{
	string(GenderMale),
	string(GenderFemale),
	string(GenderOther),
}

var jobTitles = []string{
	"Desenvolvedor de Software",
	"Analista de Sistemas",
	"Arquiteto de Soluções",
	"Engenheiro de Software",
	"Gerente de Projetos de TI",
	"Analista de Dados",
	"Especialista em Segurança da Informação",
	"Administrador de Redes",
	"Suporte Técnico",
	"Consultor em Tecnologia da Informação",
	"Gerente de Tecnologia da Informação",
	"Desenvolvedor Front-End",
	"Desenvolvedor Back-End",
	"Desenvolvedor Full Stack",
	"Engenheiro de DevOps",
	"Engenheiro de Machine Learning",
	"Engenheiro de Software Mobile",
}

var categories = []string{
	"Alimentos e Bebidas",
	"Automóveis e Motocicletas",
	"Bebês e Crianças",
	"Beleza e Cuidados Pessoais",
	"Casa e Jardim",
	"Celulares e Telecomunicações",
	"Eletrônicos",
	"Esportes e Lazer",
	"Ferramentas e Construção",
	"Games e Entretenimento",
	"Informática e Tecnologia",
	"Livros, Filmes e Música",
	"Moda e Acessórios",
	"Papelaria e Escritório",
	"Pet Shop",
	"Saúde e Bem-estar",
	"Serviços",
	"Viagens e Turismo",
}

var sectors = []string{
	"Alimentício",
	"Automotivo",
	"Bancário",
	"Comércio Eletrônico",
	"Construção Civil",
	"Educação",
	"Farmacêutico",
	"Financeiro",
	"Governo",
	"Hotelaria e Turismo",
	"Imobiliário",
	"Indústria Automotiva",
	"Indústria Química",
	"Logística e Transporte",
	"Marketing e Publicidade",
	"Mídia e Entretenimento",
	"Saúde",
	"Serviços Financeiros",
	"Tecnologia da Informação",
	"Telecomunicações",
}

var companySizes = []string{
	"Microempresa",
	"Pequena Empresa",
	"Média Empresa",
	"Grande Empresa",
}

// The accessors hand out copies so the lists stay immutable.

func States() []string       { return slices.Clone(states) }
func Genders() []string      { return slices.Clone(genders) }
func JobTitles() []string    { return slices.Clone(jobTitles) }
func Categories() []string   { return slices.Clone(categories) }
func Sectors() []string      { return slices.Clone(sectors) }
func CompanySizes() []string { return slices.Clone(companySizes) }
