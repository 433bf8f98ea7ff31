package models

// Operator define como os termos de pesquisa são combinados
type Operator string

const (
	OperatorAnd Operator = "AND"
	OperatorOr  Operator = "OR"
)

// IsValid verifica se o operador é válido
func (o Operator) IsValid() bool {
	switch o {
	case OperatorAnd, OperatorOr:
		return true
	}
	return false
}

// AdvancedTerm representa um termo de pesquisa editável na interface.
// O ID identifica o termo apenas na lista da UI e nunca é enviado ao arquivo.
type AdvancedTerm struct {
	Term string `json:"term" validate:"max=200" example:"furto"`
	ID   string `json:"id" example:"3f1c2a9e-8b7d-4c1e-9f0a-1b2c3d4e5f60"`
}

// SearchInput representa o corpo da requisição de busca, como enviado pelo usuário
// @Description Parâmetros de busca de boletins de ocorrência.
type SearchInput struct {
	// Número do boletim de ocorrência. Quando informado, os termos são ignorados.
	BONumber string `json:"boNumber" validate:"max=64" example:"123456"`
	// Nome da pessoa pesquisada, usado apenas para rotular os resultados
	PersonName string `json:"personName" validate:"max=200" example:"João Silva"`
	// Termos de pesquisa
	AdvancedTerms []AdvancedTerm `json:"advancedTerms" validate:"max=20,dive"`
	// Operador entre termos: AND (todos) ou OR (qualquer). Default: AND
	Operator Operator `json:"operator" validate:"omitempty,oneof=AND OR" enums:"AND,OR" example:"AND"`
	// Data inicial (YYYY-MM-DD)
	StartDate string `json:"startDate" validate:"omitempty,datetime=2006-01-02" example:"2024-01-01"`
	// Data final (YYYY-MM-DD)
	EndDate string `json:"endDate" validate:"omitempty,datetime=2006-01-02" example:"2024-12-31"`
}

// SearchCriteria é a intenção de busca validada e canônica.
// Construída a cada submissão e descartada depois que a requisição é montada.
type SearchCriteria struct {
	BONumber      string
	PersonName    string
	AdvancedTerms []AdvancedTerm
	Operator      Operator
	StartDate     string
	EndDate       string
}

// Terms retorna os textos dos termos não vazios, na ordem informada
func (c *SearchCriteria) Terms() []string {
	terms := make([]string, 0, len(c.AdvancedTerms))
	for _, t := range c.AdvancedTerms {
		if t.Term != "" {
			terms = append(terms, t.Term)
		}
	}
	return terms
}

// Person representa uma pessoa citada no boletim
type Person struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// PoliceReport é o único formato de registro visto pelo resto da aplicação
type PoliceReport struct {
	ID          string   `json:"id" example:"report_0"`
	BONumber    string   `json:"boNumber" example:"BO123456"`
	ReportDate  string   `json:"reportDate" example:"2024-05-10"`
	City        string   `json:"city" example:"Não especificado"`
	CrimeType   string   `json:"crimeType" example:"Não especificado"`
	Description string   `json:"description"`
	Complemento string   `json:"complemento"`
	Persons     []Person `json:"persons"`
}

// SearchResponse representa a resposta de busca entregue ao chamador
type SearchResponse struct {
	Results    []PoliceReport `json:"results"`
	TotalCount int            `json:"totalCount"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
}

// BulletinDetail contém o texto completo de um boletim
type BulletinDetail struct {
	BONumber string `json:"boNumber" example:"123456"`
	Texto    string `json:"texto"`
}
