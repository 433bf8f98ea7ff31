package search

import (
	"strings"

	"github.com/prefeitura-rio/app-busca-boletins/internal/models"
)

// Mode é o modo de consulta resolvido a partir dos critérios
type Mode string

const (
	ModeBulletin Mode = "bulletin"
	ModeTerms    Mode = "terms"
)

// ResolveMode decide o modo de consulta. Número de BO tem prioridade sobre termos.
func ResolveMode(criteria *models.SearchCriteria) Mode {
	if strings.TrimSpace(criteria.BONumber) != "" {
		return ModeBulletin
	}
	return ModeTerms
}

// BuildRequest monta a requisição do arquivo a partir dos critérios.
// No modo BO os termos são ignorados, mesmo que existam; os dois modos
// nunca são combinados.
func BuildRequest(criteria *models.SearchCriteria) *models.RemoteSearchRequest {
	req := newRemoteRequest()

	switch ResolveMode(criteria) {
	case ModeBulletin:
		req.BulletinNumber = strings.TrimSpace(criteria.BONumber)
	case ModeTerms:
		for _, t := range criteria.AdvancedTerms {
			if term := strings.TrimSpace(t.Term); term != "" {
				req.SearchTerms = append(req.SearchTerms, term)
			}
		}
		req.RequireAllTerms = criteria.Operator == models.OperatorAnd
	}

	start := strings.TrimSpace(criteria.StartDate)
	end := strings.TrimSpace(criteria.EndDate)
	if start != "" || end != "" {
		req.DateFilter = &models.DateFilter{StartDate: start, EndDate: end}
	}

	return req
}

// BuildBulletinRequest monta a consulta do texto completo de um boletim
func BuildBulletinRequest(boNumber string) *models.RemoteSearchRequest {
	req := newRemoteRequest()
	req.BulletinNumber = strings.TrimSpace(boNumber)
	return req
}

// search_columns vazio e show_details=true são exigências fixas do arquivo
func newRemoteRequest() *models.RemoteSearchRequest {
	return &models.RemoteSearchRequest{
		SearchTerms:   []string{},
		SearchColumns: []string{},
		ShowDetails:   true,
	}
}
