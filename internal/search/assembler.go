package search

import (
	"github.com/prefeitura-rio/app-busca-boletins/internal/archive"
	"github.com/prefeitura-rio/app-busca-boletins/internal/models"
)

// Ainda não há protocolo de paginação no arquivo: uma única página fixa
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Assemble monta a resposta final. TotalCount é informativo e pode ser
// maior que len(Results).
func Assemble(reports []models.PoliceReport, result archive.Result) *models.SearchResponse {
	if reports == nil {
		reports = []models.PoliceReport{}
	}
	return &models.SearchResponse{
		Results:    reports,
		TotalCount: result.TotalMatches,
		Page:       DefaultPage,
		PageSize:   DefaultPageSize,
	}
}
