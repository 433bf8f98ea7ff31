package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-busca-boletins/internal/archive"
	"github.com/prefeitura-rio/app-busca-boletins/internal/models"
)

// Valores usados quando o arquivo não fornece o campo
const (
	Unspecified   = "Não especificado"
	RoleMentioned = "Mencionado"
)

const reportDateLayout = "2006-01-02"

// Normalizer converte a resposta do arquivo em PoliceReport
type Normalizer struct {
	now func() time.Time
}

// NewNormalizer cria um normalizador. now define a data usada em reportDate.
func NewNormalizer(now func() time.Time) *Normalizer {
	if now == nil {
		now = time.Now
	}
	return &Normalizer{now: now}
}

// Normalize gera um relatório por entrada com bo_number não vazio.
// Um resultado de erro nunca gera lista parcial.
func (n *Normalizer) Normalize(result archive.Result, fallbackPersonName string) ([]models.PoliceReport, error) {
	if result.Kind == archive.KindError {
		return nil, &ServiceError{Message: result.ErrorMessage}
	}

	personName := strings.TrimSpace(fallbackPersonName)
	if personName == "" {
		personName = Unspecified
	}

	// Data da consulta: o arquivo não devolve data por registro neste formato
	reportDate := n.now().Format(reportDateLayout)

	reports := make([]models.PoliceReport, 0, len(result.Entries))
	for _, entry := range result.Entries {
		boNumber := strings.TrimSpace(entry.BONumber)
		if boNumber == "" {
			continue
		}

		var description, complemento string
		if len(entry.Details) > 0 {
			description = entry.Details[0]
		}
		if len(entry.Details) > 1 {
			complemento = entry.Details[1]
		}

		// texto_completo vale para todos os relatórios da resposta
		if result.FullText != "" {
			description = result.FullText
		}

		reports = append(reports, models.PoliceReport{
			ID:          fmt.Sprintf("report_%d", entry.Index),
			BONumber:    boNumber,
			ReportDate:  reportDate,
			City:        Unspecified,
			CrimeType:   Unspecified,
			Description: description,
			Complemento: complemento,
			Persons: []models.Person{
				{Name: personName, Role: RoleMentioned},
			},
		})
	}

	return reports, nil
}

// NormalizeResponse decodifica e normaliza a resposta crua do arquivo
func (n *Normalizer) NormalizeResponse(req *models.RemoteSearchRequest, resp *models.RemoteSearchResponse, fallbackPersonName string) ([]models.PoliceReport, error) {
	return n.Normalize(archive.Decode(req, resp), fallbackPersonName)
}
