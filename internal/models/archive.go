package models

import "encoding/json"

// DateFilter limita a busca por período. Campos ausentes não são enviados.
type DateFilter struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// RemoteSearchRequest é o corpo enviado ao endpoint /search do arquivo
type RemoteSearchRequest struct {
	SearchTerms     []string    `json:"search_terms"`
	SearchColumns   []string    `json:"search_columns"`
	RequireAllTerms bool        `json:"require_all_terms"`
	ShowDetails     bool        `json:"show_details"`
	BulletinNumber  string      `json:"bulletin_number,omitempty"`
	DateFilter      *DateFilter `json:"date_filter,omitempty"`
}

// IsBulletinLookup indica se a requisição é por número de boletim
func (r *RemoteSearchRequest) IsBulletinLookup() bool {
	return r.BulletinNumber != ""
}

// RemoteSearchResponse é a resposta do arquivo. Qualquer campo pode estar ausente.
// Details fica cru porque nem sempre chega como array.
type RemoteSearchResponse struct {
	TotalMatches  *int            `json:"total_matches,omitempty"`
	BONumbers     []string        `json:"bo_numbers,omitempty"`
	Details       json.RawMessage `json:"details,omitempty"`
	TextoCompleto string          `json:"texto_completo,omitempty"`
	Error         string          `json:"error,omitempty"`
}

// ArchiveHealth representa o status do serviço de arquivo
type ArchiveHealth struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message,omitempty"`
}
