package search

import (
	"encoding/json"
	"testing"

	"github.com/prefeitura-rio/app-busca-boletins/internal/models"
)

func TestBuildRequest(t *testing.T) {
	tests := []struct {
		name     string
		criteria *models.SearchCriteria
		wantMode Mode
		wantJSON string
	}{
		{
			name:     "busca por BO",
			criteria: &models.SearchCriteria{BONumber: "123456", Operator: models.OperatorAnd},
			wantMode: ModeBulletin,
			wantJSON: `{"search_terms":[],"search_columns":[],"require_all_terms":false,"show_details":true,"bulletin_number":"123456"}`,
		},
		{
			name: "termos com OR",
			criteria: &models.SearchCriteria{
				AdvancedTerms: []models.AdvancedTerm{{Term: "furto"}, {Term: "celular"}},
				Operator:      models.OperatorOr,
			},
			wantMode: ModeTerms,
			wantJSON: `{"search_terms":["furto","celular"],"search_columns":[],"require_all_terms":false,"show_details":true}`,
		},
		{
			name: "termos com AND",
			criteria: &models.SearchCriteria{
				AdvancedTerms: []models.AdvancedTerm{{Term: "furto"}, {Term: "celular"}},
				Operator:      models.OperatorAnd,
			},
			wantMode: ModeTerms,
			wantJSON: `{"search_terms":["furto","celular"],"search_columns":[],"require_all_terms":true,"show_details":true}`,
		},
		{
			name: "BO tem prioridade sobre termos",
			criteria: &models.SearchCriteria{
				BONumber:      "123456",
				AdvancedTerms: []models.AdvancedTerm{{Term: "furto"}},
				Operator:      models.OperatorAnd,
			},
			wantMode: ModeBulletin,
			wantJSON: `{"search_terms":[],"search_columns":[],"require_all_terms":false,"show_details":true,"bulletin_number":"123456"}`,
		},
		{
			name: "apenas data inicial",
			criteria: &models.SearchCriteria{
				AdvancedTerms: []models.AdvancedTerm{{Term: "roubo"}},
				Operator:      models.OperatorAnd,
				StartDate:     "2024-01-01",
			},
			wantMode: ModeTerms,
			wantJSON: `{"search_terms":["roubo"],"search_columns":[],"require_all_terms":true,"show_details":true,"date_filter":{"start_date":"2024-01-01"}}`,
		},
		{
			name: "período completo com BO",
			criteria: &models.SearchCriteria{
				BONumber:  "987",
				Operator:  models.OperatorAnd,
				StartDate: "2024-01-01",
				EndDate:   "2024-12-31",
			},
			wantMode: ModeBulletin,
			wantJSON: `{"search_terms":[],"search_columns":[],"require_all_terms":false,"show_details":true,"bulletin_number":"987","date_filter":{"start_date":"2024-01-01","end_date":"2024-12-31"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if mode := ResolveMode(tt.criteria); mode != tt.wantMode {
				t.Errorf("ResolveMode() = %q, want %q", mode, tt.wantMode)
			}

			req := BuildRequest(tt.criteria)
			body, err := json.Marshal(req)
			if err != nil {
				t.Fatalf("json.Marshal() erro: %v", err)
			}
			if string(body) != tt.wantJSON {
				t.Errorf("BuildRequest() =\n%s\nwant\n%s", body, tt.wantJSON)
			}
		})
	}
}

func TestBuildBulletinRequest(t *testing.T) {
	req := BuildBulletinRequest(" 123456 ")

	if !req.IsBulletinLookup() {
		t.Fatal("IsBulletinLookup() = false, want true")
	}
	if req.BulletinNumber != "123456" {
		t.Errorf("BulletinNumber = %q, want 123456", req.BulletinNumber)
	}
	if !req.ShowDetails {
		t.Error("ShowDetails = false, want true")
	}
	if req.DateFilter != nil {
		t.Errorf("DateFilter = %+v, want nil", req.DateFilter)
	}
}
