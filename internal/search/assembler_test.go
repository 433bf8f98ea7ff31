package search

import (
	"testing"

	"github.com/prefeitura-rio/app-busca-boletins/internal/archive"
	"github.com/prefeitura-rio/app-busca-boletins/internal/models"
)

func TestAssemble(t *testing.T) {
	tests := []struct {
		name      string
		reports   []models.PoliceReport
		total     int
		wantLen   int
		wantTotal int
	}{
		{
			name:      "sem resultados",
			reports:   nil,
			total:     0,
			wantLen:   0,
			wantTotal: 0,
		},
		{
			name:      "total maior que a página",
			reports:   []models.PoliceReport{{ID: "report_0"}, {ID: "report_1"}},
			total:     57,
			wantLen:   2,
			wantTotal: 57,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Assemble(tt.reports, archive.Result{TotalMatches: tt.total})

			if resp.Results == nil {
				t.Fatal("Results = nil, want lista")
			}
			if len(resp.Results) != tt.wantLen {
				t.Errorf("len(Results) = %d, want %d", len(resp.Results), tt.wantLen)
			}
			if resp.TotalCount != tt.wantTotal {
				t.Errorf("TotalCount = %d, want %d", resp.TotalCount, tt.wantTotal)
			}
			if resp.Page != DefaultPage || resp.PageSize != DefaultPageSize {
				t.Errorf("Page/PageSize = %d/%d, want %d/%d", resp.Page, resp.PageSize, DefaultPage, DefaultPageSize)
			}
		})
	}
}
