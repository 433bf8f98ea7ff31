package archive

import (
	"encoding/json"
	"testing"

	"github.com/prefeitura-rio/app-busca-boletins/internal/models"
)

func TestDecode(t *testing.T) {
	termsReq := &models.RemoteSearchRequest{SearchTerms: []string{"furto"}}
	bulletinReq := &models.RemoteSearchRequest{BulletinNumber: "123456"}
	total := 3

	tests := []struct {
		name        string
		req         *models.RemoteSearchRequest
		resp        *models.RemoteSearchResponse
		wantKind    Kind
		wantTotal   int
		wantEntries int
		wantMessage string
	}{
		{
			name: "erro prevalece sobre os dados",
			req:  termsReq,
			resp: &models.RemoteSearchResponse{
				Error:        "tabela indisponível",
				TotalMatches: &total,
				Details:      json.RawMessage(`[{"bo_number":"1"}]`),
			},
			wantKind:    KindError,
			wantMessage: "tabela indisponível",
		},
		{
			name:     "erro em branco é ignorado",
			req:      termsReq,
			resp:     &models.RemoteSearchResponse{Error: "   "},
			wantKind: KindTermDetail,
		},
		{
			name:     "consulta por BO",
			req:      bulletinReq,
			resp:     &models.RemoteSearchResponse{TotalMatches: &total, TextoCompleto: "texto", Details: json.RawMessage(`[{"bo_number":"123456","details":["a"]}]`)},
			wantKind: KindBulletinDetail, wantTotal: 3, wantEntries: 1,
		},
		{
			name:     "details ausente",
			req:      termsReq,
			resp:     &models.RemoteSearchResponse{},
			wantKind: KindTermDetail,
		},
		{
			name:     "details null",
			req:      termsReq,
			resp:     &models.RemoteSearchResponse{Details: json.RawMessage(`null`)},
			wantKind: KindTermDetail,
		},
		{
			name:     "details como string",
			req:      termsReq,
			resp:     &models.RemoteSearchResponse{Details: json.RawMessage(`"nada"`)},
			wantKind: KindTermDetail,
		},
		{
			name:        "entradas mistas",
			req:         termsReq,
			resp:        &models.RemoteSearchResponse{Details: json.RawMessage(`[{"bo_number":"1"},42,{"bo_number":2,"details":"x"}]`)},
			wantKind:    KindTermDetail,
			wantEntries: 3,
		},
		{
			name:     "resposta nil",
			req:      termsReq,
			resp:     nil,
			wantKind: KindTermDetail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Decode(tt.req, tt.resp)

			if result.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", result.Kind, tt.wantKind)
			}
			if result.TotalMatches != tt.wantTotal {
				t.Errorf("TotalMatches = %d, want %d", result.TotalMatches, tt.wantTotal)
			}
			if len(result.Entries) != tt.wantEntries {
				t.Errorf("len(Entries) = %d, want %d", len(result.Entries), tt.wantEntries)
			}
			if result.ErrorMessage != tt.wantMessage {
				t.Errorf("ErrorMessage = %q, want %q", result.ErrorMessage, tt.wantMessage)
			}
		})
	}
}

func TestDecodeEntryFields(t *testing.T) {
	resp := &models.RemoteSearchResponse{
		Details: json.RawMessage(`[{"bo_number":"BO1","details":["desc",null,7]},"lixo",{"bo_number":987654,"details":["outro"]}]`),
	}

	result := Decode(&models.RemoteSearchRequest{}, resp)
	if len(result.Entries) != 3 {
		t.Fatalf("len(Entries) = %d, want 3", len(result.Entries))
	}

	first := result.Entries[0]
	if first.Index != 0 || first.BONumber != "BO1" {
		t.Errorf("Entries[0] = %+v", first)
	}
	wantDetails := []string{"desc", "", "7"}
	if len(first.Details) != len(wantDetails) {
		t.Fatalf("Details = %v, want %v", first.Details, wantDetails)
	}
	for i := range wantDetails {
		if first.Details[i] != wantDetails[i] {
			t.Errorf("Details[%d] = %q, want %q", i, first.Details[i], wantDetails[i])
		}
	}

	if second := result.Entries[1]; second.Index != 1 || second.BONumber != "" || second.Details != nil {
		t.Errorf("Entries[1] = %+v, want entrada vazia no índice 1", second)
	}

	if third := result.Entries[2]; third.Index != 2 || third.BONumber != "987654" {
		t.Errorf("Entries[2] = %+v", third)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindError, "error"},
		{KindBulletinDetail, "bulletin"},
		{KindTermDetail, "terms"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
