package archive

import (
	"context"
	"encoding/json"
	"time"

	"github.com/prefeitura-rio/app-busca-boletins/internal/models"
)

// MockBulletinNumber é o único boletim conhecido pelo MockClient
const MockBulletinNumber = "123456"

const mockBulletinText = "BOLETIM DE OCORRÊNCIA Nº 123456\nData: 2023-12-15\nLocal: São Paulo\nNatureza: Furto\nDescrição: Relato detalhado do incidente ocorrido conforme declaração da vítima..."

// MockClient responde com dados fixos, para desenvolvimento sem o arquivo real
type MockClient struct {
	Latency time.Duration
}

// NewMockClient cria um cliente fictício com a latência informada
func NewMockClient(latency time.Duration) *MockClient {
	return &MockClient{Latency: latency}
}

// Search devolve respostas fixas conforme o modo da requisição
func (m *MockClient) Search(ctx context.Context, req *models.RemoteSearchRequest) (*models.RemoteSearchResponse, error) {
	if err := m.wait(ctx); err != nil {
		return nil, &TransportError{Op: "search", Err: err}
	}

	if req.IsBulletinLookup() {
		if req.BulletinNumber != MockBulletinNumber {
			return &models.RemoteSearchResponse{TotalMatches: intPtr(0)}, nil
		}
		return &models.RemoteSearchResponse{
			TotalMatches:  intPtr(1),
			BONumbers:     []string{MockBulletinNumber},
			Details:       mustDetails(MockBulletinNumber, mockBulletinText),
			TextoCompleto: mockBulletinText,
		}, nil
	}

	details, _ := json.Marshal([]map[string]interface{}{
		{
			"bo_number": "BO123456",
			"details":   []string{"Furto de celular na região central", "Informações adicionais sobre o caso"},
		},
		{
			"bo_number": "BO789012",
			"details":   []string{"Roubo de veículo na zona sul", "Detalhes complementares do caso"},
		},
	})

	return &models.RemoteSearchResponse{
		TotalMatches: intPtr(2),
		BONumbers:    []string{"BO123456", "BO789012"},
		Details:      details,
	}, nil
}

// Health sempre reporta o arquivo fictício como saudável
func (m *MockClient) Health(ctx context.Context) *models.ArchiveHealth {
	if err := m.wait(ctx); err != nil {
		return &models.ArchiveHealth{Status: "error", Message: err.Error()}
	}
	return &models.ArchiveHealth{
		Status:  "healthy",
		Message: "API está funcionando normalmente",
	}
}

func (m *MockClient) wait(ctx context.Context) error {
	if m.Latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(m.Latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func mustDetails(boNumber string, details ...string) json.RawMessage {
	raw, _ := json.Marshal([]map[string]interface{}{
		{"bo_number": boNumber, "details": details},
	})
	return raw
}

func intPtr(i int) *int {
	return &i
}
