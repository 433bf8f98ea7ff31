package utils

import (
	"testing"
)

func TestEndpointURL(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		path     string
		expected string
		wantErr  bool
	}{
		{
			name:     "base sem barra final",
			base:     "http://52.90.58.180:8080/api",
			path:     "/search",
			expected: "http://52.90.58.180:8080/api/search",
		},
		{
			name:     "base com barra final",
			base:     "http://localhost:8080/api/",
			path:     "/health",
			expected: "http://localhost:8080/api/health",
		},
		{
			name:     "caminho sem barra inicial",
			base:     "https://arquivo.example.com",
			path:     "search",
			expected: "https://arquivo.example.com/search",
		},
		{
			name:    "base vazia",
			base:    "  ",
			path:    "/search",
			wantErr: true,
		},
		{
			name:    "esquema inválido",
			base:    "ftp://arquivo.example.com",
			path:    "/search",
			wantErr: true,
		},
		{
			name:    "sem host",
			base:    "http://",
			path:    "/search",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := EndpointURL(tt.base, tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("EndpointURL() esperava erro, got %q", result)
				}
				return
			}
			if err != nil {
				t.Fatalf("EndpointURL() erro inesperado: %v", err)
			}
			if result != tt.expected {
				t.Errorf("EndpointURL() = %v, want %v", result, tt.expected)
			}
		})
	}
}
