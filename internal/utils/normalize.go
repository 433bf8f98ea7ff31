package utils

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizarTexto prepara texto digitado pelo usuário para comparação e envio.
// Converte para NFC e remove espaços nas pontas; espaços internos são mantidos
// porque o arquivo compara os termos de forma exata.
// Exemplo: "  furto  de celular " -> "furto  de celular"
func NormalizarTexto(texto string) string {
	if texto == "" {
		return texto
	}
	return strings.TrimSpace(norm.NFC.String(texto))
}

// IsBlank verifica se o texto é vazio após a normalização
func IsBlank(texto string) bool {
	return strings.TrimSpace(texto) == ""
}
