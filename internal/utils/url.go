package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// EndpointURL junta a URL base do arquivo com o caminho do endpoint,
// garantindo uma única barra entre eles.
// Exemplo: "http://host:8080/api/" + "/search" -> "http://host:8080/api/search"
func EndpointURL(baseURL, path string) (string, error) {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		return "", fmt.Errorf("URL base não configurada")
	}

	parsed, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("URL base inválida: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("URL base deve usar http ou https: %s", base)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("URL base sem host: %s", base)
	}

	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/"), nil
}
