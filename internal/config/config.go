// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta HTTP (default: 8080)
//   - GIN_MODE: Modo do gin, debug ou release (default: release)
//
// ## Arquivo de boletins
//   - ARCHIVE_BASE_URL: URL base do serviço de arquivo (default: http://localhost:8000/api)
//   - ARCHIVE_TIMEOUT: Timeout da chamada ao arquivo (default: 15s)
//   - ARCHIVE_MOCK: Usa respostas fixas em vez do arquivo real (default: false)
//   - ARCHIVE_MOCK_LATENCY: Latência simulada do mock (default: 500ms)
//   - ARCHIVE_BREAKER_FAILURES: Falhas consecutivas até abrir o circuito (default: 5)
//   - ARCHIVE_BREAKER_TIMEOUT: Tempo com circuito aberto antes de testar de novo (default: 30s)
//
// ## Limite de requisições
//   - RATE_LIMIT_RPS: Requisições por segundo por IP na API, 0 desabilita (default: 10)
//   - RATE_LIMIT_BURST: Rajada máxima por IP (default: 20)
//
// ## Sequenciador de buscas
//   - SEQUENCER_BACKEND: memory ou redis (default: memory)
//   - SEQUENCER_TTL: Expiração da sequência de uma sessão ociosa (default: 30m)
//   - SEQUENCER_MAX_SESSIONS: Máximo de sessões em memória (default: 10000)
//   - REDIS_ADDR: Endereço do Redis (default: localhost:6379)
//   - REDIS_PASSWORD: Senha do Redis
//   - REDIS_DB: Banco do Redis (default: 0)
//
// ## Observabilidade
//   - LOG_LEVEL: debug, info, warn, error (default: info)
//   - LOG_FORMAT: json ou console (default: json)
//   - TRACING_ENABLED: Habilita OpenTelemetry (default: false)
//   - TRACING_ENDPOINT: Endpoint OTLP gRPC (default: localhost:4317)
//   - TRACING_SAMPLE_RATIO: Fração de traces amostrados (default: 1.0)
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Backends de sequenciador suportados
const (
	SequencerMemory = "memory"
	SequencerRedis  = "redis"
)

type Config struct {
	ServerPort string
	GinMode    string

	ArchiveBaseURL         string
	ArchiveTimeout         time.Duration
	ArchiveMock            bool
	ArchiveMockLatency     time.Duration
	ArchiveBreakerFailures int
	ArchiveBreakerTimeout  time.Duration

	RateLimitRPS   float64
	RateLimitBurst int

	SequencerBackend     string
	SequencerTTL         time.Duration
	SequencerMaxSessions int
	RedisAddr            string
	RedisPassword        string
	RedisDB              int

	LogLevel  string
	LogFormat string

	TracingEnabled     bool
	TracingEndpoint    string
	TracingSampleRatio float64
}

// LoadConfig lê o .env (se existir) e as variáveis de ambiente
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "release"),

		ArchiveBaseURL:         getEnv("ARCHIVE_BASE_URL", "http://localhost:8000/api"),
		ArchiveTimeout:         getEnvDuration("ARCHIVE_TIMEOUT", 15*time.Second),
		ArchiveMock:            getEnvBool("ARCHIVE_MOCK", false),
		ArchiveMockLatency:     getEnvDuration("ARCHIVE_MOCK_LATENCY", 500*time.Millisecond),
		ArchiveBreakerFailures: getEnvInt("ARCHIVE_BREAKER_FAILURES", 5),
		ArchiveBreakerTimeout:  getEnvDuration("ARCHIVE_BREAKER_TIMEOUT", 30*time.Second),

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 20),

		SequencerBackend:     strings.ToLower(getEnv("SEQUENCER_BACKEND", SequencerMemory)),
		SequencerTTL:         getEnvDuration("SEQUENCER_TTL", 30*time.Minute),
		SequencerMaxSessions: getEnvInt("SEQUENCER_MAX_SESSIONS", 10000),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:        getEnv("REDIS_PASSWORD", ""),
		RedisDB:              getEnvInt("REDIS_DB", 0),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		TracingEnabled:     getEnvBool("TRACING_ENABLED", false),
		TracingEndpoint:    getEnv("TRACING_ENDPOINT", "localhost:4317"),
		TracingSampleRatio: getEnvFloat("TRACING_SAMPLE_RATIO", 1.0),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate verifica combinações inválidas de configuração
func (c *Config) Validate() error {
	if !c.ArchiveMock && strings.TrimSpace(c.ArchiveBaseURL) == "" {
		return fmt.Errorf("ARCHIVE_BASE_URL é obrigatória quando ARCHIVE_MOCK=false")
	}
	switch c.SequencerBackend {
	case SequencerMemory, SequencerRedis:
	default:
		return fmt.Errorf("SEQUENCER_BACKEND inválido: %q (use memory ou redis)", c.SequencerBackend)
	}
	if c.ArchiveBreakerFailures < 1 {
		return fmt.Errorf("ARCHIVE_BREAKER_FAILURES deve ser maior que zero")
	}
	if c.TracingSampleRatio < 0 || c.TracingSampleRatio > 1 {
		return fmt.Errorf("TRACING_SAMPLE_RATIO deve estar entre 0 e 1")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
