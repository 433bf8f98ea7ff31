package search

import (
	"fmt"

	"github.com/prefeitura-rio/app-busca-boletins/internal/config"
	"github.com/redis/go-redis/v9"
)

// NewSequencerFromConfig cria o sequenciador configurado em SEQUENCER_BACKEND.
// O *redis.Client retornado é nil no backend memory; cabe ao chamador fechá-lo.
func NewSequencerFromConfig(cfg *config.Config) (Sequencer, *redis.Client, error) {
	switch cfg.SequencerBackend {
	case config.SequencerMemory:
		return NewMemorySequencer(cfg.SequencerTTL, cfg.SequencerMaxSessions), nil, nil
	case config.SequencerRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return NewRedisSequencer(client, "boletins:seq", cfg.SequencerTTL), client, nil
	}
	return nil, nil, fmt.Errorf("backend de sequenciador desconhecido: %s", cfg.SequencerBackend)
}
