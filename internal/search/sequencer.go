package search

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const anonymousSession = "anonimo"

// Sequencer garante que apenas a busca submetida por último em uma sessão
// seja entregue. Next é chamado na submissão; IsLatest, quando a resposta chega.
type Sequencer interface {
	Next(ctx context.Context, session string) (uint64, error)
	IsLatest(ctx context.Context, session string, seq uint64) (bool, error)
}

func sessionKey(session string) string {
	if session == "" {
		return anonymousSession
	}
	return session
}

// MemorySequencer mantém as sequências em memória, por instância.
// Os números vêm de um contador único que nunca volta, então uma sessão
// removida por expiração ou capacidade não reaproveita números antigos.
type MemorySequencer struct {
	mu      sync.Mutex
	counter uint64
	latest  map[string]*sessionSeq
	ttl     time.Duration
	maxSize int
}

type sessionSeq struct {
	seq     uint64
	touched time.Time
}

// NewMemorySequencer cria um sequenciador em memória
func NewMemorySequencer(ttl time.Duration, maxSize int) *MemorySequencer {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if maxSize <= 0 {
		maxSize = 10000
	}
	return &MemorySequencer{
		latest:  make(map[string]*sessionSeq),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

// Next registra uma nova submissão e retorna seu número de sequência
func (m *MemorySequencer) Next(_ context.Context, session string) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := sessionKey(session)
	entry, ok := m.latest[key]
	if !ok {
		if len(m.latest) >= m.maxSize {
			m.cleanup()
		}
		entry = &sessionSeq{}
		m.latest[key] = entry
	}
	m.counter++
	entry.seq = m.counter
	entry.touched = time.Now()
	return entry.seq, nil
}

// IsLatest verifica se seq ainda é a submissão mais recente da sessão.
// Sessão expirada significa que nada mais novo foi submetido.
func (m *MemorySequencer) IsLatest(_ context.Context, session string, seq uint64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.latest[sessionKey(session)]
	if !ok {
		return true, nil
	}
	return entry.seq == seq, nil
}

// cleanup remove sessões expiradas e, se ainda cheio, a mais antiga
func (m *MemorySequencer) cleanup() {
	now := time.Now()
	for key, entry := range m.latest {
		if now.Sub(entry.touched) > m.ttl {
			delete(m.latest, key)
		}
	}

	if len(m.latest) >= m.maxSize {
		var oldest time.Time
		oldestKey := ""
		for key, entry := range m.latest {
			if oldestKey == "" || entry.touched.Before(oldest) {
				oldest = entry.touched
				oldestKey = key
			}
		}
		delete(m.latest, oldestKey)
	}
}

// Size retorna o número de sessões acompanhadas
func (m *MemorySequencer) Size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.latest)
}

// nextSeqScript incrementa o contador global e grava o valor como o mais
// recente da sessão na mesma operação atômica
var nextSeqScript = redis.NewScript(`
local seq = redis.call("INCR", KEYS[1])
redis.call("SET", KEYS[2], seq, "PX", ARGV[1])
return seq
`)

// RedisSequencer compartilha as sequências entre réplicas. O contador é
// global e cada sessão guarda apenas o último número emitido para ela.
type RedisSequencer struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewRedisSequencer cria um sequenciador baseado em Redis
func NewRedisSequencer(client redis.Cmdable, prefix string, ttl time.Duration) *RedisSequencer {
	if prefix == "" {
		prefix = "boletins:seq"
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisSequencer{client: client, prefix: prefix, ttl: ttl}
}

func (r *RedisSequencer) key(session string) string {
	return r.prefix + ":sessao:" + sessionKey(session)
}

func (r *RedisSequencer) counterKey() string {
	return r.prefix + ":contador"
}

// Next emite o próximo número global e o registra como o último da sessão
func (r *RedisSequencer) Next(ctx context.Context, session string) (uint64, error) {
	keys := []string{r.counterKey(), r.key(session)}
	seq, err := nextSeqScript.Run(ctx, r.client, keys, r.ttl.Milliseconds()).Int64()
	if err != nil {
		return 0, fmt.Errorf("erro ao incrementar sequência da sessão: %w", err)
	}
	return uint64(seq), nil
}

// IsLatest compara seq com o valor atual da sessão no Redis
func (r *RedisSequencer) IsLatest(ctx context.Context, session string, seq uint64) (bool, error) {
	latest, err := r.client.Get(ctx, r.key(session)).Uint64()
	if errors.Is(err, redis.Nil) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("erro ao ler sequência da sessão: %w", err)
	}
	return latest == seq, nil
}
