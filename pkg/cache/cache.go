// Package cache fornece o serviço de cache em memória com TTL usado
// pelos endpoints de analytics. O cache é local ao processo e as
// entradas expiram apenas por tempo; não há API de invalidação
package cache

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Service encapsula um cache com TTL fixo por instância. Leituras e
// escritas concorrentes são seguras; dois misses simultâneos para a
// mesma chave podem computar e gravar duas vezes, o que é aceitável
// porque a recomputação é idempotente
type Service struct {
	store *gocache.Cache
}

// NewService cria um cache cujas entradas expiram após ttl
func NewService(ttl time.Duration) *Service {
	return &Service{
		store: gocache.New(ttl, 2*ttl),
	}
}

// Get retorna o valor da chave, ou false se ausente ou expirado
func (s *Service) Get(key string) (any, bool) {
	return s.store.Get(key)
}

// Set grava o valor com o TTL padrão da instância
func (s *Service) Set(key string, value any) {
	s.store.SetDefault(key, value)
}

// Flush descarta todas as entradas. Usado apenas em testes
func (s *Service) Flush() {
	s.store.Flush()
}

// PeriodKey monta a chave de endpoints parametrizados por período
func PeriodKey(endpoint string, year int, quarter string) string {
	return fmt.Sprintf("%s_%d_%s", endpoint, year, quarter)
}

// TopicKey monta a chave de endpoints independentes de período
func TopicKey(topic string) string {
	return topic
}
