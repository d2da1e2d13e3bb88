package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/JFontaineGit/jif-tube-sub000/internal/models"
	"github.com/JFontaineGit/jif-tube-sub000/internal/storage"
)

// DefaultCacheTTL é a validade padrão de uma entrada de cache.
const DefaultCacheTTL = 60 * time.Minute

// ResultCache persiste conjuntos de resultados já rankeados, chaveados
// pela query normalizada. Expõe apenas primitivas de armazenamento e o
// predicado de validade; quem decide usar ou não uma entrada é o motor.
//
// Entradas velhas não são removidas na leitura: permanecem até serem
// sobrescritas, limpas explicitamente ou removidas pela poda de
// capacidade na escrita.
type ResultCache struct {
	store      storage.Store
	ttl        time.Duration
	maxEntries int
	clock      Clock
}

// NewResultCache cria um cache sobre o store dado. maxEntries limita o
// número de queries distintas retidas (0 = sem limite).
func NewResultCache(store storage.Store, ttl time.Duration, maxEntries int, clock Clock) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ResultCache{
		store:      store,
		ttl:        ttl,
		maxEntries: maxEntries,
		clock:      clock,
	}
}

// Get busca a entrada da query normalizada; ok=false quando ausente.
func (c *ResultCache) Get(ctx context.Context, key string) (*models.CacheEntry, bool, error) {
	raw, ok, err := c.store.Get(ctx, storage.CachePrefix+key)
	if err != nil {
		return nil, false, fmt.Errorf("cache: falha na leitura: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	var entry models.CacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		// Entrada corrompida conta como ausente.
		log.Printf("cache: entrada corrompida para %q: %v", key, err)
		return nil, false, nil
	}
	return &entry, true, nil
}

// Put grava o conjunto completo de resultados, sobrescrevendo qualquer
// entrada anterior da mesma chave. Nunca faz merge parcial.
func (c *ResultCache) Put(ctx context.Context, key string, results []models.ScoredResult) error {
	entry := models.CacheEntry{
		Key:       key,
		Results:   results,
		WrittenAt: c.clock.Now(),
	}

	raw, err := json.Marshal(&entry)
	if err != nil {
		return fmt.Errorf("cache: falha ao serializar: %w", err)
	}

	if c.maxEntries > 0 {
		c.prune(ctx)
	}

	if err := c.store.Put(ctx, storage.CachePrefix+key, raw); err != nil {
		return fmt.Errorf("cache: falha na escrita: %w", err)
	}
	return nil
}

// IsValid é o predicado puro de validade: a entrada vale enquanto
// now − writtenAt < ttl.
func (c *ResultCache) IsValid(entry *models.CacheEntry) bool {
	if entry == nil {
		return false
	}
	return c.clock.Now().Sub(entry.WrittenAt) < c.ttl
}

// Clear remove todas as entradas de cache.
func (c *ResultCache) Clear(ctx context.Context) error {
	return c.store.DeletePrefix(ctx, storage.CachePrefix)
}

// prune remove entradas expiradas quando o cache atinge a capacidade;
// se ainda estiver cheio, remove a mais antiga. Falhas de poda não
// impedem a escrita que a disparou.
func (c *ResultCache) prune(ctx context.Context) {
	entries, err := c.store.List(ctx, storage.CachePrefix)
	if err != nil {
		log.Printf("cache: falha ao listar para poda: %v", err)
		return
	}
	if len(entries) < c.maxEntries {
		return
	}

	now := c.clock.Now()
	oldestKey := ""
	oldest := now

	for storeKey, raw := range entries {
		var entry models.CacheEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			// Corrompida: remove direto.
			_ = c.store.Delete(ctx, storeKey)
			continue
		}
		if now.Sub(entry.WrittenAt) >= c.ttl {
			if err := c.store.Delete(ctx, storeKey); err != nil {
				log.Printf("cache: falha ao podar %q: %v", storeKey, err)
			}
			continue
		}
		if entry.WrittenAt.Before(oldest) {
			oldest = entry.WrittenAt
			oldestKey = storeKey
		}
	}

	remaining, err := c.store.List(ctx, storage.CachePrefix)
	if err != nil {
		return
	}
	if len(remaining) >= c.maxEntries && oldestKey != "" {
		if err := c.store.Delete(ctx, oldestKey); err != nil {
			log.Printf("cache: falha ao podar %q: %v", oldestKey, err)
		}
	}
}
