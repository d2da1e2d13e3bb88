package search

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/JFontaineGit/jif-tube-sub000/internal/models"
	"github.com/JFontaineGit/jif-tube-sub000/internal/storage"
)

// DefaultHistoryMax é o número máximo de entradas retidas no histórico.
const DefaultHistoryMax = 10

// HistoryLedger mantém o registro limitado das buscas mais recentes.
// A chave é a query exata digitada, não a normalizada: "Song A" e
// "song a" são entradas distintas.
//
// A retenção é por recência (lastSeenAt), mas List ordena por
// frequência de uso — a assimetria é intencional: eviction recente,
// exibição popular.
type HistoryLedger struct {
	store storage.Store
	max   int
	clock Clock
}

// NewHistoryLedger cria um ledger sobre o store dado.
func NewHistoryLedger(store storage.Store, max int, clock Clock) *HistoryLedger {
	if max <= 0 {
		max = DefaultHistoryMax
	}
	return &HistoryLedger{store: store, max: max, clock: clock}
}

// Record registra uma busca: incrementa a contagem e atualiza o
// timestamp se a query exata já existe, senão cria entrada nova.
// Depois reordena por recência e trunca ao limite.
func (l *HistoryLedger) Record(ctx context.Context, rawQuery string) error {
	entries, err := l.load(ctx)
	if err != nil {
		return err
	}

	now := l.clock.Now()
	found := false
	for i := range entries {
		if entries[i].Query == rawQuery {
			entries[i].OccurrenceCount++
			entries[i].LastSeenAt = now
			found = true
			break
		}
	}
	if !found {
		entries = append(entries, models.HistoryEntry{
			Query:           rawQuery,
			LastSeenAt:      now,
			OccurrenceCount: 1,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].LastSeenAt.After(entries[j].LastSeenAt)
	})
	if len(entries) > l.max {
		entries = entries[:l.max]
	}

	return l.save(ctx, entries)
}

// List retorna as entradas ordenadas por contagem de uso decrescente
// (a visão "buscas populares", distinta da ordem de armazenamento).
func (l *HistoryLedger) List(ctx context.Context) ([]models.HistoryEntry, error) {
	entries, err := l.load(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].OccurrenceCount > entries[j].OccurrenceCount
	})
	return entries, nil
}

// Clear remove todo o histórico.
func (l *HistoryLedger) Clear(ctx context.Context) error {
	return l.store.Delete(ctx, storage.HistoryKey)
}

func (l *HistoryLedger) load(ctx context.Context) ([]models.HistoryEntry, error) {
	raw, ok, err := l.store.Get(ctx, storage.HistoryKey)
	if err != nil {
		return nil, fmt.Errorf("histórico: falha na leitura: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var entries []models.HistoryEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("histórico: dados corrompidos: %w", err)
	}
	return entries, nil
}

func (l *HistoryLedger) save(ctx context.Context, entries []models.HistoryEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("histórico: falha ao serializar: %w", err)
	}
	if err := l.store.Put(ctx, storage.HistoryKey, raw); err != nil {
		return fmt.Errorf("histórico: falha na escrita: %w", err)
	}
	return nil
}
