// Package search contém o motor de busca: normalização da query,
// cache com TTL, fetch em dois estágios na API externa, scoring
// composto e histórico de buscas.
package search

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/JFontaineGit/jif-tube-sub000/internal/models"
	"github.com/JFontaineGit/jif-tube-sub000/internal/search/query"
	"github.com/JFontaineGit/jif-tube-sub000/internal/search/ranking"
	"github.com/JFontaineGit/jif-tube-sub000/internal/storage"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/singleflight"
)

// Transport abstrai as duas chamadas externas: busca por query e
// detalhes em lote por IDs.
type Transport interface {
	SearchByQuery(ctx context.Context, text string) ([]string, error)
	FetchDetails(ctx context.Context, ids []string) ([]models.VideoDetail, error)
}

// Options configura o motor de busca. MinDurationSec e MaxDurationSec
// são reconhecidos na configuração mas hoje nenhum candidato é
// filtrado por duração.
type Options struct {
	DemoMode       bool
	MinDurationSec int
	MaxDurationSec int
}

// Engine orquestra o pipeline de busca. Criado uma vez na subida da
// aplicação e passado por referência; nenhum estado global.
type Engine struct {
	transport Transport
	store     storage.Store
	cache     *ResultCache
	history   *HistoryLedger
	clock     Clock
	demoMode  bool
	flight    singleflight.Group
}

// NewEngine cria o motor de busca.
func NewEngine(transport Transport, store storage.Store, cache *ResultCache, history *HistoryLedger, clock Clock, opts Options) *Engine {
	return &Engine{
		transport: transport,
		store:     store,
		cache:     cache,
		history:   history,
		clock:     clock,
		demoMode:  opts.DemoMode,
	}
}

// Search executa o pipeline completo para uma query crua:
//
//  1. modo demo: retorna o conjunto fixo, sem cache nem histórico
//  2. registra a busca no histórico (fire-and-forget)
//  3. normaliza a query
//  4. cache hit válido: retorna os resultados armazenados como estão
//  5. miss: busca IDs na API externa (categoria música, limite fixo)
//  6. zero candidatos: retorna vazio sem cachear
//  7. busca detalhes de todos os IDs em uma chamada
//  8. enriquece e calcula o score de cada candidato
//  9. ordena por score (estável)
//  10. grava o lote no cache
//  11. retorna
//
// Buscas concorrentes pela mesma chave normalizada compartilham um
// único fetch via singleflight.
func (e *Engine) Search(ctx context.Context, rawQuery string) (*models.SearchResponse, error) {
	start := time.Now()

	ctx, span := otel.Tracer("search").Start(ctx, "search.pipeline")
	defer span.End()

	if e.demoMode {
		results := demoResults()
		return e.respond(rawQuery, rawQuery, results, false, start), nil
	}

	if strings.TrimSpace(rawQuery) == "" {
		return nil, models.ErrQueryRequired
	}

	// Best-effort: falha de histórico nunca bloqueia nem falha a busca.
	go e.recordHistory(rawQuery)

	normalized := query.Normalize(rawQuery)
	if normalized == "" {
		return nil, ErrEmptyQuery
	}
	span.SetAttributes(attribute.String("search.query", normalized))

	entry, ok, err := e.cache.Get(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if ok && e.cache.IsValid(entry) {
		span.SetAttributes(attribute.Bool("search.cached", true))
		return e.respond(rawQuery, normalized, entry.Results, true, start), nil
	}

	v, err, _ := e.flight.Do(normalized, func() (interface{}, error) {
		return e.fetchAndRank(ctx, normalized)
	})
	if err != nil {
		return nil, err
	}

	results := v.([]models.ScoredResult)
	span.SetAttributes(attribute.Int("search.results", len(results)))
	return e.respond(rawQuery, normalized, results, false, start), nil
}

// fetchAndRank executa o caminho de miss: fetch em dois estágios,
// enriquecimento, scoring, ordenação e escrita no cache.
func (e *Engine) fetchAndRank(ctx context.Context, normalized string) ([]models.ScoredResult, error) {
	ids, err := e.transport.SearchByQuery(ctx, normalized)
	if err != nil {
		e.clearSessionOnUnauthorized(ctx, err)
		return nil, err
	}

	// Resultado vazio nunca vai para o cache: a próxima chamada
	// tenta o fetch de novo.
	if len(ids) == 0 {
		return []models.ScoredResult{}, nil
	}

	details, err := e.transport.FetchDetails(ctx, ids)
	if err != nil {
		e.clearSessionOnUnauthorized(ctx, err)
		return nil, err
	}

	scorer := ranking.NewScorer(e.clock.Now())
	results := make([]models.ScoredResult, 0, len(details))
	for _, detail := range details {
		candidate := buildCandidate(detail)
		score := scorer.Calculate(candidate, normalized)
		results = append(results, models.ScoredResult{
			TrackCandidate: candidate,
			RelevanceScore: score.Final,
		})
	}

	ranking.Rank(results)

	if len(results) > 0 {
		if err := e.cache.Put(ctx, normalized, results); err != nil {
			return nil, err
		}
	}

	return results, nil
}

// clearSessionOnUnauthorized limpa o estado de sessão persistido
// quando a API externa responde 401. Acoplamento necessário com o
// ciclo de vida de autenticação.
func (e *Engine) clearSessionOnUnauthorized(ctx context.Context, err error) {
	if models.KindOf(err) != models.KindUnauthorized {
		return
	}
	if derr := e.store.DeletePrefix(ctx, storage.SessionPrefix); derr != nil {
		log.Printf("falha ao limpar sessão após 401: %v", derr)
	}
}

// recordHistory roda fora do caminho principal; erros vão só para o log.
func (e *Engine) recordHistory(rawQuery string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := e.history.Record(ctx, rawQuery); err != nil {
		log.Printf("histórico: falha ao registrar %q: %v", rawQuery, err)
	}
}

// History expõe o ledger para a camada de API.
func (e *Engine) History() *HistoryLedger {
	return e.history
}

func (e *Engine) respond(original, normalized string, results []models.ScoredResult, cached bool, start time.Time) *models.SearchResponse {
	return &models.SearchResponse{
		Results: results,
		Total:   len(results),
		Query: models.QueryMeta{
			Original:   original,
			Normalized: normalized,
		},
		Cached: cached,
		Timing: models.TimingMeta{
			TotalMs: float64(time.Since(start).Microseconds()) / 1000,
		},
	}
}
