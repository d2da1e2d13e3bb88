package search

import (
	"context"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/JFontaineGit/jif-tube-sub000/internal/models"
	"github.com/JFontaineGit/jif-tube-sub000/internal/storage"
)

// fakeTransport devolve respostas fixas e conta chamadas para verificar
// quando o motor vai ou não à rede.
type fakeTransport struct {
	mu          sync.Mutex
	ids         []string
	details     []models.VideoDetail
	searchErr   error
	detailErr   error
	searchCalls int
	detailCalls int
}

func (f *fakeTransport) SearchByQuery(_ context.Context, _ string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.searchCalls++
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.ids, nil
}

func (f *fakeTransport) FetchDetails(_ context.Context, _ []string) ([]models.VideoDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.detailCalls++
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	return f.details, nil
}

func (f *fakeTransport) calls() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.searchCalls, f.detailCalls
}

// countingStore registra as chamadas de DeletePrefix para verificar a
// limpeza de sessão após 401.
type countingStore struct {
	storage.Store
	mu              sync.Mutex
	deletedPrefixes []string
}

func (s *countingStore) DeletePrefix(ctx context.Context, prefix string) error {
	s.mu.Lock()
	s.deletedPrefixes = append(s.deletedPrefixes, prefix)
	s.mu.Unlock()
	return s.Store.DeletePrefix(ctx, prefix)
}

func sampleDetails() []models.VideoDetail {
	return []models.VideoDetail{
		{
			ID:            "v1",
			Title:         "Tusa (Official Audio)",
			ChannelTitle:  "Karol G",
			PublishedAt:   time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC),
			ViewCount:     900_000,
			DurationToken: "PT3M52S",
			Thumbnails:    map[string]string{"high": "http://img/v1.jpg"},
		},
		{
			ID:            "v2",
			Title:         "tusa cover acustico",
			ChannelTitle:  "Canal Pequeno",
			PublishedAt:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			ViewCount:     1_200,
			DurationToken: "PT4M10S",
			Thumbnails:    map[string]string{"default": "http://img/v2.jpg"},
		},
	}
}

func newTestEngine(transport Transport, store storage.Store, clk Clock) *Engine {
	cache := NewResultCache(store, time.Hour, 0, clk)
	ledger := NewHistoryLedger(store, DefaultHistoryMax, clk)
	return NewEngine(transport, store, cache, ledger, clk, Options{})
}

func TestSearchQueryVazia(t *testing.T) {
	engine := newTestEngine(&fakeTransport{}, storage.NewMemoryStore(), newFakeClock())

	for _, raw := range []string{"", "   "} {
		_, err := engine.Search(context.Background(), raw)
		if err != models.ErrQueryRequired {
			t.Errorf("Search(%q): err = %v, want ErrQueryRequired", raw, err)
		}
	}
}

func TestSearchQuerySoStopwords(t *testing.T) {
	engine := newTestEngine(&fakeTransport{}, storage.NewMemoryStore(), newFakeClock())

	// "el la de" normaliza para vazio: rejeitada antes de ir à rede.
	_, err := engine.Search(context.Background(), "el la de")
	if err == nil {
		t.Fatal("query só de stopwords deveria falhar")
	}
	if models.KindOf(err) != models.KindInvalidRequest {
		t.Errorf("kind = %q, want %q", models.KindOf(err), models.KindInvalidRequest)
	}
}

func TestSearchMissDepoisHit(t *testing.T) {
	ctx := context.Background()
	clk := newFakeClock()
	transport := &fakeTransport{ids: []string{"v1", "v2"}, details: sampleDetails()}
	engine := newTestEngine(transport, storage.NewMemoryStore(), clk)

	first, err := engine.Search(ctx, "Tusa")
	if err != nil {
		t.Fatalf("primeira busca falhou: %v", err)
	}
	if first.Cached {
		t.Error("primeira busca não deveria vir do cache")
	}
	if first.Total != 2 {
		t.Fatalf("Total = %d, want 2", first.Total)
	}
	if first.Query.Normalized != "tusa" {
		t.Errorf("Normalized = %q, want tusa", first.Query.Normalized)
	}

	clk.advance(time.Minute)
	second, err := engine.Search(ctx, "Tusa")
	if err != nil {
		t.Fatalf("segunda busca falhou: %v", err)
	}
	if !second.Cached {
		t.Error("segunda busca deveria vir do cache")
	}

	// Hit de cache não dispara nenhuma chamada externa nova.
	searches, fetches := transport.calls()
	if searches != 1 || fetches != 1 {
		t.Errorf("chamadas externas = (%d, %d), want (1, 1)", searches, fetches)
	}

	// Resultados cacheados voltam exatamente como foram gravados,
	// score incluído.
	if !reflect.DeepEqual(first.Results, second.Results) {
		t.Errorf("resultados do cache divergem do fetch original:\n%+v\n%+v", first.Results, second.Results)
	}
}

func TestSearchRankeiaPorScore(t *testing.T) {
	transport := &fakeTransport{ids: []string{"v1", "v2"}, details: sampleDetails()}
	engine := newTestEngine(transport, storage.NewMemoryStore(), newFakeClock())

	resp, err := engine.Search(context.Background(), "tusa")
	if err != nil {
		t.Fatalf("Search falhou: %v", err)
	}

	// v1 tem ordens de magnitude mais views e o marcador oficial.
	if resp.Results[0].ExternalID != "v1" {
		t.Errorf("primeiro resultado = %q, want v1", resp.Results[0].ExternalID)
	}
	if resp.Results[0].RelevanceScore <= resp.Results[1].RelevanceScore {
		t.Errorf("scores fora de ordem: %f <= %f", resp.Results[0].RelevanceScore, resp.Results[1].RelevanceScore)
	}
}

func TestSearchVazioNuncaVaiProCache(t *testing.T) {
	ctx := context.Background()
	transport := &fakeTransport{ids: nil}
	engine := newTestEngine(transport, storage.NewMemoryStore(), newFakeClock())

	resp, err := engine.Search(ctx, "banda inexistente")
	if err != nil {
		t.Fatalf("Search falhou: %v", err)
	}
	if resp.Total != 0 {
		t.Fatalf("Total = %d, want 0", resp.Total)
	}

	// A segunda chamada tenta o fetch de novo em vez de servir o
	// vazio do cache.
	if _, err := engine.Search(ctx, "banda inexistente"); err != nil {
		t.Fatalf("segunda busca falhou: %v", err)
	}

	searches, fetches := transport.calls()
	if searches != 2 {
		t.Errorf("searchCalls = %d, want 2", searches)
	}
	if fetches != 0 {
		t.Errorf("detailCalls = %d, want 0 (sem IDs não há fetch de detalhes)", fetches)
	}
}

func TestSearchLimpaSessaoEm401(t *testing.T) {
	ctx := context.Background()
	store := &countingStore{Store: storage.NewMemoryStore()}
	transport := &fakeTransport{
		ids:       []string{"v1"},
		detailErr: models.APIErrorFromStatus(401, "credenciais inválidas"),
	}
	engine := newTestEngine(transport, store, newFakeClock())

	if err := store.Put(ctx, storage.SessionPrefix+"token", []byte("abc")); err != nil {
		t.Fatalf("seed da sessão falhou: %v", err)
	}

	_, err := engine.Search(ctx, "tusa")
	if err == nil {
		t.Fatal("busca deveria propagar o 401")
	}
	if models.KindOf(err) != models.KindUnauthorized {
		t.Errorf("kind = %q, want %q", models.KindOf(err), models.KindUnauthorized)
	}

	if _, ok, _ := store.Get(ctx, storage.SessionPrefix+"token"); ok {
		t.Error("estado de sessão deveria ter sido removido após 401")
	}

	store.mu.Lock()
	deleted := append([]string(nil), store.deletedPrefixes...)
	store.mu.Unlock()
	if len(deleted) != 1 || deleted[0] != storage.SessionPrefix {
		t.Errorf("DeletePrefix chamado com %v, want exatamente [%q]", deleted, storage.SessionPrefix)
	}
}

func TestSearchNaoLimpaSessaoEmOutrosErros(t *testing.T) {
	ctx := context.Background()
	store := &countingStore{Store: storage.NewMemoryStore()}
	transport := &fakeTransport{
		searchErr: models.APIErrorFromStatus(403, "quota esgotada"),
	}
	engine := newTestEngine(transport, store, newFakeClock())

	_, err := engine.Search(ctx, "tusa")
	if models.KindOf(err) != models.KindQuotaExceeded {
		t.Fatalf("kind = %q, want %q", models.KindOf(err), models.KindQuotaExceeded)
	}

	store.mu.Lock()
	deleted := len(store.deletedPrefixes)
	store.mu.Unlock()
	if deleted != 0 {
		t.Errorf("DeletePrefix chamado %d vezes para erro que não é 401", deleted)
	}
}

func TestSearchRegistraHistorico(t *testing.T) {
	ctx := context.Background()
	transport := &fakeTransport{ids: []string{"v1", "v2"}, details: sampleDetails()}
	engine := newTestEngine(transport, storage.NewMemoryStore(), newFakeClock())

	if _, err := engine.Search(ctx, "Tusa Karol G"); err != nil {
		t.Fatalf("Search falhou: %v", err)
	}

	// O registro é assíncrono; aguarda aparecer no ledger.
	deadline := time.Now().Add(2 * time.Second)
	for {
		entries, err := engine.History().List(ctx)
		if err != nil {
			t.Fatalf("List falhou: %v", err)
		}
		if len(entries) == 1 && entries[0].Query == "Tusa Karol G" {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("histórico não registrou a busca: %+v", entries)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestSearchModoDemo(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	clk := newFakeClock()
	cache := NewResultCache(store, time.Hour, 0, clk)
	ledger := NewHistoryLedger(store, DefaultHistoryMax, clk)
	// Transport nil: o modo demo nunca deve tocar a rede.
	engine := NewEngine(nil, store, cache, ledger, clk, Options{DemoMode: true})

	resp, err := engine.Search(ctx, "qualquer coisa")
	if err != nil {
		t.Fatalf("Search falhou: %v", err)
	}
	if resp.Total != 3 {
		t.Errorf("Total = %d, want 3", resp.Total)
	}
	if resp.Cached {
		t.Error("modo demo não marca resposta como cacheada")
	}

	// Nem cache nem histórico são gravados no modo demo.
	keys, err := store.List(ctx, "")
	if err != nil {
		t.Fatalf("List falhou: %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("modo demo gravou no store: %v", keys)
	}
}
