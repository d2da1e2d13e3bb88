package main

import (
	"context"
	"log"
	"time"

	_ "github.com/JFontaineGit/jif-tube-sub000/docs"
	"github.com/JFontaineGit/jif-tube-sub000/internal/api/routes"
	"github.com/JFontaineGit/jif-tube-sub000/internal/config"
	"github.com/JFontaineGit/jif-tube-sub000/internal/observability"
	"github.com/JFontaineGit/jif-tube-sub000/internal/search"
	"github.com/JFontaineGit/jif-tube-sub000/internal/storage"
	"github.com/JFontaineGit/jif-tube-sub000/internal/youtube"
)

// @title           JifTube Search API
// @version         1.0
// @description     API de busca de faixas de música no YouTube com ranking composto de relevância, cache com TTL e histórico de buscas

// @license.name  MIT

// @host      localhost:8080

func main() {
	cfg := config.LoadConfig()

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	var store storage.Store
	if cfg.DemoMode {
		// Modo demo não persiste nada entre execuções.
		store = storage.NewMemoryStore()
	} else {
		sqliteStore, err := storage.NewSQLiteStore(cfg.DBPath)
		if err != nil {
			log.Fatalf("Erro ao abrir persistência: %v", err)
		}
		store = sqliteStore
	}
	defer store.Close()

	var transport search.Transport
	if !cfg.DemoMode {
		client, err := youtube.NewClient(
			context.Background(),
			cfg.YouTubeAPIKey,
			cfg.YouTubeRegionCode,
			cfg.YouTubeRelevanceLanguage,
			int64(cfg.Search.MaxResults),
		)
		if err != nil {
			log.Fatalf("Erro ao criar cliente YouTube: %v", err)
		}
		transport = client
	}

	clock := search.SystemClock
	cache := search.NewResultCache(
		store,
		time.Duration(cfg.Search.CacheTTLMinutes)*time.Minute,
		cfg.Search.CacheMaxEntries,
		clock,
	)
	ledger := search.NewHistoryLedger(store, cfg.Search.HistoryMaxEntries, clock)

	engine := search.NewEngine(transport, store, cache, ledger, clock, search.Options{
		DemoMode:       cfg.DemoMode,
		MinDurationSec: cfg.Search.MinDurationSeconds,
		MaxDurationSec: cfg.Search.MaxDurationSeconds,
	})

	r := routes.SetupRouter(engine, store)

	log.Printf("Servidor iniciado na porta %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}
}
