// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## YouTube
//   - YOUTUBE_API_KEY: Chave da YouTube Data API (obrigatória fora do modo demo)
//   - YOUTUBE_REGION_CODE: Viés de região da busca (default: ES)
//   - YOUTUBE_RELEVANCE_LANGUAGE: Viés de idioma da busca (default: es)
//
// ## Busca
//   - SEARCH_MAX_RESULTS: Limite de candidatos por busca (default: 10)
//   - SEARCH_CACHE_TTL_MINUTES: Validade das entradas de cache (default: 60)
//   - SEARCH_CACHE_MAX_ENTRIES: Máximo de queries distintas no cache, 0 = ilimitado (default: 500)
//   - SEARCH_HISTORY_MAX_ENTRIES: Máximo de entradas no histórico (default: 10)
//   - SEARCH_MIN_DURATION_SECONDS: Duração mínima declarada (default: 0)
//   - SEARCH_MAX_DURATION_SECONDS: Duração máxima declarada (default: 0)
//   - DEMO_MODE: Serve resultados fixos sem tocar a API (default: false)
//
// ## Servidor
//   - SERVER_PORT: Porta HTTP (default: 8080)
//   - DB_PATH: Caminho do banco SQLite (default: data/jiftube.db)
//   - TRACING_ENABLED: Habilita OpenTelemetry (default: false)
//   - TRACING_ENDPOINT: Endpoint OTLP gRPC (default: localhost:4317)
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	YouTubeAPIKey            string
	YouTubeRegionCode        string
	YouTubeRelevanceLanguage string

	ServerPort string
	DBPath     string

	TracingEnabled  bool
	TracingEndpoint string

	DemoMode bool

	Search SearchConfig
}

// SearchConfig contém a configuração do motor de busca.
type SearchConfig struct {
	// Limite fixo de candidatos por busca (default 10)
	MaxResults int

	// TTL das entradas de cache em minutos (default 60)
	CacheTTLMinutes int

	// Máximo de queries distintas retidas no cache (default 500, 0 = ilimitado)
	CacheMaxEntries int

	// Máximo de entradas do histórico (default 10)
	HistoryMaxEntries int

	// Filtros de duração declarados; hoje nenhum resultado é filtrado por eles
	MinDurationSeconds int
	MaxDurationSeconds int
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		YouTubeAPIKey:            getEnv("YOUTUBE_API_KEY", ""),
		YouTubeRegionCode:        getEnv("YOUTUBE_REGION_CODE", "ES"),
		YouTubeRelevanceLanguage: getEnv("YOUTUBE_RELEVANCE_LANGUAGE", "es"),

		ServerPort: getEnv("SERVER_PORT", "8080"),
		DBPath:     getEnv("DB_PATH", "data/jiftube.db"),

		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),

		DemoMode: getEnv("DEMO_MODE", "false") == "true",

		Search: SearchConfig{
			MaxResults:         getEnvInt("SEARCH_MAX_RESULTS", 10),
			CacheTTLMinutes:    getEnvInt("SEARCH_CACHE_TTL_MINUTES", 60),
			CacheMaxEntries:    getEnvInt("SEARCH_CACHE_MAX_ENTRIES", 500),
			HistoryMaxEntries:  getEnvInt("SEARCH_HISTORY_MAX_ENTRIES", 10),
			MinDurationSeconds: getEnvInt("SEARCH_MIN_DURATION_SECONDS", 0),
			MaxDurationSeconds: getEnvInt("SEARCH_MAX_DURATION_SECONDS", 0),
		},
	}
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
