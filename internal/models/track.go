package models

import "time"

// Classification indica o tipo heurístico de um resultado.
// "official-video" quando o título contém "official audio"; "album-track" caso contrário.
// É uma heurística baseada em substring, não uma garantia.
type Classification string

const (
	ClassificationOfficialVideo Classification = "official-video"
	ClassificationAlbumTrack    Classification = "album-track"
)

// AlbumUnknown é o sentinela usado quando nenhum padrão de álbum casa
// com a descrição ou as tags do vídeo.
const AlbumUnknown = "Desconocido"

// TrackCandidate representa um resultado de busca antes do scoring.
type TrackCandidate struct {
	ExternalID      string         `json:"external_id"`
	Title           string         `json:"title"`
	ChannelName     string         `json:"channel_name"`
	PublishedAt     time.Time      `json:"published_at"`
	ViewCount       uint64         `json:"view_count"`
	Tags            []string       `json:"tags,omitempty"`
	DurationSeconds int            `json:"duration_seconds"`
	ThumbnailURL    string         `json:"thumbnail_url"`
	Classification  Classification `json:"classification"`
	AlbumGuess      string         `json:"album_guess"`
}

// ScoredResult é um TrackCandidate com score de relevância calculado.
// O score é calculado uma única vez por fetch e nunca recalculado
// para entradas vindas do cache.
type ScoredResult struct {
	TrackCandidate
	RelevanceScore float64 `json:"relevance_score"`
}

// VideoDetail é o resultado cru do transporte (snippet + contentDetails +
// statistics), ainda sem parsing de duração nem classificação.
type VideoDetail struct {
	ID            string
	Title         string
	ChannelTitle  string
	Description   string
	PublishedAt   time.Time
	ViewCount     uint64
	Tags          []string
	DurationToken string            // token ISO-8601, ex: "PT3M52S"
	Thumbnails    map[string]string // qualidade -> URL
}

// CacheEntry é uma entrada do cache de resultados, chaveada pela query
// normalizada. Sobrescrita por inteiro a cada fetch bem-sucedido.
type CacheEntry struct {
	Key       string         `json:"key"`
	Results   []ScoredResult `json:"results"`
	WrittenAt time.Time      `json:"written_at"`
}

// HistoryEntry é uma entrada do histórico de buscas, única por query
// exata (não normalizada).
type HistoryEntry struct {
	Query           string    `json:"query"`
	LastSeenAt      time.Time `json:"last_seen_at"`
	OccurrenceCount int       `json:"occurrence_count"`
}
