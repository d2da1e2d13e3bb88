package search

import (
	"time"

	"github.com/JFontaineGit/jif-tube-sub000/internal/models"
)

// demoResults retorna o conjunto fixo servido no modo demo, para
// ambientes sem credenciais da API. Sempre uma cópia nova.
func demoResults() []models.ScoredResult {
	published := time.Date(2019, 11, 1, 0, 0, 0, 0, time.UTC)

	fixed := []models.ScoredResult{
		{
			TrackCandidate: models.TrackCandidate{
				ExternalID:      "demo-001",
				Title:           "Tusa (Official Audio)",
				ChannelName:     "Karol G",
				PublishedAt:     published,
				ViewCount:       1500000,
				DurationSeconds: 200,
				ThumbnailURL:    "https://i.ytimg.com/vi/demo-001/maxresdefault.jpg",
				Classification:  models.ClassificationOfficialVideo,
				AlbumGuess:      "KG0516",
			},
			RelevanceScore: 1125000.3,
		},
		{
			TrackCandidate: models.TrackCandidate{
				ExternalID:      "demo-002",
				Title:           "Vivir Mi Vida",
				ChannelName:     "Marc Anthony - Topic",
				PublishedAt:     published.AddDate(-5, 0, 0),
				ViewCount:       900000,
				DurationSeconds: 252,
				ThumbnailURL:    "https://i.ytimg.com/vi/demo-002/hqdefault.jpg",
				Classification:  models.ClassificationAlbumTrack,
				AlbumGuess:      "3.0",
			},
			RelevanceScore: 675000.1,
		},
		{
			TrackCandidate: models.TrackCandidate{
				ExternalID:      "demo-003",
				Title:           "La Camisa Negra",
				ChannelName:     "Juanes",
				PublishedAt:     published.AddDate(-10, 0, 0),
				ViewCount:       400000,
				DurationSeconds: 216,
				ThumbnailURL:    "https://i.ytimg.com/vi/demo-003/hqdefault.jpg",
				Classification:  models.ClassificationAlbumTrack,
				AlbumGuess:      models.AlbumUnknown,
			},
			RelevanceScore: 200000.05,
		},
	}

	out := make([]models.ScoredResult, len(fixed))
	copy(out, fixed)
	return out
}
