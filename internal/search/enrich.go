package search

import (
	"regexp"
	"strings"

	"github.com/JFontaineGit/jif-tube-sub000/internal/models"
)

// Ordem fixa de prioridade de qualidade dos thumbnails.
var thumbnailPriority = []string{"maxres", "standard", "high", "medium", "default"}

// Padrões de extração de álbum, aplicados em ordem sobre a descrição.
// O primeiro que casar vence.
var albumPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)del\s+(?:álbum|album)\s*[:"“]?\s*([^"”\n(]+)`),
	regexp.MustCompile(`(?i)from the album\s*[:"“]?\s*([^"”\n(]+)`),
	regexp.MustCompile(`(?i)\b(?:álbum|album)\s*:\s*([^"”\n(]+)`),
}

const albumTagPrefix = "album:"

// buildCandidate transforma o detalhe cru do transporte em um
// candidato pronto para scoring: duração em segundos, classificação
// heurística, melhor thumbnail e palpite de álbum.
func buildCandidate(d models.VideoDetail) models.TrackCandidate {
	return models.TrackCandidate{
		ExternalID:      d.ID,
		Title:           d.Title,
		ChannelName:     d.ChannelTitle,
		PublishedAt:     d.PublishedAt,
		ViewCount:       d.ViewCount,
		Tags:            d.Tags,
		DurationSeconds: ParseDuration(d.DurationToken),
		ThumbnailURL:    bestThumbnail(d.Thumbnails),
		Classification:  classify(d.Title),
		AlbumGuess:      guessAlbum(d.Description, d.Tags),
	}
}

// bestThumbnail escolhe a URL de maior qualidade disponível.
func bestThumbnail(thumbnails map[string]string) string {
	for _, quality := range thumbnailPriority {
		if url, ok := thumbnails[quality]; ok && url != "" {
			return url
		}
	}
	return ""
}

// classify aplica a regra heurística de substring sobre o título.
func classify(title string) models.Classification {
	if strings.Contains(strings.ToLower(title), "official audio") {
		return models.ClassificationOfficialVideo
	}
	return models.ClassificationAlbumTrack
}

// guessAlbum tenta extrair o nome do álbum da descrição e depois das
// tags. Sem padrão que case, retorna o sentinela "Desconocido".
func guessAlbum(description string, tags []string) string {
	for _, pattern := range albumPatterns {
		if m := pattern.FindStringSubmatch(description); m != nil {
			if album := strings.TrimSpace(m[1]); album != "" {
				return album
			}
		}
	}

	for _, tag := range tags {
		lowered := strings.ToLower(tag)
		if strings.HasPrefix(lowered, albumTagPrefix) {
			if album := strings.TrimSpace(tag[len(albumTagPrefix):]); album != "" {
				return album
			}
		}
	}

	return models.AlbumUnknown
}
