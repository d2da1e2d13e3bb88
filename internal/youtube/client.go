// Package youtube encapsula as duas chamadas à YouTube Data API usadas
// pelo motor de busca: search.list por query e videos.list em lote por
// IDs. Erros da API são convertidos na taxonomia tipada aqui, nunca
// inspecionados ad hoc pelo restante do código.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JFontaineGit/jif-tube-sub000/internal/models"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Categoria "Music" da YouTube Data API.
const musicCategoryID = "10"

// Client é o transporte de busca e de detalhes de vídeo.
type Client struct {
	svc               *youtube.Service
	maxResults        int64
	regionCode        string
	relevanceLanguage string
}

// NewClient cria um cliente autenticado por chave de API.
func NewClient(ctx context.Context, apiKey, regionCode, relevanceLanguage string, maxResults int64) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("chave da YouTube API não configurada")
	}

	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("falha ao criar serviço YouTube: %w", err)
	}

	return &Client{
		svc:               svc,
		maxResults:        maxResults,
		regionCode:        regionCode,
		relevanceLanguage: relevanceLanguage,
	}, nil
}

// SearchByQuery executa a busca restrita à categoria de música,
// ordenada por visualizações, e retorna os IDs dos candidatos.
func (c *Client) SearchByQuery(ctx context.Context, text string) ([]string, error) {
	call := c.svc.Search.List([]string{"id", "snippet"}).
		Q(text).
		Type("video").
		VideoCategoryId(musicCategoryID).
		Order("viewCount").
		MaxResults(c.maxResults).
		RegionCode(c.regionCode).
		RelevanceLanguage(c.relevanceLanguage).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, mapError(err, "falha na busca")
	}

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			ids = append(ids, item.Id.VideoId)
		}
	}
	return ids, nil
}

// FetchDetails busca snippet, contentDetails e statistics de todos os
// IDs em uma única chamada.
func (c *Client) FetchDetails(ctx context.Context, ids []string) ([]models.VideoDetail, error) {
	call := c.svc.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
		Id(ids...).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, mapError(err, "falha ao buscar detalhes")
	}

	details := make([]models.VideoDetail, 0, len(resp.Items))
	for _, video := range resp.Items {
		if video.Snippet == nil {
			continue
		}

		detail := models.VideoDetail{
			ID:           video.Id,
			Title:        video.Snippet.Title,
			ChannelTitle: video.Snippet.ChannelTitle,
			Description:  video.Snippet.Description,
			Tags:         video.Snippet.Tags,
			Thumbnails:   thumbnailMap(video.Snippet.Thumbnails),
		}

		// Campos ausentes viram defaults defensivos, nunca erro.
		if t, err := time.Parse(time.RFC3339, video.Snippet.PublishedAt); err == nil {
			detail.PublishedAt = t
		}
		if video.Statistics != nil {
			detail.ViewCount = video.Statistics.ViewCount
		}
		if video.ContentDetails != nil {
			detail.DurationToken = video.ContentDetails.Duration
		}

		details = append(details, detail)
	}
	return details, nil
}

// thumbnailMap achata ThumbnailDetails em qualidade -> URL.
func thumbnailMap(t *youtube.ThumbnailDetails) map[string]string {
	if t == nil {
		return nil
	}

	m := make(map[string]string)
	if t.Maxres != nil {
		m["maxres"] = t.Maxres.Url
	}
	if t.Standard != nil {
		m["standard"] = t.Standard.Url
	}
	if t.High != nil {
		m["high"] = t.High.Url
	}
	if t.Medium != nil {
		m["medium"] = t.Medium.Url
	}
	if t.Default != nil {
		m["default"] = t.Default.Url
	}
	return m
}

// mapError converte erros da googleapi na taxonomia tipada.
// Falhas sem status HTTP (rede, contexto) viram KindUnknown.
func mapError(err error, msg string) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return models.APIErrorFromStatus(gerr.Code, fmt.Sprintf("%s: %s", msg, gerr.Message))
	}
	return models.NewAPIError(models.KindUnknown, fmt.Sprintf("%s: %v", msg, err))
}
