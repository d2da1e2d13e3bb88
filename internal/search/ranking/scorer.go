package ranking

import (
	"sort"
	"strings"
	"time"

	"github.com/JFontaineGit/jif-tube-sub000/internal/models"
	"github.com/JFontaineGit/jif-tube-sub000/internal/search/query"
)

// Pesos do score composto.
const (
	viewWeight       = 0.5
	recencyWeight    = 0.3
	titleMatchWeight = 0.2
	similarityWeight = 0.1
	semanticBoost    = 1.5

	// Idade mínima em dias para o termo de recência.
	// Vídeo publicado "agora" teria divisão por zero sem o clamp.
	minAgeDays = 1.0 / 1440.0
)

// Marcadores que indicam conteúdo oficial/auto-gerado e recebem boost.
var semanticMarkers = []string{"official audio", "topic"}

// ScoreResult expõe cada componente do score para inspeção e teste.
type ScoreResult struct {
	ViewTerm        float64
	RecencyTerm     float64
	TitleMatchTerm  float64
	Base            float64
	Boost           float64
	SimilarityBonus float64
	Final           float64
}

// Scorer calcula scores de relevância para candidatos de uma busca.
// Determinístico: mesmo candidato, mesma query e mesmo instante de
// referência produzem sempre o mesmo score.
type Scorer struct {
	now time.Time
}

// NewScorer cria um scorer com o instante de referência para recência.
func NewScorer(now time.Time) *Scorer {
	return &Scorer{now: now}
}

// Calculate calcula o score composto de um candidato.
//
// base  = views*0.5 + (1/idadeDias)*0.3 + matchTitulo*0.2
// final = base * boost(1.5 se marcador oficial) + (1-distância)*0.1
func (s *Scorer) Calculate(c models.TrackCandidate, normalizedQuery string) *ScoreResult {
	r := &ScoreResult{Boost: 1.0}

	r.ViewTerm = float64(c.ViewCount) * viewWeight

	ageDays := s.now.Sub(c.PublishedAt).Hours() / 24
	if ageDays < minAgeDays {
		ageDays = minAgeDays
	}
	r.RecencyTerm = (1.0 / ageDays) * recencyWeight

	r.TitleMatchTerm = titleMatchRatio(c.Title, normalizedQuery) * titleMatchWeight

	r.Base = r.ViewTerm + r.RecencyTerm + r.TitleMatchTerm

	if hasSemanticMarker(c) {
		r.Boost = semanticBoost
	}

	similarity := 1.0 - NormalizedDistance(normalizedQuery, strings.ToLower(c.Title))
	r.SimilarityBonus = similarity * similarityWeight

	r.Final = r.Base*r.Boost + r.SimilarityBonus

	return r
}

// titleMatchRatio retorna a fração de termos da query que aparecem
// como palavras inteiras no título.
func titleMatchRatio(title, normalizedQuery string) float64 {
	terms := query.Terms(normalizedQuery)
	if len(terms) == 0 {
		return 0
	}

	words := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(title)) {
		words[w] = true
	}

	matched := 0
	for _, term := range terms {
		if words[term] {
			matched++
		}
	}

	return float64(matched) / float64(len(terms))
}

// hasSemanticMarker verifica título e tags por marcadores de conteúdo oficial.
func hasSemanticMarker(c models.TrackCandidate) bool {
	title := strings.ToLower(c.Title)
	for _, marker := range semanticMarkers {
		if strings.Contains(title, marker) {
			return true
		}
	}
	for _, tag := range c.Tags {
		lowered := strings.ToLower(tag)
		for _, marker := range semanticMarkers {
			if strings.Contains(lowered, marker) {
				return true
			}
		}
	}
	return false
}

// Rank ordena resultados por score decrescente. Ordenação estável:
// empates preservam a ordem de chegada do fetch.
func Rank(results []models.ScoredResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})
}
