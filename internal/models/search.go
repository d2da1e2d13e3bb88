package models

// QueryMeta descreve a query como recebida e como usada na busca.
type QueryMeta struct {
	Original   string `json:"original"`
	Normalized string `json:"normalized"`
}

// TimingMeta contém métricas de tempo da busca.
type TimingMeta struct {
	TotalMs float64 `json:"total_ms"`
}

// SearchResponse é a resposta completa de uma busca.
type SearchResponse struct {
	Results []ScoredResult `json:"results"`
	Total   int            `json:"total"`
	Query   QueryMeta      `json:"query"`
	Cached  bool           `json:"cached"`
	Timing  TimingMeta     `json:"timing"`
}
