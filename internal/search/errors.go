package search

import "github.com/JFontaineGit/jif-tube-sub000/internal/models"

var (
	// ErrEmptyQuery indica query vazia ou composta só de stopwords.
	ErrEmptyQuery = models.NewAPIError(models.KindInvalidRequest, "query sem termos de busca")
)
