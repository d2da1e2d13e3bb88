package handlers

import (
	"net/http"

	"github.com/JFontaineGit/jif-tube-sub000/internal/models"
	"github.com/JFontaineGit/jif-tube-sub000/internal/search"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// SearchHandler gerencia o endpoint de busca.
type SearchHandler struct {
	engine    *search.Engine
	validator *validator.Validate
}

// NewSearchHandler cria um novo handler de busca.
func NewSearchHandler(engine *search.Engine) *SearchHandler {
	return &SearchHandler{
		engine:    engine,
		validator: validator.New(),
	}
}

// SearchRequest são os parâmetros aceitos pelo endpoint de busca.
type SearchRequest struct {
	Q string `form:"q" validate:"required,max=200"`
}

// Search godoc
// @Summary Busca de faixas
// @Description Busca faixas de música no YouTube, rankeadas por relevância composta
// @Description (visualizações, recência, match de título, similaridade fuzzy e boost
// @Description de conteúdo oficial). Resultados são cacheados por query normalizada.
// @Tags search
// @Produce json
// @Param q query string true "Query de busca" example("imagine dragons")
// @Success 200 {object} models.SearchResponse
// @Failure 400 {object} map[string]string "Query ausente ou sem termos úteis"
// @Failure 401 {object} map[string]string "Credenciais inválidas na API externa"
// @Failure 403 {object} map[string]string "Quota da API externa esgotada"
// @Failure 502 {object} map[string]string "Falha na API externa"
// @Router /api/v1/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "parâmetro q é obrigatório"})
		return
	}

	// Valida os dados
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validação falhou: " + err.Error()})
		return
	}

	result, err := h.engine.Search(c.Request.Context(), req.Q)
	if err != nil {
		c.JSON(models.HTTPStatus(err), gin.H{
			"error": err.Error(),
			"kind":  models.KindOf(err),
		})
		return
	}

	// Resultado vazio é sucesso ("sem resultados"), nunca erro.
	c.JSON(http.StatusOK, result)
}
