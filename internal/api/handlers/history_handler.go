package handlers

import (
	"net/http"

	"github.com/JFontaineGit/jif-tube-sub000/internal/models"
	"github.com/JFontaineGit/jif-tube-sub000/internal/search"
	"github.com/gin-gonic/gin"
)

// HistoryHandler gerencia os endpoints do histórico de buscas.
type HistoryHandler struct {
	ledger *search.HistoryLedger
}

// NewHistoryHandler cria um novo handler de histórico.
func NewHistoryHandler(ledger *search.HistoryLedger) *HistoryHandler {
	return &HistoryHandler{ledger: ledger}
}

// List godoc
// @Summary Buscas populares
// @Description Lista as buscas recentes ordenadas por frequência de uso.
// @Tags history
// @Produce json
// @Success 200 {array} models.HistoryEntry
// @Failure 500 {object} map[string]string
// @Router /api/v1/history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	entries, err := h.ledger.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

// Clear godoc
// @Summary Limpa o histórico
// @Description Remove todas as entradas do histórico de buscas.
// @Tags history
// @Produce json
// @Success 204
// @Failure 500 {object} map[string]string
// @Router /api/v1/history [delete]
func (h *HistoryHandler) Clear(c *gin.Context) {
	if err := h.ledger.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
