package handlers

import (
	"net/http"
	"runtime"

	"github.com/JFontaineGit/jif-tube-sub000/internal/models"
	"github.com/gin-gonic/gin"
)

// Version é definida em tempo de build via -ldflags.
var Version = "dev"

// VersionHandler expõe os metadados da build.
type VersionHandler struct{}

// NewVersionHandler cria um novo handler de versão.
func NewVersionHandler() *VersionHandler {
	return &VersionHandler{}
}

// Get godoc
// @Summary Versão da aplicação
// @Tags version
// @Produce json
// @Success 200 {object} models.VersionInfo
// @Router /version [get]
func (h *VersionHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, models.VersionInfo{
		Version:   Version,
		GoVersion: runtime.Version(),
	})
}
