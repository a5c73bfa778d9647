package handlers

import (
	"net/http"

	"github.com/Amit12200412/ai-legal-assistant/i18n"
	"github.com/Amit12200412/ai-legal-assistant/models"

	"github.com/gin-gonic/gin"
)

// I18nHandler serves the interface string tables to the front-end
type I18nHandler struct{}

// NewI18nHandler creates a new i18n handler
func NewI18nHandler() *I18nHandler {
	return &I18nHandler{}
}

// Table handles GET /api/i18n/:lang. Unknown languages fall back to English
// rather than erroring, so the front-end always gets a usable table.
func (h *I18nHandler) Table(c *gin.Context) {
	lang := models.Language(c.Param("lang"))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"language": lang,
			"strings":  i18n.Table(lang),
		},
	})
}
