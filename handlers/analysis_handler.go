package handlers

import (
	"errors"
	"net/http"

	"github.com/Amit12200412/ai-legal-assistant/classify"
	"github.com/Amit12200412/ai-legal-assistant/service"

	"github.com/gin-gonic/gin"
)

// AnalysisHandler handles HTTP requests for query analysis and history
type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// AnalyzeRequest represents the request body for query analysis
type AnalyzeRequest struct {
	Username string `json:"username" binding:"required"`
	Query    string `json:"query"`
	Save     bool   `json:"save"`
}

// Analyze handles POST /api/analyze
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	result, err := h.analysisService.Analyze(c.Request.Context(), service.AnalyzeRequest{
		Username:  req.Username,
		QueryText: req.Query,
		Save:      req.Save,
	})
	if err != nil {
		if errors.Is(err, classify.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_INPUT",
					"message": "Please enter a query before analyzing",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ANALYZE_FAILED",
				"message": "Analysis failed, please try again",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// History handles GET /api/users/:username/history
func (h *AnalysisHandler) History(c *gin.Context) {
	result, err := h.analysisService.History(c.Request.Context(), service.HistoryRequest{
		Username: c.Param("username"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STORAGE_ERROR",
				"message": "Failed to load history",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Records,
	})
}
