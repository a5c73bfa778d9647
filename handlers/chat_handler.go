package handlers

import (
	"net/http"

	"github.com/Amit12200412/ai-legal-assistant/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles HTTP requests for the assistant chat
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// SendRequest represents the request body for a chat message
type SendRequest struct {
	Username string `json:"username" binding:"required"`
	Message  string `json:"message" binding:"required"`
}

// Send handles POST /api/chat
func (h *ChatHandler) Send(c *gin.Context) {
	var req SendRequest
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

	result, err := h.chatService.Send(c.Request.Context(), service.SendRequest{
		Username: req.Username,
		Message:  req.Message,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CHAT_FAILED",
				"message": "Failed to send message",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"user":      result.UserEntry,
			"assistant": result.AssistantEntry,
		},
	})
}

// Transcript handles GET /api/users/:username/chat
func (h *ChatHandler) Transcript(c *gin.Context) {
	result, err := h.chatService.Transcript(c.Request.Context(), service.TranscriptRequest{
		Username: c.Param("username"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STORAGE_ERROR",
				"message": "Failed to load transcript",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Entries,
	})
}
