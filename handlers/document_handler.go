package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/Amit12200412/ai-legal-assistant/classify"
	"github.com/Amit12200412/ai-legal-assistant/models"
	"github.com/Amit12200412/ai-legal-assistant/repository"
	"github.com/Amit12200412/ai-legal-assistant/service"

	"github.com/gin-gonic/gin"
)

// DocumentHandler handles HTTP requests for document generation, download
// and quality checking
type DocumentHandler struct {
	documentService *service.DocumentService
	maxUploadSize   int64
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		maxUploadSize:   1 * 1024 * 1024, // 1MB of plain text
	}
}

// GenerateRequest represents the request body for document generation
type GenerateRequest struct {
	Username string `json:"username" binding:"required"`
	DocType  string `json:"doc_type" binding:"required"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Mobile   string `json:"mobile"`
	Against  string `json:"against"`
	Details  string `json:"details"`
	Statute  string `json:"statute"`
}

// Generate handles POST /api/documents/generate
func (h *DocumentHandler) Generate(c *gin.Context) {
	var req GenerateRequest
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

	result, err := h.documentService.Generate(c.Request.Context(), service.GenerateRequest{
		Username: req.Username,
		Type:     models.DocumentType(req.DocType),
		Name:     req.Name,
		Address:  req.Address,
		Mobile:   req.Mobile,
		Against:  req.Against,
		Details:  req.Details,
		Statute:  req.Statute,
	})
	if err != nil {
		if errors.Is(err, classify.ErrInvalidInput) || strings.Contains(err.Error(), "unknown document type") {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_INPUT",
					"message": err.Error(),
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "GENERATE_FAILED",
				"message": "Failed to generate document",
			},
		})
		return
	}

	doc := result.Document
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"id":         doc.ID,
			"filename":   doc.Filename,
			"doc_type":   doc.Type,
			"created_at": doc.CreatedAt,
		},
	})
}

// Download handles GET /api/documents/:id
func (h *DocumentHandler) Download(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid document ID format",
			},
		})
		return
	}

	result, err := h.documentService.GetDocument(c.Request.Context(), service.GetDocumentRequest{ID: id})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Document not found",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STORAGE_ERROR",
				"message": "Failed to load document",
			},
		})
		return
	}

	doc := result.Document
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, "application/pdf", doc.Content)
}

// List handles GET /api/users/:username/documents
func (h *DocumentHandler) List(c *gin.Context) {
	result, err := h.documentService.ListDocuments(c.Request.Context(), service.ListDocumentsRequest{
		Username: c.Param("username"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STORAGE_ERROR",
				"message": "Failed to list documents",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Documents,
	})
}

// Check handles POST /api/documents/check: a multipart .txt upload analyzed
// in memory and never persisted.
func (h *DocumentHandler) Check(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_FILE",
				"message": "File is required",
			},
		})
		return
	}

	if fileHeader.Size > h.maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FILE_TOO_LARGE",
				"message": fmt.Sprintf("File size exceeds maximum of %d bytes", h.maxUploadSize),
			},
		})
		return
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".txt") {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_FILE_TYPE",
				"message": "Only .txt documents can be checked",
			},
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_INPUT",
				"message": "Could not read the uploaded file",
			},
		})
		return
	}
	defer file.Close()

	text, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_INPUT",
				"message": "Could not read the uploaded file",
			},
		})
		return
	}

	result, err := h.documentService.CheckUpload(c.Request.Context(), service.CheckUploadRequest{
		Text: string(text),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CHECK_FAILED",
				"message": "Failed to check document",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"warnings": result.Warnings,
			"clean":    len(result.Warnings) == 0,
		},
	})
}
