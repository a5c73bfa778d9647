package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/Amit12200412/ai-legal-assistant/classify"
	"github.com/Amit12200412/ai-legal-assistant/doccheck"
	"github.com/Amit12200412/ai-legal-assistant/handlers"
	"github.com/Amit12200412/ai-legal-assistant/nlp"
	"github.com/Amit12200412/ai-legal-assistant/repository"
	"github.com/Amit12200412/ai-legal-assistant/service"
	"github.com/Amit12200412/ai-legal-assistant/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

func main() {
	// Load .env from the current directory or the project root
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found, using environment variables")
		}
	}

	ctx := context.Background()

	// Initialize the store backend (SQLite by default, Postgres when
	// DATABASE_URL is set)
	repos, closeStore, err := repository.NewRepositoriesFromEnv(ctx)
	if err != nil {
		log.Fatal("Failed to initialize store:", err)
	}
	defer closeStore()
	log.Println("Store initialized")

	// Initialize the PDF archive
	archive, err := storage.NewArchiveFromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize archive storage: %v", err)
	}
	log.Println("Archive storage initialized")

	// Initialize the lexical tagger
	tagger := nlp.NewProseTagger()

	// Initialize Gemini; without an API key the chat falls back to canned
	// replies
	geminiClient := initGemini(ctx)

	// Initialize services
	authService := service.NewAuthService(
		service.AuthWithUserRepository(repos.Users),
	)

	analysisService := service.NewAnalysisService(
		service.AnalysisWithClassifier(classify.NewClassifier(tagger)),
		service.AnalysisWithEstimator(classify.NewEstimator(rand.NewSource(time.Now().UnixNano()))),
		service.AnalysisWithHistoryRepository(repos.History),
	)

	documentService := service.NewDocumentService(
		service.DocWithDocumentRepository(repos.Documents),
		service.DocWithArchive(archive),
		service.DocWithChecker(doccheck.NewChecker(tagger)),
	)

	chatService := service.NewChatService(
		service.ChatWithChatRepository(repos.Chats),
		service.ChatWithGeminiClient(geminiClient),
	)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	analysisHandler := handlers.NewAnalysisHandler(analysisService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	chatHandler := handlers.NewChatHandler(chatService)
	i18nHandler := handlers.NewI18nHandler()

	// Setup Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth endpoints
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)
		api.PUT("/users/:username/language", authHandler.SetLanguage)

		// Analysis endpoints
		api.POST("/analyze", analysisHandler.Analyze)
		api.GET("/users/:username/history", analysisHandler.History)

		// Document endpoints
		api.POST("/documents/generate", documentHandler.Generate)
		api.GET("/documents/:id", documentHandler.Download)
		api.GET("/users/:username/documents", documentHandler.List)
		api.POST("/documents/check", documentHandler.Check)

		// Chat endpoints
		api.POST("/chat", chatHandler.Send)
		api.GET("/users/:username/chat", chatHandler.Transcript)

		// String tables
		api.GET("/i18n/:lang", i18nHandler.Table)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func initGemini(ctx context.Context) *genai.Client {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set, chat will use canned replies")
		return nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		log.Printf("Warning: Failed to initialize Gemini, chat will use canned replies: %v", err)
		return nil
	}

	log.Println("Gemini client initialized")
	return client
}
