package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/Amit12200412/ai-legal-assistant/models"
	"github.com/Amit12200412/ai-legal-assistant/repository"

	"github.com/google/generative-ai-go/genai"
)

const chatModel = "gemini-1.5-flash"

const chatSystemPrompt = "You are a legal information assistant for Indian law. " +
	"Answer briefly and in plain language. Always remind the user to consult " +
	"a qualified lawyer for advice specific to their situation."

// cannedReplies are used when no generation client is configured
var cannedReplies = []string{
	"Based on your query, it appears to relate to contractual obligations.",
	"This issue may involve both civil and procedural law aspects.",
	"Your query seems connected to constitutional rights.",
	"The matter involves legal liability and documentation procedures.",
}

// ChatService manages the assistant transcript and produces replies
type ChatService struct {
	chatRepo repository.ChatRepository
	gemini   *genai.Client
	rng      *rand.Rand
}

// ChatServiceOption is a functional option for ChatService
type ChatServiceOption func(*ChatService)

// ChatWithChatRepository sets the chat repository
func ChatWithChatRepository(repo repository.ChatRepository) ChatServiceOption {
	return func(s *ChatService) {
		s.chatRepo = repo
	}
}

// ChatWithGeminiClient sets the Gemini client; leave unset to answer from the
// canned reply set
func ChatWithGeminiClient(client *genai.Client) ChatServiceOption {
	return func(s *ChatService) {
		s.gemini = client
	}
}

// ChatWithRandSource sets the random source used to pick canned replies
func ChatWithRandSource(src rand.Source) ChatServiceOption {
	return func(s *ChatService) {
		s.rng = rand.New(src)
	}
}

// NewChatService creates a new chat service
func NewChatService(opts ...ChatServiceOption) *ChatService {
	s := &ChatService{}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

// SendRequest represents one user message
type SendRequest struct {
	Username string
	Message  string
}

// SendResult carries both appended transcript entries
type SendResult struct {
	UserEntry      *models.ChatLogEntry
	AssistantEntry *models.ChatLogEntry
}

// Send appends the user's message to the transcript, produces an assistant
// reply, and appends that too.
func (s *ChatService) Send(ctx context.Context, req SendRequest) (*SendResult, error) {
	if s.chatRepo == nil {
		return nil, errors.New("chat repository not set")
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, errors.New("message is empty")
	}

	userEntry := &models.ChatLogEntry{
		Username:  req.Username,
		Role:      models.RoleUser,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.chatRepo.Append(ctx, userEntry); err != nil {
		return nil, err
	}

	reply := s.reply(ctx, req.Message)

	assistantEntry := &models.ChatLogEntry{
		Username:  req.Username,
		Role:      models.RoleAssistant,
		Message:   reply,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.chatRepo.Append(ctx, assistantEntry); err != nil {
		return nil, err
	}

	return &SendResult{UserEntry: userEntry, AssistantEntry: assistantEntry}, nil
}

// reply asks Gemini when a client is configured and falls back to a canned
// response otherwise or on any generation failure.
func (s *ChatService) reply(ctx context.Context, message string) string {
	if s.gemini != nil {
		reply, err := s.generateReply(ctx, message)
		if err != nil {
			log.Printf("Warning: generation failed, using canned reply: %v", err)
		} else if reply != "" {
			return reply
		}
	}
	return cannedReplies[s.rng.Intn(len(cannedReplies))]
}

func (s *ChatService) generateReply(ctx context.Context, message string) (string, error) {
	model := s.gemini.GenerativeModel(chatModel)
	resp, err := model.GenerateContent(ctx, genai.Text(chatSystemPrompt+"\n\nUser question: "+message))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("model returned no candidates")
	}

	var reply strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			reply.WriteString(string(text))
		}
	}
	return strings.TrimSpace(reply.String()), nil
}

// TranscriptRequest identifies the transcript owner
type TranscriptRequest struct {
	Username string
}

// TranscriptResult carries the transcript, oldest first
type TranscriptResult struct {
	Entries []*models.ChatLogEntry
}

// Transcript lists a user's chat entries
func (s *ChatService) Transcript(ctx context.Context, req TranscriptRequest) (*TranscriptResult, error) {
	if s.chatRepo == nil {
		return nil, errors.New("chat repository not set")
	}

	entries, err := s.chatRepo.ListByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	return &TranscriptResult{Entries: entries}, nil
}
