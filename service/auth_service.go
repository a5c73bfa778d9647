package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Amit12200412/ai-legal-assistant/models"
	"github.com/Amit12200412/ai-legal-assistant/repository"

	"golang.org/x/crypto/bcrypt"
)

// ErrAuthenticationFailed is returned for every failed login. Unknown
// username and wrong password produce the exact same error so responses
// cannot be used to enumerate accounts.
var ErrAuthenticationFailed = errors.New("invalid username or password")

// ErrInvalidCredentials is returned when signup input fails validation
var ErrInvalidCredentials = errors.New("username and password must not be empty")

// ErrUnsupportedLanguage is returned for a language outside en/hi/mr
var ErrUnsupportedLanguage = errors.New("unsupported language")

// AuthService handles account signup and login
type AuthService struct {
	userRepo repository.UserRepository
}

// AuthServiceOption is a functional option for AuthService
type AuthServiceOption func(*AuthService)

// AuthWithUserRepository sets the user repository
func AuthWithUserRepository(repo repository.UserRepository) AuthServiceOption {
	return func(s *AuthService) {
		s.userRepo = repo
	}
}

// NewAuthService creates a new auth service
func NewAuthService(opts ...AuthServiceOption) *AuthService {
	s := &AuthService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SignupRequest represents a signup attempt
type SignupRequest struct {
	Username string
	Password string
	Language models.Language
}

// SignupResult represents the created account
type SignupResult struct {
	Account *models.Account
}

// Signup creates a new account. Passwords are stored only as bcrypt digests;
// a taken username surfaces as repository.ErrDuplicateUsername.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*SignupResult, error) {
	if s.userRepo == nil {
		return nil, errors.New("user repository not set")
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	lang := req.Language
	if lang == "" {
		lang = models.LangEnglish
	}
	if !models.SupportedLanguage(lang) {
		return nil, ErrUnsupportedLanguage
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		Username:     username,
		PasswordHash: string(hash),
		Language:     lang,
	}

	if err := s.userRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return &SignupResult{Account: account}, nil
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Username string
	Password string
}

// LoginResult represents the authenticated account
type LoginResult struct {
	Account *models.Account
}

// Login authenticates a user. All failure paths collapse into
// ErrAuthenticationFailed.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if s.userRepo == nil {
		return nil, errors.New("user repository not set")
	}

	account, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAuthenticationFailed
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrAuthenticationFailed
	}

	return &LoginResult{Account: account}, nil
}

// SetLanguageRequest represents a language preference change
type SetLanguageRequest struct {
	Username string
	Language models.Language
}

// SetLanguage updates the account's preferred language
func (s *AuthService) SetLanguage(ctx context.Context, req SetLanguageRequest) error {
	if s.userRepo == nil {
		return errors.New("user repository not set")
	}

	if !models.SupportedLanguage(req.Language) {
		return ErrUnsupportedLanguage
	}

	return s.userRepo.UpdateLanguage(ctx, req.Username, req.Language)
}
