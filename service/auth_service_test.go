package service

import (
	"context"
	"testing"

	"github.com/Amit12200412/ai-legal-assistant/models"
	"github.com/Amit12200412/ai-legal-assistant/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	accounts map[string]*models.Account
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{accounts: make(map[string]*models.Account)}
}

func (r *fakeUserRepo) Create(_ context.Context, account *models.Account) error {
	if _, ok := r.accounts[account.Username]; ok {
		return repository.ErrDuplicateUsername
	}
	copied := *account
	r.accounts[account.Username] = &copied
	return nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.Account, error) {
	account, ok := r.accounts[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *account
	return &copied, nil
}

func (r *fakeUserRepo) UpdateLanguage(_ context.Context, username string, lang models.Language) error {
	account, ok := r.accounts[username]
	if !ok {
		return repository.ErrNotFound
	}
	account.Language = lang
	return nil
}

func TestSignupStoresBcryptDigest(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(AuthWithUserRepository(repo))

	result, err := svc.Signup(context.Background(), SignupRequest{
		Username: "alice",
		Password: "secret123",
		Language: models.LangHindi,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", result.Account.Username)
	assert.Equal(t, models.LangHindi, result.Account.Language)

	// Never the raw password
	assert.NotEqual(t, "secret123", result.Account.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(result.Account.PasswordHash), []byte("secret123")))
}

func TestSignupDefaultsToEnglish(t *testing.T) {
	svc := NewAuthService(AuthWithUserRepository(newFakeUserRepo()))

	result, err := svc.Signup(context.Background(), SignupRequest{Username: "bob", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, models.LangEnglish, result.Account.Language)
}

func TestSignupValidation(t *testing.T) {
	svc := NewAuthService(AuthWithUserRepository(newFakeUserRepo()))
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupRequest{Username: "", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Signup(ctx, SignupRequest{Username: "   ", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Signup(ctx, SignupRequest{Username: "alice", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Signup(ctx, SignupRequest{Username: "alice", Password: "pw", Language: "fr"})
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestSignupDuplicateUsername(t *testing.T) {
	svc := NewAuthService(AuthWithUserRepository(newFakeUserRepo()))
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, SignupRequest{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, repository.ErrDuplicateUsername)
}

func TestLoginSuccess(t *testing.T) {
	svc := NewAuthService(AuthWithUserRepository(newFakeUserRepo()))
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	result, err := svc.Login(ctx, LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "alice", result.Account.Username)
}

func TestLoginFailureIsUniform(t *testing.T) {
	svc := NewAuthService(AuthWithUserRepository(newFakeUserRepo()))
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	// Wrong password and unknown username must be indistinguishable
	_, wrongPw := svc.Login(ctx, LoginRequest{Username: "alice", Password: "nope"})
	_, noUser := svc.Login(ctx, LoginRequest{Username: "mallory", Password: "nope"})

	assert.ErrorIs(t, wrongPw, ErrAuthenticationFailed)
	assert.ErrorIs(t, noUser, ErrAuthenticationFailed)
	assert.Equal(t, wrongPw.Error(), noUser.Error())
}

func TestSetLanguage(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(AuthWithUserRepository(repo))
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, svc.SetLanguage(ctx, SetLanguageRequest{Username: "alice", Language: models.LangMarathi}))

	account, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.LangMarathi, account.Language)

	assert.ErrorIs(t, svc.SetLanguage(ctx, SetLanguageRequest{Username: "alice", Language: "de"}), ErrUnsupportedLanguage)
	assert.ErrorIs(t, svc.SetLanguage(ctx, SetLanguageRequest{Username: "nobody", Language: models.LangHindi}), repository.ErrNotFound)
}
