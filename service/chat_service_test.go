package service

import (
	"context"
	"math/rand"
	"testing"

	"github.com/Amit12200412/ai-legal-assistant/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatRepo struct {
	entries []*models.ChatLogEntry
	nextID  int64
}

func (r *fakeChatRepo) Append(_ context.Context, entry *models.ChatLogEntry) error {
	r.nextID++
	entry.ID = r.nextID
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeChatRepo) ListByUsername(_ context.Context, username string) ([]*models.ChatLogEntry, error) {
	var out []*models.ChatLogEntry
	for _, entry := range r.entries {
		if entry.Username == username {
			out = append(out, entry)
		}
	}
	return out, nil
}

func TestSendAppendsBothEntries(t *testing.T) {
	repo := &fakeChatRepo{}
	svc := NewChatService(
		ChatWithChatRepository(repo),
		ChatWithRandSource(rand.NewSource(7)),
	)

	result, err := svc.Send(context.Background(), SendRequest{
		Username: "alice",
		Message:  "can my landlord evict me without notice?",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoleUser, result.UserEntry.Role)
	assert.Equal(t, "can my landlord evict me without notice?", result.UserEntry.Message)
	assert.Equal(t, models.RoleAssistant, result.AssistantEntry.Role)
	assert.NotEmpty(t, result.AssistantEntry.Message)

	require.Len(t, repo.entries, 2)
	assert.Equal(t, result.UserEntry, repo.entries[0])
	assert.Equal(t, result.AssistantEntry, repo.entries[1])
}

func TestSendWithoutClientUsesCannedReply(t *testing.T) {
	svc := NewChatService(
		ChatWithChatRepository(&fakeChatRepo{}),
		ChatWithRandSource(rand.NewSource(7)),
	)

	result, err := svc.Send(context.Background(), SendRequest{Username: "alice", Message: "hello"})
	require.NoError(t, err)
	assert.Contains(t, cannedReplies, result.AssistantEntry.Message)
}

func TestSendRejectsEmptyMessage(t *testing.T) {
	svc := NewChatService(
		ChatWithChatRepository(&fakeChatRepo{}),
		ChatWithRandSource(rand.NewSource(1)),
	)

	_, err := svc.Send(context.Background(), SendRequest{Username: "alice", Message: "   "})
	assert.Error(t, err)
}

func TestTranscriptScopedToOwner(t *testing.T) {
	repo := &fakeChatRepo{}
	svc := NewChatService(
		ChatWithChatRepository(repo),
		ChatWithRandSource(rand.NewSource(1)),
	)
	ctx := context.Background()

	_, err := svc.Send(ctx, SendRequest{Username: "alice", Message: "first question"})
	require.NoError(t, err)
	_, err = svc.Send(ctx, SendRequest{Username: "bob", Message: "unrelated"})
	require.NoError(t, err)

	transcript, err := svc.Transcript(ctx, TranscriptRequest{Username: "alice"})
	require.NoError(t, err)
	require.Len(t, transcript.Entries, 2)
	assert.Equal(t, models.RoleUser, transcript.Entries[0].Role)
	assert.Equal(t, "first question", transcript.Entries[0].Message)
	assert.Equal(t, models.RoleAssistant, transcript.Entries[1].Role)
}
