package repo

import (
	"testing"

	"github.com/shahparacha/timeprint-gpt/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSession(t *testing.T, title string, contents ...string) models.ChatSession {
	t.Helper()
	session := models.ChatSession{UUID: uuid.New(), Title: title}
	messages := make([]models.Message, 0, len(contents))
	for i, content := range contents {
		role := models.RoleUser
		if i%2 == 1 {
			role = models.RoleAssistant
		}
		messages = append(messages, models.NewMessage(role, content))
	}
	require.NoError(t, session.SetMessages(messages))
	return session
}

func TestFilterSessionsEmptyQueryReturnsAll(t *testing.T) {
	sessions := []models.ChatSession{
		makeSession(t, "Foundations"),
		makeSession(t, "Permits"),
	}
	assert.Len(t, FilterSessions(sessions, ""), 2)
	assert.Len(t, FilterSessions(sessions, "   "), 2)
}

func TestFilterSessionsMatchesTitle(t *testing.T) {
	sessions := []models.ChatSession{
		makeSession(t, "Foundation questions"),
		makeSession(t, "Permit checklist"),
	}
	got := FilterSessions(sessions, "foundation")
	require.Len(t, got, 1)
	assert.Equal(t, "Foundation questions", got[0].Title)
}

func TestFilterSessionsMatchesMessageContent(t *testing.T) {
	sessions := []models.ChatSession{
		makeSession(t, "New Chat", "what is the rebar spacing?", "200mm on center"),
		makeSession(t, "New Chat", "when is the pour scheduled?"),
	}
	got := FilterSessions(sessions, "REBAR")
	require.Len(t, got, 1)
	assert.Equal(t, sessions[0].UUID, got[0].UUID)
}

func TestFilterSessionsNoMatch(t *testing.T) {
	sessions := []models.ChatSession{
		makeSession(t, "Permits", "inspection on friday"),
	}
	assert.Empty(t, FilterSessions(sessions, "crane"))
}
