package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestMessagesRoundTrip(t *testing.T) {
	session := &ChatSession{}

	written := []Message{
		NewMessage(RoleUser, "What is the foundation depth?"),
		NewMessage(RoleAssistant, "The foundation depth is 3m."),
	}
	require.NoError(t, session.SetMessages(written))

	read, err := session.DecodeMessages()
	require.NoError(t, err)
	require.Len(t, read, 2)
	for i := range written {
		assert.Equal(t, written[i].Role, read[i].Role)
		assert.Equal(t, written[i].Content, read[i].Content)
		assert.Equal(t, written[i].ID, read[i].ID)
	}
}

func TestDecodeMessagesEmptyBlob(t *testing.T) {
	session := &ChatSession{}
	messages, err := session.DecodeMessages()
	require.NoError(t, err)
	assert.Empty(t, messages)

	// a stored "null" also decodes to an empty slice
	session.Messages = datatypes.JSON([]byte("null"))
	messages, err = session.DecodeMessages()
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}

func TestSetMessagesNil(t *testing.T) {
	session := &ChatSession{}
	require.NoError(t, session.SetMessages(nil))
	assert.Equal(t, "[]", string(session.Messages))
}

func TestNewMessage(t *testing.T) {
	before := time.Now()
	msg := NewMessage(RoleUser, "hello")
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, RoleUser, msg.Role)
	assert.Equal(t, "hello", msg.Content)
	assert.False(t, msg.CreatedAt.Before(before))
}
