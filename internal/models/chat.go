package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// DefaultSessionTitle is the title of a freshly created session. The first
// user message overwrites it.
const DefaultSessionTitle = "New Chat"

// TitleMaxLen caps the auto-generated session title taken from the first
// user message.
const TitleMaxLen = 50

// Message is one turn entry inside a chat session. Messages are immutable
// once appended; only whole-session deletion exists.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// ChatSession stores its ordered message sequence as a single JSON blob.
// Each read-modify-write cycle rewrites the whole sequence.
type ChatSession struct {
	UUID      uuid.UUID      `gorm:"type:uuid;primaryKey" json:"uuid"`
	Title     string         `gorm:"not null" json:"title"`
	Messages  datatypes.JSON `gorm:"not null" json:"messages"`
	UserID    string         `gorm:"not null;index" json:"user_id"`
	OrgID     string         `json:"org_id"` // legacy tenant scoping, kept for compatibility
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}

// DecodeMessages deserializes the stored blob. A null or empty blob decodes
// to an empty slice.
func (s *ChatSession) DecodeMessages() ([]Message, error) {
	if len(s.Messages) == 0 {
		return []Message{}, nil
	}
	var messages []Message
	if err := json.Unmarshal(s.Messages, &messages); err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []Message{}
	}
	return messages, nil
}

// SetMessages replaces the stored blob with the given sequence.
func (s *ChatSession) SetMessages(messages []Message) error {
	if messages == nil {
		messages = []Message{}
	}
	raw, err := json.Marshal(messages)
	if err != nil {
		return err
	}
	s.Messages = datatypes.JSON(raw)
	return nil
}

// NewMessage builds an immutable message with a fresh id and timestamp.
func NewMessage(role Role, content string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

// DocumentSearchResult is one ranked snippet returned by the retrieval
// layer. It is never persisted; it only lives long enough to be folded into
// a prompt.
type DocumentSearchResult struct {
	Content   string  `json:"content"`
	Title     string  `json:"title"`
	URL       string  `json:"url"`
	Certainty float64 `json:"certainty"`
}
