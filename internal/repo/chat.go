package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shahparacha/timeprint-gpt/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatSessionRepo struct {
	db *gorm.DB
}

// ChatSessionRepoInterface is the session store: durable keyed storage of
// whole chat sessions. "Session does not exist" is an expected condition and
// is reported as (nil, nil), not as an error.
type ChatSessionRepoInterface interface {
	Create(ctx context.Context, userID string) (*models.ChatSession, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ChatSession, error)
	ListByUser(ctx context.Context, userID string) ([]models.ChatSession, error)
	Update(ctx context.Context, id uuid.UUID, patch SessionPatch) error
	DeleteEmpty(ctx context.Context, userID string) (int, error)
}

// SessionPatch replaces the title and/or the whole message blob. Nil fields
// are left untouched.
type SessionPatch struct {
	Title    *string
	Messages []models.Message
}

func NewChatSessionRepository(db *gorm.DB) ChatSessionRepoInterface {
	return &ChatSessionRepo{db: db}
}

func (r *ChatSessionRepo) Create(ctx context.Context, userID string) (*models.ChatSession, error) {
	now := time.Now()
	session := &models.ChatSession{
		UUID:      uuid.New(),
		Title:     models.DefaultSessionTitle,
		UserID:    userID,
		OrgID:     "default",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := session.SetMessages(nil); err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

func (r *ChatSessionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.ChatSession, error) {
	var session models.ChatSession
	err := r.db.WithContext(ctx).First(&session, "uuid = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *ChatSessionRepo) ListByUser(ctx context.Context, userID string) ([]models.ChatSession, error) {
	var sessions []models.ChatSession
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at desc").
		Find(&sessions).Error
	return sessions, err
}

func (r *ChatSessionRepo) Update(ctx context.Context, id uuid.UUID, patch SessionPatch) error {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Messages != nil {
		blob := models.ChatSession{}
		if err := blob.SetMessages(patch.Messages); err != nil {
			return err
		}
		updates["messages"] = blob.Messages
	}
	return r.db.WithContext(ctx).
		Model(&models.ChatSession{}).
		Where("uuid = ?", id).
		Updates(updates).Error
}

// DeleteEmpty removes every session of the user whose message blob decodes
// to zero messages. Sessions of other users are never touched.
func (r *ChatSessionRepo) DeleteEmpty(ctx context.Context, userID string) (int, error) {
	sessions, err := r.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	emptyIDs := make([]uuid.UUID, 0)
	for i := range sessions {
		messages, err := sessions[i].DecodeMessages()
		if err != nil {
			// an unreadable blob is not an empty session, leave it alone
			continue
		}
		if len(messages) == 0 {
			emptyIDs = append(emptyIDs, sessions[i].UUID)
		}
	}

	if len(emptyIDs) == 0 {
		return 0, nil
	}
	err = r.db.WithContext(ctx).
		Where("uuid IN ? AND user_id = ?", emptyIDs, userID).
		Delete(&models.ChatSession{}).Error
	if err != nil {
		return 0, err
	}
	return len(emptyIDs), nil
}

// FilterSessions is the in-process history search: a case-insensitive
// substring match over titles and message content. An empty query matches
// everything.
func FilterSessions(sessions []models.ChatSession, query string) []models.ChatSession {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return sessions
	}

	matched := make([]models.ChatSession, 0, len(sessions))
	for i := range sessions {
		if strings.Contains(strings.ToLower(sessions[i].Title), query) {
			matched = append(matched, sessions[i])
			continue
		}
		messages, err := sessions[i].DecodeMessages()
		if err != nil {
			continue
		}
		for _, msg := range messages {
			if strings.Contains(strings.ToLower(msg.Content), query) {
				matched = append(matched, sessions[i])
				break
			}
		}
	}
	return matched
}
