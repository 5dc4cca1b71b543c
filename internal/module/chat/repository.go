package chat

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/pkg"
)

// Allowed fields for ordering conversation search results.
var allowedOrderFields = []string{"id", "topic", "last_message_at", "created_at", "updated_at"}

// Message previews stored on the conversation are truncated to this length.
const previewLength = 255

// chatRepository implements domain.ChatRepository using GORM.
type chatRepository struct {
	db *gorm.DB
}

// NewRepository creates a ChatRepository backed by the given database.
func NewRepository(db *gorm.DB) domain.ChatRepository {
	return &chatRepository{db: db}
}

// CreateConversation inserts a new conversation.
func (r *chatRepository) CreateConversation(ctx context.Context, model domain.ConversationDomainModel) (*domain.Conversation, error) {
	conversation := domain.Conversation{
		InitiatingUserID: model.InitiatingUserID,
		OtherUserID:      model.OtherUserID,
	}
	if model.Topic != nil {
		conversation.Topic = *model.Topic
	}

	if err := r.db.WithContext(ctx).Create(&conversation).Error; err != nil {
		return nil, mapError(err)
	}
	return &conversation, nil
}

// GetConversationByID retrieves a conversation by id.
func (r *chatRepository) GetConversationByID(ctx context.Context, id string) (*domain.Conversation, error) {
	var conversation domain.Conversation
	if err := r.db.WithContext(ctx).First(&conversation, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return &conversation, nil
}

// SearchConversations returns conversations matching the filters, paginated.
// The UserID filter matches conversations the user participates in on either
// side; Topic matches by substring.
func (r *chatRepository) SearchConversations(ctx context.Context, filters domain.ConversationSearchFilters) (*domain.SearchResults[domain.Conversation], error) {
	base := r.db.WithContext(ctx).Model(&domain.Conversation{}).Scopes(
		participant(filters.UserID),
		pkg.Contains("topic", filters.Topic),
		pkg.Range("created_at", filters.CreatedDateFrom, filters.CreatedDateTo),
	)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, mapError(err)
	}

	column, direction := pkg.ResolveOrder(filters.BaseSearchFilters, allowedOrderFields, "created_at")

	var conversations []domain.Conversation
	if err := base.Scopes(
		pkg.Order(column, direction),
		pkg.Paginate(filters.BaseSearchFilters),
	).Find(&conversations).Error; err != nil {
		return nil, mapError(err)
	}

	return pkg.NewSearchResults(conversations, total, filters.BaseSearchFilters, column), nil
}

// participant matches conversations where the user is on either side.
func participant(userID *string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if userID == nil || *userID == "" {
			return db
		}
		return db.Where("initiating_user_id = ? OR other_user_id = ?", *userID, *userID)
	}
}

// UpdateConversation applies the provided fields to a conversation. Only the
// topic is mutable; participants are fixed at creation.
func (r *chatRepository) UpdateConversation(ctx context.Context, id string, model domain.ConversationDomainModel) (*domain.Conversation, error) {
	conversation, err := r.GetConversationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if model.Topic == nil {
		return conversation, nil
	}

	if err := r.db.WithContext(ctx).Model(conversation).
		Update("topic", *model.Topic).Error; err != nil {
		return nil, mapError(err)
	}
	return conversation, nil
}

// DeleteConversation removes a conversation and all its messages.
func (r *chatRepository) DeleteConversation(ctx context.Context, id string) error {
	return pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		result := tx.Delete(&domain.Conversation{}, "id = ?", id)
		if result.Error != nil {
			return mapError(result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		if err := tx.Delete(&domain.ChatMessage{}, "conversation_id = ?", id).Error; err != nil {
			return mapError(err)
		}
		return nil
	})
}

// CreateMessage inserts a message and stamps the owning conversation's last
// message metadata in the same transaction.
func (r *chatRepository) CreateMessage(ctx context.Context, model domain.ChatMessageDomainModel) (*domain.ChatMessage, error) {
	message := domain.ChatMessage{
		ConversationID: model.ConversationID,
		SenderUserID:   model.SenderUserID,
	}
	if model.Message != nil {
		message.Message = *model.Message
	}

	err := pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Create(&message).Error; err != nil {
			return mapError(err)
		}
		now := time.Now().UTC()
		return tx.Model(&domain.Conversation{}).
			Where("id = ?", model.ConversationID).
			Updates(map[string]any{
				"last_message_at":      now,
				"last_message_preview": preview(message.Message),
			}).Error
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &message, nil
}

// GetMessageByID retrieves a chat message by id.
func (r *chatRepository) GetMessageByID(ctx context.Context, id string) (*domain.ChatMessage, error) {
	var message domain.ChatMessage
	if err := r.db.WithContext(ctx).First(&message, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return &message, nil
}

// GetConversationMessages returns all messages of a conversation in send
// order.
func (r *chatRepository) GetConversationMessages(ctx context.Context, conversationID string) ([]domain.ChatMessage, error) {
	var messages []domain.ChatMessage
	if err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, mapError(err)
	}
	return messages, nil
}

// UpdateMessage replaces the message body.
func (r *chatRepository) UpdateMessage(ctx context.Context, id string, model domain.ChatMessageDomainModel) (*domain.ChatMessage, error) {
	message, err := r.GetMessageByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if model.Message == nil {
		return message, nil
	}

	if err := r.db.WithContext(ctx).Model(message).
		Update("message", *model.Message).Error; err != nil {
		return nil, mapError(err)
	}
	return message, nil
}

// DeleteMessage removes a chat message.
func (r *chatRepository) DeleteMessage(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.ChatMessage{}, "id = ?", id)
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func preview(message string) string {
	if len(message) <= previewLength {
		return message
	}
	return message[:previewLength]
}

// mapError converts GORM errors to domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}
