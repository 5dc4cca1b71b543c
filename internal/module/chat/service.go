package chat

import (
	"context"
	"strings"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
)

// chatService implements domain.ChatService.
type chatService struct {
	repo domain.ChatRepository
}

// NewService creates a ChatService.
func NewService(repo domain.ChatRepository) domain.ChatService {
	return &chatService{repo: repo}
}

// StartConversation validates the participants and creates the conversation.
func (s *chatService) StartConversation(ctx context.Context, model domain.ConversationDomainModel) (*domain.Conversation, error) {
	if model.InitiatingUserID == "" || model.OtherUserID == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "both participants are required", nil)
	}
	if model.InitiatingUserID == model.OtherUserID {
		return nil, domain.NewAppError(domain.CodeValidation, "a conversation needs two distinct users", nil)
	}
	return s.repo.CreateConversation(ctx, model)
}

// GetConversationByID retrieves a conversation.
func (s *chatService) GetConversationByID(ctx context.Context, id string) (*domain.Conversation, error) {
	return s.repo.GetConversationByID(ctx, id)
}

// SearchUserConversations returns conversations matching the filters.
func (s *chatService) SearchUserConversations(ctx context.Context, filters domain.ConversationSearchFilters) (*domain.SearchResults[domain.Conversation], error) {
	return s.repo.SearchConversations(ctx, filters)
}

// UpdateConversation applies the provided fields to a conversation.
func (s *chatService) UpdateConversation(ctx context.Context, id string, model domain.ConversationDomainModel) (*domain.Conversation, error) {
	return s.repo.UpdateConversation(ctx, id, model)
}

// DeleteConversation removes a conversation and its messages.
func (s *chatService) DeleteConversation(ctx context.Context, id string) error {
	return s.repo.DeleteConversation(ctx, id)
}

// SendMessage validates the message and stores it. The sender must be one of
// the conversation's participants.
func (s *chatService) SendMessage(ctx context.Context, model domain.ChatMessageDomainModel) (*domain.ChatMessage, error) {
	if model.Message == nil || strings.TrimSpace(*model.Message) == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "message body is required", nil)
	}

	conversation, err := s.repo.GetConversationByID(ctx, model.ConversationID)
	if err != nil {
		return nil, err
	}
	if model.SenderUserID != conversation.InitiatingUserID && model.SenderUserID != conversation.OtherUserID {
		return nil, domain.NewAppError(domain.CodeValidation, "sender is not a participant of this conversation", nil)
	}

	return s.repo.CreateMessage(ctx, model)
}

// GetMessage retrieves a chat message.
func (s *chatService) GetMessage(ctx context.Context, id string) (*domain.ChatMessage, error) {
	return s.repo.GetMessageByID(ctx, id)
}

// GetConversationMessages returns a conversation's messages in send order.
func (s *chatService) GetConversationMessages(ctx context.Context, conversationID string) ([]domain.ChatMessage, error) {
	if _, err := s.repo.GetConversationByID(ctx, conversationID); err != nil {
		return nil, err
	}
	return s.repo.GetConversationMessages(ctx, conversationID)
}

// UpdateMessage replaces a message body. A blank body is rejected.
func (s *chatService) UpdateMessage(ctx context.Context, id string, model domain.ChatMessageDomainModel) (*domain.ChatMessage, error) {
	if model.Message != nil && strings.TrimSpace(*model.Message) == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "message body cannot be blank", nil)
	}
	return s.repo.UpdateMessage(ctx, id, model)
}

// DeleteMessage removes a chat message.
func (s *chatService) DeleteMessage(ctx context.Context, id string) error {
	return s.repo.DeleteMessage(ctx, id)
}
