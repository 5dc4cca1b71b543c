package domain

import (
	"context"
	"time"
)

// Conversation is a chat thread between two users.
type Conversation struct {
	BaseModel
	Topic             string     `gorm:"size:255" json:"Topic"`
	InitiatingUserID  string     `gorm:"size:36;index;not null" json:"InitiatingUserId"`
	OtherUserID       string     `gorm:"size:36;index;not null" json:"OtherUserId"`
	LastMessageAt     *time.Time `json:"LastMessageAt"`
	LastMessagePreview string    `gorm:"size:255" json:"LastMessagePreview"`
}

// ChatMessage is a single message within a conversation.
type ChatMessage struct {
	BaseModel
	ConversationID string `gorm:"size:36;index;not null" json:"ConversationId"`
	SenderUserID   string `gorm:"size:36;index;not null" json:"SenderUserId"`
	Message        string `gorm:"size:2048;not null" json:"Message"`
}

// ConversationDomainModel is the write-side shape for conversations.
type ConversationDomainModel struct {
	Topic            *string
	InitiatingUserID string
	OtherUserID      string
}

// ChatMessageDomainModel is the write-side shape for chat messages.
type ChatMessageDomainModel struct {
	ConversationID string
	SenderUserID   string
	Message        *string
}

// ConversationSearchFilters narrows a conversation search for a given user.
// Topic matches by substring.
type ConversationSearchFilters struct {
	BaseSearchFilters
	UserID *string
	Topic  *string
}

// ChatRepository defines the data access interface for conversations and
// their messages.
type ChatRepository interface {
	CreateConversation(ctx context.Context, model ConversationDomainModel) (*Conversation, error)
	GetConversationByID(ctx context.Context, id string) (*Conversation, error)
	SearchConversations(ctx context.Context, filters ConversationSearchFilters) (*SearchResults[Conversation], error)
	UpdateConversation(ctx context.Context, id string, model ConversationDomainModel) (*Conversation, error)
	DeleteConversation(ctx context.Context, id string) error

	CreateMessage(ctx context.Context, model ChatMessageDomainModel) (*ChatMessage, error)
	GetMessageByID(ctx context.Context, id string) (*ChatMessage, error)
	GetConversationMessages(ctx context.Context, conversationID string) ([]ChatMessage, error)
	UpdateMessage(ctx context.Context, id string, model ChatMessageDomainModel) (*ChatMessage, error)
	DeleteMessage(ctx context.Context, id string) error
}

// ChatService defines the business logic interface for chat.
type ChatService interface {
	StartConversation(ctx context.Context, model ConversationDomainModel) (*Conversation, error)
	GetConversationByID(ctx context.Context, id string) (*Conversation, error)
	SearchUserConversations(ctx context.Context, filters ConversationSearchFilters) (*SearchResults[Conversation], error)
	UpdateConversation(ctx context.Context, id string, model ConversationDomainModel) (*Conversation, error)
	DeleteConversation(ctx context.Context, id string) error

	SendMessage(ctx context.Context, model ChatMessageDomainModel) (*ChatMessage, error)
	GetMessage(ctx context.Context, id string) (*ChatMessage, error)
	GetConversationMessages(ctx context.Context, conversationID string) ([]ChatMessage, error)
	UpdateMessage(ctx context.Context, id string, model ChatMessageDomainModel) (*ChatMessage, error)
	DeleteMessage(ctx context.Context, id string) error
}
