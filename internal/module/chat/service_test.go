package chat

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
)

func TestService_StartConversationRequiresDistinctUsers(t *testing.T) {
	svc := NewService(NewRepository(setupTestDB(t)))
	user := uuid.NewString()

	_, err := svc.StartConversation(context.Background(), domain.ConversationDomainModel{
		InitiatingUserID: user,
		OtherUserID:      user,
	})
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error for same user on both sides, got %v", err)
	}
}

func TestService_SendMessageRequiresParticipant(t *testing.T) {
	svc := NewService(NewRepository(setupTestDB(t)))

	conversation, err := svc.StartConversation(context.Background(), domain.ConversationDomainModel{
		InitiatingUserID: uuid.NewString(),
		OtherUserID:      uuid.NewString(),
	})
	if err != nil {
		t.Fatalf("StartConversation: %v", err)
	}

	_, err = svc.SendMessage(context.Background(), domain.ChatMessageDomainModel{
		ConversationID: conversation.ID,
		SenderUserID:   uuid.NewString(),
		Message:        str("hi"),
	})
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error for outside sender, got %v", err)
	}
}

func TestService_SendMessageRejectsBlankBody(t *testing.T) {
	svc := NewService(NewRepository(setupTestDB(t)))

	_, err := svc.SendMessage(context.Background(), domain.ChatMessageDomainModel{
		ConversationID: uuid.NewString(),
		SenderUserID:   uuid.NewString(),
		Message:        str("   "),
	})
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestService_SendMessageUnknownConversation(t *testing.T) {
	svc := NewService(NewRepository(setupTestDB(t)))

	_, err := svc.SendMessage(context.Background(), domain.ChatMessageDomainModel{
		ConversationID: uuid.NewString(),
		SenderUserID:   uuid.NewString(),
		Message:        str("hi"),
	})
	if !domain.IsNotFound(err) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestService_SendAndListMessages(t *testing.T) {
	svc := NewService(NewRepository(setupTestDB(t)))
	a, b := uuid.NewString(), uuid.NewString()

	conversation, err := svc.StartConversation(context.Background(), domain.ConversationDomainModel{
		InitiatingUserID: a,
		OtherUserID:      b,
		Topic:            str("Medication review"),
	})
	if err != nil {
		t.Fatalf("StartConversation: %v", err)
	}

	if _, err := svc.SendMessage(context.Background(), domain.ChatMessageDomainModel{
		ConversationID: conversation.ID,
		SenderUserID:   a,
		Message:        str("Did you take the morning dose?"),
	}); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if _, err := svc.SendMessage(context.Background(), domain.ChatMessageDomainModel{
		ConversationID: conversation.ID,
		SenderUserID:   b,
		Message:        str("Yes, right after breakfast."),
	}); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	messages, err := svc.GetConversationMessages(context.Background(), conversation.ID)
	if err != nil {
		t.Fatalf("GetConversationMessages: %v", err)
	}
	if len(messages) != 2 {
		t.Errorf("got %d messages, want 2", len(messages))
	}
}
