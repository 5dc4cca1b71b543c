package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/pkg"
)

// ChatHandler handles REST API requests for conversations and messages.
type ChatHandler struct {
	svc domain.ChatService
}

// NewHandler creates a ChatHandler with the given service.
func NewHandler(svc domain.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// StartConversation handles POST /api/v1/chats/conversations.
func (h *ChatHandler) StartConversation(c *gin.Context) {
	var req StartConversationRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	conversation, err := h.svc.StartConversation(c.Request.Context(), domain.ConversationDomainModel{
		InitiatingUserID: req.InitiatingUserID,
		OtherUserID:      req.OtherUserID,
		Topic:            req.Topic,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusCreated, "Conversation created successfully!",
		gin.H{"Conversation": conversation})
}

// GetConversation handles GET /api/v1/chats/conversations/:id.
func (h *ChatHandler) GetConversation(c *gin.Context) {
	id, err := pkg.ParamUUID(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	conversation, err := h.svc.GetConversationByID(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Conversation retrieved successfully!",
		gin.H{"Conversation": conversation})
}

// SearchConversations handles GET /api/v1/chats/conversations/search.
func (h *ChatHandler) SearchConversations(c *gin.Context) {
	filters := domain.ConversationSearchFilters{
		BaseSearchFilters: pkg.ParseBaseFilters(c),
		UserID:            pkg.QueryString(c, "userId"),
		Topic:             pkg.QueryString(c, "topic"),
	}

	results, err := h.svc.SearchUserConversations(c.Request.Context(), filters)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK,
		pkg.SearchMessage(results.RetrievedCount, "conversations"),
		gin.H{"Conversations": results})
}

// UpdateConversation handles PUT /api/v1/chats/conversations/:id.
func (h *ChatHandler) UpdateConversation(c *gin.Context) {
	id, err := pkg.ParamUUID(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateConversationRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	conversation, err := h.svc.UpdateConversation(c.Request.Context(), id, domain.ConversationDomainModel{
		Topic: req.Topic,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Conversation updated successfully!",
		gin.H{"Conversation": conversation})
}

// DeleteConversation handles DELETE /api/v1/chats/conversations/:id.
func (h *ChatHandler) DeleteConversation(c *gin.Context) {
	id, err := pkg.ParamUUID(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteConversation(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Conversation deleted successfully!", gin.H{"Deleted": true})
}

// SendMessage handles POST /api/v1/chats/conversations/:id/messages.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	conversationID, err := pkg.ParamUUID(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req SendMessageRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	message, err := h.svc.SendMessage(c.Request.Context(), domain.ChatMessageDomainModel{
		ConversationID: conversationID,
		SenderUserID:   req.SenderUserID,
		Message:        &req.Message,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusCreated, "Chat message created successfully!",
		gin.H{"ChatMessage": message})
}

// GetConversationMessages handles GET /api/v1/chats/conversations/:id/messages.
func (h *ChatHandler) GetConversationMessages(c *gin.Context) {
	conversationID, err := pkg.ParamUUID(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	messages, err := h.svc.GetConversationMessages(c.Request.Context(), conversationID)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK,
		pkg.SearchMessage(len(messages), "chat messages"),
		gin.H{"ChatMessages": messages})
}

// GetMessage handles GET /api/v1/chats/messages/:id.
func (h *ChatHandler) GetMessage(c *gin.Context) {
	id, err := pkg.ParamUUID(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	message, err := h.svc.GetMessage(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Chat message retrieved successfully!",
		gin.H{"ChatMessage": message})
}

// UpdateMessage handles PUT /api/v1/chats/messages/:id.
func (h *ChatHandler) UpdateMessage(c *gin.Context) {
	id, err := pkg.ParamUUID(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateMessageRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	message, err := h.svc.UpdateMessage(c.Request.Context(), id, domain.ChatMessageDomainModel{
		Message: &req.Message,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Chat message updated successfully!",
		gin.H{"ChatMessage": message})
}

// DeleteMessage handles DELETE /api/v1/chats/messages/:id.
func (h *ChatHandler) DeleteMessage(c *gin.Context) {
	id, err := pkg.ParamUUID(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteMessage(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Chat message deleted successfully!", gin.H{"Deleted": true})
}
