package chat

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for chat.
type Module struct {
	handler *ChatHandler
}

// NewModule creates the chat module. Panics if h is nil.
func NewModule(h *ChatHandler) *Module {
	if h == nil {
		panic("chat.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers chat API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/chats/conversations", m.handler.StartConversation)
	api.GET("/chats/conversations/search", m.handler.SearchConversations)
	api.GET("/chats/conversations/:id", m.handler.GetConversation)
	api.PUT("/chats/conversations/:id", m.handler.UpdateConversation)
	api.DELETE("/chats/conversations/:id", m.handler.DeleteConversation)

	api.POST("/chats/conversations/:id/messages", m.handler.SendMessage)
	api.GET("/chats/conversations/:id/messages", m.handler.GetConversationMessages)

	api.GET("/chats/messages/:id", m.handler.GetMessage)
	api.PUT("/chats/messages/:id", m.handler.UpdateMessage)
	api.DELETE("/chats/messages/:id", m.handler.DeleteMessage)
}
