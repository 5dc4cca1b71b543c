package auth

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for authentication.
type Module struct {
	handler *AuthHandler
}

// NewModule creates the auth module. Panics if h is nil.
func NewModule(h *AuthHandler) *Module {
	if h == nil {
		panic("auth.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers auth API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	auth.POST("/login", m.handler.Login)
	auth.POST("/register", m.handler.Register)
}
