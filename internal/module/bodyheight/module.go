package bodyheight

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for body height records.
type Module struct {
	handler *BodyHeightHandler
}

// NewModule creates the body height module. Panics if h is nil.
func NewModule(h *BodyHeightHandler) *Module {
	if h == nil {
		panic("bodyheight.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers body height API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/clinical/body-heights", m.handler.Create)
	api.GET("/clinical/body-heights/search", m.handler.Search)
	api.GET("/clinical/body-heights/:id", m.handler.Get)
	api.PUT("/clinical/body-heights/:id", m.handler.Update)
	api.DELETE("/clinical/body-heights/:id", m.handler.Delete)
}
