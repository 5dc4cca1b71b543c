package doctor

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for doctor profiles.
type Module struct {
	handler *DoctorHandler
}

// NewModule creates the doctor module. Panics if h is nil.
func NewModule(h *DoctorHandler) *Module {
	if h == nil {
		panic("doctor.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers doctor API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/doctors", m.handler.Create)
	api.GET("/doctors/search", m.handler.Search)
	api.GET("/doctors/:userId", m.handler.Get)
	api.PUT("/doctors/:userId", m.handler.Update)
	api.DELETE("/doctors/:userId", m.handler.Delete)
}
