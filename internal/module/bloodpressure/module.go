package bloodpressure

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for blood pressure records.
type Module struct {
	handler *BloodPressureHandler
}

// NewModule creates the blood pressure module. Panics if h is nil.
func NewModule(h *BloodPressureHandler) *Module {
	if h == nil {
		panic("bloodpressure.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers blood pressure API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/clinical/blood-pressures", m.handler.Create)
	api.GET("/clinical/blood-pressures/search", m.handler.Search)
	api.GET("/clinical/blood-pressures/:id", m.handler.Get)
	api.PUT("/clinical/blood-pressures/:id", m.handler.Update)
	api.DELETE("/clinical/blood-pressures/:id", m.handler.Delete)
}
