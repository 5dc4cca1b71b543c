package patient

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for patient profiles.
type Module struct {
	handler *PatientHandler
}

// NewModule creates the patient module. Panics if h is nil.
func NewModule(h *PatientHandler) *Module {
	if h == nil {
		panic("patient.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers patient API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/patients", m.handler.Create)
	api.GET("/patients/search", m.handler.Search)
	api.GET("/patients/:userId", m.handler.Get)
	api.PUT("/patients/:userId", m.handler.Update)
	api.DELETE("/patients/:userId", m.handler.Delete)

	api.POST("/patients/:userId/app-registrations", m.handler.RegisterApp)
	api.GET("/patients/:userId/app-registrations", m.handler.AppRegistrations)
}
