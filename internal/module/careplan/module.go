package careplan

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for careplans.
type Module struct {
	handler *CareplanHandler
}

// NewModule creates the careplan module. Panics if h is nil.
func NewModule(h *CareplanHandler) *Module {
	if h == nil {
		panic("careplan.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers careplan API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/careplans", m.handler.AvailableCareplans)
	api.POST("/careplans/enrollments", m.handler.Enroll)
	api.GET("/careplans/patients/:userId/enrollments", m.handler.PatientEnrollments)
	api.DELETE("/careplans/enrollments/:id", m.handler.DeleteEnrollment)
	api.GET("/careplans/enrollments/:id/tasks", m.handler.Tasks)
	api.GET("/careplans/enrollments/:id/weekly-status", m.handler.WeeklyStatus)
	api.PUT("/careplans/tasks/:id/complete", m.handler.CompleteTask)
}
