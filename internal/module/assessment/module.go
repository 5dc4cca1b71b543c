package assessment

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for assessment templates.
type Module struct {
	handler *AssessmentTemplateHandler
}

// NewModule creates the assessment module. Panics if h is nil.
func NewModule(h *AssessmentTemplateHandler) *Module {
	if h == nil {
		panic("assessment.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers assessment template API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/clinical/assessment-templates", m.handler.Create)
	api.GET("/clinical/assessment-templates/search", m.handler.Search)
	api.GET("/clinical/assessment-templates/:id", m.handler.Get)
	api.PUT("/clinical/assessment-templates/:id", m.handler.Update)
	api.DELETE("/clinical/assessment-templates/:id", m.handler.Delete)
}
