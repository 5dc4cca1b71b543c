package labrecord

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for lab records.
type Module struct {
	handler *LabRecordHandler
}

// NewModule creates the lab record module. Panics if h is nil.
func NewModule(h *LabRecordHandler) *Module {
	if h == nil {
		panic("labrecord.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers lab record API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/clinical/lab-records", m.handler.Create)
	api.GET("/clinical/lab-records/search", m.handler.Search)
	api.GET("/clinical/lab-records/:id", m.handler.Get)
	api.PUT("/clinical/lab-records/:id", m.handler.Update)
	api.DELETE("/clinical/lab-records/:id", m.handler.Delete)
}
