package statistics

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for statistics.
type Module struct {
	handler *StatisticsHandler
}

// NewModule creates the statistics module. Panics if h is nil.
func NewModule(h *StatisticsHandler) *Module {
	if h == nil {
		panic("statistics.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers statistics API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.PUT("/statistics/app-downloads", m.handler.UpdateAppDownloads)
	api.GET("/statistics/app-downloads", m.handler.GetAppDownloads)
	api.GET("/statistics/users", m.handler.GetUserCounts)
	api.GET("/statistics/patients/:userId/biometrics", m.handler.GetBiometricsReport)
}
