package app

import "github.com/gin-gonic/gin"

// Module is implemented by feature modules that register their routes on the
// versioned API group.
type Module interface {
	RegisterRoutes(api *gin.RouterGroup)
}
