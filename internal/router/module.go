package router

import "github.com/gin-gonic/gin"

// Module is a feature area (session, booking, catalog) that knows how to
// register its own routes.
type Module interface {
	Register(rg *gin.RouterGroup)
}
