package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/staybook/backend/internal/container"
	handlers "github.com/staybook/backend/internal/interface/http"
	"github.com/staybook/backend/internal/interface/middleware"
)

// CatalogModule wires the public hotel browsing and search routes.

type CatalogModule struct {
	Handler *handlers.CatalogHandler
}

func NewCatalogModule(h *handlers.CatalogHandler) *CatalogModule {
	return &CatalogModule{Handler: h}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)

	rg.GET("/hotels", rl, m.Handler.List)
	rg.GET("/hotels/search", rl, m.Handler.Search)
	rg.GET("/hotels/:id", rl, m.Handler.Get)
	rg.GET("/hotels/:id/rooms/:roomID", rl, m.Handler.GetRoom)
}
