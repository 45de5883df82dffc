package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/staybook/backend/internal/container"
	handlers "github.com/staybook/backend/internal/interface/http"
	"github.com/staybook/backend/internal/interface/middleware"
	"github.com/staybook/backend/pkg/helpers"
)

// BookingModule wires the reservation ledger routes. Every route requires an
// authenticated session; the ledger itself never checks.

type BookingModule struct {
	Handler *handlers.BookingHandler
	JWT     *helpers.JWTManager
}

func NewBookingModule(h *handlers.BookingHandler, jwt *helpers.JWTManager) *BookingModule {
	return &BookingModule{Handler: h, JWT: jwt}
}

func (m *BookingModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/bookings", m.Handler.Create)
		auth.GET("/bookings", m.Handler.List)
		auth.GET("/bookings/:id", m.Handler.Get)
		auth.DELETE("/bookings/:id", m.Handler.Cancel)
	}
}
