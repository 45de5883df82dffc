package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/staybook/backend/internal/container"
	handlers "github.com/staybook/backend/internal/interface/http"
	"github.com/staybook/backend/internal/interface/middleware"
	"github.com/staybook/backend/pkg/helpers"
)

// SessionModule wires the OTP login flow and profile routes.
// Public: POST /api/auth/otp/request, POST /api/auth/otp/verify, POST /api/refresh
// Protected: POST /api/logout, GET/PUT /api/profile, POST /api/profile/avatar

type SessionModule struct {
	Handler *handlers.SessionHandler
	JWT     *helpers.JWTManager
}

func NewSessionModule(h *handlers.SessionHandler, jwt *helpers.JWTManager) *SessionModule {
	return &SessionModule{Handler: h, JWT: jwt}
}

func (m *SessionModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits. Code requests are the
	// tightest: they are the spam vector.
	requestLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	verifyLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/auth/otp/request", requestLimiter, m.Handler.RequestCode)
	rg.POST("/auth/otp/verify", verifyLimiter, m.Handler.VerifyCode)
	rg.POST("/refresh", refreshLimiter, m.Handler.Refresh)

	// Protected
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/profile", m.Handler.GetProfile)
		auth.PUT("/profile", m.Handler.UpdateProfile)
		auth.POST("/profile/avatar", m.Handler.UploadAvatar)
	}
}
