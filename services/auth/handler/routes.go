package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Kael08/JOB-PORTAL/internal/pkg/middleware"
	"github.com/Kael08/JOB-PORTAL/services/auth"
	authhttp "github.com/Kael08/JOB-PORTAL/services/auth/handler/http"
)

// Handler mounts the auth HTTP API
type Handler struct {
	authHandler *authhttp.AuthHandler
	tokens      middleware.TokenParser
	limiters    []echo.MiddlewareFunc
}

// NewHandler creates the auth route set. Limiters apply to every /auth route.
func NewHandler(authUC auth.AuthUC, tokens middleware.TokenParser, limiters ...echo.MiddlewareFunc) *Handler {
	return &Handler{
		authHandler: authhttp.NewAuthHandler(authUC),
		tokens:      tokens,
		limiters:    limiters,
	}
}

// RegisterRoutes registers the auth API routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/auth", h.limiters...)

	// Public routes
	group.POST("/send-code", h.authHandler.SendCode)
	group.POST("/verify-code", h.authHandler.VerifyCode)

	// Bearer token routes
	requireToken := middleware.JWTAuthMiddleware(h.tokens)
	group.GET("/profile", h.authHandler.GetProfile, requireToken)
	group.PATCH("/change-role/:newRole", h.authHandler.ChangeRole, requireToken)
}
