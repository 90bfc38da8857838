package middleware

import (
	"strings"

	appctx "github.com/Kael08/JOB-PORTAL/internal/pkg/context"
	jwtpkg "github.com/Kael08/JOB-PORTAL/internal/pkg/jwt"
	"github.com/Kael08/JOB-PORTAL/internal/utils"
	"github.com/labstack/echo/v4"
)

// Context keys set by JWTAuthMiddleware
const (
	ContextKeyAccountID = "account_id"
	ContextKeyRole      = "role"
	ContextKeyClaims    = "claims"
)

// TokenParser verifies a bearer token and returns its claims
type TokenParser interface {
	Parse(tokenString string) (*jwtpkg.Claims, error)
}

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(parser TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, utils.KindUnauthenticated, "Authorization header is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
				return utils.UnauthorizedResponse(c, utils.KindUnauthenticated, "Invalid authorization format")
			}

			claims, err := parser.Parse(strings.TrimSpace(parts[1]))
			if err != nil {
				return utils.UnauthorizedResponse(c, utils.KindInvalidToken, "Invalid or expired token")
			}

			c.Set(ContextKeyAccountID, claims.AccountID())
			c.Set(ContextKeyRole, claims.Role)
			c.Set(ContextKeyClaims, claims)
			c.SetRequest(c.Request().WithContext(appctx.WithAccountID(c.Request().Context(), claims.AccountID())))

			return next(c)
		}
	}
}

// AccountIDFromContext returns the authenticated account id, if any
func AccountIDFromContext(c echo.Context) (string, bool) {
	id, ok := c.Get(ContextKeyAccountID).(string)
	return id, ok && id != ""
}
