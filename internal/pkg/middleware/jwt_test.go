package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	appctx "github.com/Kael08/JOB-PORTAL/internal/pkg/context"
	jwtpkg "github.com/Kael08/JOB-PORTAL/internal/pkg/jwt"
	"github.com/Kael08/JOB-PORTAL/internal/pkg/models"
	"github.com/Kael08/JOB-PORTAL/internal/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssuer(t *testing.T) *jwtpkg.Issuer {
	issuer, err := jwtpkg.NewIssuer(models.JWTConfig{
		Secret:     "middleware-test-secret",
		Expiration: 60,
		Issuer:     "job-portal-test",
	})
	require.NoError(t, err)
	return issuer
}

func TestJWTAuthMiddleware(t *testing.T) {
	issuer := newTestIssuer(t)

	name := "Anna"
	role := models.RoleEmployer
	account := &models.Account{
		ID:          uuid.NewString(),
		Phone:       "+79991234567",
		State:       models.AccountEstablished,
		DisplayName: &name,
		Role:        &role,
	}
	validToken, _, err := issuer.Issue(account)
	require.NoError(t, err)

	tests := []struct {
		name         string
		header       string
		expectStatus int
		expectKind   string
	}{
		{name: "missing header", header: "", expectStatus: http.StatusUnauthorized, expectKind: utils.KindUnauthenticated},
		{name: "wrong scheme", header: "Basic abc", expectStatus: http.StatusUnauthorized, expectKind: utils.KindUnauthenticated},
		{name: "empty bearer", header: "Bearer ", expectStatus: http.StatusUnauthorized, expectKind: utils.KindUnauthenticated},
		{name: "garbage token", header: "Bearer not-a-token", expectStatus: http.StatusUnauthorized, expectKind: utils.KindInvalidToken},
		{name: "valid token", header: "Bearer " + validToken, expectStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := JWTAuthMiddleware(issuer)(func(c echo.Context) error {
				id, ok := AccountIDFromContext(c)
				assert.True(t, ok)
				assert.Equal(t, account.ID, id)
				assert.Equal(t, models.RoleEmployer, c.Get(ContextKeyRole))
				assert.Equal(t, account.ID, appctx.GetAccountID(c.Request().Context()))
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))
			assert.Equal(t, tt.expectStatus, rec.Code)

			if tt.expectKind != "" {
				var body utils.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.expectKind, body.Error.Kind)
			}
		})
	}
}
