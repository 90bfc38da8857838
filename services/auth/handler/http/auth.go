package http

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Kael08/JOB-PORTAL/internal/pkg/errors"
	"github.com/Kael08/JOB-PORTAL/internal/pkg/logger"
	"github.com/Kael08/JOB-PORTAL/internal/pkg/middleware"
	"github.com/Kael08/JOB-PORTAL/internal/pkg/models"
	"github.com/Kael08/JOB-PORTAL/internal/utils"
	"github.com/Kael08/JOB-PORTAL/services/auth"
)

const (
	minCodeLength = 4
	minNameLength = 2
)

// AuthHandler handles HTTP requests for the login flow
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// SendCode handles POST /auth/send-code
func (h *AuthHandler) SendCode(c echo.Context) error {
	var request models.SendCodeRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, utils.KindValidation, "Invalid request payload")
	}
	if strings.TrimSpace(request.Phone) == "" {
		return utils.BadRequestResponse(c, utils.KindValidation, "Phone is required")
	}

	response, err := h.authUC.RequestCode(c.Request().Context(), request.Phone)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, response)
}

// VerifyCode handles POST /auth/verify-code
func (h *AuthHandler) VerifyCode(c echo.Context) error {
	var request models.VerifyCodeRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, utils.KindValidation, "Invalid request payload")
	}
	if msg := validateVerifyRequest(&request); msg != "" {
		return utils.BadRequestResponse(c, utils.KindValidation, msg)
	}

	response, err := h.authUC.VerifyCode(c.Request().Context(), &request)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, response)
}

// GetProfile handles GET /auth/profile
func (h *AuthHandler) GetProfile(c echo.Context) error {
	accountID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, utils.KindUnauthenticated, "Authentication required")
	}

	profile, err := h.authUC.GetProfile(c.Request().Context(), accountID)
	if err != nil {
		// a valid token for an account that no longer exists
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return utils.UnauthorizedResponse(c, utils.KindUnauthenticated, "Account no longer exists")
		}
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, profile)
}

// ChangeRole handles PATCH /auth/change-role/:newRole
func (h *AuthHandler) ChangeRole(c echo.Context) error {
	accountID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, utils.KindUnauthenticated, "Authentication required")
	}

	role, valid := models.ParseRole(c.Param("newRole"))
	if !valid {
		return h.errorResponse(c, apperrors.ErrInvalidRole)
	}

	response, err := h.authUC.ChangeRole(c.Request().Context(), accountID, role)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, response)
}

func validateVerifyRequest(request *models.VerifyCodeRequest) string {
	if strings.TrimSpace(request.Phone) == "" {
		return "Phone is required"
	}
	if utf8.RuneCountInString(strings.TrimSpace(request.Code)) < minCodeLength {
		return "Code must be at least 4 characters"
	}
	if request.Name != "" && utf8.RuneCountInString(strings.TrimSpace(request.Name)) < minNameLength {
		return "Name must be at least 2 characters"
	}
	if request.Role != "" && !request.Role.Valid() {
		return apperrors.ErrInvalidRole.Error()
	}
	return ""
}

// errorResponse maps domain errors to status codes and error kinds.
// Anything unrecognized is logged and reported as a generic 500.
func (h *AuthHandler) errorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrInvalidPhoneFormat):
		return utils.BadRequestResponse(c, utils.KindInvalidPhoneFormat, apperrors.ErrInvalidPhoneFormat.Error())
	case errors.Is(err, apperrors.ErrMissingRegistrationFields):
		return utils.BadRequestResponse(c, utils.KindMissingRegistrationFields, apperrors.ErrMissingRegistrationFields.Error())
	case errors.Is(err, apperrors.ErrInvalidRole):
		return utils.BadRequestResponse(c, utils.KindInvalidRole, apperrors.ErrInvalidRole.Error())
	case errors.Is(err, apperrors.ErrInvalidOrExpiredCode):
		return utils.UnauthorizedResponse(c, utils.KindInvalidOrExpiredCode, apperrors.ErrInvalidOrExpiredCode.Error())
	case errors.Is(err, apperrors.ErrInvalidToken):
		return utils.UnauthorizedResponse(c, utils.KindInvalidToken, apperrors.ErrInvalidToken.Error())
	case errors.Is(err, apperrors.ErrUnauthenticated):
		return utils.UnauthorizedResponse(c, utils.KindUnauthenticated, apperrors.ErrUnauthenticated.Error())
	case errors.Is(err, apperrors.ErrAccountNotFound):
		return utils.NotFoundResponse(c, apperrors.ErrAccountNotFound.Error())
	case errors.Is(err, apperrors.ErrRateLimited):
		return utils.TooManyRequestsResponse(c, apperrors.ErrRateLimited.Error())
	case errors.Is(err, apperrors.ErrDispatchFailed):
		return utils.BadGatewayResponse(c, utils.KindDispatchFailed, apperrors.ErrDispatchFailed.Error())
	}

	logger.Error("Auth request failed",
		logger.String("method", c.Request().Method),
		logger.String("path", c.Path()),
		logger.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		logger.Err(err))
	return utils.InternalServerErrorResponse(c, "")
}
