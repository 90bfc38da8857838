package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Error kinds returned to clients. These strings are part of the API.
const (
	KindInvalidPhoneFormat        = "invalid_phone_format"
	KindDispatchFailed            = "dispatch_failed"
	KindInvalidOrExpiredCode      = "invalid_or_expired_code"
	KindMissingRegistrationFields = "missing_registration_fields"
	KindValidation                = "validation_error"
	KindUnauthenticated           = "unauthenticated"
	KindInvalidToken              = "invalid_token"
	KindNotFound                  = "not_found"
	KindInvalidRole               = "invalid_role"
	KindRateLimited               = "rate_limited"
	KindInternal                  = "internal_error"
)

// ErrorBody carries a machine-stable kind and a human-readable message
type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// SuccessResponse sends data as the response body
func SuccessResponse(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, data)
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, kind, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Error: ErrorBody{
			Kind:    kind,
			Message: message,
		},
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, kind, message string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, kind, message)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, kind, message string) error {
	if message == "" {
		message = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, kind, message)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, KindNotFound, message)
}

// TooManyRequestsResponse sends a 429 Too Many Requests response
func TooManyRequestsResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Rate limit exceeded"
	}
	return ErrorResponseHandler(c, http.StatusTooManyRequests, KindRateLimited, message)
}

// BadGatewayResponse sends a 502 Bad Gateway response
func BadGatewayResponse(c echo.Context, kind, message string) error {
	return ErrorResponseHandler(c, http.StatusBadGateway, kind, message)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, KindInternal, message)
}

// ServiceUnavailableResponse sends a 503 Service Unavailable response
func ServiceUnavailableResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Service unavailable"
	}
	return ErrorResponseHandler(c, http.StatusServiceUnavailable, "service_unavailable", message)
}
