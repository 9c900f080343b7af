package middleware

import (
	"errors"
	"net/http"

	"drh-client/internal/domain"
	"drh-client/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Status  int                    `json:"status"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type ValidationErrorResponse struct {
	Code    string                   `json:"code"`
	Message string                   `json:"message"`
	Status  int                      `json:"status"`
	Errors  []domain.ValidationError `json:"errors"`
}

// problem is what ErrorHandler answers for one error.
type problem struct {
	status int
	body   interface{}
}

func classify(err error) problem {
	var validationErrs domain.ValidationErrors
	if errors.As(err, &validationErrs) {
		return problem{http.StatusBadRequest, ValidationErrorResponse{
			Code:    string(domain.CodeValidation),
			Message: "Request validation failed",
			Status:  http.StatusBadRequest,
			Errors:  validationErrs,
		}}
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		status := mapDomainErrorToHTTPStatus(domainErr)
		return problem{status, ErrorResponse{
			Code:    string(domainErr.Code),
			Message: domainErr.Message,
			Status:  status,
			Details: domainErr.Context,
		}}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return problem{fiberErr.Code, ErrorResponse{
			Code:    "HTTP_ERROR",
			Message: fiberErr.Message,
			Status:  fiberErr.Code,
		}}
	}

	return problem{http.StatusInternalServerError, ErrorResponse{
		Code:    string(domain.CodeInternal),
		Message: "Internal server error",
		Status:  http.StatusInternalServerError,
	}}
}

// ErrorHandler renders errors returned by handlers. Server-side failures
// (5xx, including an unreachable DRH API) log at error level, rejected
// requests at warn.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		p := classify(err)

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", p.status),
			zap.Error(err),
		}
		if p.status >= http.StatusInternalServerError {
			logger.Get().Error("Request failed", fields...)
		} else {
			logger.Get().Warn("Request rejected", fields...)
		}
		return c.Status(p.status).JSON(p.body)
	}
}

func statusForError(err error) int {
	return classify(err).status
}

func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeInvalidInput, domain.CodeValidation, domain.CodeMissingField,
		domain.CodeInvalidFormat, domain.CodeOutOfRange:
		return http.StatusBadRequest
	case domain.CodeMalformedEntry, domain.CodeUnknownStatusCode:
		return http.StatusUnprocessableEntity
	case domain.CodeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
