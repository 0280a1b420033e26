package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"campusdocs/internal/http/middleware"
	"campusdocs/internal/model"
	"campusdocs/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.RequestIDOf(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// classify maps a service error to its HTTP status, code and safe message.
func classify(err error) (int, string, string) {
	var ve *model.ValidationError
	switch {
	case errors.As(err, &ve):
		return fiber.StatusBadRequest, "VALIDATION_ERROR", ve.Error()
	case errors.Is(err, service.ErrIDRequired):
		return fiber.StatusBadRequest, "INVALID_ID", "id is required"
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND", "document not found"
	case errors.Is(err, service.ErrRender):
		return fiber.StatusInternalServerError, "RENDER_FAILED", "failed to render document"
	case errors.Is(err, service.ErrStore):
		return fiber.StatusInternalServerError, "STORAGE_FAILED", "failed to store document"
	case errors.Is(err, service.ErrPersistence):
		return fiber.StatusInternalServerError, "PERSISTENCE_FAILED", "failed to record document"
	default:
		return fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"
	}
}

// writeServiceError writes err using the service error taxonomy.
func writeServiceError(c *fiber.Ctx, err error) error {
	status, code, msg := classify(err)
	return writeError(c, status, code, msg)
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
