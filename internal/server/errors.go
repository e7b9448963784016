package server

import (
	"errors"
	"strconv"

	"github.com/Mahafuj2040/mamar-bank/internal/service"
	"github.com/Mahafuj2040/mamar-bank/internal/validation"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

func writeError(c *fiber.Ctx, status int, title, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Code:    strconv.Itoa(status),
		Title:   title,
		Message: message,
	})
}

// handleError maps the service error taxonomy onto HTTP statuses. Storage
// details never reach the client.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	if v, ok := validation.AsViolation(err); ok {
		return writeError(c, fiber.StatusUnprocessableEntity, string(v.Code), v.Reason)
	}

	var (
		nf *service.NotFoundError
		fe *fiber.Error
	)
	switch {
	case errors.As(err, &nf):
		return writeError(c, fiber.StatusNotFound, "not_found", nf.Error())
	case errors.Is(err, service.ErrConcurrencyConflict):
		return writeError(c, fiber.StatusConflict, "conflict", "the account is busy, retry the request")
	case errors.As(err, &fe):
		return writeError(c, fe.Code, "request_error", fe.Message)
	}

	s.log.Error("request failed",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return writeError(c, fiber.StatusInternalServerError, "internal_error", "the request could not be completed")
}
