package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/ambdroid/PluralKit/internal/entities"
	api "github.com/ambdroid/PluralKit/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrAuthRequired):
		status = http.StatusUnauthorized
		code = api.UNAUTHORIZED
		msg = "authentication required to use @me"
	case errors.Is(err, entities.ErrInvalidToken):
		status = http.StatusUnauthorized
		code = api.UNAUTHORIZED
		msg = "invalid token"
	case errors.Is(err, entities.ErrSystemNotFound):
		status = http.StatusNotFound
		code = api.SYSTEMNOTFOUND
		msg = "system not found"
	case errors.Is(err, entities.ErrMemberNotFound):
		status = http.StatusNotFound
		code = api.MEMBERNOTFOUND
		msg = "member not found"
	case errors.Is(err, entities.ErrGroupNotFound):
		status = http.StatusNotFound
		code = api.GROUPNOTFOUND
		msg = "group not found"
	case errors.Is(err, entities.ErrNotImplemented):
		status = http.StatusNotImplemented
		code = api.NOTIMPLEMENTED
		msg = "Unimplemented"
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: struct {
		Code    api.ErrorResponseErrorCode `json:"code"`
		Message string                     `json:"message"`
	}{Code: code, Message: msg}}
}

// isClientError reports errors caused by the request rather than the server.
func isClientError(err error) bool {
	return errors.Is(err, entities.ErrAuthRequired) ||
		errors.Is(err, entities.ErrInvalidToken)
}
