package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/ambdroid/PluralKit/internal/entities"
	api "github.com/ambdroid/PluralKit/internal/oapi"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type callerKey struct{}

const bearerPrefix = "Bearer "

// TokenAuthenticator resolves an API token to the owning system.
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (entities.SystemID, error)
}

// Auth attaches the caller's system id to the request when an Authorization header is sent.
// Requests without the header continue anonymously; invalid tokens are rejected with 401.
func Auth(log *zap.SugaredLogger, authenticator TokenAuthenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return c.Next()
		}

		id, err := authenticator.Authenticate(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, entities.ErrInvalidToken) {
				return c.Status(fiber.StatusUnauthorized).JSON(errorBody(api.UNAUTHORIZED, "invalid token"))
			}
			log.Errorw("failed to authenticate request", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(errorBody(api.INTERNAL, "internal error"))
		}

		c.Locals(callerKey{}, id)
		return c.Next()
	}
}

// CallerFrom returns the authenticated system for this request, or nil for anonymous callers.
func CallerFrom(c *fiber.Ctx) *entities.SystemID {
	id, ok := c.Locals(callerKey{}).(entities.SystemID)
	if !ok {
		return nil
	}
	return &id
}

// bearerToken strips an optional Bearer scheme, matched case-insensitively.
func bearerToken(header string) string {
	token := strings.TrimSpace(header)
	if len(token) > len(bearerPrefix) && strings.EqualFold(token[:len(bearerPrefix)], bearerPrefix) {
		token = token[len(bearerPrefix):]
	}
	return strings.TrimSpace(token)
}

func errorBody(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	var res api.ErrorResponse
	res.Error.Code = code
	res.Error.Message = msg
	return res
}
