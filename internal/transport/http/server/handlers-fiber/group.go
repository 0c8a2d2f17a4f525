package handlers_fiber

import (
	"net/http"

	"github.com/ambdroid/PluralKit/internal/entities"
	"github.com/ambdroid/PluralKit/internal/mapper"
	"github.com/ambdroid/PluralKit/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetGroup returns a group. Private groups look missing to non-owners.
func (h *Handler) GetGroup(c *fiber.Ctx, groupRef string) error {
	group, err := h.uc.ResolveGroup(c.UserContext(), groupRef)
	if err != nil {
		if !isClientError(err) {
			h.log.Errorw("failed to resolve group", "error", err, "ref", groupRef)
		}
		return writeError(c, err)
	}
	if group == nil {
		return writeError(c, entities.ErrGroupNotFound)
	}

	lookup := h.uc.ContextFor(group, middleware.CallerFrom(c))
	if !group.Visibility.CanAccess(lookup) {
		return writeError(c, entities.ErrGroupNotFound)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIGroup(*group, lookup))
}
