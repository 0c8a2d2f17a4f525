package handlers_fiber

import (
	"net/http"

	"github.com/ambdroid/PluralKit/internal/entities"
	"github.com/ambdroid/PluralKit/internal/mapper"
	"github.com/ambdroid/PluralKit/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetMember returns a member. Private members look missing to non-owners.
func (h *Handler) GetMember(c *fiber.Ctx, memberRef string) error {
	member, err := h.uc.ResolveMember(c.UserContext(), memberRef)
	if err != nil {
		if !isClientError(err) {
			h.log.Errorw("failed to resolve member", "error", err, "ref", memberRef)
		}
		return writeError(c, err)
	}
	if member == nil {
		return writeError(c, entities.ErrMemberNotFound)
	}

	lookup := h.uc.ContextFor(member, middleware.CallerFrom(c))
	if !member.Visibility.CanAccess(lookup) {
		return writeError(c, entities.ErrMemberNotFound)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIMember(*member, lookup))
}
