package handlers_fiber

import (
	"net/http"

	"github.com/ambdroid/PluralKit/internal/entities"
	"github.com/ambdroid/PluralKit/internal/mapper"
	"github.com/ambdroid/PluralKit/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetSystem returns a system, hiding private fields from non-owners.
func (h *Handler) GetSystem(c *fiber.Ctx, systemRef string) error {
	caller := middleware.CallerFrom(c)

	sys, err := h.uc.ResolveSystem(c.UserContext(), systemRef, caller)
	if err != nil {
		if !isClientError(err) {
			h.log.Errorw("failed to resolve system", "error", err, "ref", systemRef)
		}
		return writeError(c, err)
	}
	if sys == nil {
		return writeError(c, entities.ErrSystemNotFound)
	}

	lookup := h.uc.ContextFor(sys, caller)
	return c.Status(http.StatusOK).JSON(mapper.ToOAPISystem(*sys, lookup))
}

// PatchSystem is reserved for system updates, which this service does not perform.
func (h *Handler) PatchSystem(c *fiber.Ctx, _ string) error {
	return writeError(c, entities.ErrNotImplemented)
}
