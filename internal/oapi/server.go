package oapi

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /v2/systems/{systemRef})
	GetSystem(c *fiber.Ctx, systemRef string) error
	// (PATCH /v2/systems/{systemRef})
	PatchSystem(c *fiber.Ctx, systemRef string) error
	// (GET /v2/members/{memberRef})
	GetMember(c *fiber.Ctx, memberRef string) error
	// (GET /v2/groups/{groupRef})
	GetGroup(c *fiber.Ctx, groupRef string) error
}

// ServerInterfaceWrapper extracts path parameters before calling the handlers.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetSystem operation middleware.
func (w *ServerInterfaceWrapper) GetSystem(c *fiber.Ctx) error {
	systemRef, err := pathParam(c, "systemRef")
	if err != nil {
		return err
	}
	return w.Handler.GetSystem(c, systemRef)
}

// PatchSystem operation middleware.
func (w *ServerInterfaceWrapper) PatchSystem(c *fiber.Ctx) error {
	systemRef, err := pathParam(c, "systemRef")
	if err != nil {
		return err
	}
	return w.Handler.PatchSystem(c, systemRef)
}

// GetMember operation middleware.
func (w *ServerInterfaceWrapper) GetMember(c *fiber.Ctx) error {
	memberRef, err := pathParam(c, "memberRef")
	if err != nil {
		return err
	}
	return w.Handler.GetMember(c, memberRef)
}

// GetGroup operation middleware.
func (w *ServerInterfaceWrapper) GetGroup(c *fiber.Ctx) error {
	groupRef, err := pathParam(c, "groupRef")
	if err != nil {
		return err
	}
	return w.Handler.GetGroup(c, groupRef)
}

// pathParam returns the decoded value of a path parameter.
func pathParam(c *fiber.Ctx, name string) (string, error) {
	v, err := url.PathUnescape(c.Params(name))
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return v, nil
}

// RegisterHandlers mounts the v2 routes on router behind the given middlewares.
func RegisterHandlers(router fiber.Router, si ServerInterface, middlewares ...fiber.Handler) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	v2 := router.Group("/v2", middlewares...)
	v2.Get("/systems/:systemRef", wrapper.GetSystem)
	v2.Patch("/systems/:systemRef", wrapper.PatchSystem)
	v2.Get("/members/:memberRef", wrapper.GetMember)
	v2.Get("/groups/:groupRef", wrapper.GetGroup)
}
