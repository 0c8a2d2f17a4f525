package oapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type recordingServer struct {
	refs []string
}

func (s *recordingServer) record(c *fiber.Ctx, ref string) error {
	s.refs = append(s.refs, ref)
	return c.SendString(ref)
}

func (s *recordingServer) GetSystem(c *fiber.Ctx, ref string) error   { return s.record(c, ref) }
func (s *recordingServer) PatchSystem(c *fiber.Ctx, ref string) error { return s.record(c, ref) }
func (s *recordingServer) GetMember(c *fiber.Ctx, ref string) error   { return s.record(c, ref) }
func (s *recordingServer) GetGroup(c *fiber.Ctx, ref string) error    { return s.record(c, ref) }

func TestRegisterHandlersDecodesPathParams(t *testing.T) {
	tests := []struct {
		method string
		path   string
		ref    string
	}{
		{method: http.MethodGet, path: "/v2/systems/%40me", ref: "@me"},
		{method: http.MethodPatch, path: "/v2/systems/%40me", ref: "@me"},
		{method: http.MethodGet, path: "/v2/systems/abcde", ref: "abcde"},
		{method: http.MethodGet, path: "/v2/members/%7B5c0a1f3e-7d2b-4e8f-9a6c-1b2d3e4f5a6b%7D", ref: "{5c0a1f3e-7d2b-4e8f-9a6c-1b2d3e4f5a6b}"},
		{method: http.MethodGet, path: "/v2/groups/grp%61a", ref: "grpaa"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			srv := &recordingServer{}
			app := fiber.New()
			RegisterHandlers(app, srv)

			resp, err := app.Test(httptest.NewRequest(tt.method, tt.path, nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, http.StatusOK, resp.StatusCode)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			require.Equal(t, tt.ref, string(body))
			require.Equal(t, []string{tt.ref}, srv.refs)
		})
	}
}

func TestRegisterHandlersRejectsBadEscape(t *testing.T) {
	srv := &recordingServer{}
	app := fiber.New()
	RegisterHandlers(app, srv)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.URL = &url.URL{Opaque: "/v2/systems/%zz"}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Empty(t, srv.refs)
}
