package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/preston-bernstein/election-gateway/internal/credentials"
)

// CreateTown posts the admin's JSON object unchanged and relays the upstream answer.
func (c *Client) CreateTown(ctx context.Context, creds credentials.Provider, body json.RawMessage) (Response, error) {
	if !json.Valid(body) {
		return Response{}, fmt.Errorf("upstream %s: body is not valid JSON", EndpointCreateTown)
	}
	return c.mutate(ctx, call{
		endpoint: EndpointCreateTown,
		method:   http.MethodPost,
		path:     pathAdminTowns,
		creds:    creds,
		body:     body,
	})
}

// DeleteAdmin removes an admin account.
func (c *Client) DeleteAdmin(ctx context.Context, creds credentials.Provider, id string) (Response, error) {
	return c.mutate(ctx, call{
		endpoint: EndpointDeleteAdmin,
		method:   http.MethodDelete,
		path:     pathAdmins + url.PathEscape(id),
		creds:    creds,
	})
}

// ToggleAdmin enables or disables an admin account.
func (c *Client) ToggleAdmin(ctx context.Context, creds credentials.Provider, id string) (Response, error) {
	return c.mutate(ctx, call{
		endpoint: EndpointToggleAdmin,
		method:   http.MethodPatch,
		path:     pathAdmins + url.PathEscape(id) + "/toggle",
		creds:    creds,
	})
}
