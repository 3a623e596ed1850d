package upstream

import (
	"context"

	"github.com/preston-bernstein/election-gateway/internal/credentials"
	"github.com/preston-bernstein/election-gateway/internal/domain"
)

// ElectionStatus fetches the public election status, forwarding optional credentials.
func (c *Client) ElectionStatus(ctx context.Context, creds credentials.Provider) (domain.ElectionStatus, error) {
	key := EndpointElectionStatus + "|" + authKey(creds)
	return coalesce(ctx, c, key, EndpointElectionStatus, func(ctx context.Context) (domain.ElectionStatus, error) {
		return getJSON[domain.ElectionStatus](ctx, c, call{
			endpoint: EndpointElectionStatus,
			path:     pathElectionStatus,
			creds:    creds,
		})
	})
}

// AdminElectionStatus is never coalesced; every admin read reaches the origin on its own.
func (c *Client) AdminElectionStatus(ctx context.Context, creds credentials.Provider) (domain.ElectionStatus, error) {
	return getJSON[domain.ElectionStatus](ctx, c, call{
		endpoint: EndpointAdminElectionStatus,
		path:     pathAdminElectionStatus,
		creds:    creds,
	})
}

func authKey(creds credentials.Provider) string {
	if creds == nil {
		return ""
	}
	return creds.Headers().Get(credentials.HeaderAuthorization)
}
