package api

import (
	"context"
	"net/http"
	"net/url"
)

type subdomainBody struct {
	Subdomain string `json:"subdomain"`
}

type apiAvailability struct {
	Available bool `json:"available"`
}

// CheckSubdomainAvailability reports whether a public subdomain is free
// to claim. The endpoint is unauthenticated.
func (c *Client) CheckSubdomainAvailability(ctx context.Context, subdomain string) (bool, error) {
	var out apiAvailability
	path := "/subdomains/" + url.PathEscape(subdomain) + "/availability"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return false, err
	}
	return out.Available, nil
}

// ChangeSubdomain reassigns a server's public subdomain.
func (c *Client) ChangeSubdomain(ctx context.Context, serverID, subdomain string) error {
	path := "/servers/" + url.PathEscape(serverID) + "/subdomain"
	return c.doJSON(ctx, http.MethodPost, path, subdomainBody{Subdomain: subdomain}, nil)
}
