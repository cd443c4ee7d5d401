package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/vgskye/craftdeck/internal/domain"
)

// CatalogClient talks to the public modpack catalog API (version/... and
// project/... resources). No authentication is required.
type CatalogClient struct {
	baseURL string
	client  *http.Client
}

// NewCatalogClient returns a catalog client rooted at baseURL.
func NewCatalogClient(baseURL string) *CatalogClient {
	return &CatalogClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

// apiVersion is the catalog's version resource.
type apiVersion struct {
	ID            string `json:"id"`
	ProjectID     string `json:"project_id"`
	Name          string `json:"name"`
	VersionNumber string `json:"version_number"`
}

// apiProject is the catalog's project resource.
type apiProject struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IconURL     string `json:"icon_url"`
}

func (c *CatalogClient) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("catalog: failed to encode request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("catalog: failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("catalog: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return statusError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("catalog: failed to decode response: %w", err)
	}
	return nil
}

// GetVersion resolves version metadata for a modpack version ID.
func (c *CatalogClient) GetVersion(ctx context.Context, versionID string) (domain.ModpackVersion, error) {
	var out apiVersion
	if err := c.doJSON(ctx, http.MethodGet, "/version/"+url.PathEscape(versionID), nil, &out); err != nil {
		return domain.ModpackVersion{}, err
	}
	return domain.ModpackVersion{
		ID:            out.ID,
		ProjectID:     out.ProjectID,
		Name:          out.Name,
		VersionNumber: out.VersionNumber,
	}, nil
}

// GetProject resolves project metadata for a catalog project ID.
func (c *CatalogClient) GetProject(ctx context.Context, projectID string) (domain.Project, error) {
	var out apiProject
	if err := c.doJSON(ctx, http.MethodGet, "/project/"+url.PathEscape(projectID), nil, &out); err != nil {
		return domain.Project{}, err
	}
	return domain.Project{
		ID:          out.ID,
		Slug:        out.Slug,
		Title:       out.Title,
		Description: out.Description,
		IconURL:     out.IconURL,
	}, nil
}
