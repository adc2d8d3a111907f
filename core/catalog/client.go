package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"releng-sop/core/reconcile"

	"github.com/gofiber/fiber/v2"
)

// contentDeliveryRepos is the PDC resource listing repositories.
const contentDeliveryRepos = "content-delivery-repos/"

// Client queries the product definition center.
type Client interface {
	// ContentDeliveryRepos returns every repository matching the query.
	ContentDeliveryRepos(ctx context.Context, query Query) ([]reconcile.RepoRecord, error)
}

// HTTPClient talks to the PDC REST API.
type HTTPClient struct {
	baseURL string
	timeout time.Duration
}

// NewClient creates a PDC client for the API rooted at baseURL
// (e.g., "https://pdc.example.com/rest_api/v1/").
func NewClient(baseURL string, cfg Config) *HTTPClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &HTTPClient{
		baseURL: strings.TrimSuffix(baseURL, "/") + "/",
		timeout: timeout,
	}
}

// Endpoint returns the URL requested for a query.
func (c *HTTPClient) Endpoint(query Query) string {
	return c.baseURL + contentDeliveryRepos + "?" + query.Values().Encode()
}

// ContentDeliveryRepos implements Client.
func (c *HTTPClient) ContentDeliveryRepos(ctx context.Context, query Query) ([]reconcile.RepoRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	endpoint := c.Endpoint(query)

	agent := fiber.AcquireAgent()
	req := agent.Request()
	req.Header.SetMethod(fiber.MethodGet)
	req.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	req.SetRequestURI(endpoint)
	agent.Timeout(c.timeout)

	if err := agent.Parse(); err != nil {
		fiber.ReleaseAgent(agent)
		return nil, fmt.Errorf("invalid PDC url %s: %w", endpoint, err)
	}

	// Bytes releases the agent
	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("PDC request %s failed: %w", endpoint, errors.Join(errs...))
	}
	if code != fiber.StatusOK {
		return nil, fmt.Errorf("PDC request %s failed: status %d: %s", endpoint, code, truncate(body, 200))
	}

	repos, err := decodeRepos(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode PDC response from %s: %w", endpoint, err)
	}
	return repos, nil
}

// decodeRepos accepts a plain list or a paged object with a results field.
func decodeRepos(body []byte) ([]reconcile.RepoRecord, error) {
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		var repos []reconcile.RepoRecord
		if err := json.Unmarshal(body, &repos); err != nil {
			return nil, err
		}
		return repos, nil
	}

	var page struct {
		Results []reconcile.RepoRecord `json:"results"`
	}
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

func truncate(body []byte, n int) string {
	if len(body) <= n {
		return string(body)
	}
	return string(body[:n]) + "..."
}
