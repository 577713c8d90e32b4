// Package feed is the typed client for the insights backend. The backend
// is an external collaborator: this package only fetches its JSON payloads
// and hands them to the client-side aggregation engine.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/raleighinsights/console/pkg/model"
)

// Endpoint paths, relative to the configured base URL.
const (
	pathResidential  = "/housing/api/permits/residential"
	pathAnalytics    = "/housing/api/analytics"
	pathDemographics = "/housing/api/demographics"
	pathEconomy      = "/economy/api/overview"
	pathBusiness     = "/business/api/analytics"
	pathCompare      = "/compare/api/overview"
)

// HTTPClient matches net/http.Client Do signature for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches dashboard payloads from the backend.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	maxRetries int
}

// Config defines settings for the feed client.
type Config struct {
	BaseURL    string
	HTTPClient HTTPClient
	Timeout    time.Duration
	MaxRetries int
}

// New creates a feed client with sane defaults.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		maxRetries: maxRetries,
	}
}

// StatusError reports a non-2xx response from the backend.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend status %d for %s: %s", e.StatusCode, e.URL, e.Body)
}

// getJSON fetches one endpoint into out, retrying transport errors.
// A non-2xx status is not retried: the backend answered, just unhappily.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	url := c.baseURL + path

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("fetch %s: %w", url, err)
			if ctx.Err() != nil {
				return lastErr
			}
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			resp.Body.Close()
			return &StatusError{URL: url, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
		}

		err = json.NewDecoder(resp.Body).Decode(out)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("decode %s: %w", url, err)
		}
		return nil
	}
	return fmt.Errorf("fetch failed after %d attempts: %w", c.maxRetries, lastErr)
}

// Residential fetches the full permit record list.
func (c *Client) Residential(ctx context.Context) (model.ResidentialPayload, error) {
	var out model.ResidentialPayload
	err := c.getJSON(ctx, pathResidential, &out)
	return out, err
}

// Analytics fetches the backend's pre-aggregated housing analytics.
func (c *Client) Analytics(ctx context.Context) (model.AnalyticsPayload, error) {
	var out model.AnalyticsPayload
	err := c.getJSON(ctx, pathAnalytics, &out)
	return out, err
}

// Demographics fetches zip-level census data.
func (c *Client) Demographics(ctx context.Context) (model.DemographicsPayload, error) {
	var out model.DemographicsPayload
	err := c.getJSON(ctx, pathDemographics, &out)
	return out, err
}

// Economy fetches the economic indicator overview.
func (c *Client) Economy(ctx context.Context) (model.EconomyPayload, error) {
	var out model.EconomyPayload
	err := c.getJSON(ctx, pathEconomy, &out)
	return out, err
}

// Business fetches commercial development analytics.
func (c *Client) Business(ctx context.Context) (model.BusinessPayload, error) {
	var out model.BusinessPayload
	err := c.getJSON(ctx, pathBusiness, &out)
	return out, err
}

// Compare fetches the metro comparison payload.
func (c *Client) Compare(ctx context.Context) (model.ComparePayload, error) {
	var out model.ComparePayload
	err := c.getJSON(ctx, pathCompare, &out)
	return out, err
}

// Bundle is everything the console needs for its first render.
type Bundle struct {
	Residential  model.ResidentialPayload
	Analytics    model.AnalyticsPayload
	Demographics model.DemographicsPayload
	Economy      model.EconomyPayload
	Business     model.BusinessPayload
	Compare      model.ComparePayload
}

// LoadAll issues every fetch in parallel and waits for all of them. Any
// failure aborts the whole load: the caller gets a single error and renders
// one blocking error state instead of a partially-populated console.
func (c *Client) LoadAll(ctx context.Context) (*Bundle, error) {
	var b Bundle
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		b.Residential, err = c.Residential(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		b.Analytics, err = c.Analytics(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		b.Demographics, err = c.Demographics(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		b.Economy, err = c.Economy(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		b.Business, err = c.Business(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		b.Compare, err = c.Compare(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load dashboard data: %w", err)
	}
	return &b, nil
}
