// Package sheets fetches the raw values table from a spreadsheet API.
//
// The client returns the decoded payload untyped: interpreting the table is
// the parse pipeline's job. Transport and HTTP failures are returned to the
// caller and never reach the pipeline, which only ever sees already-fetched
// data.
package sheets

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	json "github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/jobsheet/tracker/internal/config"
)

// Client reads a spreadsheet's values range over HTTP.
type Client struct {
	cfg     config.SheetsConfig
	hc      *http.Client
	limiter *rate.Limiter
}

// New creates a client with a bounded request timeout and an outbound
// throttle so repeated syncs stay inside the API's quota.
func New(cfg config.SheetsConfig) *Client {
	return &Client{
		cfg:     cfg,
		hc:      &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
	}
}

// FetchValues GETs the configured range and returns the JSON-decoded body.
func (c *Client) FetchValues(ctx context.Context) (any, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.valuesURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("sheets build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "jobsheet-tracker/1.0")

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheets get values: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("sheets values status %d", res.StatusCode)
	}

	var payload any
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("sheets decode values: %w", err)
	}
	return payload, nil
}

// valuesURL builds {base}/v4/spreadsheets/{id}/values/{range}, with the API
// key as a query parameter when configured.
func (c *Client) valuesURL() string {
	base := strings.TrimSuffix(c.cfg.BaseURL, "/")
	u := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s",
		base, url.PathEscape(c.cfg.SpreadsheetID), url.PathEscape(c.cfg.ReadRange))
	if c.cfg.APIKey != "" {
		u += "?key=" + url.QueryEscape(c.cfg.APIKey)
	}
	return u
}
