// Package fitbit is a hand-written client for the slice of the Fitbit Web
// API the heart-rate enricher needs, shaped like an oapi-codegen generated
// client (ClientOption functional options, *http.Response returns) so it
// composes with the rest of the integrations in this module.
package fitbit

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/oapi-codegen/runtime/types"
)

// Client is the Fitbit API client. Server is the API base URL
// ("https://api.fitbit.com").
type Client struct {
	Server     string
	HTTPClient *http.Client
}

// ClientOption allows setting custom parameters during construction.
type ClientOption func(*Client) error

// WithHTTPClient overrides the default http.Client, which allows setting
// custom timeouts and transports (an OAuth2 round-tripper, in practice).
func WithHTTPClient(doer *http.Client) ClientOption {
	return func(c *Client) error {
		c.HTTPClient = doer
		return nil
	}
}

// NewClient creates a new Client bound to server, applying any ClientOption.
func NewClient(server string, opts ...ClientOption) (*Client, error) {
	client := &Client{Server: strings.TrimSuffix(server, "/")}
	for _, o := range opts {
		if err := o(client); err != nil {
			return nil, err
		}
	}
	if client.HTTPClient == nil {
		client.HTTPClient = http.DefaultClient
	}
	return client, nil
}

// GetHeartByDateTimestampIntraday retrieves intraday heart-rate data for a
// single day within the half-open [startTime, endTime) clock window
// (formatted "HH:MM"), at the requested detail level ("1sec" or "1min").
//
// Endpoint: GET /1/user/-/activities/heart/date/{date}/1d/{detail}/time/{startTime}/{endTime}.json
func (c *Client) GetHeartByDateTimestampIntraday(ctx context.Context, date types.Date, detail string, startTime string, endTime string) (*http.Response, error) {
	reqURL := fmt.Sprintf("%s/1/user/-/activities/heart/date/%s/1d/%s/time/%s/%s.json",
		c.Server,
		url.PathEscape(date.Format("2006-01-02")),
		url.PathEscape(detail),
		url.PathEscape(startTime),
		url.PathEscape(endTime),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return c.HTTPClient.Do(req)
}
