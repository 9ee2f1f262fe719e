// Package sfapi is the HTTP client for the external S&F session gateway. The
// gateway owns the login handshake, request signing and the wire protocol;
// this package only speaks its JSON surface.
package sfapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"sf-recruiter/internal/core/ports"
	"sf-recruiter/internal/metrics"
)

// DefaultBaseURL is the local gateway sidecar. Override via SF_API_URL.
const DefaultBaseURL = "http://127.0.0.1:7956"

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: NewMetricsRoundTripper(http.DefaultTransport),
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// NewTestClient creates a client without the metrics middleware for testing.
func NewTestClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Login authenticates the account and returns one session per character, in
// the order the gateway reports them.
func (c *Client) Login(ctx context.Context, username, password string) ([]ports.Session, error) {
	u := fmt.Sprintf("%s/login", c.baseURL)

	var data loginResponse
	if err := c.postAndDecode(ctx, u, loginRequest{Username: username, Password: password}, &data); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	sessions := make([]ports.Session, 0, len(data.Sessions))
	for _, info := range data.Sessions {
		sessions = append(sessions, &Session{
			client:    c,
			id:        info.ID,
			character: info.Character,
		})
	}

	return sessions, nil
}

func (c *Client) postAndDecode(ctx context.Context, url string, payload, dest interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var gatewayErr errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&gatewayErr); err == nil && gatewayErr.Error != "" {
			return fmt.Errorf("gateway: %s", gatewayErr.Error)
		}
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if dest == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// -- Middleware --

type MetricsRoundTripper struct {
	Proxied http.RoundTripper
}

func NewMetricsRoundTripper(proxied http.RoundTripper) *MetricsRoundTripper {
	if proxied == nil {
		proxied = http.DefaultTransport
	}
	return &MetricsRoundTripper{Proxied: proxied}
}

func (mrt *MetricsRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := mrt.Proxied.RoundTrip(req)
	duration := time.Since(start).Seconds()

	status := "error"
	if err == nil {
		status = fmt.Sprintf("%d", resp.StatusCode)
	}

	endpoint := "unknown"
	path := req.URL.Path
	if strings.HasSuffix(path, "/login") {
		endpoint = "login"
	} else if strings.HasSuffix(path, "/command") {
		endpoint = "command"
	}

	metrics.GatewayRequestDuration.WithLabelValues(endpoint, status).Observe(duration)
	metrics.GatewayRequests.WithLabelValues(endpoint, status).Inc()

	return resp, err
}
