// Package client provides the HTTP client for the scalaris-pic API.
//
// The APIClient wraps a Resty client with the settings the fetch command
// needs: timeouts, retries on connection errors only, optional basic auth
// for servers whose attribute record carries a user list, and request logging
// routed through the unified logging package.
package client

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/concave-dev/scalaris-pic/internal/attributes"
	"github.com/concave-dev/scalaris-pic/internal/logging"
	"github.com/concave-dev/scalaris-pic/internal/netutil"
	"github.com/concave-dev/scalaris-pic/internal/version"
	"github.com/go-resty/resty/v2"
)

// ErrServerUnreachable is returned when nothing is listening at the API address
var ErrServerUnreachable = errors.New("no scalaris-pic server is listening")

// ErrUnauthorized is returned when the server rejects the credentials.
var ErrUnauthorized = errors.New("unauthorized: server restricts access to its user list")

// HealthResponse mirrors the server health endpoint
type HealthResponse struct {
	Status     string    `json:"status"`
	Node       string    `json:"node"`
	Restricted bool      `json:"restricted"`
	Timestamp  time.Time `json:"timestamp"`
	Version    string    `json:"version"`
	Uptime     string    `json:"uptime"`
}

// ValidateResult mirrors the server validation endpoint. Error is set for
// invalid records.
type ValidateResult struct {
	Status     string `json:"status"`
	Node       string `json:"node,omitempty"`
	Restricted bool   `json:"restricted,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Valid reports whether the server accepted the record.
func (r ValidateResult) Valid() bool {
	return r.Status == "valid"
}

// RestyLogger implements resty.Logger and routes logs through structured logging
type RestyLogger struct{}

// Errorf routes error messages through structured logging.
func (RestyLogger) Errorf(format string, v ...any) {
	logging.Error(format, v...)
}

// Warnf routes warning messages through structured logging.
func (RestyLogger) Warnf(format string, v ...any) {
	logging.Warn(format, v...)
}

// Debugf routes debug messages through structured logging.
func (RestyLogger) Debugf(format string, v ...any) {
	logging.Debug(format, v...)
}

// Options configures an APIClient.
type Options struct {
	APIAddr  string        // host:port of the API server
	Timeout  time.Duration // per-request timeout
	User     string        // basic auth user, empty for none
	Password string        // basic auth password
	Retries  int           // retry count on connection errors
}

// APIClient talks to a running scalaris-pic API server
type APIClient struct {
	client  *resty.Client
	baseURL string
}

// NewAPIClient creates a client for the server at opts.APIAddr.
func NewAPIClient(opts Options) *APIClient {
	client := resty.New()
	baseURL := fmt.Sprintf("http://%s/api/v1", opts.APIAddr)

	client.SetLogger(RestyLogger{})

	client.
		SetTimeout(opts.Timeout).
		SetBaseURL(baseURL).
		SetHeader("User-Agent", fmt.Sprintf("scalaris-pic/%s", version.Version))

	if opts.User != "" {
		client.SetBasicAuth(opts.User, opts.Password)
	}

	// Only retry on connection errors, not HTTP errors
	client.
		SetRetryCount(opts.Retries).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(5 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil
		})

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logging.Debug("Making API request: %s %s", req.Method, req.URL)
		return nil
	})

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("API response: %d %s (took %v)", resp.StatusCode(), resp.Status(), resp.Time())
		return nil
	})

	client.OnError(func(req *resty.Request, err error) {
		logging.Debug("API request failed: %s %s - %v", req.Method, req.URL, err)
	})

	return &APIClient{
		client:  client,
		baseURL: baseURL,
	}
}

// GetHealth fetches the server health status.
func (api *APIClient) GetHealth() (*HealthResponse, error) {
	var health HealthResponse

	resp, err := api.client.R().
		SetHeader("Accept", "application/json").
		SetResult(&health).
		Get("/health")
	if err := api.check(resp, err); err != nil {
		return nil, err
	}

	return &health, nil
}

// GetTree fetches the full attribute tree encoded in the given format. The
// bytes are returned as the server sent them.
func (api *APIClient) GetTree(format attributes.Format) ([]byte, error) {
	return api.getDocument("/attributes", format)
}

// GetAttributesDocument fetches the bare attribute record encoded in the
// given format.
func (api *APIClient) GetAttributesDocument(format attributes.Format) ([]byte, error) {
	return api.getDocument("/attributes/scalaris", format)
}

// GetAttributes fetches and decodes the attribute record.
func (api *APIClient) GetAttributes() (*attributes.NodeDefaultConfig, error) {
	var cfg attributes.NodeDefaultConfig

	resp, err := api.client.R().
		SetHeader("Accept", "application/json").
		SetResult(&cfg).
		Get("/attributes/scalaris")
	if err := api.check(resp, err); err != nil {
		return nil, err
	}

	cfg = cfg.Clone()
	return &cfg, nil
}

// Validate posts a JSON or YAML document to the server for validation. The
// Content-Type follows the document's format. An invalid record is not an
// error; inspect ValidateResult.Valid.
func (api *APIClient) Validate(document []byte) (*ValidateResult, error) {
	var result ValidateResult

	resp, err := api.client.R().
		SetHeader("Content-Type", attributes.DetectFormat(document).ContentType()).
		SetBody(document).
		SetResult(&result).
		SetError(&result).
		Post("/attributes/validate")
	if err != nil {
		return nil, api.connectError(err)
	}

	switch resp.StatusCode() {
	case http.StatusOK, http.StatusUnprocessableEntity:
		return &result, nil
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode(), resp.String())
	}
}

func (api *APIClient) getDocument(path string, format attributes.Format) ([]byte, error) {
	resp, err := api.client.R().
		SetQueryParam("format", string(format)).
		Get(path)
	if err := api.check(resp, err); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// check converts transport errors and non-200 responses into errors.
func (api *APIClient) check(resp *resty.Response, err error) error {
	if err != nil {
		return api.connectError(err)
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

// connectError wraps transport failures, calling out a server that is not
// listening.
func (api *APIClient) connectError(err error) error {
	if netutil.IsConnectionRefusedError(err) {
		return fmt.Errorf("%w at %s", ErrServerUnreachable, api.baseURL)
	}
	return fmt.Errorf("failed to connect to API server at %s: %w", api.baseURL, err)
}
