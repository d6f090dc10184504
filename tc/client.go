package tc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/classfetch/classfetch/mapping"
	"github.com/classfetch/classfetch/model"
)

// DefaultHost is the production Transparent Classroom host.
const DefaultHost = "https://www.transparentclassroom.com"

// Client is a Transparent Classroom API client.
type Client struct {
	host     string
	email    string
	password string
	opts     clientOptions

	tokenMu sync.Mutex
	token   string

	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Transparent Classroom client. Authentication is
// lazy: credentials are exchanged for an API token on the first request.
func NewClient(host, email, password string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidConfig)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidConfig)
	}
	if host == "" {
		host = DefaultHost
	}
	host = strings.TrimRight(host, "/")

	o := clientOptions{timeout: 30 * time.Second}
	for _, opt := range opts {
		opt(&o)
	}

	client := &Client{
		host:     host,
		email:    email,
		password: password,
		opts:     o,
		logger:   logger,
	}
	if o.httpClient != nil {
		client.httpClient = o.httpClient
	} else {
		client.httpClient = &http.Client{Timeout: o.timeout}
	}
	return client, nil
}

// Auth is the authentication response: the signed-in user plus session
// metadata.
type Auth struct {
	User     *model.User
	SchoolID *int64
	APIToken string
}

// Authenticate exchanges the configured credentials for an API token. It
// is called automatically before the first resource request; calling it
// directly is only needed to inspect the signed-in user.
func (c *Client) Authenticate(ctx context.Context) (*Auth, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.host+"/api/v1/authenticate.json", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.email, c.password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("authentication request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Endpoint: "/api/v1/authenticate.json", Body: string(body)}
	}

	raw, err := decodeObject(body)
	if err != nil {
		return nil, err
	}
	auth, err := parseAuth(raw, c.mapOptions())
	if err != nil {
		return nil, err
	}

	c.tokenMu.Lock()
	c.token = auth.APIToken
	c.tokenMu.Unlock()

	c.logger.Debug().Str("email", c.email).Msg("Authenticated with Transparent Classroom")
	return auth, nil
}

// parseAuth splits the authentication payload into session metadata and
// the embedded user record.
func parseAuth(raw map[string]any, opts []mapping.Option) (*Auth, error) {
	sessionKeys := map[string]bool{
		"school_id":    true,
		"api_token":    true,
		"push_tokens":  true,
		"push_enabled": true,
	}

	auth := &Auth{}
	userRaw := make(map[string]any, len(raw))
	for k, v := range raw {
		if sessionKeys[k] {
			continue
		}
		userRaw[k] = v
	}

	token, ok := raw["api_token"].(string)
	if !ok || token == "" {
		return nil, fmt.Errorf("%w: authentication response carried no api_token", ErrUnauthorized)
	}
	auth.APIToken = token

	if v, ok := raw["school_id"]; ok && v != nil {
		// Reuse the mapping layer's number handling rather than guessing
		// at the decoder's numeric type.
		id, err := mapping.Map[schoolRef](map[string]any{"school_id": v})
		if err != nil {
			return nil, err
		}
		auth.SchoolID = id.SchoolID
	}

	user, err := mapping.Map[model.User](userRaw, opts...)
	if err != nil {
		return nil, err
	}
	auth.User = user
	return auth, nil
}

// schoolRef exists so parseAuth can run school_id through the integer
// coercion rule.
type schoolRef struct {
	SchoolID *int64 `tc:"school_id"`
}

func (c *Client) ensureToken(ctx context.Context) error {
	c.tokenMu.Lock()
	have := c.token != ""
	c.tokenMu.Unlock()
	if have {
		return nil
	}
	_, err := c.Authenticate(ctx)
	return err
}

// doRequest performs an authenticated GET against an API endpoint.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if err := c.ensureToken(ctx); err != nil {
		return nil, err
	}

	requestURL := c.host + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.tokenMu.Lock()
	req.Header.Set("X-TransparentClassroomToken", c.token)
	c.tokenMu.Unlock()
	if c.opts.schoolID != 0 {
		req.Header.Set("X-TransparentClassroomSchoolId", strconv.FormatInt(c.opts.schoolID, 10))
	}
	if c.opts.masqueradeID != 0 {
		req.Header.Set("X-TransparentClassroomMasqueradeId", strconv.FormatInt(c.opts.masqueradeID, 10))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Endpoint: endpoint, Body: string(body)}
	}
	return body, nil
}

// decodeObject decodes a response body into a raw JSON object. UseNumber
// keeps identifiers as json.Number so the mapping layer can enforce
// integer semantics.
func decodeObject(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return raw, nil
}

// decodeArray decodes a response body into a raw JSON array.
func decodeArray(body []byte) ([]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var raw []any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return raw, nil
}

func (c *Client) mapOptions() []mapping.Option {
	opts := []mapping.Option{}
	if c.opts.location != nil {
		opts = append(opts, mapping.WithLocation(c.opts.location))
	}
	if c.opts.drift != nil {
		opts = append(opts, mapping.WithDriftSink(c.opts.drift))
	}
	return opts
}

// fetchOne fetches and maps a single-object (detail) endpoint.
func fetchOne[T any](ctx context.Context, c *Client, endpoint string, params url.Values) (*T, error) {
	body, err := c.doRequest(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	raw, err := decodeObject(body)
	if err != nil {
		return nil, err
	}
	return mapping.Map[T](raw, c.mapOptions()...)
}

// fetchList fetches and maps a list endpoint. Under the default
// best-effort policy, malformed records are logged and skipped; with
// WithStrict the first malformed record fails the call.
func fetchList[T any](ctx context.Context, c *Client, endpoint string, params url.Values) ([]T, error) {
	body, err := c.doRequest(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	raws, err := decodeArray(body)
	if err != nil {
		return nil, err
	}

	opts := c.mapOptions()
	if c.opts.strict {
		opts = append(opts, mapping.WithFailFast())
	}
	items, err := mapping.MapMany[T](raws, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", endpoint, err)
	}

	for _, item := range mapping.Failed(items) {
		c.logger.Warn().
			Err(item.Err).
			Str("endpoint", endpoint).
			Int("index", item.Index).
			Msg("Skipping malformed record")
	}

	records := mapping.Records(items)
	out := make([]T, 0, len(records))
	for _, r := range records {
		out = append(out, *r)
	}
	return out, nil
}
