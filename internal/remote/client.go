package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/Paintersrp/rnote/internal/constants"
	"github.com/Paintersrp/rnote/internal/logging"
)

var validate = validator.New()

// Client talks to the note service over HTTP+JSON. Calls are made one at a
// time by the commands; the limiter only paces them.
type Client struct {
	baseURL   *url.URL
	token     string
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
	logger    *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithRateLimit paces requests to perSecond with the given burst. A
// non-positive rate disables pacing.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func New(endpoint, token string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(strings.TrimSpace(endpoint), "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid endpoint %q: expected scheme and host", endpoint)
	}

	c := &Client{
		baseURL:   u,
		token:     token,
		http:      &http.Client{Timeout: constants.DefaultRequestTimeout},
		limiter:   rate.NewLimiter(rate.Limit(constants.DefaultRatePerSecond), constants.DefaultRateBurst),
		userAgent: constants.AppName + "/" + constants.Version,
		logger:    logging.FromContext(context.Background()),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) Endpoint() string {
	return c.baseURL.String()
}

func (c *Client) HasToken() bool {
	return c.token != ""
}

type call struct {
	method string
	path   string
	query  url.Values
	body   any
	out    any
	expect int
	public bool
}

func (c *Client) do(ctx context.Context, cl call) error {
	if !cl.public && c.token == "" {
		return ErrNoToken
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for rate limiter: %w", err)
	}

	target := c.baseURL.JoinPath(cl.path)
	if len(cl.query) > 0 {
		target.RawQuery = cl.query.Encode()
	}

	var body io.Reader
	if cl.body != nil {
		data, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, target.String(), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !cl.public {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", cl.method, cl.path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("remote call",
		slog.String("method", cl.method),
		slog.String("path", cl.path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
		slog.String("request_id", requestID),
	)

	expect := cl.expect
	if expect == 0 {
		expect = http.StatusOK
	}
	if resp.StatusCode != expect {
		return decodeError(resp, requestID)
	}

	if cl.out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(cl.out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", cl.method, cl.path, err)
	}

	return nil
}

func decodeError(resp *http.Response, requestID string) error {
	apiErr := &APIError{Status: resp.StatusCode, RequestID: requestID}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var payload errorResponse
	if err := json.Unmarshal(data, &payload); err == nil {
		apiErr.Message = payload.Error
		apiErr.Code = payload.Code
	} else if text := strings.TrimSpace(string(data)); text != "" {
		apiErr.Message = text
	}

	return apiErr
}

// Login exchanges credentials for a bearer token. The client keeps using its
// current token; callers store the returned one.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := loginRequest{Email: strings.TrimSpace(email), Password: password}
	if err := validate.Struct(body); err != nil {
		return "", fmt.Errorf("invalid credentials: %w", err)
	}

	var out loginResponse
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/v1/auth/login",
		body:   body,
		out:    &out,
		public: true,
	})
	if err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", errors.New("token not found in login response")
	}

	return out.Token, nil
}

func (c *Client) GetUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, call{method: http.MethodGet, path: "/v1/user", out: &user}); err != nil {
		return nil, err
	}
	return &user, nil
}
