// Package client is the single point of contact with the marketplace
// backend. It builds typed requests, dispatches them over a shared
// transport, and decodes the uniform response envelope into domain records
// or a classified error.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/yogeshwar16/realestatehousing/internal/domain/entities"
	"go.uber.org/zap"
)

// DefaultTimeout bounds each request unless overridden per client.
const DefaultTimeout = 15 * time.Second

// Client talks to the backend API. It is stateless apart from the base URL
// and shared transport; every call is single-shot with no retries and no
// deduplication of concurrent duplicates.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	log        *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the shared transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request deadline applied to every call that does
// not already carry a tighter context deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger attaches a logger for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a client against the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    trimTrailingSlash(baseURL),
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func trimTrailingSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

// envelope is the uniform wrapper around every API response.
type envelope[T any] struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Data    *T      `json:"data"`
	Error   *string `json:"error"`
}

// do dispatches one request and decodes the envelope. Methods cannot be
// generic, so the typed operations below delegate here.
func do[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any, bearer string) (*T, error) {
	op := method + " " + path

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("request failed", zap.String("op", op), zap.Error(err))
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	c.log.Debug("request completed",
		zap.String("op", op),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	var env envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			// Non-2xx without a decodable envelope is a transport-level failure.
			return nil, &TransportError{Op: op, Err: fmt.Errorf("http %d: %w", resp.StatusCode, err)}
		}
		return nil, &DecodeError{Op: op, Err: err}
	}

	if !env.Success {
		apiErr := &APIError{Status: resp.StatusCode, Message: env.Message}
		if env.Error != nil {
			apiErr.Detail = *env.Error
		}
		return nil, apiErr
	}
	if env.Data == nil {
		return nil, &DecodeError{Op: op, Err: ErrEnvelopeContract}
	}
	return env.Data, nil
}

// Signup registers a new account. Duplicate mobile numbers or national IDs
// are rejected server-side; the backend's reason comes back as an APIError.
func (c *Client) Signup(ctx context.Context, req *entities.SignupRequest) (*entities.User, error) {
	return do[entities.User](ctx, c, http.MethodPost, "/auth/signup", nil, req, "")
}

// SendOTP triggers an OTP send to a registered mobile number. Safe to call
// repeatedly for resends; each send supersedes the prior code.
func (c *Client) SendOTP(ctx context.Context, req *entities.OTPRequest) (string, error) {
	msg, err := do[string](ctx, c, http.MethodPost, "/auth/send-otp", nil, req, "")
	if err != nil {
		return "", err
	}
	return *msg, nil
}

// Login exchanges mobile number + OTP for the authenticated user record.
func (c *Client) Login(ctx context.Context, req *entities.LoginRequest) (*entities.User, error) {
	return do[entities.User](ctx, c, http.MethodPost, "/auth/login", nil, req, "")
}

// GetUserByMobileNumber fetches a user record by its mobile number.
func (c *Client) GetUserByMobileNumber(ctx context.Context, mobileNumber string) (*entities.User, error) {
	return do[entities.User](ctx, c, http.MethodGet, "/auth/user/"+url.PathEscape(mobileNumber), nil, nil, "")
}

// UpdateUser applies a partial profile update. The mobile number is the
// lookup key and cannot be changed through this call.
func (c *Client) UpdateUser(ctx context.Context, mobileNumber string, req *entities.UserUpdateRequest) (*entities.User, error) {
	return do[entities.User](ctx, c, http.MethodPut, "/auth/user/"+url.PathEscape(mobileNumber), nil, req, "")
}

// PropertyQuery holds the optional server-side list filters.
type PropertyQuery struct {
	Type   *entities.PropertyType
	City   string
	Search string
}

// GetProperties lists active properties with optional server-side filters.
// FilterProperties applies the same criteria locally as an independent
// second pass.
func (c *Client) GetProperties(ctx context.Context, q PropertyQuery) ([]entities.Property, error) {
	query := url.Values{}
	if q.Type != nil {
		query.Set("type", string(*q.Type))
	}
	if q.City != "" {
		query.Set("city", q.City)
	}
	if q.Search != "" {
		query.Set("search", q.Search)
	}

	props, err := do[[]entities.Property](ctx, c, http.MethodGet, "/api/properties", query, nil, "")
	if err != nil {
		return nil, err
	}
	return *props, nil
}

// GetPropertyByID fetches a single property with its embedded seller.
func (c *Client) GetPropertyByID(ctx context.Context, id int64) (*entities.Property, error) {
	return do[entities.Property](ctx, c, http.MethodGet, "/properties/"+strconv.FormatInt(id, 10), nil, nil, "")
}

// CreateProperty creates a listing owned by the given seller.
func (c *Client) CreateProperty(ctx context.Context, sellerID int64, req *entities.PropertyRequest) (*entities.Property, error) {
	return do[entities.Property](ctx, c, http.MethodPost, "/properties/create/"+strconv.FormatInt(sellerID, 10), nil, req, "")
}

// CreateInquiry raises an inquiry about a property. The bearer token is the
// caller's mobile number; the backend resolves it to the customer account.
func (c *Client) CreateInquiry(ctx context.Context, token string, req *entities.InquiryRequest) (string, error) {
	msg, err := do[string](ctx, c, http.MethodPost, "/api/inquiries", nil, req, token)
	if err != nil {
		return "", err
	}
	return *msg, nil
}
