// Package client is a typed HTTP client for the notice board API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/notice-board/internal/api/dto"
)

// Notice is the wire form of a notice.
type Notice = dto.NoticeResponse

// LoginResult is the successful login payload.
type LoginResult = dto.LoginResponse

// Filter narrows a listing. Empty fields are not sent.
type Filter struct {
	Department string
	Date       string
}

// NoticeInput is the create/update payload.
type NoticeInput = dto.NoticeRequest

// APIError is a decoded error envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details map[string]any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

// IsUnauthorized reports whether err is a 401 from the API.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == fiber.StatusUnauthorized
}

// Client talks to one API server. It is safe for concurrent use once built.
type Client struct {
	baseURL string
	token   string
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the bearer token sent on authenticated calls.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithTimeout bounds each request when the context has no deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// New creates a client for baseURL, e.g. http://localhost:9001.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token returns the bearer token in use.
func (c *Client) Token() string {
	return c.token
}

// WithSession returns a copy of c that sends token.
func (c *Client) WithSession(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// Login exchanges credentials for a session token. The client itself is
// not modified; use WithSession with the returned token.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var out LoginResult
	agent := fiber.Post(c.url("/api/auth/login")).JSON(dto.LoginRequest{Email: email, Password: password})
	if err := c.do(ctx, agent, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListNotices fetches notices newest first.
func (c *Client) ListNotices(ctx context.Context, filter Filter) ([]Notice, error) {
	agent := fiber.Get(c.url("/api/notices"))
	q := url.Values{}
	if filter.Department != "" {
		q.Set("department", filter.Department)
	}
	if filter.Date != "" {
		q.Set("date", filter.Date)
	}
	if len(q) > 0 {
		agent.QueryString(q.Encode())
	}

	out := []Notice{}
	if err := c.do(ctx, agent, false, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateNotice creates a notice and returns the stored record.
func (c *Client) CreateNotice(ctx context.Context, input NoticeInput) (*Notice, error) {
	var out dto.NoticeMutationResponse
	if err := c.do(ctx, fiber.Post(c.url("/api/notices")).JSON(input), true, &out); err != nil {
		return nil, err
	}
	if out.Notice == nil {
		return nil, errors.New("create response carried no notice")
	}
	return out.Notice, nil
}

// UpdateNotice overwrites a notice. The returned notice is nil when the
// server matched no row.
func (c *Client) UpdateNotice(ctx context.Context, id int64, input NoticeInput) (*Notice, error) {
	var out dto.NoticeMutationResponse
	if err := c.do(ctx, fiber.Put(c.noticeURL(id)).JSON(input), true, &out); err != nil {
		return nil, err
	}
	return out.Notice, nil
}

// DeleteNotice removes a notice. Unknown ids succeed.
func (c *Client) DeleteNotice(ctx context.Context, id int64) error {
	return c.do(ctx, fiber.Delete(c.noticeURL(id)), true, nil)
}

// Departments returns the labels accepted by the server, "All" first.
func (c *Client) Departments(ctx context.Context) ([]string, error) {
	var out dto.DepartmentsResponse
	if err := c.do(ctx, fiber.Get(c.url("/api/departments")), false, &out); err != nil {
		return nil, err
	}
	return out.Departments, nil
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}

func (c *Client) noticeURL(id int64) string {
	return c.url("/api/notices/" + strconv.FormatInt(id, 10))
}

func (c *Client) do(ctx context.Context, agent *fiber.Agent, authenticated bool, out any) error {
	if err := ctx.Err(); err != nil {
		fiber.ReleaseAgent(agent)
		return err
	}
	if authenticated {
		if c.token == "" {
			fiber.ReleaseAgent(agent)
			return &APIError{Status: fiber.StatusUnauthorized, Code: "UNAUTHORIZED", Message: "not logged in"}
		}
		agent.Set(fiber.HeaderAuthorization, "Bearer "+c.token)
	}
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	if timeout > 0 {
		agent.Timeout(timeout)
	}

	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("request failed: %w", errors.Join(errs...))
	}
	if status >= fiber.StatusBadRequest {
		return decodeError(status, body)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(status int, body []byte) error {
	var envelope struct {
		Error struct {
			Code    string         `json:"code"`
			Message string         `json:"message"`
			Details map[string]any `json:"details"`
		} `json:"error"`
		Message string `json:"message"`
	}
	apiErr := &APIError{Status: status}
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
		apiErr.Details = envelope.Error.Details
		if apiErr.Message == "" {
			apiErr.Message = envelope.Message
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}
