// Package api is the typed HTTP client for the remote interview
// scoring service. It issues the five remote operations and normalizes
// every transport failure into a TransportError.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/prepdeck/prepdeck/internal/models"
)

const defaultTimeout = 30 * time.Second

// Client talks to the interview service over JSON/HTTP.
type Client struct {
	baseURL    string
	http       *http.Client
	maxRetries uint64
	retryBase  time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithMaxRetries sets how many times idempotent operations are retried
// after a retryable failure. Zero disables retries. Respond and create
// are never retried regardless of this setting.
func WithMaxRetries(n uint64) Option {
	return func(c *Client) { c.maxRetries = n }
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		http:       &http.Client{Timeout: defaultTimeout},
		maxRetries: 2,
		retryBase:  250 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateInterview registers a new interview for the given job posting.
// Not retried: creation is not idempotent server-side.
func (c *Client) CreateInterview(ctx context.Context, jobTitle, jobDescription, company string) (*models.InterviewSummary, error) {
	req := CreateInterviewRequest{
		JobTitle:       jobTitle,
		JobDescription: jobDescription,
		Company:        company,
	}
	var out models.InterviewSummary
	if err := c.do(ctx, "create", http.MethodPost, "/interviews/create", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StartInterview begins the interview and returns its first question.
func (c *Client) StartInterview(ctx context.Context, id int) (*StartResult, error) {
	var out StartResult
	path := "/interviews/" + strconv.Itoa(id) + "/start"
	if err := c.doRetry(ctx, "start", http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitAnswer sends the candidate's response to the current question
// and returns the scoring result. Never retried automatically: a blind
// retry risks double-scoring the answer server-side. Callers re-invoke
// explicitly after a failure.
func (c *Client) SubmitAnswer(ctx context.Context, id, questionID int, text string) (*RespondResult, error) {
	req := respondRequest{QuestionID: questionID, ResponseText: text}
	var out RespondResult
	path := "/interviews/" + strconv.Itoa(id) + "/respond"
	if err := c.do(ctx, "respond", http.MethodPost, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetFeedback fetches the terminal feedback report for a completed
// interview.
func (c *Client) GetFeedback(ctx context.Context, id int) (*models.FeedbackReport, error) {
	var out models.FeedbackReport
	path := "/interviews/" + strconv.Itoa(id) + "/feedback"
	if err := c.doRetry(ctx, "feedback", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetHistory lists past interviews, newest first.
func (c *Client) GetHistory(ctx context.Context) ([]models.InterviewSummary, error) {
	var out []models.InterviewSummary
	if err := c.doRetry(ctx, "history", http.MethodGet, "/interviews/history", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// doRetry wraps do with capped exponential backoff for idempotent
// operations. Only retryable transport failures are re-attempted.
func (c *Client) doRetry(ctx context.Context, op, method, path string, body, out any) error {
	if c.maxRetries == 0 {
		return c.do(ctx, op, method, path, body, out)
	}

	b := retry.WithMaxRetries(c.maxRetries, retry.NewExponential(c.retryBase))
	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := c.do(ctx, op, method, path, body, out)
		var te *TransportError
		if errors.As(err, &te) && te.retryable() {
			return retry.RetryableError(err)
		}
		return err
	})
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s request: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096)) //nolint:errcheck
		return &TransportError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s", strings.TrimSpace(string(msg))),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &TransportError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
		}
	}
	return nil
}
