// Package jira implements a minimal Jira REST client for field enumeration
// and issue reads.
//
// The client is deliberately small: basic auth, bounded retries with
// exponential backoff for transient failures, and a client-side rate limiter
// so bursts of tool calls do not trip the backend's throttling.
package jira

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/meridian-labs/jira-mcp/internal/discovery"
)

// Errors for client operations.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("authentication failed")
)

const (
	defaultTimeout     = 30 * time.Second
	defaultMaxRetries  = 3
	defaultRateLimit   = 10 // requests per second
	maxResponseBody    = 10 * 1024 * 1024
	defaultMaxResults  = 50
	searchResultsLimit = 100
)

// Config configures the Jira client.
type Config struct {
	// BaseURL is the Jira instance root, e.g. "https://example.atlassian.net".
	BaseURL string

	// Email and APIToken are the basic-auth credentials.
	Email    string
	APIToken string

	// Timeout bounds a single HTTP request. Defaults to 30s.
	Timeout time.Duration

	// MaxRetries bounds retry attempts for transient failures. Defaults to 3.
	MaxRetries int

	// RequestsPerSecond is the client-side rate limit. Defaults to 10.
	RequestsPerSecond float64
}

// Client is a Jira REST API client. It implements discovery.FieldClient.
type Client struct {
	base       *url.URL
	email      string
	apiToken   string
	http       *http.Client
	limiter    *rate.Limiter
	maxRetries int
	logger     *zap.Logger

	// retryInterval seeds the exponential backoff. Shortened in tests.
	retryInterval time.Duration
}

// NewClient creates a Jira client. A missing or unparseable base URL fails
// here, not at first request.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("jira base URL is required")
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid jira base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("jira base URL must be http or https, got %q", cfg.BaseURL)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRateLimit
	}

	return &Client{
		base:          base,
		email:         cfg.Email,
		apiToken:      cfg.APIToken,
		http:          &http.Client{Timeout: timeout},
		limiter:       rate.NewLimiter(rate.Limit(rps), int(rps)),
		maxRetries:    maxRetries,
		logger:        logger,
		retryInterval: 500 * time.Millisecond,
	}, nil
}

// ListFields enumerates all field descriptors known to the Jira instance.
func (c *Client) ListFields(ctx context.Context) ([]discovery.RawField, error) {
	var fields []discovery.RawField
	if err := c.getJSON(ctx, "/rest/api/2/field", nil, &fields); err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}
	return fields, nil
}

// GetIssue fetches one issue by key. When fields is non-empty, only those
// top-level fields are requested from the backend.
func (c *Client) GetIssue(ctx context.Context, key string, fields []string) (map[string]any, error) {
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("issue key is required")
	}

	query := url.Values{}
	if len(fields) > 0 {
		query.Set("fields", strings.Join(fields, ","))
	}

	var issue map[string]any
	if err := c.getJSON(ctx, "/rest/api/2/issue/"+url.PathEscape(key), query, &issue); err != nil {
		return nil, fmt.Errorf("get issue %s: %w", key, err)
	}
	return issue, nil
}

// SearchResult is one page of issue search results.
type SearchResult struct {
	StartAt    int              `json:"startAt"`
	MaxResults int              `json:"maxResults"`
	Total      int              `json:"total"`
	Issues     []map[string]any `json:"issues"`
}

// SearchIssues runs a JQL search. maxResults is clamped to the service limit;
// a non-positive value uses the default page size.
func (c *Client) SearchIssues(ctx context.Context, jql string, fields []string, maxResults int) (*SearchResult, error) {
	if strings.TrimSpace(jql) == "" {
		return nil, fmt.Errorf("jql query is required")
	}
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	if maxResults > searchResultsLimit {
		maxResults = searchResultsLimit
	}

	query := url.Values{}
	query.Set("jql", jql)
	query.Set("maxResults", strconv.Itoa(maxResults))
	if len(fields) > 0 {
		query.Set("fields", strings.Join(fields, ","))
	}

	var result SearchResult
	if err := c.getJSON(ctx, "/rest/api/2/search", query, &result); err != nil {
		return nil, fmt.Errorf("search issues: %w", err)
	}
	return &result, nil
}

// getJSON performs a rate-limited GET with retries and decodes the JSON
// response into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := *c.base
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}
	requestID := uuid.NewString()

	operation := func() ([]byte, error) {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, backoff.Permanent(err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Request-Id", requestID)
		if c.email != "" || c.apiToken != "" {
			req.SetBasicAuth(c.email, c.apiToken)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			c.logger.Debug("jira request failed, will retry",
				zap.String("request_id", requestID),
				zap.String("path", path),
				zap.Error(err))
			return nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
		if err != nil {
			return nil, err
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return body, nil
		case resp.StatusCode == http.StatusNotFound:
			return nil, backoff.Permanent(fmt.Errorf("%w: %s", ErrNotFound, path))
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			return nil, backoff.Permanent(fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode))
		case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
			// Transient; retry.
			return nil, fmt.Errorf("jira returned status %d", resp.StatusCode)
		default:
			return nil, backoff.Permanent(fmt.Errorf("jira returned status %d", resp.StatusCode))
		}
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.retryInterval

	body, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(uint(c.maxRetries)))
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
