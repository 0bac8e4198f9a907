package wclogs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"logtime/internal/logging"
)

// ErrAPI marks any failure to fetch or decode a report payload.
var ErrAPI = errors.New("api request failed")

const (
	defaultBaseURL = "https://www.warcraftlogs.com/v1"
	defaultTimeout = 30 * time.Second
)

// Fight mirrors one fight record from the v1 report payload. Upstream keys are
// loosely typed: optional fields decode to nil rather than zero, and Boss is
// the encounter id (zero for trash pulls).
type Fight struct {
	ID                 int64    `json:"id"`
	Boss               int64    `json:"boss"`
	Name               string   `json:"name"`
	StartTime          int64    `json:"start_time"`
	EndTime            *int64   `json:"end_time"`
	Kill               bool     `json:"kill"`
	FightPercentage    *float64 `json:"fightPercentage"`
	BossPercentage     *float64 `json:"bossPercentage"`
	EnemyNPCPercentage *float64 `json:"enemyNPCPercentage"`
}

// Report models the subset of the report document the pipeline consumes.
type Report struct {
	Title  string  `json:"title"`
	Zone   int64   `json:"zone"`
	Start  int64   `json:"start"`
	End    int64   `json:"end"`
	Fights []Fight `json:"fights"`
}

// Client fetches report fight lists from the Warcraft Logs v1 API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(baseURL); trimmed != "" {
			c.baseURL = strings.TrimRight(trimmed, "/")
		}
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithLogger attaches a logger for request debug lines.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Warcraft Logs client. The API key travels as a plain query
// parameter; the v1 API has no other authentication scheme.
func New(apiKey string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("api key required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// FetchReportFights retrieves the fight list for a report. The body is fully
// buffered before decoding; there is no retry and no streaming.
func (c *Client) FetchReportFights(ctx context.Context, reportID string) (*Report, error) {
	reportID = strings.TrimSpace(reportID)
	if reportID == "" {
		return nil, errors.New("report id must not be empty")
	}
	endpoint, err := url.Parse(c.baseURL + "/report/fights/" + url.PathEscape(reportID))
	if err != nil {
		return nil, fmt.Errorf("parse report url: %w", err)
	}
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		c.logger.Debug("report fetch failed",
			"request_id", requestID, "report", reportID, "latency", latency, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrAPI, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("report fetch",
		"request_id", requestID, "report", reportID,
		"status", resp.StatusCode, "latency", latency)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w with status %d: %s", ErrAPI, resp.StatusCode, statusReason(resp))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", ErrAPI, err)
	}
	var payload Report
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode report response: %w", ErrAPI, err)
	}
	return &payload, nil
}

// statusReason extracts the server reason phrase, falling back to the
// canonical text when the status line carries none.
func statusReason(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}
