package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dghubble/sling"
	"github.com/pfrederiksen/escala/internal/config"
	"github.com/pfrederiksen/escala/internal/logger"
	"github.com/pfrederiksen/escala/internal/schedule"
	"github.com/sirupsen/logrus"
)

const (
	UserAgent = "escala-cli/1.0 (github.com/pfrederiksen/escala)"

	// maxErrorBody caps how much of a failed response is kept in the error
	maxErrorBody = 512
)

// pageQuery is the query string of the schedules endpoint
type pageQuery struct {
	Page  int `url:"page"`
	Limit int `url:"limit"`
}

// Fetcher handles fetching schedules for a scheduled area
type Fetcher struct {
	client  *http.Client
	baseURL string
	limit   int
	log     logrus.FieldLogger
}

// Option customizes a Fetcher
type Option func(*Fetcher)

// WithHTTPClient replaces the HTTP client built from the config
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(l logrus.FieldLogger) Option {
	return func(f *Fetcher) { f.log = l }
}

// New creates a Fetcher for cfg.BaseURL requesting cfg.Limit items per page
func New(cfg config.Config, opts ...Option) *Fetcher {
	f := &Fetcher{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/") + "/",
		limit:   cfg.Limit,
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// newRequest builds the GET request for token's schedules
func (f *Fetcher) newRequest(ctx context.Context, token string) (*http.Request, error) {
	path := fmt.Sprintf("scheduled-areas/%s/schedules/optimized", url.PathEscape(token))

	req, err := sling.New().
		Base(f.baseURL).
		Get(path).
		QueryStruct(&pageQuery{Page: 1, Limit: f.limit}).
		Set("User-Agent", UserAgent).
		Request()
	if err != nil {
		return nil, err
	}
	return req.WithContext(ctx), nil
}

// FetchSchedules fetches the first page of schedules for token
func (f *Fetcher) FetchSchedules(ctx context.Context, token string) (*schedule.Response, error) {
	req, err := f.newRequest(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	log := f.log.WithFields(logger.Fields{
		"method": req.Method,
		"path":   req.URL.Path,
		"limit":  f.limit,
	})
	log.Debug("fetching schedules")

	started := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &schedule.RequestError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &schedule.RequestError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Err:        fmt.Errorf("reading body: %w", err),
		}
	}

	log.WithFields(logger.Fields{
		"status":   resp.StatusCode,
		"bytes":    len(body),
		"duration": time.Since(started).Round(time.Millisecond).String(),
	}).Debug("received response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &schedule.RequestError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       truncate(strings.TrimSpace(string(body)), maxErrorBody),
		}
	}

	data, err := schedule.DecodeResponse(body)
	if err != nil {
		return nil, err
	}

	log.WithField("items", len(data.Data)).Debug("decoded schedules")
	return data, nil
}

// truncate shortens s to at most n bytes without splitting a UTF-8 sequence
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
