package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
	"golang.org/x/time/rate"

	"github.com/okian/squadraft/pkg/metrics"
)

// Source yields a raw pool payload.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]byte, error)
}

// FixtureSource yields the fixture list payload.
type FixtureSource interface {
	FetchFixtures(ctx context.Context) ([]byte, error)
}

// FileSource reads pre-fetched payloads from disk.
type FileSource struct {
	path     string
	fixtures string
}

// FileOption configures a FileSource.
type FileOption func(*FileSource)

// WithFixturesFile sets the fixtures payload path.
func WithFixturesFile(path string) FileOption {
	return func(s *FileSource) { s.fixtures = path }
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string, opts ...FileOption) *FileSource {
	s := &FileSource{path: path}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *FileSource) Name() string { return "file" }

func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	return readFile(ctx, s.path)
}

// FetchFixtures fails with ErrNoFixtures when no fixtures file is set.
func (s *FileSource) FetchFixtures(ctx context.Context) ([]byte, error) {
	if s.fixtures == "" {
		return nil, ErrNoFixtures
	}
	return readFile(ctx, s.fixtures)
}

func readFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	return data, nil
}

const (
	bootstrapPath    = "/bootstrap-static/"
	fixturesPath     = "/fixtures/"
	defaultUserAgent = "squadraft/1.0"
	maxBodyBytes     = 32 << 20
)

// statusError reports a non-200 answer. It unwraps to ErrStatus.
type statusError struct {
	code    int
	url     string
	status  string
	snippet string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("GET %s: %s (%s)", e.url, e.status, e.snippet)
}

func (e *statusError) Unwrap() error { return ErrStatus }

// HTTPSource fetches bootstrap-static and the fixture list from the FPL
// API. Transport errors, 5xx and 429 answers are retried with backoff.
type HTTPSource struct {
	baseURL    string
	client     *http.Client
	limiter    *rate.Limiter
	userAgent  string
	maxRetries int
	backoff    time.Duration
	executor   failsafe.Executor[[]byte]
}

// HTTPOption configures an HTTPSource.
type HTTPOption func(*HTTPSource)

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(s *HTTPSource) {
		if c != nil {
			s.client = c
		}
	}
}

// WithTimeout sets the per-request timeout of the client.
func WithTimeout(d time.Duration) HTTPOption {
	return func(s *HTTPSource) {
		if d > 0 {
			s.client.Timeout = d
		}
	}
}

// WithRateLimit bounds requests per second (burst 1). Retries count too.
func WithRateLimit(perSecond float64) HTTPOption {
	return func(s *HTTPSource) {
		if perSecond > 0 {
			s.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) HTTPOption {
	return func(s *HTTPSource) {
		if ua != "" {
			s.userAgent = ua
		}
	}
}

// WithRetry sets the retry budget; backoff grows from delay up to 10x delay.
func WithRetry(maxRetries int, delay time.Duration) HTTPOption {
	return func(s *HTTPSource) {
		if maxRetries >= 0 {
			s.maxRetries = maxRetries
		}
		if delay > 0 {
			s.backoff = delay
		}
	}
}

// NewHTTPSource creates a source rooted at baseURL.
func NewHTTPSource(baseURL string, opts ...HTTPOption) *HTTPSource {
	s := &HTTPSource{
		baseURL:    strings.TrimRight(baseURL, "/"),
		client:     &http.Client{Timeout: 20 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(2), 1),
		userAgent:  defaultUserAgent,
		maxRetries: 2,
		backoff:    250 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}

	retry := retrypolicy.NewBuilder[[]byte]().
		HandleIf(func(_ []byte, err error) bool { return retryable(err) }).
		WithBackoff(s.backoff, 10*s.backoff).
		WithMaxRetries(s.maxRetries).
		ReturnLastFailure().
		Build()
	s.executor = failsafe.With[[]byte](retry)
	return s
}

func (s *HTTPSource) Name() string { return "http" }

func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	return s.get(ctx, bootstrapPath)
}

// FetchFixtures fetches the full season fixture list.
func (s *HTTPSource) FetchFixtures(ctx context.Context) ([]byte, error) {
	return s.get(ctx, fixturesPath)
}

func (s *HTTPSource) get(ctx context.Context, path string) ([]byte, error) {
	return s.executor.WithContext(ctx).Get(func() ([]byte, error) {
		return s.fetchOnce(ctx, path)
	})
}

func (s *HTTPSource) fetchOnce(ctx context.Context, path string) ([]byte, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit: %w", ErrFetch, err)
	}

	url := s.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		metrics.RecordProviderRequest("error")
		return nil, fmt.Errorf("%w: GET %s: %w", ErrFetch, url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	metrics.RecordProviderRequest(strconv.Itoa(resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &statusError{
			code:    resp.StatusCode,
			url:     url,
			status:  resp.Status,
			snippet: strings.TrimSpace(string(snippet)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrFetch, err)
	}
	return body, nil
}

// retryable reports whether a failed attempt is worth repeating.
func retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) && !isClientTimeout(err) {
		return false
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.code >= http.StatusInternalServerError || se.code == http.StatusTooManyRequests
	}
	return errors.Is(err, ErrFetch)
}

// isClientTimeout separates http.Client timeouts from caller cancellation.
func isClientTimeout(err error) bool {
	var ne interface{ Timeout() bool }
	return errors.As(err, &ne) && ne.Timeout()
}
