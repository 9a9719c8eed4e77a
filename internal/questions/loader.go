package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/abhisek/quizgame/internal/quiz"
)

// maxBodyBytes bounds the payload read from the endpoint.
const maxBodyBytes = 4 << 20

// DefaultTimeout bounds a fetch when no positive timeout is configured.
const DefaultTimeout = 10 * time.Second

// Loader fetches the question set for one session.
type Loader interface {
	Load(ctx context.Context) ([]quiz.Question, error)
}

// HTTPLoader fetches questions with a single GET to a fixed endpoint.
// Concurrent Load calls share one in-flight request.
type HTTPLoader struct {
	endpoint  string
	client    *http.Client
	timeout   time.Duration
	userAgent string
	logger    *zap.Logger
	sf        singleflight.Group
}

// Option configures an HTTPLoader.
type Option func(*HTTPLoader)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(l *HTTPLoader) { l.client = c }
}

// WithTimeout bounds each fetch. Non-positive values keep DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(l *HTTPLoader) {
		if d > 0 {
			l.timeout = d
		}
	}
}

// WithLogger sets the logger used for fetch diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(l *HTTPLoader) { l.logger = logger }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(l *HTTPLoader) { l.userAgent = ua }
}

// NewHTTPLoader creates a loader for endpoint.
func NewHTTPLoader(endpoint string, opts ...Option) *HTTPLoader {
	l := &HTTPLoader{
		endpoint:  endpoint,
		client:    http.DefaultClient,
		timeout:   DefaultTimeout,
		userAgent: "quizgame",
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Endpoint returns the URL questions are fetched from.
func (l *HTTPLoader) Endpoint() string {
	return l.endpoint
}

// Load fetches and validates the question set. The shared request is not
// tied to any single caller's context; each caller stops waiting when its
// own ctx is done.
func (l *HTTPLoader) Load(ctx context.Context) ([]quiz.Question, error) {
	ch := l.sf.DoChan(l.endpoint, func() (any, error) {
		return l.fetch(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]quiz.Question), nil
	}
}

func (l *HTTPLoader) fetch(ctx context.Context) ([]quiz.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	start := time.Now()
	log := l.logger.With(zap.String("endpoint", l.endpoint))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint, nil)
	if err != nil {
		return nil, &FetchError{URL: l.endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", l.userAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		log.Warn("fetch questions", zap.Error(err), zap.Duration("latency", time.Since(start)))
		return nil, &FetchError{URL: l.endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("fetch questions",
			zap.Int("status", resp.StatusCode),
			zap.Duration("latency", time.Since(start)))
		return nil, &FetchError{
			URL:        l.endpoint,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &FetchError{URL: l.endpoint, Err: fmt.Errorf("read body: %w", err)}
	}

	qs, err := Decode(body)
	if err != nil {
		log.Warn("decode questions", zap.Error(err))
		return nil, err
	}

	log.Info("fetched questions",
		zap.Int("status", resp.StatusCode),
		zap.Int("count", len(qs)),
		zap.Duration("latency", time.Since(start)))
	return qs, nil
}

// Decode validates and decodes a raw questions payload.
func Decode(raw []byte) ([]quiz.Question, error) {
	if err := validatePayload(raw); err != nil {
		return nil, err
	}
	var p quiz.Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, &PayloadError{Err: err}
	}
	return p.Questions, nil
}
