package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Kael08/JOB-PORTAL/internal/pkg/circuitbreaker"
	"github.com/Kael08/JOB-PORTAL/internal/pkg/logger"
	"github.com/Kael08/JOB-PORTAL/internal/pkg/retry"
)

// EnhancedClient wraps http.Client with retry and circuit breaker functionality
type EnhancedClient struct {
	client         *http.Client
	retrier        *retry.Retrier
	circuitManager *circuitbreaker.Manager
	logger         *logger.ZapLogger
}

// ClientConfig configures an EnhancedClient
type ClientConfig struct {
	Timeout time.Duration
	Retry   retry.Config
	Breaker circuitbreaker.Config
}

// DefaultClientConfig retries transport errors and 5xx responses, never
// retrying once the caller's context is done
func DefaultClientConfig(timeout time.Duration) ClientConfig {
	retryCfg := retry.DefaultConfig()
	retryCfg.RetryableFunc = IsRetryable

	breakerCfg := circuitbreaker.DefaultConfig("")
	breakerCfg.IsFailure = func(err error) bool {
		return err != nil && !errors.Is(err, context.Canceled)
	}

	return ClientConfig{
		Timeout: timeout,
		Retry:   retryCfg,
		Breaker: breakerCfg,
	}
}

// NewEnhancedClient creates a new enhanced HTTP client
func NewEnhancedClient(log *logger.ZapLogger, config ClientConfig) *EnhancedClient {
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	return &EnhancedClient{
		client:         &http.Client{Timeout: config.Timeout},
		retrier:        retry.New(config.Retry, log),
		circuitManager: circuitbreaker.NewManager(config.Breaker, log),
		logger:         log,
	}
}

// Do executes an HTTP request with retry and circuit breaker protection.
// A 5xx response is reported as *HTTPError with its body closed.
func (c *EnhancedClient) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	host := req.URL.Host
	if host == "" {
		host = "unknown"
	}

	var resp *http.Response

	err := c.circuitManager.Execute(ctx, host, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			r, err := c.client.Do(req.Clone(ctx))
			if err != nil {
				return redactURL(err)
			}

			if r.StatusCode >= http.StatusInternalServerError {
				r.Body.Close()
				return &HTTPError{
					StatusCode: r.StatusCode,
					Message:    fmt.Sprintf("server error from %s", host),
				}
			}

			resp = r
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// Get performs a GET request with enhanced features
func (c *EnhancedClient) Get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, req)
}

// CircuitState returns the breaker state for host
func (c *EnhancedClient) CircuitState(host string) circuitbreaker.State {
	return c.circuitManager.GetOrCreate(host).State()
}

// redactURL drops the query string from transport errors, since it may
// carry credentials
func redactURL(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	target := urlErr.URL
	if u, parseErr := url.Parse(target); parseErr == nil {
		u.RawQuery = ""
		target = u.String()
	}
	return fmt.Errorf("%s %q: %w", urlErr.Op, target, urlErr.Err)
}

// HTTPError represents an HTTP error
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// IsRetryable reports whether a failed attempt may succeed if repeated
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= http.StatusInternalServerError
	}
	return true
}
