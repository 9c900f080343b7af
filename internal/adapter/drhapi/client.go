package drhapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"time"

	"drh-client/internal/config"
	"drh-client/internal/domain"
	"drh-client/internal/port"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

var (
	_ port.DRHReader = (*Client)(nil)
	_ port.DRHWriter = (*Client)(nil)
)

// Client talks to the DRH public API. Reads go through a resty client with
// exponential backoff; writes use a second client without retries.
type Client struct {
	read   *resty.Client
	write  *resty.Client
	apiKey string
	logger *zap.Logger
}

// Option customises a Client.
type Option func(*options)

type options struct {
	jitter     func(max time.Duration) time.Duration
	httpClient *http.Client
}

// WithJitter replaces the random jitter added to each backoff delay.
func WithJitter(fn func(max time.Duration) time.Duration) Option {
	return func(o *options) { o.jitter = fn }
}

// WithHTTPClient sets the underlying http.Client of both resty clients.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

func NewClient(cfg config.DRHConfig, logger *zap.Logger, opts ...Option) *Client {
	o := options{jitter: randomJitter}
	for _, opt := range opts {
		opt(&o)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	baseURL := cfg.APIBaseURL()

	newResty := func() *resty.Client {
		c := resty.New()
		if o.httpClient != nil {
			c = resty.NewWithClient(o.httpClient)
		}
		return c.SetLogger(logger.Sugar())
	}

	read := newResty().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	configureRetry(read, cfg.Retry, o.jitter, logger)

	write := newResty().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &Client{
		read:   read,
		write:  write,
		apiKey: cfg.APIKey,
		logger: logger,
	}
}

// configureRetry retries transport errors, 429 and 5xx replies, and bodies
// that are not JSON. The delay before attempt n+1 is
// min(base*2^(n-1), max) plus up to 10% jitter.
func configureRetry(c *resty.Client, cfg config.RetryConfig, jitter func(time.Duration) time.Duration, logger *zap.Logger) {
	if cfg.MaxRetries <= 1 {
		return
	}
	c.SetRetryCount(cfg.MaxRetries - 1).
		SetRetryWaitTime(cfg.BaseDelay).
		SetRetryMaxWaitTime(cfg.MaxDelay + cfg.MaxDelay/10).
		AddRetryCondition(shouldRetry).
		SetRetryAfter(func(_ *resty.Client, resp *resty.Response) (time.Duration, error) {
			attempt := 1
			if resp != nil && resp.Request != nil {
				attempt = resp.Request.Attempt
			}
			delay := BackoffDelay(cfg.BaseDelay, cfg.MaxDelay, attempt)
			return delay + jitter(delay/10), nil
		}).
		AddRetryHook(func(resp *resty.Response, err error) {
			fields := []zap.Field{zap.Error(err)}
			if resp != nil {
				fields = append(fields,
					zap.Int("status", resp.StatusCode()),
					zap.String("url", resp.Request.URL),
					zap.Int("attempt", resp.Request.Attempt),
				)
			}
			logger.Warn("DRH request failed, retrying", fields...)
		})
}

func shouldRetry(resp *resty.Response, err error) bool {
	if resp != nil && resp.Request != nil && resp.Request.Context().Err() != nil {
		return false
	}
	if err != nil {
		return true
	}
	if resp == nil {
		return false
	}
	status := resp.StatusCode()
	if status == http.StatusTooManyRequests || status >= http.StatusInternalServerError {
		return true
	}
	return status < http.StatusMultipleChoices && !json.Valid(resp.Body())
}

// BackoffDelay is the delay without jitter that precedes the retry following
// the given 1-based attempt.
func BackoffDelay(base, max time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	delay := base
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= max {
			return max
		}
	}
	if delay > max {
		return max
	}
	return delay
}

func randomJitter(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return time.Duration(rand.Int64N(int64(max)))
}

// get issues a read request and decodes the JSON reply into out.
func (c *Client) get(ctx context.Context, path string, pathParams, query map[string]string, out interface{}) error {
	raw, err := c.getRaw(ctx, path, pathParams, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return domain.NewError(domain.CodeUpstream, fmt.Sprintf("failed to decode %s", path), err)
	}
	return nil
}

func (c *Client) getRaw(ctx context.Context, path string, pathParams, query map[string]string) (json.RawMessage, error) {
	req := c.read.R().SetContext(ctx)
	if pathParams != nil {
		req.SetPathParams(pathParams)
	}
	if query != nil {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, domain.NewError(domain.CodeUpstream, fmt.Sprintf("GET %s failed", path), err)
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	if !json.Valid(resp.Body()) {
		return nil, domain.NewError(domain.CodeUpstream, fmt.Sprintf("GET %s returned a body that is not JSON", resp.Request.URL), nil)
	}

	c.logger.Debug("DRH request completed",
		zap.String("url", resp.Request.URL),
		zap.Int("attempts", resp.Request.Attempt),
		zap.Duration("duration", resp.Time()),
	)
	return json.RawMessage(resp.Body()), nil
}

// post sends a JSON body with the Api-Key header. It is never retried.
func (c *Client) post(ctx context.Context, path string, pathParams map[string]string, body interface{}) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, domain.NewInvalidInputError("DRH api key is not configured")
	}
	req := c.write.R().
		SetContext(ctx).
		SetHeader("Authorization", "Api-Key "+c.apiKey).
		SetBody(body)
	if pathParams != nil {
		req.SetPathParams(pathParams)
	}

	resp, err := req.Post(path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, domain.NewError(domain.CodeUpstream, fmt.Sprintf("POST %s failed", path), err)
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}

	c.logger.Info("DRH write accepted",
		zap.String("url", resp.Request.URL),
		zap.Int("status", resp.StatusCode()),
	)
	if len(resp.Body()) == 0 || !json.Valid(resp.Body()) {
		return json.RawMessage("null"), nil
	}
	return json.RawMessage(resp.Body()), nil
}

func checkResponse(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	if resp.StatusCode() == http.StatusNotFound {
		return domain.NewNotFoundError(fmt.Sprintf("%s was not found", resp.Request.URL)).
			WithContext("status", resp.StatusCode())
	}
	return domain.NewUpstreamError(resp.Request.Method, resp.Request.URL, resp.StatusCode(), truncate(resp.String(), 512))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// IsNotFound reports whether err is a DRH 404.
func IsNotFound(err error) bool {
	var de *domain.DomainError
	return errors.As(err, &de) && de.Code == domain.CodeNotFound
}
