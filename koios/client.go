package koios

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client dispatches Koios endpoint calls. It is immutable after NewClient and
// safe for concurrent use.
type Client struct {
	baseURL   string
	transport Transport
	normalize func(*Response, error) Outcome
	metrics   *Metrics
	logger    zerolog.Logger
}

// NewClient creates a new Koios client for baseURL, e.g.
// "https://api.koios.rest/api/v1". Construction does not contact the server.
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	o := &clientOptions{
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
		header:    make(http.Header),
	}
	for _, opt := range opts {
		opt(o)
	}

	// Ensure baseURL doesn't have trailing slash
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")

	transport := o.transport
	if transport == nil {
		if baseURL == "" {
			return nil, fmt.Errorf("%w: koios URL is required", ErrInvalidConfig)
		}
		u, err := url.Parse(baseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("%w: invalid koios URL %q", ErrInvalidConfig, baseURL)
		}

		httpClient := o.httpClient
		if httpClient == nil {
			httpClient = &http.Client{Timeout: o.timeout}
		}

		header := o.header.Clone()
		if header.Get("Accept") == "" {
			header.Set("Accept", "application/json")
		}
		if header.Get("User-Agent") == "" && o.userAgent != "" {
			header.Set("User-Agent", o.userAgent)
		}
		transport = NewHTTPTransport(baseURL, httpClient, header)
	}

	client := &Client{
		baseURL:   baseURL,
		transport: transport,
		normalize: Normalize,
		logger:    logger,
	}

	if o.registerer != nil {
		metrics, err := NewMetrics(o.registerer)
		if err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		client.metrics = metrics
	}

	return client, nil
}

// BaseURL returns the base URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Call dispatches the named endpoint with params. It never panics or returns a
// raw transport result: every failure, including invalid parameters, settles
// as Outcome.Error. Invalid parameters fail locally without a network attempt.
func (c *Client) Call(ctx context.Context, name string, params Params, opts ...CallOption) Outcome {
	if ctx == nil {
		ctx = context.Background()
	}

	var co callOptions
	for _, opt := range opts {
		opt(&co)
	}

	start := time.Now()
	logger := c.logger.With().
		Str("call_id", uuid.NewString()).
		Str("endpoint", name).
		Logger()

	var out Outcome
	label := name
	ep, ok := LookupEndpoint(name)
	if !ok {
		label = unknownEndpoint
		out = c.normalize(nil, &ParamError{Endpoint: name, Err: ErrUnknownEndpoint})
	} else if req, err := buildRequest(ep, params, co); err != nil {
		out = c.normalize(nil, err)
	} else {
		logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL()).
			Msg("Making Koios API request")
		out = c.normalize(c.transport.Do(ctx, req))
	}

	elapsed := time.Since(start)
	if c.metrics != nil {
		c.metrics.observe(label, out, elapsed)
	}

	if out.Error != nil {
		logger.Debug().
			Str("kind", string(out.Error.Kind)).
			Str("name", out.Error.Name).
			Int("status", out.Error.StatusCode()).
			Dur("duration", elapsed).
			Msg(out.Error.Message)
	} else {
		logger.Debug().
			Int("status", out.Success.StatusCode).
			Int("bytes", len(out.Success.Body)).
			Dur("duration", elapsed).
			Msg("Koios API request succeeded")
	}

	return out
}

// TestConnection verifies the client can reach the service by fetching the tip.
func (c *Client) TestConnection(ctx context.Context) error {
	_, err := c.Tip(ctx).Result()
	return err
}
