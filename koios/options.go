package koios

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultTimeout is the HTTP client timeout used when none is configured.
const DefaultTimeout = 30 * time.Second

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	header     http.Header
	transport  Transport
	registerer prometheus.Registerer
}

// WithHTTPClient sets the *http.Client used by the default transport.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout. Expiry after send is reported as
// a "no-response" outcome.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithHeader adds a default header sent with every request.
func WithHeader(key, value string) Option {
	return func(o *clientOptions) {
		o.header.Set(key, value)
	}
}

// WithHeaders adds default headers sent with every request.
func WithHeaders(headers map[string]string) Option {
	return func(o *clientOptions) {
		for k, v := range headers {
			o.header.Set(k, v)
		}
	}
}

// WithTransport replaces the default HTTP transport. The base URL, timeout,
// user agent and default headers are then the transport's concern.
func WithTransport(t Transport) Option {
	return func(o *clientOptions) {
		o.transport = t
	}
}

// WithMetrics registers request metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *clientOptions) {
		o.registerer = reg
	}
}

// CallOption configures a single call.
type CallOption func(*callOptions)

type callOptions struct {
	extraQuery string
	header     http.Header
}

// WithExtraQuery appends raw to the query string verbatim. The caller supplies
// the separator, e.g. "&limit=10&order=block_height.desc".
func WithExtraQuery(raw string) CallOption {
	return func(o *callOptions) {
		o.extraQuery = raw
	}
}

// WithCallHeaders sets headers for this call only. They override the client
// defaults.
func WithCallHeaders(headers map[string]string) CallOption {
	return func(o *callOptions) {
		if o.header == nil {
			o.header = make(http.Header, len(headers))
		}
		for k, v := range headers {
			o.header.Set(k, v)
		}
	}
}

// WithCallHeader sets one header for this call only.
func WithCallHeader(key, value string) CallOption {
	return WithCallHeaders(map[string]string{key: value})
}
