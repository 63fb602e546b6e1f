package koios

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
)

// Transport executes a request description against the remote service.
//
// A failed attempt must be reported as a *TransportError (or wrap one) for the
// normalizer to tell a server reply from a lost request; any other error is
// treated as a failure before send.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// TransportError is a failed transport attempt. Response is set when the
// server replied; RequestSent is set once the request was handed to the
// network.
type TransportError struct {
	Name        string
	Message     string
	Response    *Response
	RequestSent bool
	Err         error
}

func (e *TransportError) Error() string {
	return e.Message
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ErrorName names the failure for ClientError.Name.
func (e *TransportError) ErrorName() string {
	return e.Name
}

// HTTPTransport is the default Transport, backed by an *http.Client.
type HTTPTransport struct {
	baseURL    string
	httpClient *http.Client
	header     http.Header
}

// NewHTTPTransport creates a transport sending requests to baseURL with the
// given default headers. Per-call headers override them.
func NewHTTPTransport(baseURL string, httpClient *http.Client, header http.Header) *HTTPTransport {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTPTransport{
		baseURL:    baseURL,
		httpClient: httpClient,
		header:     header.Clone(),
	}
}

// Do performs the request. Non-2xx replies are returned as a *TransportError
// carrying the response.
func (t *HTTPTransport) Do(ctx context.Context, r *Request) (*Response, error) {
	var body io.Reader
	if r.Body != nil {
		data, err := json.Marshal(r.Body)
		if err != nil {
			return nil, &TransportError{
				Name:    "RequestError",
				Message: fmt.Sprintf("failed to encode request body: %v", err),
				Err:     err,
			}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, t.baseURL+r.URL(), body)
	if err != nil {
		return nil, &TransportError{
			Name:    "RequestError",
			Message: fmt.Sprintf("failed to create request: %v", err),
			Err:     err,
		}
	}

	for key, values := range t.header {
		req.Header[key] = append([]string(nil), values...)
	}
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range r.Header {
		req.Header[http.CanonicalHeaderKey(key)] = append([]string(nil), values...)
	}

	// Aborted before anything was sent
	if err := ctx.Err(); err != nil {
		return nil, sendError(err, false)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, sendError(err, true)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, sendError(fmt.Errorf("failed to read response body: %w", err), true)
	}

	out := &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       data,
		Request:    r,
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{
			Name:        "ResponseError",
			Message:     fmt.Sprintf("request failed with status code %d", resp.StatusCode),
			Response:    out,
			RequestSent: true,
		}
	}

	return out, nil
}

// sendError wraps a failure that happened while sending or awaiting a reply.
func sendError(err error, sent bool) *TransportError {
	name := "NetworkError"
	var ne net.Error
	switch {
	case errors.Is(err, context.Canceled):
		name = "CanceledError"
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &ne) && ne.Timeout():
		name = "TimeoutError"
	}
	return &TransportError{
		Name:        name,
		Message:     err.Error(),
		RequestSent: sent,
		Err:         err,
	}
}
