package koios

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// ErrorKind classifies a failed call by the stage it failed at.
type ErrorKind string

const (
	// KindError means the server replied with a failure status.
	KindError ErrorKind = "error"
	// KindNoResponse means the request was sent but no response arrived.
	KindNoResponse ErrorKind = "no-response"
	// KindBadRequest means the call failed before the request was sent.
	KindBadRequest ErrorKind = "bad-request"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid koios configuration")
	// ErrUnknownEndpoint indicates a call to an endpoint name not in the table
	ErrUnknownEndpoint = errors.New("unknown endpoint")
	// ErrMissingParam indicates a required parameter was not supplied
	ErrMissingParam = errors.New("missing required parameter")
	// ErrUnknownParam indicates a parameter the endpoint does not declare
	ErrUnknownParam = errors.New("undeclared parameter")
	// ErrParamType indicates a value of the wrong shape for its parameter
	ErrParamType = errors.New("parameter has wrong type")
	// ErrNoResponse indicates a transport returned neither a response nor an error
	ErrNoResponse = errors.New("transport returned no response")
)

// ClientError is the error half of an Outcome. Kind is derived only from the
// stage the failure happened at; Message and Name are copied from the failure
// and Cause keeps it for inspection.
type ClientError struct {
	Kind    ErrorKind
	Message string
	Name    string
	Cause   error
}

// Error implements the error interface
func (e *ClientError) Error() string {
	return fmt.Sprintf("koios %s: %s: %s", e.Kind, e.Name, e.Message)
}

// Unwrap returns the underlying failure.
func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Response returns the server response carried by an "error" kind failure.
func (e *ClientError) Response() *Response {
	var te *TransportError
	if errors.As(e.Cause, &te) {
		return te.Response
	}
	return nil
}

// StatusCode returns the HTTP status of the server response, or 0 if none arrived.
func (e *ClientError) StatusCode() int {
	if resp := e.Response(); resp != nil {
		return resp.StatusCode
	}
	return 0
}

// IsNotFound checks if the server answered 404
func (e *ClientError) IsNotFound() bool {
	return e.StatusCode() == 404
}

// IsUnauthorized checks if the server rejected the credentials
func (e *ClientError) IsUnauthorized() bool {
	code := e.StatusCode()
	return code == 401 || code == 403
}

// IsServerError checks if the server answered with a 5xx status
func (e *ClientError) IsServerError() bool {
	return e.StatusCode() >= 500
}

// Canceled reports whether the call failed because its context was canceled.
// The Kind is unaffected: cancellation before send is "bad-request", after
// send "no-response".
func (e *ClientError) Canceled() bool {
	return errors.Is(e.Cause, context.Canceled)
}

// Timeout reports whether the call failed on a deadline or transport timeout.
func (e *ClientError) Timeout() bool {
	if errors.Is(e.Cause, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(e.Cause, &ne) && ne.Timeout()
}

// ParamError is returned when call parameters do not match the endpoint's
// declaration. It is raised before any request is built.
type ParamError struct {
	Endpoint string
	Param    string
	Err      error
}

func (e *ParamError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("%s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Endpoint, e.Param, e.Err)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

// ErrorName names the failure for ClientError.Name.
func (e *ParamError) ErrorName() string {
	if errors.Is(e.Err, ErrUnknownEndpoint) {
		return "EndpointError"
	}
	return "ParamError"
}

// namer is implemented by failures that carry their own name.
type namer interface {
	ErrorName() string
}

// errorName returns the failure's own name, falling back to its Go type.
func errorName(err error) string {
	var n namer
	if errors.As(err, &n) {
		return n.ErrorName()
	}
	name := fmt.Sprintf("%T", err)
	name = strings.TrimPrefix(name, "*")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
