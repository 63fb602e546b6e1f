package koios

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Response is a settled HTTP exchange. The body is the raw payload; it is
// never reinterpreted by the client.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
	Request    *Request
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Outcome carries exactly one of Success or Error.
type Outcome struct {
	Success *Response
	Error   *ClientError
}

// OK reports whether the call succeeded.
func (o Outcome) OK() bool {
	return o.Error == nil && o.Success != nil
}

// Result converts the outcome into the usual (value, error) pair.
func (o Outcome) Result() (*Response, error) {
	if o.Error != nil {
		return nil, o.Error
	}
	return o.Success, nil
}

// Kind returns the error kind, or "" on success.
func (o Outcome) Kind() ErrorKind {
	if o.Error != nil {
		return o.Error.Kind
	}
	return ""
}

// Normalize turns the result of one transport attempt into an Outcome.
//
// A failure carrying a server response is KindError; a failure whose request
// was sent without a response arriving is KindNoResponse; anything else,
// including errors that are not a *TransportError, is KindBadRequest.
func Normalize(resp *Response, err error) Outcome {
	if err == nil {
		if resp == nil {
			err = ErrNoResponse
		} else {
			return Outcome{Success: resp}
		}
	}

	ce := &ClientError{
		Kind:    KindBadRequest,
		Message: err.Error(),
		Name:    errorName(err),
		Cause:   err,
	}

	var te *TransportError
	if errors.As(err, &te) {
		switch {
		case te.Response != nil:
			ce.Kind = KindError
		case te.RequestSent:
			ce.Kind = KindNoResponse
		}
	}

	return Outcome{Error: ce}
}

// Decode unmarshals a successful outcome's body into T.
func Decode[T any](o Outcome) (T, error) {
	var v T
	resp, err := o.Result()
	if err != nil {
		return v, err
	}
	if err := resp.Decode(&v); err != nil {
		return v, fmt.Errorf("failed to parse response: %w", err)
	}
	return v, nil
}
