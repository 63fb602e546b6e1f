package koios

import (
	"bytes"
	"encoding/json"
	"maps"
	"net/http"
	"slices"
	"strings"
)

// Request describes one HTTP request for a Transport to execute.
type Request struct {
	Endpoint string
	Method   string
	// Path is the endpoint path without query string.
	Path string
	// Query starts with "?" and is sent verbatim.
	Query string
	// Body is nil for GET endpoints.
	Body *Body
	// Header holds the caller's per-call headers only; the transport merges
	// them over its defaults.
	Header http.Header
}

// URL returns the path and query joined.
func (r *Request) URL() string {
	return r.Path + r.Query
}

// Field is one declared body parameter. Absent fields are still listed so the
// transport sees the full declaration.
type Field struct {
	Name    string
	Value   Value
	Present bool
}

// Body is a JSON object whose keys are an endpoint's declared parameters.
type Body struct {
	Fields []Field
}

// Get returns the value of a present field.
func (b *Body) Get(name string) (Value, bool) {
	for _, f := range b.Fields {
		if f.Name == name && f.Present {
			return f.Value, true
		}
	}
	return Value{}, false
}

// MarshalJSON encodes present fields in declared order. Absent fields are
// omitted.
func (b *Body) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, f := range b.Fields {
		if !f.Present {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false

		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// buildRequest validates params against ep and assembles the request.
func buildRequest(ep Endpoint, params Params, co callOptions) (*Request, error) {
	if err := validateParams(ep, params); err != nil {
		return nil, err
	}

	req := &Request{
		Endpoint: ep.Name,
		Method:   ep.Method,
		Path:     ep.Path,
		Header:   co.header.Clone(),
	}

	if ep.ParamTransport() == ParamsInBody {
		req.Query = buildQuery(nil, nil, co.extraQuery)
		req.Body = buildBody(ep.Params, params)
		return req, nil
	}

	req.Query = buildQuery(ep.Params, params, co.extraQuery)
	return req, nil
}

// buildQuery emits "?" followed by "&name=value" for every present declared
// parameter in declared order, then extra verbatim. Values are not escaped.
func buildQuery(declared []Param, params Params, extra string) string {
	var b strings.Builder
	b.WriteByte('?')
	for _, p := range declared {
		v, ok := params[p.Name]
		if !ok {
			continue
		}
		b.WriteByte('&')
		b.WriteString(p.Name)
		b.WriteByte('=')
		b.WriteString(v.Text())
	}
	b.WriteString(extra)
	return b.String()
}

func buildBody(declared []Param, params Params) *Body {
	body := &Body{Fields: make([]Field, 0, len(declared))}
	for _, p := range declared {
		v, ok := params[p.Name]
		body.Fields = append(body.Fields, Field{Name: p.Name, Value: v, Present: ok})
	}
	return body
}

func validateParams(ep Endpoint, params Params) error {
	for _, name := range slices.Sorted(maps.Keys(params)) {
		p, ok := ep.Param(name)
		if !ok {
			return &ParamError{Endpoint: ep.Name, Param: name, Err: ErrUnknownParam}
		}
		if !params[name].Accepts(p.Type) {
			return &ParamError{Endpoint: ep.Name, Param: name, Err: ErrParamType}
		}
	}

	for _, p := range ep.Params {
		if !p.Required {
			continue
		}
		if _, ok := params[p.Name]; !ok {
			return &ParamError{Endpoint: ep.Name, Param: p.Name, Err: ErrMissingParam}
		}
	}

	return nil
}
