package koios

import (
	"fmt"
	"net/http"
	"slices"
)

// Transport placement of an endpoint's declared parameters.
const (
	ParamsInQuery = "query"
	ParamsInBody  = "body"
)

// Param declares one parameter of an endpoint.
type Param struct {
	Name     string
	Type     ParamType
	Required bool
}

// Endpoint describes one remote operation: its HTTP method, fixed path and
// declared parameters in the order they are serialized.
type Endpoint struct {
	Name   string
	Method string
	Path   string
	Params []Param
}

// ParamTransport reports where the endpoint places its declared parameters.
// GET endpoints use the query string, POST endpoints a JSON body.
func (e Endpoint) ParamTransport() string {
	if e.Method == http.MethodPost {
		return ParamsInBody
	}
	return ParamsInQuery
}

// RequiredParams returns the names of the required parameters in declared order.
func (e Endpoint) RequiredParams() []string {
	var names []string
	for _, p := range e.Params {
		if p.Required {
			names = append(names, p.Name)
		}
	}
	return names
}

// OptionalParams returns the names of the optional parameters in declared order.
func (e Endpoint) OptionalParams() []string {
	var names []string
	for _, p := range e.Params {
		if !p.Required {
			names = append(names, p.Name)
		}
	}
	return names
}

// Param returns the declaration of the named parameter.
func (e Endpoint) Param(name string) (Param, bool) {
	for _, p := range e.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

func (e Endpoint) String() string {
	return fmt.Sprintf("%s %s", e.Method, e.Path)
}

var endpointIndex = make(map[string]int, len(endpointTable))

func init() {
	for i, ep := range endpointTable {
		if _, dup := endpointIndex[ep.Name]; dup {
			panic("koios: duplicate endpoint " + ep.Name)
		}
		endpointIndex[ep.Name] = i
	}
}

// LookupEndpoint returns the descriptor registered under name.
func LookupEndpoint(name string) (Endpoint, bool) {
	i, ok := endpointIndex[name]
	if !ok {
		return Endpoint{}, false
	}
	return cloneEndpoint(endpointTable[i]), true
}

// Endpoints returns a copy of every descriptor in table order.
func Endpoints() []Endpoint {
	out := make([]Endpoint, len(endpointTable))
	for i, ep := range endpointTable {
		out[i] = cloneEndpoint(ep)
	}
	return out
}

func cloneEndpoint(ep Endpoint) Endpoint {
	ep.Params = slices.Clone(ep.Params)
	return ep
}

func get(name, path string, params ...Param) Endpoint {
	return Endpoint{Name: name, Method: http.MethodGet, Path: path, Params: params}
}

func post(name, path string, params ...Param) Endpoint {
	return Endpoint{Name: name, Method: http.MethodPost, Path: path, Params: params}
}

func req(name string, t ParamType) Param {
	return Param{Name: name, Type: t, Required: true}
}

func opt(name string, t ParamType) Param {
	return Param{Name: name, Type: t}
}
