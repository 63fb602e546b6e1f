package koios

import (
	"context"
)

// API defines the dispatch surface shared by Client and test doubles.
type API interface {
	// Call dispatches one endpoint by name
	Call(ctx context.Context, name string, params Params, opts ...CallOption) Outcome

	// TestConnection verifies the client can reach Koios
	TestConnection(ctx context.Context) error
}

var _ API = (*Client)(nil)
