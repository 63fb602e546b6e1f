package koios

import (
	"context"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientMetrics(t *testing.T) {
	server, _ := newRecordingServer(t, http.StatusOK, `[]`)
	reg := prometheus.NewRegistry()
	client := newTestClient(t, server.URL, WithMetrics(reg))
	require.NotNil(t, client.metrics)

	ctx := context.Background()
	client.Tip(ctx)
	client.Tip(ctx)
	client.BlockInfo(ctx, nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(client.metrics.requests.WithLabelValues(EndpointTip, outcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(client.metrics.requests.WithLabelValues(EndpointBlockInfo, string(KindBadRequest))))
	assert.Equal(t, 2, testutil.CollectAndCount(client.metrics.requests, "koios_client_requests_total"))
	assert.Equal(t, 2, testutil.CollectAndCount(client.metrics.duration, "koios_client_request_duration_seconds"))
}

func TestClientMetricsErrorKinds(t *testing.T) {
	server, _ := newRecordingServer(t, http.StatusServiceUnavailable, `{}`)
	reg := prometheus.NewRegistry()
	client := newTestClient(t, server.URL, WithMetrics(reg))

	client.Tip(context.Background())

	assert.Equal(t, 1.0, testutil.ToFloat64(client.metrics.requests.WithLabelValues(EndpointTip, string(KindError))))
}

func TestClientMetricsUnknownEndpoint(t *testing.T) {
	server, rec := newRecordingServer(t, http.StatusOK, `[]`)
	reg := prometheus.NewRegistry()
	client := newTestClient(t, server.URL, WithMetrics(reg))

	ctx := context.Background()
	for _, name := range []string{"Nope", "AlsoNope", "tip"} {
		out := client.Call(ctx, name, nil)
		require.NotNil(t, out.Error)
		assert.Equal(t, KindBadRequest, out.Error.Kind)
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(client.metrics.requests.WithLabelValues(unknownEndpoint, string(KindBadRequest))))
	assert.Equal(t, 1, testutil.CollectAndCount(client.metrics.requests, "koios_client_requests_total"))
	assert.Empty(t, rec.requests())
}

func TestMetricsSharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()

	first, err := NewMetrics(reg)
	require.NoError(t, err)
	second, err := NewMetrics(reg)
	require.NoError(t, err)

	assert.Same(t, first.requests, second.requests)
	assert.Same(t, first.duration, second.duration)
}
