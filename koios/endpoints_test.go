package koios

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointTable(t *testing.T) {
	endpoints := Endpoints()
	require.Len(t, endpoints, 66)

	names := make(map[string]bool, len(endpoints))
	for _, ep := range endpoints {
		t.Run(ep.Name, func(t *testing.T) {
			assert.False(t, names[ep.Name], "duplicate endpoint name")
			names[ep.Name] = true

			assert.True(t, strings.HasPrefix(ep.Path, "/"), "path must be absolute")
			assert.NotContains(t, ep.Path, "?")
			assert.Contains(t, []string{http.MethodGet, http.MethodPost}, ep.Method)

			params := make(map[string]bool, len(ep.Params))
			for _, p := range ep.Params {
				assert.False(t, params[p.Name], "duplicate parameter %s", p.Name)
				params[p.Name] = true
				assert.True(t, strings.HasPrefix(p.Name, "_"), "parameter %s", p.Name)

				if ep.Method == http.MethodGet {
					assert.True(t, p.Type.Queryable(), "GET parameter %s has type %s", p.Name, p.Type)
				}
			}

			found, ok := LookupEndpoint(ep.Name)
			require.True(t, ok)
			assert.Equal(t, ep, found)
		})
	}
}

func TestEndpointParamTransport(t *testing.T) {
	assert.Equal(t, ParamsInQuery, mustEndpoint(t, EndpointAccountTxs).ParamTransport())
	assert.Equal(t, ParamsInBody, mustEndpoint(t, EndpointAccountInfo).ParamTransport())
	assert.Equal(t, ParamsInQuery, mustEndpoint(t, EndpointTip).ParamTransport())
}

func TestEndpointRequiredAndOptional(t *testing.T) {
	ep := mustEndpoint(t, EndpointAssetTxs)

	assert.Equal(t, "GET /asset_txs", ep.String())
	assert.Equal(t, []string{"_asset_policy"}, ep.RequiredParams())
	assert.Equal(t, []string{"_asset_name", "_after_block_height", "_history"}, ep.OptionalParams())

	p, ok := ep.Param("_after_block_height")
	require.True(t, ok)
	assert.Equal(t, TypeScalar, p.Type)
	assert.False(t, p.Required)

	_, ok = ep.Param("_nope")
	assert.False(t, ok)

	tip := mustEndpoint(t, EndpointTip)
	assert.Empty(t, tip.RequiredParams())
	assert.Empty(t, tip.OptionalParams())
}

func TestLookupEndpointReturnsCopy(t *testing.T) {
	ep := mustEndpoint(t, EndpointBlockInfo)
	ep.Params[0].Required = false
	ep.Params = append(ep.Params, Param{Name: "_extra"})

	again := mustEndpoint(t, EndpointBlockInfo)
	require.Len(t, again.Params, 1)
	assert.True(t, again.Params[0].Required)
}

func TestLookupEndpointUnknown(t *testing.T) {
	_, ok := LookupEndpoint("NotAnEndpoint")
	assert.False(t, ok)

	_, ok = LookupEndpoint("tip")
	assert.False(t, ok, "names are case sensitive")
}

func TestNetworkURL(t *testing.T) {
	tests := []struct {
		network string
		want    string
		ok      bool
	}{
		{"mainnet", MainnetURL, true},
		{"Preprod", PreprodURL, true},
		{" preview ", PreviewURL, true},
		{"guild", GuildURL, true},
		{"testnet", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.network, func(t *testing.T) {
			got, ok := NetworkURL(tt.network)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, name := range Networks() {
		_, ok := NetworkURL(name)
		assert.True(t, ok, name)
	}
}
