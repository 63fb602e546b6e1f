package koios

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEndpoint(t *testing.T, name string) Endpoint {
	t.Helper()
	ep, ok := LookupEndpoint(name)
	require.True(t, ok, "endpoint %s not registered", name)
	return ep
}

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		params   Params
		extra    string
		want     string
	}{
		{
			name:     "no params",
			endpoint: EndpointTip,
			want:     "?",
		},
		{
			name:     "extra query only",
			endpoint: EndpointBlocks,
			extra:    "&limit=5&order=block_height.desc",
			want:     "?&limit=5&order=block_height.desc",
		},
		{
			name:     "single optional scalar",
			endpoint: EndpointEpochInfo,
			params:   Params{"_epoch_no": String("300")},
			want:     "?&_epoch_no=300",
		},
		{
			name:     "false boolean is present",
			endpoint: EndpointEpochInfo,
			params:   Params{"_include_next_epoch": Bool(false)},
			want:     "?&_include_next_epoch=false",
		},
		{
			name:     "declared order not map order",
			endpoint: EndpointAssetTxs,
			params: Params{
				"_history":            Bool(true),
				"_after_block_height": Int(5000),
				"_asset_name":         String("4b6f696f73"),
				"_asset_policy":       String("750900e4"),
			},
			extra: "&limit=1",
			want:  "?&_asset_policy=750900e4&_asset_name=4b6f696f73&_after_block_height=5000&_history=true&limit=1",
		},
		{
			name:     "empty string is present",
			endpoint: EndpointPoolUpdates,
			params:   Params{"_pool_bech32": String("")},
			want:     "?&_pool_bech32=",
		},
		{
			name:     "extra appended without normalization",
			endpoint: EndpointTotals,
			params:   Params{"_epoch_no": String("1")},
			extra:    "select=supply",
			want:     "?&_epoch_no=1select=supply",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ep := mustEndpoint(t, tt.endpoint)
			assert.Equal(t, tt.want, buildQuery(ep.Params, tt.params, tt.extra))
		})
	}
}

func TestBuildQueryRoundTrip(t *testing.T) {
	ep := mustEndpoint(t, EndpointAssetTxs)

	params := Params{
		"_asset_policy": String("750900e4"),
		"_history":      Bool(false),
	}

	query := buildQuery(ep.Params, params, "")
	parsed, err := url.ParseQuery(query[1:])
	require.NoError(t, err)

	assert.Equal(t, url.Values{
		"_asset_policy": {"750900e4"},
		"_history":      {"false"},
	}, parsed)
	assert.NotContains(t, query, "_asset_name")
	assert.NotContains(t, query, "_after_block_height")
}

func TestBuildRequestGet(t *testing.T) {
	ep := mustEndpoint(t, EndpointEpochInfo)

	req, err := buildRequest(ep, Params{"_epoch_no": String("300")}, callOptions{})
	require.NoError(t, err)

	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "/epoch_info", req.Path)
	assert.Equal(t, "?&_epoch_no=300", req.Query)
	assert.Equal(t, "/epoch_info?&_epoch_no=300", req.URL())
	assert.Nil(t, req.Body)
}

func TestBuildRequestPost(t *testing.T) {
	ep := mustEndpoint(t, EndpointTxInfo)

	var co callOptions
	WithExtraQuery("&select=tx_hash")(&co)

	req, err := buildRequest(ep, Params{"_tx_hashes": Strings("abc", "def")}, co)
	require.NoError(t, err)

	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "/tx_info", req.Path)
	assert.Equal(t, "?&select=tx_hash", req.Query)
	require.NotNil(t, req.Body)

	data, err := json.Marshal(req.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"_tx_hashes":["abc","def"]}`, string(data))
}

func TestBodyKeepsDeclaredFields(t *testing.T) {
	ep := mustEndpoint(t, EndpointAccountAddresses)

	body := buildBody(ep.Params, Params{
		"_stake_addresses": Strings("stake1b", "stake1a", "stake1b"),
		"_empty":           Bool(false),
	})

	require.Len(t, body.Fields, 3)
	assert.Equal(t, "_stake_addresses", body.Fields[0].Name)
	assert.Equal(t, "_first_only", body.Fields[1].Name)
	assert.False(t, body.Fields[1].Present)
	assert.Equal(t, "_empty", body.Fields[2].Name)
	assert.True(t, body.Fields[2].Present)

	data, err := json.Marshal(body)
	require.NoError(t, err)
	assert.Equal(t, `{"_stake_addresses":["stake1b","stake1a","stake1b"],"_empty":false}`, string(data))
}

func TestBodyPairsOrder(t *testing.T) {
	ep := mustEndpoint(t, EndpointAssetInfoBulk)

	body := buildBody(ep.Params, Params{
		"_asset_list": Pairs(
			[2]string{"policyB", "nameB"},
			[2]string{"policyA", ""},
			[2]string{"policyB", "nameB"},
		),
	})

	data, err := json.Marshal(body)
	require.NoError(t, err)
	assert.Equal(t, `{"_asset_list":[["policyB","nameB"],["policyA",""],["policyB","nameB"]]}`, string(data))

	v, ok := body.Get("_asset_list")
	require.True(t, ok)
	assert.Equal(t, [][2]string{{"policyB", "nameB"}, {"policyA", ""}, {"policyB", "nameB"}}, v.PairItems())
}

func TestBodyEmptyObject(t *testing.T) {
	ep := mustEndpoint(t, EndpointPoolMetadata)

	data, err := json.Marshal(buildBody(ep.Params, nil))
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestValidateParams(t *testing.T) {
	tests := []struct {
		name      string
		endpoint  string
		params    Params
		wantErr   error
		wantParam string
	}{
		{
			name:     "all required present",
			endpoint: EndpointAccountTxs,
			params:   Params{"_stake_address": String("stake1u")},
		},
		{
			name:      "missing required",
			endpoint:  EndpointAccountTxs,
			params:    Params{"_after_block_height": Int(10)},
			wantErr:   ErrMissingParam,
			wantParam: "_stake_address",
		},
		{
			name:      "missing required list",
			endpoint:  EndpointBlockInfo,
			wantErr:   ErrMissingParam,
			wantParam: "_block_hashes",
		},
		{
			name:      "undeclared parameter",
			endpoint:  EndpointTip,
			params:    Params{"_epoch_no": String("1")},
			wantErr:   ErrUnknownParam,
			wantParam: "_epoch_no",
		},
		{
			name:      "list where string expected",
			endpoint:  EndpointPoolBlocks,
			params:    Params{"_pool_bech32": Strings("pool1")},
			wantErr:   ErrParamType,
			wantParam: "_pool_bech32",
		},
		{
			name:      "string where bool expected",
			endpoint:  EndpointEpochInfo,
			params:    Params{"_include_next_epoch": String("true")},
			wantErr:   ErrParamType,
			wantParam: "_include_next_epoch",
		},
		{
			name:     "scalar accepts int and string",
			endpoint: EndpointAccountRewards,
			params:   Params{"_stake_addresses": Strings("stake1u"), "_epoch_no": Int(300)},
		},
		{
			name:      "zero value is rejected",
			endpoint:  EndpointTotals,
			params:    Params{"_epoch_no": {}},
			wantErr:   ErrParamType,
			wantParam: "_epoch_no",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateParams(mustEndpoint(t, tt.endpoint), tt.params)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
			var perr *ParamError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.endpoint, perr.Endpoint)
			assert.Equal(t, tt.wantParam, perr.Param)
		})
	}
}

func TestValueText(t *testing.T) {
	assert.Equal(t, "abc", String("abc").Text())
	assert.Equal(t, "-12", Int(-12).Text())
	assert.Equal(t, "true", Bool(true).Text())
	assert.Equal(t, "false", Bool(false).Text())
	assert.Equal(t, `["a","b"]`, Strings("a", "b").Text())
}

func TestValueCopiesInput(t *testing.T) {
	items := []string{"a", "b"}
	v := Strings(items...)
	items[0] = "z"

	assert.Equal(t, []string{"a", "b"}, v.Items())
}

func TestValueJSON(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"string", String("300"), `"300"`},
		{"int", Int(300), `300`},
		{"bool", Bool(false), `false`},
		{"empty list", Strings(), `[]`},
		{"empty pairs", Pairs(), `[]`},
		{"zero value", Value{}, `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}
