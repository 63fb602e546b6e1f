package koios

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	serverReply := &Response{StatusCode: 400, Status: "400 Bad Request", Body: []byte(`{"message":"bad"}`)}
	plain := errors.New("boom")

	tests := []struct {
		name     string
		err      error
		wantKind ErrorKind
		wantName string
		wantMsg  string
	}{
		{
			name:     "server replied with failure status",
			err:      &TransportError{Name: "ResponseError", Message: "request failed with status code 400", Response: serverReply, RequestSent: true},
			wantKind: KindError,
			wantName: "ResponseError",
			wantMsg:  "request failed with status code 400",
		},
		{
			name:     "response wins over request sent",
			err:      &TransportError{Name: "ResponseError", Message: "status 500", Response: &Response{StatusCode: 500}},
			wantKind: KindError,
			wantName: "ResponseError",
			wantMsg:  "status 500",
		},
		{
			name:     "timeout after send",
			err:      &TransportError{Name: "TimeoutError", Message: "deadline exceeded", RequestSent: true, Err: context.DeadlineExceeded},
			wantKind: KindNoResponse,
			wantName: "TimeoutError",
			wantMsg:  "deadline exceeded",
		},
		{
			name:     "failure before send",
			err:      &TransportError{Name: "RequestError", Message: "failed to create request"},
			wantKind: KindBadRequest,
			wantName: "RequestError",
			wantMsg:  "failed to create request",
		},
		{
			name:     "wrapped transport error keeps its facets",
			err:      fmt.Errorf("outer: %w", &TransportError{Name: "NetworkError", Message: "reset", RequestSent: true}),
			wantKind: KindNoResponse,
			wantName: "NetworkError",
			wantMsg:  "outer: reset",
		},
		{
			name:     "plain error has no facets",
			err:      plain,
			wantKind: KindBadRequest,
			wantName: "errorString",
			wantMsg:  "boom",
		},
		{
			name:     "parameter error",
			err:      &ParamError{Endpoint: EndpointBlockInfo, Param: "_block_hashes", Err: ErrMissingParam},
			wantKind: KindBadRequest,
			wantName: "ParamError",
			wantMsg:  "BlockInfo: _block_hashes: missing required parameter",
		},
		{
			name:     "unknown endpoint",
			err:      &ParamError{Endpoint: "Nope", Err: ErrUnknownEndpoint},
			wantKind: KindBadRequest,
			wantName: "EndpointError",
			wantMsg:  "Nope: unknown endpoint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Normalize(nil, tt.err)

			assert.Nil(t, out.Success)
			require.NotNil(t, out.Error)
			assert.Equal(t, tt.wantKind, out.Error.Kind)
			assert.Equal(t, tt.wantName, out.Error.Name)
			assert.Equal(t, tt.wantMsg, out.Error.Message)
			assert.Same(t, tt.err, out.Error.Cause)
			assert.ErrorIs(t, out.Error, tt.err)
		})
	}
}

func TestNormalizeSuccess(t *testing.T) {
	resp := &Response{StatusCode: 200, Body: []byte(`[{"hash":"abc"}]`)}

	out := Normalize(resp, nil)

	assert.True(t, out.OK())
	assert.Nil(t, out.Error)
	assert.Same(t, resp, out.Success)
	assert.Equal(t, ErrorKind(""), out.Kind())
}

func TestNormalizeNeverEmpty(t *testing.T) {
	out := Normalize(nil, nil)

	assert.Nil(t, out.Success)
	require.NotNil(t, out.Error)
	assert.Equal(t, KindBadRequest, out.Error.Kind)
	assert.ErrorIs(t, out.Error, ErrNoResponse)
}

func TestOutcomeResult(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		resp := &Response{StatusCode: 200}
		got, err := Outcome{Success: resp}.Result()
		require.NoError(t, err)
		assert.Same(t, resp, got)
	})

	t.Run("failure", func(t *testing.T) {
		ce := &ClientError{Kind: KindNoResponse, Name: "NetworkError", Message: "reset"}
		got, err := Outcome{Error: ce}.Result()
		assert.Nil(t, got)
		require.Error(t, err)
		assert.Equal(t, "koios no-response: NetworkError: reset", err.Error())
	})
}

func TestDecode(t *testing.T) {
	out := Outcome{Success: &Response{StatusCode: 200, Body: []byte(`[{"hash":"abc","epoch_no":300,"block_no":42}]`)}}

	tip, err := Decode[TipResponse](out)
	require.NoError(t, err)
	require.Len(t, tip, 1)
	assert.Equal(t, "abc", tip[0].Hash)
	assert.Equal(t, 300, tip[0].EpochNo)
	assert.Equal(t, int64(42), tip[0].BlockNo)

	_, err = Decode[TipResponse](Outcome{Success: &Response{Body: []byte(`{`)}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse response")
}

func TestClientErrorHelpers(t *testing.T) {
	withStatus := func(code int) *ClientError {
		return Normalize(nil, &TransportError{Name: "ResponseError", Response: &Response{StatusCode: code}}).Error
	}

	assert.True(t, withStatus(404).IsNotFound())
	assert.False(t, withStatus(500).IsNotFound())
	assert.True(t, withStatus(401).IsUnauthorized())
	assert.True(t, withStatus(403).IsUnauthorized())
	assert.True(t, withStatus(503).IsServerError())
	assert.False(t, withStatus(400).IsServerError())
	assert.Equal(t, 400, withStatus(400).StatusCode())

	noReply := Normalize(nil, &TransportError{Name: "CanceledError", RequestSent: true, Err: context.Canceled}).Error
	assert.Equal(t, 0, noReply.StatusCode())
	assert.Nil(t, noReply.Response())
	assert.True(t, noReply.Canceled())
	assert.False(t, noReply.Timeout())

	timedOut := Normalize(nil, &TransportError{Name: "TimeoutError", RequestSent: true, Err: context.DeadlineExceeded}).Error
	assert.True(t, timedOut.Timeout())
	assert.False(t, timedOut.Canceled())
}
