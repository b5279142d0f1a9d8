// Copyright 2021 Alvalor S.A.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package rest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/neon-ledger/api/rest"
	"github.com/optakt/neon-ledger/models/ledger"
	"github.com/optakt/neon-ledger/testing/mocks"
)

func setupRecorder(method string, target string, body string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)
	return rec, ctx
}

func TestController_Hello(t *testing.T) {
	ctrl := rest.NewController(mocks.BaselineCoordinator(t))
	rec, ctx := setupRecorder(http.MethodGet, "/", "")

	err := ctrl.Hello(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello", rec.Body.String())
}

func TestController_Blocks(t *testing.T) {
	blocks := mocks.GenericBlocks(3)
	coordinator := mocks.BaselineCoordinator(t)
	coordinator.BlocksFunc = func() []ledger.Block {
		return blocks
	}
	ctrl := rest.NewController(coordinator)
	rec, ctx := setupRecorder(http.MethodGet, "/blocks", "")

	err := ctrl.Blocks(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var res rest.BlocksResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Blocks, 3)
	assert.NoError(t, ledger.Check(res.Blocks))
	for i := range blocks {
		assert.Equal(t, blocks[i].Hash, res.Blocks[i].Hash)
		assert.True(t, blocks[i].Timestamp.Equal(res.Blocks[i].Timestamp))
	}

	var raw map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	genesis := raw["blocks"][0]
	assert.Contains(t, genesis, "index")
	assert.Contains(t, genesis, "hash")
	assert.Contains(t, genesis, "timestamp")
	assert.Contains(t, genesis, "data")
	assert.Contains(t, genesis, "previous_hash")
	assert.Nil(t, genesis["previous_hash"])
}

func TestController_MintBlock(t *testing.T) {

	tests := []struct {
		name       string
		body       string
		wantData   string
		wantStatus int
		wantMint   bool
	}{
		{
			name:       "nominal case",
			body:       `{"data":"A"}`,
			wantData:   "A",
			wantStatus: http.StatusOK,
			wantMint:   true,
		},
		{
			name:       "empty payload",
			body:       `{"data":""}`,
			wantData:   "",
			wantStatus: http.StatusOK,
			wantMint:   true,
		},
		{
			name:       "missing payload",
			body:       `{"other":"A"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "null payload",
			body:       `{"data":null}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "wrong payload type",
			body:       `{"data":42}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed JSON",
			body:       `{"data":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty body",
			body:       ``,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var minted []string
			coordinator := mocks.BaselineCoordinator(t)
			coordinator.MintFunc = func(data string) ledger.Block {
				minted = append(minted, data)
				return mocks.GenericBlock(2)
			}
			ctrl := rest.NewController(coordinator)
			rec, ctx := setupRecorder(http.MethodPost, "/mintBlock", test.body)

			err := ctrl.MintBlock(ctx)

			require.NoError(t, err)
			assert.Equal(t, test.wantStatus, rec.Code)
			if !test.wantMint {
				assert.Empty(t, minted)
				assert.Equal(t, "Invalid body", rec.Body.String())
				return
			}

			assert.Equal(t, []string{test.wantData}, minted)
			var res rest.MintBlockResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
			assert.Equal(t, mocks.GenericBlock(2).Hash, res.Block.Hash)
		})
	}
}

func TestController_MintBlockWrongContentType(t *testing.T) {
	ctrl := rest.NewController(mocks.BaselineCoordinator(t))
	req := httptest.NewRequest(http.MethodPost, "/mintBlock", strings.NewReader(`{"data":"A"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMETextPlain)
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)

	err := ctrl.MintBlock(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid body", rec.Body.String())
}

func TestController_Peers(t *testing.T) {
	ctrl := rest.NewController(mocks.BaselineCoordinator(t))
	rec, ctx := setupRecorder(http.MethodGet, "/peers", "")

	err := ctrl.Peers(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"peers":["http://127.0.0.1:8081","http://127.0.0.1:8082"]}`, rec.Body.String())
}

func TestController_AddPeer(t *testing.T) {

	tests := []struct {
		name       string
		body       string
		wantPeers  []string
		wantStatus int
	}{
		{
			name:       "nominal case",
			body:       `{"peer":"http://127.0.0.1:8081"}`,
			wantPeers:  []string{"http://127.0.0.1:8081"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing peer",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed JSON",
			body:       `peer`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var added []string
			coordinator := mocks.BaselineCoordinator(t)
			coordinator.AddPeerFunc = func(peer string) {
				added = append(added, peer)
			}
			ctrl := rest.NewController(coordinator)
			rec, ctx := setupRecorder(http.MethodPost, "/addPeer", test.body)

			err := ctrl.AddPeer(ctx)

			require.NoError(t, err)
			assert.Equal(t, test.wantStatus, rec.Code)
			assert.Equal(t, test.wantPeers, added)
			if test.wantStatus == http.StatusOK {
				assert.Empty(t, rec.Body.String())
			} else {
				assert.Equal(t, "Invalid body", rec.Body.String())
			}
		})
	}
}

func TestController_ReplaceChain(t *testing.T) {

	candidate, err := json.Marshal(rest.BlocksResponse{Blocks: mocks.GenericBlocks(3)})
	require.NoError(t, err)

	tests := []struct {
		name       string
		body       string
		replaceErr error
		wantStatus int
		wantErr    assert.ErrorAssertionFunc
	}{
		{
			name:       "accepted",
			body:       string(candidate),
			wantStatus: http.StatusOK,
			wantErr:    assert.NoError,
		},
		{
			name:       "rejected",
			body:       string(candidate),
			replaceErr: ledger.ErrChainRejected,
			wantStatus: http.StatusConflict,
			wantErr:    assert.NoError,
		},
		{
			name:       "missing blocks",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantErr:    assert.NoError,
		},
		{
			name:       "unexpected failure",
			body:       string(candidate),
			replaceErr: mocks.GenericError,
			wantErr:    assert.Error,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			coordinator := mocks.BaselineCoordinator(t)
			coordinator.ReplaceFunc = func(blocks []ledger.Block) error {
				assert.Len(t, blocks, 3)
				return test.replaceErr
			}
			ctrl := rest.NewController(coordinator)
			rec, ctx := setupRecorder(http.MethodPost, "/replaceChain", test.body)

			err := ctrl.ReplaceChain(ctx)

			test.wantErr(t, err)
			if err == nil {
				assert.Equal(t, test.wantStatus, rec.Code)
			}
		})
	}
}
