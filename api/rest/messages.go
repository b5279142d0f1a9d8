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

package rest

import (
	"github.com/optakt/neon-ledger/models/ledger"
)

// MintBlockRequest is the body of a request to mint a new block. The payload
// may be empty but must be present.
type MintBlockRequest struct {
	Data *string `json:"data" validate:"required"`
}

// AddPeerRequest is the body of a request to register a peer address.
type AddPeerRequest struct {
	Peer *string `json:"peer" validate:"required"`
}

// ReplaceChainRequest is the body of a request offering a candidate chain.
type ReplaceChainRequest struct {
	Blocks []ledger.Block `json:"blocks" validate:"required"`
}

type BlocksResponse struct {
	Blocks []ledger.Block `json:"blocks"`
}

type MintBlockResponse struct {
	Block ledger.Block `json:"block"`
}

type PeersResponse struct {
	Peers []string `json:"peers"`
}
