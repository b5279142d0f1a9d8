// Copyright 2021 Optakt Labs OÜ
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

package mocks

import (
	"testing"

	"github.com/optakt/neon-ledger/models/ledger"
)

type Coordinator struct {
	BlocksFunc  func() []ledger.Block
	MintFunc    func(data string) ledger.Block
	ReplaceFunc func(blocks []ledger.Block) error
	PeersFunc   func() []string
	AddPeerFunc func(peer string)
}

func BaselineCoordinator(t *testing.T) *Coordinator {
	t.Helper()

	c := Coordinator{
		BlocksFunc: func() []ledger.Block {
			return GenericBlocks(3)
		},
		MintFunc: func(data string) ledger.Block {
			return GenericBlock(2)
		},
		ReplaceFunc: func(blocks []ledger.Block) error {
			return nil
		},
		PeersFunc: func() []string {
			return GenericPeers(2)
		},
		AddPeerFunc: func(peer string) {},
	}

	return &c
}

func (c *Coordinator) Blocks() []ledger.Block {
	return c.BlocksFunc()
}

func (c *Coordinator) Mint(data string) ledger.Block {
	return c.MintFunc(data)
}

func (c *Coordinator) Replace(blocks []ledger.Block) error {
	return c.ReplaceFunc(blocks)
}

func (c *Coordinator) Peers() []string {
	return c.PeersFunc()
}

func (c *Coordinator) AddPeer(peer string) {
	c.AddPeerFunc(peer)
}
