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

package node

import (
	"fmt"
	"sync"

	"github.com/gammazero/deque"
	"github.com/rs/zerolog"

	"github.com/optakt/neon-ledger/models/ledger"
)

// Node owns the ledger and the list of known peers. Both live behind a single
// reader/writer lock: reads share it, while minting, chain replacement and
// peer registration hold it exclusively.
type Node struct {
	log   zerolog.Logger
	cfg   Config
	mutex *sync.RWMutex
	chain *ledger.Chain
	peers *deque.Deque
}

// New creates a node holding a fresh chain with only the genesis block.
func New(log zerolog.Logger, options ...Option) *Node {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	peers := deque.New()
	for _, peer := range cfg.Peers {
		peers.PushBack(peer)
	}

	n := Node{
		log:   log.With().Str("component", "node").Logger(),
		cfg:   cfg,
		mutex: &sync.RWMutex{},
		chain: ledger.New(),
		peers: peers,
	}

	return &n
}

// Blocks returns a copy of the current chain.
func (n *Node) Blocks() []ledger.Block {
	n.mutex.RLock()
	defer n.mutex.RUnlock()

	return n.chain.Blocks()
}

// Mint appends a new block carrying the given payload and announces it.
func (n *Node) Mint(data string) ledger.Block {

	n.mutex.Lock()
	block := n.chain.Mint(data)
	n.mutex.Unlock()

	n.log.Info().
		Uint64("index", block.Index).
		Str("hash", block.Hash).
		Int("size", len(block.Data)).
		Msg("block minted")

	n.cfg.Broadcaster.Broadcast(block)

	return block
}

// Replace adopts the given blocks as the new chain if they form a valid chain
// that is longer than the current one. The latest block of the adopted chain is
// announced.
func (n *Node) Replace(blocks []ledger.Block) error {

	n.mutex.Lock()
	current := n.chain.Len()
	err := n.chain.Replace(blocks)
	var last ledger.Block
	if err == nil {
		last = n.chain.Last()
	}
	n.mutex.Unlock()

	if err != nil {
		n.log.Warn().
			Int("current", current).
			Int("candidate", len(blocks)).
			Err(err).
			Msg("chain replacement rejected")
		return fmt.Errorf("could not replace chain: %w", err)
	}

	n.log.Info().
		Int("previous", current).
		Int("length", len(blocks)).
		Str("hash", last.Hash).
		Msg("chain replaced")

	n.cfg.Broadcaster.Broadcast(last)

	return nil
}

// Peers returns the known peer addresses in the order they were added.
func (n *Node) Peers() []string {
	n.mutex.RLock()
	defer n.mutex.RUnlock()

	peers := make([]string, 0, n.peers.Len())
	for i := 0; i < n.peers.Len(); i++ {
		peers = append(peers, n.peers.At(i).(string))
	}

	return peers
}

// AddPeer registers a peer address. Addresses are neither deduplicated nor
// dialed.
func (n *Node) AddPeer(peer string) {
	n.mutex.Lock()
	n.peers.PushBack(peer)
	count := n.peers.Len()
	n.mutex.Unlock()

	n.log.Info().Str("peer", peer).Int("peers", count).Msg("peer added")
}
