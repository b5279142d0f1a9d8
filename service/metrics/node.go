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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/optakt/neon-ledger/models/ledger"
)

const namespaceNeon = "neon"

// Node wraps a coordinator and exposes its activity as prometheus metrics.
type Node struct {
	node         ledger.Coordinator
	minted       prometheus.Counter
	replacements prometheus.Counter
	rejections   prometheus.Counter
	peers        prometheus.Counter
	height       prometheus.Gauge
}

// NewNode creates the node metrics and registers them with the given
// registerer.
func NewNode(node ledger.Coordinator, registerer prometheus.Registerer) *Node {

	factory := promauto.With(registerer)

	mintedOpts := prometheus.CounterOpts{
		Name:      "minted_blocks_total",
		Namespace: namespaceNeon,
		Help:      "number of blocks minted locally",
	}
	minted := factory.NewCounter(mintedOpts)

	replacementsOpts := prometheus.CounterOpts{
		Name:      "chain_replacements_total",
		Namespace: namespaceNeon,
		Help:      "number of accepted chain replacements",
	}
	replacements := factory.NewCounter(replacementsOpts)

	rejectionsOpts := prometheus.CounterOpts{
		Name:      "chain_rejections_total",
		Namespace: namespaceNeon,
		Help:      "number of rejected chain replacements",
	}
	rejections := factory.NewCounter(rejectionsOpts)

	peersOpts := prometheus.CounterOpts{
		Name:      "peers_added_total",
		Namespace: namespaceNeon,
		Help:      "number of registered peer addresses",
	}
	peers := factory.NewCounter(peersOpts)

	heightOpts := prometheus.GaugeOpts{
		Name:      "chain_height",
		Namespace: namespaceNeon,
		Help:      "index of the latest block of the chain",
	}
	height := factory.NewGauge(heightOpts)

	n := Node{
		node:         node,
		minted:       minted,
		replacements: replacements,
		rejections:   rejections,
		peers:        peers,
		height:       height,
	}

	return &n
}

func (n *Node) Blocks() []ledger.Block {
	return n.node.Blocks()
}

func (n *Node) Mint(data string) ledger.Block {
	block := n.node.Mint(data)
	n.minted.Inc()
	n.height.Set(float64(block.Index))
	return block
}

func (n *Node) Replace(blocks []ledger.Block) error {
	err := n.node.Replace(blocks)
	if err != nil {
		n.rejections.Inc()
		return err
	}
	n.replacements.Inc()
	n.height.Set(float64(blocks[len(blocks)-1].Index))
	return nil
}

func (n *Node) Peers() []string {
	return n.node.Peers()
}

func (n *Node) AddPeer(peer string) {
	n.node.AddPeer(peer)
	n.peers.Inc()
}
