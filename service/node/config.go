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
	"github.com/optakt/neon-ledger/service/broadcast"
)

// Config configures a node.
type Config struct {
	Broadcaster broadcast.Broadcaster
	Peers       []string
}

// Option is a function that modifies a configuration.
type Option func(*Config)

// DefaultConfig is the node's default configuration.
var DefaultConfig = Config{
	Broadcaster: broadcast.Nop{},
	Peers:       nil,
}

// WithBroadcaster sets the broadcaster that is notified of every new latest
// block, whether minted locally or adopted through a chain replacement.
func WithBroadcaster(broadcaster broadcast.Broadcaster) Option {
	return func(config *Config) {
		config.Broadcaster = broadcaster
	}
}

// WithPeers sets the peer addresses the node starts with.
func WithPeers(peers ...string) Option {
	return func(config *Config) {
		config.Peers = append(config.Peers, peers...)
	}
}
