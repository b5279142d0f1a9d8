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

package broadcast

import (
	"github.com/optakt/neon-ledger/models/ledger"
)

// Broadcaster announces a new latest block to the peers of a node.
type Broadcaster interface {
	Broadcast(block ledger.Block)
}

// Nop is a broadcaster that does not announce anything. Peer-to-peer exchange
// is not implemented yet, so it is the default for every node.
type Nop struct{}

func (Nop) Broadcast(ledger.Block) {}
