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

type Broadcaster struct {
	BroadcastFunc func(block ledger.Block)
}

func BaselineBroadcaster(t *testing.T) *Broadcaster {
	t.Helper()

	b := Broadcaster{
		BroadcastFunc: func(block ledger.Block) {},
	}

	return &b
}

func (b *Broadcaster) Broadcast(block ledger.Block) {
	b.BroadcastFunc(block)
}
