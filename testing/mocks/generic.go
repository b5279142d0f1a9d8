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
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/optakt/neon-ledger/models/ledger"
)

// Global variables that can be used for testing. They are non-nil valid values
// for the types commonly needed to test ledger components.
var (
	NoopLogger = zerolog.New(io.Discard)

	GenericError = errors.New("dummy error")

	GenericData = "payload"

	GenericPeer = "http://127.0.0.1:8081"

	GenericTimestamp = time.Date(1972, 11, 12, 13, 14, 15, 16, time.UTC)
)

// GenericBlocks returns a valid chain of the given length, with timestamps
// that do not depend on the current time.
func GenericBlocks(number int) []ledger.Block {

	genesis := ledger.Block{
		Index:     0,
		Timestamp: GenericTimestamp,
		Data:      ledger.GenesisData,
	}
	genesis.Hash = genesis.Digest()

	blocks := []ledger.Block{genesis}
	for i := 1; i < number; i++ {
		previous := blocks[i-1]
		hash := previous.Digest()
		block := ledger.Block{
			Index:        previous.Index + 1,
			PreviousHash: &hash,
			Timestamp:    previous.Timestamp.Add(time.Second),
			Data:         GenericData,
		}
		block.Hash = block.Digest()
		blocks = append(blocks, block)
	}

	return blocks
}

// GenericBlock returns the last block of a generic chain of the given length.
func GenericBlock(number int) ledger.Block {
	blocks := GenericBlocks(number)
	return blocks[len(blocks)-1]
}

// GenericPeers returns the given number of distinct peer addresses.
func GenericPeers(number int) []string {
	peers := make([]string, 0, number)
	for i := 0; i < number; i++ {
		peers = append(peers, "http://127.0.0.1:"+strconv.Itoa(8081+i))
	}
	return peers
}
