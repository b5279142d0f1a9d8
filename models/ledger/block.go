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

package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// GenesisData is the fixed payload of the first block of every chain.
const GenesisData = "Neon genesis!"

// Block is a single, self-verifying record of the ledger. Blocks are handled
// as values and are never modified once their hash is set.
type Block struct {
	Index        uint64    `json:"index"`
	Hash         string    `json:"hash"`
	PreviousHash *string   `json:"previous_hash"`
	Timestamp    time.Time `json:"timestamp"`
	Data         string    `json:"data"`
}

// content is the part of a block covered by its hash. It is encoded as a
// positional CBOR array so the field names never become part of the hash.
type content struct {
	_            struct{} `cbor:",toarray"`
	Index        uint64
	PreviousHash *string
	Timestamp    time.Time
	Data         string
}

var encoding = mustEncMode()

// now is replaced in tests that need stable timestamps.
var now = func() time.Time {
	return time.Now().UTC()
}

func mustEncMode() cbor.EncMode {

	// The options are static, so failing here is a programming error and we
	// keep the hashing functions free of error returns.
	options := cbor.CanonicalEncOptions()
	options.Time = cbor.TimeRFC3339Nano
	mode, err := options.EncMode()
	if err != nil {
		panic(err)
	}

	return mode
}

// Genesis returns a new genesis block stamped with the current time.
func Genesis() Block {
	b := Block{
		Index:        0,
		PreviousHash: nil,
		Timestamp:    now(),
		Data:         GenesisData,
	}
	b.Hash = b.Digest()
	return b
}

// Next returns the block that follows b and carries the given payload.
func (b Block) Next(data string) Block {
	previous := b.Digest()
	next := Block{
		Index:        b.Index + 1,
		PreviousHash: &previous,
		Timestamp:    now(),
		Data:         data,
	}
	next.Hash = next.Digest()
	return next
}

// Digest computes the hash of the block over its index, previous hash,
// timestamp and data. The stored Hash field is ignored.
func (b Block) Digest() string {
	c := content{
		Index:        b.Index,
		PreviousHash: b.PreviousHash,
		Timestamp:    b.Timestamp.UTC(),
		Data:         b.Data,
	}
	data, err := encoding.Marshal(c)
	if err != nil {
		panic(err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Check verifies the block against its predecessor. A nil predecessor means
// the block claims to be the genesis block. The returned error, if any, is a
// Violation.
func (b Block) Check(previous *Block) error {
	violation := b.violation(previous)
	if violation != 0 {
		return violation
	}
	return nil
}

func (b Block) violation(previous *Block) Violation {

	if previous == nil {
		if b.Index != 0 {
			return InvalidIndex
		}
		if b.PreviousHash != nil {
			return InvalidPreviousHash
		}
		if b.Data != GenesisData {
			return InvalidGenesis
		}
	}

	if previous != nil {
		if b.Index != previous.Index+1 {
			return InvalidIndex
		}
		if b.PreviousHash == nil || *b.PreviousHash != previous.Digest() {
			return InvalidPreviousHash
		}
	}

	if b.Hash != b.Digest() {
		return InvalidHash
	}

	return 0
}
