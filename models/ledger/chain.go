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
	"fmt"
)

// Chain is an ordered, non-empty sequence of blocks starting at a genesis
// block. It is not safe for concurrent use; callers need to provide their own
// locking.
type Chain struct {
	blocks []Block
}

// New creates a chain that holds only a fresh genesis block.
func New() *Chain {
	c := Chain{
		blocks: []Block{Genesis()},
	}
	return &c
}

// Check validates a candidate sequence of blocks from the first element on.
// It stops at the first failing block and returns an IntegrityError with its
// position. An empty candidate is rejected with ErrEmptyChain.
func Check(blocks []Block) error {

	if len(blocks) == 0 {
		return ErrEmptyChain
	}

	var previous *Block
	for position := range blocks {
		violation := blocks[position].violation(previous)
		if violation != 0 {
			return &IntegrityError{Position: position, Violation: violation}
		}
		previous = &blocks[position]
	}

	return nil
}

// Blocks returns a copy of the blocks of the chain.
func (c *Chain) Blocks() []Block {
	blocks := make([]Block, len(c.blocks))
	copy(blocks, c.blocks)
	return blocks
}

// Last returns the latest block of the chain.
func (c *Chain) Last() Block {
	return c.blocks[len(c.blocks)-1]
}

// Len returns the number of blocks in the chain, genesis included.
func (c *Chain) Len() int {
	return len(c.blocks)
}

// Mint appends a new block with the given payload and returns it.
func (c *Chain) Mint(data string) Block {
	block := c.Last().Next(data)
	c.blocks = append(c.blocks, block)
	return block
}

// Replace swaps the chain's blocks for a copy of the candidate if the
// candidate is valid and strictly longer than the current chain. Any returned
// error matches ErrChainRejected, whatever the reason for the rejection.
func (c *Chain) Replace(candidate []Block) error {

	err := Check(candidate)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrChainRejected, err)
	}

	if len(candidate) <= len(c.blocks) {
		return fmt.Errorf("%w: candidate not longer than current chain (candidate: %d, current: %d)", ErrChainRejected, len(candidate), len(c.blocks))
	}

	blocks := make([]Block, len(candidate))
	copy(blocks, candidate)
	c.blocks = blocks

	return nil
}
