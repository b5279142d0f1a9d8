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
	"errors"
	"fmt"
)

// Violation is the reason a block fails its integrity check.
type Violation uint8

// The order of these values is not significant; checks are always reported in
// the order index, previous hash or genesis payload, then hash.
const (
	InvalidIndex Violation = iota + 1
	InvalidGenesis
	InvalidPreviousHash
	InvalidHash
)

func (v Violation) String() string {
	switch v {
	case InvalidIndex:
		return "invalid index"
	case InvalidGenesis:
		return "invalid genesis"
	case InvalidPreviousHash:
		return "invalid previous hash"
	case InvalidHash:
		return "invalid hash"
	default:
		return fmt.Sprintf("unknown violation (%d)", uint8(v))
	}
}

func (v Violation) Error() string {
	return v.String()
}

// IntegrityError is returned when a candidate sequence of blocks fails
// validation. It carries the zero-based position of the first offending block.
type IntegrityError struct {
	Position  int
	Violation Violation
}

func (i *IntegrityError) Error() string {
	return fmt.Sprintf("block at position %d: %s", i.Position, i.Violation)
}

// Unwrap allows matching the violation kind with errors.Is.
func (i *IntegrityError) Unwrap() error {
	return i.Violation
}

var (
	ErrEmptyChain    = errors.New("empty chain")
	ErrChainRejected = errors.New("chain rejected")
)
