// SPDX-License-Identifier: MIT
// Package: csp-json/urbcsp
//
// shuffle.go - partial Fisher–Yates over an implicit index space [0, size).
//
// Model:
//   - The space starts as the identity arrangement 0, 1, …, size-1.
//   - Pick j (0-based) draws r ∈ [j, size), swaps positions j and r, and
//     returns the value now at position j. Exactly one draw per pick.
//   - Only displaced positions are stored; the map is used for point
//     lookups and never iterated, so results do not depend on map order.
//
// Complexity: O(1) expected per pick, O(picks) space regardless of size.

package urbcsp

import (
	"fmt"

	"github.com/michal-dobrogost/csp-json/ran2"
)

// sparseShuffle draws distinct indices from [0, size) without replacement.
type sparseShuffle struct {
	size   int
	next   int
	moved  map[int]int
	method string
}

func newSparseShuffle(method string, size, picks int) *sparseShuffle {
	return &sparseShuffle{
		size:   size,
		moved:  make(map[int]int, 2*picks),
		method: method,
	}
}

// at returns the value currently stored at position i.
func (s *sparseShuffle) at(i int) int {
	if v, ok := s.moved[i]; ok {
		return v
	}
	return i
}

// pick draws the next index. Position s.next is never read again, so only
// position r needs to record the value it receives.
func (s *sparseShuffle) pick(src *ran2.Source) (int, error) {
	if s.next >= s.size {
		return 0, fmt.Errorf("%s: pick %d of %d: %w", s.method, s.next+1, s.size, ErrSamplingExhausted)
	}

	j := s.next
	r := src.Index(j, s.size)
	chosen := s.at(r)
	if r != j {
		s.moved[r] = s.at(j)
	}
	delete(s.moved, j)
	s.next++

	return chosen, nil
}
