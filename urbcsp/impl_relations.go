// SPDX-License-Identifier: MIT
// Package: csp-json/urbcsp
//
// impl_relations.go - RelationGenerator: nogood tables.
//
// Canonical model:
//   - Index space: value pairs (row, col) ∈ [0,d)×[0,d) encoded as row·d+col,
//     d² entries.
//   - One table = t picks of a fresh partial Fisher–Yates over that space,
//     one draw per nogood, no rejections.
//   - Tables are sorted ascending by (row, col) before emission; draw order
//     is not part of the output.
//
// Contract:
//   - t ≤ d² is validated beforehand (ErrInvalidParams); a pick beyond d²
//     reports ErrSamplingExhausted.
//
// Complexity:
//   - Time: O(t log t) per table (sorting dominates).
//   - Space: O(t) per table.

package urbcsp

import (
	"slices"

	"github.com/michal-dobrogost/csp-json/ran2"
)

// relationGenerator draws nogood tables of fixed tightness.
type relationGenerator struct {
	d int
	t int
}

func newRelationGenerator(d, t int) relationGenerator {
	return relationGenerator{d: d, t: t}
}

// draw produces one sorted table of t distinct [row, col] nogoods.
func (g relationGenerator) draw(src *ran2.Source) ([][]int, error) {
	space := newSparseShuffle(MethodRelations, g.d*g.d, g.t)

	codes := make([]int, g.t)
	for j := range codes {
		x, err := space.pick(src)
		if err != nil {
			return nil, err
		}
		codes[j] = x
	}

	// row·d+col orders exactly like (row, col).
	slices.Sort(codes)

	table := make([][]int, g.t)
	for j, x := range codes {
		table[j] = []int{x / g.d, x % g.d}
	}
	return table, nil
}
