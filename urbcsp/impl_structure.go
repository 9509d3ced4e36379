// SPDX-License-Identifier: MIT
// Package: csp-json/urbcsp
//
// impl_structure.go - StructureSampler: which variable pairs are constrained.
//
// Canonical model:
//   - Index space: all unordered pairs {u,v}, u<v<n, in lexicographic order
//     (0,1),(0,2),…,(0,n-1),(1,2),…,(n-2,n-1); P = n(n-1)/2 entries.
//   - Edge j is pick j of a partial Fisher–Yates over that space (shuffle.go).
//   - One draw per edge; duplicates and self-pairs are impossible by
//     construction, so there is no rejection step.
//
// Contract:
//   - c ≤ P is validated beforehand (ErrInvalidParams); a pick beyond P
//     reports ErrSamplingExhausted.
//   - Edges are produced in acceptance order; that order is canonical.
//
// Complexity:
//   - Time: O(log n) per edge (pair decoding), O(c log n) total.
//   - Space: O(c).

package urbcsp

import (
	"sort"

	"github.com/michal-dobrogost/csp-json/ran2"
)

// edge is an accepted constrained pair; U < V.
type edge struct {
	U int
	V int
}

// structureSampler draws distinct variable pairs one at a time.
type structureSampler struct {
	n     int
	space *sparseShuffle
}

func newStructureSampler(n, c int) *structureSampler {
	return &structureSampler{
		n:     n,
		space: newSparseShuffle(MethodStructure, n*(n-1)/2, c),
	}
}

// next accepts the next edge from src.
func (s *structureSampler) next(src *ran2.Source) (edge, error) {
	idx, err := s.space.pick(src)
	if err != nil {
		return edge{}, err
	}
	return pairAt(s.n, idx), nil
}

// rowStart is the lexicographic index of pair (u, u+1).
func rowStart(n, u int) int {
	return u * (2*n - u - 1) / 2
}

// pairAt decodes a lexicographic pair index.
func pairAt(n, idx int) edge {
	// Largest u in [0, n-2] with rowStart(u) ≤ idx.
	u := sort.Search(n-1, func(u int) bool { return rowStart(n, u) > idx }) - 1
	return edge{U: u, V: u + 1 + idx - rowStart(n, u)}
}
