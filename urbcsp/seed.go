// SPDX-License-Identifier: MIT
// Package: csp-json/urbcsp
//
// seed.go - SeedDeriver: (s, i) → positioned ran2 stream.
//
// Formula (frozen):
//   - base stream: ran2.New(int32(s)); the sign of s is ignored, 0 behaves as 1.
//   - instance i starts after i·c·(1+t) draws, i.e. exactly where it starts
//     when instances 0..i-1 are generated back to back on the base stream,
//     which is how published urbcsp instances are numbered.
//
// Consequences:
//   - Fixed (s, i) ⇒ identical stream on every platform.
//   - Varying i with fixed s walks disjoint windows of one stream.
//   - Cost of positioning is O(i·c·(1+t)) draws; no state is sampled.

package urbcsp

import "github.com/michal-dobrogost/csp-json/ran2"

// deriveStream returns the ran2 stream positioned at the first draw of
// instance p.I. p must be validated (s fits int32, offset fits int64).
func deriveStream(p ParamSet) *ran2.Source {
	src := ran2.New(int32(p.S))
	offset, _ := p.streamOffset()
	src.Skip(offset)
	return src
}
