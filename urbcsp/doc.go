// Package urbcsp generates instances of the uniform random binary constraint
// satisfaction problem model, the classic benchmark family for CSP solvers.
//
// An instance is fixed by seven integers:
//
//	n  variables           (n ≥ 2)
//	d  shared domain size  (d ≥ 1, values 0..d-1)
//	c  constraints         (0 ≤ c ≤ n(n-1)/2)
//	t  nogoods per table   (1 ≤ t ≤ d²)
//	s  base seed           (int32)
//	i  instance index      (i ≥ 0)
//	k  nogood tables       (1 ≤ k ≤ c; defaults to c)
//
// The package offers the following key components:
//
//   - Parameters:
//     – Params:    caller input, k optional.
//     – ParamSet:  resolved and validated, immutable.
//   - Generation:
//     – Generate:  ParamSet → *csp.Document.
//     – Render:    ParamSet → canonical CSP-JSON bytes.
//   - Internals, in pipeline order:
//     – deriveStream:      ran2 stream positioned at instance i (seed.go).
//     – structureSampler:  distinct variable pairs (impl_structure.go).
//     – relationGenerator: sorted nogood tables (impl_relations.go).
//     – relationFor:       edge → table, j mod k (impl_assign.go).
//     – buildDocument:     canonical document (impl_build.go).
//
// Guarantees:
//
//   - Deterministic: equal ParamSets produce byte-identical text, identical to
//     the reference cj-gen-urbcsp tool.
//   - Validation before drawing: invalid input draws nothing and fails with
//     ErrInvalidParams.
//   - Bounded: no rejection loops; every instance consumes exactly c·(1+t)
//     draws.
//
// Example:
//
//	ps, err := urbcsp.Params{N: 100, D: 10, C: 10, T: 10, S: 100, I: 99}.Resolve()
//	if err != nil { ... }
//	text, err := urbcsp.Render(ps)
package urbcsp
