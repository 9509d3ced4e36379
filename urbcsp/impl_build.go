// SPDX-License-Identifier: MIT
// Package: csp-json/urbcsp
//
// impl_build.go - sampling loop and DocumentBuilder.
//
// Draw order (part of the output contract):
//   for j in 0..c-1:
//       1 draw   → edge j                        (StructureSampler)
//       t draws  → nogood table for slot j mod k (RelationGenerator)
//
// When k < c a slot is drawn once per edge mapped to it and the table drawn
// last is kept. Every instance therefore consumes exactly c·(1+t) draws,
// which is what SeedDeriver relies on to position instance i.

package urbcsp

import (
	"fmt"

	"github.com/michal-dobrogost/csp-json/csp"
	"github.com/michal-dobrogost/csp-json/ran2"
)

// sample is the raw outcome of one instance's draws.
type sample struct {
	edges     []edge    // acceptance order
	relations [][][]int // k sorted tables
}

// drawInstance runs the interleaved structure/relation draws for p on src.
// Complexity: O(c·(log n + t log t)) time, O(c + k·t) space.
func drawInstance(p ParamSet, src *ran2.Source) (sample, error) {
	out := sample{
		edges:     make([]edge, 0, p.C),
		relations: make([][][]int, p.K),
	}
	if p.C == 0 {
		return out, nil
	}

	structure := newStructureSampler(p.N, p.C)
	relations := newRelationGenerator(p.D, p.T)

	for j := 0; j < p.C; j++ {
		e, err := structure.next(src)
		if err != nil {
			return sample{}, err
		}
		out.edges = append(out.edges, e)

		table, err := relations.draw(src)
		if err != nil {
			return sample{}, err
		}
		out.relations[relationFor(j, p.K)] = table
	}
	return out, nil
}

// buildDocument assembles the canonical document for p from s.
// Complexity: O(n + d + c + k·t).
func buildDocument(p ParamSet, s sample) (*csp.Document, error) {
	if len(s.edges) != p.C || len(s.relations) != p.K {
		return nil, fmt.Errorf("%s: %d edges / %d relations for c=%d k=%d: %w",
			MethodGenerate, len(s.edges), len(s.relations), p.C, p.K, ErrSamplingExhausted)
	}

	doc := &csp.Document{
		Meta: csp.Meta{
			ID:   p.ID(),
			Algo: Algo,
			Params: []csp.Param{
				{Key: KeyN, Value: p.N},
				{Key: KeyD, Value: p.D},
				{Key: KeyC, Value: p.C},
				{Key: KeyT, Value: p.T},
				{Key: KeyS, Value: p.S},
				{Key: KeyI, Value: p.I},
				{Key: KeyK, Value: p.K},
			},
		},
		Domains:        []csp.Domain{{Values: make([]int, p.D)}},
		Vars:           make([]int, p.N),
		ConstraintDefs: make([]csp.ConstraintDef, p.K),
		Constraints:    make([]csp.Constraint, p.C),
	}

	for v := range doc.Domains[0].Values {
		doc.Domains[0].Values[v] = v
	}
	for i := range doc.Vars {
		doc.Vars[i] = DomainGroup
	}
	for id, table := range s.relations {
		doc.ConstraintDefs[id] = csp.ConstraintDef{NoGoods: table}
	}
	for j, e := range s.edges {
		doc.Constraints[j] = csp.Constraint{
			ID:   relationFor(j, p.K),
			Vars: []int{e.U, e.V},
		}
	}

	return doc, nil
}
