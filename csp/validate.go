// SPDX-License-Identifier: MIT
// Package: csp-json/csp
//
// validate.go - structural checks and normalisation.
//
// Validate checks references only; it never evaluates the constraints, so it
// says nothing about satisfiability.

package csp

import (
	"fmt"
	"slices"
)

// Validate checks that every reference in doc resolves:
//   - Vars[v] indexes Domains;
//   - Constraints[i].ID indexes ConstraintDefs;
//   - Constraints[i].Vars entries index Vars;
//   - a constraint's scope width equals its table's tuple width.
//
// Empty nogood tables accept any scope.
// Complexity: O(|Vars| + Σ|NoGoods| + Σ|Constraint.Vars|).
func Validate(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("Validate: nil document: %w", ErrInvalidDocument)
	}

	for v, dom := range doc.Vars {
		if dom < 0 || dom >= len(doc.Domains) {
			return fmt.Errorf("Validate: vars[%d]=%d, %d domains: %w", v, dom, len(doc.Domains), ErrDomainRange)
		}
	}

	arities := make([]int, len(doc.ConstraintDefs))
	for i, def := range doc.ConstraintDefs {
		arities[i] = def.Arity()
		if arities[i] < 0 && len(def.NoGoods) > 0 {
			return fmt.Errorf("Validate: constraintDefs[%d] has ragged tuples: %w", i, ErrArity)
		}
	}

	for i, c := range doc.Constraints {
		if c.ID < 0 || c.ID >= len(doc.ConstraintDefs) {
			return fmt.Errorf("Validate: constraints[%d].id=%d, %d defs: %w", i, c.ID, len(doc.ConstraintDefs), ErrDefRange)
		}
		for _, v := range c.Vars {
			if v < 0 || v >= len(doc.Vars) {
				return fmt.Errorf("Validate: constraints[%d] var %d, %d vars: %w", i, v, len(doc.Vars), ErrVarRange)
			}
		}
		if a := arities[c.ID]; a >= 0 && a != len(c.Vars) {
			return fmt.Errorf("Validate: constraints[%d] scope %d, def %d arity %d: %w", i, len(c.Vars), c.ID, a, ErrArity)
		}
	}

	return nil
}

// Normalize sorts every domain's values and every table's tuples ascending
// (lexicographically), in place.
// Complexity: O(Σ k log k) over domains and tables.
func Normalize(doc *Document) {
	if doc == nil {
		return
	}
	for i := range doc.Domains {
		slices.Sort(doc.Domains[i].Values)
	}
	for i := range doc.ConstraintDefs {
		slices.SortFunc(doc.ConstraintDefs[i].NoGoods, func(a, b []int) int {
			return slices.Compare(a, b)
		})
	}
}
