// SPDX-License-Identifier: MIT
// Package: csp-json/csp
//
// types.go - in-memory form of a CSP-JSON document.
//
// Shape:
//   - Domains are value lists; Vars[v] indexes Domains.
//   - ConstraintDefs are nogood tables; Constraints[i].ID indexes ConstraintDefs.
//   - Tuples keep the arity of the table (2 for binary nogoods).
//
// Ownership:
//   - A Document is built once and treated as immutable afterwards; Normalize
//     is the only helper that mutates it and is meant to run before encoding.

package csp

// Param is one entry of meta.params. The slice form keeps key order stable.
type Param struct {
	Key   string
	Value int
}

// Meta identifies the instance and the algorithm that produced it.
type Meta struct {
	ID     string
	Algo   string
	Params []Param
}

// Param returns the value stored under key.
func (m Meta) Param(key string) (int, bool) {
	for _, p := range m.Params {
		if p.Key == key {
			return p.Value, true
		}
	}
	return 0, false
}

// Domain is an explicit list of values.
type Domain struct {
	Values []int
}

// ConstraintDef is a relation given by its forbidden tuples.
type ConstraintDef struct {
	NoGoods [][]int
}

// Arity reports the tuple width of the table, or -1 when it is empty or ragged.
func (c ConstraintDef) Arity() int {
	if len(c.NoGoods) == 0 {
		return -1
	}
	a := len(c.NoGoods[0])
	for _, t := range c.NoGoods[1:] {
		if len(t) != a {
			return -1
		}
	}
	return a
}

// Constraint applies ConstraintDefs[ID] to the listed variables.
type Constraint struct {
	ID   int
	Vars []int
}

// Document is a complete CSP instance.
type Document struct {
	Meta           Meta
	Domains        []Domain
	Vars           []int
	ConstraintDefs []ConstraintDef
	Constraints    []Constraint
}
