// SPDX-License-Identifier: MIT
// Package: csp-json/urbcsp
//
// params.go - raw and resolved generation parameters.
//
// Lifecycle:
//   • Params is what a caller collects (CLI args, a YAML file); K is optional.
//   • Resolve applies the k := c default and validates, yielding a ParamSet.
//   • ParamSet is immutable and passed by value into Generate.

package urbcsp

import (
	"fmt"
	"math"
	"math/bits"
)

// Params holds generation parameters as supplied by a caller.
// A nil K means "one relation per constraint" (k = c).
type Params struct {
	N int  // number of variables
	D int  // domain size
	C int  // number of constraints
	T int  // tightness: nogoods per relation
	S int  // base seed
	I int  // instance index
	K *int // number of relation definitions; nil ⇒ C
}

// ParamSet is a resolved, validated parameter set.
type ParamSet struct {
	N, D, C, T, S, I, K int
}

// Resolve fills in the default k and validates the result.
// Complexity: O(1).
func (p Params) Resolve() (ParamSet, error) {
	ps := ParamSet{N: p.N, D: p.D, C: p.C, T: p.T, S: p.S, I: p.I, K: p.C}
	if p.K != nil {
		ps.K = *p.K
	}
	if err := ps.Validate(); err != nil {
		return ParamSet{}, fmt.Errorf("%s: %w", MethodResolve, err)
	}
	return ps, nil
}

// Validate reports the first parameter outside its admissible range,
// wrapped around ErrInvalidParams.
// Complexity: O(1).
func (p ParamSet) Validate() error {
	if err := validateRange(MethodValidate, KeyN, p.N, MinVars, math.MaxInt32); err != nil {
		return err
	}
	if err := validateRange(MethodValidate, KeyD, p.D, MinDomain, math.MaxInt32); err != nil {
		return err
	}
	if err := validateRange(MethodValidate, KeyC, p.C, 0, p.MaxConstraints()); err != nil {
		return err
	}
	if err := validateRange(MethodValidate, KeyT, p.T, MinTightness, p.MaxTightness()); err != nil {
		return err
	}
	if p.C == 0 {
		if err := validateRange(MethodValidate, KeyK, p.K, 0, 0); err != nil {
			return err
		}
	} else if err := validateRange(MethodValidate, KeyK, p.K, 1, p.C); err != nil {
		return err
	}
	if err := validateRange(MethodValidate, KeyS, p.S, math.MinInt32, math.MaxInt32); err != nil {
		return err
	}
	if err := validateRange(MethodValidate, KeyI, p.I, 0, math.MaxInt); err != nil {
		return err
	}
	if _, ok := p.streamOffset(); !ok {
		return fmt.Errorf("%s: i=%d: stream offset overflows: %w", MethodValidate, p.I, ErrInvalidParams)
	}
	return nil
}

// MaxConstraints is the number of distinct variable pairs, n(n-1)/2.
func (p ParamSet) MaxConstraints() int {
	if p.N < MinVars {
		return 0
	}
	return p.N * (p.N - 1) / 2
}

// MaxTightness is the number of distinct value pairs, d·d.
func (p ParamSet) MaxTightness() int {
	if p.D < MinDomain {
		return 0
	}
	return p.D * p.D
}

// DrawsPerInstance is the number of generator values one instance consumes:
// one per constraint plus t per constraint for its nogood table.
func (p ParamSet) DrawsPerInstance() int64 {
	return int64(p.C) * (1 + int64(p.T))
}

// ID renders meta.id for the parameter set.
func (p ParamSet) ID() string {
	return fmt.Sprintf(idFormat, p.N, p.D, p.C, p.T, p.S, p.I, p.K)
}

// streamOffset is the number of draws preceding instance i.
func (p ParamSet) streamOffset() (int64, bool) {
	per := p.DrawsPerInstance()
	if p.I < 0 || per < 0 {
		return 0, false
	}
	hi, lo := bits.Mul64(uint64(p.I), uint64(per))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}
	return int64(lo), true
}
