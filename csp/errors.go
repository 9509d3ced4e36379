// SPDX-License-Identifier: MIT
// Package: csp-json/csp
//
// errors.go - sentinel errors for the csp package.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Context (index, value) is attached with %w at the failure site.
//   - Every validation sentinel also matches ErrInvalidDocument.

package csp

import (
	"errors"
	"fmt"
)

// ErrInvalidDocument is the umbrella for every structural validation failure.
var ErrInvalidDocument = errors.New("csp: invalid document")

// ErrDomainRange indicates a Vars entry that does not index Domains.
var ErrDomainRange = fmt.Errorf("%w: variable domain out of range", ErrInvalidDocument)

// ErrDefRange indicates a Constraint.ID that does not index ConstraintDefs.
var ErrDefRange = fmt.Errorf("%w: constraint def out of range", ErrInvalidDocument)

// ErrVarRange indicates a Constraint.Vars entry that does not index Vars.
var ErrVarRange = fmt.Errorf("%w: constraint variable out of range", ErrInvalidDocument)

// ErrArity indicates a constraint whose scope width differs from its table's tuple width,
// or a table whose tuples disagree on width.
var ErrArity = fmt.Errorf("%w: arity mismatch", ErrInvalidDocument)

// ErrMalformed indicates input that is not a CSP-JSON document at all.
var ErrMalformed = errors.New("csp: malformed json")
