// SPDX-License-Identifier: MIT
// Package: csp-json/urbcsp
//
// errors.go - sentinel errors for the urbcsp package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`: "<Method>: <detail>: %w".
//   • Generation never panics; option constructors may (see options.go).
//
// Priority when several checks fail: parameters are checked in the order
// n, d, c, t, k, s, i and the first failure is reported.

package urbcsp

import "errors"

// ErrInvalidParams indicates a parameter outside its admissible range:
// n<2, d<1, c outside [0, n(n-1)/2], t outside [1, d·d], k outside [1, c]
// (or k≠0 when c=0), s outside int32, i<0.
// Classification: user error, detected before any draw.
// Usage: if errors.Is(err, ErrInvalidParams) { /* report and exit non-zero */ }.
var ErrInvalidParams = errors.New("urbcsp: invalid parameters")

// ErrSamplingExhausted indicates a sampler was asked for more picks than its
// index space holds. Validation rules this out, so seeing it means a defect.
// It is never retried.
var ErrSamplingExhausted = errors.New("urbcsp: sampling exhausted")
