// Package csp models CSP-JSON documents: the domains, variables, nogood
// tables and constraints of a constraint satisfaction problem instance.
//
// It provides:
//
//   - Document and its parts (types.go).
//   - Marshal / Encode: the canonical, byte-exact text layout (encode.go).
//   - Decode / Unmarshal: reading any JSON rendering back (decode.go).
//   - Validate: reference and arity checks; Normalize: canonical ordering
//     of domain values and nogood tuples (validate.go).
//
// Errors are sentinels (errors.go); every validation failure also matches
// ErrInvalidDocument under errors.Is.
package csp
