// Package urbcsp provides validation helpers that enforce parameter
// contracts before any draw happens.
//
// Each helper returns an error wrapping ErrInvalidParams when its
// precondition is violated.
package urbcsp

import "fmt"

// validateRange ensures min ≤ got ≤ max for the named parameter.
// Returns "<Method>: <name>=<got> not in [<min>,<max>]: urbcsp: invalid parameters".
//
// Parameters:
//   - method: canonical method name, e.g. MethodValidate.
//   - name:   parameter key (KeyN, KeyD, ...).
//   - got:    actual value supplied by the caller.
//   - min:    smallest acceptable value.
//   - max:    largest acceptable value.
//
// Complexity: O(1) time and space.
func validateRange(method, name string, got, min, max int) error {
	if got < min || got > max {
		return fmt.Errorf("%s: %s=%d not in [%d,%d]: %w", method, name, got, min, max, ErrInvalidParams)
	}

	return nil
}
