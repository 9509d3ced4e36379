// SPDX-License-Identifier: MIT
// Package: csp-json/urbcsp
//
// impl_assign.go - ConstraintAssigner: edge → relation template.
//
// Policy (frozen): relationFor(j, k) = j mod k.
//   - k == c: identity, every edge owns its template.
//   - k < c:  templates are reused round-robin in acceptance order.
//
// The same mapping decides which template slot the nogood table drawn right
// after edge j is stored in (see impl_build.go).

package urbcsp

// relationFor returns the relation id of the edge accepted j-th.
// k must be ≥ 1.
func relationFor(j, k int) int {
	return j % k
}
