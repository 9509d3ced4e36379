// SPDX-License-Identifier: MIT
// Package: csp-json/urbcsp
//
// options.go - functional options for Generate.
//
// Contract (strict):
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generation itself MUST NOT panic.
//   • Options never alter the drawn instance.

package urbcsp

import "log/slog"

// Option customizes Generate by mutating a genConfig before generation begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*genConfig)

// WithLogger routes generation diagnostics to l.
// Panics on nil to surface programmer error early.
// Complexity: O(1) time, O(1) space.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("urbcsp: WithLogger(nil)")
	}
	return func(c *genConfig) {
		c.logger = l
	}
}
