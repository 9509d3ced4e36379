package stats

import "errors"

// ErrNotBinary indicates a constraint whose scope is not exactly two variables.
var ErrNotBinary = errors.New("stats: constraint is not binary")
