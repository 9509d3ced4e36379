// Package stats summarises the shape of a binary CSP instance: constraint
// graph density, mean tightness, degree distribution and constrainedness.
//
// Numeric reductions use gonum (stat, floats).
package stats
