// SPDX-License-Identifier: MIT
// Package: csp-json/stats
//
// summary.go - descriptive statistics of a binary CSP instance.
//
// Quantities (standard in the random-CSP literature):
//   - p1 (density):    constraints / (n(n-1)/2).
//   - p2 (tightness):  mean over referenced tables of |nogoods| / (|D_u|·|D_v|).
//   - degree:          number of constraints each variable appears in;
//                      mean, population stddev and max over all variables.
//   - κ (constrainedness, Gent et al. 1996):
//                      Σ_c −log2(1 − p2_c) / Σ_v log2 |D_v|,
//                      reported only when finite.
//   - components:      connected components of the constraint graph and
//                      the size of the largest.
//
// The summary never evaluates constraints, so it says nothing about
// satisfiability.

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/michal-dobrogost/csp-json/csp"
)

// Summary describes the shape of one instance.
type Summary struct {
	ID                string   `yaml:"id"`
	Algo              string   `yaml:"algo"`
	Variables         int      `yaml:"variables"`
	Domains           int      `yaml:"domains"`
	Constraints       int      `yaml:"constraints"`
	Relations         int      `yaml:"relations"`
	RelationsUsed     int      `yaml:"relationsUsed"`
	Density           float64  `yaml:"density"`
	Tightness         float64  `yaml:"tightness"`
	DegreeMean        float64  `yaml:"degreeMean"`
	DegreeStdDev      float64  `yaml:"degreeStdDev"`
	DegreeMax         int      `yaml:"degreeMax"`
	Constrainedness   *float64 `yaml:"constrainedness,omitempty"`
	IsolatedVariables int      `yaml:"isolatedVariables"`
	Components        int      `yaml:"components"`
	LargestComponent  int      `yaml:"largestComponent"`
}

// Summarize computes the Summary of a binary instance. doc must pass
// csp.Validate and every constraint must be binary.
// Complexity: O(n + c + k).
func Summarize(doc *csp.Document) (Summary, error) {
	if err := csp.Validate(doc); err != nil {
		return Summary{}, fmt.Errorf("Summarize: %w", err)
	}

	n := len(doc.Vars)
	s := Summary{
		ID:          doc.Meta.ID,
		Algo:        doc.Meta.Algo,
		Variables:   n,
		Domains:     len(doc.Domains),
		Constraints: len(doc.Constraints),
		Relations:   len(doc.ConstraintDefs),
	}

	sizes := make([]float64, n)
	for v, dom := range doc.Vars {
		sizes[v] = float64(len(doc.Domains[dom].Values))
	}

	degree := make([]float64, n)
	used := make([]bool, len(doc.ConstraintDefs))
	tight := make([]float64, 0, len(doc.Constraints))
	scopes := make([][2]int, 0, len(doc.Constraints))
	var penalty float64
	for i, c := range doc.Constraints {
		if len(c.Vars) != 2 {
			return Summary{}, fmt.Errorf("Summarize: constraints[%d] has arity %d: %w", i, len(c.Vars), ErrNotBinary)
		}
		u, v := c.Vars[0], c.Vars[1]
		scopes = append(scopes, [2]int{u, v})
		degree[u]++
		degree[v]++
		used[c.ID] = true

		pairs := sizes[u] * sizes[v]
		p2 := 0.0
		if pairs > 0 {
			p2 = float64(len(doc.ConstraintDefs[c.ID].NoGoods)) / pairs
		}
		tight = append(tight, p2)
		penalty += -math.Log2(1 - p2)
	}

	for _, u := range used {
		if u {
			s.RelationsUsed++
		}
	}
	if n >= 2 {
		s.Density = float64(len(doc.Constraints)) / (float64(n) * float64(n-1) / 2)
	}
	if len(tight) > 0 {
		s.Tightness = stat.Mean(tight, nil)
	}
	if n > 0 {
		s.DegreeMean, s.DegreeStdDev = stat.PopMeanStdDev(degree, nil)
		s.DegreeMax = int(floats.Max(degree))
		for _, d := range degree {
			if d == 0 {
				s.IsolatedVariables++
			}
		}
	}

	s.Components, s.LargestComponent = newConstraintGraph(n, scopes).components()

	var capacity float64
	for _, sz := range sizes {
		if sz > 0 {
			capacity += math.Log2(sz)
		}
	}
	if kappa := penalty / capacity; capacity > 0 && !math.IsInf(kappa, 0) && !math.IsNaN(kappa) {
		s.Constrainedness = &kappa
	}

	return s, nil
}
