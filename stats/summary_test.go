package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michal-dobrogost/csp-json/csp"
	"github.com/michal-dobrogost/csp-json/stats"
	"github.com/michal-dobrogost/csp-json/urbcsp"
)

// path3 is a path 0-1-2 over four boolean variables sharing one table.
func path3() *csp.Document {
	return &csp.Document{
		Meta:    csp.Meta{ID: "path3", Algo: "manual"},
		Domains: []csp.Domain{{Values: []int{0, 1}}},
		Vars:    []int{0, 0, 0, 0},
		ConstraintDefs: []csp.ConstraintDef{
			{NoGoods: [][]int{{0, 0}}},
			{NoGoods: [][]int{{1, 1}}},
		},
		Constraints: []csp.Constraint{
			{ID: 0, Vars: []int{0, 1}},
			{ID: 0, Vars: []int{1, 2}},
		},
	}
}

func TestSummarize_Path(t *testing.T) {
	t.Parallel()

	s, err := stats.Summarize(path3())
	require.NoError(t, err)

	assert.Equal(t, 4, s.Variables)
	assert.Equal(t, 2, s.Constraints)
	assert.Equal(t, 2, s.Relations)
	assert.Equal(t, 1, s.RelationsUsed)
	assert.InDelta(t, 2.0/6.0, s.Density, 1e-12)
	assert.InDelta(t, 0.25, s.Tightness, 1e-12)
	assert.InDelta(t, 1.0, s.DegreeMean, 1e-12)
	assert.InDelta(t, math.Sqrt(0.5), s.DegreeStdDev, 1e-12)
	assert.Equal(t, 2, s.DegreeMax)
	assert.Equal(t, 1, s.IsolatedVariables)
	assert.Equal(t, 2, s.Components)
	assert.Equal(t, 3, s.LargestComponent)
	require.NotNil(t, s.Constrainedness)
	assert.InDelta(t, 2*-math.Log2(0.75)/4, *s.Constrainedness, 1e-12)
}

func TestSummarize_FullTablesHaveNoKappa(t *testing.T) {
	t.Parallel()

	d := path3()
	d.ConstraintDefs[0].NoGoods = [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	s, err := stats.Summarize(d)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s.Tightness, 1e-12)
	assert.Nil(t, s.Constrainedness)
}

func TestSummarize_Errors(t *testing.T) {
	t.Parallel()

	d := path3()
	d.Constraints[0].ID = 5
	_, err := stats.Summarize(d)
	assert.ErrorIs(t, err, csp.ErrDefRange)

	d = path3()
	d.ConstraintDefs = []csp.ConstraintDef{{}}
	d.Constraints = []csp.Constraint{{ID: 0, Vars: []int{0, 1, 2}}}
	_, err = stats.Summarize(d)
	assert.ErrorIs(t, err, stats.ErrNotBinary)
}

// TestSummarize_Generated ties the summary back to the generator's parameters.
func TestSummarize_Generated(t *testing.T) {
	t.Parallel()

	p := urbcsp.ParamSet{N: 100, D: 10, C: 10, T: 10, S: 100, I: 99, K: 10}
	doc, err := urbcsp.Generate(p)
	require.NoError(t, err)

	s, err := stats.Summarize(doc)
	require.NoError(t, err)
	assert.Equal(t, p.ID(), s.ID)
	assert.InDelta(t, 10.0/4950.0, s.Density, 1e-12)
	assert.InDelta(t, 0.1, s.Tightness, 1e-12)
	assert.InDelta(t, 0.2, s.DegreeMean, 1e-12)
	assert.Equal(t, 10, s.RelationsUsed)
	assert.Equal(t, 1, s.DegreeMax)
	assert.Equal(t, 80, s.IsolatedVariables)
	// Ten disjoint edges plus eighty singletons.
	assert.Equal(t, 90, s.Components)
	assert.Equal(t, 2, s.LargestComponent)
}
