package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstraintGraph_Components(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		n       int
		scopes  [][2]int
		count   int
		largest int
	}{
		{"empty", 0, nil, 0, 0},
		{"singletons", 3, nil, 3, 1},
		{"triangle plus one", 4, [][2]int{{0, 1}, {1, 2}, {0, 2}}, 2, 3},
		{"parallel edges", 3, [][2]int{{0, 2}, {2, 0}}, 2, 2},
		{"chain", 5, [][2]int{{3, 4}, {0, 1}, {1, 2}, {2, 3}}, 1, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			count, largest := newConstraintGraph(tc.n, tc.scopes).components()
			assert.Equal(t, tc.count, count)
			assert.Equal(t, tc.largest, largest)
		})
	}
}
