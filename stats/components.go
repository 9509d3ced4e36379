// SPDX-License-Identifier: MIT
// Package: csp-json/stats
//
// components.go - connected components of the constraint graph.
//
// The constraint graph has one vertex per variable and one undirected edge
// per constraint scope. Components are found with an iterative
// breadth-first walk over adjacency lists; each vertex is enqueued once.

package stats

// constraintGraph is an adjacency-list view of binary constraint scopes.
// Parallel edges are kept; they do not change reachability.
type constraintGraph struct {
	adj [][]int
}

func newConstraintGraph(n int, scopes [][2]int) *constraintGraph {
	g := &constraintGraph{adj: make([][]int, n)}
	for _, e := range scopes {
		g.adj[e[0]] = append(g.adj[e[0]], e[1])
		g.adj[e[1]] = append(g.adj[e[1]], e[0])
	}
	return g
}

// components returns the number of connected components and the size of
// the largest one. Isolated variables count as singleton components.
// Complexity: O(n + c).
func (g *constraintGraph) components() (count, largest int) {
	visited := make([]bool, len(g.adj))
	queue := make([]int, 0, len(g.adj))

	for root := range g.adj {
		if visited[root] {
			continue
		}
		count++
		visited[root] = true
		queue = append(queue[:0], root)
		for head := 0; head < len(queue); head++ {
			for _, nb := range g.adj[queue[head]] {
				if !visited[nb] {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}
		largest = max(largest, len(queue))
	}
	return count, largest
}
