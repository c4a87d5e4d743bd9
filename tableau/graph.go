package tableau

import "fmt"

// Edge is an undirected pair of vertex indices.
type Edge [2]int

// FromEdges builds the canonical |G> graph-state tableau directly from an
// edge list: X = I_n, Z = the adjacency matrix of the edges (symmetric,
// zero diagonal), sign = 0. n = 1 + the maximum vertex index seen.
func FromEdges(edges []Edge) (*Tableau, error) {
	n := 0
	for _, e := range edges {
		if e[0] < 0 || e[1] < 0 {
			return nil, fmt.Errorf("tableau: negative vertex in edge %v", e)
		}
		if e[0]+1 > n {
			n = e[0] + 1
		}
		if e[1]+1 > n {
			n = e[1] + 1
		}
	}
	if n == 0 {
		return nil, fmt.Errorf("tableau: empty edge list")
	}
	t := NewZero(n)
	for i := 0; i < n; i++ {
		t.SetX(i, i, true)
		t.SetZ(i, i, false) // NewZero put Z on the diagonal; the graph state wants X there instead
	}
	for _, e := range edges {
		u, v := e[0], e[1]
		if u == v {
			return nil, fmt.Errorf("tableau: self-loop edge %v not allowed", e)
		}
		t.SetZ(u, v, true)
		t.SetZ(v, u, true)
	}
	return t, nil
}
