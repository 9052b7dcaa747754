// Package graph holds the static maritime network: waypoint nodes joined by
// sea-lane edges, with named chokepoints (Suez, Panama, ...) tagged so the
// pathfinder can exclude them on request.
//
// The graph is built once at process start and is read-only afterwards; that
// is the invariant that makes concurrent route requests safe without locks.
package graph

import (
	"fmt"
	"sort"

	"github.com/ecomarine/ecaroute/internal/core/model"
	"github.com/ecomarine/ecaroute/internal/geo"
)

// Node is a coordinate anchored in the network. Identity is the id, not the
// coordinate: chokepoints legitimately carry near-identical positions.
type Node struct {
	ID    string
	Coord model.Coordinate
}

// Link declares an undirected sea lane between two node ids. The great-circle
// weight is derived at build time, never stored in source data.
type Link struct {
	A, B    string
	Passage string // chokepoint tag, empty for ordinary lanes
}

// Halfedge is one direction of a built edge.
type Halfedge struct {
	To      string
	NM      float64
	Passage string
}

// Graph is the built network.
type Graph struct {
	nodes map[string]Node
	adj   map[string][]Halfedge
	ids   []string // sorted, for deterministic iteration
}

// Build validates node and link declarations and derives edge weights.
func Build(nodes []Node, links []Link) (*Graph, error) {
	g := &Graph{
		nodes: make(map[string]Node, len(nodes)),
		adj:   make(map[string][]Halfedge, len(nodes)),
	}
	for _, n := range nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("node with empty id at %v", n.Coord)
		}
		if _, dup := g.nodes[n.ID]; dup {
			return nil, fmt.Errorf("duplicate node id %q", n.ID)
		}
		if err := n.Coord.Validate("node " + n.ID); err != nil {
			return nil, err
		}
		g.nodes[n.ID] = n
		g.ids = append(g.ids, n.ID)
	}
	sort.Strings(g.ids)

	for _, l := range links {
		a, ok := g.nodes[l.A]
		if !ok {
			return nil, fmt.Errorf("link %s-%s: unknown node %q", l.A, l.B, l.A)
		}
		b, ok := g.nodes[l.B]
		if !ok {
			return nil, fmt.Errorf("link %s-%s: unknown node %q", l.A, l.B, l.B)
		}
		if l.A == l.B {
			return nil, fmt.Errorf("link %s-%s is a self loop", l.A, l.B)
		}
		nm := geo.Haversine(a.Coord, b.Coord)
		g.adj[l.A] = append(g.adj[l.A], Halfedge{To: l.B, NM: nm, Passage: l.Passage})
		g.adj[l.B] = append(g.adj[l.B], Halfedge{To: l.A, NM: nm, Passage: l.Passage})
	}
	// deterministic neighbor order
	for id := range g.adj {
		es := g.adj[id]
		sort.Slice(es, func(i, j int) bool { return es[i].To < es[j].To })
	}
	return g, nil
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// IDs returns all node ids in sorted order.
func (g *Graph) IDs() []string { return g.ids }

// Len returns the node count.
func (g *Graph) Len() int { return len(g.ids) }

// Neighbors returns the outgoing halfedges of a node, sorted by target id.
func (g *Graph) Neighbors(id string) []Halfedge { return g.adj[id] }

// Nearest returns the k nearest node ids to the coordinate by great-circle
// distance, closest first. Distance ties break toward the lower node id so
// snapping is deterministic.
func (g *Graph) Nearest(c model.Coordinate, k int) []string {
	if k < 1 {
		k = 1
	}
	if k > len(g.ids) {
		k = len(g.ids)
	}
	type cand struct {
		id string
		nm float64
	}
	cands := make([]cand, 0, len(g.ids))
	for _, id := range g.ids {
		cands = append(cands, cand{id: id, nm: geo.Haversine(c, g.nodes[id].Coord)})
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].nm != cands[j].nm {
			return cands[i].nm < cands[j].nm
		}
		return cands[i].id < cands[j].id
	})
	out := make([]string, k)
	for i := 0; i < k; i++ {
		out[i] = cands[i].id
	}
	return out
}

// Passages returns the set of chokepoint tags present in the network.
func (g *Graph) Passages() map[string]bool {
	out := make(map[string]bool)
	for _, es := range g.adj {
		for _, e := range es {
			if e.Passage != "" {
				out[e.Passage] = true
			}
		}
	}
	return out
}
