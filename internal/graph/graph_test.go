package graph

import (
	"math"
	"testing"

	"github.com/ecomarine/ecaroute/internal/core/model"
)

func builtNetwork(t *testing.T) *Graph {
	t.Helper()
	g, err := Build(Network())
	if err != nil {
		t.Fatalf("built-in network invalid: %v", err)
	}
	return g
}

func TestBuild_NetworkIsValid(t *testing.T) {
	g := builtNetwork(t)
	if g.Len() < 60 {
		t.Fatalf("network has %d nodes, expected a global lane set", g.Len())
	}
	// every node should be connected; an isolated node is a data bug
	for _, id := range g.IDs() {
		if len(g.Neighbors(id)) == 0 {
			t.Fatalf("node %q has no edges", id)
		}
	}
}

func TestBuild_AllPassagesPresent(t *testing.T) {
	g := builtNetwork(t)
	tags := g.Passages()
	for _, want := range KnownPassages {
		if !tags[want] {
			t.Fatalf("passage %q missing from network", want)
		}
	}
	if len(tags) != len(KnownPassages) {
		t.Fatalf("network carries %d passage tags, want %d", len(tags), len(KnownPassages))
	}
}

func TestBuild_EdgeWeightsAreSymmetricHaversine(t *testing.T) {
	g := builtNetwork(t)
	for _, id := range g.IDs() {
		for _, e := range g.Neighbors(id) {
			if e.NM <= 0 {
				t.Fatalf("edge %s-%s has weight %v", id, e.To, e.NM)
			}
			back := false
			for _, r := range g.Neighbors(e.To) {
				if r.To == id {
					back = true
					if math.Abs(r.NM-e.NM) > 1e-9 {
						t.Fatalf("edge %s-%s asymmetric: %v vs %v", id, e.To, e.NM, r.NM)
					}
					if r.Passage != e.Passage {
						t.Fatalf("edge %s-%s passage mismatch: %q vs %q", id, e.To, r.Passage, e.Passage)
					}
				}
			}
			if !back {
				t.Fatalf("edge %s-%s has no reverse half", id, e.To)
			}
		}
	}
}

func TestBuild_Rejections(t *testing.T) {
	ok := []Node{node("a", 0, 0), node("b", 1, 1)}

	if _, err := Build([]Node{node("", 0, 0)}, nil); err == nil {
		t.Fatalf("empty node id accepted")
	}
	if _, err := Build([]Node{node("a", 0, 0), node("a", 1, 1)}, nil); err == nil {
		t.Fatalf("duplicate node id accepted")
	}
	if _, err := Build([]Node{node("a", 95, 0)}, nil); err == nil {
		t.Fatalf("out-of-range node accepted")
	}
	if _, err := Build(ok, []Link{{A: "a", B: "missing"}}); err == nil {
		t.Fatalf("link to unknown node accepted")
	}
	if _, err := Build(ok, []Link{{A: "a", B: "a"}}); err == nil {
		t.Fatalf("self loop accepted")
	}
}

func TestNearest_ClosestFirstAndDeterministic(t *testing.T) {
	g := builtNetwork(t)

	rotterdam := model.Coordinate{Lat: 51.9244, Lon: 4.4777}
	got := g.Nearest(rotterdam, 3)
	if len(got) != 3 {
		t.Fatalf("Nearest returned %d ids", len(got))
	}
	if got[0] != "rotterdam-maas" {
		t.Fatalf("nearest to Rotterdam = %q", got[0])
	}
	again := g.Nearest(rotterdam, 3)
	for i := range got {
		if got[i] != again[i] {
			t.Fatalf("Nearest not deterministic: %v vs %v", got, again)
		}
	}
}

func TestNearest_TieBreaksOnID(t *testing.T) {
	g, err := Build([]Node{
		node("east", 0, 1),
		node("west", 0, -1),
		node("anchor", 10, 0),
	}, []Link{{A: "east", B: "anchor"}, {A: "west", B: "anchor"}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := g.Nearest(model.Coordinate{Lat: 0, Lon: 0}, 2)
	if got[0] != "east" || got[1] != "west" {
		t.Fatalf("tie not broken by id: %v", got)
	}
}

func TestNearest_ClampsK(t *testing.T) {
	g := builtNetwork(t)
	all := g.Nearest(model.Coordinate{}, g.Len()+10)
	if len(all) != g.Len() {
		t.Fatalf("k beyond node count returned %d ids", len(all))
	}
	one := g.Nearest(model.Coordinate{}, 0)
	if len(one) != 1 {
		t.Fatalf("k=0 returned %d ids, want 1", len(one))
	}
}
