package route

import (
	"errors"
	"math"
	"testing"

	"github.com/ecomarine/ecaroute/internal/core/model"
	"github.com/ecomarine/ecaroute/internal/graph"
)

var (
	rotterdam = model.Coordinate{Lat: 51.9244, Lon: 4.4777}
	newYork   = model.Coordinate{Lat: 40.7128, Lon: -74.0060}
	singapore = model.Coordinate{Lat: 1.3521, Lon: 103.8198}
)

func networkPathfinder(t *testing.T, snapK int) *Pathfinder {
	t.Helper()
	g, err := graph.Build(graph.Network())
	if err != nil {
		t.Fatalf("network: %v", err)
	}
	return NewPathfinder(g, snapK)
}

func hasTag(tags []string, want string) bool {
	for _, tg := range tags {
		if tg == want {
			return true
		}
	}
	return false
}

func TestFind_TransatlanticDistanceIsPlausible(t *testing.T) {
	pf := networkPathfinder(t, 3)
	r, err := pf.Find(rotterdam, newYork, nil)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if r.DistanceNM < 3000 || r.DistanceNM > 5000 {
		t.Fatalf("Rotterdam-New York = %.0f nm, want 3000..5000", r.DistanceNM)
	}
	if len(r.Waypoints) < 4 {
		t.Fatalf("route has only %d waypoints", len(r.Waypoints))
	}
	if r.Waypoints[0] != rotterdam || r.Waypoints[len(r.Waypoints)-1] != newYork {
		t.Fatalf("route does not start/end at the requested points")
	}
	if len(r.Passages) != 0 {
		t.Fatalf("transatlantic route traverses passages %v", r.Passages)
	}
}

func TestFind_Symmetric(t *testing.T) {
	pf := networkPathfinder(t, 3)
	fwd, err := pf.Find(rotterdam, newYork, nil)
	if err != nil {
		t.Fatalf("forward: %v", err)
	}
	rev, err := pf.Find(newYork, rotterdam, nil)
	if err != nil {
		t.Fatalf("reverse: %v", err)
	}
	if math.Abs(fwd.DistanceNM-rev.DistanceNM) > 1e-6 {
		t.Fatalf("asymmetric: %.6f vs %.6f", fwd.DistanceNM, rev.DistanceNM)
	}
}

func TestFind_SingaporeRotterdamUsesSuez(t *testing.T) {
	pf := networkPathfinder(t, 3)
	r, err := pf.Find(singapore, rotterdam, nil)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !hasTag(r.Passages, graph.PassageSuez) {
		t.Fatalf("unrestricted route avoids Suez: passages=%v", r.Passages)
	}
	if r.DistanceNM < 8000 || r.DistanceNM > 10000 {
		t.Fatalf("Singapore-Rotterdam via Suez = %.0f nm, want 8000..10000", r.DistanceNM)
	}
}

func TestFind_SuezRestrictionForcesCapeRoute(t *testing.T) {
	pf := networkPathfinder(t, 3)
	direct, err := pf.Find(singapore, rotterdam, nil)
	if err != nil {
		t.Fatalf("unrestricted: %v", err)
	}
	detour, err := pf.Find(singapore, rotterdam, map[string]bool{graph.PassageSuez: true})
	if err != nil {
		t.Fatalf("restricted: %v", err)
	}
	if hasTag(detour.Passages, graph.PassageSuez) {
		t.Fatalf("restricted route still tagged suez: %v", detour.Passages)
	}
	if detour.DistanceNM <= direct.DistanceNM {
		t.Fatalf("detour %.0f nm not longer than direct %.0f nm", detour.DistanceNM, direct.DistanceNM)
	}
	if detour.DistanceNM < 10000 {
		t.Fatalf("cape route = %.0f nm, expected well over 10000", detour.DistanceNM)
	}
}

func TestFind_NoRouteWhenChokepointSealsDestination(t *testing.T) {
	// With single-node snapping, the Black Sea is only reachable through the
	// Bosporus.
	pf := networkPathfinder(t, 1)
	blackSea := model.Coordinate{Lat: 43.0, Lon: 33.0}
	malta := model.Coordinate{Lat: 35.5, Lon: 16.2}

	if _, err := pf.Find(blackSea, malta, map[string]bool{graph.PassageBosporus: true}); !errors.Is(err, ErrNoRoute) {
		t.Fatalf("want ErrNoRoute, got %v", err)
	}
	// sanity: unrestricted, the same pair routes fine
	if _, err := pf.Find(blackSea, malta, nil); err != nil {
		t.Fatalf("unrestricted: %v", err)
	}
}

func TestFind_SamePointIsDegenerate(t *testing.T) {
	pf := networkPathfinder(t, 3)
	r, err := pf.Find(rotterdam, rotterdam, nil)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if r.DistanceNM != 0 {
		t.Fatalf("degenerate distance = %v", r.DistanceNM)
	}
	if len(r.Waypoints) != 2 {
		t.Fatalf("degenerate waypoints = %d, want 2", len(r.Waypoints))
	}
	if len(r.Passages) != 0 {
		t.Fatalf("degenerate route has passages %v", r.Passages)
	}
}

func TestFind_AntimeridianRouteStaysShort(t *testing.T) {
	pf := networkPathfinder(t, 3)
	west := model.Coordinate{Lat: 0, Lon: 179}
	east := model.Coordinate{Lat: 0, Lon: -179}
	r, err := pf.Find(west, east, nil)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if r.DistanceNM > 1000 {
		t.Fatalf("dateline route = %.0f nm, the search took the long way around", r.DistanceNM)
	}
}

func TestFind_Deterministic(t *testing.T) {
	pf := networkPathfinder(t, 3)
	a, err := pf.Find(singapore, newYork, nil)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	b, err := pf.Find(singapore, newYork, nil)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if a.DistanceNM != b.DistanceNM || len(a.Waypoints) != len(b.Waypoints) {
		t.Fatalf("route changed between identical calls")
	}
	for i := range a.Waypoints {
		if a.Waypoints[i] != b.Waypoints[i] {
			t.Fatalf("waypoint %d differs between identical calls", i)
		}
	}
}
