// Package route computes shortest maritime paths over the static network and
// attributes route distance to emission-control zones.
package route

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/ecomarine/ecaroute/internal/core/model"
	"github.com/ecomarine/ecaroute/internal/geo"
	"github.com/ecomarine/ecaroute/internal/graph"
)

// ErrNoRoute is returned when the restriction set disconnects origin from
// destination. It must surface to the caller as a distinct condition; the
// pathfinder never falls back to the unrestricted shortest path.
var ErrNoRoute = errors.New("no route found")

// Virtual node ids for the snapped endpoints. The leading space sorts them
// ahead of every network id and cannot collide with one.
const (
	originID = " origin"
	destID   = " destination"
)

// Result is one computed route. Produced fresh per request and owned by the
// caller; nothing here is cached or shared.
type Result struct {
	Waypoints  []model.Coordinate
	DistanceNM float64
	Passages   []string // chokepoint tags in traversal order, deduplicated
}

// Pathfinder runs restricted shortest-path searches over a fixed graph. It is
// stateless apart from the read-only graph reference, so a single instance
// serves concurrent requests.
type Pathfinder struct {
	g     *graph.Graph
	snapK int
}

// NewPathfinder returns a pathfinder snapping endpoints to the snapK nearest
// network nodes. One candidate is the minimum; more improves route quality
// around clustered nodes and near the antimeridian.
func NewPathfinder(g *graph.Graph, snapK int) *Pathfinder {
	if snapK < 1 {
		snapK = 1
	}
	return &Pathfinder{g: g, snapK: snapK}
}

// Find computes the shortest route from origin to destination, excluding any
// edge whose passage tag is in restricted. Coordinates are assumed validated.
// A same-point request yields a zero-distance two-waypoint result, not an
// error.
func (p *Pathfinder) Find(origin, dest model.Coordinate, restricted map[string]bool) (Result, error) {
	if origin == dest {
		return Result{
			Waypoints:  []model.Coordinate{origin, dest},
			DistanceNM: 0,
		}, nil
	}

	type snapEdge struct {
		to string
		nm float64
	}
	snapFrom := make([]snapEdge, 0, p.snapK)
	for _, id := range p.g.Nearest(origin, p.snapK) {
		n, _ := p.g.Node(id)
		snapFrom = append(snapFrom, snapEdge{to: id, nm: geo.Haversine(origin, n.Coord)})
	}
	snapTo := make(map[string]float64, p.snapK)
	for _, id := range p.g.Nearest(dest, p.snapK) {
		n, _ := p.g.Node(id)
		snapTo[id] = geo.Haversine(dest, n.Coord)
	}

	dist := map[string]float64{originID: 0}
	prev := map[string]string{}
	prevTag := map[string]string{}
	done := map[string]bool{}

	pq := &nodeQueue{}
	heap.Init(pq)
	heap.Push(pq, nodeItem{id: originID, nm: 0})

	relax := func(from, to string, nm float64, tag string) {
		next := dist[from] + nm
		if cur, seen := dist[to]; !seen || next < cur {
			dist[to] = next
			prev[to] = from
			prevTag[to] = tag
			heap.Push(pq, nodeItem{id: to, nm: next})
		}
	}

	for pq.Len() > 0 {
		it := heap.Pop(pq).(nodeItem)
		if done[it.id] {
			continue // stale lazy-decrease-key entry
		}
		done[it.id] = true
		if it.id == destID {
			break
		}

		if it.id == originID {
			for _, se := range snapFrom {
				relax(originID, se.to, se.nm, "")
			}
			continue
		}
		for _, e := range p.g.Neighbors(it.id) {
			if e.Passage != "" && restricted[e.Passage] {
				continue
			}
			if !done[e.To] {
				relax(it.id, e.To, e.NM, e.Passage)
			}
		}
		if nm, ok := snapTo[it.id]; ok {
			relax(it.id, destID, nm, "")
		}
	}

	if !done[destID] {
		return Result{}, fmt.Errorf("%w: origin %v to destination %v with restrictions", ErrNoRoute, origin, dest)
	}

	// walk predecessors back to the origin
	var ids []string
	for id := destID; ; id = prev[id] {
		ids = append(ids, id)
		if id == originID {
			break
		}
	}
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}

	res := Result{
		Waypoints:  make([]model.Coordinate, 0, len(ids)),
		DistanceNM: dist[destID],
	}
	seenTag := map[string]bool{}
	for _, id := range ids {
		switch id {
		case originID:
			res.Waypoints = append(res.Waypoints, origin)
		case destID:
			res.Waypoints = append(res.Waypoints, dest)
		default:
			n, _ := p.g.Node(id)
			res.Waypoints = append(res.Waypoints, n.Coord)
		}
		if tag := prevTag[id]; tag != "" && !seenTag[tag] {
			seenTag[tag] = true
			res.Passages = append(res.Passages, tag)
		}
	}
	return res, nil
}

// nodeItem orders the priority queue by distance, then node id, so equal-cost
// ties resolve identically on every call.
type nodeItem struct {
	id string
	nm float64
}

type nodeQueue []nodeItem

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].nm != q[j].nm {
		return q[i].nm < q[j].nm
	}
	return q[i].id < q[j].id
}

func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x any) { *q = append(*q, x.(nodeItem)) }

func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}
