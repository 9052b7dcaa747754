// Package engine is the narrow interface the request layer consumes: compute
// a route, check a point, list the zones. It owns no mutable state; the graph
// and catalogue it references are immutable after startup, so one Engine
// serves all concurrent requests.
package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ecomarine/ecaroute/internal/cache/pointcache"
	"github.com/ecomarine/ecaroute/internal/compliance"
	"github.com/ecomarine/ecaroute/internal/core/model"
	"github.com/ecomarine/ecaroute/internal/core/observability"
	"github.com/ecomarine/ecaroute/internal/graph"
	"github.com/ecomarine/ecaroute/internal/route"
	"github.com/ecomarine/ecaroute/internal/zones"
)

// Config carries the tunables the engine needs beyond its data.
type Config struct {
	SnapCandidates     int
	SampleResolutionNM float64
	Prices             compliance.FuelPrices
	BurnRateTonsPerNM  float64
}

// Engine computes routes and zone checks against fixed data.
type Engine struct {
	g      *graph.Graph
	cat    *zones.Catalogue
	pf     *route.Pathfinder
	cache  *pointcache.Cache // may be nil
	known  map[string]bool
	cfg    Config
	sorted []string // known passage tags, for error text
}

// Outcome bundles everything one route request produces.
type Outcome struct {
	Route       route.Result
	Attribution route.Attribution
	Report      compliance.Report
}

// New wires an engine. cache may be nil to disable point-check caching.
func New(g *graph.Graph, cat *zones.Catalogue, cache *pointcache.Cache, cfg Config) *Engine {
	if cfg.SnapCandidates < 1 {
		cfg.SnapCandidates = 3
	}
	if cfg.SampleResolutionNM <= 0 {
		cfg.SampleResolutionNM = route.DefaultSampleResolutionNM
	}
	if cfg.Prices == (compliance.FuelPrices{}) {
		cfg.Prices = compliance.DefaultFuelPrices()
	}
	if cfg.BurnRateTonsPerNM <= 0 {
		cfg.BurnRateTonsPerNM = compliance.DefaultBurnRateTonsPerNM
	}
	known := g.Passages()
	sorted := make([]string, 0, len(known))
	for tag := range known {
		sorted = append(sorted, tag)
	}
	sort.Strings(sorted)
	return &Engine{
		g:      g,
		cat:    cat,
		pf:     route.NewPathfinder(g, cfg.SnapCandidates),
		cache:  cache,
		known:  known,
		cfg:    cfg,
		sorted: sorted,
	}
}

// ValidateRestrictions rejects unknown passage labels before any search runs.
func (e *Engine) ValidateRestrictions(labels []string) error {
	for _, l := range labels {
		if !e.known[strings.ToLower(strings.TrimSpace(l))] {
			return fmt.Errorf("unknown restriction %q, valid passages: %s", l, strings.Join(e.sorted, ", "))
		}
	}
	return nil
}

// ComputeRoute runs the restricted shortest-path search, attributes the
// result over the zone catalogue and evaluates compliance and fuel cost.
// Coordinates must already be validated. A zero-value prices argument falls
// back to the configured prices. Returns route.ErrNoRoute (wrapped) when the
// restrictions disconnect the endpoints.
func (e *Engine) ComputeRoute(origin, dest model.Coordinate, restrictions []string, prices compliance.FuelPrices) (Outcome, error) {
	restricted := make(map[string]bool, len(restrictions))
	for _, l := range restrictions {
		restricted[strings.ToLower(strings.TrimSpace(l))] = true
	}
	if prices == (compliance.FuelPrices{}) {
		prices = e.cfg.Prices
	}

	r, err := e.pf.Find(origin, dest, restricted)
	if err != nil {
		observability.ObserveRoute("no_route", 0)
		return Outcome{}, err
	}

	attr := route.Attribute(r, e.cat, e.cfg.SampleResolutionNM)
	rep := compliance.Evaluate(attr, prices, e.cfg.BurnRateTonsPerNM)

	if r.DistanceNM == 0 {
		observability.ObserveRoute("degenerate", 0)
	} else {
		observability.ObserveRoute("ok", r.DistanceNM)
	}
	return Outcome{Route: r, Attribution: attr, Report: rep}, nil
}

// CheckPoint returns the first zone in catalogue order containing the point,
// or nil. Results are cached per H3 cell when a cache is configured.
func (e *Engine) CheckPoint(ctx context.Context, p model.Coordinate) *zones.Zone {
	if e.cache != nil {
		if name, ok := e.cache.Get(ctx, p); ok {
			if name == "" {
				observability.ObservePointCheck(false)
				return nil
			}
			if z, found := e.cat.ByName(name); found {
				observability.ObservePointCheck(true)
				return z
			}
			// cached name no longer in catalogue; fall through to recompute
		}
	}

	z := e.cat.FindAt(p)
	if e.cache != nil {
		name := ""
		if z != nil {
			name = z.Name
		}
		e.cache.Put(ctx, p, name)
	}
	observability.ObservePointCheck(z != nil)
	return z
}

// Zones exposes the catalogue for the listing endpoint.
func (e *Engine) Zones() []zones.Zone { return e.cat.Zones() }
