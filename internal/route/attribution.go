package route

import (
	"github.com/ecomarine/ecaroute/internal/geo"
	"github.com/ecomarine/ecaroute/internal/zones"
)

// DefaultSampleResolutionNM is the spacing between containment samples when
// estimating how much of a leg lies inside a zone. One nautical mile keeps
// the attribution error far below the leg lengths in the built-in network
// while staying cheap; exact chord/polygon intersection would be a valid,
// more precise implementation of the same contract.
const DefaultSampleResolutionNM = 1.0

// ZoneDistance is the portion of a route inside one zone.
type ZoneDistance struct {
	Zone       string
	Type       zones.Type
	Regulation string
	NM         float64
}

// Attribution reports how a route's length distributes over the catalogue.
// PerZone holds only traversed zones, in catalogue order. ECANM is the summed
// zone distance, clamped so sampling jitter can never push it past TotalNM.
type Attribution struct {
	TotalNM float64
	ECANM   float64
	PerZone []ZoneDistance
}

// Attribute walks each leg of the route against the catalogue. Zones whose
// bounding box cannot touch the leg are rejected before any sampling; a leg
// crossing the antimeridian skips that pre-filter and is sampled directly.
func Attribute(r Result, cat *zones.Catalogue, resolutionNM float64) Attribution {
	if resolutionNM <= 0 {
		resolutionNM = DefaultSampleResolutionNM
	}

	perZone := make([]float64, cat.Len())
	var total float64

	for i := 0; i+1 < len(r.Waypoints); i++ {
		p1, p2 := r.Waypoints[i], r.Waypoints[i+1]
		legNM := geo.Haversine(p1, p2)
		total += legNM
		if legNM == 0 {
			continue
		}

		legBox, boxOK := geo.SegmentBBox(p1, p2)
		var legSum float64
		for zi, z := range cat.Zones() {
			if boxOK && !legBox.Intersects(z.BBox) {
				continue
			}
			nm := geo.SegmentOverlapNM(p1, p2, z.Ring, resolutionNM)
			if nm <= 0 {
				continue
			}
			// adjacent zones may split one leg, but their sum cannot
			// exceed the leg itself
			if legSum+nm > legNM {
				nm = legNM - legSum
			}
			perZone[zi] += nm
			legSum += nm
		}
	}

	out := Attribution{TotalNM: total}
	for zi, z := range cat.Zones() {
		if perZone[zi] <= 0 {
			continue
		}
		out.PerZone = append(out.PerZone, ZoneDistance{
			Zone:       z.Name,
			Type:       z.Type,
			Regulation: z.Regulation,
			NM:         perZone[zi],
		})
		out.ECANM += perZone[zi]
	}
	if out.ECANM > out.TotalNM {
		out.ECANM = out.TotalNM
	}
	return out
}
