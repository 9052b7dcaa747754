// Package geo is the geometry kernel: great-circle distance, point-in-polygon
// and segment/polygon overlap estimation on a spherical-earth approximation.
//
// All longitudes are normalized to [-180,180] before distance or containment
// work. Skipping that normalization silently turns a short dateline-crossing
// leg into a near-half-circumference one, which is the single most important
// correctness property this package guards.
package geo

import (
	"fmt"
	"math"

	"github.com/ecomarine/ecaroute/internal/core/model"
)

// EarthRadiusNM is the mean earth radius in nautical miles.
const EarthRadiusNM = 3440.065

// NormalizeLon wraps a longitude into [-180,180].
func NormalizeLon(lon float64) float64 {
	for lon > 180 {
		lon -= 360
	}
	for lon < -180 {
		lon += 360
	}
	return lon
}

// LonDelta returns the shortest signed longitude difference b-a in [-180,180].
func LonDelta(a, b float64) float64 {
	return NormalizeLon(b - a)
}

// Haversine returns the great-circle distance between two coordinates in
// nautical miles. Pure and total for in-range inputs.
func Haversine(a, b model.Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := LonDelta(a.Lon, b.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * EarthRadiusNM * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Interpolate returns the point a fraction f (0..1) of the way from a to b,
// interpolating linearly in (lat,lon) with the longitude delta normalized so
// the interpolation never walks the long way around the dateline. Graph edges
// are short relative to the globe, so chord interpolation is an adequate
// stand-in for true great-circle interpolation here.
func Interpolate(a, b model.Coordinate, f float64) model.Coordinate {
	return model.Coordinate{
		Lat: a.Lat + (b.Lat-a.Lat)*f,
		Lon: NormalizeLon(a.Lon + LonDelta(a.Lon, b.Lon)*f),
	}
}

// Ring is a closed polygon ring of (lon,lat) vertices. The closing vertex may
// be present or omitted; both forms are accepted.
type Ring []model.Coordinate

// open returns the ring without an explicit closing vertex.
func (r Ring) open() Ring {
	if len(r) >= 2 && r[0] == r[len(r)-1] {
		return r[:len(r)-1]
	}
	return r
}

// Validate rejects rings that cannot form a simple polygon: fewer than three
// distinct vertices, out-of-range coordinates, or self-intersecting edges.
// Catalogue data is static, so this runs once at startup and any failure is
// fatal there, never per request.
func (r Ring) Validate() error {
	v := r.open()
	if len(v) < 3 {
		return fmt.Errorf("ring has %d vertices, need at least 3", len(v))
	}
	for i, p := range v {
		if err := p.Validate(fmt.Sprintf("vertex %d", i)); err != nil {
			return err
		}
	}
	n := len(v)
	for i := 0; i < n; i++ {
		a1, a2 := v[i], v[(i+1)%n]
		for j := i + 1; j < n; j++ {
			// skip adjacent edges (shared vertex is not an intersection)
			if j == i || (j+1)%n == i || (i+1)%n == j {
				continue
			}
			b1, b2 := v[j], v[(j+1)%n]
			if segmentsCross(a1, a2, b1, b2) {
				return fmt.Errorf("ring self-intersects: edge %d crosses edge %d", i, j)
			}
		}
	}
	return nil
}

// BBox returns the axis-aligned bounding box of the ring.
func (r Ring) BBox() model.BBox {
	v := r.open()
	if len(v) == 0 {
		return model.BBox{}
	}
	b := model.NewBBox(v[0].Lon, v[0].Lat)
	for _, p := range v[1:] {
		b.Extend(p.Lon, p.Lat)
	}
	return b
}

// Contains performs a ray-casting test in (lon,lat) space. Points on the ring
// boundary count as inside; a route waypoint sitting exactly on a shared zone
// border must not flap between adjacent zones.
func (r Ring) Contains(p model.Coordinate) bool {
	v := r.open()
	if len(v) < 3 {
		return false
	}
	lon := NormalizeLon(p.Lon)
	lat := p.Lat

	n := len(v)
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := v[i].Lon, v[i].Lat
		xj, yj := v[j].Lon, v[j].Lat

		if onSegment(lon, lat, xi, yi, xj, yj) {
			return true
		}
		if (yi > lat) != (yj > lat) {
			x := xi + (lat-yi)/(yj-yi)*(xj-xi)
			if lon < x {
				inside = !inside
			}
		}
	}
	return inside
}

// SegmentOverlapNM estimates the length in nautical miles of the leg p1->p2
// that lies inside the ring. The leg is treated as a great-circle chord and
// sampled at subsegment midpoints every resolutionNM miles, trading exact
// chord/polygon intersection for repeated containment tests. Graph edges are
// short relative to zone size, so the sampling error is well under the
// nautical-mile-scale accuracy this engine targets.
func SegmentOverlapNM(p1, p2 model.Coordinate, r Ring, resolutionNM float64) float64 {
	length := Haversine(p1, p2)
	if length == 0 {
		return 0
	}
	if resolutionNM <= 0 {
		resolutionNM = 1.0
	}
	steps := int(math.Ceil(length / resolutionNM))
	if steps < 1 {
		steps = 1
	}
	inside := 0
	for i := 0; i < steps; i++ {
		mid := (float64(i) + 0.5) / float64(steps)
		if r.Contains(Interpolate(p1, p2, mid)) {
			inside++
		}
	}
	return length * float64(inside) / float64(steps)
}

// SegmentBBox returns a bounding box covering the leg p1->p2, or false when
// the leg crosses the antimeridian and a single axis-aligned box cannot
// represent it. Callers fall back to sampling without the cheap pre-filter in
// that case.
func SegmentBBox(p1, p2 model.Coordinate) (model.BBox, bool) {
	if math.Abs(p2.Lon-p1.Lon) > 180 {
		return model.BBox{}, false
	}
	b := model.NewBBox(p1.Lon, p1.Lat)
	b.Extend(p2.Lon, p2.Lat)
	return b, true
}

func onSegment(px, py, x1, y1, x2, y2 float64) bool {
	const eps = 1e-9
	cross := (x2-x1)*(py-y1) - (y2-y1)*(px-x1)
	if math.Abs(cross) > eps {
		return false
	}
	dot := (px-x1)*(x2-x1) + (py-y1)*(y2-y1)
	if dot < -eps {
		return false
	}
	sq := (x2-x1)*(x2-x1) + (y2-y1)*(y2-y1)
	return dot <= sq+eps
}

// segmentsCross reports proper intersection of two open segments. Shared
// endpoints do not count; rings reuse vertices between adjacent edges.
func segmentsCross(a1, a2, b1, b2 model.Coordinate) bool {
	d1 := direction(b1, b2, a1)
	d2 := direction(b1, b2, a2)
	d3 := direction(a1, a2, b1)
	d4 := direction(a1, a2, b2)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

func direction(a, b, c model.Coordinate) float64 {
	return (b.Lon-a.Lon)*(c.Lat-a.Lat) - (b.Lat-a.Lat)*(c.Lon-a.Lon)
}
