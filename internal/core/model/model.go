// Package model defines core domain types shared across the service.
package model

import "fmt"

// Coordinate is a point on the globe in degrees. Latitude is in [-90,90],
// longitude in [-180,180]; out-of-range values are rejected at the request
// layer before any engine code sees them.
type Coordinate struct {
	Lat float64
	Lon float64
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Lat, c.Lon)
}

// Validate reports the first out-of-range component, naming the field so
// the request layer can echo it back to the caller.
func (c Coordinate) Validate(field string) error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("invalid %s latitude: %g. Must be between -90 and 90", field, c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("invalid %s longitude: %g. Must be between -180 and 180", field, c.Lon)
	}
	return nil
}

// BBox is an axis-aligned bounding box in (lon,lat) degrees.
type BBox struct {
	MinLon float64 `json:"min_lon"`
	MaxLon float64 `json:"max_lon"`
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
}

// Contains reports whether the point lies inside or on the box.
func (b BBox) Contains(lon, lat float64) bool {
	return lon >= b.MinLon && lon <= b.MaxLon && lat >= b.MinLat && lat <= b.MaxLat
}

// Intersects reports whether two boxes share any area (edges count).
func (b BBox) Intersects(o BBox) bool {
	return b.MinLon <= o.MaxLon && o.MinLon <= b.MaxLon &&
		b.MinLat <= o.MaxLat && o.MinLat <= b.MaxLat
}

// Extend grows the box to cover the given point.
func (b *BBox) Extend(lon, lat float64) {
	if lon < b.MinLon {
		b.MinLon = lon
	}
	if lon > b.MaxLon {
		b.MaxLon = lon
	}
	if lat < b.MinLat {
		b.MinLat = lat
	}
	if lat > b.MaxLat {
		b.MaxLat = lat
	}
}

// NewBBox returns a degenerate box anchored at a single point, ready to be
// extended.
func NewBBox(lon, lat float64) BBox {
	return BBox{MinLon: lon, MaxLon: lon, MinLat: lat, MaxLat: lat}
}
