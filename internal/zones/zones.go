// Package zones holds the immutable catalogue of emission-control areas.
//
// The catalogue is built once at process start, validated, and never mutated
// afterwards; every request reads it concurrently without coordination.
package zones

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/ecomarine/ecaroute/internal/core/model"
	"github.com/ecomarine/ecaroute/internal/geo"
)

// Type classifies a zone by its regulatory regime.
type Type string

const (
	TypeSECA Type = "seca"
	TypeECA  Type = "eca"
)

// Zone is a named emission-control region: a simple closed polygon plus the
// regulatory metadata served verbatim by the zones listing.
type Zone struct {
	Name            string
	Type            Type
	YearEstablished int
	RequiredSulphur string
	Regulation      string
	Territory       string
	Status          string
	Ring            geo.Ring

	// derived at load, cached for fast rejection
	BBox model.BBox
}

// Catalogue is the validated, ordered zone set. Order matters: a point that
// geometrically matches more than one zone resolves to the first match in
// catalogue order.
type Catalogue struct {
	zones       []Zone
	byName      map[string]int
	fingerprint uint64
}

// NewCatalogue validates the zones and derives bounding boxes and the content
// fingerprint. Any malformed polygon is a startup-fatal error; the catalogue
// is static, so this never surfaces per request.
func NewCatalogue(zs []Zone) (*Catalogue, error) {
	if len(zs) == 0 {
		return nil, fmt.Errorf("zone catalogue is empty")
	}
	byName := make(map[string]int, len(zs))
	h := xxhash.New()
	for i := range zs {
		z := &zs[i]
		if z.Name == "" {
			return nil, fmt.Errorf("zone %d has no name", i)
		}
		if _, dup := byName[z.Name]; dup {
			return nil, fmt.Errorf("duplicate zone name %q", z.Name)
		}
		if z.Type != TypeSECA && z.Type != TypeECA {
			return nil, fmt.Errorf("zone %q: unknown type %q", z.Name, z.Type)
		}
		if err := z.Ring.Validate(); err != nil {
			return nil, fmt.Errorf("zone %q: %w", z.Name, err)
		}
		if z.Status == "" {
			z.Status = "active"
		}
		z.BBox = z.Ring.BBox()
		byName[z.Name] = i

		_, _ = h.WriteString(z.Name)
		_, _ = h.WriteString(string(z.Type))
		for _, p := range z.Ring {
			_, _ = fmt.Fprintf(h, "%.6f,%.6f;", p.Lon, p.Lat)
		}
	}
	return &Catalogue{zones: zs, byName: byName, fingerprint: h.Sum64()}, nil
}

// Zones returns the catalogue in order. Callers must not mutate the slice.
func (c *Catalogue) Zones() []Zone { return c.zones }

// Len returns the number of zones.
func (c *Catalogue) Len() int { return len(c.zones) }

// ByName returns the zone with the given name.
func (c *Catalogue) ByName(name string) (*Zone, bool) {
	i, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	return &c.zones[i], true
}

// Fingerprint is a stable hash of the catalogue content, baked into cache
// keys so cached lookups self-invalidate when the zone data changes between
// deployments.
func (c *Catalogue) Fingerprint() uint64 { return c.fingerprint }

// FindAt returns the first zone in catalogue order containing the point, or
// nil. The bounding box check rejects most zones before the exact test.
func (c *Catalogue) FindAt(p model.Coordinate) *Zone {
	lon := geo.NormalizeLon(p.Lon)
	for i := range c.zones {
		z := &c.zones[i]
		if !z.BBox.Contains(lon, p.Lat) {
			continue
		}
		if z.Ring.Contains(p) {
			return z
		}
	}
	return nil
}
