package zones

import (
	"fmt"
	"strings"

	shp "github.com/jonas-p/go-shp"

	"github.com/ecomarine/ecaroute/internal/core/model"
)

// shapefileMetadata maps the area attribute of the upstream merged ECA
// shapefile onto full zone metadata. The Mediterranean feature carries a
// numeric area field upstream, hence the odd key.
var shapefileMetadata = map[string]Zone{
	"Baltic Sea area": {
		Name: "Baltic Sea SECA", Type: TypeSECA, YearEstablished: 2006,
		RequiredSulphur: "0.1%", Regulation: "IMO 2020", Territory: "EU",
	},
	"United States Caribbean sea area": {
		Name: "United States Caribbean ECA", Type: TypeECA, YearEstablished: 2014,
		RequiredSulphur: "0.1%", Regulation: "EPA", Territory: "US Caribbean",
	},
	"North American area 1": {
		Name: "North American ECA 1 (East Coast)", Type: TypeECA, YearEstablished: 2014,
		RequiredSulphur: "0.1%", Regulation: "EPA", Territory: "US East Coast & Canada",
	},
	"North American area 2": {
		Name: "North American ECA 2 (West Coast)", Type: TypeECA, YearEstablished: 2014,
		RequiredSulphur: "0.1%", Regulation: "EPA", Territory: "US West Coast & Canada",
	},
	"North American area 3": {
		Name: "North American ECA 3 (Gulf Coast)", Type: TypeECA, YearEstablished: 2014,
		RequiredSulphur: "0.1%", Regulation: "EPA", Territory: "US Gulf Coast & Mexico",
	},
	"North Sea area": {
		Name: "North Sea SECA", Type: TypeSECA, YearEstablished: 2007,
		RequiredSulphur: "0.1%", Regulation: "IMO 2020", Territory: "EU + UK",
	},
	"2513586.274558733": {
		Name: "Mediterranean ECA", Type: TypeECA, YearEstablished: 2025,
		RequiredSulphur: "0.5%", Regulation: "MARPOL Annex VI", Territory: "Mediterranean",
	},
}

// FromShapefile reads zone polygons from an ESRI shapefile. Features whose
// area attribute has no metadata mapping are rejected rather than guessed at;
// a bad catalogue should fail loudly at startup. Multi-part features keep
// their largest ring only, which is sufficient for the upstream data where
// secondary parts are small islands.
func FromShapefile(path string) ([]Zone, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open shapefile: %w", err)
	}
	defer r.Close()

	areaField := -1
	for i, f := range r.Fields() {
		if strings.EqualFold(strings.TrimRight(f.String(), "\x00"), "area") {
			areaField = i
		}
	}
	if areaField < 0 {
		return nil, fmt.Errorf("shapefile %s has no area attribute", path)
	}

	var out []Zone
	for r.Next() {
		n, s := r.Shape()
		poly, ok := s.(*shp.Polygon)
		if !ok {
			return nil, fmt.Errorf("feature %d is not a polygon", n)
		}
		area := strings.TrimSpace(r.ReadAttribute(n, areaField))
		meta, ok := shapefileMetadata[area]
		if !ok {
			return nil, fmt.Errorf("feature %d: no metadata for area %q", n, area)
		}
		meta.Ring = largestRing(poly)
		out = append(out, meta)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("shapefile %s contains no polygon features", path)
	}
	return out, nil
}

func largestRing(p *shp.Polygon) []model.Coordinate {
	if len(p.Parts) == 0 {
		return toCoords(p.Points)
	}
	best, bestLen := 0, 0
	for i := range p.Parts {
		start := int(p.Parts[i])
		end := len(p.Points)
		if i+1 < len(p.Parts) {
			end = int(p.Parts[i+1])
		}
		if end-start > bestLen {
			best, bestLen = i, end-start
		}
	}
	start := int(p.Parts[best])
	end := len(p.Points)
	if best+1 < len(p.Parts) {
		end = int(p.Parts[best+1])
	}
	return toCoords(p.Points[start:end])
}

func toCoords(pts []shp.Point) []model.Coordinate {
	out := make([]model.Coordinate, len(pts))
	for i, pt := range pts {
		out[i] = model.Coordinate{Lon: pt.X, Lat: pt.Y}
	}
	return out
}
