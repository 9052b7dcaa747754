package zones

import "github.com/ecomarine/ecaroute/internal/core/model"

func ring(pts ...[2]float64) []model.Coordinate {
	out := make([]model.Coordinate, len(pts))
	for i, p := range pts {
		out[i] = model.Coordinate{Lon: p[0], Lat: p[1]}
	}
	return out
}

// Builtin returns the compiled-in zone set: the seven areas regulated under
// MARPOL Annex VI as of 2025. The polygons are simplified outlines adequate
// for nautical-mile-scale attribution, not legal boundaries. Catalogue order
// is the tie-break order for ambiguous containment.
func Builtin() []Zone {
	return []Zone{
		{
			Name:            "Baltic Sea SECA",
			Type:            TypeSECA,
			YearEstablished: 2006,
			RequiredSulphur: "0.1%",
			Regulation:      "IMO 2020",
			Territory:       "EU",
			Ring: ring(
				[2]float64{10.5, 53.5},
				[2]float64{30.5, 53.5},
				[2]float64{30.5, 66.2},
				[2]float64{10.5, 66.2},
			),
		},
		{
			Name:            "United States Caribbean ECA",
			Type:            TypeECA,
			YearEstablished: 2014,
			RequiredSulphur: "0.1%",
			Regulation:      "EPA",
			Territory:       "US Caribbean",
			Ring: ring(
				[2]float64{-68.5, 16.8},
				[2]float64{-63.8, 16.8},
				[2]float64{-63.8, 19.6},
				[2]float64{-68.5, 19.6},
			),
		},
		{
			Name:            "North American ECA 1 (East Coast)",
			Type:            TypeECA,
			YearEstablished: 2014,
			RequiredSulphur: "0.1%",
			Regulation:      "EPA",
			Territory:       "US East Coast & Canada",
			Ring: ring(
				[2]float64{-82.0, 24.0},
				[2]float64{-75.5, 25.5},
				[2]float64{-70.5, 33.5},
				[2]float64{-65.0, 40.0},
				[2]float64{-59.0, 45.0},
				[2]float64{-65.0, 46.0},
				[2]float64{-70.0, 43.5},
				[2]float64{-74.6, 40.8},
				[2]float64{-75.8, 35.2},
				[2]float64{-80.0, 31.0},
			),
		},
		{
			Name:            "North American ECA 2 (West Coast)",
			Type:            TypeECA,
			YearEstablished: 2014,
			RequiredSulphur: "0.1%",
			Regulation:      "EPA",
			Territory:       "US West Coast & Canada",
			Ring: ring(
				[2]float64{-140.0, 30.5},
				[2]float64{-117.0, 30.5},
				[2]float64{-117.0, 61.0},
				[2]float64{-140.0, 61.0},
			),
		},
		{
			Name:            "North American ECA 3 (Gulf Coast)",
			Type:            TypeECA,
			YearEstablished: 2014,
			RequiredSulphur: "0.1%",
			Regulation:      "EPA",
			Territory:       "US Gulf Coast & Mexico",
			Ring: ring(
				[2]float64{-97.0, 23.5},
				[2]float64{-82.5, 23.5},
				[2]float64{-82.5, 30.5},
				[2]float64{-97.0, 30.5},
			),
		},
		{
			Name:            "North Sea SECA",
			Type:            TypeSECA,
			YearEstablished: 2007,
			RequiredSulphur: "0.1%",
			Regulation:      "IMO 2020",
			Territory:       "EU + UK",
			Ring: ring(
				[2]float64{-5.5, 48.4},
				[2]float64{10.0, 50.5},
				[2]float64{10.5, 57.5},
				[2]float64{4.0, 62.0},
				[2]float64{-4.0, 62.0},
			),
		},
		{
			Name:            "Mediterranean ECA",
			Type:            TypeECA,
			YearEstablished: 2025,
			RequiredSulphur: "0.5%",
			Regulation:      "MARPOL Annex VI",
			Territory:       "Mediterranean",
			Ring: ring(
				[2]float64{-5.8, 30.0},
				[2]float64{36.5, 30.0},
				[2]float64{36.5, 40.5},
				[2]float64{28.5, 42.2},
				[2]float64{28.5, 46.0},
				[2]float64{-5.8, 46.0},
			),
		},
	}
}
