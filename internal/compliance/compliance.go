// Package compliance turns a route attribution into a regulatory status and
// fuel-cost estimate. Pure arithmetic; no I/O, no shared state.
package compliance

import (
	"github.com/ecomarine/ecaroute/internal/route"
	"github.com/ecomarine/ecaroute/internal/zones"
)

// Status of a route against emission-control regulation.
const (
	StatusSECA = "seca"
	StatusECA  = "eca"
	StatusNone = "none"
)

// Fuel defaults, substituted when the caller supplies no prices and echoed
// back in the response so the assumption is visible. The burn rate is a fleet
// average for a mid-size container vessel at service speed; it is a
// configuration value, not a physical constant.
const (
	DefaultLowSulphurUSDPerTon  = 650.0
	DefaultHighSulphurUSDPerTon = 450.0
	DefaultBurnRateTonsPerNM    = 0.15
)

// FuelPrices are the bunker prices used for the cost delta. Assumed marks
// defaulted values.
type FuelPrices struct {
	LowSulphurUSDPerTon  float64
	HighSulphurUSDPerTon float64
	Assumed              bool
}

// DefaultFuelPrices returns the documented defaults, flagged as assumed.
func DefaultFuelPrices() FuelPrices {
	return FuelPrices{
		LowSulphurUSDPerTon:  DefaultLowSulphurUSDPerTon,
		HighSulphurUSDPerTon: DefaultHighSulphurUSDPerTon,
		Assumed:              true,
	}
}

// Report is the compliance and cost summary for one attributed route.
type Report struct {
	ECAPercentage float64
	Status        string
	Regulations   []string // union over traversed zones, catalogue order
	ExtraCostUSD  float64
	Prices        FuelPrices
	BurnRate      float64
}

// Evaluate derives the report from an attribution. A zero-distance route
// yields 0% and zero cost rather than a division by zero.
func Evaluate(attr route.Attribution, prices FuelPrices, burnRateTonsPerNM float64) Report {
	if burnRateTonsPerNM <= 0 {
		burnRateTonsPerNM = DefaultBurnRateTonsPerNM
	}

	rep := Report{
		Status:   StatusNone,
		Prices:   prices,
		BurnRate: burnRateTonsPerNM,
	}
	if attr.TotalNM > 0 {
		rep.ECAPercentage = 100 * attr.ECANM / attr.TotalNM
	}

	seen := map[string]bool{}
	for _, zd := range attr.PerZone {
		switch zd.Type {
		case zones.TypeSECA:
			rep.Status = StatusSECA
		case zones.TypeECA:
			if rep.Status != StatusSECA {
				rep.Status = StatusECA
			}
		}
		if !seen[zd.Regulation] {
			seen[zd.Regulation] = true
			rep.Regulations = append(rep.Regulations, zd.Regulation)
		}
	}

	perTonDelta := prices.LowSulphurUSDPerTon - prices.HighSulphurUSDPerTon
	rep.ExtraCostUSD = perTonDelta * attr.ECANM * burnRateTonsPerNM
	return rep
}
