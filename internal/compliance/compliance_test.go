package compliance

import (
	"math"
	"testing"

	"github.com/ecomarine/ecaroute/internal/route"
	"github.com/ecomarine/ecaroute/internal/zones"
)

func TestEvaluate_ZeroDistanceRoute(t *testing.T) {
	rep := Evaluate(route.Attribution{}, DefaultFuelPrices(), DefaultBurnRateTonsPerNM)
	if rep.ECAPercentage != 0 {
		t.Fatalf("zero route percentage = %v", rep.ECAPercentage)
	}
	if rep.Status != StatusNone {
		t.Fatalf("zero route status = %q", rep.Status)
	}
	if rep.ExtraCostUSD != 0 {
		t.Fatalf("zero route cost = %v", rep.ExtraCostUSD)
	}
}

func TestEvaluate_Percentage(t *testing.T) {
	attr := route.Attribution{TotalNM: 1000, ECANM: 250}
	rep := Evaluate(attr, DefaultFuelPrices(), DefaultBurnRateTonsPerNM)
	if math.Abs(rep.ECAPercentage-25) > 1e-9 {
		t.Fatalf("percentage = %v want 25", rep.ECAPercentage)
	}
}

func TestEvaluate_StatusPrecedence(t *testing.T) {
	ecaOnly := route.Attribution{
		TotalNM: 100, ECANM: 10,
		PerZone: []route.ZoneDistance{{Zone: "a", Type: zones.TypeECA, Regulation: "EPA", NM: 10}},
	}
	if rep := Evaluate(ecaOnly, DefaultFuelPrices(), 0); rep.Status != StatusECA {
		t.Fatalf("eca-only status = %q", rep.Status)
	}

	// a SECA anywhere on the route dominates, regardless of order
	mixed := route.Attribution{
		TotalNM: 100, ECANM: 20,
		PerZone: []route.ZoneDistance{
			{Zone: "a", Type: zones.TypeSECA, Regulation: "IMO 2020", NM: 10},
			{Zone: "b", Type: zones.TypeECA, Regulation: "EPA", NM: 10},
		},
	}
	if rep := Evaluate(mixed, DefaultFuelPrices(), 0); rep.Status != StatusSECA {
		t.Fatalf("mixed status = %q", rep.Status)
	}
	reversed := mixed
	reversed.PerZone = []route.ZoneDistance{mixed.PerZone[1], mixed.PerZone[0]}
	if rep := Evaluate(reversed, DefaultFuelPrices(), 0); rep.Status != StatusSECA {
		t.Fatalf("reversed mixed status = %q", rep.Status)
	}
}

func TestEvaluate_RegulationsDeduplicated(t *testing.T) {
	attr := route.Attribution{
		TotalNM: 100, ECANM: 30,
		PerZone: []route.ZoneDistance{
			{Zone: "a", Type: zones.TypeSECA, Regulation: "IMO 2020", NM: 10},
			{Zone: "b", Type: zones.TypeSECA, Regulation: "IMO 2020", NM: 10},
			{Zone: "c", Type: zones.TypeECA, Regulation: "EPA", NM: 10},
		},
	}
	rep := Evaluate(attr, DefaultFuelPrices(), DefaultBurnRateTonsPerNM)
	if len(rep.Regulations) != 2 || rep.Regulations[0] != "IMO 2020" || rep.Regulations[1] != "EPA" {
		t.Fatalf("regulations = %v", rep.Regulations)
	}
}

func TestEvaluate_ExtraCostFormula(t *testing.T) {
	attr := route.Attribution{TotalNM: 500, ECANM: 100}
	rep := Evaluate(attr, DefaultFuelPrices(), DefaultBurnRateTonsPerNM)

	// (650-450) usd/ton * 100 nm * 0.15 ton/nm
	want := 200.0 * 100 * 0.15
	if math.Abs(rep.ExtraCostUSD-want) > 1e-9 {
		t.Fatalf("cost = %v want %v", rep.ExtraCostUSD, want)
	}
	if !rep.Prices.Assumed {
		t.Fatalf("default prices not flagged assumed")
	}
}

func TestEvaluate_CallerPricesRespected(t *testing.T) {
	attr := route.Attribution{TotalNM: 500, ECANM: 100}
	prices := FuelPrices{LowSulphurUSDPerTon: 700, HighSulphurUSDPerTon: 500}
	rep := Evaluate(attr, prices, 0.2)

	want := 200.0 * 100 * 0.2
	if math.Abs(rep.ExtraCostUSD-want) > 1e-9 {
		t.Fatalf("cost = %v want %v", rep.ExtraCostUSD, want)
	}
	if rep.Prices.Assumed {
		t.Fatalf("explicit prices flagged assumed")
	}
	if rep.BurnRate != 0.2 {
		t.Fatalf("burn rate = %v want 0.2", rep.BurnRate)
	}
}

func TestEvaluate_NonPositiveBurnRateFallsBack(t *testing.T) {
	attr := route.Attribution{TotalNM: 500, ECANM: 100}
	rep := Evaluate(attr, DefaultFuelPrices(), -1)
	if rep.BurnRate != DefaultBurnRateTonsPerNM {
		t.Fatalf("burn rate = %v want default", rep.BurnRate)
	}
}
