// Package router validates incoming requests and maps them onto the engine.
// Coordinate range checks happen here: the engine only ever sees in-range
// values, and a bad request is a client error, never a computation error.
package router

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ecomarine/ecaroute/internal/compliance"
	"github.com/ecomarine/ecaroute/internal/core/model"
	"github.com/ecomarine/ecaroute/internal/core/observability"
	"github.com/ecomarine/ecaroute/internal/engine"
	"github.com/ecomarine/ecaroute/internal/graph"
	"github.com/ecomarine/ecaroute/internal/route"
)

// Handlers serves the three engine-backed endpoints.
type Handlers struct {
	Engine *engine.Engine
	Log    *slog.Logger
}

// RouteRequest is the calculate_route body. Coordinates are [lat, lon] for
// user-friendliness; the engine works in typed coordinates internally.
type RouteRequest struct {
	Origin             []float64   `json:"origin"`
	Destination        []float64   `json:"destination"`
	Restrictions       []string    `json:"restrictions"`
	IncludeExplanation bool        `json:"include_explanation"` // accepted for forward compatibility, not yet acted on
	FuelPrices         *FuelPrices `json:"fuel_prices,omitempty"`
}

// FuelPrices optionally overrides the configured bunker prices per request.
type FuelPrices struct {
	LowSulphurUSDPerTon  float64 `json:"low_sulphur_usd_per_ton"`
	HighSulphurUSDPerTon float64 `json:"high_sulphur_usd_per_ton"`
}

type zoneDistanceJSON struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	DistanceNM float64 `json:"distance_nm"`
}

type complianceJSON struct {
	Status      string   `json:"status"`
	Regulations []string `json:"regulations"`
}

type fuelImpactJSON struct {
	ECADistanceNM        float64 `json:"eca_distance_nm"`
	LowSulphurUSDPerTon  float64 `json:"low_sulphur_price_usd_per_ton"`
	HighSulphurUSDPerTon float64 `json:"high_sulphur_price_usd_per_ton"`
	BurnRateTonsPerNM    float64 `json:"assumed_burn_rate_tons_per_nm"`
	TotalExtraCostUSD    float64 `json:"total_extra_cost_usd"`
	PricesAssumed        bool    `json:"prices_assumed"`
}

type routeResponse struct {
	Origin            []float64          `json:"origin"`
	Destination       []float64          `json:"destination"`
	Restrictions      []string           `json:"restrictions"`
	TraversedPassage  *string            `json:"traversed_passage"`
	TraversedPassages []string           `json:"traversed_passages"`
	DistanceNM        float64            `json:"distance_nm"`
	ECADistanceNM     float64            `json:"eca_distance_nm"`
	ECAPercentage     float64            `json:"eca_percentage"`
	Waypoints         [][]float64        `json:"waypoints"`
	ECAZones          []zoneDistanceJSON `json:"eca_zones"`
	Compliance        complianceJSON     `json:"compliance"`
	FuelImpact        fuelImpactJSON     `json:"fuel_impact"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// CalculateRoute handles POST /calculate_route.
func (h *Handlers) CalculateRoute(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
	defer func() {
		observability.ObserveHTTP(r.Method, "/calculate_route", sw.code, time.Since(start).Seconds())
	}()

	var req RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(sw, http.StatusBadRequest, "invalid_request", "malformed JSON body: "+err.Error())
		return
	}
	origin, err := parseLatLon(req.Origin, "origin")
	if err != nil {
		writeError(sw, http.StatusBadRequest, "invalid_coordinate", err.Error())
		return
	}
	dest, err := parseLatLon(req.Destination, "destination")
	if err != nil {
		writeError(sw, http.StatusBadRequest, "invalid_coordinate", err.Error())
		return
	}
	if err := h.Engine.ValidateRestrictions(req.Restrictions); err != nil {
		writeError(sw, http.StatusBadRequest, "invalid_restriction", err.Error())
		return
	}
	prices := compliance.FuelPrices{}
	if req.FuelPrices != nil {
		if req.FuelPrices.LowSulphurUSDPerTon <= 0 || req.FuelPrices.HighSulphurUSDPerTon <= 0 {
			writeError(sw, http.StatusBadRequest, "invalid_fuel_prices", "fuel prices must be positive")
			return
		}
		prices = compliance.FuelPrices{
			LowSulphurUSDPerTon:  req.FuelPrices.LowSulphurUSDPerTon,
			HighSulphurUSDPerTon: req.FuelPrices.HighSulphurUSDPerTon,
		}
	}

	out, err := h.Engine.ComputeRoute(origin, dest, req.Restrictions, prices)
	if err != nil {
		if errors.Is(err, route.ErrNoRoute) {
			writeError(sw, http.StatusUnprocessableEntity, "no_route_found", err.Error())
			return
		}
		h.Log.ErrorContext(r.Context(), "route computation failed", "err", err)
		writeError(sw, http.StatusInternalServerError, "internal_error", "route calculation failed")
		return
	}

	restrictions := req.Restrictions
	if restrictions == nil {
		restrictions = []string{}
	}
	waypoints := make([][]float64, len(out.Route.Waypoints))
	for i, wp := range out.Route.Waypoints {
		waypoints[i] = []float64{wp.Lat, wp.Lon}
	}
	ecaZones := make([]zoneDistanceJSON, 0, len(out.Attribution.PerZone))
	for _, zd := range out.Attribution.PerZone {
		ecaZones = append(ecaZones, zoneDistanceJSON{
			Name:       zd.Zone,
			Type:       string(zd.Type),
			DistanceNM: round2(zd.NM),
		})
	}
	regs := out.Report.Regulations
	if regs == nil {
		regs = []string{}
	}

	resp := routeResponse{
		Origin:            req.Origin,
		Destination:       req.Destination,
		Restrictions:      restrictions,
		TraversedPassage:  primaryPassage(out.Route.Passages),
		TraversedPassages: passagesOrEmpty(out.Route.Passages),
		DistanceNM:        round2(out.Route.DistanceNM),
		ECADistanceNM:     round2(out.Attribution.ECANM),
		ECAPercentage:     round2(out.Report.ECAPercentage),
		Waypoints:         waypoints,
		ECAZones:          ecaZones,
		Compliance: complianceJSON{
			Status:      out.Report.Status,
			Regulations: regs,
		},
		FuelImpact: fuelImpactJSON{
			ECADistanceNM:        round2(out.Attribution.ECANM),
			LowSulphurUSDPerTon:  out.Report.Prices.LowSulphurUSDPerTon,
			HighSulphurUSDPerTon: out.Report.Prices.HighSulphurUSDPerTon,
			BurnRateTonsPerNM:    out.Report.BurnRate,
			TotalExtraCostUSD:    round2(out.Report.ExtraCostUSD),
			PricesAssumed:        out.Report.Prices.Assumed,
		},
	}
	writeJSON(sw, http.StatusOK, resp)
}

// CheckPoint handles GET /check-point.
func (h *Handlers) CheckPoint(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
	defer func() {
		observability.ObserveHTTP(r.Method, "/check-point", sw.code, time.Since(start).Seconds())
	}()

	lat, err := queryFloat(r, "latitude")
	if err != nil {
		writeError(sw, http.StatusBadRequest, "invalid_coordinate", err.Error())
		return
	}
	lon, err := queryFloat(r, "longitude")
	if err != nil {
		writeError(sw, http.StatusBadRequest, "invalid_coordinate", err.Error())
		return
	}
	p := model.Coordinate{Lat: lat, Lon: lon}
	if err := p.Validate("query"); err != nil {
		writeError(sw, http.StatusBadRequest, "invalid_coordinate", err.Error())
		return
	}

	z := h.Engine.CheckPoint(r.Context(), p)
	if z == nil {
		writeJSON(sw, http.StatusOK, map[string]any{"inside_eca": false})
		return
	}
	writeJSON(sw, http.StatusOK, map[string]any{
		"inside_eca":       true,
		"zone_name":        z.Name,
		"zone_type":        string(z.Type),
		"required_sulphur": z.RequiredSulphur,
		"regulation":       z.Regulation,
		"territory":        z.Territory,
	})
}

type zoneMetaJSON struct {
	Name            string     `json:"name"`
	Type            string     `json:"type"`
	YearEstablished int        `json:"year_established"`
	RequiredSulphur string     `json:"required_sulphur"`
	Regulation      string     `json:"regulation"`
	Territory       string     `json:"territory"`
	Status          string     `json:"status"`
	BoundingBox     model.BBox `json:"bounding_box"`
}

// SupportedZones handles GET /supported-zones: a pure catalogue dump.
func (h *Handlers) SupportedZones(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
	defer func() {
		observability.ObserveHTTP(r.Method, "/supported-zones", sw.code, time.Since(start).Seconds())
	}()

	zs := h.Engine.Zones()
	out := make([]zoneMetaJSON, len(zs))
	for i, z := range zs {
		out[i] = zoneMetaJSON{
			Name:            z.Name,
			Type:            string(z.Type),
			YearEstablished: z.YearEstablished,
			RequiredSulphur: z.RequiredSulphur,
			Regulation:      z.Regulation,
			Territory:       z.Territory,
			Status:          z.Status,
			BoundingBox:     z.BBox,
		}
	}
	writeJSON(sw, http.StatusOK, map[string]any{
		"zones": out,
		"count": len(out),
	})
}

func parseLatLon(pair []float64, field string) (model.Coordinate, error) {
	if len(pair) != 2 {
		return model.Coordinate{}, fmt.Errorf("%s must be [latitude, longitude]", field)
	}
	c := model.Coordinate{Lat: pair[0], Lon: pair[1]}
	if err := c.Validate(field); err != nil {
		return model.Coordinate{}, err
	}
	return c, nil
}

func queryFloat(r *http.Request, name string) (float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, fmt.Errorf("missing required parameter: %s", name)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parameter %s is not a number", name)
	}
	return f, nil
}

// primaryPassage mirrors the upstream behavior: suez wins over panama, other
// passages never become primary.
func primaryPassage(tags []string) *string {
	for _, want := range []string{graph.PassageSuez, graph.PassagePanama} {
		for _, t := range tags {
			if t == want {
				return &t
			}
		}
	}
	return nil
}

func passagesOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, kind, detail string) {
	writeJSON(w, code, errorResponse{Error: kind, Detail: detail})
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}
