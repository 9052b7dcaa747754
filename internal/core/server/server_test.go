package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ecomarine/ecaroute/internal/core/router"
	"github.com/ecomarine/ecaroute/internal/engine"
	"github.com/ecomarine/ecaroute/internal/graph"
	"github.com/ecomarine/ecaroute/internal/logger"
	"github.com/ecomarine/ecaroute/internal/zones"
)

func testServer(t *testing.T, cfg engine.Config) *httptest.Server {
	t.Helper()
	g, err := graph.Build(graph.Network())
	if err != nil {
		t.Fatalf("network: %v", err)
	}
	cat, err := zones.NewCatalogue(zones.Builtin())
	if err != nil {
		t.Fatalf("catalogue: %v", err)
	}
	zl := zerolog.New(io.Discard)
	log := logger.NewSlog(&zl)

	h := &router.Handlers{Engine: engine.New(g, cat, nil, cfg), Log: log}
	srv := httptest.NewServer(Routes(log, h))
	t.Cleanup(srv.Close)
	return srv
}

func postRoute(t *testing.T, srv *httptest.Server, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(srv.URL+"/calculate_route", "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("POST /calculate_route: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, out
}

func TestCalculateRoute_HappyPath(t *testing.T) {
	srv := testServer(t, engine.Config{})
	resp, out := postRoute(t, srv, `{
		"origin": [51.9244, 4.4777],
		"destination": [40.7128, -74.0060]
	}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d body=%v", resp.StatusCode, out)
	}

	dist, ok := out["distance_nm"].(float64)
	if !ok || dist < 3000 || dist > 5000 {
		t.Fatalf("distance_nm = %v", out["distance_nm"])
	}
	wps, ok := out["waypoints"].([]any)
	if !ok || len(wps) < 2 {
		t.Fatalf("waypoints = %v", out["waypoints"])
	}
	for _, wp := range wps {
		pair, ok := wp.([]any)
		if !ok || len(pair) != 2 {
			t.Fatalf("waypoint not a [lat,lon] pair: %v", wp)
		}
	}
	if out["traversed_passage"] != nil {
		t.Fatalf("transatlantic traversed_passage = %v", out["traversed_passage"])
	}
	comp, ok := out["compliance"].(map[string]any)
	if !ok || comp["status"] != "seca" {
		t.Fatalf("compliance = %v", out["compliance"])
	}
	fuel, ok := out["fuel_impact"].(map[string]any)
	if !ok {
		t.Fatalf("fuel_impact missing: %v", out)
	}
	if fuel["prices_assumed"] != true {
		t.Fatalf("defaulted prices not flagged: %v", fuel)
	}
	if fuel["low_sulphur_price_usd_per_ton"] != 650.0 {
		t.Fatalf("default low-sulphur price = %v", fuel["low_sulphur_price_usd_per_ton"])
	}
}

func TestCalculateRoute_SuezPrimaryPassage(t *testing.T) {
	srv := testServer(t, engine.Config{})
	resp, out := postRoute(t, srv, `{
		"origin": [1.3521, 103.8198],
		"destination": [51.9244, 4.4777]
	}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d body=%v", resp.StatusCode, out)
	}
	if out["traversed_passage"] != "suez" {
		t.Fatalf("traversed_passage = %v, want suez", out["traversed_passage"])
	}
	tags, ok := out["traversed_passages"].([]any)
	if !ok || len(tags) == 0 {
		t.Fatalf("traversed_passages = %v", out["traversed_passages"])
	}
}

func TestCalculateRoute_InvalidCoordinateNamesField(t *testing.T) {
	srv := testServer(t, engine.Config{})

	resp, out := postRoute(t, srv, `{"origin": [95, 0], "destination": [0, 0]}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if detail, _ := out["detail"].(string); !strings.Contains(detail, "origin") {
		t.Fatalf("field name missing from detail: %v", out)
	}

	resp, out = postRoute(t, srv, `{"origin": [0, 0], "destination": [0, -190]}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if detail, _ := out["detail"].(string); !strings.Contains(detail, "destination") {
		t.Fatalf("field name missing from detail: %v", out)
	}

	resp, _ = postRoute(t, srv, `{"origin": [1, 2, 3], "destination": [0, 0]}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("triple accepted: status = %d", resp.StatusCode)
	}
}

func TestCalculateRoute_UnknownRestriction(t *testing.T) {
	srv := testServer(t, engine.Config{})
	resp, out := postRoute(t, srv, `{
		"origin": [51.9244, 4.4777],
		"destination": [40.7128, -74.0060],
		"restrictions": ["atlantis"]
	}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if out["error"] != "invalid_restriction" {
		t.Fatalf("error = %v", out["error"])
	}
}

func TestCalculateRoute_NoRouteIs422(t *testing.T) {
	srv := testServer(t, engine.Config{SnapCandidates: 1})
	resp, out := postRoute(t, srv, `{
		"origin": [43.0, 33.0],
		"destination": [35.5, 16.2],
		"restrictions": ["bosporus"]
	}`)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d body=%v", resp.StatusCode, out)
	}
	if out["error"] != "no_route_found" {
		t.Fatalf("error = %v", out["error"])
	}
}

func TestCalculateRoute_MalformedBody(t *testing.T) {
	srv := testServer(t, engine.Config{})
	resp, _ := postRoute(t, srv, `{"origin": [51.9,`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestCalculateRoute_PerRequestPrices(t *testing.T) {
	srv := testServer(t, engine.Config{})
	resp, out := postRoute(t, srv, `{
		"origin": [51.9244, 4.4777],
		"destination": [40.7128, -74.0060],
		"fuel_prices": {"low_sulphur_usd_per_ton": 700, "high_sulphur_usd_per_ton": 500}
	}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d body=%v", resp.StatusCode, out)
	}
	fuel := out["fuel_impact"].(map[string]any)
	if fuel["prices_assumed"] != false {
		t.Fatalf("explicit prices flagged assumed: %v", fuel)
	}
	if fuel["low_sulphur_price_usd_per_ton"] != 700.0 {
		t.Fatalf("price not echoed: %v", fuel)
	}

	resp, _ = postRoute(t, srv, `{
		"origin": [51.9244, 4.4777],
		"destination": [40.7128, -74.0060],
		"fuel_prices": {"low_sulphur_usd_per_ton": -5, "high_sulphur_usd_per_ton": 500}
	}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("negative price accepted: status = %d", resp.StatusCode)
	}
}

func TestCheckPoint_Queries(t *testing.T) {
	srv := testServer(t, engine.Config{})

	get := func(q string) (*http.Response, map[string]any) {
		resp, err := http.Get(srv.URL + "/check-point" + q)
		if err != nil {
			t.Fatalf("GET /check-point: %v", err)
		}
		defer resp.Body.Close()
		var out map[string]any
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return resp, out
	}

	resp, out := get("?latitude=54.5&longitude=3.0")
	if resp.StatusCode != http.StatusOK || out["inside_eca"] != true {
		t.Fatalf("north sea check = %d %v", resp.StatusCode, out)
	}
	if out["zone_name"] != "North Sea SECA" {
		t.Fatalf("zone_name = %v", out["zone_name"])
	}

	resp, out = get("?latitude=25.0&longitude=55.0")
	if resp.StatusCode != http.StatusOK || out["inside_eca"] != false {
		t.Fatalf("open water check = %d %v", resp.StatusCode, out)
	}

	resp, _ = get("?longitude=3.0")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing latitude accepted: %d", resp.StatusCode)
	}
	resp, _ = get("?latitude=abc&longitude=3.0")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("non-numeric latitude accepted: %d", resp.StatusCode)
	}
	resp, _ = get("?latitude=95&longitude=3.0")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("out-of-range latitude accepted: %d", resp.StatusCode)
	}
}

func TestSupportedZones_ListsCatalogue(t *testing.T) {
	srv := testServer(t, engine.Config{})
	resp, err := http.Get(srv.URL + "/supported-zones")
	if err != nil {
		t.Fatalf("GET /supported-zones: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var out struct {
		Zones []map[string]any `json:"zones"`
		Count int              `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Count != 7 || len(out.Zones) != 7 {
		t.Fatalf("count = %d, zones = %d", out.Count, len(out.Zones))
	}
	if out.Zones[0]["name"] != "Baltic Sea SECA" {
		t.Fatalf("catalogue order changed: first zone = %v", out.Zones[0]["name"])
	}
}

func TestHealthEndpoints(t *testing.T) {
	srv := testServer(t, engine.Config{})
	for _, path := range []string{"/", "/ping", "/healthz"} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		_ = resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("GET %s = %d", path, resp.StatusCode)
		}
	}
}

func TestMetricsEndpointExposed(t *testing.T) {
	srv := testServer(t, engine.Config{})
	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !bytes.Contains(body, []byte("go_goroutines")) {
		t.Fatalf("prometheus exposition missing standard collectors")
	}
}
