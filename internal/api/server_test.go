package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"airline_optimizer/internal/engine"
	"airline_optimizer/internal/models"
	"airline_optimizer/internal/store"
)

func newTestServer(t *testing.T) (http.Handler, *store.MemStore) {
	t.Helper()
	st := store.NewMemStore()
	st.SetAirports([]models.Airport{
		{Code: "JFK", Name: "John F. Kennedy Intl", City: "New York", Country: "USA", Latitude: 40.64, Longitude: -73.78, RunwayLength: 4400, HubSize: 5},
		{Code: "LAX", Name: "Los Angeles Intl", City: "Los Angeles", Country: "USA", Latitude: 33.94, Longitude: -118.41, RunwayLength: 3900, HubSize: 5},
		{Code: "BOS", Name: "Boston Logan Intl", City: "Boston", Country: "USA", Latitude: 42.36, Longitude: -71.01, RunwayLength: 3050, HubSize: 3},
	})
	st.SetAircraft([]models.Aircraft{
		{ID: "b738", Manufacturer: "Boeing", Model: "737-800", Category: "midhaul", RangeKm: 5000, SpeedKmh: 850, FuelConsumption: 2500, CapacityEco: 160, CapacityBusiness: 16, RequiredRunwayLength: 2000, MaintenanceCost: 5000, Price: 80000000},
		{ID: "a320", Manufacturer: "Airbus", Model: "A320", Category: "shorthaul", RangeKm: 6000, SpeedKmh: 830, FuelConsumption: 2400, CapacityEco: 150, CapacityBusiness: 12, RequiredRunwayLength: 2100, MaintenanceCost: 4800, Price: 85000000},
	})
	st.PutAirline(models.Airline{ID: "al1", UserID: "u1", Name: "Test Air", HubAirportCode: "JFK", Balance: 1000000})
	return New(st, engine.New(st)), st
}

func doJSON(t *testing.T, h http.Handler, method, target string, body any) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	out := map[string]json.RawMessage{}
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") == "application/json" {
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
		}
	}
	return rec, out
}

func createTestRoute(t *testing.T, h http.Handler) models.Route {
	t.Helper()
	rec, body := doJSON(t, h, http.MethodPost, "/api/routes/", map[string]any{
		"airline_id":               "al1",
		"origin_airport_code":      "JFK",
		"destination_airport_code": "LAX",
		"demand_economy":           200,
		"demand_business":          50,
		"demand_first":             20,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create route: got %d (%s)", rec.Code, rec.Body.String())
	}
	var rt models.Route
	if err := json.Unmarshal(body["route"], &rt); err != nil {
		t.Fatalf("decode route: %v", err)
	}
	return rt
}

func TestCreateRouteDerivesDistance(t *testing.T) {
	h, _ := newTestServer(t)
	rt := createTestRoute(t, h)
	if rt.ID == "" {
		t.Fatalf("expected route id to be assigned")
	}
	if rt.DistanceKm < 3974 || rt.DistanceKm > 3983 {
		t.Fatalf("derived distance out of reference window: %f", rt.DistanceKm)
	}
	if rt.CompetitionLevel != "medium" {
		t.Fatalf("expected default competition level, got %q", rt.CompetitionLevel)
	}
}

func TestCreateRouteUnknownAirport(t *testing.T) {
	h, _ := newTestServer(t)
	rec, _ := doJSON(t, h, http.MethodPost, "/api/routes/", map[string]any{
		"airline_id":               "al1",
		"origin_airport_code":      "JFK",
		"destination_airport_code": "ZZZ",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown airport, got %d", rec.Code)
	}
}

func TestCreateRouteMissingFields(t *testing.T) {
	h, _ := newTestServer(t)
	rec, _ := doJSON(t, h, http.MethodPost, "/api/routes/", map[string]any{
		"airline_id": "al1",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateRouteOwnershipEnforced(t *testing.T) {
	h, st := newTestServer(t)
	st.PutAirline(models.Airline{ID: "al2", Name: "Rival Air", HubAirportCode: "LAX"})
	rt := createTestRoute(t, h)

	rec, _ := doJSON(t, h, http.MethodPut, "/api/routes/"+rt.ID, map[string]any{
		"airline_id":     "al2",
		"demand_economy": 500,
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for foreign airline, got %d", rec.Code)
	}

	rec, body := doJSON(t, h, http.MethodPut, "/api/routes/"+rt.ID, map[string]any{
		"airline_id":     "al1",
		"demand_economy": 500,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var updated models.Route
	if err := json.Unmarshal(body["route"], &updated); err != nil {
		t.Fatalf("decode route: %v", err)
	}
	if updated.DemandEconomy != 500 {
		t.Fatalf("demand not updated, got %d", updated.DemandEconomy)
	}
}

func TestDeleteRoute(t *testing.T) {
	h, _ := newTestServer(t)
	rt := createTestRoute(t, h)

	rec, _ := doJSON(t, h, http.MethodDelete, "/api/routes/"+rt.ID+"?airline_id=al1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec, _ = doJSON(t, h, http.MethodGet, "/api/routes/"+rt.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestRecommendAircraftEndpoint(t *testing.T) {
	h, _ := newTestServer(t)
	rt := createTestRoute(t, h)

	rec, body := doJSON(t, h, http.MethodGet, "/api/aircraft/recommend?route_id="+rt.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var recs []models.AircraftRecommendation
	if err := json.Unmarshal(body["recommended_aircraft"], &recs); err != nil {
		t.Fatalf("decode recommendations: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	if recs[0].Economics.EstimatedProfit < recs[1].Economics.EstimatedProfit {
		t.Fatalf("recommendations not sorted by profit")
	}
}

func TestRecommendAircraftMissingRouteID(t *testing.T) {
	h, _ := newTestServer(t)
	rec, _ := doJSON(t, h, http.MethodGet, "/api/aircraft/recommend", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRecommendRoutesEndpoint(t *testing.T) {
	h, _ := newTestServer(t)

	rec, body := doJSON(t, h, http.MethodGet, "/api/routes/recommend?hub=JFK&aircraft=b738", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var cands []models.RouteCandidate
	if err := json.Unmarshal(body["recommended_routes"], &cands); err != nil {
		t.Fatalf("decode candidates: %v", err)
	}
	if len(cands) == 0 {
		t.Fatalf("expected candidates from JFK")
	}
	for _, c := range cands {
		if c.DestinationAirportCode == "JFK" {
			t.Fatalf("hub must not appear as destination")
		}
		if c.Economics == nil {
			t.Fatalf("expected economics when aircraft supplied")
		}
	}
}

func TestRecommendRoutesMissingHub(t *testing.T) {
	h, _ := newTestServer(t)
	rec, _ := doJSON(t, h, http.MethodGet, "/api/routes/recommend", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCabinConfigEndpoint(t *testing.T) {
	h, _ := newTestServer(t)
	rt := createTestRoute(t, h)

	rec, body := doJSON(t, h, http.MethodGet, "/api/config/recommend?aircraft=b738&route="+rt.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var configs []models.CabinConfiguration
	if err := json.Unmarshal(body["configurations"], &configs); err != nil {
		t.Fatalf("decode configurations: %v", err)
	}
	if len(configs) == 0 {
		t.Fatalf("expected at least one configuration")
	}
	top := configs[0]
	if top.Eco < 0 || top.Business < 0 || top.First < 0 {
		t.Fatalf("configuration counts must be non-negative: %+v", top)
	}
	for i := 1; i < len(configs); i++ {
		if configs[i-1].Profit < configs[i].Profit {
			t.Fatalf("configurations not sorted by profit")
		}
	}
}

func TestFilterAircraftEndpoint(t *testing.T) {
	h, _ := newTestServer(t)

	rec, body := doJSON(t, h, http.MethodGet, "/api/aircraft/filter?manufacturer=Airbus&type=pax", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var catalog []models.Aircraft
	if err := json.Unmarshal(body["aircraft"], &catalog); err != nil {
		t.Fatalf("decode aircraft: %v", err)
	}
	if len(catalog) != 1 || catalog[0].ID != "a320" {
		t.Fatalf("unexpected filter result: %+v", catalog)
	}

	rec, _ = doJSON(t, h, http.MethodGet, "/api/aircraft/filter?min_range=abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric range, got %d", rec.Code)
	}
}

func TestListRoutesRequiresAirline(t *testing.T) {
	h, _ := newTestServer(t)
	rec, _ := doJSON(t, h, http.MethodGet, "/api/routes/?airline_id=unknown", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown airline, got %d", rec.Code)
	}
	rec, _ = doJSON(t, h, http.MethodGet, "/api/routes/", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without airline_id, got %d", rec.Code)
	}
}

func TestHealthAndIndex(t *testing.T) {
	h, _ := newTestServer(t)
	rec, _ := doJSON(t, h, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("health returned %d", rec.Code)
	}
	rec, body := doJSON(t, h, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("index returned %d", rec.Code)
	}
	var msg string
	if err := json.Unmarshal(body["message"], &msg); err != nil || msg == "" {
		t.Fatalf("expected service banner, got %s", rec.Body.String())
	}
}
