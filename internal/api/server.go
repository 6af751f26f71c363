package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/labstack/gommon/log"

	"airline_optimizer/internal/engine"
	"airline_optimizer/internal/geo"
	"airline_optimizer/internal/models"
	"airline_optimizer/internal/store"
)

type Server struct {
	store  store.AdminStore
	engine *engine.Engine
}

// New constructs the HTTP router wired to the recommendation engine and
// the record store.
func New(st store.AdminStore, eng *engine.Engine) http.Handler {
	s := &Server{store: st, engine: eng}
	r := chi.NewRouter()
	r.Use(corsMiddleware)
	r.Use(requestLogger)

	r.Get("/", s.handleIndex)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/aircraft", func(r chi.Router) {
		r.Get("/", s.handleListAircraft)
		r.Get("/recommend", s.handleRecommendAircraft)
		r.Get("/filter", s.handleFilterAircraft)
		r.Get("/{id}", s.handleGetAircraft)
	})

	r.Route("/api/routes", func(r chi.Router) {
		r.Get("/", s.handleListRoutes)
		r.Get("/recommend", s.handleRecommendRoutes)
		r.Post("/", s.handleCreateRoute)
		r.Get("/{id}", s.handleGetRoute)
		r.Put("/{id}", s.handleUpdateRoute)
		r.Delete("/{id}", s.handleDeleteRoute)
	})

	r.Get("/api/airports", s.handleListAirports)
	r.Get("/api/config/recommend", s.handleRecommendCabinConfig)

	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Airlines Manager Optimizer API",
		"status":  "running",
		"version": "1.0.0",
	})
}

func (s *Server) handleListAirports(w http.ResponseWriter, r *http.Request) {
	airports, err := s.store.ListAirports()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"airports": airports})
}

func (s *Server) handleListAircraft(w http.ResponseWriter, r *http.Request) {
	catalog, err := s.store.AircraftCatalog(store.AircraftFilter{})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"aircraft": catalog})
}

func (s *Server) handleGetAircraft(w http.ResponseWriter, r *http.Request) {
	ac, err := s.store.AircraftByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"aircraft": ac})
}

func (s *Server) handleRecommendAircraft(w http.ResponseWriter, r *http.Request) {
	routeID := r.URL.Query().Get("route_id")
	rt, recs, err := s.engine.RecommendAircraftForRoute(routeID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"route":                rt,
		"route_category":       engine.HaulCategory(rt.DistanceKm),
		"recommended_aircraft": recs,
	})
}

func (s *Server) handleFilterAircraft(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.AircraftFilter{
		Manufacturer: q.Get("manufacturer"),
		Category:     q.Get("category"),
		Type:         strings.ToLower(q.Get("type")),
	}
	var err error
	if filter.MinRangeKm, err = parseFloatParam(q.Get("min_range")); err != nil {
		writeJSONError(w, http.StatusBadRequest, "min_range must be numeric")
		return
	}
	if filter.MaxRangeKm, err = parseFloatParam(q.Get("max_range")); err != nil {
		writeJSONError(w, http.StatusBadRequest, "max_range must be numeric")
		return
	}
	catalog, err := s.engine.FilterAircraft(filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"aircraft": catalog})
}

func (s *Server) handleListRoutes(w http.ResponseWriter, r *http.Request) {
	airlineID := r.URL.Query().Get("airline_id")
	if airlineID == "" {
		writeJSONError(w, http.StatusBadRequest, "airline_id is required")
		return
	}
	if _, err := s.store.AirlineByID(airlineID); err != nil {
		writeError(w, err)
		return
	}
	routes, err := s.store.RoutesByAirline(airlineID)
	if err != nil {
		writeError(w, err)
		return
	}
	if routes == nil {
		routes = []models.Route{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"routes": routes})
}

func (s *Server) handleGetRoute(w http.ResponseWriter, r *http.Request) {
	rt, err := s.store.RouteByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"route": rt})
}

type createRouteRequest struct {
	AirlineID              string `json:"airline_id"`
	OriginAirportCode      string `json:"origin_airport_code"`
	DestinationAirportCode string `json:"destination_airport_code"`
	DemandEconomy          *int   `json:"demand_economy"`
	DemandBusiness         *int   `json:"demand_business"`
	DemandFirst            *int   `json:"demand_first"`
	DemandCargo            *int   `json:"demand_cargo"`
	CompetitionLevel       string `json:"competition_level"`
}

func (s *Server) handleCreateRoute(w http.ResponseWriter, r *http.Request) {
	var req createRouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "bad request")
		return
	}
	if req.AirlineID == "" || req.OriginAirportCode == "" || req.DestinationAirportCode == "" {
		writeJSONError(w, http.StatusBadRequest, "airline_id, origin and destination airport codes are required")
		return
	}
	if _, err := s.store.AirlineByID(req.AirlineID); err != nil {
		writeError(w, err)
		return
	}
	origin, err := s.store.AirportByCode(req.OriginAirportCode)
	if err != nil {
		writeError(w, err)
		return
	}
	dest, err := s.store.AirportByCode(req.DestinationAirportCode)
	if err != nil {
		writeError(w, err)
		return
	}

	// Distance is derived once at creation time and persisted.
	dist := geo.Distance(origin.Latitude, origin.Longitude, dest.Latitude, dest.Longitude)

	route := models.Route{
		AirlineID:              req.AirlineID,
		OriginAirportCode:      origin.Code,
		DestinationAirportCode: dest.Code,
		DistanceKm:             float64(int(dist + 0.5)),
		DemandEconomy:          intOrDefault(req.DemandEconomy, 100),
		DemandBusiness:         intOrDefault(req.DemandBusiness, 20),
		DemandFirst:            intOrDefault(req.DemandFirst, 10),
		DemandCargo:            intOrDefault(req.DemandCargo, 5),
		CompetitionLevel:       req.CompetitionLevel,
	}
	if route.CompetitionLevel == "" {
		route.CompetitionLevel = "medium"
	}

	created, err := s.store.CreateRoute(route)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Route created successfully",
		"route":   created,
	})
}

type updateRouteRequest struct {
	AirlineID        string `json:"airline_id"`
	DemandEconomy    *int   `json:"demand_economy"`
	DemandBusiness   *int   `json:"demand_business"`
	DemandFirst      *int   `json:"demand_first"`
	DemandCargo      *int   `json:"demand_cargo"`
	CompetitionLevel string `json:"competition_level"`
}

func (s *Server) handleUpdateRoute(w http.ResponseWriter, r *http.Request) {
	var req updateRouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "bad request")
		return
	}
	rt, err := s.store.RouteByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if req.AirlineID == "" {
		writeJSONError(w, http.StatusBadRequest, "airline_id is required")
		return
	}
	if rt.AirlineID != req.AirlineID {
		writeJSONError(w, http.StatusForbidden, "route does not belong to your airline")
		return
	}

	if req.DemandEconomy != nil {
		rt.DemandEconomy = *req.DemandEconomy
	}
	if req.DemandBusiness != nil {
		rt.DemandBusiness = *req.DemandBusiness
	}
	if req.DemandFirst != nil {
		rt.DemandFirst = *req.DemandFirst
	}
	if req.DemandCargo != nil {
		rt.DemandCargo = *req.DemandCargo
	}
	if req.CompetitionLevel != "" {
		rt.CompetitionLevel = req.CompetitionLevel
	}

	updated, err := s.store.UpdateRoute(rt)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Route updated successfully",
		"route":   updated,
	})
}

func (s *Server) handleDeleteRoute(w http.ResponseWriter, r *http.Request) {
	airlineID := r.URL.Query().Get("airline_id")
	rt, err := s.store.RouteByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if airlineID == "" {
		writeJSONError(w, http.StatusBadRequest, "airline_id is required")
		return
	}
	if rt.AirlineID != airlineID {
		writeJSONError(w, http.StatusForbidden, "route does not belong to your airline")
		return
	}
	if err := s.store.DeleteRoute(rt.ID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Route deleted successfully"})
}

func (s *Server) handleRecommendRoutes(w http.ResponseWriter, r *http.Request) {
	hubCode := r.URL.Query().Get("hub")
	aircraftID := r.URL.Query().Get("aircraft")
	hub, ac, cands, err := s.engine.RecommendRoutesFromHub(hubCode, aircraftID)
	if err != nil {
		writeError(w, err)
		return
	}
	if cands == nil {
		cands = []models.RouteCandidate{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"hub":                hub,
		"aircraft":           ac,
		"recommended_routes": cands,
	})
}

func (s *Server) handleRecommendCabinConfig(w http.ResponseWriter, r *http.Request) {
	aircraftID := r.URL.Query().Get("aircraft")
	routeID := r.URL.Query().Get("route")
	ac, rt, configs, err := s.engine.OptimizeCabinConfiguration(aircraftID, routeID)
	if err != nil {
		writeError(w, err)
		return
	}
	if configs == nil {
		configs = []models.CabinConfiguration{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"aircraft":       ac,
		"route":          rt,
		"configurations": configs,
	})
}

// ===== helpers =====

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	if msg == "" {
		msg = http.StatusText(status)
	}
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeError maps engine/store errors onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, engine.ErrInvalidInput):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	default:
		writeJSONError(w, http.StatusInternalServerError, err.Error())
	}
}

func parseFloatParam(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func intOrDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Debugf("%s %s -> %d (%s)", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
