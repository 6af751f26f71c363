// Package engine implements the profitability recommendation engine:
// pure computations over airport, aircraft, and route records that score
// and rank candidate pairings by operating profit.
package engine

import (
	"errors"

	"airline_optimizer/internal/models"
	"airline_optimizer/internal/store"
)

// ErrInvalidInput is returned when a required identifier is missing.
var ErrInvalidInput = errors.New("invalid input")

// Engine evaluates recommendation requests against a record store. Every
// request is stateless: records are fetched fresh and nothing is cached,
// so independent requests may run concurrently.
type Engine struct {
	store   store.Store
	pricing Pricing
	demand  DemandPolicy
}

func New(st store.Store) *Engine {
	return &Engine{store: st, pricing: DefaultPricing, demand: DefaultDemandPolicy}
}

// SetPricing overrides the fare/cost policy constants.
func (e *Engine) SetPricing(p Pricing) {
	e.pricing = p
}

// SetDemandPolicy overrides the synthetic-demand constants.
func (e *Engine) SetDemandPolicy(p DemandPolicy) {
	e.demand = p
}

// RecommendAircraftForRoute scores every aircraft capable of flying the
// route and returns the full set ranked by estimated profit. Aircraft
// whose economics are undefined (non-positive speed, no capacity) are
// dropped silently.
func (e *Engine) RecommendAircraftForRoute(routeID string) (models.Route, []models.AircraftRecommendation, error) {
	if routeID == "" {
		return models.Route{}, nil, ErrInvalidInput
	}
	rt, err := e.store.RouteByID(routeID)
	if err != nil {
		return models.Route{}, nil, err
	}
	origin, err := e.store.AirportByCode(rt.OriginAirportCode)
	if err != nil {
		return models.Route{}, nil, err
	}
	dest, err := e.store.AirportByCode(rt.DestinationAirportCode)
	if err != nil {
		return models.Route{}, nil, err
	}
	catalog, err := e.store.AircraftCatalog(store.AircraftFilter{MinRangeKm: rt.DistanceKm})
	if err != nil {
		return models.Route{}, nil, err
	}

	feasible := FilterFeasible(catalog, rt.DistanceKm, MinRunway(origin, dest))
	demand := DemandForRoute(rt)

	recs := make([]models.AircraftRecommendation, 0, len(feasible))
	for _, ac := range feasible {
		econ, ok := e.pricing.Estimate(ac, rt.DistanceKm, demand)
		if !ok {
			continue
		}
		recs = append(recs, models.AircraftRecommendation{Aircraft: ac, Economics: econ})
	}
	RankBy(recs, func(r models.AircraftRecommendation) float64 { return r.Economics.EstimatedProfit })
	return rt, recs, nil
}

// RecommendRoutesFromHub proposes routes from the hub to every reachable
// airport, ranked by estimated profit when an aircraft is supplied and by
// economy demand otherwise, truncated to the top candidates.
// aircraftID may be empty.
func (e *Engine) RecommendRoutesFromHub(hubCode, aircraftID string) (models.Airport, *models.Aircraft, []models.RouteCandidate, error) {
	if hubCode == "" {
		return models.Airport{}, nil, nil, ErrInvalidInput
	}
	hub, err := e.store.AirportByCode(hubCode)
	if err != nil {
		return models.Airport{}, nil, nil, err
	}
	var ac *models.Aircraft
	if aircraftID != "" {
		found, err := e.store.AircraftByID(aircraftID)
		if err != nil {
			return models.Airport{}, nil, nil, err
		}
		ac = &found
	}
	airports, err := e.store.ListAirports()
	if err != nil {
		return models.Airport{}, nil, nil, err
	}

	candidates := GenerateCandidates(hub, airports, ac, e.demand, e.pricing)
	if ac != nil {
		RankBy(candidates, func(c models.RouteCandidate) float64 { return c.Economics.EstimatedProfit })
	} else {
		RankBy(candidates, func(c models.RouteCandidate) float64 { return float64(c.DemandEconomy) })
	}
	return hub, ac, Truncate(candidates, MaxRouteRecommendations), nil
}

// OptimizeCabinConfiguration ranks feasible cabin partitions of the
// aircraft for the route by estimated profit.
func (e *Engine) OptimizeCabinConfiguration(aircraftID, routeID string) (models.Aircraft, models.Route, []models.CabinConfiguration, error) {
	if aircraftID == "" || routeID == "" {
		return models.Aircraft{}, models.Route{}, nil, ErrInvalidInput
	}
	ac, err := e.store.AircraftByID(aircraftID)
	if err != nil {
		return models.Aircraft{}, models.Route{}, nil, err
	}
	rt, err := e.store.RouteByID(routeID)
	if err != nil {
		return models.Aircraft{}, models.Route{}, nil, err
	}
	return ac, rt, OptimizeCabin(ac, rt, e.pricing), nil
}

// FilterAircraft is a pass-through catalog query with no economics.
func (e *Engine) FilterAircraft(filter store.AircraftFilter) ([]models.Aircraft, error) {
	return e.store.AircraftCatalog(filter)
}
