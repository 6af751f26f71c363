package engine

import (
	"math"

	"airline_optimizer/internal/geo"
	"airline_optimizer/internal/models"
)

// DemandPolicy holds the synthetic-demand constants used when proposing
// new routes from a hub. This is a fixed heuristic, not a forecast: demand
// grows with combined hub size and decays with distance.
type DemandPolicy struct {
	// BasePerHubSize scales the combined hub ordinal into base demand.
	BasePerHubSize float64
	// DecayDistanceKm is the distance at which demand would decay to zero
	// if the decay were not floored.
	DecayDistanceKm float64
	// MinDistanceFactor floors the distance decay.
	MinDistanceFactor float64
	// Class ratios relative to economy demand.
	BusinessRatio float64
	FirstRatio    float64
	CargoRatio    float64
}

var DefaultDemandPolicy = DemandPolicy{
	BasePerHubSize:    10,
	DecayDistanceKm:   10000,
	MinDistanceFactor: 0.5,
	BusinessRatio:     0.2,
	FirstRatio:        0.05,
	CargoRatio:        0.1,
}

// Synthesize derives per-class demand for a hub/destination pairing.
func (p DemandPolicy) Synthesize(hub, dest models.Airport, distanceKm float64) (eco, business, first, cargo int) {
	base := float64(hub.HubSize+dest.HubSize) * p.BasePerHubSize
	factor := math.Max(p.MinDistanceFactor, 1-distanceKm/p.DecayDistanceKm)
	eco = int(base * factor)
	business = int(float64(eco) * p.BusinessRatio)
	first = int(float64(eco) * p.FirstRatio)
	cargo = int(float64(eco) * p.CargoRatio)
	return
}

// GenerateCandidates proposes one candidate route from the hub to every
// other airport in the catalog. When an aircraft is supplied, destinations
// beyond its range or with too short a runway are rejected before any
// economics run, and each surviving candidate carries an EconomicsResult.
// The returned order follows the catalog; ranking is a separate step.
func GenerateCandidates(hub models.Airport, airports []models.Airport, ac *models.Aircraft, demand DemandPolicy, pricing Pricing) []models.RouteCandidate {
	out := make([]models.RouteCandidate, 0, len(airports))
	for _, dest := range airports {
		if dest.Code == hub.Code {
			continue
		}
		dist := geo.Distance(hub.Latitude, hub.Longitude, dest.Latitude, dest.Longitude)

		if ac != nil {
			if dist > ac.RangeKm {
				continue
			}
			if dest.RunwayLength < ac.RequiredRunwayLength {
				continue
			}
		}

		eco, business, first, cargo := demand.Synthesize(hub, dest, dist)
		cand := models.RouteCandidate{
			OriginAirportCode:      hub.Code,
			DestinationAirportCode: dest.Code,
			DestinationName:        dest.Name,
			DestinationCity:        dest.City,
			DestinationCountry:     dest.Country,
			DistanceKm:             math.Round(dist),
			DemandEconomy:          eco,
			DemandBusiness:         business,
			DemandFirst:            first,
			DemandCargo:            cargo,
		}

		if ac != nil {
			econ, ok := pricing.Estimate(*ac, dist, ClassDemand{Economy: eco, Business: business, First: first})
			if !ok {
				continue
			}
			cand.Economics = &econ
		}
		out = append(out, cand)
	}
	return out
}
