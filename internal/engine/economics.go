package engine

import "airline_optimizer/internal/models"

// Pricing holds the fare and cost policy constants. These are tunable
// policy values, not derived from any market model.
type Pricing struct {
	// FuelUnitPrice is the cost of one fuel unit.
	FuelUnitPrice float64
	// Per-passenger fare per kilometer, by cabin class.
	EcoRatePerKm      float64
	BusinessRatePerKm float64
	FirstRatePerKm    float64
}

// DefaultPricing mirrors the operator's standing fare policy.
var DefaultPricing = Pricing{
	FuelUnitPrice:     0.8,
	EcoRatePerKm:      0.1,
	BusinessRatePerKm: 0.3,
	FirstRatePerKm:    0.5,
}

// ClassDemand is the passenger demand on a route, by cabin class.
type ClassDemand struct {
	Economy  int
	Business int
	First    int
}

// DemandForRoute extracts the stored per-class demand from a route record.
func DemandForRoute(rt models.Route) ClassDemand {
	return ClassDemand{
		Economy:  rt.DemandEconomy,
		Business: rt.DemandBusiness,
		First:    rt.DemandFirst,
	}
}

// Estimate computes the operating economics of flying the given aircraft
// over distanceKm against the given demand. It returns ok=false when the
// aircraft cannot be priced at all (non-positive speed or no capacity);
// such aircraft are dropped from ranked output rather than reported as
// errors.
func (p Pricing) Estimate(ac models.Aircraft, distanceKm float64, demand ClassDemand) (models.EconomicsResult, bool) {
	if ac.SpeedKmh <= 0 || !ac.Usable() {
		return models.EconomicsResult{}, false
	}

	flightTime := distanceKm / ac.SpeedKmh
	fuelCost := ac.FuelConsumption * flightTime * p.FuelUnitPrice
	maintenance := ac.MaintenanceCost * flightTime

	// Demand cannot exceed physical seats.
	soldEco := min(demand.Economy, ac.CapacityEco)
	soldBusiness := min(demand.Business, ac.CapacityBusiness)
	soldFirst := min(demand.First, ac.CapacityFirst)

	revenue := float64(soldEco)*distanceKm*p.EcoRatePerKm +
		float64(soldBusiness)*distanceKm*p.BusinessRatePerKm +
		float64(soldFirst)*distanceKm*p.FirstRatePerKm

	return models.EconomicsResult{
		FlightTimeHours:  flightTime,
		FuelCost:         fuelCost,
		MaintenanceCost:  maintenance,
		EstimatedRevenue: revenue,
		EstimatedProfit:  revenue - (fuelCost + maintenance),
	}, true
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
