package engine

import "airline_optimizer/internal/models"

// cabinStepDivisor controls enumeration granularity: each class is swept
// in steps of capacity/cabinStepDivisor (minimum 1 seat), with the full
// class capacity always included as an endpoint. Coarse enough to keep the
// search small for widebodies, fine enough that the all-capacity layout
// and the demand-matched layouts are all reachable.
const cabinStepDivisor = 8

// OptimizeCabin scores feasible seat partitions of the aircraft across
// economy/business/first against the route's actual demand and returns
// them ranked by profit, descending. Ties keep enumeration order. Returns
// nil when the aircraft cannot be priced at all.
func OptimizeCabin(ac models.Aircraft, rt models.Route, pricing Pricing) []models.CabinConfiguration {
	if ac.SpeedKmh <= 0 || !ac.Usable() {
		return nil
	}

	demand := DemandForRoute(rt)
	var configs []models.CabinConfiguration
	enumeratePartitions(ac, func(eco, business, first int) {
		trial := ac
		trial.CapacityEco = eco
		trial.CapacityBusiness = business
		trial.CapacityFirst = first
		econ, ok := pricing.Estimate(trial, rt.DistanceKm, demand)
		if !ok {
			return
		}
		configs = append(configs, models.CabinConfiguration{
			Eco:      eco,
			Business: business,
			First:    first,
			Profit:   econ.EstimatedProfit,
		})
	})

	RankBy(configs, func(c models.CabinConfiguration) float64 { return c.Profit })
	return configs
}

// enumeratePartitions streams candidate seat partitions to fn, one at a
// time, so memory stays bounded by the result the caller keeps. Each class
// count is capped by the aircraft's physical per-class capacity; the
// all-zero partition is skipped.
func enumeratePartitions(ac models.Aircraft, fn func(eco, business, first int)) {
	ecoSteps := classSteps(ac.CapacityEco)
	businessSteps := classSteps(ac.CapacityBusiness)
	firstSteps := classSteps(ac.CapacityFirst)
	for _, eco := range ecoSteps {
		for _, business := range businessSteps {
			for _, first := range firstSteps {
				if eco+business+first == 0 {
					continue
				}
				fn(eco, business, first)
			}
		}
	}
}

func classSteps(capacity int) []int {
	if capacity <= 0 {
		return []int{0}
	}
	step := capacity / cabinStepDivisor
	if step < 1 {
		step = 1
	}
	steps := make([]int, 0, cabinStepDivisor+2)
	for n := 0; n < capacity; n += step {
		steps = append(steps, n)
	}
	return append(steps, capacity)
}
