package engine

import "airline_optimizer/internal/models"

// FilterFeasible returns the aircraft physically able to fly distanceKm
// between two airports whose shorter runway is minRunway meters. The
// result preserves catalog order; an empty result just means no suitable
// aircraft.
func FilterFeasible(catalog []models.Aircraft, distanceKm float64, minRunway int) []models.Aircraft {
	out := make([]models.Aircraft, 0, len(catalog))
	for _, ac := range catalog {
		if ac.RangeKm < distanceKm {
			continue
		}
		if ac.RequiredRunwayLength > minRunway {
			continue
		}
		out = append(out, ac)
	}
	return out
}

// MinRunway returns the shorter of the two airports' runways.
func MinRunway(origin, destination models.Airport) int {
	if origin.RunwayLength < destination.RunwayLength {
		return origin.RunwayLength
	}
	return destination.RunwayLength
}

// HaulCategory buckets a route distance into the catalog categories.
func HaulCategory(distanceKm float64) string {
	switch {
	case distanceKm <= 2000:
		return "shorthaul"
	case distanceKm <= 5000:
		return "midhaul"
	default:
		return "longhaul"
	}
}
