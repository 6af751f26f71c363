// Package store defines the record-store boundary the recommendation
// engine reads from, plus an in-memory implementation.
package store

import (
	"errors"

	"airline_optimizer/internal/models"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// AircraftFilter narrows a catalog query. Zero values mean "no constraint".
type AircraftFilter struct {
	Manufacturer string
	Category     string
	MinRangeKm   float64
	MaxRangeKm   float64
	// Type is "pax" or "cargo"; empty matches both.
	Type string
}

// Matches reports whether the aircraft satisfies every set constraint.
func (f AircraftFilter) Matches(a models.Aircraft) bool {
	if f.Manufacturer != "" && a.Manufacturer != f.Manufacturer {
		return false
	}
	if f.Category != "" && a.Category != f.Category {
		return false
	}
	if f.MinRangeKm > 0 && a.RangeKm < f.MinRangeKm {
		return false
	}
	if f.MaxRangeKm > 0 && a.RangeKm > f.MaxRangeKm {
		return false
	}
	switch f.Type {
	case "cargo":
		return a.CargoCapacity > 0
	case "pax":
		return a.CapacityEco > 0
	}
	return true
}

// Store is the persistence boundary the engine consumes. Implementations
// must not let callers mutate records they hand out.
type Store interface {
	AirportByCode(code string) (models.Airport, error)
	ListAirports() ([]models.Airport, error)
	AircraftByID(id string) (models.Aircraft, error)
	AircraftCatalog(filter AircraftFilter) ([]models.Aircraft, error)
	RouteByID(id string) (models.Route, error)
}

// AdminStore adds the administrative operations the service layer uses.
// The engine itself only needs Store.
type AdminStore interface {
	Store
	AirlineByID(id string) (models.Airline, error)
	RoutesByAirline(airlineID string) ([]models.Route, error)
	CreateRoute(route models.Route) (models.Route, error)
	UpdateRoute(route models.Route) (models.Route, error)
	DeleteRoute(id string) error
}
