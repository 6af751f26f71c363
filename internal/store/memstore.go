package store

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"airline_optimizer/internal/models"
)

// MemStore is an in-memory record store. Reference data (airports,
// aircraft) is loaded once at startup; routes and airlines are mutable.
type MemStore struct {
	mu       sync.RWMutex
	airports []models.Airport
	byCode   map[string]models.Airport
	aircraft []models.Aircraft
	byID     map[string]models.Aircraft
	routes   map[string]models.Route
	airlines map[string]models.Airline
}

func NewMemStore() *MemStore {
	return &MemStore{
		byCode:   make(map[string]models.Airport),
		byID:     make(map[string]models.Aircraft),
		routes:   make(map[string]models.Route),
		airlines: make(map[string]models.Airline),
	}
}

// SetAirports replaces the airport catalog.
func (s *MemStore) SetAirports(list []models.Airport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.airports = list
	s.byCode = make(map[string]models.Airport, len(list))
	for _, ap := range list {
		s.byCode[strings.ToUpper(ap.Code)] = ap
	}
}

// SetAircraft replaces the aircraft catalog.
func (s *MemStore) SetAircraft(list []models.Aircraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aircraft = list
	s.byID = make(map[string]models.Aircraft, len(list))
	for _, ac := range list {
		s.byID[ac.ID] = ac
	}
}

// PutAirline inserts or replaces an airline record.
func (s *MemStore) PutAirline(a models.Airline) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	s.airlines[a.ID] = a
}

func (s *MemStore) AirportByCode(code string) (models.Airport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ap, ok := s.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return models.Airport{}, ErrNotFound
	}
	return ap, nil
}

func (s *MemStore) ListAirports() ([]models.Airport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Airport, len(s.airports))
	copy(out, s.airports)
	return out, nil
}

func (s *MemStore) AircraftByID(id string) (models.Aircraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ac, ok := s.byID[id]
	if !ok {
		return models.Aircraft{}, ErrNotFound
	}
	return ac, nil
}

func (s *MemStore) AircraftCatalog(filter AircraftFilter) ([]models.Aircraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Aircraft, 0, len(s.aircraft))
	for _, ac := range s.aircraft {
		if filter.Matches(ac) {
			out = append(out, ac)
		}
	}
	return out, nil
}

func (s *MemStore) RouteByID(id string) (models.Route, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rt, ok := s.routes[id]
	if !ok {
		return models.Route{}, ErrNotFound
	}
	return rt, nil
}

func (s *MemStore) AirlineByID(id string) (models.Airline, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	al, ok := s.airlines[id]
	if !ok {
		return models.Airline{}, ErrNotFound
	}
	return al, nil
}

func (s *MemStore) RoutesByAirline(airlineID string) ([]models.Route, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Route
	for _, rt := range s.routes {
		if rt.AirlineID == airlineID {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (s *MemStore) CreateRoute(route models.Route) (models.Route, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if route.ID == "" {
		route.ID = uuid.NewString()
	}
	s.routes[route.ID] = route
	return route, nil
}

func (s *MemStore) UpdateRoute(route models.Route) (models.Route, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.routes[route.ID]; !ok {
		return models.Route{}, ErrNotFound
	}
	s.routes[route.ID] = route
	return route, nil
}

func (s *MemStore) DeleteRoute(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.routes[id]; !ok {
		return ErrNotFound
	}
	delete(s.routes, id)
	return nil
}
