package models

// Airport is immutable reference data; the engine only reads it.
type Airport struct {
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	City         string  `json:"city"`
	Country      string  `json:"country"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RunwayLength int     `json:"runway_length"`
	HubSize      int     `json:"hub_size"`
}

type Aircraft struct {
	ID                   string  `json:"id"`
	Manufacturer         string  `json:"manufacturer"`
	Model                string  `json:"model"`
	Category             string  `json:"category,omitempty"`
	RangeKm              float64 `json:"range_km"`
	SpeedKmh             float64 `json:"speed_kmh"`
	FuelConsumption      float64 `json:"fuel_consumption"`
	CapacityEco          int     `json:"capacity_eco"`
	CapacityBusiness     int     `json:"capacity_business"`
	CapacityFirst        int     `json:"capacity_first"`
	CargoCapacity        float64 `json:"cargo_capacity,omitempty"`
	RequiredRunwayLength int     `json:"required_runway_length"`
	MaintenanceCost      float64 `json:"maintenance_cost"`
	Price                float64 `json:"price"`
}

// TotalSeats is the combined passenger capacity across all cabin classes.
func (a Aircraft) TotalSeats() int {
	return a.CapacityEco + a.CapacityBusiness + a.CapacityFirst
}

// Usable reports whether the aircraft can carry passengers or cargo at all.
func (a Aircraft) Usable() bool {
	return a.TotalSeats() > 0 || a.CargoCapacity > 0
}

type Route struct {
	ID                     string  `json:"id"`
	AirlineID              string  `json:"airline_id"`
	OriginAirportCode      string  `json:"origin_airport_code"`
	DestinationAirportCode string  `json:"destination_airport_code"`
	DistanceKm             float64 `json:"distance_km"`
	DemandEconomy          int     `json:"demand_economy"`
	DemandBusiness         int     `json:"demand_business"`
	DemandFirst            int     `json:"demand_first"`
	DemandCargo            int     `json:"demand_cargo"`
	CompetitionLevel       string  `json:"competition_level"`
}

type Airline struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	Name           string  `json:"name"`
	HubAirportCode string  `json:"hub_airport_code"`
	Balance        float64 `json:"balance"`
}

// EconomicsResult is derived per request and never persisted.
type EconomicsResult struct {
	FlightTimeHours  float64 `json:"flight_time_hours"`
	FuelCost         float64 `json:"fuel_cost"`
	MaintenanceCost  float64 `json:"maintenance_cost"`
	EstimatedRevenue float64 `json:"estimated_revenue"`
	EstimatedProfit  float64 `json:"estimated_profit"`
}

// AircraftRecommendation pairs a candidate aircraft with its economics on
// the route under evaluation.
type AircraftRecommendation struct {
	Aircraft  Aircraft        `json:"aircraft"`
	Economics EconomicsResult `json:"economics"`
}

// RouteCandidate is a synthesized route from a hub to one destination.
// Economics is present only when an aircraft was supplied to the generator.
type RouteCandidate struct {
	OriginAirportCode      string           `json:"origin_airport_code"`
	DestinationAirportCode string           `json:"destination_airport_code"`
	DestinationName        string           `json:"destination_name"`
	DestinationCity        string           `json:"destination_city"`
	DestinationCountry     string           `json:"destination_country"`
	DistanceKm             float64          `json:"distance_km"`
	DemandEconomy          int              `json:"demand_economy"`
	DemandBusiness         int              `json:"demand_business"`
	DemandFirst            int              `json:"demand_first"`
	DemandCargo            int              `json:"demand_cargo"`
	Economics              *EconomicsResult `json:"economics,omitempty"`
}

// CabinConfiguration is one scored seat partition for an aircraft.
type CabinConfiguration struct {
	Eco      int     `json:"eco"`
	Business int     `json:"business"`
	First    int     `json:"first"`
	Profit   float64 `json:"profit"`
}
