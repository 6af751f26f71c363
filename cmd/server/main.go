package main

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/labstack/gommon/log"

	"airline_optimizer/internal/api"
	"airline_optimizer/internal/engine"
	"airline_optimizer/internal/models"
	"airline_optimizer/internal/store"
)

func main() {
	log.SetHeader("${time_rfc3339} ${level}")
	if os.Getenv("DEBUG") == "true" {
		log.SetLevel(log.DEBUG)
	}

	st := store.NewMemStore()

	airports, err := loadAirports(dataPath("airports.json"))
	if err != nil {
		log.Fatalf("failed to load airports: %v", err)
	}
	st.SetAirports(airports)
	log.Infof("loaded %d airports", len(airports))

	aircraft, err := loadAircraft(dataPath("aircraft.json"))
	if err != nil {
		log.Fatalf("failed to load aircraft: %v", err)
	}
	st.SetAircraft(aircraft)
	log.Infof("loaded %d aircraft", len(aircraft))

	// Demo airline so route CRUD works out of the box.
	st.PutAirline(models.Airline{
		ID:             "demo",
		Name:           "Demo Airlines",
		HubAirportCode: "JFK",
		Balance:        1_000_000,
	})

	eng := engine.New(st)
	handler := api.New(st, eng)

	port := getPort()
	log.Infof("server listening on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

func loadAirports(path string) ([]models.Airport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var airports []models.Airport
	if err := json.Unmarshal(data, &airports); err != nil {
		return nil, err
	}
	return airports, nil
}

func loadAircraft(path string) ([]models.Aircraft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var aircraft []models.Aircraft
	if err := json.Unmarshal(data, &aircraft); err != nil {
		return nil, err
	}
	return aircraft, nil
}

func dataPath(name string) string {
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		return dir + "/" + name
	}
	return "data/" + name
}

func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "5000"
}
