// models/airport.go
package models

// AirportCategory is the size tier of an airport in the source dataset.
// Only the three passenger tiers participate in resolution; everything
// else (heliports, closed fields, seaplane bases) is filtered at load.
type AirportCategory string

const (
	CategoryLarge  AirportCategory = "large_airport"
	CategoryMedium AirportCategory = "medium_airport"
	CategorySmall  AirportCategory = "small_airport"
)

// AirportRecord is one passenger-scheduled airport from the catalog.
// Code is always upper-case and non-empty for records that survive the
// load-time filter.
type AirportRecord struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Municipality string          `json:"municipality"`
	Country      string          `json:"country"`
	Lat          float64         `json:"lat"`
	Lon          float64         `json:"lon"`
	Category     AirportCategory `json:"category"`
}

// Destination is one entry of the curated popular-destination list used
// by frontend autocomplete.
type Destination struct {
	City    string `json:"city"`
	Code    string `json:"code"`
	Country string `json:"country"`
}
