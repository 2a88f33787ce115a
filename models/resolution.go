// models/resolution.go
package models

// GeocodeResult is the single candidate returned by the geocoding
// provider for a free-text query. Ephemeral, never persisted.
type GeocodeResult struct {
	Lat         float64
	Lon         float64
	DisplayName string
}

// Suggestion is a fuzzy-match candidate offered when resolution fails.
// Score is a similarity ratio in [0, 1].
type Suggestion struct {
	CityName string  `json:"city"`
	Score    float64 `json:"score"`
}

// ResolutionOutcome is the only type crossing the resolver's public
// boundary. Code is nil when all tiers were exhausted; Suggestions then
// carries up to five ranked alternatives (it is empty, never nil, so the
// JSON shape stays stable for consumers).
type ResolutionOutcome struct {
	Code           *string  `json:"code"`
	RecognizedName string   `json:"recognized_name"`
	Suggestions    []string `json:"suggestions"`
}

// ResolverStats is a diagnostics snapshot exposed on /api/stats.
type ResolverStats struct {
	CacheSize      int `json:"cache_size"`
	CuratedCities  int `json:"curated_cities"`
	AirportsLoaded int `json:"airports_loaded"`
	LargeAirports  int `json:"large_airports"`
	MediumAirports int `json:"medium_airports"`
	SmallAirports  int `json:"small_airports"`
}
