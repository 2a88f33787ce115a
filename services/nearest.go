// services/nearest.go
package services

import (
	"log"
	"math"

	"github.com/holidayengine/resolver/catalog"
	"github.com/holidayengine/resolver/models"
)

const earthRadiusKm = 6371.0

// Tiered acceptance radii for nearest-airport search. The tiers only
// change what gets logged; any distance within maxAcceptKm is accepted
// and anything beyond it is treated as "not found".
const (
	nearbyKm    = 50.0
	regionalKm  = 150.0
	maxAcceptKm = 300.0
)

// haversineKm is the great-circle distance between two points in km.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

// NearestAirport scans the whole catalog for the minimum great-circle
// distance to the given coordinates. The catalog is bounded to a few
// thousand rows, so the O(n) scan is fine without a spatial index.
// Returns ok=false when the nearest airport is farther than the
// acceptance radius.
func NearestAirport(cat *catalog.Catalog, lat, lon float64) (models.AirportRecord, float64, bool) {
	var nearest models.AirportRecord
	nearestDist := math.Inf(1)

	for _, rec := range cat.All() {
		if d := haversineKm(lat, lon, rec.Lat, rec.Lon); d < nearestDist {
			nearestDist = d
			nearest = rec
		}
	}

	switch {
	case nearestDist <= nearbyKm:
		log.Printf("Service: Found nearby airport %s (%s) at %.1fkm\n", nearest.Code, nearest.Name, nearestDist)
	case nearestDist <= regionalKm:
		log.Printf("Service: Found regional airport %s (%s) at %.1fkm\n", nearest.Code, nearest.Name, nearestDist)
	case nearestDist <= maxAcceptKm:
		log.Printf("Service: Found distant airport %s (%s) at %.1fkm\n", nearest.Code, nearest.Name, nearestDist)
	default:
		if !math.IsInf(nearestDist, 1) {
			log.Printf("WARN Service: Nearest airport %s is too far: %.1fkm\n", nearest.Code, nearestDist)
		}
		return models.AirportRecord{}, 0, false
	}

	return nearest, nearestDist, true
}
