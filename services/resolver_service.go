// services/resolver_service.go
package services

import (
	"context"
	"log"
	"strings"

	"github.com/holidayengine/resolver/catalog"
	"github.com/holidayengine/resolver/models"
	"github.com/holidayengine/resolver/utils"
)

// CacheStore is the normalized-query → airport-code memo shared across
// in-flight resolutions. Implementations must be safe for concurrent use.
type CacheStore interface {
	Get(key string) (string, bool)
	Put(key, code string)
	Len() int
}

// Geocoder converts free text to coordinates. Implementations must honor
// the context deadline; errors and nil results are both treated as
// "no geocode result".
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*models.GeocodeResult, error)
}

// Resolver sequences the resolution tiers: cache, curated table, bare
// catalog code, geocode + nearest airport, fuzzy suggestions. All
// dependencies are injected so tests can supply fresh, isolated
// instances.
type Resolver struct {
	cache       CacheStore
	catalogs    *catalog.Store
	geocoder    Geocoder
	suggestions *SuggestionEngine
}

func NewResolver(cacheStore CacheStore, catalogs *catalog.Store, geocoder Geocoder) *Resolver {
	names := CuratedCityNames()
	if len(names) == 0 {
		if cat := catalogs.Current(); cat != nil {
			names = cat.LargeAirportMunicipalities()
		}
	}
	return &Resolver{
		cache:       cacheStore,
		catalogs:    catalogs,
		geocoder:    geocoder,
		suggestions: NewSuggestionEngine(names),
	}
}

// Resolve maps an arbitrary location string to an airport code. Tiers
// are tried in fixed order, terminal on first success; successful
// resolutions are written through to the cache, failed ones never are
// (a transient geocode failure must not be remembered permanently).
func (r *Resolver) Resolve(ctx context.Context, location string) models.ResolutionOutcome {
	if strings.TrimSpace(location) == "" {
		return models.ResolutionOutcome{RecognizedName: "", Suggestions: []string{}}
	}

	normalized := utils.Normalize(location)
	title := utils.TitleCase(location)

	// 1. Cache hit.
	if code, ok := r.cache.Get(normalized); ok {
		return resolved(code, title)
	}

	// 2. Curated alias table.
	if code, ok := LookupCurated(normalized); ok {
		r.cache.Put(normalized, code)
		log.Printf("Service: Curated match: %s → %s\n", location, code)
		return resolved(code, title)
	}

	cat := r.catalogs.Current()

	// 3. Bare airport code, validated against the catalog.
	if utils.IsAirportCodeShaped(normalized) && cat != nil {
		code := utils.CanonicalAirportCode(normalized)
		if _, ok := cat.Get(code); ok {
			r.cache.Put(normalized, code)
			log.Printf("Service: Direct airport code: %s → %s\n", location, code)
			return resolved(code, code)
		}
	}

	// 4. Geocode and pick the nearest catalog airport. Skipped entirely
	// when the catalog failed to load; geocode errors degrade to the
	// suggestion tier instead of propagating.
	if cat != nil && r.geocoder != nil {
		loc, err := r.geocoder.Geocode(ctx, location)
		if err != nil {
			log.Printf("WARN Service: Geocoding failed for %s: %v\n", location, err)
		} else if loc != nil {
			if rec, dist, ok := NearestAirport(cat, loc.Lat, loc.Lon); ok {
				r.cache.Put(normalized, rec.Code)
				name := rec.Municipality
				if name == "" {
					name = title
				}
				log.Printf("Service: Nearest airport: %s → %s (%.1fkm)\n", location, rec.Code, dist)
				return resolved(rec.Code, name)
			}
		}
	}

	// 5. All tiers exhausted; offer fuzzy suggestions, never cached.
	suggestions := r.suggestions.Suggest(normalized)
	names := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		names = append(names, s.CityName)
	}
	log.Printf("WARN Service: Could not resolve %q. Suggestions: %v\n", location, names)
	return models.ResolutionOutcome{RecognizedName: title, Suggestions: names}
}

// Stats snapshots resolver diagnostics for the stats endpoint.
func (r *Resolver) Stats() models.ResolverStats {
	stats := models.ResolverStats{
		CacheSize:     r.cache.Len(),
		CuratedCities: CuratedSize(),
	}
	if cat := r.catalogs.Current(); cat != nil {
		stats.AirportsLoaded = cat.Len()
		stats.LargeAirports = cat.CountByCategory(models.CategoryLarge)
		stats.MediumAirports = cat.CountByCategory(models.CategoryMedium)
		stats.SmallAirports = cat.CountByCategory(models.CategorySmall)
	}
	return stats
}

func resolved(code, recognizedName string) models.ResolutionOutcome {
	return models.ResolutionOutcome{
		Code:           &code,
		RecognizedName: recognizedName,
		Suggestions:    []string{},
	}
}
