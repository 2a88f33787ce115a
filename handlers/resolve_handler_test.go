// handlers/resolve_handler_test.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/holidayengine/resolver/cache"
	"github.com/holidayengine/resolver/catalog"
	"github.com/holidayengine/resolver/models"
	"github.com/holidayengine/resolver/services"
)

const handlerFixtureCSV = `id,ident,type,name,latitude_deg,longitude_deg,continent,iso_country,municipality,scheduled_service,iata_code
1,LOWW,large_airport,Vienna International Airport,48.1103,16.5697,EU,AT,Vienna,yes,VIE
2,LOWG,medium_airport,Graz Airport,46.9911,15.4396,EU,AT,Graz,yes,GRZ
`

type stubGeocoder struct{}

func (stubGeocoder) Geocode(ctx context.Context, query string) (*models.GeocodeResult, error) {
	return nil, nil
}

func testResolver(t *testing.T) *services.Resolver {
	t.Helper()
	cat, err := catalog.Parse(strings.NewReader(handlerFixtureCSV))
	if err != nil {
		t.Fatalf("failed to parse fixture catalog: %v", err)
	}
	return services.NewResolver(cache.NewMemoryStore(), catalog.NewStore(cat), stubGeocoder{})
}

func TestResolveHandlerKnownCity(t *testing.T) {
	handler := ResolveHandler(testResolver(t))

	req := httptest.NewRequest(http.MethodGet, "/api/resolve?location=Vienna", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var outcome models.ResolutionOutcome
	if err := json.Unmarshal(rr.Body.Bytes(), &outcome); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if outcome.Code == nil || *outcome.Code != "VIE" {
		t.Errorf("code = %v, want VIE", outcome.Code)
	}
	if outcome.RecognizedName != "Vienna" {
		t.Errorf("recognized_name = %q, want Vienna", outcome.RecognizedName)
	}
}

func TestResolveHandlerUnresolvableIsStillOK(t *testing.T) {
	handler := ResolveHandler(testResolver(t))

	req := httptest.NewRequest(http.MethodGet, "/api/resolve?location=Qzxvlorptown", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even for an unresolvable location", rr.Code)
	}

	var outcome models.ResolutionOutcome
	if err := json.Unmarshal(rr.Body.Bytes(), &outcome); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if outcome.Code != nil {
		t.Errorf("code = %v, want null", *outcome.Code)
	}
	if outcome.Suggestions == nil {
		t.Error("suggestions missing from response, want an array")
	}
}

func TestResolveHandlerEmptyLocation(t *testing.T) {
	handler := ResolveHandler(testResolver(t))

	req := httptest.NewRequest(http.MethodGet, "/api/resolve", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	// The raw body must carry an explicit null code, not omit the field.
	if !strings.Contains(rr.Body.String(), `"code":null`) {
		t.Errorf("body = %s, want explicit \"code\":null", rr.Body.String())
	}
}

func TestResolveHandlerRejectsPost(t *testing.T) {
	handler := ResolveHandler(testResolver(t))

	req := httptest.NewRequest(http.MethodPost, "/api/resolve?location=Vienna", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rr.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if body["error"] == "" {
		t.Error("error response has no error message")
	}
}

func TestStatsHandler(t *testing.T) {
	handler := StatsHandler(testResolver(t))

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var stats models.ResolverStats
	if err := json.Unmarshal(rr.Body.Bytes(), &stats); err != nil {
		t.Fatalf("failed to decode stats: %v", err)
	}
	if stats.AirportsLoaded != 2 {
		t.Errorf("airports_loaded = %d, want 2", stats.AirportsLoaded)
	}
	if stats.CuratedCities == 0 {
		t.Error("curated_cities = 0, want the curated table size")
	}
}

func TestStatsHandlerRejectsPost(t *testing.T) {
	handler := StatsHandler(testResolver(t))

	req := httptest.NewRequest(http.MethodPost, "/api/stats", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rr.Code)
	}
}

func TestDestinationsHandler(t *testing.T) {
	handler := DestinationsHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/destinations", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var destinations []models.Destination
	if err := json.Unmarshal(rr.Body.Bytes(), &destinations); err != nil {
		t.Fatalf("failed to decode destinations: %v", err)
	}
	if len(destinations) == 0 {
		t.Fatal("destinations list is empty")
	}
	for i, d := range destinations {
		if d.City == "" || d.Code == "" || d.Country == "" {
			t.Errorf("destination %d has empty fields: %+v", i, d)
		}
		if len(d.Code) != 3 {
			t.Errorf("destination %d code = %q, want a 3-letter code", i, d.Code)
		}
	}
}
