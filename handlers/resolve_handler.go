// handlers/resolve_handler.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/holidayengine/resolver/services"
)

// Helper to respond with JSON
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error marshalling JSON response: %v", err)
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// Helper to respond with an error
func respondWithError(w http.ResponseWriter, code int, message string) {
	log.Printf("API Error %d: %s", code, message)
	respondWithJSON(w, code, map[string]string{"error": message})
}

// ResolveHandler handles GET /api/resolve?location=<text>.
// It always answers 200 with a ResolutionOutcome: an empty or
// unresolvable location is a defined zero-result outcome, not an HTTP
// error.
func ResolveHandler(resolver *services.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
			return
		}

		location := r.URL.Query().Get("location")
		outcome := resolver.Resolve(r.Context(), location)
		respondWithJSON(w, http.StatusOK, outcome)
	}
}

// StatsHandler handles GET /api/stats with resolver diagnostics.
func StatsHandler(resolver *services.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
			return
		}
		respondWithJSON(w, http.StatusOK, resolver.Stats())
	}
}

// DestinationsHandler handles GET /api/destinations, the curated
// popular-destination list for autocomplete.
func DestinationsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
			return
		}
		respondWithJSON(w, http.StatusOK, services.PopularDestinations())
	}
}
