// handlers/admin_handler.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/holidayengine/resolver/catalog"
	"github.com/holidayengine/resolver/services"
)

// RefreshAirportsHandler handles POST /api/admin/refresh-airports.
// It unconditionally re-downloads the airport dataset and swaps in a
// fresh catalog.
func RefreshAirportsHandler(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			respondWithError(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
			return
		}

		if err := services.RefreshAirportData(store); err != nil {
			respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to refresh airport data: %v", err))
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]string{"message": "Airport data refreshed successfully."})
	}
}

// CheckUpdateAirportsHandler handles POST /api/admin/check-update-airports.
// It refreshes only when the dataset catalog page advertises a newer
// publication date.
func CheckUpdateAirportsHandler(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			respondWithError(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
			return
		}

		refreshed, err := services.UpdateAirportDataIfNeeded(store)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to check/update airport data: %v", err))
			return
		}
		if refreshed {
			respondWithJSON(w, http.StatusOK, map[string]string{"message": "Airport data was stale and has been refreshed."})
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]string{"message": "Airport data is up to date."})
	}
}
