// services/dataset_service_test.go
package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/holidayengine/resolver/catalog"
	"github.com/holidayengine/resolver/config"
)

// setupDatasetConfig points the dataset config at test servers and
// resets the last-known update state, restoring both afterwards.
func setupDatasetConfig(t *testing.T, csvURL, pageURL string) {
	t.Helper()

	savedConfig := config.AppConfig
	datasetMu.Lock()
	savedUpdate := lastKnownDatasetUpdate
	lastKnownDatasetUpdate = time.Time{}
	datasetMu.Unlock()

	config.AppConfig.Dataset.AirportsCSVURL = csvURL
	config.AppConfig.Dataset.AirportsCSVPath = filepath.Join(t.TempDir(), "airports.csv")
	config.AppConfig.Dataset.CatalogPageURL = pageURL
	config.AppConfig.Dataset.UpdatedDateSelector = ".update-note"

	t.Cleanup(func() {
		config.AppConfig = savedConfig
		datasetMu.Lock()
		lastKnownDatasetUpdate = savedUpdate
		datasetMu.Unlock()
	})
}

func TestRefreshAirportDataSwapsCatalog(t *testing.T) {
	csvServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, fixtureCSV)
	}))
	defer csvServer.Close()

	setupDatasetConfig(t, csvServer.URL, "")
	store := catalog.NewStore(nil)

	if err := RefreshAirportData(store); err != nil {
		t.Fatalf("RefreshAirportData failed: %v", err)
	}

	cat := store.Current()
	if cat == nil {
		t.Fatal("catalog still nil after refresh")
	}
	if cat.Len() != 9 {
		t.Errorf("catalog has %d airports after refresh, want 9", cat.Len())
	}
	if _, ok := cat.Get("VIE"); !ok {
		t.Error("refreshed catalog is missing VIE")
	}
}

func TestUpdateAirportDataIfNeededSkipsWhenUnchanged(t *testing.T) {
	var downloads int32
	csvServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&downloads, 1)
		fmt.Fprint(w, fixtureCSV)
	}))
	defer csvServer.Close()

	pageServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><p class="update-note">last updated on 2024-11-02</p></body></html>`)
	}))
	defer pageServer.Close()

	setupDatasetConfig(t, csvServer.URL, pageServer.URL)
	store := catalog.NewStore(nil)

	refreshed, err := UpdateAirportDataIfNeeded(store)
	if err != nil {
		t.Fatalf("first check failed: %v", err)
	}
	if !refreshed {
		t.Fatal("first check did not refresh, want a refresh with no prior state")
	}
	if store.Current() == nil || store.Current().Len() != 9 {
		t.Fatal("catalog not swapped in by the first refresh")
	}

	refreshed, err = UpdateAirportDataIfNeeded(store)
	if err != nil {
		t.Fatalf("second check failed: %v", err)
	}
	if refreshed {
		t.Error("second check refreshed, want skip while the published date is unchanged")
	}
	if got := atomic.LoadInt32(&downloads); got != 1 {
		t.Errorf("dataset downloaded %d times, want 1", got)
	}
}

func TestUpdateAirportDataIfNeededNoPageConfigured(t *testing.T) {
	setupDatasetConfig(t, "", "")
	if _, err := UpdateAirportDataIfNeeded(catalog.NewStore(nil)); err == nil {
		t.Error("check succeeded with no catalog page configured, want error")
	}
}
