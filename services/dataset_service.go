// services/dataset_service.go
package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/holidayengine/resolver/catalog"
	"github.com/holidayengine/resolver/config"
	"github.com/holidayengine/resolver/scraper"
)

var (
	datasetMu              sync.Mutex
	lastKnownDatasetUpdate time.Time
)

// RefreshAirportData downloads the airports CSV from the configured URL,
// rebuilds the catalog, and swaps it into the store. In-flight
// resolutions keep using the old snapshot until the swap.
func RefreshAirportData(store *catalog.Store) error {
	datasetMu.Lock()
	defer datasetMu.Unlock()

	log.Println("Service: Forcing refresh of the airport dataset...")

	path, err := scraper.DownloadAirportsCsv()
	if err != nil {
		return fmt.Errorf("failed to download airport dataset: %w", err)
	}

	cat, err := catalog.Load(path)
	if err != nil {
		return fmt.Errorf("downloaded airport dataset did not load: %w", err)
	}

	store.Replace(cat)
	log.Printf("Service: Airport catalog refreshed, %d airports active.\n", cat.Len())
	return nil
}

// UpdateAirportDataIfNeeded checks the dataset catalog page's publication
// date and refreshes only when it is newer than the last refresh we did.
// Returns whether a refresh ran.
func UpdateAirportDataIfNeeded(store *catalog.Store) (bool, error) {
	if config.AppConfig.Dataset.CatalogPageURL == "" {
		return false, fmt.Errorf("dataset catalog page URL is not configured")
	}

	info, err := scraper.CheckAirportsDatasetUpdated()
	if err != nil {
		return false, fmt.Errorf("failed to check airport dataset freshness: %w", err)
	}

	datasetMu.Lock()
	upToDate := !lastKnownDatasetUpdate.IsZero() && !info.UpdatedOn.After(lastKnownDatasetUpdate)
	datasetMu.Unlock()

	if upToDate {
		log.Printf("Service: Airport dataset unchanged since %s, no refresh needed.\n",
			lastKnownDatasetUpdate.Format("2006-01-02"))
		return false, nil
	}

	if err := RefreshAirportData(store); err != nil {
		return false, err
	}

	datasetMu.Lock()
	lastKnownDatasetUpdate = info.UpdatedOn
	datasetMu.Unlock()
	return true, nil
}
