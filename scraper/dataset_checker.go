// scraper/dataset_checker.go
package scraper

import (
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/holidayengine/resolver/config"
	"github.com/holidayengine/resolver/models"
)

// Matches ISO dates like "2024-11-02" in the dataset page's update notice.
var updatedDateRegex = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`)

const updatedDateLayout = "2006-01-02"

// GetDatasetUpdatedInfo scrapes the dataset catalog page and extracts the
// date the airports CSV was last published. The container selector comes
// from config since the page layout changes without notice.
func GetDatasetUpdatedInfo(sourceName, pageURL, containerSelector string) (*models.DatasetInfo, error) {
	log.Printf("Scraper: Checking updated date for %s from %s (container: '%s')\n", sourceName, pageURL, containerSelector)

	client := http.Client{Timeout: 20 * time.Second}
	res, err := client.Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get URL %s: %w", pageURL, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get URL %s: status code %d", pageURL, res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML from %s: %w", pageURL, err)
	}

	containerText := strings.TrimSpace(doc.Find(containerSelector).Text())
	if containerText == "" {
		return nil, fmt.Errorf("container '%s' not found or empty on %s", containerSelector, pageURL)
	}

	match := updatedDateRegex.FindString(containerText)
	if match == "" {
		return nil, fmt.Errorf("no updated date found within container '%s' on %s", containerSelector, pageURL)
	}

	updatedOn, err := time.Parse(updatedDateLayout, match)
	if err != nil {
		return nil, fmt.Errorf("failed to parse updated date '%s': %w", match, err)
	}

	log.Printf("Scraper: %s dataset updated on %s\n", sourceName, updatedOn.Format(updatedDateLayout))

	return &models.DatasetInfo{
		SourceName:    sourceName,
		UpdatedOn:     updatedOn,
		RawDateString: match,
		LastChecked:   time.Now().UTC(),
	}, nil
}

// CheckAirportsDatasetUpdated fetches the publication date for the
// airports dataset using the configured page and selector.
func CheckAirportsDatasetUpdated() (*models.DatasetInfo, error) {
	pageURL := config.AppConfig.Dataset.CatalogPageURL
	containerSelector := config.AppConfig.Dataset.UpdatedDateSelector
	if containerSelector == "" {
		log.Println("WARN Scraper: No CSS selector configured for the dataset update notice, using 'body'.")
		containerSelector = "body"
	}
	return GetDatasetUpdatedInfo("Airports", pageURL, containerSelector)
}
