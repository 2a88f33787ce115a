// scraper/dataset_downloader.go
package scraper

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/holidayengine/resolver/config"
)

// DownloadFile downloads a file from a URL and saves it to a local path.
func DownloadFile(url string, localSavePath string) error {
	log.Printf("Scraper: Downloading %s to %s\n", url, localSavePath)

	client := http.Client{
		Timeout: 60 * time.Second, // the airports CSV is a few MB
	}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make GET request to %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download file from %s: received status code %d", url, resp.StatusCode)
	}

	dir := filepath.Dir(localSavePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	// Write to a temp file first so a half-finished download never
	// replaces a good dataset.
	tmpPath := localSavePath + ".tmp"
	outFile, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create local file %s: %w", tmpPath, err)
	}

	if _, err := io.Copy(outFile, resp.Body); err != nil {
		outFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to copy downloaded content to %s: %w", tmpPath, err)
	}
	if err := outFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, localSavePath); err != nil {
		return fmt.Errorf("failed to move %s into place: %w", tmpPath, err)
	}

	log.Printf("Scraper: Successfully downloaded %s to %s\n", url, localSavePath)
	return nil
}

// DownloadAirportsCsv fetches the airport dataset from the configured URL
// and saves it to the configured local path. Returns the local path.
func DownloadAirportsCsv() (string, error) {
	csvURL := config.AppConfig.Dataset.AirportsCSVURL
	localPath := config.AppConfig.Dataset.AirportsCSVPath

	if csvURL == "" {
		return "", fmt.Errorf("airports CSV URL is not configured")
	}
	if localPath == "" {
		return "", fmt.Errorf("local save path for airports CSV is not configured")
	}

	if err := DownloadFile(csvURL, localPath); err != nil {
		return "", fmt.Errorf("failed to download airports CSV: %w", err)
	}
	return localPath, nil
}
