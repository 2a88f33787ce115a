// catalog/catalog.go
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/jszwec/csvutil"

	"github.com/holidayengine/resolver/models"
	"github.com/holidayengine/resolver/utils"
)

// airportRow mirrors the columns of the OurAirports-format airports CSV.
// Extra columns in the file are ignored. Coordinates stay strings here
// because the raw dataset contains rows with blank or malformed values;
// they are parsed (and bad rows skipped) during filtering.
type airportRow struct {
	IATACode         string `csv:"iata_code"`
	Name             string `csv:"name"`
	Municipality     string `csv:"municipality"`
	ISOCountry       string `csv:"iso_country"`
	LatitudeDeg      string `csv:"latitude_deg"`
	LongitudeDeg     string `csv:"longitude_deg"`
	Type             string `csv:"type"`
	ScheduledService string `csv:"scheduled_service"`
}

// Catalog is the filtered, in-memory set of passenger-scheduled airports.
// Immutable after construction; reloads build a fresh Catalog and swap it
// in via Store.
type Catalog struct {
	byCode  map[string]models.AirportRecord
	records []models.AirportRecord
}

var passengerCategories = map[string]models.AirportCategory{
	"large_airport":  models.CategoryLarge,
	"medium_airport": models.CategoryMedium,
	"small_airport":  models.CategorySmall,
}

// Load reads and filters the airports CSV at the configured path.
// On any failure the returned error describes the problem and the caller
// is expected to continue without a catalog (curated-only resolution).
func Load(path string) (*Catalog, error) {
	if path == "" {
		return nil, fmt.Errorf("airports CSV path is not configured")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open airports CSV %s: %w", path, err)
	}
	defer f.Close()

	cat, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse airports CSV %s: %w", path, err)
	}
	log.Printf("Catalog: Loaded %d passenger airports from %s\n", cat.Len(), path)
	return cat, nil
}

// Parse decodes CSV data and keeps only rows where the category is one of
// the three passenger tiers, scheduled service is enabled, and an airport
// code is present. Codes are upper-cased. Rows with unparsable
// coordinates are skipped rather than failing the whole load.
func Parse(r io.Reader) (*Catalog, error) {
	csvReader := csv.NewReader(r)
	csvReader.ReuseRecord = true

	dec, err := csvutil.NewDecoder(csvReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder: %w", err)
	}

	cat := &Catalog{byCode: make(map[string]models.AirportRecord)}
	skipped := 0
	for {
		var row airportRow
		if err := dec.Decode(&row); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("failed to decode airports CSV row: %w", err)
		}

		category, ok := passengerCategories[row.Type]
		if !ok || row.ScheduledService != "yes" || row.IATACode == "" {
			continue
		}
		lat, latErr := strconv.ParseFloat(row.LatitudeDeg, 64)
		lon, lonErr := strconv.ParseFloat(row.LongitudeDeg, 64)
		if latErr != nil || lonErr != nil {
			skipped++
			continue
		}

		rec := models.AirportRecord{
			Code:         utils.CanonicalAirportCode(row.IATACode),
			Name:         row.Name,
			Municipality: row.Municipality,
			Country:      row.ISOCountry,
			Lat:          lat,
			Lon:          lon,
			Category:     category,
		}
		cat.byCode[rec.Code] = rec
		cat.records = append(cat.records, rec)
	}

	if skipped > 0 {
		log.Printf("Catalog: Skipped %d passenger airport rows with unparsable coordinates\n", skipped)
	}
	return cat, nil
}

// Get looks up a record by airport code (case-insensitive).
func (c *Catalog) Get(code string) (models.AirportRecord, bool) {
	rec, ok := c.byCode[utils.CanonicalAirportCode(code)]
	return rec, ok
}

// All returns the filtered records for iteration. Callers must not
// modify the returned slice.
func (c *Catalog) All() []models.AirportRecord {
	return c.records
}

// Len is the number of airports in the active catalog.
func (c *Catalog) Len() int {
	return len(c.records)
}

// CountByCategory tallies records per size tier for diagnostics.
func (c *Catalog) CountByCategory(category models.AirportCategory) int {
	n := 0
	for _, rec := range c.records {
		if rec.Category == category {
			n++
		}
	}
	return n
}

// LargeAirportMunicipalities returns the distinct, sorted municipality
// names of large airports, used as the suggestion reference list when no
// curated city list is available.
func (c *Catalog) LargeAirportMunicipalities() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, rec := range c.records {
		if rec.Category != models.CategoryLarge || rec.Municipality == "" {
			continue
		}
		if _, ok := seen[rec.Municipality]; ok {
			continue
		}
		seen[rec.Municipality] = struct{}{}
		names = append(names, rec.Municipality)
	}
	sort.Strings(names)
	return names
}
