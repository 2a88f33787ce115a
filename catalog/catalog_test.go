// catalog/catalog_test.go
package catalog

import (
	"strings"
	"testing"

	"github.com/holidayengine/resolver/models"
)

const testCSV = `id,ident,type,name,latitude_deg,longitude_deg,continent,iso_country,municipality,scheduled_service,iata_code
1,LOWW,large_airport,Vienna International Airport,48.1103,16.5697,EU,AT,Vienna,yes,VIE
2,LOWG,medium_airport,Graz Airport,46.9911,15.4396,EU,AT,Graz,yes,grz
3,LOWK,small_airport,Klagenfurt Airport,46.6425,14.3376,EU,AT,Klagenfurt,yes,KLU
4,LOXZ,heliport,Hospital Heliport,47.0,15.0,EU,AT,Somewhere,yes,XZZ
5,LOAN,small_airport,Wiener Neustadt East Airport,47.8433,16.2600,EU,AT,Wiener Neustadt,no,
6,LOWZ,medium_airport,No Service Field,47.5,14.5,EU,AT,Nowhere,no,NSF
7,LOWB,small_airport,No Code Field,47.1,14.8,EU,AT,Nocode,yes,
8,LOWC,small_airport,Bad Coords Field,,15.1,EU,AT,Badcoords,yes,BCF
9,XCLS,closed,Old Closed Airport,47.2,15.3,EU,AT,Ghost Town,yes,OCA
`

func TestParseFiltersToPassengerAirports(t *testing.T) {
	cat, err := Parse(strings.NewReader(testCSV))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	// VIE, GRZ, KLU survive; heliport, closed, unscheduled, missing
	// code, and unparsable coordinates are all filtered or skipped.
	if got := cat.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}

	for _, code := range []string{"VIE", "GRZ", "KLU"} {
		if _, ok := cat.Get(code); !ok {
			t.Errorf("Get(%q) missing, want present", code)
		}
	}
	for _, code := range []string{"XZZ", "NSF", "BCF", "OCA"} {
		if _, ok := cat.Get(code); ok {
			t.Errorf("Get(%q) present, want filtered out", code)
		}
	}
}

func TestParseUpperCasesCodes(t *testing.T) {
	cat, err := Parse(strings.NewReader(testCSV))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	rec, ok := cat.Get("grz")
	if !ok {
		t.Fatal("Get(\"grz\") missing, want case-insensitive hit")
	}
	if rec.Code != "GRZ" {
		t.Errorf("Code = %q, want GRZ", rec.Code)
	}
	if rec.Municipality != "Graz" {
		t.Errorf("Municipality = %q, want Graz", rec.Municipality)
	}
	if rec.Category != models.CategoryMedium {
		t.Errorf("Category = %q, want %q", rec.Category, models.CategoryMedium)
	}
}

func TestParseRecordFields(t *testing.T) {
	cat, err := Parse(strings.NewReader(testCSV))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	rec, _ := cat.Get("VIE")
	if rec.Name != "Vienna International Airport" {
		t.Errorf("Name = %q", rec.Name)
	}
	if rec.Country != "AT" {
		t.Errorf("Country = %q, want AT", rec.Country)
	}
	if rec.Lat != 48.1103 || rec.Lon != 16.5697 {
		t.Errorf("coordinates = (%v, %v), want (48.1103, 16.5697)", rec.Lat, rec.Lon)
	}
}

func TestCountByCategory(t *testing.T) {
	cat, err := Parse(strings.NewReader(testCSV))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got := cat.CountByCategory(models.CategoryLarge); got != 1 {
		t.Errorf("large count = %d, want 1", got)
	}
	if got := cat.CountByCategory(models.CategoryMedium); got != 1 {
		t.Errorf("medium count = %d, want 1", got)
	}
	if got := cat.CountByCategory(models.CategorySmall); got != 1 {
		t.Errorf("small count = %d, want 1", got)
	}
}

func TestLargeAirportMunicipalities(t *testing.T) {
	cat, err := Parse(strings.NewReader(testCSV))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	names := cat.LargeAirportMunicipalities()
	if len(names) != 1 || names[0] != "Vienna" {
		t.Errorf("LargeAirportMunicipalities() = %v, want [Vienna]", names)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("testdata/does-not-exist.csv"); err == nil {
		t.Error("Load of missing file succeeded, want error")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Error("Load with empty path succeeded, want error")
	}
}

func TestStoreReplace(t *testing.T) {
	store := NewStore(nil)
	if store.Current() != nil {
		t.Fatal("new store with nil catalog should report nil")
	}

	cat, err := Parse(strings.NewReader(testCSV))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	store.Replace(cat)
	if got := store.Current(); got == nil || got.Len() != 3 {
		t.Error("Replace did not swap in the new catalog")
	}
}
