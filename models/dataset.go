// models/dataset.go
package models

import "time"

// DatasetInfo holds the publication date scraped from the airport
// dataset's catalog page, used to decide whether a re-download is due.
type DatasetInfo struct {
	SourceName    string
	UpdatedOn     time.Time
	RawDateString string
	LastChecked   time.Time
}
