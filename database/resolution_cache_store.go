// database/resolution_cache_store.go
package database

import (
	"database/sql"
	"log"
)

// ResolutionCacheStore is the MySQL-backed variant of the resolution
// cache (see scripts/schema.sql). Cache writes are best-effort: a failed
// INSERT costs one extra geocode on the next request, so errors are
// logged and swallowed rather than propagated into the resolution path.
type ResolutionCacheStore struct{}

func NewResolutionCacheStore() *ResolutionCacheStore {
	return &ResolutionCacheStore{}
}

// Get returns the cached airport code for a normalized key.
func (s *ResolutionCacheStore) Get(key string) (string, bool) {
	if DB == nil {
		return "", false
	}
	var code string
	err := DB.QueryRow(
		"SELECT iata_code FROM resolution_cache WHERE normalized_key = ?", key,
	).Scan(&code)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		log.Printf("ERROR Database: Failed to read resolution cache for key %q: %v", key, err)
		return "", false
	}
	return code, true
}

// Put upserts a resolved code; one row per normalized key,
// last-write-wins.
func (s *ResolutionCacheStore) Put(key, code string) {
	if DB == nil {
		return
	}
	_, err := DB.Exec(`
		INSERT INTO resolution_cache (normalized_key, iata_code, updated_at)
		VALUES (?, ?, NOW())
		ON DUPLICATE KEY UPDATE iata_code = VALUES(iata_code), updated_at = NOW()
	`, key, code)
	if err != nil {
		log.Printf("ERROR Database: Failed to write resolution cache for key %q: %v", key, err)
	}
}

// Len counts cached resolutions for the stats endpoint.
func (s *ResolutionCacheStore) Len() int {
	if DB == nil {
		return 0
	}
	var n int
	if err := DB.QueryRow("SELECT COUNT(*) FROM resolution_cache").Scan(&n); err != nil {
		log.Printf("ERROR Database: Failed to count resolution cache entries: %v", err)
		return 0
	}
	return n
}
