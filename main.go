// main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/holidayengine/resolver/cache"
	"github.com/holidayengine/resolver/catalog"
	"github.com/holidayengine/resolver/config"
	"github.com/holidayengine/resolver/database"
	"github.com/holidayengine/resolver/geocode"
	"github.com/holidayengine/resolver/handlers"
	"github.com/holidayengine/resolver/services"
)

func main() {
	log.Println("Starting HolidayEngine airport resolver backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment as-is.")
	}

	configPath := os.Getenv("RESOLVER_CONFIG")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	if err := config.LoadConfig(configPath); err != nil {
		log.Fatalf("Error loading configuration from %s: %v", configPath, err)
	}
	log.Printf("Configuration loaded. Server port: %s, airports CSV: %s",
		config.AppConfig.Server.Port, config.AppConfig.Dataset.AirportsCSVPath)

	// The resolution cache: in-memory by default, MySQL-backed when a
	// shared, restart-surviving cache is wanted.
	var cacheStore services.CacheStore = cache.NewMemoryStore()
	if config.AppConfig.Database.Enabled {
		if err := database.InitDB(config.AppConfig.Database); err != nil {
			log.Printf("ERROR: Database init failed, falling back to in-memory cache: %v", err)
		} else {
			defer database.CloseDB()
			cacheStore = database.NewResolutionCacheStore()
		}
	}

	// Catalog load failure is the one operational fault here: log it
	// loudly and keep serving with curated/cache-only resolution.
	cat, err := catalog.Load(config.AppConfig.Dataset.AirportsCSVPath)
	if err != nil {
		log.Printf("ERROR: Airport catalog unavailable, nearest-airport search disabled: %v", err)
	}
	catalogStore := catalog.NewStore(cat)

	geocoder := geocode.NewClient(
		config.AppConfig.Geocoder.BaseURL,
		config.AppConfig.Geocoder.UserAgent,
		config.AppConfig.Geocoder.Timeout,
	)

	resolver := services.NewResolver(cacheStore, catalogStore, geocoder)

	http.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if config.AppConfig.Database.Enabled && database.DB != nil {
			if err := database.DB.Ping(); err != nil {
				http.Error(w, `{"status": "error", "message": "database connection error"}`, http.StatusInternalServerError)
				log.Printf("Health check failed: DB ping error: %v", err)
				return
			}
		}
		fmt.Fprintln(w, `{"status": "ok", "message": "airport resolver is healthy"}`)
	})

	http.HandleFunc("/api/resolve", handlers.ResolveHandler(resolver))
	http.HandleFunc("/api/stats", handlers.StatsHandler(resolver))
	http.HandleFunc("/api/destinations", handlers.DestinationsHandler())

	// Admin routes for managing the airport dataset
	http.HandleFunc("/api/admin/refresh-airports", handlers.RefreshAirportsHandler(catalogStore))
	http.HandleFunc("/api/admin/check-update-airports", handlers.CheckUpdateAirportsHandler(catalogStore))

	serverAddr := ":" + config.AppConfig.Server.Port
	log.Printf("Server starting on http://localhost%s\n", serverAddr)
	if err := http.ListenAndServe(serverAddr, nil); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
