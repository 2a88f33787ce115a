// config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

// DatasetConfig points at the airport dataset: the single local CSV path
// the catalog loads from, plus the download URL and the catalog page that
// carries the dataset's "last updated" stamp.
type DatasetConfig struct {
	AirportsCSVPath     string `yaml:"airports_csv_path"`
	AirportsCSVURL      string `yaml:"airports_csv_url"`
	CatalogPageURL      string `yaml:"catalog_page_url"`
	UpdatedDateSelector string `yaml:"updated_date_selector"`
}

type GeocoderConfig struct {
	BaseURL    string `yaml:"base_url"`
	UserAgent  string `yaml:"user_agent"`
	TimeoutStr string `yaml:"timeout"`
	Timeout    time.Duration
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Dataset  DatasetConfig  `yaml:"dataset"`
	Geocoder GeocoderConfig `yaml:"geocoder"`
}

var AppConfig Config

// LoadConfig reads the YAML configuration from a single explicit path and
// applies environment overrides for the values that differ per deployment.
func LoadConfig(configPath string) error {
	file, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(file, &AppConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Secrets and ports come from the environment (godotenv loads .env
	// in main) so the YAML file can be committed without credentials.
	if v := os.Getenv("RESOLVER_PORT"); v != "" {
		AppConfig.Server.Port = v
	}
	if v := os.Getenv("RESOLVER_DB_PASSWORD"); v != "" {
		AppConfig.Database.Password = v
	}
	if v := os.Getenv("RESOLVER_DB_USER"); v != "" {
		AppConfig.Database.User = v
	}

	if AppConfig.Geocoder.TimeoutStr != "" {
		AppConfig.Geocoder.Timeout, err = time.ParseDuration(AppConfig.Geocoder.TimeoutStr)
		if err != nil {
			return fmt.Errorf("failed to parse geocoder timeout: %w", err)
		}
	} else {
		AppConfig.Geocoder.Timeout = 5 * time.Second
	}

	if AppConfig.Server.Port == "" {
		AppConfig.Server.Port = "8080"
	}
	if AppConfig.Geocoder.UserAgent == "" {
		AppConfig.Geocoder.UserAgent = "HolidayEngine/2.0 (airport resolver)"
	}

	return nil
}
