// database/connection.go
package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/holidayengine/resolver/config"
)

var DB *sql.DB

// InitDB opens the connection pool for the persistent resolution cache.
// The cache survives restarts and can be shared by several resolver
// instances; the service runs fine without it (in-memory store).
func InitDB(cfg config.DatabaseConfig) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
	)

	var err error
	DB, err = sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	DB.SetMaxOpenConns(10)
	DB.SetMaxIdleConns(10)
	DB.SetConnMaxLifetime(5 * time.Minute)

	if err := DB.Ping(); err != nil {
		DB.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database: Connected, persistent resolution cache enabled.")
	return nil
}

// CloseDB closes the pool on shutdown.
func CloseDB() {
	if DB != nil {
		DB.Close()
		log.Println("Database: Connection closed.")
	}
}
