package config

import (
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database selected by DB_DRIVER. The development
// default is a local sqlite file; mysql needs DB_DSN.
func InitDB() (*gorm.DB, error) {
	switch os.Getenv("DB_DRIVER") {
	case "mysql":
		return gorm.Open(mysql.Open(os.Getenv("DB_DSN")), &gorm.Config{})
	default:
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "kitchpad.db"
		}
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
}

// BaseURL is the public address used when building upload URLs.
func BaseURL() string {
	if url := os.Getenv("BASE_URL"); url != "" {
		return url
	}
	return "http://localhost:8080"
}

// Port the HTTP server listens on.
func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}
