// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"eventrix/internal/models"
)

// ServerConfig holds all server-related settings
type ServerConfig struct {
	Port           int
	Host           string
	MetricsEnabled bool
}

// StoreConfig holds persistence configuration settings
type StoreConfig struct {
	Backend    string // "memory", "badger", or "mongo"
	BadgerPath string // empty means in-memory badger
	MongoURI   string
}

// Config holds the complete application configuration
type Config struct {
	Server         *ServerConfig
	Store          *StoreConfig
	Reference      models.Coordinates
	AllowedOrigins []string
	Debug          bool
}

// DefaultConfig provides default server settings
func DefaultConfig() *ServerConfig {
	return &ServerConfig{
		Port:           8080,
		Host:           "0.0.0.0",
		MetricsEnabled: true,
	}
}

// DefaultStoreConfig provides default persistence settings
func DefaultStoreConfig() *StoreConfig {
	return &StoreConfig{
		Backend:    "badger",
		BadgerPath: "data/eventrix",
	}
}

// DefaultReference is the coordinate distances are measured from when
// REFERENCE_LAT/REFERENCE_LNG are not set: the IIT Madras campus.
var DefaultReference = models.Coordinates{Lat: 12.9915, Lng: 80.2336}

// LoadConfig loads configuration from environment variables and applies defaults
func LoadConfig() (*Config, error) {
	// Try to load .env file from multiple possible locations
	envLocations := []string{
		".env",          // Current directory
		"../../.env",    // Project root when running from cmd/engine
		"../../../.env", // Even higher directory
		filepath.Join(os.Getenv("GOPATH"), "src/eventrix/.env"), // GOPATH location
	}

	envLoaded := false
	for _, location := range envLocations {
		if err := godotenv.Load(location); err == nil {
			envLoaded = true
			break
		}
	}

	if !envLoaded {
		// If we couldn't find a .env file, try loading without a path
		// This is a silent failure if no .env exists, which is fine
		_ = godotenv.Load()
	}

	// Start with default server config
	serverConfig := DefaultConfig()

	// Override server settings from environment if provided
	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			serverConfig.Port = port
		}
	}

	serverConfig.Host = getEnvOrDefault("HOST", serverConfig.Host)

	if metricsEnabled := os.Getenv("METRICS_ENABLED"); metricsEnabled != "" {
		serverConfig.MetricsEnabled = metricsEnabled == "true"
	}

	// Initialize store config
	storeConfig := DefaultStoreConfig()

	storeConfig.Backend = getEnvOrDefault("STORE_BACKEND", storeConfig.Backend)
	switch storeConfig.Backend {
	case "memory", "badger":
	case "mongo":
		storeConfig.MongoURI = os.Getenv("MONGODB_URI")
		if storeConfig.MongoURI == "" {
			return nil, fmt.Errorf("MONGODB_URI environment variable is required when STORE_BACKEND is mongo")
		}
	default:
		return nil, fmt.Errorf("unsupported STORE_BACKEND %q, expected memory, badger, or mongo", storeConfig.Backend)
	}
	storeConfig.BadgerPath = getEnvOrDefault("BADGER_PATH", storeConfig.BadgerPath)

	reference := DefaultReference
	if latStr := os.Getenv("REFERENCE_LAT"); latStr != "" {
		if lat, err := strconv.ParseFloat(latStr, 64); err == nil {
			reference.Lat = lat
		}
	}
	if lngStr := os.Getenv("REFERENCE_LNG"); lngStr != "" {
		if lng, err := strconv.ParseFloat(lngStr, 64); err == nil {
			reference.Lng = lng
		}
	}

	// Initialize complete config
	config := &Config{
		Server:         serverConfig,
		Store:          storeConfig,
		Reference:      reference,
		AllowedOrigins: []string{"*"}, // Default to allow all origins
		Debug:          false,
	}

	// Override remaining settings from environment if provided
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		config.AllowedOrigins = strings.Split(origins, ",")
	}

	if debug := os.Getenv("DEBUG"); debug == "true" {
		config.Debug = true
	}

	return config, nil
}

// Helper function to get environment variable with default fallback
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
