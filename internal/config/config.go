// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// ImageURLMode selects how image URLs handed to browsers are produced.
type ImageURLMode string

const (
	// ImageURLSigned issues time-limited presigned URLs against a private
	// bucket. Signed URLs expire (7 days) and must not be persisted.
	ImageURLSigned ImageURLMode = "signed"
	// ImageURLPublic builds permanent URLs from a public base; requires the
	// bucket to allow anonymous reads.
	ImageURLPublic ImageURLMode = "public"
)

// ConcurrencyMode selects how the menu repository handles concurrent
// read-modify-write cycles over the single menu document.
type ConcurrencyMode string

const (
	// ConcurrencySerialized funnels every mutation through an in-process
	// single-writer lock spanning the whole read-modify-write.
	ConcurrencySerialized ConcurrencyMode = "serialized"
	// ConcurrencyLastWrite performs unguarded read-modify-write cycles:
	// concurrent mutations race and the last write silently wins.
	ConcurrencyLastWrite ConcurrencyMode = "lastwrite"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Port      string
	AppEnv    string
	JWTSecret string

	// Admin credential pair checked by the login endpoint.
	AdminUsername string
	AdminPassword string

	// Object storage (S3-compatible: MinIO locally, S3 in production)
	StorageEndpoint   string
	StorageAccessKey  string
	StorageSecretKey  string
	StorageBucket     string
	StorageRegion     string
	StorageUseSSL     bool
	StoragePublicBase string

	ImageURLMode    ImageURLMode
	ConcurrencyMode ConcurrencyMode
}

// Load reads configuration from a .env file (if present) and environment
// variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		AppEnv:    getEnv("APP_ENV", "development"),
		JWTSecret: getEnv("JWT_SECRET", "change_me_in_production"),

		AdminUsername: getEnv("ADMIN_USERNAME", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),

		StorageEndpoint:   getEnv("STORAGE_ENDPOINT", "localhost:9000"),
		StorageAccessKey:  getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
		StorageSecretKey:  getEnv("STORAGE_SECRET_KEY", "minioadmin"),
		StorageBucket:     getEnv("STORAGE_BUCKET", "menu"),
		StorageRegion:     getEnv("STORAGE_REGION", ""),
		StorageUseSSL:     getEnv("STORAGE_USE_SSL", "false") == "true",
		StoragePublicBase: getEnv("STORAGE_PUBLIC_BASE", "http://localhost:9000/menu"),

		ImageURLMode:    ImageURLMode(getEnv("IMAGE_URL_MODE", string(ImageURLPublic))),
		ConcurrencyMode: ConcurrencyMode(getEnv("MENU_CONCURRENCY_MODE", string(ConcurrencySerialized))),
	}

	switch cfg.ImageURLMode {
	case ImageURLSigned, ImageURLPublic:
	default:
		log.Printf("unknown IMAGE_URL_MODE %q, falling back to %q", cfg.ImageURLMode, ImageURLPublic)
		cfg.ImageURLMode = ImageURLPublic
	}

	switch cfg.ConcurrencyMode {
	case ConcurrencySerialized, ConcurrencyLastWrite:
	default:
		log.Printf("unknown MENU_CONCURRENCY_MODE %q, falling back to %q", cfg.ConcurrencyMode, ConcurrencySerialized)
		cfg.ConcurrencyMode = ConcurrencySerialized
	}

	return cfg
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
