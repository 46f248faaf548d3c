// Package config loads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// GeminiConfig holds inference provider settings
type GeminiConfig struct {
	APIKey string
	Model  string
}

// ExtractionConfig holds the extraction pipeline settings
type ExtractionConfig struct {
	Temperature float64
	RecentDays  int
}

// DatabaseConfig holds the audit database settings. An empty URL disables
// audit logging, as does AuditEnabled=false.
type DatabaseConfig struct {
	URL          string
	AuditEnabled bool
}

// StorageConfig holds artifact archive settings. An empty Type disables the
// archive.
type StorageConfig struct {
	Type         string
	LocalPath    string
	S3Bucket     string
	S3Region     string
	AWSAccessKey string
	AWSSecretKey string
}

// Config is the full service configuration
type Config struct {
	Port       string
	APIVersion string
	LogLevel   string
	Gemini     GeminiConfig
	Extraction ExtractionConfig
	Database   DatabaseConfig
	Storage    StorageConfig
}

// Load reads configuration from the environment. A .env file is loaded
// first when one can be found, but real environment variables win.
func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("API_VERSION", "1.0.0")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("EXTRACTION_TEMPERATURE", 0.1)
	v.SetDefault("RECENT_DAYS", 90)
	v.SetDefault("AUDIT_ENABLED", true)
	v.SetDefault("STORAGE_LOCAL_PATH", "./storage/artifacts")
	v.SetDefault("AWS_REGION", "us-east-1")

	cfg := &Config{
		Port:       v.GetString("PORT"),
		APIVersion: v.GetString("API_VERSION"),
		LogLevel:   v.GetString("LOG_LEVEL"),
		Gemini: GeminiConfig{
			APIKey: v.GetString("GEMINI_API_KEY"),
			Model:  v.GetString("GEMINI_MODEL"),
		},
		Extraction: ExtractionConfig{
			Temperature: v.GetFloat64("EXTRACTION_TEMPERATURE"),
			RecentDays:  v.GetInt("RECENT_DAYS"),
		},
		Database: DatabaseConfig{
			URL:          v.GetString("DATABASE_URL"),
			AuditEnabled: v.GetBool("AUDIT_ENABLED"),
		},
		Storage: StorageConfig{
			Type:         v.GetString("STORAGE_TYPE"),
			LocalPath:    v.GetString("STORAGE_LOCAL_PATH"),
			S3Bucket:     v.GetString("AWS_S3_BUCKET"),
			S3Region:     v.GetString("AWS_REGION"),
			AWSAccessKey: v.GetString("AWS_ACCESS_KEY_ID"),
			AWSSecretKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Extraction.Temperature < 0 || c.Extraction.Temperature > 1 {
		return fmt.Errorf("EXTRACTION_TEMPERATURE must be in [0, 1], got %v", c.Extraction.Temperature)
	}
	if c.Extraction.RecentDays <= 0 {
		return fmt.Errorf("RECENT_DAYS must be positive, got %d", c.Extraction.RecentDays)
	}
	if c.Storage.Type != "" && c.Storage.Type != "local" && c.Storage.Type != "s3" {
		return fmt.Errorf("STORAGE_TYPE must be empty, local, or s3, got %q", c.Storage.Type)
	}
	return nil
}

// loadEnvFile tries the working directory, then walks up towards the module
// root so cmd/ binaries pick up the project .env.
func loadEnvFile() {
	candidates := []string{".env", "../.env", "../../.env"}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			_ = godotenv.Load(candidate)
			return
		}
	}
	// Last resort: look next to a go.mod above the working directory
	if dir, err := os.Getwd(); err == nil {
		for {
			if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
				_ = godotenv.Load(filepath.Join(dir, ".env"))
				return
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				return
			}
			dir = parent
		}
	}
}
