package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
)

// Config configures the host server that serves the widget page and relays
// uploads to the summarizer.
type Config struct {
	Port        string
	DatabaseURL string
	LogLevel    string

	// Summarizer that actually handles /api/upload
	UpstreamURL string

	// S3 archive of relayed uploads
	ArchiveUploads    bool
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3BucketName      string
	S3UseSSL          bool

	// Upload limits
	MaxFileSize int64
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       getEnv("DATABASE_URL", "data/uploads.db"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		UpstreamURL:       getEnv("UPSTREAM_URL", ""),
		ArchiveUploads:    getEnv("ARCHIVE_UPLOADS", "false") == "true",
		S3Endpoint:        getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", "minioadmin"),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", "minioadmin"),
		S3BucketName:      getEnv("S3_BUCKET_NAME", "uploads"),
		S3UseSSL:          getEnv("S3_USE_SSL", "false") == "true",
		MaxFileSize:       80 * 1024 * 1024,
	}

	if v := os.Getenv("MAX_FILE_SIZE"); v != "" {
		size, err := strconv.ParseInt(v, 10, 64)
		if err != nil || size <= 0 {
			return nil, fmt.Errorf("MAX_FILE_SIZE must be a positive number of bytes, got %q", v)
		}
		cfg.MaxFileSize = size
	}

	if cfg.UpstreamURL == "" {
		return nil, fmt.Errorf("UPSTREAM_URL is required")
	}
	if err := validateURL(cfg.UpstreamURL); err != nil {
		return nil, fmt.Errorf("UPSTREAM_URL: %w", err)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}
	return nil
}
