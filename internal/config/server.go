package config

import (
	"os"
	"strconv"
	"strings"
)

// ServerConfig holds the HTTP server settings read from the environment.
type ServerConfig struct {
	Port         string
	DatabaseURL  string
	GeminiAPIKey string
	CORSOrigin   string
	S3           S3Settings
}

// S3Settings configures the optional S3/R2 deploy target
type S3Settings struct {
	Bucket          string
	Prefix          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string
}

// Enabled reports whether a bucket is configured
func (s S3Settings) Enabled() bool {
	return s.Bucket != ""
}

// LoadServerConfig reads ServerConfig from environment variables
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:         getEnv("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		CORSOrigin:   getEnv("CORS_ORIGIN", "*"),
		S3: S3Settings{
			Bucket:          os.Getenv("S3_BUCKET"),
			Prefix:          os.Getenv("S3_PREFIX"),
			Region:          getEnv("S3_REGION", "auto"),
			Endpoint:        os.Getenv("S3_ENDPOINT"),
			AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
			PublicBaseURL:   os.Getenv("S3_PUBLIC_BASE_URL"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetEnvInt reads an integer environment variable, returning fallback when unset or invalid
func GetEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// GetEnvBool reads a boolean environment variable, returning fallback when unset or invalid
func GetEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
