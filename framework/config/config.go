package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the central typed configuration struct.
type Config struct {
	App         AppConfig
	HTTPFactory HTTPFactoryConfig
}

type AppConfig struct {
	Name  string
	Env   string // local | production | testing
	Debug bool
	URL   string
	Port  string
}

// HTTPFactoryConfig selects the HTTP message factory implementation per
// capability, by capability-registry name. Empty values fall back to run-time
// discovery of an installed implementation.
type HTTPFactoryConfig struct {
	Request       string
	Response      string
	ServerRequest string
	Stream        string
	UploadedFile  string
	URI           string
}

// Load reads .env (if present) and populates a Config from environment variables.
// Call once at bootstrap: cfg := config.Load()
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	return &Config{
		App: AppConfig{
			Name:  env("APP_NAME", "GoHTTPFactory"),
			Env:   env("APP_ENV", "local"),
			Debug: envBool("APP_DEBUG", true),
			URL:   env("APP_URL", "http://localhost"),
			Port:  env("APP_PORT", "8000"),
		},
		HTTPFactory: HTTPFactoryConfig{
			Request:       env("HTTP_FACTORY_REQUEST", ""),
			Response:      env("HTTP_FACTORY_RESPONSE", ""),
			ServerRequest: env("HTTP_FACTORY_SERVER_REQUEST", ""),
			Stream:        env("HTTP_FACTORY_STREAM", ""),
			UploadedFile:  env("HTTP_FACTORY_UPLOADED_FILE", ""),
			URI:           env("HTTP_FACTORY_URI", ""),
		},
	}
}

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	return env(key, defaultVal)
}

// GetInt returns an int env value.
func GetInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

// GetBool returns a bool env value.
func GetBool(key string, defaultVal bool) bool {
	return envBool(key, defaultVal)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
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
