package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config agrupa la configuración del cliente HCE leída del entorno.
type Config struct {
	BaseURL        string
	LoginPath      string
	SedePath       string
	TokenPath      string
	MePath         string
	RequestTimeout time.Duration // 0 = sin timeout

	StorageDriver string // memory | sqlite3 | mysql
	StorageDSN    string

	Timezone string

	ChromePath string
	Headless   bool

	DebugDashboard bool
	DebugPort      string

	KioskPath    string
	KioskRefresh time.Duration
}

// Load lee .env (si existe) y el entorno, aplicando valores por defecto.
func Load() Config {
	// .env es opcional: en producción todo viene del entorno
	_ = godotenv.Load()

	return Config{
		BaseURL:        strings.TrimRight(getEnv("HCE_BASE_URL", "http://127.0.0.1:8000"), "/"),
		LoginPath:      getEnv("HCE_LOGIN_PATH", "/login"),
		SedePath:       getEnv("HCE_SEDE_PATH", "/auth/sede"),
		TokenPath:      getEnv("HCE_TOKEN_PATH", "/auth/token"),
		MePath:         getEnv("HCE_ME_PATH", "/auth/me"),
		RequestTimeout: getDuration("HCE_REQUEST_TIMEOUT", 0),

		StorageDriver: strings.ToLower(getEnv("HCE_STORAGE_DRIVER", "sqlite3")),
		StorageDSN:    getEnv("HCE_STORAGE_DSN", "hce_session.db"),

		Timezone: getEnv("HCE_TIMEZONE", "America/Bogota"),

		ChromePath: getEnv("HCE_CHROME_PATH", ""),
		Headless:   getBool("HCE_HEADLESS", true),

		DebugDashboard: getBool("HCE_DEBUG_DASHBOARD", false),
		DebugPort:      getEnv("HCE_DEBUG_PORT", "9090"),

		KioskPath:    getEnv("HCE_KIOSK_PATH", "/"),
		KioskRefresh: getDuration("HCE_KIOSK_REFRESH", 5*time.Minute),
	}
}

// Location retorna la zona horaria configurada; si es inválida usa la local.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("⚠️  HCE_TIMEZONE=%q inválida, usando hora local: %v", c.Timezone, err)
		return time.Local
	}
	return loc
}

// getEnv obtiene una variable de entorno o usa un valor por defecto
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	raw = strings.TrimSpace(raw)
	return strings.EqualFold(raw, "true") || raw == "1"
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	dur, err := time.ParseDuration(raw)
	if err != nil || dur < 0 {
		log.Printf("invalid %s=%q, using default %s", key, raw, defaultValue)
		return defaultValue
	}
	return dur
}
