package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr   string
	GinMode   string
	DBUser    string
	DBPass    string
	DBHost    string
	DBPort    string
	DBName    string
	JWTSecret string
	AMQPURL   string
	CacheTTL  time.Duration
}

// LoadEnv membaca konfigurasi dari environment, dengan .env sebagai sumber
// opsional untuk development.
func LoadEnv() Env {
	if err := godotenv.Load(); err == nil {
		log.Println("konfigurasi .env dimuat")
	}

	return Env{
		AppAddr:   getenv("APP_ADDR", ":8080"),
		GinMode:   strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:    getenv("DB_USER", "root"),
		DBPass:    os.Getenv("DB_PASS"),
		DBHost:    getenv("DB_HOST", "127.0.0.1"),
		DBPort:    getenv("DB_PORT", "3306"),
		DBName:    getenv("DB_NAME", "umrah_app"),
		JWTSecret: getenv("JWT_SECRET", "super-secret-key-change-me"),
		AMQPURL:   strings.TrimSpace(os.Getenv("AMQP_URL")),
		CacheTTL:  parseDur(getenv("CACHE_TTL", "30s")),
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 30 * time.Second
	}
	return d
}
