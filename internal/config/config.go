package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env           string
	ServerPort    string
	MetricsAddr   string
	DatabasePath  string
	SecretKey     string
	TokenTTL      time.Duration
	AdminUsername string
	AdminPassword string
	RedisAddr     string
	NasaPowerURL  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	return &Config{
		Env:           getEnv("ENV", "dev"),
		ServerPort:    getEnv("PORT", "5000"),
		MetricsAddr:   getEnv("METRICS_ADDR", ":9100"),
		DatabasePath:  getEnv("DATABASE_PATH", "data/aerosense.db"),
		SecretKey:     getEnv("SECRET_KEY", "change_me_in_production"),
		TokenTTL:      time.Duration(getEnvInt("TOKEN_TTL_HOURS", 72)) * time.Hour,
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "password123"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		NasaPowerURL:  getEnv("NASA_POWER_URL", "https://power.larc.nasa.gov/api/temporal/hourly/point"),
	}
}

func (cfg *Config) IsProd() bool {
	return cfg.Env == "prod"
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("invalid %s value %q, using %d", key, raw, defaultValue)
		return defaultValue
	}
	return parsed
}
