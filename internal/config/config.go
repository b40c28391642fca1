package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration.
type Config struct {
	InfluxDBURL    string
	InfluxDBToken  string
	InfluxDBOrg    string
	InfluxDBBucket string
	RedisAddr      string
	RedisPassword  string
	JWTSecret      string
	JWTIssuer      string
	JWTAudience    string
	Port           string
	AllowedOrigin  string
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, relying on system environment variables")
	}

	cfg := Config{
		InfluxDBURL:    os.Getenv("INFLUXDB_URL"),
		InfluxDBToken:  os.Getenv("INFLUXDB_TOKEN"),
		InfluxDBOrg:    os.Getenv("INFLUXDB_ORG"),
		InfluxDBBucket: envOrDefault("INFLUXDB_BUCKET", "telemetry"),
		RedisAddr:      envOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTIssuer:      envOrDefault("JWT_ISSUER", "wattchat"),
		JWTAudience:    envOrDefault("JWT_AUDIENCE", "wattchat-api"),
		Port:           envOrDefault("PORT", "8081"),
		AllowedOrigin:  envOrDefault("ALLOWED_ORIGIN", "http://localhost:5173"),
	}

	if cfg.InfluxDBURL == "" || cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		return Config{}, fmt.Errorf("InfluxDB configuration is incomplete. Please set INFLUXDB_URL, INFLUXDB_TOKEN, and INFLUXDB_ORG environment variables")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is not set")
	}
	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
