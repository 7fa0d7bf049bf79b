package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string
	GinMode    string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret string
	JWTIssuer string
	JWTTTL    time.Duration

	Materials []string
	Equipment []string

	SeedData bool
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "loadlogic"),
		DBPassword: getEnv("DB_PASSWORD", "loadlogic"),
		DBName:     getEnv("DB_NAME", "loadlogic"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret: getEnv("JWT_SECRET", "default-secret-key-change-me"),
		JWTIssuer: getEnv("JWT_ISSUER", "job-coordination-api"),
		JWTTTL:    getDuration("JWT_TTL", 24*time.Hour),

		Materials: getList("APP_MATERIALS", []string{"Sand", "Gravel", "Cement", "Concrete", "Asphalt", "Topsoil", "Crushed Stone"}),
		Equipment: getList("APP_EQUIPMENT", []string{"Truck-01", "Truck-02", "Truck-03", "Excavator-01", "Loader-01", "Crane-01"}),

		SeedData: getBool("SEED_DATA", false),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getList reads a comma-separated list, trimming whitespace around entries.
func getList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

func getBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
