package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort    string
	MySQLDSN      string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	JWTSecret     string
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
	SMTPFromName  string
	SMTPFromEmail string
	SwaggerHost   string
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "5000"),
		MySQLDSN:      getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/portfolio?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisPass:     os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		SMTPHost:      getEnv("EMAIL_HOST", "smtp.gmail.com"),
		SMTPPort:      getEnvInt("EMAIL_PORT", 587),
		SMTPUser:      os.Getenv("EMAIL_USER"),
		SMTPPass:      os.Getenv("EMAIL_PASS"),
		SMTPFromName:  getEnv("SMTP_FROM_NAME", "Portfolio"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),
		SwaggerHost:   os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
