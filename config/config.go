package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Address    string
	MongoDbUri string
	JwtSecret  string
	TokenTTL   time.Duration
}

func GetConfig() Config {
	// Missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	ttlHours := 24
	if v := os.Getenv("TOKEN_TTL_HOURS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			ttlHours = parsed
		}
	}

	return Config{
		Address:    fmt.Sprintf(":%s", port),
		MongoDbUri: os.Getenv("MONGO_DB_URI"),
		JwtSecret:  os.Getenv("JWT_SECRET"),
		TokenTTL:   time.Duration(ttlHours) * time.Hour,
	}
}
