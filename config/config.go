package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT   string
	DB_URL string // empty selects the JSON file backend for catalog/content

	DATA_DIR    string // root of the JSON collections
	STORAGE_DIR string // image blob store; empty disables upload/serving

	JWT_SECRET          string
	ADMIN_PASSWORD_HASH string // bcrypt hash of the editing UI password
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = getEnv("DB_URL", "")
	DATA_DIR = getEnv("DATA_DIR", "./data")
	STORAGE_DIR = getEnv("STORAGE_DIR", "")

	JWT_SECRET = mustEnv("JWT_SECRET")
	ADMIN_PASSWORD_HASH = mustEnv("ADMIN_PASSWORD_HASH")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
