package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds all environment-driven settings for the server.
type Config struct {
	Port           string
	MongoURI       string
	MongoDatabase  string
	UploadDir      string
	FrontendURL    string
	ClientOrigin   string
	ClientBuildDir string
}

// LoadConfig reads configuration from the environment, with a .env file as
// an optional source for local development.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getEnv("MONGO_DB", "wishwall"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:3000"),
		ClientOrigin:   getEnv("CLIENT_ORIGIN", ""),
		ClientBuildDir: getEnv("CLIENT_BUILD_DIR", "client/dist"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
