package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration values.
type Config struct {
	AppPort      string
	AppEnv       string
	MongoURI     string
	MongoDB      string
	JWTSecret    string
	TokenExpires time.Duration
	CookieExpire time.Duration
	CORSOrigin   string
	S3Endpoint   string
	S3Region     string
	S3AccessKey  string
	S3SecretKey  string
	S3Bucket     string
	S3PublicURL  string
}

// Load reads environment variables and returns a populated Config.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:      getEnv("APP_PORT", "5000"),
		AppEnv:       getEnv("APP_ENV", "development"),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "diamondbakes"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		TokenExpires: time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		CookieExpire: time.Duration(getEnvInt("JWT_COOKIE_EXPIRE_DAYS", 30)) * 24 * time.Hour,
		CORSOrigin:   getEnv("CORS_ORIGIN", "http://localhost:5173"),
		S3Endpoint:   getEnv("S3_ENDPOINT", ""),
		S3Region:     getEnv("S3_REGION", "auto"),
		S3AccessKey:  getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:  getEnv("S3_SECRET_KEY", ""),
		S3Bucket:     getEnv("S3_BUCKET", "diamondbakes-media"),
		S3PublicURL:  getEnv("S3_PUBLIC_URL", ""),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	return cfg
}

// Production reports whether the app runs in production mode. Error
// responses hide internal detail when it does.
func (c *Config) Production() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
