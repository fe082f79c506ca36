package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Development-only defaults for AdminPassword and SessionSecret. Both MUST
// be overridden via env for anything public-facing.
const (
	defaultAdminPassword = "sameer@24"
	defaultSessionSecret = "your-secret-key"
)

type Config struct {
	Addr      string
	MongoURI  string
	MongoDB   string
	PublicDir string

	AdminPassword string
	SessionSecret string
	SessionTTL    time.Duration

	// RedisAddr empty means sessions live in process memory and are lost
	// on restart.
	RedisAddr     string
	RedisPassword string

	// SendgridAPIKey empty means contact submissions are stored only,
	// never mailed.
	SendgridAPIKey     string
	ContactNotifyEmail string
}

func Load() *Config {
	loadDotenv()

	return &Config{
		Addr:      GetEnvAsString("ADDR", ":3000"),
		MongoURI:  GetEnvAsString("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   GetEnvAsString("MONGO_DB", "portfolio"),
		PublicDir: GetEnvAsString("PUBLIC_DIR", "public"),

		AdminPassword: GetEnvAsString("ADMIN_PASSWORD", defaultAdminPassword),
		SessionSecret: GetEnvAsString("SESSION_SECRET", defaultSessionSecret),
		SessionTTL:    GetEnvAsDuration("SESSION_TTL", 24*time.Hour),

		RedisAddr:     GetEnvAsString("REDIS_ADDR", ""),
		RedisPassword: GetEnvAsString("REDIS_PASSWORD", ""),

		SendgridAPIKey:     GetEnvAsString("SENDGRID_API_KEY", ""),
		ContactNotifyEmail: GetEnvAsString("CONTACT_NOTIFY_EMAIL", ""),
	}
}

func loadDotenv() {
	for _, p := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Overload(p)
			log.Println("[env] loaded", p)
			return
		}
	}
}

// GetEnvAsString gets environment variable as string with default value
func GetEnvAsString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets environment variable as int with default value
func GetEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvAsDuration gets environment variable as duration with default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
