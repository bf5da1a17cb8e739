// Package config provides centralized default values for the portal server
package config

import (
	"bufio"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

var envLoaded sync.Once

func loadEnvFile() {
	envLoaded.Do(func() {
		file, err := os.Open(".env")
		if err != nil {
			return
		}
		defer file.Close()

		log.Println("Loading configuration overrides from .env file...")
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())

			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}

			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			if os.Getenv(key) == "" {
				os.Setenv(key, value)
			}
		}
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.ParseBool(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%t (default: %t)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

var (
	// Server Configuration
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration

	// Upstream Content API
	ContentAPIURL     string
	ContentAPITimeout time.Duration

	// Level (jenjang) Configuration
	DefaultJenjang string

	// Pagination and home limits
	PageIncrement       int
	HomeNewsLimit       int
	HomeProjectsLimit   int
	HomeFacilitiesLimit int
	BestJournalsLimit   int
	RelatedItemsLimit   int

	// Admin cache
	AdminListTTL   time.Duration
	SnapshotDBPath string

	// Admin auth
	AdminPasswordHash string
	JWTSecret         string
	TokenLifetime     time.Duration

	// Contact email
	ResendAPIKey     string
	ContactEmailTo   string
	ContactEmailFrom string

	// AI draft generation
	GeminiAPIKey string
	GeminiModel  string

	// Upload processing
	UploadMaxWidth     int
	UploadWebPQuality  int
	UploadMaxBodyBytes int64

	// Static marketing content sources (JSON blobs)
	ProfileJSON      string
	SlidesJSON       string
	TestimonialsJSON string
)

func init() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)

	// Upstream Content API
	ContentAPIURL = getEnvString("CONTENT_API_URL", "http://localhost:5000/api")
	ContentAPITimeout = getEnvDuration("CONTENT_API_TIMEOUT", 30*time.Second)

	// Level Configuration
	DefaultJenjang = getEnvString("DEFAULT_JENJANG", "")

	// Pagination and home limits
	PageIncrement = getEnvInt("PAGE_INCREMENT", 6)
	HomeNewsLimit = getEnvInt("HOME_NEWS_LIMIT", 3)
	HomeProjectsLimit = getEnvInt("HOME_PROJECTS_LIMIT", 3)
	HomeFacilitiesLimit = getEnvInt("HOME_FACILITIES_LIMIT", 6)
	BestJournalsLimit = getEnvInt("BEST_JOURNALS_LIMIT", 3)
	RelatedItemsLimit = getEnvInt("RELATED_ITEMS_LIMIT", 3)

	// Admin cache
	AdminListTTL = time.Duration(getEnvInt("ADMIN_LIST_TTL_MINUTES", 5)) * time.Minute
	SnapshotDBPath = getEnvString("SNAPSHOT_DB_PATH", "portal-snapshots.db")

	// Admin auth
	AdminPasswordHash = getEnvString("ADMIN_PASSWORD_HASH", "")
	JWTSecret = getEnvString("JWT_SECRET", "")
	TokenLifetime = time.Duration(getEnvInt("TOKEN_LIFETIME_HOURS", 24)) * time.Hour

	// Contact email
	ResendAPIKey = getEnvString("RESEND_API_KEY", "")
	ContactEmailTo = getEnvString("CONTACT_EMAIL_TO", "info@unggulbangsa.sch.id")
	ContactEmailFrom = getEnvString("CONTACT_EMAIL_FROM", "noreply@unggulbangsa.sch.id")

	// AI draft generation
	GeminiAPIKey = getEnvString("GEMINI_API_KEY", "")
	GeminiModel = getEnvString("GEMINI_MODEL", "gemini-2.0-flash")

	// Upload processing
	UploadMaxWidth = getEnvInt("UPLOAD_MAX_WIDTH", 1600)
	UploadWebPQuality = getEnvInt("UPLOAD_WEBP_QUALITY", 80)
	UploadMaxBodyBytes = int64(getEnvInt("UPLOAD_MAX_BODY_MB", 10)) << 20

	// Static marketing content (JSON blobs provisioned at deploy time)
	ProfileJSON = getEnvString("PROFILE_JSON", "")
	SlidesJSON = getEnvString("SLIDES_JSON", "")
	TestimonialsJSON = getEnvString("TESTIMONIALS_JSON", "")
}
