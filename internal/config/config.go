package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string
	MongoURI   string
	MongoDB    string
	ServerAddr string

	FrontendOrigin string

	RateLimitInquiries int
	RateLimitWindowSec int

	RedisURL        string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	CacheTTLSeconds int

	AdminAPIKey       string
	AdminSetupKey     string
	AdminUser         string
	AdminPassword     string
	JWTSecret         string
	AccessTTLMinutes  int
	RefreshTTLMinutes int
	CookieSecure      bool

	BrevoAPIKey      string
	BrevoSenderEmail string
	BrevoSenderName  string
	BrevoSandbox     bool
	InquiryNotifyTo  string

	// Image ingestion. Gallery covers hero/portfolio/location photos,
	// avatar covers profile photos, client logos and the favicon.
	GalleryMaxWidth int
	GalleryQuality  float64
	AvatarMaxWidth  int
	AvatarQuality   float64
	MaxUploadMB     int64

	Timezone *time.Location
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	loc, err := time.LoadLocation(getEnv("TZ", "Europe/Prague"))
	if err != nil {
		return nil, err
	}

	mongoURI := getEnv("MONGO_URI", "mongodb://localhost:27017/mcatering")
	mongoDB := getEnv("MONGO_DB", "")
	if mongoDB == "" {
		mongoDB = mongoDBFromURI(mongoURI)
	}
	if mongoDB == "" {
		mongoDB = "mcatering"
	}

	cfg := &Config{
		Env:        getEnv("APP_ENV", "development"),
		MongoURI:   mongoURI,
		MongoDB:    mongoDB,
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),

		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:5173"),

		RateLimitInquiries: getEnvInt("RATE_LIMIT_INQUIRIES", 5),
		RateLimitWindowSec: getEnvInt("RATE_LIMIT_WINDOW_SEC", 60),

		RedisURL:        getEnv("REDIS_URL", ""),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		CacheTTLSeconds: getEnvInt("CACHE_TTL_SECONDS", 60),

		AdminAPIKey:       getEnv("ADMIN_API_KEY", ""),
		AdminSetupKey:     getEnv("ADMIN_SETUP_KEY", ""),
		AdminUser:         getEnv("ADMIN_USER", "admin"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		AccessTTLMinutes:  getEnvInt("ACCESS_TTL_MINUTES", 15),
		RefreshTTLMinutes: getEnvInt("REFRESH_TTL_MINUTES", 43200),
		CookieSecure:      getEnv("COOKIE_SECURE", "false") == "true",

		BrevoAPIKey:      getEnv("BREVO_API_KEY", ""),
		BrevoSenderEmail: getEnv("BREVO_SENDER_EMAIL", ""),
		BrevoSenderName:  getEnv("BREVO_SENDER_NAME", "Master's Catering"),
		BrevoSandbox:     getEnv("BREVO_SANDBOX", "false") == "true",
		InquiryNotifyTo:  getEnv("INQUIRY_NOTIFY_TO", ""),

		GalleryMaxWidth: getEnvInt("IMAGE_GALLERY_MAX_WIDTH", 800),
		GalleryQuality:  getEnvFloat("IMAGE_GALLERY_QUALITY", 0.6),
		AvatarMaxWidth:  getEnvInt("IMAGE_AVATAR_MAX_WIDTH", 400),
		AvatarQuality:   getEnvFloat("IMAGE_AVATAR_QUALITY", 0.6),
		MaxUploadMB:     int64(getEnvInt("IMAGE_MAX_UPLOAD_MB", 10)),

		Timezone: loc,
	}

	return cfg, nil
}

func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

func mongoDBFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	db := strings.Trim(u.Path, "/")
	if db == "" {
		return ""
	}
	// mongodb URIs sometimes include extra path segments; we only support the first one as db name.
	if idx := strings.Index(db, "/"); idx >= 0 {
		db = db[:idx]
	}
	return db
}
