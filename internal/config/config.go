package config

import (
	"os"
	"strconv"
	"time"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
	PingAttempts       int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// StorageConfig selects where rendered PNGs are written.
// Backend is either "disk" (default) or "minio".
type StorageConfig struct {
	Backend string
	RootDir string
	MinIO   MinIOConfig
}

// RenderConfig controls the document renderer and the batch orchestrator.
type RenderConfig struct {
	BrandingFile string
	AssetsDir    string
	UploadsDir   string
	// Font files override the embedded Go fonts per style; empty keeps the default.
	FontRegular string
	FontBold    string
	FontItalic  string
	// BatchConcurrency caps in-flight items of one batch request; 0 means unbounded.
	BatchConcurrency int
	// CleanupOrphans removes a freshly written file when its record cannot be stored.
	CleanupOrphans bool
}

// RetentionConfig controls purging of old rendered documents. Days == 0 keeps everything.
type RetentionConfig struct {
	Days     int
	Interval time.Duration
}

// NotifierConfig controls the upcoming-event poller.
type NotifierConfig struct {
	Enabled  bool
	Interval time.Duration
	Window   time.Duration
	// RedisAddr enables cross-process claims; empty uses in-memory claims.
	RedisAddr string
	RedisDB   int
}

// LogConfig controls zerolog output.
type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost       string
	Port          string
	PublicBaseURL string
	Database      DatabaseConfig
	Storage       StorageConfig
	Render        RenderConfig
	Retention     RetentionConfig
	Notifier      NotifierConfig
	Log           LogConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
func Load() *AppConfig {
	appHost := getEnv("APP_HOST", "localhost:8080")
	return &AppConfig{
		AppHost:       appHost,
		Port:          getEnv("PORT", "8080"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://"+appHost),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
			PingAttempts:       getEnvInt("DB_PING_ATTEMPTS", 5),
		},
		Storage: StorageConfig{
			Backend: getEnv("STORAGE_BACKEND", "disk"),
			RootDir: getEnv("STORAGE_ROOT", "public"),
			MinIO: MinIOConfig{
				Endpoint:  getEnv("MINIO_ENDPOINT", ""),
				AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
				SecretKey: getEnv("MINIO_SECRET_KEY", ""),
				Bucket:    getEnv("MINIO_BUCKET", ""),
				UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			},
		},
		Render: RenderConfig{
			BrandingFile:     getEnv("BRANDING_FILE", ""),
			AssetsDir:        getEnv("ASSETS_DIR", "assets"),
			UploadsDir:       getEnv("UPLOADS_DIR", "public/uploads"),
			FontRegular:      getEnv("FONT_REGULAR", ""),
			FontBold:         getEnv("FONT_BOLD", ""),
			FontItalic:       getEnv("FONT_ITALIC", ""),
			BatchConcurrency: getEnvInt("BATCH_CONCURRENCY", 0),
			CleanupOrphans:   getEnvBool("CLEANUP_ORPHANS", true),
		},
		Retention: RetentionConfig{
			Days:     getEnvInt("RETENTION_DAYS", 0),
			Interval: getEnvDuration("RETENTION_INTERVAL", time.Hour),
		},
		Notifier: NotifierConfig{
			Enabled:   getEnvBool("NOTIFIER_ENABLED", true),
			Interval:  getEnvDuration("NOTIFIER_INTERVAL", time.Minute),
			Window:    getEnvDuration("NOTIFIER_WINDOW", 30*time.Minute),
			RedisAddr: getEnv("REDIS_ADDR", ""),
			RedisDB:   getEnvInt("REDIS_DB", 0),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			File:       getEnv("LOG_FILE", ""),
			MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 50),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
			MaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 14),
			Compress:   getEnvBool("LOG_COMPRESS", true),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil && d > 0 {
			return d
		}
	}
	return def
}
