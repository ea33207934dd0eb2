package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds environment driven configuration values.
// Sensitive data should never have defaults inside code and must be provided via env files or the environment.
type AppConfig struct {
	AppPort            string
	SecretKey          string
	RateLimitPerMinute int
	AllowedOrigins     []string
	// Home page cache window in seconds; below 1 disables the cache
	IndexCacheSeconds int
	SessionTTLHours   int
	// Gin framework configuration
	GinMode string
	GinPath string
	// Database: driver is one of mysql, postgres, sqlite
	DBDriver    string
	DatabaseURI string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	// Redis backs the page cache when RedisHost is set
	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string
	// Logging configuration
	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
	// Uploaded images
	MediaRoot string
	MediaURL  string
	// Domain events are published only when NATSURL is set
	NATSURL string
	// Groups are created at boot when their slug is not taken yet
	Groups []GroupSeed
}

// GroupSeed describes a group from the "groups" section of config.json.
type GroupSeed struct {
	Title       string
	Slug        string
	Description string
}

var cfg AppConfig
var loaded bool

// Load loads the application configuration. It should be called once during boot.
func Load() AppConfig {
	if loaded {
		return cfg
	}

	// Precedence: config/config.json -> defaults -> .env -> environment variable overrides
	if err := loadJSONConfig(filepath.Join("config", "config.json"), &cfg); err != nil {
		log.Printf("invalid config/config.json: %v", err)
	}

	applyDefaults(&cfg)

	// .env only fills variables that are not already exported
	_ = godotenv.Load()
	applyEnvOverrides(&cfg)

	if cfg.SecretKey == "" {
		log.Fatal("SECRET_KEY must be set in environment variables")
	}

	loaded = true
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// loadJSONConfig reads JSON file into cfg if present. Returns error only for invalid JSON.
func loadJSONConfig(path string, out *AppConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return nil // silently ignore missing file
	}
	defer f.Close()

	var raw map[string]any
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return err
	}

	getString := func(m map[string]any, key string) string {
		if s, ok := m[key].(string); ok {
			return s
		}
		return ""
	}
	getInt := func(m map[string]any, key string) int {
		switch t := m[key].(type) {
		case float64:
			return int(t)
		case int:
			return t
		}
		return 0
	}
	getBool := func(m map[string]any, key string) bool {
		b, _ := m[key].(bool)
		return b
	}
	getStringSlice := func(m map[string]any, key string) []string {
		arr, ok := m[key].([]any)
		if !ok {
			return nil
		}
		res := make([]string, 0, len(arr))
		for _, it := range arr {
			if s, ok := it.(string); ok {
				res = append(res, s)
			}
		}
		return res
	}

	if app, ok := raw["app"].(map[string]any); ok {
		out.AppPort = getString(app, "AppPort")
		out.SecretKey = getString(app, "SecretKey")
		out.GinMode = getString(app, "GinMode")
		out.GinPath = getString(app, "GinPath")
		out.RateLimitPerMinute = getInt(app, "RateLimitPerMinute")
		out.IndexCacheSeconds = getInt(app, "IndexCacheSeconds")
		out.SessionTTLHours = getInt(app, "SessionTTLHours")
		out.AllowedOrigins = getStringSlice(app, "AllowedOrigins")
	}
	if db, ok := raw["database"].(map[string]any); ok {
		out.DBDriver = getString(db, "Driver")
		out.DatabaseURI = getString(db, "URI")
		out.DBHost = getString(db, "Host")
		out.DBPort = getString(db, "Port")
		out.DBUser = getString(db, "User")
		out.DBPassword = getString(db, "Password")
		out.DBName = getString(db, "Name")
	}
	if rd, ok := raw["redis"].(map[string]any); ok {
		out.RedisHost = getString(rd, "Host")
		out.RedisPort = getInt(rd, "Port")
		out.RedisDB = getInt(rd, "DB")
		out.RedisPassword = getString(rd, "Password")
	}
	if lg, ok := raw["log"].(map[string]any); ok {
		out.LogLevel = getString(lg, "Level")
		out.LogPath = getString(lg, "Path")
		out.LogMaxSizeMB = getInt(lg, "MaxSizeMB")
		out.LogMaxBackups = getInt(lg, "MaxBackups")
		out.LogMaxAgeDays = getInt(lg, "MaxAgeDays")
		out.LogCompress = getBool(lg, "Compress")
	}
	if md, ok := raw["media"].(map[string]any); ok {
		out.MediaRoot = getString(md, "Root")
		out.MediaURL = getString(md, "URL")
	}
	if nc, ok := raw["nats"].(map[string]any); ok {
		out.NATSURL = getString(nc, "URL")
	}
	if groups, ok := raw["groups"].([]any); ok {
		for _, it := range groups {
			g, ok := it.(map[string]any)
			if !ok || getString(g, "Slug") == "" {
				continue
			}
			out.Groups = append(out.Groups, GroupSeed{
				Title:       getString(g, "Title"),
				Slug:        getString(g, "Slug"),
				Description: getString(g, "Description"),
			})
		}
	}
	return nil
}

func applyDefaults(c *AppConfig) {
	if c.AppPort == "" {
		c.AppPort = "8000"
	}
	if c.RateLimitPerMinute == 0 {
		c.RateLimitPerMinute = 60
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	if c.IndexCacheSeconds == 0 {
		c.IndexCacheSeconds = 20
	}
	if c.SessionTTLHours == 0 {
		c.SessionTTLHours = 24 * 14
	}
	if c.DBDriver == "" {
		c.DBDriver = "mysql"
	}
	if c.DBHost == "" {
		c.DBHost = "127.0.0.1"
	}
	if c.DBPort == "" {
		c.DBPort = defaultDBPort(c.DBDriver)
	}
	if c.DBUser == "" {
		c.DBUser = "root"
	}
	if c.DBName == "" {
		c.DBName = "yatube"
	}
	if c.RedisPort == 0 {
		c.RedisPort = 6379
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogMaxSizeMB == 0 {
		c.LogMaxSizeMB = 100
	}
	if c.LogMaxBackups == 0 {
		c.LogMaxBackups = 3
	}
	if c.LogMaxAgeDays == 0 {
		c.LogMaxAgeDays = 7
	}
	if c.MediaRoot == "" {
		c.MediaRoot = filepath.Join(".", "media")
	}
	if c.MediaURL == "" {
		c.MediaURL = "/media/"
	}
}

func defaultDBPort(driver string) string {
	if driver == "postgres" {
		return "5432"
	}
	return "3306"
}

// applyEnvOverrides maps known environment variables onto config values when present.
func applyEnvOverrides(c *AppConfig) {
	if v := getEnv("APP_PORT", ""); v != "" {
		c.AppPort = v
	}
	if v := getEnv("SECRET_KEY", ""); v != "" {
		c.SecretKey = v
	}
	if v := getEnv("GIN_MODE", ""); v != "" {
		c.GinMode = v
	}
	if v := getEnv("GIN_PATH", ""); v != "" {
		c.GinPath = v
	}
	if v := getEnv("RATE_LIMIT_PER_MINUTE", ""); v != "" {
		c.RateLimitPerMinute = mustParseInt(v)
	}
	if v := getEnv("CORS_ALLOWED_ORIGINS", ""); v != "" {
		c.AllowedOrigins = splitAndTrim(v)
	}
	if v := getEnv("INDEX_CACHE_SECONDS", ""); v != "" {
		c.IndexCacheSeconds = mustParseInt(v)
	}
	if v := getEnv("SESSION_TTL_HOURS", ""); v != "" {
		c.SessionTTLHours = mustParseInt(v)
	}
	if v := getEnv("DB_DRIVER", ""); v != "" {
		c.DBDriver = v
	}
	if v := getEnv("DATABASE_URI", ""); v != "" {
		c.DatabaseURI = v
	}
	if v := getEnv("DB_HOST", ""); v != "" {
		c.DBHost = v
	}
	if v := getEnv("DB_PORT", ""); v != "" {
		c.DBPort = v
	}
	if v := getEnv("DB_USER", ""); v != "" {
		c.DBUser = v
	}
	if v := getEnv("DB_PASSWORD", ""); v != "" {
		c.DBPassword = v
	}
	if v := getEnv("DB_NAME", ""); v != "" {
		c.DBName = v
	}
	if v := getEnv("REDIS_HOST", ""); v != "" {
		c.RedisHost = v
	}
	if v := getEnv("REDIS_PORT", ""); v != "" {
		c.RedisPort = mustParseInt(v)
	}
	if v := getEnv("REDIS_DB", ""); v != "" {
		c.RedisDB = mustParseInt(v)
	}
	if v := getEnv("REDIS_PASSWORD", ""); v != "" {
		c.RedisPassword = v
	}
	if v := getEnv("LOG_LEVEL", ""); v != "" {
		c.LogLevel = v
	}
	if v := getEnv("LOG_PATH", ""); v != "" {
		c.LogPath = v
	}
	if v := getEnv("LOG_MAX_SIZE_MB", ""); v != "" {
		c.LogMaxSizeMB = mustParseInt(v)
	}
	if v := getEnv("LOG_MAX_BACKUPS", ""); v != "" {
		c.LogMaxBackups = mustParseInt(v)
	}
	if v := getEnv("LOG_MAX_AGE_DAYS", ""); v != "" {
		c.LogMaxAgeDays = mustParseInt(v)
	}
	if v := getEnv("LOG_COMPRESS", ""); v != "" {
		c.LogCompress = v == "true"
	}
	if v := getEnv("MEDIA_ROOT", ""); v != "" {
		c.MediaRoot = v
	}
	if v := getEnv("MEDIA_URL", ""); v != "" {
		c.MediaURL = v
	}
	if v := getEnv("NATS_URL", ""); v != "" {
		c.NATSURL = v
	}
}

func mustParseInt(val string) int {
	i, err := strconv.Atoi(val)
	if err != nil {
		log.Fatalf("invalid integer value %s: %v", val, err)
	}
	return i
}

func splitAndTrim(raw string) []string {
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
