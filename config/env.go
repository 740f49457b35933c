package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	defaultMongoURI      = "mongodb://localhost:27017"
	defaultMongoDB       = "laziz"
	defaultRedisAddr     = "localhost:6379"
	defaultJWTSecret     = "change-me-in-production"
	defaultAppPort       = "8080"
	defaultAppEnv        = "local"
	defaultAdminEmail    = "admin@laziz.local"
	defaultCurrencyLabel = "SP"
	defaultMenuCacheTTL  = "5m"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

func defaultValues() map[string]string {
	return map[string]string{
		"MONGO_URI":           defaultMongoURI,
		"MONGO_DB":            defaultMongoDB,
		"MONGO_LOG":           "",
		"REDIS_ADDR":          defaultRedisAddr,
		"REDIS_PASSWORD":      "",
		"JWT_SECRET":          defaultJWTSecret,
		"APP_PORT":            defaultAppPort,
		"APP_ENV":             defaultAppEnv,
		"ADMIN_EMAIL":         defaultAdminEmail,
		"ADMIN_PASSWORD":      "",
		"ADMIN_PASSWORD_HASH": "",
		"CURRENCY_LABEL":      defaultCurrencyLabel,
		"MENU_CACHE_TTL":      defaultMenuCacheTTL,
	}
}

func MongoURI() string {
	_ = Load()
	return get("MONGO_URI", defaultMongoURI)
}

func MongoDB() string {
	_ = Load()
	return get("MONGO_DB", defaultMongoDB)
}

// MongoLogEnabled reports whether slog records should be shipped to Mongo.
func MongoLogEnabled() bool {
	_ = Load()
	v := strings.ToLower(get("MONGO_LOG", ""))
	return v == "1" || v == "true"
}

func RedisAddr() string {
	_ = Load()
	return get("REDIS_ADDR", defaultRedisAddr)
}

func RedisPassword() string {
	_ = Load()
	return get("REDIS_PASSWORD", "")
}

func JWTSecret() string {
	_ = Load()
	return get("JWT_SECRET", defaultJWTSecret)
}

func AppPort() string {
	_ = Load()
	return get("APP_PORT", defaultAppPort)
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// ── Admin credentials ────────────────────────────────────────────────────────

func AdminEmail() string {
	_ = Load()
	return get("ADMIN_EMAIL", defaultAdminEmail)
}

// AdminPassword is the plain-text fallback. Prefer ADMIN_PASSWORD_HASH.
func AdminPassword() string {
	_ = Load()
	return get("ADMIN_PASSWORD", "")
}

// AdminPasswordHash is a bcrypt hash of the admin password. When set it takes
// precedence over ADMIN_PASSWORD.
func AdminPasswordHash() string {
	_ = Load()
	return get("ADMIN_PASSWORD_HASH", "")
}

// ── Menu ─────────────────────────────────────────────────────────────────────

// CurrencyLabel is the label appended to displayed prices, e.g. "12 SP".
func CurrencyLabel() string {
	_ = Load()
	return get("CURRENCY_LABEL", defaultCurrencyLabel)
}

// MenuCacheTTL is how long the composed menu payload stays in Redis.
func MenuCacheTTL() time.Duration {
	_ = Load()
	d, err := time.ParseDuration(get("MENU_CACHE_TTL", defaultMenuCacheTTL))
	if err != nil || d <= 0 {
		return 5 * time.Minute
	}
	return d
}

// ── Storage ──────────────────────────────────────────────────────────────────

func StorageDefault() string {
	_ = Load()
	return get("STORAGE_DISK", "local")
}

func StorageLocalRoot() string {
	_ = Load()
	return get("STORAGE_LOCAL_ROOT", "storage")
}

func StorageURL() string {
	_ = Load()
	return get("STORAGE_URL", "http://localhost:8080/storage")
}

func StorageS3Bucket() string   { _ = Load(); return get("S3_BUCKET", "") }
func StorageS3Region() string   { _ = Load(); return get("S3_REGION", "us-east-1") }
func StorageS3Key() string      { _ = Load(); return get("S3_KEY", "") }
func StorageS3Secret() string   { _ = Load(); return get("S3_SECRET", "") }
func StorageS3Endpoint() string { _ = Load(); return get("S3_ENDPOINT", "") }
func StorageS3URL() string      { _ = Load(); return get("S3_URL", "") }

// UploadMaxBytes caps incoming image uploads (default 5 MB).
func UploadMaxBytes() int64 {
	_ = Load()
	n, err := strconv.ParseInt(get("UPLOAD_MAX_BYTES", "5242880"), 10, 64)
	if err != nil || n <= 0 {
		return 5 << 20
	}
	return n
}

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}

		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}

	return fallback
}

// Get reads any config key by name with an optional fallback.
// Keys from .env and app.json are available after config.Load().
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}
