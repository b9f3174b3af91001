package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	AdminEmail     string

	JWTSecret  string
	SessionTTL time.Duration

	Redis   RedisConfig
	Scylla  ScyllaConfig
	Elastic ElasticConfig
	MinIO   MinIOConfig
}

type RedisConfig struct {
	Host     string
	Password string
}

type ScyllaConfig struct {
	Hosts    []string
	Keyspace string
	Username string
	Password string
}

type ElasticConfig struct {
	URL      string
	Username string
	Password string
	Index    string
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
	URLTTL    time.Duration
}

// Enabled reports whether the service was configured. An unconfigured
// service falls back to its in-memory counterpart.
func (c RedisConfig) Enabled() bool   { return c.Host != "" }
func (c ScyllaConfig) Enabled() bool  { return len(c.Hosts) > 0 && c.Keyspace != "" }
func (c ElasticConfig) Enabled() bool { return c.URL != "" }
func (c MinIOConfig) Enabled() bool   { return c.Endpoint != "" && c.Bucket != "" }

// Load reads .env into the process environment when the file exists.
func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using the system environment")
	} else {
		log.Println("✅ .env file loaded")
	}
}

func FromEnv() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
		AdminEmail:     getEnv("ADMIN_EMAIL", "admin@jewelia.com"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		SessionTTL:     getDuration("SESSION_TTL", 24*time.Hour),
		Redis: RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Scylla: ScyllaConfig{
			Hosts:    splitList(os.Getenv("SCYLLA_HOSTS")),
			Keyspace: os.Getenv("SCYLLA_KS_USERS_KEYSPACE"),
			Username: os.Getenv("SCYLLA_KS_USERS_ROLE"),
			Password: os.Getenv("SCYLLA_KS_USERS_PASSWORD"),
		},
		Elastic: ElasticConfig{
			URL:      os.Getenv("ELASTIC_URL"),
			Username: os.Getenv("ELASTIC_USER"),
			Password: os.Getenv("ELASTIC_PASSWORD"),
			Index:    getEnv("ELASTIC_INDEX", "products"),
		},
		MinIO: MinIOConfig{
			Endpoint:  os.Getenv("MINIO_ENDPOINT"),
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			Bucket:    os.Getenv("MINIO_BUCKET"),
			Region:    getEnv("MINIO_REGION", "us-east-1"),
			UseSSL:    strings.EqualFold(os.Getenv("MINIO_USE_SSL"), "true"),
			URLTTL:    getDuration("MINIO_URL_TTL", time.Hour),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// getDuration accepts Go durations ("90m") or plain seconds ("3600").
func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	log.Printf("⚠️ Invalid %s=%q, using %s", key, raw, fallback)
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
