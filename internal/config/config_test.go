package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ALLOWED_ORIGINS", "ADMIN_EMAIL", "SESSION_TTL", "REDIS_HOST", "SCYLLA_HOSTS", "SCYLLA_KS_USERS_KEYSPACE", "ELASTIC_URL", "MINIO_ENDPOINT", "MINIO_BUCKET"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "admin@jewelia.com", cfg.AdminEmail)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Scylla.Enabled())
	assert.False(t, cfg.Elastic.Enabled())
	assert.False(t, cfg.MinIO.Enabled())
	assert.Equal(t, "products", cfg.Elastic.Index)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("SCYLLA_HOSTS", "10.0.0.1,10.0.0.2")
	t.Setenv("SCYLLA_KS_USERS_KEYSPACE", "users")
	t.Setenv("MINIO_ENDPOINT", "localhost:9000")
	t.Setenv("MINIO_BUCKET", "jewelry")
	t.Setenv("MINIO_USE_SSL", "TRUE")
	t.Setenv("MINIO_URL_TTL", "600")

	cfg := FromEnv()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 90*time.Minute, cfg.SessionTTL)
	assert.True(t, cfg.Scylla.Enabled())
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.Scylla.Hosts)
	assert.True(t, cfg.MinIO.Enabled())
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, 10*time.Minute, cfg.MinIO.URLTTL)
}

func TestGetDuration_InvalidFallsBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")
	assert.Equal(t, time.Hour, getDuration("SESSION_TTL", time.Hour))
}
