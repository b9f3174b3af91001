package database

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosegold_back_end/internal/config"
	"rosegold_back_end/internal/identity/local"
	"rosegold_back_end/internal/models"
)

// Runs against a live cluster only: SCYLLA_HOSTS and SCYLLA_KS_USERS_KEYSPACE
// must point at a keyspace with UsersSchema applied.
func TestScyllaUserDirectory(t *testing.T) {
	cfg := config.FromEnv()
	if !cfg.Scylla.Enabled() || os.Getenv("SCYLLA_INTEGRATION") == "" {
		t.Skip("SCYLLA_INTEGRATION not set")
	}

	session, err := connectScylla(cfg.Scylla)
	require.NoError(t, err)
	defer session.Close()

	dir := NewScyllaUserDirectory(session)
	ctx := context.Background()
	email := strings.ToUpper(uuid.NewString()[:8]) + "@Example.com"

	_, err = dir.FindByEmail(ctx, email)
	assert.ErrorIs(t, err, local.ErrUserNotFound)

	user := models.User{ID: uuid.NewString(), Name: "Asha", Email: email, PasswordHash: "$argon2id$x"}
	require.NoError(t, dir.Create(ctx, user))
	assert.ErrorIs(t, dir.Create(ctx, models.User{ID: uuid.NewString(), Email: email}), local.ErrEmailTaken)

	got, err := dir.FindByEmail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, strings.ToLower(email), got.Email)
	assert.Equal(t, "Asha", got.Name)
	assert.Equal(t, user.PasswordHash, got.PasswordHash)
}

func TestConnect_NothingConfigured(t *testing.T) {
	conns, err := Connect(context.Background(), config.Config{})

	require.NoError(t, err)
	assert.Nil(t, conns.Redis)
	assert.Nil(t, conns.Scylla)
	assert.Nil(t, conns.Elastic)
	assert.Nil(t, conns.MinIO)
	conns.Close()
}
