package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gocql/gocql"

	"rosegold_back_end/internal/identity/local"
	"rosegold_back_end/internal/models"
)

// UsersSchema creates the tables ScyllaUserDirectory reads and writes.
// Apply it once per keyspace; the service does not run migrations.
const UsersSchema = `
CREATE TABLE IF NOT EXISTS users (
	user_id    text PRIMARY KEY,
	email      text,
	password   text,
	name       text,
	created_at timestamp
);
CREATE TABLE IF NOT EXISTS users_by_email (
	email   text PRIMARY KEY,
	user_id text
);`

const (
	cqlUserIDByEmail = `SELECT user_id FROM users_by_email WHERE email = ?`
	cqlUserByID      = `SELECT email, password, name FROM users WHERE user_id = ?`
	cqlClaimEmail    = `INSERT INTO users_by_email (email, user_id) VALUES (?, ?) IF NOT EXISTS`
	cqlInsertUser    = `INSERT INTO users (user_id, email, password, name, created_at) VALUES (?, ?, ?, ?, ?)`
)

// ScyllaUserDirectory stores accounts in two tables: users keyed by id and
// users_by_email as the unique email index.
type ScyllaUserDirectory struct {
	session *gocql.Session
}

var _ local.Directory = (*ScyllaUserDirectory)(nil)

func NewScyllaUserDirectory(session *gocql.Session) *ScyllaUserDirectory {
	return &ScyllaUserDirectory{session: session}
}

func (d *ScyllaUserDirectory) FindByEmail(ctx context.Context, email string) (models.User, error) {
	email = local.NormalizeEmail(email)

	var userID string
	err := d.session.Query(cqlUserIDByEmail, email).WithContext(ctx).Scan(&userID)
	if errors.Is(err, gocql.ErrNotFound) {
		return models.User{}, local.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("lookup %s: %w", email, err)
	}

	user := models.User{ID: userID}
	err = d.session.Query(cqlUserByID, userID).WithContext(ctx).
		Scan(&user.Email, &user.PasswordHash, &user.Name)
	if errors.Is(err, gocql.ErrNotFound) {
		return models.User{}, local.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("load user %s: %w", userID, err)
	}
	return user, nil
}

// Create claims the email with a lightweight transaction before writing the
// account row, so two registrations for one email cannot both succeed.
func (d *ScyllaUserDirectory) Create(ctx context.Context, user models.User) error {
	email := local.NormalizeEmail(user.Email)

	applied, err := d.session.Query(cqlClaimEmail, email, user.ID).
		WithContext(ctx).
		SerialConsistency(gocql.LocalSerial).
		MapScanCAS(map[string]interface{}{})
	if err != nil {
		return fmt.Errorf("claim email %s: %w", email, err)
	}
	if !applied {
		return local.ErrEmailTaken
	}

	err = d.session.Query(cqlInsertUser, user.ID, email, user.PasswordHash, user.Name, time.Now()).
		WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("insert user %s: %w", user.ID, err)
	}
	return nil
}
