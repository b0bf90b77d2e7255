package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/chama/internal/models"
)

const (
	selectUser = `SELECT id, email, display_name, password_hash, role, avatar_seed, created_at, updated_at FROM users`

	insertUser = `
		INSERT INTO users (id, email, display_name, password_hash, role, avatar_seed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
)

// CreateUser inserts a dashboard account. Emails are unique without regard
// to case.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	if _, err := s.db.ExecContext(ctx, insertUser,
		user.ID, user.Email, user.DisplayName, user.PasswordHash,
		string(user.Role), user.AvatarSeed, user.CreatedAt, user.UpdatedAt,
	); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// scanUser returns nil and no error when the row is missing.
func scanUser(row *sql.Row) (*models.User, error) {
	var (
		u    models.User
		role string
	)
	err := row.Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &role, &u.AvatarSeed, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u.Role = models.Role(role)
	return &u, nil
}

// GetUserByEmail looks a user up by email, ignoring case.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, selectUser+" WHERE email = ?", email))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

func (s *SQLiteStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, selectUser+" WHERE id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return u, nil
}
