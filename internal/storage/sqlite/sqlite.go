// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/chama/internal/models"
	"github.com/mmynk/chama/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps PRAGMA foreign_keys in effect for every query.
	db.SetMaxOpenConns(1)

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

func fromUnix(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

// CreateChama persists a new chama.
func (s *SQLiteStore) CreateChama(ctx context.Context, chama *models.Chama) error {
	// Generate ID if not set
	if chama.ID == "" {
		chama.ID = uuid.New().String()
	}
	if chama.CreatedAt.IsZero() {
		chama.CreatedAt = today()
	}
	chama.CreatedAt = storage.Truncate(chama.CreatedAt)

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO chamas (id, name, created_at) VALUES (?, ?, ?)",
		chama.ID, chama.Name, chama.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert chama: %w", err)
	}
	return nil
}

// GetChama retrieves a chama by ID.
func (s *SQLiteStore) GetChama(ctx context.Context, chamaID string) (*models.Chama, error) {
	chama := &models.Chama{}
	var createdAt int64
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM chamas WHERE id = ?",
		chamaID,
	).Scan(&chama.ID, &chama.Name, &createdAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("chama %s: %w", chamaID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chama: %w", err)
	}
	chama.CreatedAt = fromUnix(createdAt)
	return chama, nil
}

// ListChamas retrieves all chamas in insertion order.
func (s *SQLiteStore) ListChamas(ctx context.Context) ([]*models.Chama, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, created_at FROM chamas ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to list chamas: %w", err)
	}
	defer rows.Close()

	var chamas []*models.Chama
	for rows.Next() {
		chama := &models.Chama{}
		var createdAt int64
		if err := rows.Scan(&chama.ID, &chama.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan chama: %w", err)
		}
		chama.CreatedAt = fromUnix(createdAt)
		chamas = append(chamas, chama)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate chamas: %w", err)
	}
	return chamas, nil
}

// CreateMember persists a new member.
func (s *SQLiteStore) CreateMember(ctx context.Context, member *models.Member) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	if member.JoinedAt.IsZero() {
		member.JoinedAt = today()
	}
	member.JoinedAt = storage.Truncate(member.JoinedAt)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO members (id, chama_id, name, email, joined_at, avatar_seed)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		member.ID, member.ChamaID, member.Name, member.Email, member.JoinedAt.Unix(), member.AvatarSeed,
	)
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}
	return nil
}

const memberColumns = "id, chama_id, name, email, joined_at, avatar_seed"

func scanMember(row interface{ Scan(...any) error }) (*models.Member, error) {
	member := &models.Member{}
	var joinedAt int64
	if err := row.Scan(&member.ID, &member.ChamaID, &member.Name, &member.Email, &joinedAt, &member.AvatarSeed); err != nil {
		return nil, err
	}
	member.JoinedAt = fromUnix(joinedAt)
	return member, nil
}

// GetMember retrieves a member by ID.
func (s *SQLiteStore) GetMember(ctx context.Context, memberID string) (*models.Member, error) {
	member, err := scanMember(s.db.QueryRowContext(ctx,
		"SELECT "+memberColumns+" FROM members WHERE id = ?", memberID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("member %s: %w", memberID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return member, nil
}

// ListMembers retrieves the members of a chama, or all members when chamaID is empty.
func (s *SQLiteStore) ListMembers(ctx context.Context, chamaID string) ([]*models.Member, error) {
	query := "SELECT " + memberColumns + " FROM members"
	var args []any
	if chamaID != "" {
		query += " WHERE chama_id = ?"
		args = append(args, chamaID)
	}
	query += " ORDER BY rowid"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*models.Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}
	return members, nil
}

// CreateContribution persists a new contribution.
func (s *SQLiteStore) CreateContribution(ctx context.Context, c *models.Contribution) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Date.IsZero() {
		c.Date = time.Now()
	}
	c.Date = storage.Truncate(c.Date)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contributions (id, member_id, chama_id, amount, contributed_at)
		 VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.MemberID, c.ChamaID, c.Amount, c.Date.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert contribution: %w", err)
	}
	return nil
}

// ListContributions retrieves the contributions of a chama, or all
// contributions when chamaID is empty.
func (s *SQLiteStore) ListContributions(ctx context.Context, chamaID string) ([]*models.Contribution, error) {
	query := "SELECT id, member_id, chama_id, amount, contributed_at FROM contributions"
	var args []any
	if chamaID != "" {
		query += " WHERE chama_id = ?"
		args = append(args, chamaID)
	}
	query += " ORDER BY rowid"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}
	defer rows.Close()

	var contributions []*models.Contribution
	for rows.Next() {
		c := &models.Contribution{}
		var date int64
		if err := rows.Scan(&c.ID, &c.MemberID, &c.ChamaID, &c.Amount, &date); err != nil {
			return nil, fmt.Errorf("failed to scan contribution: %w", err)
		}
		c.Date = fromUnix(date)
		contributions = append(contributions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contributions: %w", err)
	}
	return contributions, nil
}
