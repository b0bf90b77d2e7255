package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mmynk/chama/internal/models"
	"github.com/mmynk/chama/internal/storage/memory"
)

func TestPasswordAuthenticator(t *testing.T) {
	store := memory.New()
	a := NewPasswordAuthenticator(store)
	ctx := context.Background()

	user, err := a.Register(ctx, "alex.doe@example.com", "Alex Doe", "correct-horse", "")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Role != models.RoleMember {
		t.Errorf("Expected default role Member, got %s", user.Role)
	}
	if user.PasswordHash == "correct-horse" {
		t.Error("Password stored in plain text")
	}

	if _, err := a.Register(ctx, "ALEX.DOE@example.com", "Alex Again", "correct-horse", ""); !errors.Is(err, ErrEmailExists) {
		t.Errorf("Expected ErrEmailExists, got %v", err)
	}
	if _, err := a.Register(ctx, "short@example.com", "Short", "1234567", ""); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("Expected ErrWeakPassword, got %v", err)
	}

	got, err := a.Authenticate(ctx, "alex.doe@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("Expected user %s, got %s", user.ID, got.ID)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "alex.doe@example.com", "wrong-password"},
		{"unknown email", "nobody@example.com", "correct-horse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := a.Authenticate(ctx, tt.email, tt.password); !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("Expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	user := models.NewUser("treasurer@example.com", "Tess", "", models.RoleTreasurer)

	session, err := m.Issue(user)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	token := session.Token
	if d := time.Until(session.ExpiresAt); d < 59*time.Minute || d > time.Hour {
		t.Errorf("Expected expiry about an hour out, got %v", d)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email {
		t.Errorf("Claims mismatch: %+v", claims)
	}
	if claims.Role != models.RoleTreasurer {
		t.Errorf("Expected role Treasurer, got %s", claims.Role)
	}

	other := NewJWTManager("other-secret", time.Hour)
	if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken for foreign signature, got %v", err)
	}

	expired := NewJWTManager("test-secret", -time.Minute)
	old, err := expired.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, err := m.Validate(old); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken for expired token, got %v", err)
	}

	if _, err := m.Validate(token + "x"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestJWTManager_Clock(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	issued := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issued }

	token, err := m.Generate(models.NewUser("a@example.com", "A", "", models.RoleAdmin))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	m.now = func() time.Time { return issued.Add(59 * time.Minute) }
	if _, err := m.Validate(token); err != nil {
		t.Errorf("Expected token valid before expiry, got %v", err)
	}
	m.now = func() time.Time { return issued.Add(61 * time.Minute) }
	if _, err := m.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken after expiry, got %v", err)
	}
}
