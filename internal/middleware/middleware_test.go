package middleware

import (
	"context"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/chama/internal/auth"
	"github.com/mmynk/chama/internal/models"
)

func TestRequireRole(t *testing.T) {
	admin := WithClaims(context.Background(), &auth.Claims{UserID: "u-1", Email: "a@example.com", Role: models.RoleAdmin})
	member := WithClaims(context.Background(), &auth.Claims{UserID: "u-2", Email: "m@example.com", Role: models.RoleMember})

	tests := []struct {
		name    string
		ctx     context.Context
		allowed []models.Role
		code    connect.Code
		ok      bool
	}{
		{"admin allowed", admin, []models.Role{models.RoleAdmin, models.RoleTreasurer}, 0, true},
		{"member denied", member, []models.Role{models.RoleAdmin, models.RoleTreasurer}, connect.CodePermissionDenied, false},
		{"anonymous", context.Background(), []models.Role{models.RoleAdmin}, connect.CodeUnauthenticated, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireRole(tt.ctx, tt.allowed...)
			if tt.ok {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if got := connect.CodeOf(err); got != tt.code {
				t.Errorf("expected code %v, got %v", tt.code, got)
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	user := models.NewUser("t@example.com", "Tess", "", models.RoleTreasurer)
	token, err := jwtManager.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var gotUser string
	var gotRole models.Role
	next := connect.UnaryFunc(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		gotUser, gotRole = GetUserID(ctx), GetRole(ctx)
		return nil, nil
	})
	handler := OptionalAuth(jwtManager)(next)

	tests := []struct {
		name     string
		header   string
		wantUser string
		wantRole models.Role
	}{
		{"valid token", "Bearer " + token, user.ID, models.RoleTreasurer},
		{"no header", "", "", ""},
		{"garbage token", "Bearer nope", "", ""},
		{"wrong scheme", "Basic " + token, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := connect.NewRequest(&struct{}{})
			if tt.header != "" {
				req.Header().Set("Authorization", tt.header)
			}
			if _, err := handler(context.Background(), req); err != nil {
				t.Fatalf("handler failed: %v", err)
			}
			if gotUser != tt.wantUser || gotRole != tt.wantRole {
				t.Errorf("got user %q role %q, want %q %q", gotUser, gotRole, tt.wantUser, tt.wantRole)
			}
		})
	}
}
