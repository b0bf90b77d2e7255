package middleware

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/chama/internal/auth"
	"github.com/mmynk/chama/internal/models"
)

// ErrForbidden is returned when the caller's role does not allow an action.
var ErrForbidden = errors.New("insufficient role")

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// UserIDKey is the context key for storing the authenticated user ID.
	UserIDKey contextKey = "user_id"
	// EmailKey is the context key for storing the authenticated user's email.
	EmailKey contextKey = "email"
	// RoleKey is the context key for storing the authenticated user's role.
	RoleKey contextKey = "role"
)

// GetUserID extracts the user ID from the context.
// Returns empty string if not found.
func GetUserID(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

// GetRole extracts the user role from the context.
// Returns empty string if not found.
func GetRole(ctx context.Context) models.Role {
	role, _ := ctx.Value(RoleKey).(models.Role)
	return role
}

// WithClaims returns a context carrying the identity in claims.
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, EmailKey, claims.Email)
	ctx = context.WithValue(ctx, RoleKey, claims.Role)
	return ctx
}

// RequireUser checks that the caller is authenticated.
// The returned error is a *connect.Error.
func RequireUser(ctx context.Context) error {
	if GetUserID(ctx) == "" {
		return connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return nil
}

// RequireRole checks that the caller is authenticated and holds one of the
// allowed roles. The returned error is a *connect.Error.
func RequireRole(ctx context.Context, allowed ...models.Role) error {
	if err := RequireUser(ctx); err != nil {
		return err
	}
	role := GetRole(ctx)
	if !slices.Contains(allowed, role) {
		return connect.NewError(connect.CodePermissionDenied, fmt.Errorf("%w: role %q", ErrForbidden, role))
	}
	return nil
}

// bearerClaims validates the token in an Authorization header value.
func bearerClaims(jwtManager *auth.JWTManager, header string) (*auth.Claims, error) {
	if header == "" {
		return nil, auth.ErrMissingToken
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || scheme != "Bearer" {
		return nil, auth.ErrInvalidToken
	}
	return jwtManager.Validate(token)
}

// OptionalAuth returns a middleware that validates JWT tokens if present, but
// allows requests without authentication. Reads are public; mutations check
// the identity it leaves on the context with RequireUser or RequireRole.
func OptionalAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			// Invalid tokens are treated as anonymous.
			if claims, err := bearerClaims(jwtManager, req.Header().Get("Authorization")); err == nil {
				ctx = WithClaims(ctx, claims)
			}
			return next(ctx, req)
		}
	}
}
