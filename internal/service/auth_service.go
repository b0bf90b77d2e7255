package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mmynk/chama/internal/auth"
	"github.com/mmynk/chama/internal/middleware"
	"github.com/mmynk/chama/internal/models"
	pb "github.com/mmynk/chama/pkg/proto"
	"github.com/mmynk/chama/pkg/proto/chamav1connect"
)

var errUserGone = errors.New("user no longer exists")

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	chamav1connect.UnimplementedAuthServiceHandler
	authenticator auth.Authenticator
	users         auth.UserStorage
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

func NewAuthService(authenticator auth.Authenticator, users auth.UserStorage, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		users:         users,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Register creates a Member account and signs the caller in. Elevated roles
// are only granted through seeding.
func (s *AuthService) Register(ctx context.Context, req *connect.Request[pb.RegisterRequest]) (*connect.Response[pb.RegisterResponse], error) {
	msg := registerInput{
		Email:       strings.TrimSpace(req.Msg.Email),
		DisplayName: strings.TrimSpace(req.Msg.DisplayName),
		Password:    req.Msg.Password,
	}
	if err := validateRequest(&msg); err != nil {
		return nil, toConnectError(err)
	}

	user, err := s.authenticator.Register(ctx, msg.Email, msg.DisplayName, msg.Password, "")
	if err != nil {
		s.logger.Warn("Registration failed", "email", msg.Email, "error", err)
		return nil, toConnectError(err)
	}
	session, err := s.issue(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User registered", "user_id", user.ID, "role", user.Role)
	return connect.NewResponse(&pb.RegisterResponse{
		User:      userToProto(user),
		Token:     session.Token,
		ExpiresAt: timestamppb.New(session.ExpiresAt),
	}), nil
}

// Login exchanges an email and password for a session token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[pb.LoginRequest]) (*connect.Response[pb.LoginResponse], error) {
	if err := validateRequest(&loginInput{Email: req.Msg.Email, Password: req.Msg.Password}); err != nil {
		return nil, toConnectError(err)
	}

	user, err := s.authenticator.Authenticate(ctx, req.Msg.Email, req.Msg.Password)
	if err != nil {
		s.logger.Warn("Login failed", "email", req.Msg.Email, "error", err)
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}
	session, err := s.issue(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User logged in", "user_id", user.ID, "role", user.Role)
	return connect.NewResponse(&pb.LoginResponse{
		User:      userToProto(user),
		Token:     session.Token,
		ExpiresAt: timestamppb.New(session.ExpiresAt),
	}), nil
}

// GetCurrentUser returns the account behind the caller's token.
func (s *AuthService) GetCurrentUser(ctx context.Context, req *connect.Request[pb.GetCurrentUserRequest]) (*connect.Response[pb.GetCurrentUserResponse], error) {
	if err := middleware.RequireUser(ctx); err != nil {
		return nil, err
	}
	userID := middleware.GetUserID(ctx)

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load user", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}
	if user == nil {
		// Token outlived the account.
		return nil, connect.NewError(connect.CodeUnauthenticated, errUserGone)
	}
	return connect.NewResponse(&pb.GetCurrentUserResponse{User: userToProto(user)}), nil
}

func (s *AuthService) issue(user *models.User) (*auth.Session, error) {
	session, err := s.jwtManager.Issue(user)
	if err != nil {
		s.logger.Error("Failed to issue token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return session, nil
}
