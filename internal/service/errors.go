package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/chama/internal/auth"
	"github.com/mmynk/chama/internal/gamification"
	"github.com/mmynk/chama/internal/loans"
	"github.com/mmynk/chama/internal/models"
	"github.com/mmynk/chama/internal/storage"
)

// toConnectError maps domain errors to Connect codes. Errors that already
// carry a Connect code pass through.
func toConnectError(err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return err
	}
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr),
		errors.Is(err, loans.ErrInvalidAmount),
		errors.Is(err, auth.ErrWeakPassword):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, models.ErrInvalidStateTransition),
		errors.Is(err, storage.ErrStatusConflict):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, auth.ErrEmailExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, auth.ErrInvalidCredentials):
		return connect.NewError(connect.CodeUnauthenticated, err)
	case errors.Is(err, gamification.ErrInvalidOutput):
		return connect.NewError(connect.CodeUnavailable, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}
