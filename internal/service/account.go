package service

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "github.com/minegocio/pos-web/internal/errors"
	"github.com/minegocio/pos-web/internal/ports"
)

// minPasswordLength matches the backend's validator so obviously short
// passwords fail fast without a round trip.
const minPasswordLength = 8

// AccountServiceOptions groups dependencies for AccountService.
type AccountServiceOptions struct {
	API    ports.AccountAPI
	Logger *slog.Logger
}

// AccountService covers password management: a user changing their own
// password and an admin resetting someone else's.
type AccountService struct {
	api    ports.AccountAPI
	logger *slog.Logger
}

// NewAccountService constructs an AccountService.
func NewAccountService(opts AccountServiceOptions) *AccountService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountService{
		api:    opts.API,
		logger: logger,
	}
}

func checkNewPassword(next, confirm string) error {
	if len(next) < minPasswordLength {
		return apperrors.ValidationField("new_password",
			fmt.Sprintf("The new password must be at least %d characters.", minPasswordLength))
	}
	if next != confirm {
		return apperrors.ValidationField("confirm_password", "The passwords do not match.")
	}
	return nil
}

// ChangeOwnPassword changes the calling user's password. The backend verifies
// the current password.
func (s *AccountService) ChangeOwnPassword(ctx context.Context, token, current, next, confirm string) error {
	if current == "" {
		return apperrors.ValidationField("old_password", "Enter your current password.")
	}
	if err := checkNewPassword(next, confirm); err != nil {
		return err
	}

	if err := s.api.ChangeOwnPassword(ctx, token, current, next); err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	s.logger.InfoContext(ctx, "password changed")
	return nil
}

// SetUserPassword resets another user's password. Admin only; the HTTP layer
// enforces the role before this is reachable.
func (s *AccountService) SetUserPassword(ctx context.Context, token string, userID int64, next, confirm string) error {
	if err := checkNewPassword(next, confirm); err != nil {
		return err
	}

	if err := s.api.SetUserPassword(ctx, token, userID, next); err != nil {
		return fmt.Errorf("set user password: %w", err)
	}

	s.logger.InfoContext(ctx, "user password reset", "user_id", userID)
	return nil
}
