package model

import (
	"errors"
	"fmt"

	"openmusic-backend/internal/shared/errs"
)

var (
	ErrUserNotFound   = fmt.Errorf("user not found: %w", errs.ErrNotFound)
	ErrUserNotCreated = fmt.Errorf("user was not created: %w", errs.ErrInvariantViolation)
	ErrUsernameTaken  = fmt.Errorf("username is already taken: %w", errs.ErrInvariantViolation)

	// ErrInvalidCredentials is an authentication failure, not one of the
	// three service error kinds; the user handler maps it to 401 itself.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
