package model

import (
	"fmt"

	"openmusic-backend/internal/shared/errs"
)

var (
	ErrAlbumNotFound   = fmt.Errorf("album not found: %w", errs.ErrNotFound)
	ErrAlbumNotCreated = fmt.Errorf("album was not created: %w", errs.ErrInvariantViolation)
)
