package model

import (
	"fmt"

	"openmusic-backend/internal/shared/errs"
)

var (
	ErrSongNotFound   = fmt.Errorf("song not found: %w", errs.ErrNotFound)
	ErrSongNotCreated = fmt.Errorf("song was not created: %w", errs.ErrInvariantViolation)
)
