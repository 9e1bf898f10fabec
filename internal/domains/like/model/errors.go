package model

import (
	"fmt"

	"openmusic-backend/internal/shared/errs"
)

var (
	ErrLikeNotCreated = fmt.Errorf("like was not created: %w", errs.ErrInvariantViolation)
	ErrUnlikeFailed   = fmt.Errorf("unlike removed no row: %w", errs.ErrInvariantViolation)

	// ErrAlbumHasNoLikes is returned for a zero-row count. Reporting zero as
	// a failure rather than a valid count matches the upstream behavior this
	// service replaces; see DESIGN.md before changing it.
	ErrAlbumHasNoLikes = fmt.Errorf("album has no likes: %w", errs.ErrInvariantViolation)
)
