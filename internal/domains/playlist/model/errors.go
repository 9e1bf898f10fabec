package model

import (
	"fmt"

	"openmusic-backend/internal/shared/errs"
)

var (
	ErrPlaylistNotFound   = fmt.Errorf("playlist not found: %w", errs.ErrNotFound)
	ErrPlaylistNotCreated = fmt.Errorf("playlist was not created: %w", errs.ErrInvariantViolation)
	ErrSongNotAdded       = fmt.Errorf("song was not added to playlist: %w", errs.ErrInvariantViolation)
	ErrMembershipNotFound = fmt.Errorf("song not found in playlist: %w", errs.ErrNotFound)
	ErrNotOwner           = fmt.Errorf("you are not allowed to access this playlist: %w", errs.ErrAuthorizationDenied)
)
