package repository

import (
	"context"

	"openmusic-backend/internal/domains/like/model"
)

type LikeRepository interface {
	// Create inserts the like and returns the id the store yielded.
	Create(ctx context.Context, like *model.Like) (string, error)

	// Delete removes the like for (userID, albumID).
	Delete(ctx context.Context, userID, albumID string) error

	// Exists reports whether a like for (userID, albumID) is present.
	Exists(ctx context.Context, userID, albumID string) (bool, error)

	// CountByAlbum returns the number of like rows for the album.
	CountByAlbum(ctx context.Context, albumID string) (int, error)
}
