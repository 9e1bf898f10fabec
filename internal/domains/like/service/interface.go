package service

import (
	"context"

	"openmusic-backend/internal/domains/like/model"
)

type LikeService interface {
	// ToggleLike likes the album for the user, or unlikes it when a like
	// already exists. Either way the cached count is invalidated.
	ToggleLike(ctx context.Context, userID, albumID string) (model.ToggleResult, error)

	// GetLikeCount answers from the cache when possible, otherwise from the
	// store, reporting which layer served it.
	GetLikeCount(ctx context.Context, albumID string) (*model.LikeCount, error)
}

// AlbumVerifier is the slice of the catalog service the like service needs:
// existence of the album, nothing more.
type AlbumVerifier interface {
	VerifyAlbum(ctx context.Context, id string) error
}
