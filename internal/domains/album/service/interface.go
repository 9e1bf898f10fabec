package service

import (
	"context"

	"openmusic-backend/internal/domains/album/model"
)

type AlbumService interface {
	// AddAlbum generates an id, persists the album and returns the id.
	AddAlbum(ctx context.Context, req model.AlbumRequest) (string, error)

	// GetAlbumByID returns the album together with its songs.
	GetAlbumByID(ctx context.Context, id string) (*model.AlbumDetail, error)

	// EditAlbumByID updates name and year.
	EditAlbumByID(ctx context.Context, id string, req model.AlbumRequest) error

	DeleteAlbumByID(ctx context.Context, id string) error

	UpdateCover(ctx context.Context, id, coverURL string) error

	// VerifyAlbum checks existence only; used by collaborators that gate on
	// the album before touching dependent rows.
	VerifyAlbum(ctx context.Context, id string) error
}
