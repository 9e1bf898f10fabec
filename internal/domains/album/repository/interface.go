package repository

import (
	"context"

	"openmusic-backend/internal/domains/album/model"
)

type AlbumRepository interface {
	// Create persists the album and returns the id the store yielded.
	Create(ctx context.Context, album *model.Album) (string, error)

	GetByID(ctx context.Context, id string) (*model.Album, error)

	// Update changes name and year only.
	Update(ctx context.Context, id, name string, year int) error

	UpdateCover(ctx context.Context, id, coverURL string) error

	// Delete removes the album; likes cascade, songs keep their rows with a
	// nulled album reference (schema policy).
	Delete(ctx context.Context, id string) error

	// ListSongs returns the songs referencing the album, ordered by title.
	// An album without songs yields an empty slice, not an error.
	ListSongs(ctx context.Context, albumID string) ([]model.SongSummary, error)
}
