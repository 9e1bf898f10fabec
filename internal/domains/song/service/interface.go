package service

import (
	"context"

	"openmusic-backend/internal/domains/song/model"
)

type SongService interface {
	AddSong(ctx context.Context, req model.SongRequest) (string, error)

	GetSongs(ctx context.Context, title, performer string) ([]model.SongSummary, error)

	GetSongByID(ctx context.Context, id string) (*model.Song, error)

	EditSongByID(ctx context.Context, id string, req model.SongRequest) error

	DeleteSongByID(ctx context.Context, id string) error

	// VerifySong checks existence only; playlist mutations gate on it before
	// touching membership rows.
	VerifySong(ctx context.Context, id string) error
}
