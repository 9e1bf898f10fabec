package repository

import (
	"context"

	"openmusic-backend/internal/domains/playlist/model"
)

type PlaylistRepository interface {
	// Create persists the playlist and returns the id the store yielded.
	Create(ctx context.Context, playlist *model.Playlist) (string, error)

	// GetOwner returns the stored owner of the playlist.
	GetOwner(ctx context.Context, id string) (string, error)

	// ListByOwner returns the owner's playlists joined with the owner's
	// username. No explicit ordering; treat as a set.
	ListByOwner(ctx context.Context, ownerID string) ([]model.PlaylistSummary, error)

	// Delete removes the playlist; membership rows cascade.
	Delete(ctx context.Context, id string) error

	// AddSong inserts a membership row. Duplicate (playlist, song) pairs are
	// permitted by the schema.
	AddSong(ctx context.Context, membershipID, playlistID, songID string) (string, error)

	// GetWithSongs reads playlist metadata and member songs in one snapshot.
	GetWithSongs(ctx context.Context, playlistID string) (*model.PlaylistWithSongs, error)

	// RemoveSong deletes exactly one membership occurrence for the pair;
	// which occurrence is unspecified when duplicates exist.
	RemoveSong(ctx context.Context, playlistID, songID string) error
}
