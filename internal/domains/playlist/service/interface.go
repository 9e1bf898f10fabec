package service

import (
	"context"

	"openmusic-backend/internal/domains/playlist/model"
)

type PlaylistService interface {
	// AddPlaylist generates an id, persists the playlist and returns the id.
	// ownerID is fixed for the playlist's lifetime.
	AddPlaylist(ctx context.Context, name, ownerID string) (string, error)

	// ListPlaylists returns the playlists owned by ownerID with the owner's
	// username joined in.
	ListPlaylists(ctx context.Context, ownerID string) ([]model.PlaylistSummary, error)

	// DeletePlaylist performs no ownership check itself; callers decide "can
	// act" via VerifyOwner before this "act" step.
	DeletePlaylist(ctx context.Context, playlistID string) error

	// VerifyOwner is the single authorization primitive: NotFound when the
	// playlist is absent, AuthorizationDenied when userID is not the stored
	// owner, nil otherwise.
	VerifyOwner(ctx context.Context, playlistID, userID string) error

	// VerifyAccess delegates to VerifyOwner. Only owners may access or
	// modify a playlist; there is no collaborator tier.
	VerifyAccess(ctx context.Context, playlistID, userID string) error

	// AddSong inserts a membership row. Callers must have confirmed the song
	// exists and called VerifyAccess first. Duplicates are not rejected.
	AddSong(ctx context.Context, playlistID, songID string) (string, error)

	// GetWithSongs returns the playlist aggregate. Callers must have called
	// VerifyAccess first.
	GetWithSongs(ctx context.Context, playlistID string) (*model.PlaylistWithSongs, error)

	// RemoveSong deletes one membership occurrence for the pair. Callers
	// must have called VerifyAccess and confirmed the song exists first.
	RemoveSong(ctx context.Context, playlistID, songID string) error
}
