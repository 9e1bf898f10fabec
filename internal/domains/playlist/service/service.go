package service

import (
	"context"

	"openmusic-backend/internal/domains/playlist/model"
	"openmusic-backend/internal/domains/playlist/repository"
	"openmusic-backend/internal/shared/utils"
)

type playlistService struct {
	playlistRepo repository.PlaylistRepository
}

func NewPlaylistService(playlistRepo repository.PlaylistRepository) PlaylistService {
	return &playlistService{playlistRepo: playlistRepo}
}

func (s *playlistService) AddPlaylist(ctx context.Context, name, ownerID string) (string, error) {
	playlist := &model.Playlist{
		ID:    utils.NewID("playlist"),
		Name:  name,
		Owner: ownerID,
	}

	return s.playlistRepo.Create(ctx, playlist)
}

func (s *playlistService) ListPlaylists(ctx context.Context, ownerID string) ([]model.PlaylistSummary, error) {
	return s.playlistRepo.ListByOwner(ctx, ownerID)
}

func (s *playlistService) DeletePlaylist(ctx context.Context, playlistID string) error {
	return s.playlistRepo.Delete(ctx, playlistID)
}

func (s *playlistService) VerifyOwner(ctx context.Context, playlistID, userID string) error {
	owner, err := s.playlistRepo.GetOwner(ctx, playlistID)
	if err != nil {
		return err
	}
	if owner != userID {
		return model.ErrNotOwner
	}
	return nil
}

func (s *playlistService) VerifyAccess(ctx context.Context, playlistID, userID string) error {
	return s.VerifyOwner(ctx, playlistID, userID)
}

func (s *playlistService) AddSong(ctx context.Context, playlistID, songID string) (string, error) {
	return s.playlistRepo.AddSong(ctx, utils.NewID("songplaylist"), playlistID, songID)
}

func (s *playlistService) GetWithSongs(ctx context.Context, playlistID string) (*model.PlaylistWithSongs, error) {
	return s.playlistRepo.GetWithSongs(ctx, playlistID)
}

func (s *playlistService) RemoveSong(ctx context.Context, playlistID, songID string) error {
	return s.playlistRepo.RemoveSong(ctx, playlistID, songID)
}
