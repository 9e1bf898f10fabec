package service

import (
	"context"
	"fmt"

	"openmusic-backend/internal/domains/album/model"
	"openmusic-backend/internal/domains/album/repository"
	"openmusic-backend/internal/shared/utils"
)

type albumService struct {
	albumRepo repository.AlbumRepository
}

func NewAlbumService(albumRepo repository.AlbumRepository) AlbumService {
	return &albumService{albumRepo: albumRepo}
}

func (s *albumService) AddAlbum(ctx context.Context, req model.AlbumRequest) (string, error) {
	album := &model.Album{
		ID:   utils.NewID("album"),
		Name: req.Name,
		Year: req.Year,
	}

	id, err := s.albumRepo.Create(ctx, album)
	if err != nil {
		return "", err
	}

	return id, nil
}

func (s *albumService) GetAlbumByID(ctx context.Context, id string) (*model.AlbumDetail, error) {
	album, err := s.albumRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	songs, err := s.albumRepo.ListSongs(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load album songs: %w", err)
	}

	return &model.AlbumDetail{
		ID:       album.ID,
		Name:     album.Name,
		Year:     album.Year,
		CoverURL: album.CoverURL,
		Songs:    songs,
	}, nil
}

func (s *albumService) EditAlbumByID(ctx context.Context, id string, req model.AlbumRequest) error {
	return s.albumRepo.Update(ctx, id, req.Name, req.Year)
}

func (s *albumService) DeleteAlbumByID(ctx context.Context, id string) error {
	return s.albumRepo.Delete(ctx, id)
}

func (s *albumService) UpdateCover(ctx context.Context, id, coverURL string) error {
	return s.albumRepo.UpdateCover(ctx, id, coverURL)
}

func (s *albumService) VerifyAlbum(ctx context.Context, id string) error {
	_, err := s.albumRepo.GetByID(ctx, id)
	return err
}
