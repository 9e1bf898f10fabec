package service

import (
	"context"

	"openmusic-backend/internal/domains/song/model"
	"openmusic-backend/internal/domains/song/repository"
	"openmusic-backend/internal/shared/utils"
)

type songService struct {
	songRepo repository.SongRepository
}

func NewSongService(songRepo repository.SongRepository) SongService {
	return &songService{songRepo: songRepo}
}

func (s *songService) AddSong(ctx context.Context, req model.SongRequest) (string, error) {
	song := &model.Song{
		ID:        utils.NewID("song"),
		Title:     req.Title,
		Year:      req.Year,
		Genre:     req.Genre,
		Performer: req.Performer,
		Duration:  req.Duration,
		AlbumID:   req.AlbumID,
	}

	return s.songRepo.Create(ctx, song)
}

func (s *songService) GetSongs(ctx context.Context, title, performer string) ([]model.SongSummary, error) {
	return s.songRepo.List(ctx, title, performer)
}

func (s *songService) GetSongByID(ctx context.Context, id string) (*model.Song, error) {
	return s.songRepo.GetByID(ctx, id)
}

func (s *songService) EditSongByID(ctx context.Context, id string, req model.SongRequest) error {
	song := &model.Song{
		ID:        id,
		Title:     req.Title,
		Year:      req.Year,
		Genre:     req.Genre,
		Performer: req.Performer,
		Duration:  req.Duration,
		AlbumID:   req.AlbumID,
	}

	return s.songRepo.Update(ctx, song)
}

func (s *songService) DeleteSongByID(ctx context.Context, id string) error {
	return s.songRepo.Delete(ctx, id)
}

func (s *songService) VerifySong(ctx context.Context, id string) error {
	_, err := s.songRepo.GetByID(ctx, id)
	return err
}
