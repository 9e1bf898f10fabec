package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"openmusic-backend/internal/domains/album/model"
)

type postgresAlbumRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresAlbumRepository(pool *pgxpool.Pool) AlbumRepository {
	return &postgresAlbumRepository{pool: pool}
}

func (r *postgresAlbumRepository) Create(ctx context.Context, album *model.Album) (string, error) {
	query := `
		INSERT INTO albums (id, name, year, cover_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id string
	err := r.pool.QueryRow(ctx, query, album.ID, album.Name, album.Year, album.CoverURL).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", model.ErrAlbumNotCreated
		}
		return "", fmt.Errorf("failed to create album: %w", err)
	}

	return id, nil
}

func (r *postgresAlbumRepository) GetByID(ctx context.Context, id string) (*model.Album, error) {
	query := `
		SELECT id, name, year, cover_url
		FROM albums
		WHERE id = $1
	`

	album := &model.Album{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&album.ID,
		&album.Name,
		&album.Year,
		&album.CoverURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAlbumNotFound
		}
		return nil, fmt.Errorf("failed to get album: %w", err)
	}

	return album, nil
}

func (r *postgresAlbumRepository) Update(ctx context.Context, id, name string, year int) error {
	query := `
		UPDATE albums
		SET name = $2, year = $3
		WHERE id = $1
		RETURNING id
	`

	var returned string
	err := r.pool.QueryRow(ctx, query, id, name, year).Scan(&returned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrAlbumNotFound
		}
		return fmt.Errorf("failed to update album: %w", err)
	}

	return nil
}

func (r *postgresAlbumRepository) UpdateCover(ctx context.Context, id, coverURL string) error {
	query := `
		UPDATE albums
		SET cover_url = $2
		WHERE id = $1
		RETURNING id
	`

	var returned string
	err := r.pool.QueryRow(ctx, query, id, coverURL).Scan(&returned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrAlbumNotFound
		}
		return fmt.Errorf("failed to update album cover: %w", err)
	}

	return nil
}

func (r *postgresAlbumRepository) ListSongs(ctx context.Context, albumID string) ([]model.SongSummary, error) {
	query := `
		SELECT id, title, performer
		FROM songs
		WHERE album_id = $1
		ORDER BY title
	`

	rows, err := r.pool.Query(ctx, query, albumID)
	if err != nil {
		return nil, fmt.Errorf("failed to list album songs: %w", err)
	}
	defer rows.Close()

	songs := []model.SongSummary{}
	for rows.Next() {
		var song model.SongSummary
		if err := rows.Scan(&song.ID, &song.Title, &song.Performer); err != nil {
			return nil, fmt.Errorf("failed to scan album song: %w", err)
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read album songs: %w", err)
	}

	return songs, nil
}

func (r *postgresAlbumRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM albums WHERE id = $1 RETURNING id`

	var returned string
	err := r.pool.QueryRow(ctx, query, id).Scan(&returned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrAlbumNotFound
		}
		return fmt.Errorf("failed to delete album: %w", err)
	}

	return nil
}
