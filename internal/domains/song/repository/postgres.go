package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"openmusic-backend/internal/domains/song/model"
	"openmusic-backend/internal/shared/utils"
)

type postgresSongRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresSongRepository(pool *pgxpool.Pool) SongRepository {
	return &postgresSongRepository{pool: pool}
}

func (r *postgresSongRepository) Create(ctx context.Context, song *model.Song) (string, error) {
	query := `
		INSERT INTO songs (id, title, year, genre, performer, duration, album_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id string
	err := r.pool.QueryRow(ctx, query,
		song.ID,
		song.Title,
		song.Year,
		song.Genre,
		song.Performer,
		song.Duration,
		song.AlbumID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", model.ErrSongNotCreated
		}
		return "", fmt.Errorf("failed to create song: %w", err)
	}

	return id, nil
}

func (r *postgresSongRepository) GetByID(ctx context.Context, id string) (*model.Song, error) {
	query := `
		SELECT id, title, year, genre, performer, duration, album_id
		FROM songs
		WHERE id = $1
	`

	song := &model.Song{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&song.ID,
		&song.Title,
		&song.Year,
		&song.Genre,
		&song.Performer,
		&song.Duration,
		&song.AlbumID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSongNotFound
		}
		return nil, fmt.Errorf("failed to get song: %w", err)
	}

	return song, nil
}

func (r *postgresSongRepository) Update(ctx context.Context, song *model.Song) error {
	query := `
		UPDATE songs
		SET title = $2, year = $3, genre = $4, performer = $5, duration = $6, album_id = $7
		WHERE id = $1
		RETURNING id
	`

	var returned string
	err := r.pool.QueryRow(ctx, query,
		song.ID,
		song.Title,
		song.Year,
		song.Genre,
		song.Performer,
		song.Duration,
		song.AlbumID,
	).Scan(&returned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrSongNotFound
		}
		return fmt.Errorf("failed to update song: %w", err)
	}

	return nil
}

func (r *postgresSongRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM songs WHERE id = $1 RETURNING id`

	var returned string
	err := r.pool.QueryRow(ctx, query, id).Scan(&returned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrSongNotFound
		}
		return fmt.Errorf("failed to delete song: %w", err)
	}

	return nil
}

func (r *postgresSongRepository) List(ctx context.Context, title, performer string) ([]model.SongSummary, error) {
	query := `SELECT id, title, performer FROM songs`

	clauses := []string{}
	args := []interface{}{}

	if title != "" {
		args = append(args, "%"+title+"%")
		clauses = append(clauses, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	if performer != "" {
		args = append(args, "%"+performer+"%")
		clauses = append(clauses, fmt.Sprintf("performer ILIKE $%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + utils.JoinWithAnd(clauses)
	}
	query += " ORDER BY title"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list songs: %w", err)
	}
	defer rows.Close()

	songs := []model.SongSummary{}
	for rows.Next() {
		var song model.SongSummary
		if err := rows.Scan(&song.ID, &song.Title, &song.Performer); err != nil {
			return nil, fmt.Errorf("failed to scan song: %w", err)
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read songs: %w", err)
	}

	return songs, nil
}
