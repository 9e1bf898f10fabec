package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"openmusic-backend/internal/domains/like/model"
)

type postgresLikeRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresLikeRepository(pool *pgxpool.Pool) LikeRepository {
	return &postgresLikeRepository{pool: pool}
}

func (r *postgresLikeRepository) Create(ctx context.Context, like *model.Like) (string, error) {
	query := `
		INSERT INTO likes (id, user_id, album_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id string
	err := r.pool.QueryRow(ctx, query, like.ID, like.UserID, like.AlbumID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", model.ErrLikeNotCreated
		}
		return "", fmt.Errorf("failed to create like: %w", err)
	}

	return id, nil
}

func (r *postgresLikeRepository) Delete(ctx context.Context, userID, albumID string) error {
	query := `
		DELETE FROM likes
		WHERE user_id = $1 AND album_id = $2
		RETURNING id
	`

	var returned string
	err := r.pool.QueryRow(ctx, query, userID, albumID).Scan(&returned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrUnlikeFailed
		}
		return fmt.Errorf("failed to delete like: %w", err)
	}

	return nil
}

func (r *postgresLikeRepository) Exists(ctx context.Context, userID, albumID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM likes WHERE user_id = $1 AND album_id = $2
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID, albumID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}

	return exists, nil
}

func (r *postgresLikeRepository) CountByAlbum(ctx context.Context, albumID string) (int, error) {
	query := `SELECT COUNT(*) FROM likes WHERE album_id = $1`

	var count int
	if err := r.pool.QueryRow(ctx, query, albumID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	return count, nil
}
