package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"openmusic-backend/internal/domains/playlist/model"
	"openmusic-backend/pkg/database"
)

type postgresPlaylistRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPlaylistRepository(pool *pgxpool.Pool) PlaylistRepository {
	return &postgresPlaylistRepository{pool: pool}
}

func (r *postgresPlaylistRepository) Create(ctx context.Context, playlist *model.Playlist) (string, error) {
	query := `
		INSERT INTO playlists (id, name, owner)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id string
	err := r.pool.QueryRow(ctx, query, playlist.ID, playlist.Name, playlist.Owner).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", model.ErrPlaylistNotCreated
		}
		return "", fmt.Errorf("failed to create playlist: %w", err)
	}

	return id, nil
}

func (r *postgresPlaylistRepository) GetOwner(ctx context.Context, id string) (string, error) {
	query := `SELECT owner FROM playlists WHERE id = $1`

	var owner string
	err := r.pool.QueryRow(ctx, query, id).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", model.ErrPlaylistNotFound
		}
		return "", fmt.Errorf("failed to get playlist owner: %w", err)
	}

	return owner, nil
}

func (r *postgresPlaylistRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.PlaylistSummary, error) {
	query := `
		SELECT playlists.id, playlists.name, users.username
		FROM playlists
		JOIN users ON playlists.owner = users.id
		WHERE playlists.owner = $1
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}
	defer rows.Close()

	playlists := []model.PlaylistSummary{}
	for rows.Next() {
		var p model.PlaylistSummary
		if err := rows.Scan(&p.ID, &p.Name, &p.Username); err != nil {
			return nil, fmt.Errorf("failed to scan playlist: %w", err)
		}
		playlists = append(playlists, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read playlists: %w", err)
	}

	return playlists, nil
}

func (r *postgresPlaylistRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM playlists WHERE id = $1 RETURNING id`

	var returned string
	err := r.pool.QueryRow(ctx, query, id).Scan(&returned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrPlaylistNotFound
		}
		return fmt.Errorf("failed to delete playlist: %w", err)
	}

	return nil
}

func (r *postgresPlaylistRepository) AddSong(ctx context.Context, membershipID, playlistID, songID string) (string, error) {
	query := `
		INSERT INTO songs_in_playlists (id, playlist_id, song_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id string
	err := r.pool.QueryRow(ctx, query, membershipID, playlistID, songID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", model.ErrSongNotAdded
		}
		return "", fmt.Errorf("failed to add song to playlist: %w", err)
	}

	return id, nil
}

// GetWithSongs runs both reads inside one transaction so a playlist deleted
// between the metadata and membership queries cannot produce a torn
// aggregate.
func (r *postgresPlaylistRepository) GetWithSongs(ctx context.Context, playlistID string) (*model.PlaylistWithSongs, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.PlaylistWithSongs, error) {
		metaQuery := `
			SELECT playlists.id, playlists.name, users.username
			FROM playlists
			JOIN users ON playlists.owner = users.id
			WHERE playlists.id = $1
		`

		playlist := &model.PlaylistWithSongs{}
		err := tx.QueryRow(ctx, metaQuery, playlistID).Scan(
			&playlist.ID,
			&playlist.Name,
			&playlist.Username,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, model.ErrPlaylistNotFound
			}
			return nil, fmt.Errorf("failed to get playlist: %w", err)
		}

		songsQuery := `
			SELECT songs.id, songs.title, songs.performer
			FROM songs
			JOIN songs_in_playlists ON songs_in_playlists.song_id = songs.id
			WHERE songs_in_playlists.playlist_id = $1
		`

		rows, err := tx.Query(ctx, songsQuery, playlistID)
		if err != nil {
			return nil, fmt.Errorf("failed to list playlist songs: %w", err)
		}
		defer rows.Close()

		playlist.Songs = []model.SongItem{}
		for rows.Next() {
			var song model.SongItem
			if err := rows.Scan(&song.ID, &song.Title, &song.Performer); err != nil {
				return nil, fmt.Errorf("failed to scan playlist song: %w", err)
			}
			playlist.Songs = append(playlist.Songs, song)
		}
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to read playlist songs: %w", err)
		}

		return playlist, nil
	})
}

func (r *postgresPlaylistRepository) RemoveSong(ctx context.Context, playlistID, songID string) error {
	// Duplicate memberships are legal, so delete one occurrence only.
	query := `
		DELETE FROM songs_in_playlists
		WHERE id = (
			SELECT id FROM songs_in_playlists
			WHERE playlist_id = $1 AND song_id = $2
			LIMIT 1
		)
		RETURNING id
	`

	var returned string
	err := r.pool.QueryRow(ctx, query, playlistID, songID).Scan(&returned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrMembershipNotFound
		}
		return fmt.Errorf("failed to remove song from playlist: %w", err)
	}

	return nil
}
