package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openmusic-backend/internal/domains/playlist/model"
	"openmusic-backend/internal/shared/errs"
)

type membership struct {
	id         string
	playlistID string
	songID     string
}

type fakePlaylistRepo struct {
	playlists   map[string]*model.Playlist
	usernames   map[string]string // ownerID -> username
	memberships []membership
	songTitles  map[string]string
}

func newFakePlaylistRepo() *fakePlaylistRepo {
	return &fakePlaylistRepo{
		playlists:  make(map[string]*model.Playlist),
		usernames:  make(map[string]string),
		songTitles: make(map[string]string),
	}
}

func (f *fakePlaylistRepo) Create(_ context.Context, playlist *model.Playlist) (string, error) {
	f.playlists[playlist.ID] = playlist
	return playlist.ID, nil
}

func (f *fakePlaylistRepo) GetOwner(_ context.Context, id string) (string, error) {
	playlist, ok := f.playlists[id]
	if !ok {
		return "", model.ErrPlaylistNotFound
	}
	return playlist.Owner, nil
}

func (f *fakePlaylistRepo) ListByOwner(_ context.Context, ownerID string) ([]model.PlaylistSummary, error) {
	summaries := []model.PlaylistSummary{}
	for _, playlist := range f.playlists {
		if playlist.Owner == ownerID {
			summaries = append(summaries, model.PlaylistSummary{
				ID:       playlist.ID,
				Name:     playlist.Name,
				Username: f.usernames[ownerID],
			})
		}
	}
	return summaries, nil
}

func (f *fakePlaylistRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.playlists[id]; !ok {
		return model.ErrPlaylistNotFound
	}
	delete(f.playlists, id)
	kept := f.memberships[:0]
	for _, m := range f.memberships {
		if m.playlistID != id {
			kept = append(kept, m)
		}
	}
	f.memberships = kept
	return nil
}

func (f *fakePlaylistRepo) AddSong(_ context.Context, membershipID, playlistID, songID string) (string, error) {
	f.memberships = append(f.memberships, membership{id: membershipID, playlistID: playlistID, songID: songID})
	return membershipID, nil
}

func (f *fakePlaylistRepo) GetWithSongs(_ context.Context, playlistID string) (*model.PlaylistWithSongs, error) {
	playlist, ok := f.playlists[playlistID]
	if !ok {
		return nil, model.ErrPlaylistNotFound
	}

	result := &model.PlaylistWithSongs{
		ID:       playlist.ID,
		Name:     playlist.Name,
		Username: f.usernames[playlist.Owner],
		Songs:    []model.SongItem{},
	}
	for _, m := range f.memberships {
		if m.playlistID == playlistID {
			result.Songs = append(result.Songs, model.SongItem{ID: m.songID, Title: f.songTitles[m.songID]})
		}
	}
	return result, nil
}

func (f *fakePlaylistRepo) RemoveSong(_ context.Context, playlistID, songID string) error {
	for i, m := range f.memberships {
		if m.playlistID == playlistID && m.songID == songID {
			f.memberships = append(f.memberships[:i], f.memberships[i+1:]...)
			return nil
		}
	}
	return model.ErrMembershipNotFound
}

func TestAddPlaylist_GeneratesPrefixedID(t *testing.T) {
	repo := newFakePlaylistRepo()
	svc := NewPlaylistService(repo)

	id, err := svc.AddPlaylist(context.Background(), "Lagu Indie Hits Indonesia", "user-1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "playlist-"))
	assert.Equal(t, "user-1", repo.playlists[id].Owner)
}

func TestVerifyOwner(t *testing.T) {
	repo := newFakePlaylistRepo()
	repo.playlists["playlist-1"] = &model.Playlist{ID: "playlist-1", Name: "Favorites", Owner: "user-1"}
	svc := NewPlaylistService(repo)
	ctx := context.Background()

	t.Run("owner passes", func(t *testing.T) {
		assert.NoError(t, svc.VerifyOwner(ctx, "playlist-1", "user-1"))
	})

	t.Run("non-owner is denied", func(t *testing.T) {
		err := svc.VerifyOwner(ctx, "playlist-1", "user-2")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAuthorizationDenied)
	})

	t.Run("missing playlist is not found, never denied", func(t *testing.T) {
		err := svc.VerifyOwner(ctx, "playlist-unknown", "user-1")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNotFound)
		assert.NotErrorIs(t, err, errs.ErrAuthorizationDenied)
	})
}

func TestVerifyAccess_DelegatesToVerifyOwner(t *testing.T) {
	repo := newFakePlaylistRepo()
	repo.playlists["playlist-1"] = &model.Playlist{ID: "playlist-1", Name: "Favorites", Owner: "user-1"}
	svc := NewPlaylistService(repo)
	ctx := context.Background()

	assert.NoError(t, svc.VerifyAccess(ctx, "playlist-1", "user-1"))
	assert.ErrorIs(t, svc.VerifyAccess(ctx, "playlist-1", "user-2"), errs.ErrAuthorizationDenied)
	assert.ErrorIs(t, svc.VerifyAccess(ctx, "playlist-unknown", "user-1"), errs.ErrNotFound)
}

// Walks the ownership lifecycle end to end: create, add a song, read the
// aggregate, have a stranger bounce off, remove the song, delete.
func TestPlaylistLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newFakePlaylistRepo()
	repo.usernames["user-1"] = "dicoding"
	repo.songTitles["song-1"] = "Kenangan Mantan"
	svc := NewPlaylistService(repo)

	playlistID, err := svc.AddPlaylist(ctx, "Lagu Indie Hits Indonesia", "user-1")
	require.NoError(t, err)

	require.NoError(t, svc.VerifyAccess(ctx, playlistID, "user-1"))
	membershipID, err := svc.AddSong(ctx, playlistID, "song-1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(membershipID, "songplaylist-"))

	aggregate, err := svc.GetWithSongs(ctx, playlistID)
	require.NoError(t, err)
	assert.Equal(t, "dicoding", aggregate.Username)
	require.Len(t, aggregate.Songs, 1)
	assert.Equal(t, "song-1", aggregate.Songs[0].ID)

	err = svc.VerifyAccess(ctx, playlistID, "user-2")
	assert.ErrorIs(t, err, errs.ErrAuthorizationDenied)

	require.NoError(t, svc.RemoveSong(ctx, playlistID, "song-1"))
	aggregate, err = svc.GetWithSongs(ctx, playlistID)
	require.NoError(t, err)
	assert.Empty(t, aggregate.Songs)

	require.NoError(t, svc.DeletePlaylist(ctx, playlistID))
	_, err = svc.GetWithSongs(ctx, playlistID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestRemoveSong_MissingMembership(t *testing.T) {
	repo := newFakePlaylistRepo()
	repo.playlists["playlist-1"] = &model.Playlist{ID: "playlist-1", Name: "Favorites", Owner: "user-1"}
	svc := NewPlaylistService(repo)

	err := svc.RemoveSong(context.Background(), "playlist-1", "song-unknown")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestRemoveSong_RemovesOneOccurrence(t *testing.T) {
	ctx := context.Background()
	repo := newFakePlaylistRepo()
	repo.playlists["playlist-1"] = &model.Playlist{ID: "playlist-1", Name: "Repeats", Owner: "user-1"}
	svc := NewPlaylistService(repo)

	_, err := svc.AddSong(ctx, "playlist-1", "song-1")
	require.NoError(t, err)
	_, err = svc.AddSong(ctx, "playlist-1", "song-1")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveSong(ctx, "playlist-1", "song-1"))

	aggregate, err := svc.GetWithSongs(ctx, "playlist-1")
	require.NoError(t, err)
	assert.Len(t, aggregate.Songs, 1, "duplicates are removed one occurrence at a time")
}
