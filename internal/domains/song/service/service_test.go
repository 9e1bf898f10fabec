package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openmusic-backend/internal/domains/song/model"
	"openmusic-backend/internal/shared/errs"
)

type fakeSongRepo struct {
	songs map[string]*model.Song
}

func newFakeSongRepo() *fakeSongRepo {
	return &fakeSongRepo{songs: make(map[string]*model.Song)}
}

func (f *fakeSongRepo) Create(_ context.Context, song *model.Song) (string, error) {
	f.songs[song.ID] = song
	return song.ID, nil
}

func (f *fakeSongRepo) GetByID(_ context.Context, id string) (*model.Song, error) {
	song, ok := f.songs[id]
	if !ok {
		return nil, model.ErrSongNotFound
	}
	return song, nil
}

func (f *fakeSongRepo) Update(_ context.Context, song *model.Song) error {
	if _, ok := f.songs[song.ID]; !ok {
		return model.ErrSongNotFound
	}
	f.songs[song.ID] = song
	return nil
}

func (f *fakeSongRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.songs[id]; !ok {
		return model.ErrSongNotFound
	}
	delete(f.songs, id)
	return nil
}

func (f *fakeSongRepo) List(_ context.Context, title, performer string) ([]model.SongSummary, error) {
	summaries := []model.SongSummary{}
	for _, song := range f.songs {
		if title != "" && !strings.Contains(strings.ToLower(song.Title), strings.ToLower(title)) {
			continue
		}
		if performer != "" && !strings.Contains(strings.ToLower(song.Performer), strings.ToLower(performer)) {
			continue
		}
		summaries = append(summaries, model.SongSummary{ID: song.ID, Title: song.Title, Performer: song.Performer})
	}
	return summaries, nil
}

func intPtr(v int) *int { return &v }

func TestAddSong_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewSongService(newFakeSongRepo())

	id, err := svc.AddSong(ctx, model.SongRequest{
		Title:     "Fix You",
		Year:      2005,
		Genre:     "Alternative",
		Performer: "Coldplay",
		Duration:  intPtr(295),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "song-"))

	song, err := svc.GetSongByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Fix You", song.Title)
	assert.Equal(t, "Coldplay", song.Performer)
	require.NotNil(t, song.Duration)
	assert.Equal(t, 295, *song.Duration)
	assert.Nil(t, song.AlbumID)
}

func TestGetSongs_Filters(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSongRepo()
	repo.songs["song-1"] = &model.Song{ID: "song-1", Title: "Fix You", Performer: "Coldplay"}
	repo.songs["song-2"] = &model.Song{ID: "song-2", Title: "Fly Me to the Moon", Performer: "Frank Sinatra"}
	svc := NewSongService(repo)

	all, err := svc.GetSongs(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byTitle, err := svc.GetSongs(ctx, "fix", "")
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, "song-1", byTitle[0].ID)

	both, err := svc.GetSongs(ctx, "f", "sinatra")
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "song-2", both[0].ID)
}

func TestEditSongByID_MissingSong(t *testing.T) {
	svc := NewSongService(newFakeSongRepo())

	err := svc.EditSongByID(context.Background(), "song-unknown", model.SongRequest{
		Title: "Yellow", Year: 2000, Genre: "Alternative", Performer: "Coldplay",
	})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDeleteSongByID(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSongRepo()
	repo.songs["song-1"] = &model.Song{ID: "song-1", Title: "Yellow", Performer: "Coldplay"}
	svc := NewSongService(repo)

	require.NoError(t, svc.DeleteSongByID(ctx, "song-1"))
	assert.ErrorIs(t, svc.DeleteSongByID(ctx, "song-1"), errs.ErrNotFound)
}

func TestVerifySong(t *testing.T) {
	repo := newFakeSongRepo()
	repo.songs["song-1"] = &model.Song{ID: "song-1", Title: "Yellow", Performer: "Coldplay"}
	svc := NewSongService(repo)
	ctx := context.Background()

	assert.NoError(t, svc.VerifySong(ctx, "song-1"))
	assert.ErrorIs(t, svc.VerifySong(ctx, "song-unknown"), errs.ErrNotFound)
}

func TestSongRequestValidation(t *testing.T) {
	valid := model.SongRequest{Title: "Yellow", Year: 2000, Genre: "Alternative", Performer: "Coldplay"}
	assert.NoError(t, valid.Validate())

	missingGenre := valid
	missingGenre.Genre = ""
	assert.Error(t, missingGenre.Validate())

	badDuration := valid
	badDuration.Duration = intPtr(-30)
	assert.Error(t, badDuration.Validate())
}
