package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	albummodel "openmusic-backend/internal/domains/album/model"
	"openmusic-backend/internal/domains/like/model"
	"openmusic-backend/internal/shared/errs"
	"openmusic-backend/internal/shared/utils"
	"openmusic-backend/pkg/cache"
)

type fakeAlbumVerifier struct {
	albums map[string]bool
}

func (f *fakeAlbumVerifier) VerifyAlbum(_ context.Context, id string) error {
	if !f.albums[id] {
		return albummodel.ErrAlbumNotFound
	}
	return nil
}

type fakeLikeRepo struct {
	likes map[string]*model.Like // keyed by like id
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: make(map[string]*model.Like)}
}

func (f *fakeLikeRepo) Create(_ context.Context, like *model.Like) (string, error) {
	f.likes[like.ID] = like
	return like.ID, nil
}

func (f *fakeLikeRepo) Delete(_ context.Context, userID, albumID string) error {
	for id, like := range f.likes {
		if like.UserID == userID && like.AlbumID == albumID {
			delete(f.likes, id)
			return nil
		}
	}
	return model.ErrUnlikeFailed
}

func (f *fakeLikeRepo) Exists(_ context.Context, userID, albumID string) (bool, error) {
	for _, like := range f.likes {
		if like.UserID == userID && like.AlbumID == albumID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLikeRepo) CountByAlbum(_ context.Context, albumID string) (int, error) {
	count := 0
	for _, like := range f.likes {
		if like.AlbumID == albumID {
			count++
		}
	}
	return count, nil
}

func (f *fakeLikeRepo) seed(userID, albumID string) {
	like := &model.Like{ID: utils.NewID("like"), UserID: userID, AlbumID: albumID}
	f.likes[like.ID] = like
}

func newTestService(albums ...string) (LikeService, *fakeLikeRepo, *cache.MemoryCache) {
	known := map[string]bool{}
	for _, id := range albums {
		known[id] = true
	}
	repo := newFakeLikeRepo()
	mem := cache.NewMemoryCache()
	svc := NewLikeService(repo, &fakeAlbumVerifier{albums: known}, mem, 30*time.Minute)
	return svc, repo, mem
}

func TestToggleLike_MissingAlbum(t *testing.T) {
	svc, _, _ := newTestService("album-1")

	_, err := svc.ToggleLike(context.Background(), "user-1", "album-unknown")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestToggleLike_IsItsOwnInverse(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService("album-1")

	result, err := svc.ToggleLike(ctx, "user-1", "album-1")
	require.NoError(t, err)
	assert.Equal(t, model.Liked, result)

	exists, err := repo.Exists(ctx, "user-1", "album-1")
	require.NoError(t, err)
	assert.True(t, exists)

	result, err = svc.ToggleLike(ctx, "user-1", "album-1")
	require.NoError(t, err)
	assert.Equal(t, model.Unliked, result)

	exists, err = repo.Exists(ctx, "user-1", "album-1")
	require.NoError(t, err)
	assert.False(t, exists, "two toggles must restore the original state")
}

func TestToggleLike_InvalidatesCacheOnBothDirections(t *testing.T) {
	ctx := context.Background()
	svc, _, mem := newTestService("album-1")

	require.NoError(t, mem.Set(ctx, "likes:album-1", "99", time.Minute))
	_, err := svc.ToggleLike(ctx, "user-1", "album-1")
	require.NoError(t, err)

	_, found, err := mem.Get(ctx, "likes:album-1")
	require.NoError(t, err)
	assert.False(t, found, "like must drop the cached count")

	require.NoError(t, mem.Set(ctx, "likes:album-1", "99", time.Minute))
	_, err = svc.ToggleLike(ctx, "user-1", "album-1")
	require.NoError(t, err)

	_, found, err = mem.Get(ctx, "likes:album-1")
	require.NoError(t, err)
	assert.False(t, found, "unlike must drop the cached count")
}

func TestGetLikeCount_DBThenCacheSourceSequencing(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService("album-1")

	_, err := svc.ToggleLike(ctx, "user-1", "album-1")
	require.NoError(t, err)

	first, err := svc.GetLikeCount(ctx, "album-1")
	require.NoError(t, err)
	assert.Equal(t, 1, first.Count)
	assert.Equal(t, model.SourceDB, first.Source, "read after a write must come from the store")

	second, err := svc.GetLikeCount(ctx, "album-1")
	require.NoError(t, err)
	assert.Equal(t, 1, second.Count)
	assert.Equal(t, model.SourceCache, second.Source, "immediate second read must be served by the cache")
}

func TestGetLikeCount_CorrectCountWithMultipleUsers(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService("album-1")

	repo.seed("user-1", "album-1")
	repo.seed("user-2", "album-1")
	repo.seed("user-3", "album-2")

	likes, err := svc.GetLikeCount(ctx, "album-1")
	require.NoError(t, err)
	assert.Equal(t, 2, likes.Count)
}

// Zero like rows are reported as an InvariantViolation rather than a valid
// zero. This mirrors the behavior of the service being replaced; the defect
// is documented in DESIGN.md.
func TestGetLikeCount_ZeroLikesIsInvariantViolation(t *testing.T) {
	svc, _, _ := newTestService("album-1")

	_, err := svc.GetLikeCount(context.Background(), "album-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrAlbumHasNoLikes)
	assert.ErrorIs(t, err, errs.ErrInvariantViolation)
}

func TestGetLikeCount_CorruptCacheEntryFails(t *testing.T) {
	ctx := context.Background()
	svc, repo, mem := newTestService("album-1")

	repo.seed("user-1", "album-1")
	require.NoError(t, mem.Set(ctx, "likes:album-1", "not-a-number", time.Minute))

	_, err := svc.GetLikeCount(ctx, "album-1")
	assert.Error(t, err)
}
