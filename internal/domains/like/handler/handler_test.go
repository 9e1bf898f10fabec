package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	albummodel "openmusic-backend/internal/domains/album/model"
	"openmusic-backend/internal/domains/like/model"
	"openmusic-backend/internal/shared/middleware"
)

type stubLikeService struct {
	toggleResult model.ToggleResult
	toggleErr    error
	count        *model.LikeCount
	countErr     error

	gotUserID  string
	gotAlbumID string
}

func (s *stubLikeService) ToggleLike(_ context.Context, userID, albumID string) (model.ToggleResult, error) {
	s.gotUserID = userID
	s.gotAlbumID = albumID
	return s.toggleResult, s.toggleErr
}

func (s *stubLikeService) GetLikeCount(_ context.Context, albumID string) (*model.LikeCount, error) {
	s.gotAlbumID = albumID
	return s.count, s.countErr
}

func newLikeRouter(svc *stubLikeService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewLikeHandler(svc)

	router.POST("/albums/:id/likes", func(c *gin.Context) {
		if userID != "" {
			c.Set(middleware.ContextUserID, userID)
		}
		h.PostLike(c)
	})
	router.GET("/albums/:id/likes", h.GetLikes)
	return router
}

func TestPostLike(t *testing.T) {
	svc := &stubLikeService{toggleResult: model.Liked}
	router := newLikeRouter(svc, "user-1")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/albums/album-1/likes", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "user-1", svc.gotUserID)
	assert.Equal(t, "album-1", svc.gotAlbumID)
	assert.Contains(t, rec.Body.String(), "album liked")
}

func TestPostLike_Unauthenticated(t *testing.T) {
	svc := &stubLikeService{toggleResult: model.Liked}
	router := newLikeRouter(svc, "")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/albums/album-1/likes", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, svc.gotAlbumID, "service must not be reached without an identity")
}

func TestPostLike_MissingAlbum(t *testing.T) {
	svc := &stubLikeService{toggleErr: albummodel.ErrAlbumNotFound}
	router := newLikeRouter(svc, "user-1")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/albums/album-unknown/likes", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetLikes_SetsDataSourceHeader(t *testing.T) {
	for _, source := range []string{model.SourceDB, model.SourceCache} {
		svc := &stubLikeService{count: &model.LikeCount{Count: 7, Source: source}}
		router := newLikeRouter(svc, "")

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/albums/album-1/likes", nil)
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, source, rec.Header().Get(DataSourceHeader))
		assert.Contains(t, rec.Body.String(), `"likes":7`)
	}
}

func TestGetLikes_NoLikesIsBadRequest(t *testing.T) {
	svc := &stubLikeService{countErr: model.ErrAlbumHasNoLikes}
	router := newLikeRouter(svc, "")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/albums/album-1/likes", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, rec.Header().Get(DataSourceHeader))
}
