package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"openmusic-backend/internal/domains/like/model"
	"openmusic-backend/internal/domains/like/service"
	"openmusic-backend/internal/shared/middleware"
	"openmusic-backend/internal/shared/response"
)

// DataSourceHeader reports whether a like count came from the cache or the
// database.
const DataSourceHeader = "X-Data-Source"

type LikeHandler struct {
	likeService service.LikeService
}

func NewLikeHandler(likeService service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// PostLike handles POST /albums/:id/likes (authenticated toggle).
func (h *LikeHandler) PostLike(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}

	result, err := h.likeService.ToggleLike(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	message := "album liked"
	if result == model.Unliked {
		message = "album unliked"
	}
	response.SuccessMessage(c, http.StatusCreated, message)
}

// GetLikes handles GET /albums/:id/likes.
func (h *LikeHandler) GetLikes(c *gin.Context) {
	likes, err := h.likeService.GetLikeCount(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header(DataSourceHeader, likes.Source)
	response.Success(c, http.StatusOK, gin.H{"likes": likes.Count})
}
