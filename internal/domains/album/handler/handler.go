package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"openmusic-backend/internal/domains/album/model"
	"openmusic-backend/internal/domains/album/service"
	"openmusic-backend/internal/shared/response"
)

type AlbumHandler struct {
	albumService service.AlbumService
}

func NewAlbumHandler(albumService service.AlbumService) *AlbumHandler {
	return &AlbumHandler{albumService: albumService}
}

// PostAlbum handles POST /albums.
func (h *AlbumHandler) PostAlbum(c *gin.Context) {
	var req model.AlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	albumID, err := h.albumService.AddAlbum(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"albumId": albumID})
}

// GetAlbumByID handles GET /albums/:id.
func (h *AlbumHandler) GetAlbumByID(c *gin.Context) {
	album, err := h.albumService.GetAlbumByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"album": album})
}

// PutAlbumByID handles PUT /albums/:id.
func (h *AlbumHandler) PutAlbumByID(c *gin.Context) {
	var req model.AlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.albumService.EditAlbumByID(c.Request.Context(), c.Param("id"), req); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessMessage(c, http.StatusOK, "album updated")
}

// DeleteAlbumByID handles DELETE /albums/:id.
func (h *AlbumHandler) DeleteAlbumByID(c *gin.Context) {
	if err := h.albumService.DeleteAlbumByID(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessMessage(c, http.StatusOK, "album deleted")
}

// PutAlbumCover handles PUT /albums/:id/cover.
func (h *AlbumHandler) PutAlbumCover(c *gin.Context) {
	var req model.CoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.albumService.UpdateCover(c.Request.Context(), c.Param("id"), req.CoverURL); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessMessage(c, http.StatusOK, "album cover updated")
}
