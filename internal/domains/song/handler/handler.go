package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"openmusic-backend/internal/domains/song/model"
	"openmusic-backend/internal/domains/song/service"
	"openmusic-backend/internal/shared/response"
)

type SongHandler struct {
	songService service.SongService
}

func NewSongHandler(songService service.SongService) *SongHandler {
	return &SongHandler{songService: songService}
}

// PostSong handles POST /songs.
func (h *SongHandler) PostSong(c *gin.Context) {
	var req model.SongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	songID, err := h.songService.AddSong(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"songId": songID})
}

// GetSongs handles GET /songs?title=&performer=.
func (h *SongHandler) GetSongs(c *gin.Context) {
	songs, err := h.songService.GetSongs(
		c.Request.Context(),
		c.Query("title"),
		c.Query("performer"),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"songs": songs})
}

// GetSongByID handles GET /songs/:id.
func (h *SongHandler) GetSongByID(c *gin.Context) {
	song, err := h.songService.GetSongByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"song": song})
}

// PutSongByID handles PUT /songs/:id.
func (h *SongHandler) PutSongByID(c *gin.Context) {
	var req model.SongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.songService.EditSongByID(c.Request.Context(), c.Param("id"), req); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessMessage(c, http.StatusOK, "song updated")
}

// DeleteSongByID handles DELETE /songs/:id.
func (h *SongHandler) DeleteSongByID(c *gin.Context) {
	if err := h.songService.DeleteSongByID(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessMessage(c, http.StatusOK, "song deleted")
}
