package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"openmusic-backend/internal/domains/playlist/model"
	"openmusic-backend/internal/domains/playlist/service"
	"openmusic-backend/internal/shared/middleware"
	"openmusic-backend/internal/shared/response"
)

// SongVerifier is the slice of the song service the playlist endpoints
// need: existence of a song before touching memberships.
type SongVerifier interface {
	VerifySong(ctx context.Context, id string) error
}

type PlaylistHandler struct {
	playlistService service.PlaylistService
	songs           SongVerifier
}

func NewPlaylistHandler(playlistService service.PlaylistService, songs SongVerifier) *PlaylistHandler {
	return &PlaylistHandler{
		playlistService: playlistService,
		songs:           songs,
	}
}

// PostPlaylist handles POST /playlists.
func (h *PlaylistHandler) PostPlaylist(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}

	var req model.PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	playlistID, err := h.playlistService.AddPlaylist(c.Request.Context(), req.Name, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"playlistId": playlistID})
}

// GetPlaylists handles GET /playlists.
func (h *PlaylistHandler) GetPlaylists(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}

	playlists, err := h.playlistService.ListPlaylists(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"playlists": playlists})
}

// DeletePlaylist handles DELETE /playlists/:id. Ownership is decided here,
// then the unguarded delete acts.
func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	playlistID := c.Param("id")

	if err := h.playlistService.VerifyOwner(c.Request.Context(), playlistID, userID); err != nil {
		response.Error(c, err)
		return
	}
	if err := h.playlistService.DeletePlaylist(c.Request.Context(), playlistID); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessMessage(c, http.StatusOK, "playlist deleted")
}

// PostPlaylistSong handles POST /playlists/:id/songs.
func (h *PlaylistHandler) PostPlaylistSong(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	playlistID := c.Param("id")

	var req model.PlaylistSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.songs.VerifySong(c.Request.Context(), req.SongID); err != nil {
		response.Error(c, err)
		return
	}
	if err := h.playlistService.VerifyAccess(c.Request.Context(), playlistID, userID); err != nil {
		response.Error(c, err)
		return
	}

	membershipID, err := h.playlistService.AddSong(c.Request.Context(), playlistID, req.SongID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"membershipId": membershipID})
}

// GetPlaylistSongs handles GET /playlists/:id/songs.
func (h *PlaylistHandler) GetPlaylistSongs(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	playlistID := c.Param("id")

	if err := h.playlistService.VerifyAccess(c.Request.Context(), playlistID, userID); err != nil {
		response.Error(c, err)
		return
	}

	playlist, err := h.playlistService.GetWithSongs(c.Request.Context(), playlistID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"playlist": playlist})
}

// DeletePlaylistSong handles DELETE /playlists/:id/songs.
func (h *PlaylistHandler) DeletePlaylistSong(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}
	playlistID := c.Param("id")

	var req model.PlaylistSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.playlistService.VerifyAccess(c.Request.Context(), playlistID, userID); err != nil {
		response.Error(c, err)
		return
	}
	if err := h.songs.VerifySong(c.Request.Context(), req.SongID); err != nil {
		response.Error(c, err)
		return
	}
	if err := h.playlistService.RemoveSong(c.Request.Context(), playlistID, req.SongID); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessMessage(c, http.StatusOK, "song removed from playlist")
}
