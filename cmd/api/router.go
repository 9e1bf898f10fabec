package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"openmusic-backend/internal/shared/middleware"
	"openmusic-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupUserRoutes(v1, c)
		setupAlbumRoutes(v1, c)
		setupSongRoutes(v1, c)
		setupPlaylistRoutes(v1, c)
	}

	return router
}

func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.POST("/users", c.UserHandler.PostUser)
	v1.GET("/users/:id", c.UserHandler.GetUserByID)
	v1.POST("/auth/login", c.UserHandler.PostLogin)
}

func setupAlbumRoutes(v1 *gin.RouterGroup, c *container.Container) {
	albums := v1.Group("/albums")
	{
		albums.POST("", c.AlbumHandler.PostAlbum)
		albums.GET("/:id", c.AlbumHandler.GetAlbumByID)
		albums.PUT("/:id", c.AlbumHandler.PutAlbumByID)
		albums.DELETE("/:id", c.AlbumHandler.DeleteAlbumByID)
		albums.PUT("/:id/cover", c.AlbumHandler.PutAlbumCover)

		// Toggling requires a caller identity; reading the count does not.
		albums.POST("/:id/likes", middleware.Auth(c.JWTManager), c.LikeHandler.PostLike)
		albums.GET("/:id/likes", c.LikeHandler.GetLikes)
	}
}

func setupSongRoutes(v1 *gin.RouterGroup, c *container.Container) {
	songs := v1.Group("/songs")
	{
		songs.POST("", c.SongHandler.PostSong)
		songs.GET("", c.SongHandler.GetSongs)
		songs.GET("/:id", c.SongHandler.GetSongByID)
		songs.PUT("/:id", c.SongHandler.PutSongByID)
		songs.DELETE("/:id", c.SongHandler.DeleteSongByID)
	}
}

func setupPlaylistRoutes(v1 *gin.RouterGroup, c *container.Container) {
	playlists := v1.Group("/playlists")
	playlists.Use(middleware.Auth(c.JWTManager))
	{
		playlists.POST("", c.PlaylistHandler.PostPlaylist)
		playlists.GET("", c.PlaylistHandler.GetPlaylists)
		playlists.DELETE("/:id", c.PlaylistHandler.DeletePlaylist)

		playlists.POST("/:id/songs", c.PlaylistHandler.PostPlaylistSong)
		playlists.GET("/:id/songs", c.PlaylistHandler.GetPlaylistSongs)
		playlists.DELETE("/:id/songs", c.PlaylistHandler.DeletePlaylistSong)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checks := gin.H{"database": "ok", "cache": "ok"}
		healthy := true

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			checks["database"] = err.Error()
			healthy = false
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			checks["cache"] = err.Error()
			healthy = false
		}

		if !healthy {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "data": checks})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{"status": "success", "data": checks})
	}
}
