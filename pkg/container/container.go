package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"openmusic-backend/internal/config"
	infracache "openmusic-backend/internal/infrastructure/cache"
	"openmusic-backend/internal/infrastructure/database"
	"openmusic-backend/pkg/cache"
	"openmusic-backend/pkg/jwt"

	albumHandler "openmusic-backend/internal/domains/album/handler"
	albumRepo "openmusic-backend/internal/domains/album/repository"
	albumService "openmusic-backend/internal/domains/album/service"
	likeHandler "openmusic-backend/internal/domains/like/handler"
	likeRepo "openmusic-backend/internal/domains/like/repository"
	likeService "openmusic-backend/internal/domains/like/service"
	playlistHandler "openmusic-backend/internal/domains/playlist/handler"
	playlistRepo "openmusic-backend/internal/domains/playlist/repository"
	playlistService "openmusic-backend/internal/domains/playlist/service"
	songHandler "openmusic-backend/internal/domains/song/handler"
	songRepo "openmusic-backend/internal/domains/song/repository"
	songService "openmusic-backend/internal/domains/song/service"
	userHandler "openmusic-backend/internal/domains/user/handler"
	userRepo "openmusic-backend/internal/domains/user/repository"
	userService "openmusic-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph, built in dependency order:
// config, infrastructure, repositories, services, handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	AlbumRepo    albumRepo.AlbumRepository
	SongRepo     songRepo.SongRepository
	LikeRepo     likeRepo.LikeRepository
	PlaylistRepo playlistRepo.PlaylistRepository
	UserRepo     userRepo.UserRepository

	AlbumService    albumService.AlbumService
	SongService     songService.SongService
	LikeService     likeService.LikeService
	PlaylistService playlistService.PlaylistService
	UserService     userService.UserService

	AlbumHandler    *albumHandler.AlbumHandler
	SongHandler     *songHandler.SongHandler
	LikeHandler     *likeHandler.LikeHandler
	PlaylistHandler *playlistHandler.PlaylistHandler
	UserHandler     *userHandler.UserHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	redisCache := infracache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if err := redisCache.Connect(context.Background()); err != nil {
		// Cache failure is non-critical at startup: reads fall back to the
		// store and the service logs cache errors as warnings.
		log.Warn().Err(err).Msg("redis connection failed, continuing without warm cache")
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AlbumRepo = albumRepo.NewPostgresAlbumRepository(pool)
	c.SongRepo = songRepo.NewPostgresSongRepository(pool)
	c.LikeRepo = likeRepo.NewPostgresLikeRepository(pool)
	c.PlaylistRepo = playlistRepo.NewPostgresPlaylistRepository(pool)
	c.UserRepo = userRepo.NewPostgresUserRepository(pool)
}

func (c *Container) initServices() {
	c.AlbumService = albumService.NewAlbumService(c.AlbumRepo)
	c.SongService = songService.NewSongService(c.SongRepo)
	c.LikeService = likeService.NewLikeService(
		c.LikeRepo,
		c.AlbumService,
		c.Cache,
		c.Config.Cache.LikesTTL,
	)
	c.PlaylistService = playlistService.NewPlaylistService(c.PlaylistRepo)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
}

func (c *Container) initHandlers() {
	c.AlbumHandler = albumHandler.NewAlbumHandler(c.AlbumService)
	c.SongHandler = songHandler.NewSongHandler(c.SongService)
	c.LikeHandler = likeHandler.NewLikeHandler(c.LikeService)
	c.PlaylistHandler = playlistHandler.NewPlaylistHandler(c.PlaylistService, c.SongService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
}

// Cleanup releases infrastructure resources during graceful shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}

	if rc, ok := c.Cache.(*infracache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis client")
		}
	}
}
