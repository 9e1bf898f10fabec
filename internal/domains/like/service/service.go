package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"openmusic-backend/internal/domains/like/model"
	"openmusic-backend/internal/domains/like/repository"
	"openmusic-backend/internal/shared/utils"
	"openmusic-backend/pkg/cache"
)

const likesKeyPrefix = "likes:"

type likeService struct {
	likeRepo repository.LikeRepository
	albums   AlbumVerifier
	cache    cache.Cache
	ttl      time.Duration
}

func NewLikeService(likeRepo repository.LikeRepository, albums AlbumVerifier, c cache.Cache, ttl time.Duration) LikeService {
	return &likeService{
		likeRepo: likeRepo,
		albums:   albums,
		cache:    c,
		ttl:      ttl,
	}
}

func likesKey(albumID string) string {
	return likesKeyPrefix + albumID
}

// ToggleLike is check-then-act: the existence check and the insert/delete
// are separate statements, so two concurrent toggles for the same pair can
// both insert. The schema has no uniqueness constraint on (user, album);
// the race is accepted here and not corrected.
func (s *likeService) ToggleLike(ctx context.Context, userID, albumID string) (model.ToggleResult, error) {
	if err := s.albums.VerifyAlbum(ctx, albumID); err != nil {
		return "", err
	}

	liked, err := s.likeRepo.Exists(ctx, userID, albumID)
	if err != nil {
		return "", err
	}

	if liked {
		if err := s.likeRepo.Delete(ctx, userID, albumID); err != nil {
			return "", err
		}
		s.invalidate(ctx, albumID)
		return model.Unliked, nil
	}

	like := &model.Like{
		ID:      utils.NewID("like"),
		UserID:  userID,
		AlbumID: albumID,
	}
	if _, err := s.likeRepo.Create(ctx, like); err != nil {
		return "", err
	}
	s.invalidate(ctx, albumID)
	return model.Liked, nil
}

func (s *likeService) GetLikeCount(ctx context.Context, albumID string) (*model.LikeCount, error) {
	key := likesKey(albumID)

	cached, found, err := s.cache.Get(ctx, key)
	if err != nil {
		// A broken cache must not take reads down; fall through to the store.
		log.Warn().Err(err).Str("album_id", albumID).Msg("like count cache read failed")
	} else if found {
		count, err := strconv.Atoi(cached)
		if err != nil {
			return nil, fmt.Errorf("corrupt cached like count %q: %w", cached, err)
		}
		return &model.LikeCount{Count: count, Source: model.SourceCache}, nil
	}

	count, err := s.likeRepo.CountByAlbum(ctx, albumID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, model.ErrAlbumHasNoLikes
	}

	if err := s.cache.Set(ctx, key, strconv.Itoa(count), s.ttl); err != nil {
		log.Warn().Err(err).Str("album_id", albumID).Msg("like count cache write failed")
	}

	return &model.LikeCount{Count: count, Source: model.SourceDB}, nil
}

// invalidate drops the cached count so the next read repopulates from the
// store. Every like-set mutation pays one guaranteed cache miss for never
// serving a stale count past the current read-after-write window.
func (s *likeService) invalidate(ctx context.Context, albumID string) {
	if err := s.cache.Delete(ctx, likesKey(albumID)); err != nil {
		log.Warn().Err(err).Str("album_id", albumID).Msg("like count cache invalidation failed")
	}
}
