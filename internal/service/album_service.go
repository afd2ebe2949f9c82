package service

import (
	"context"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/open-music/server/internal/domain"
	"github.com/open-music/server/internal/repository"
	"github.com/open-music/server/pkg/errors"
	"github.com/open-music/server/pkg/logger"
	"github.com/open-music/server/pkg/redis"
)

// likeCountKey 专辑点赞数的缓存键
func likeCountKey(albumID string) string {
	return "album-likes:" + albumID
}

// Cache 点赞数缓存接口，由pkg/redis的客户端实现
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// AlbumDetail 专辑详情，附带所属歌曲
type AlbumDetail struct {
	domain.Album
	Songs []domain.SongSummary `json:"songs"`
}

// AlbumService 专辑服务
type AlbumService struct {
	albumRepo repository.AlbumRepository
	songRepo  repository.SongRepository
	likeRepo  repository.AlbumLikeRepository
	cache     Cache
	likeTTL   time.Duration
	log       logger.Logger

	// 并发点赞数查询合并为一次数据库访问
	likeGroup singleflight.Group
}

// NewAlbumService 创建专辑服务
func NewAlbumService(
	albumRepo repository.AlbumRepository,
	songRepo repository.SongRepository,
	likeRepo repository.AlbumLikeRepository,
	cache Cache,
	likeTTL time.Duration,
	log logger.Logger,
) *AlbumService {
	return &AlbumService{
		albumRepo: albumRepo,
		songRepo:  songRepo,
		likeRepo:  likeRepo,
		cache:     cache,
		likeTTL:   likeTTL,
		log:       log,
	}
}

// Create 创建专辑，返回新专辑ID
func (s *AlbumService) Create(ctx context.Context, name string, year int) (string, error) {
	now := time.Now()
	album := &domain.Album{
		ID:        domain.NewID(domain.AlbumIDPrefix),
		Name:      name,
		Year:      year,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := album.Validate(); err != nil {
		return "", err
	}
	if err := s.albumRepo.Create(ctx, album); err != nil {
		return "", errors.Wrap(err, errors.KindInternal, "failed to create album")
	}
	return album.ID, nil
}

// List 获取全部专辑
func (s *AlbumService) List(ctx context.Context) ([]*domain.Album, error) {
	albums, err := s.albumRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "failed to list albums")
	}
	if albums == nil {
		albums = []*domain.Album{}
	}
	return albums, nil
}

// GetByID 获取专辑详情及其歌曲
func (s *AlbumService) GetByID(ctx context.Context, id string) (*AlbumDetail, error) {
	album, err := s.albumRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "failed to get album")
	}
	if album == nil {
		return nil, errors.NotFound("album not found")
	}

	songs, err := s.songRepo.ListByAlbum(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "failed to list album songs")
	}
	if songs == nil {
		songs = []domain.SongSummary{}
	}

	return &AlbumDetail{Album: *album, Songs: songs}, nil
}

// Update 更新专辑
func (s *AlbumService) Update(ctx context.Context, id, name string, year int) error {
	album := &domain.Album{ID: id, Name: name, Year: year, UpdatedAt: time.Now()}
	if err := album.Validate(); err != nil {
		return err
	}
	affected, err := s.albumRepo.Update(ctx, album)
	if err != nil {
		return errors.Wrap(err, errors.KindInternal, "failed to update album")
	}
	if affected == 0 {
		return errors.NotFound("album not found")
	}
	return nil
}

// Delete 删除专辑
func (s *AlbumService) Delete(ctx context.Context, id string) error {
	affected, err := s.albumRepo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, errors.KindInternal, "failed to delete album")
	}
	if affected == 0 {
		return errors.NotFound("album not found")
	}
	s.invalidateLikeCount(ctx, id)
	return nil
}

// SetCover 设置专辑封面URL
func (s *AlbumService) SetCover(ctx context.Context, id, url string) error {
	affected, err := s.albumRepo.SetCoverURL(ctx, id, url)
	if err != nil {
		return errors.Wrap(err, errors.KindInternal, "failed to set album cover")
	}
	if affected == 0 {
		return errors.NotFound("album not found")
	}
	return nil
}

// AddLike 给专辑点赞，同一用户只能点赞一次
func (s *AlbumService) AddLike(ctx context.Context, userID, albumID string) error {
	album, err := s.albumRepo.GetByID(ctx, albumID)
	if err != nil {
		return errors.Wrap(err, errors.KindInternal, "failed to get album")
	}
	if album == nil {
		return errors.NotFound("album not found")
	}

	liked, err := s.likeRepo.Exists(ctx, userID, albumID)
	if err != nil {
		return errors.Wrap(err, errors.KindInternal, "failed to check album like")
	}
	if liked {
		return errors.Invariant("album already liked")
	}

	like := &domain.AlbumLike{
		ID:        domain.NewID(domain.AlbumLikeIDPrefix),
		UserID:    userID,
		AlbumID:   albumID,
		CreatedAt: time.Now(),
	}
	if err := s.likeRepo.Create(ctx, like); err != nil {
		return errors.Wrap(err, errors.KindInternal, "failed to like album")
	}

	s.invalidateLikeCount(ctx, albumID)
	return nil
}

// RemoveLike 取消专辑点赞
func (s *AlbumService) RemoveLike(ctx context.Context, userID, albumID string) error {
	affected, err := s.likeRepo.Delete(ctx, userID, albumID)
	if err != nil {
		return errors.Wrap(err, errors.KindInternal, "failed to unlike album")
	}
	if affected == 0 {
		return errors.NotFound("album is not liked")
	}
	s.invalidateLikeCount(ctx, albumID)
	return nil
}

// LikeCount 获取专辑点赞数，优先读取缓存，缓存不可用时降级到数据库
func (s *AlbumService) LikeCount(ctx context.Context, albumID string) (*domain.LikeCount, error) {
	album, err := s.albumRepo.GetByID(ctx, albumID)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "failed to get album")
	}
	if album == nil {
		return nil, errors.NotFound("album not found")
	}

	key := likeCountKey(albumID)
	if cached, err := s.cache.Get(ctx, key); err == nil {
		if count, convErr := strconv.Atoi(cached); convErr == nil {
			return &domain.LikeCount{AlbumID: albumID, Count: count, Cached: true}, nil
		}
	} else if err != redis.ErrKeyNotFound {
		s.log.WithFields(
			logger.String("album_id", albumID),
			logger.Error(err),
		).Warn("Like count cache read failed, falling back to database")
	}

	v, err, _ := s.likeGroup.Do(albumID, func() (interface{}, error) {
		count, err := s.likeRepo.CountByAlbum(ctx, albumID)
		if err != nil {
			return nil, errors.Wrap(err, errors.KindInternal, "failed to count album likes")
		}

		// 回填缓存失败不影响响应
		if err := s.cache.Set(ctx, key, strconv.Itoa(count), s.likeTTL); err != nil {
			s.log.WithFields(
				logger.String("album_id", albumID),
				logger.Error(err),
			).Warn("Failed to cache like count")
		}
		return count, nil
	})
	if err != nil {
		return nil, err
	}

	return &domain.LikeCount{AlbumID: albumID, Count: v.(int), Cached: false}, nil
}

// invalidateLikeCount 点赞数变更后使缓存失效，失败只记录日志
func (s *AlbumService) invalidateLikeCount(ctx context.Context, albumID string) {
	if err := s.cache.Delete(ctx, likeCountKey(albumID)); err != nil {
		s.log.WithFields(
			logger.String("album_id", albumID),
			logger.Error(err),
		).Warn("Failed to invalidate like count cache")
	}
}
