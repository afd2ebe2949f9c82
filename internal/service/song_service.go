package service

import (
	"context"
	"time"

	"github.com/open-music/server/internal/domain"
	"github.com/open-music/server/internal/repository"
	"github.com/open-music/server/pkg/errors"
)

// SongService 歌曲服务
type SongService struct {
	songRepo  repository.SongRepository
	albumRepo repository.AlbumRepository
}

// NewSongService 创建歌曲服务
func NewSongService(songRepo repository.SongRepository, albumRepo repository.AlbumRepository) *SongService {
	return &SongService{
		songRepo:  songRepo,
		albumRepo: albumRepo,
	}
}

// Create 创建歌曲，返回新歌曲ID
func (s *SongService) Create(ctx context.Context, song *domain.Song) (string, error) {
	if err := song.Validate(); err != nil {
		return "", err
	}

	if song.AlbumID != nil {
		album, err := s.albumRepo.GetByID(ctx, *song.AlbumID)
		if err != nil {
			return "", errors.Wrap(err, errors.KindInternal, "failed to get album")
		}
		if album == nil {
			return "", errors.NotFound("album not found")
		}
	}

	now := time.Now()
	song.ID = domain.NewID(domain.SongIDPrefix)
	song.CreatedAt = now
	song.UpdatedAt = now

	if err := s.songRepo.Create(ctx, song); err != nil {
		return "", errors.Wrap(err, errors.KindInternal, "failed to create song")
	}
	return song.ID, nil
}

// List 按标题和演唱者模糊筛选歌曲
func (s *SongService) List(ctx context.Context, title, performer string) ([]domain.SongSummary, error) {
	songs, err := s.songRepo.List(ctx, title, performer)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "failed to list songs")
	}
	if songs == nil {
		songs = []domain.SongSummary{}
	}
	return songs, nil
}

// GetByID 获取歌曲详情
func (s *SongService) GetByID(ctx context.Context, id string) (*domain.Song, error) {
	song, err := s.songRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "failed to get song")
	}
	if song == nil {
		return nil, errors.NotFound("song not found")
	}
	return song, nil
}

// Update 更新歌曲
func (s *SongService) Update(ctx context.Context, song *domain.Song) error {
	if err := song.Validate(); err != nil {
		return err
	}

	if song.AlbumID != nil {
		album, err := s.albumRepo.GetByID(ctx, *song.AlbumID)
		if err != nil {
			return errors.Wrap(err, errors.KindInternal, "failed to get album")
		}
		if album == nil {
			return errors.NotFound("album not found")
		}
	}

	song.UpdatedAt = time.Now()
	affected, err := s.songRepo.Update(ctx, song)
	if err != nil {
		return errors.Wrap(err, errors.KindInternal, "failed to update song")
	}
	if affected == 0 {
		return errors.NotFound("song not found")
	}
	return nil
}

// Delete 删除歌曲
func (s *SongService) Delete(ctx context.Context, id string) error {
	affected, err := s.songRepo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, errors.KindInternal, "failed to delete song")
	}
	if affected == 0 {
		return errors.NotFound("song not found")
	}
	return nil
}
