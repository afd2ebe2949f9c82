package repository

import (
	"context"
	"time"

	"github.com/open-music/server/internal/domain"
)

// UserRepository 用户仓储接口
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// AuthTokenRepository 刷新令牌仓储接口
type AuthTokenRepository interface {
	Add(ctx context.Context, token string, createdAt time.Time) error
	Exists(ctx context.Context, token string) (bool, error)
	Delete(ctx context.Context, token string) (int64, error)
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// AlbumRepository 专辑仓储接口
type AlbumRepository interface {
	Create(ctx context.Context, album *domain.Album) error
	List(ctx context.Context) ([]*domain.Album, error)
	GetByID(ctx context.Context, id string) (*domain.Album, error)
	Update(ctx context.Context, album *domain.Album) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	SetCoverURL(ctx context.Context, id, url string) (int64, error)
}

// SongRepository 歌曲仓储接口
type SongRepository interface {
	Create(ctx context.Context, song *domain.Song) error
	List(ctx context.Context, title, performer string) ([]domain.SongSummary, error)
	GetByID(ctx context.Context, id string) (*domain.Song, error)
	ListByAlbum(ctx context.Context, albumID string) ([]domain.SongSummary, error)
	Update(ctx context.Context, song *domain.Song) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// PlaylistRepository 播放列表仓储接口
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *domain.Playlist) error
	GetByID(ctx context.Context, id string) (*domain.Playlist, error)
	ListByUser(ctx context.Context, userID string) ([]domain.PlaylistSummary, error)
	Delete(ctx context.Context, id string) (int64, error)
	AddSong(ctx context.Context, ps *domain.PlaylistSong) error
	RemoveSong(ctx context.Context, playlistID, songID string) (int64, error)
	SongExists(ctx context.Context, playlistID, songID string) (bool, error)
	ListSongs(ctx context.Context, playlistID string) ([]domain.SongSummary, error)
}

// CollaborationRepository 协作者仓储接口
type CollaborationRepository interface {
	Create(ctx context.Context, collab *domain.Collaboration) error
	Delete(ctx context.Context, playlistID, userID string) (int64, error)
	Exists(ctx context.Context, playlistID, userID string) (bool, error)
}

// ActivityRepository 播放列表活动仓储接口
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) error
	ListByPlaylist(ctx context.Context, playlistID string) ([]domain.ActivityEntry, error)
}

// AlbumLikeRepository 专辑点赞仓储接口
type AlbumLikeRepository interface {
	Create(ctx context.Context, like *domain.AlbumLike) error
	Delete(ctx context.Context, userID, albumID string) (int64, error)
	Exists(ctx context.Context, userID, albumID string) (bool, error)
	CountByAlbum(ctx context.Context, albumID string) (int, error)
}
