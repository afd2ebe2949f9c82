package domain

import (
	"time"

	"github.com/open-music/server/pkg/errors"
)

// Album 专辑实体
type Album struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Year      int       `json:"year"`
	CoverURL  *string   `json:"coverUrl"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Validate 验证专辑数据
func (a *Album) Validate() error {
	if a.Name == "" {
		return errors.Validation("album name is required")
	}
	if a.Year <= 0 {
		return errors.Validation("album year must be a positive number")
	}
	return nil
}

// AlbumLike 用户-专辑点赞关联实体
type AlbumLike struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	AlbumID   string    `json:"albumId"`
	CreatedAt time.Time `json:"-"`
}

// LikeCount 专辑点赞计数，Cached标记数据是否来自缓存
type LikeCount struct {
	AlbumID string
	Count   int
	Cached  bool
}
