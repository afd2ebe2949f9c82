package domain

import (
	"time"

	"github.com/open-music/server/pkg/errors"
)

// Playlist 播放列表实体，Owner创建后不可变更
type Playlist struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Validate 验证播放列表数据
func (p *Playlist) Validate() error {
	if err := ValidatePlaylistName(p.Name); err != nil {
		return err
	}
	if p.Owner == "" {
		return errors.Validation("playlist owner is required")
	}
	return nil
}

// ValidatePlaylistName 验证播放列表名称
func ValidatePlaylistName(name string) error {
	if name == "" {
		return errors.Validation("playlist name is required")
	}
	if len(name) > 100 {
		return errors.Validation("playlist name must not exceed 100 characters")
	}
	return nil
}

// PlaylistSummary 播放列表摘要，附带所有者用户名
type PlaylistSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// PlaylistSong 播放列表-歌曲关联实体
type PlaylistSong struct {
	ID         string    `json:"id"`
	PlaylistID string    `json:"playlistId"`
	SongID     string    `json:"songId"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// Collaboration 协作者授权记录
type Collaboration struct {
	ID         string    `json:"id"`
	PlaylistID string    `json:"playlistId"`
	UserID     string    `json:"userId"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}
