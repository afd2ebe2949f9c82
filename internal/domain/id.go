package domain

import "github.com/google/uuid"

// NewID 生成带实体前缀的唯一ID
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// 各实体的ID前缀
const (
	AlbumIDPrefix         = "album"
	SongIDPrefix          = "song"
	UserIDPrefix          = "user"
	PlaylistIDPrefix      = "playlist"
	PlaylistSongIDPrefix  = "playlist-song"
	CollaborationIDPrefix = "collab"
	ActivityIDPrefix      = "activity"
	AlbumLikeIDPrefix     = "like"
)
