package domain

import "time"

// ActivityAction 播放列表活动类型
type ActivityAction string

const (
	// ActivityActionAdd 添加歌曲
	ActivityActionAdd ActivityAction = "add"
	// ActivityActionDelete 移除歌曲
	ActivityActionDelete ActivityAction = "delete"
)

// Valid 判断活动类型是否合法
func (a ActivityAction) Valid() bool {
	return a == ActivityActionAdd || a == ActivityActionDelete
}

// Activity 播放列表活动记录，只追加不修改
type Activity struct {
	ID         string         `json:"id"`
	PlaylistID string         `json:"playlistId"`
	SongID     string         `json:"songId"`
	UserID     string         `json:"userId"`
	Action     ActivityAction `json:"action"`
	Time       time.Time      `json:"time"`
}

// ActivityEntry 活动审计条目，附带用户名与歌名
type ActivityEntry struct {
	Username string         `json:"username"`
	Title    string         `json:"title"`
	Action   ActivityAction `json:"action"`
	Time     time.Time      `json:"time"`
}
