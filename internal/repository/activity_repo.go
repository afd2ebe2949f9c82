package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/open-music/server/internal/domain"
)

// ActivityRepositoryImpl 播放列表活动仓储实现
type ActivityRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewActivityRepository 创建活动仓储
func NewActivityRepository(db *pgxpool.Pool) ActivityRepository {
	return &ActivityRepositoryImpl{db: db}
}

// Create 记录一条活动
func (r *ActivityRepositoryImpl) Create(ctx context.Context, activity *domain.Activity) error {
	query := `
		INSERT INTO playlist_song_activities (id, playlist_id, song_id, user_id, action, time)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query,
		activity.ID,
		activity.PlaylistID,
		activity.SongID,
		activity.UserID,
		activity.Action,
		activity.Time,
	)
	return err
}

// ListByPlaylist 按时间升序获取播放列表活动记录
func (r *ActivityRepositoryImpl) ListByPlaylist(ctx context.Context, playlistID string) ([]domain.ActivityEntry, error) {
	query := `
		SELECT users.username, songs.title, playlist_song_activities.action, playlist_song_activities.time
		FROM playlist_song_activities
		LEFT JOIN songs ON songs.id = playlist_song_activities.song_id
		LEFT JOIN users ON users.id = playlist_song_activities.user_id
		WHERE playlist_song_activities.playlist_id = $1
		ORDER BY playlist_song_activities.time ASC
	`
	rows, err := r.db.Query(ctx, query, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ActivityEntry
	for rows.Next() {
		var entry domain.ActivityEntry
		if err := rows.Scan(&entry.Username, &entry.Title, &entry.Action, &entry.Time); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
