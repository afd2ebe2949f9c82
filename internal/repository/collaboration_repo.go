package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/open-music/server/internal/domain"
)

// CollaborationRepositoryImpl 协作者仓储实现
type CollaborationRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewCollaborationRepository 创建协作者仓储
func NewCollaborationRepository(db *pgxpool.Pool) CollaborationRepository {
	return &CollaborationRepositoryImpl{db: db}
}

// Create 添加协作者
func (r *CollaborationRepositoryImpl) Create(ctx context.Context, collab *domain.Collaboration) error {
	query := `
		INSERT INTO collaborations (id, playlist_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query,
		collab.ID,
		collab.PlaylistID,
		collab.UserID,
		collab.CreatedAt,
		collab.UpdatedAt,
	)
	return err
}

// Delete 移除协作者，返回删除行数
func (r *CollaborationRepositoryImpl) Delete(ctx context.Context, playlistID, userID string) (int64, error) {
	query := `DELETE FROM collaborations WHERE playlist_id = $1 AND user_id = $2`
	tag, err := r.db.Exec(ctx, query, playlistID, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Exists 判断用户是否为播放列表协作者
func (r *CollaborationRepositoryImpl) Exists(ctx context.Context, playlistID, userID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM collaborations WHERE playlist_id = $1 AND user_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, playlistID, userID).Scan(&exists)
	return exists, err
}
