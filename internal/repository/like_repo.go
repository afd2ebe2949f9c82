package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/open-music/server/internal/domain"
)

// AlbumLikeRepositoryImpl 专辑点赞仓储实现
type AlbumLikeRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewAlbumLikeRepository 创建专辑点赞仓储
func NewAlbumLikeRepository(db *pgxpool.Pool) AlbumLikeRepository {
	return &AlbumLikeRepositoryImpl{db: db}
}

// Create 添加点赞记录
func (r *AlbumLikeRepositoryImpl) Create(ctx context.Context, like *domain.AlbumLike) error {
	query := `
		INSERT INTO user_album_likes (id, user_id, album_id, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query, like.ID, like.UserID, like.AlbumID, like.CreatedAt)
	return err
}

// Delete 取消点赞，返回删除行数
func (r *AlbumLikeRepositoryImpl) Delete(ctx context.Context, userID, albumID string) (int64, error) {
	query := `DELETE FROM user_album_likes WHERE user_id = $1 AND album_id = $2`
	tag, err := r.db.Exec(ctx, query, userID, albumID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Exists 判断用户是否已点赞该专辑
func (r *AlbumLikeRepositoryImpl) Exists(ctx context.Context, userID, albumID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM user_album_likes WHERE user_id = $1 AND album_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, albumID).Scan(&exists)
	return exists, err
}

// CountByAlbum 统计专辑点赞数
func (r *AlbumLikeRepositoryImpl) CountByAlbum(ctx context.Context, albumID string) (int, error) {
	query := `SELECT COUNT(*) FROM user_album_likes WHERE album_id = $1`
	var count int
	err := r.db.QueryRow(ctx, query, albumID).Scan(&count)
	return count, err
}
