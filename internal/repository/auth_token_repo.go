package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AuthTokenRepositoryImpl 刷新令牌仓储实现
type AuthTokenRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewAuthTokenRepository 创建刷新令牌仓储
func NewAuthTokenRepository(db *pgxpool.Pool) AuthTokenRepository {
	return &AuthTokenRepositoryImpl{db: db}
}

// Add 保存刷新令牌
func (r *AuthTokenRepositoryImpl) Add(ctx context.Context, token string, createdAt time.Time) error {
	query := `INSERT INTO authentications (token, created_at) VALUES ($1, $2)`
	_, err := r.db.Exec(ctx, query, token, createdAt)
	return err
}

// Exists 判断刷新令牌是否存在
func (r *AuthTokenRepositoryImpl) Exists(ctx context.Context, token string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM authentications WHERE token = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, token).Scan(&exists)
	return exists, err
}

// Delete 删除刷新令牌，返回删除行数
func (r *AuthTokenRepositoryImpl) Delete(ctx context.Context, token string) (int64, error) {
	query := `DELETE FROM authentications WHERE token = $1`
	tag, err := r.db.Exec(ctx, query, token)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// DeleteCreatedBefore 清理指定时间之前创建的刷新令牌
func (r *AuthTokenRepositoryImpl) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM authentications WHERE created_at < $1`
	tag, err := r.db.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
