package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/open-music/server/internal/domain"
)

// AlbumRepositoryImpl 专辑仓储实现
type AlbumRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewAlbumRepository 创建专辑仓储
func NewAlbumRepository(db *pgxpool.Pool) AlbumRepository {
	return &AlbumRepositoryImpl{db: db}
}

// Create 创建专辑
func (r *AlbumRepositoryImpl) Create(ctx context.Context, album *domain.Album) error {
	query := `
		INSERT INTO albums (id, name, year, url_cover, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query,
		album.ID,
		album.Name,
		album.Year,
		album.CoverURL,
		album.CreatedAt,
		album.UpdatedAt,
	)
	return err
}

// List 获取全部专辑
func (r *AlbumRepositoryImpl) List(ctx context.Context) ([]*domain.Album, error) {
	query := `
		SELECT id, name, year, url_cover, created_at, updated_at
		FROM albums
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var albums []*domain.Album
	for rows.Next() {
		var album domain.Album
		err := rows.Scan(
			&album.ID,
			&album.Name,
			&album.Year,
			&album.CoverURL,
			&album.CreatedAt,
			&album.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		albums = append(albums, &album)
	}
	return albums, rows.Err()
}

// GetByID 根据ID获取专辑，不存在时返回nil
func (r *AlbumRepositoryImpl) GetByID(ctx context.Context, id string) (*domain.Album, error) {
	query := `
		SELECT id, name, year, url_cover, created_at, updated_at
		FROM albums
		WHERE id = $1
	`
	var album domain.Album
	err := r.db.QueryRow(ctx, query, id).Scan(
		&album.ID,
		&album.Name,
		&album.Year,
		&album.CoverURL,
		&album.CreatedAt,
		&album.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &album, nil
}

// Update 更新专辑，返回更新行数
func (r *AlbumRepositoryImpl) Update(ctx context.Context, album *domain.Album) (int64, error) {
	query := `
		UPDATE albums
		SET name = $2, year = $3, updated_at = $4
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, album.ID, album.Name, album.Year, album.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Delete 删除专辑，返回删除行数
func (r *AlbumRepositoryImpl) Delete(ctx context.Context, id string) (int64, error) {
	query := `DELETE FROM albums WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// SetCoverURL 更新专辑封面URL，返回更新行数
func (r *AlbumRepositoryImpl) SetCoverURL(ctx context.Context, id, url string) (int64, error) {
	query := `
		UPDATE albums
		SET url_cover = $2, updated_at = $3
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, id, url, time.Now())
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
