package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/open-music/server/internal/domain"
)

// SongRepositoryImpl 歌曲仓储实现
type SongRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewSongRepository 创建歌曲仓储
func NewSongRepository(db *pgxpool.Pool) SongRepository {
	return &SongRepositoryImpl{db: db}
}

// Create 创建歌曲
func (r *SongRepositoryImpl) Create(ctx context.Context, song *domain.Song) error {
	query := `
		INSERT INTO songs (id, title, year, genre, performer, duration, album_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		song.ID,
		song.Title,
		song.Year,
		song.Genre,
		song.Performer,
		song.Duration,
		song.AlbumID,
		song.CreatedAt,
		song.UpdatedAt,
	)
	return err
}

// List 按标题与演唱者模糊过滤获取歌曲摘要
func (r *SongRepositoryImpl) List(ctx context.Context, title, performer string) ([]domain.SongSummary, error) {
	query := `
		SELECT id, title, performer
		FROM songs
		WHERE title ILIKE '%' || $1 || '%' AND performer ILIKE '%' || $2 || '%'
	`
	rows, err := r.db.Query(ctx, query, title, performer)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSongSummaries(rows)
}

// GetByID 根据ID获取歌曲，不存在时返回nil
func (r *SongRepositoryImpl) GetByID(ctx context.Context, id string) (*domain.Song, error) {
	query := `
		SELECT id, title, year, genre, performer, duration, album_id, created_at, updated_at
		FROM songs
		WHERE id = $1
	`
	var song domain.Song
	err := r.db.QueryRow(ctx, query, id).Scan(
		&song.ID,
		&song.Title,
		&song.Year,
		&song.Genre,
		&song.Performer,
		&song.Duration,
		&song.AlbumID,
		&song.CreatedAt,
		&song.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &song, nil
}

// ListByAlbum 获取专辑下的歌曲摘要
func (r *SongRepositoryImpl) ListByAlbum(ctx context.Context, albumID string) ([]domain.SongSummary, error) {
	query := `
		SELECT id, title, performer
		FROM songs
		WHERE album_id = $1
	`
	rows, err := r.db.Query(ctx, query, albumID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSongSummaries(rows)
}

// Update 更新歌曲，返回更新行数
func (r *SongRepositoryImpl) Update(ctx context.Context, song *domain.Song) (int64, error) {
	query := `
		UPDATE songs
		SET title = $2, year = $3, genre = $4, performer = $5, duration = $6, album_id = $7, updated_at = $8
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		song.ID,
		song.Title,
		song.Year,
		song.Genre,
		song.Performer,
		song.Duration,
		song.AlbumID,
		song.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Delete 删除歌曲，返回删除行数
func (r *SongRepositoryImpl) Delete(ctx context.Context, id string) (int64, error) {
	query := `DELETE FROM songs WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanSongSummaries(rows pgx.Rows) ([]domain.SongSummary, error) {
	var songs []domain.SongSummary
	for rows.Next() {
		var song domain.SongSummary
		if err := rows.Scan(&song.ID, &song.Title, &song.Performer); err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, rows.Err()
}
