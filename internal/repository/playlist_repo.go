package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/open-music/server/internal/domain"
)

// PlaylistRepositoryImpl 播放列表仓储实现
type PlaylistRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewPlaylistRepository 创建播放列表仓储
func NewPlaylistRepository(db *pgxpool.Pool) PlaylistRepository {
	return &PlaylistRepositoryImpl{db: db}
}

// Create 创建播放列表
func (r *PlaylistRepositoryImpl) Create(ctx context.Context, playlist *domain.Playlist) error {
	query := `
		INSERT INTO playlists (id, name, owner, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query,
		playlist.ID,
		playlist.Name,
		playlist.Owner,
		playlist.CreatedAt,
		playlist.UpdatedAt,
	)
	return err
}

// GetByID 根据ID获取播放列表，不存在时返回nil
func (r *PlaylistRepositoryImpl) GetByID(ctx context.Context, id string) (*domain.Playlist, error) {
	query := `
		SELECT id, name, owner, created_at, updated_at
		FROM playlists
		WHERE id = $1
	`
	var playlist domain.Playlist
	err := r.db.QueryRow(ctx, query, id).Scan(
		&playlist.ID,
		&playlist.Name,
		&playlist.Owner,
		&playlist.CreatedAt,
		&playlist.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

// ListByUser 获取用户拥有或协作的播放列表，附带所有者用户名
func (r *PlaylistRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]domain.PlaylistSummary, error) {
	query := `
		SELECT DISTINCT playlists.id, playlists.name, users.username
		FROM playlists
		LEFT JOIN collaborations ON collaborations.playlist_id = playlists.id
		LEFT JOIN users ON users.id = playlists.owner
		WHERE playlists.owner = $1 OR collaborations.user_id = $1
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var playlists []domain.PlaylistSummary
	for rows.Next() {
		var pl domain.PlaylistSummary
		if err := rows.Scan(&pl.ID, &pl.Name, &pl.Username); err != nil {
			return nil, err
		}
		playlists = append(playlists, pl)
	}
	return playlists, rows.Err()
}

// Delete 删除播放列表，返回删除行数
func (r *PlaylistRepositoryImpl) Delete(ctx context.Context, id string) (int64, error) {
	query := `DELETE FROM playlists WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// AddSong 添加歌曲到播放列表
func (r *PlaylistRepositoryImpl) AddSong(ctx context.Context, ps *domain.PlaylistSong) error {
	query := `
		INSERT INTO playlists_songs (id, playlist_id, song_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query,
		ps.ID,
		ps.PlaylistID,
		ps.SongID,
		ps.CreatedAt,
		ps.UpdatedAt,
	)
	return err
}

// RemoveSong 从播放列表移除歌曲，返回删除行数
func (r *PlaylistRepositoryImpl) RemoveSong(ctx context.Context, playlistID, songID string) (int64, error) {
	query := `DELETE FROM playlists_songs WHERE playlist_id = $1 AND song_id = $2`
	tag, err := r.db.Exec(ctx, query, playlistID, songID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// SongExists 判断歌曲是否已在播放列表中
func (r *PlaylistRepositoryImpl) SongExists(ctx context.Context, playlistID, songID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM playlists_songs WHERE playlist_id = $1 AND song_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, playlistID, songID).Scan(&exists)
	return exists, err
}

// ListSongs 获取播放列表中的歌曲摘要
func (r *PlaylistRepositoryImpl) ListSongs(ctx context.Context, playlistID string) ([]domain.SongSummary, error) {
	query := `
		SELECT songs.id, songs.title, songs.performer
		FROM songs
		JOIN playlists_songs ON playlists_songs.song_id = songs.id
		WHERE playlists_songs.playlist_id = $1
	`
	rows, err := r.db.Query(ctx, query, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSongSummaries(rows)
}
