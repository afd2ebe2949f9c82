package service

import (
	"context"
	"time"

	"github.com/open-music/server/internal/domain"
	"github.com/open-music/server/internal/repository"
	"github.com/open-music/server/pkg/errors"
)

// PlaylistDetail 播放列表详情，附带歌曲列表
type PlaylistDetail struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	Username string               `json:"username"`
	Songs    []domain.SongSummary `json:"songs"`
}

// PlaylistService 播放列表服务
type PlaylistService struct {
	playlistRepo repository.PlaylistRepository
	collabRepo   repository.CollaborationRepository
	songRepo     repository.SongRepository
	userRepo     repository.UserRepository
	activityRepo repository.ActivityRepository
}

// NewPlaylistService 创建播放列表服务
func NewPlaylistService(
	playlistRepo repository.PlaylistRepository,
	collabRepo repository.CollaborationRepository,
	songRepo repository.SongRepository,
	userRepo repository.UserRepository,
	activityRepo repository.ActivityRepository,
) *PlaylistService {
	return &PlaylistService{
		playlistRepo: playlistRepo,
		collabRepo:   collabRepo,
		songRepo:     songRepo,
		userRepo:     userRepo,
		activityRepo: activityRepo,
	}
}

// Create 创建播放列表，调用者成为所有者
func (s *PlaylistService) Create(ctx context.Context, ownerID, name string) (string, error) {
	now := time.Now()
	playlist := &domain.Playlist{
		ID:        domain.NewID(domain.PlaylistIDPrefix),
		Name:      name,
		Owner:     ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := playlist.Validate(); err != nil {
		return "", err
	}
	if err := s.playlistRepo.Create(ctx, playlist); err != nil {
		return "", errors.Wrap(err, errors.KindInternal, "failed to create playlist")
	}
	return playlist.ID, nil
}

// List 获取用户可见的播放列表（拥有或协作）
func (s *PlaylistService) List(ctx context.Context, userID string) ([]domain.PlaylistSummary, error) {
	playlists, err := s.playlistRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "failed to list playlists")
	}
	if playlists == nil {
		playlists = []domain.PlaylistSummary{}
	}
	return playlists, nil
}

// Delete 删除播放列表，仅所有者可操作
func (s *PlaylistService) Delete(ctx context.Context, playlistID, userID string) error {
	if err := s.VerifyOwner(ctx, playlistID, userID); err != nil {
		return err
	}
	affected, err := s.playlistRepo.Delete(ctx, playlistID)
	if err != nil {
		return errors.Wrap(err, errors.KindInternal, "failed to delete playlist")
	}
	if affected == 0 {
		return errors.NotFound("playlist not found")
	}
	return nil
}

// VerifyOwner 校验用户是播放列表所有者
func (s *PlaylistService) VerifyOwner(ctx context.Context, playlistID, userID string) error {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return errors.Wrap(err, errors.KindInternal, "failed to get playlist")
	}
	if playlist == nil {
		return errors.NotFound("playlist not found")
	}
	if playlist.Owner != userID {
		return errors.Authorization("you are not authorized to access this resource")
	}
	return nil
}

// VerifyAccess 校验用户是所有者或协作者。所有者校验返回未找到时直接返回；
// 返回未授权时回退到协作者校验，回退失败则重新返回最初的未授权错误。
func (s *PlaylistService) VerifyAccess(ctx context.Context, playlistID, userID string) error {
	ownerErr := s.VerifyOwner(ctx, playlistID, userID)
	if ownerErr == nil {
		return nil
	}
	if !errors.IsAuthorization(ownerErr) {
		return ownerErr
	}

	isCollab, err := s.collabRepo.Exists(ctx, playlistID, userID)
	if err != nil {
		return errors.Wrap(err, errors.KindInternal, "failed to check collaboration")
	}
	if !isCollab {
		return ownerErr
	}
	return nil
}

// AddSong 添加歌曲到播放列表并记录活动
func (s *PlaylistService) AddSong(ctx context.Context, playlistID, userID, songID string) error {
	if songID == "" {
		return errors.Validation("song id is required")
	}

	song, err := s.songRepo.GetByID(ctx, songID)
	if err != nil {
		return errors.Wrap(err, errors.KindInternal, "failed to get song")
	}
	if song == nil {
		return errors.NotFound("song not found")
	}

	if err := s.VerifyAccess(ctx, playlistID, userID); err != nil {
		return err
	}

	exists, err := s.playlistRepo.SongExists(ctx, playlistID, songID)
	if err != nil {
		return errors.Wrap(err, errors.KindInternal, "failed to check playlist song")
	}
	if exists {
		return errors.Invariant("song is already in the playlist")
	}

	now := time.Now()
	ps := &domain.PlaylistSong{
		ID:         domain.NewID(domain.PlaylistSongIDPrefix),
		PlaylistID: playlistID,
		SongID:     songID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.playlistRepo.AddSong(ctx, ps); err != nil {
		return errors.Wrap(err, errors.KindInternal, "failed to add song to playlist")
	}

	return s.RecordActivity(ctx, playlistID, songID, userID, domain.ActivityActionAdd)
}

// RemoveSong 从播放列表移除歌曲并记录活动
func (s *PlaylistService) RemoveSong(ctx context.Context, playlistID, userID, songID string) error {
	if songID == "" {
		return errors.Validation("song id is required")
	}

	if err := s.VerifyAccess(ctx, playlistID, userID); err != nil {
		return err
	}

	affected, err := s.playlistRepo.RemoveSong(ctx, playlistID, songID)
	if err != nil {
		return errors.Wrap(err, errors.KindInternal, "failed to remove song from playlist")
	}
	if affected == 0 {
		return errors.Invariant("failed to remove song from playlist")
	}

	return s.RecordActivity(ctx, playlistID, songID, userID, domain.ActivityActionDelete)
}

// GetWithSongs 获取播放列表详情及歌曲列表，需要访问权限
func (s *PlaylistService) GetWithSongs(ctx context.Context, playlistID, userID string) (*PlaylistDetail, error) {
	if err := s.VerifyAccess(ctx, playlistID, userID); err != nil {
		return nil, err
	}

	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "failed to get playlist")
	}
	if playlist == nil {
		return nil, errors.NotFound("playlist not found")
	}

	owner, err := s.userRepo.GetByID(ctx, playlist.Owner)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "failed to get playlist owner")
	}
	username := ""
	if owner != nil {
		username = owner.Username
	}

	songs, err := s.playlistRepo.ListSongs(ctx, playlistID)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "failed to list playlist songs")
	}
	if songs == nil {
		songs = []domain.SongSummary{}
	}

	return &PlaylistDetail{
		ID:       playlist.ID,
		Name:     playlist.Name,
		Username: username,
		Songs:    songs,
	}, nil
}

// RecordActivity 追加一条播放列表活动记录
func (s *PlaylistService) RecordActivity(ctx context.Context, playlistID, songID, userID string, action domain.ActivityAction) error {
	if !action.Valid() {
		return errors.Validation("invalid activity action")
	}
	activity := &domain.Activity{
		ID:         domain.NewID(domain.ActivityIDPrefix),
		PlaylistID: playlistID,
		SongID:     songID,
		UserID:     userID,
		Action:     action,
		Time:       time.Now(),
	}
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return errors.Wrap(err, errors.KindInternal, "failed to record activity")
	}
	return nil
}

// ListActivities 获取播放列表活动记录，需要访问权限，无记录时返回未找到
func (s *PlaylistService) ListActivities(ctx context.Context, playlistID, userID string) ([]domain.ActivityEntry, error) {
	if err := s.VerifyAccess(ctx, playlistID, userID); err != nil {
		return nil, err
	}

	entries, err := s.activityRepo.ListByPlaylist(ctx, playlistID)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "failed to list activities")
	}
	if len(entries) == 0 {
		return nil, errors.NotFound("no activities found for this playlist")
	}
	return entries, nil
}
