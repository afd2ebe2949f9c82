package service

import (
	"context"
	"time"

	"github.com/open-music/server/internal/domain"
	"github.com/open-music/server/internal/repository"
	"github.com/open-music/server/pkg/errors"
)

// CollaborationService 协作者服务，仅播放列表所有者可管理协作者
type CollaborationService struct {
	collabRepo      repository.CollaborationRepository
	userRepo        repository.UserRepository
	playlistService *PlaylistService
}

// NewCollaborationService 创建协作者服务
func NewCollaborationService(
	collabRepo repository.CollaborationRepository,
	userRepo repository.UserRepository,
	playlistService *PlaylistService,
) *CollaborationService {
	return &CollaborationService{
		collabRepo:      collabRepo,
		userRepo:        userRepo,
		playlistService: playlistService,
	}
}

// Add 添加协作者，返回协作记录ID
func (s *CollaborationService) Add(ctx context.Context, playlistID, ownerID, userID string) (string, error) {
	if playlistID == "" || userID == "" {
		return "", errors.Validation("playlistId and userId are required")
	}

	if err := s.playlistService.VerifyOwner(ctx, playlistID, ownerID); err != nil {
		return "", err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", errors.Wrap(err, errors.KindInternal, "failed to get user")
	}
	if user == nil {
		return "", errors.NotFound("user not found")
	}

	exists, err := s.collabRepo.Exists(ctx, playlistID, userID)
	if err != nil {
		return "", errors.Wrap(err, errors.KindInternal, "failed to check collaboration")
	}
	if exists {
		return "", errors.Invariant("user is already a collaborator")
	}

	now := time.Now()
	collab := &domain.Collaboration{
		ID:         domain.NewID(domain.CollaborationIDPrefix),
		PlaylistID: playlistID,
		UserID:     userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.collabRepo.Create(ctx, collab); err != nil {
		return "", errors.Wrap(err, errors.KindInternal, "failed to add collaborator")
	}
	return collab.ID, nil
}

// Remove 移除协作者
func (s *CollaborationService) Remove(ctx context.Context, playlistID, ownerID, userID string) error {
	if playlistID == "" || userID == "" {
		return errors.Validation("playlistId and userId are required")
	}

	if err := s.playlistService.VerifyOwner(ctx, playlistID, ownerID); err != nil {
		return err
	}

	affected, err := s.collabRepo.Delete(ctx, playlistID, userID)
	if err != nil {
		return errors.Wrap(err, errors.KindInternal, "failed to remove collaborator")
	}
	if affected == 0 {
		return errors.Invariant("collaboration not found")
	}
	return nil
}
