package service

import (
	"context"
	"time"

	"github.com/open-music/server/internal/repository"
	"github.com/open-music/server/pkg/logger"
)

// CleanupService 过期刷新令牌清理服务
type CleanupService struct {
	tokenRepo repository.AuthTokenRepository
	maxAge    time.Duration
	log       logger.Logger
}

// NewCleanupService 创建清理服务，maxAge与刷新令牌有效期一致
func NewCleanupService(tokenRepo repository.AuthTokenRepository, maxAge time.Duration, log logger.Logger) *CleanupService {
	return &CleanupService{
		tokenRepo: tokenRepo,
		maxAge:    maxAge,
		log:       log,
	}
}

// PurgeExpiredTokens 删除超过有效期的刷新令牌，返回删除数量
func (s *CleanupService) PurgeExpiredTokens(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-s.maxAge)
	deleted, err := s.tokenRepo.DeleteCreatedBefore(ctx, cutoff)
	if err != nil {
		s.log.WithFields(logger.Error(err)).Error("Failed to purge expired refresh tokens")
		return 0, err
	}
	if deleted > 0 {
		s.log.WithFields(logger.Int64("deleted", deleted)).Info("Purged expired refresh tokens")
	}
	return deleted, nil
}
