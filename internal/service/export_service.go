package service

import (
	"context"
	"strings"

	"github.com/open-music/server/internal/mq"
	"github.com/open-music/server/pkg/errors"
)

// ExportService 播放列表导出服务，任务异步投递给消费者处理
type ExportService struct {
	playlistService *PlaylistService
	publisher       mq.Publisher
}

// NewExportService 创建导出服务
func NewExportService(playlistService *PlaylistService, publisher mq.Publisher) *ExportService {
	return &ExportService{
		playlistService: playlistService,
		publisher:       publisher,
	}
}

// Export 发布播放列表导出任务，需要播放列表访问权限
func (s *ExportService) Export(ctx context.Context, playlistID, userID, targetEmail string) error {
	if targetEmail == "" || !strings.Contains(targetEmail, "@") {
		return errors.Validation("targetEmail must be a valid email address")
	}

	if err := s.playlistService.VerifyAccess(ctx, playlistID, userID); err != nil {
		return err
	}

	msg := &mq.ExportMessage{
		UserID:      userID,
		PlaylistID:  playlistID,
		TargetEmail: targetEmail,
	}
	if err := s.publisher.PublishExport(ctx, msg); err != nil {
		return errors.Wrap(err, errors.KindInternal, "failed to queue export")
	}
	return nil
}
