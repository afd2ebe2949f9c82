// Package mq publishes asynchronous job requests over Redis pub/sub.
package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/open-music/server/pkg/logger"
	"github.com/open-music/server/pkg/redis"
)

// ExportChannel returns the pub/sub channel for a playlist export job.
func ExportChannel(playlistID string) string {
	return fmt.Sprintf("export:playlist:%s", playlistID)
}

// ExportMessage 播放列表导出任务载荷
type ExportMessage struct {
	UserID      string `json:"userId"`
	PlaylistID  string `json:"playlistId"`
	TargetEmail string `json:"targetEmail"`
}

// Publisher 任务发布器接口
type Publisher interface {
	PublishExport(ctx context.Context, msg *ExportMessage) error
}

// RedisPublisher 基于Redis pub/sub的任务发布器
type RedisPublisher struct {
	client *redis.Client
	log    logger.Logger

	published atomic.Int64
	failed    atomic.Int64
}

// NewRedisPublisher 创建任务发布器
func NewRedisPublisher(client *redis.Client, log logger.Logger) *RedisPublisher {
	return &RedisPublisher{
		client: client,
		log:    log,
	}
}

// PublishExport 发布播放列表导出任务
func (p *RedisPublisher) PublishExport(ctx context.Context, msg *ExportMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal export message: %w", err)
	}

	channel := ExportChannel(msg.PlaylistID)
	if err := p.client.Publish(ctx, channel, payload); err != nil {
		p.failed.Add(1)
		p.log.WithFields(
			logger.String("channel", channel),
			logger.String("playlist_id", msg.PlaylistID),
			logger.Error(err),
		).Error("Failed to publish export message")
		return err
	}

	p.published.Add(1)
	p.log.WithFields(
		logger.String("channel", channel),
		logger.String("playlist_id", msg.PlaylistID),
	).Info("Export message published")
	return nil
}

// Stats 返回已发布与失败的消息计数
func (p *RedisPublisher) Stats() (published, failed int64) {
	return p.published.Load(), p.failed.Load()
}
