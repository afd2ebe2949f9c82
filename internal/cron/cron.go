// Package cron schedules background maintenance jobs.
package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/open-music/server/internal/service"
	"github.com/open-music/server/pkg/logger"
)

// 每天凌晨两点清理过期刷新令牌
const purgeSchedule = "0 2 * * *"

// Scheduler 后台任务调度器
type Scheduler struct {
	cron    *cron.Cron
	cleanup *service.CleanupService
	log     logger.Logger
}

// NewScheduler 创建调度器
func NewScheduler(cleanup *service.CleanupService, log logger.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		cleanup: cleanup,
		log:     log,
	}
}

// Start 注册并启动所有定时任务
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(purgeSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if _, err := s.cleanup.PurgeExpiredTokens(ctx); err != nil {
			s.log.WithFields(logger.Error(err)).Error("Scheduled token purge failed")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.log.Info("Background scheduler started")
	return nil
}

// Stop 停止调度器并等待运行中的任务结束
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("Background scheduler stopped")
}
