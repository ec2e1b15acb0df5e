// Package task 提供后台定时任务调度
package task

import (
	"context"

	"github.com/opennotes/notes-service/internal/service"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Manager 定时任务管理器
type Manager struct {
	cron   *cron.Cron
	logger *zap.Logger
}

// NewManager 创建定时任务管理器
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{
		cron:   cron.New(),
		logger: logger,
	}
}

// RegisterNotePurge 注册软删除笔记清理任务
// spec 为标准五段 cron 表达式
func (m *Manager) RegisterNotePurge(spec string, noteService service.NoteService) error {
	_, err := m.cron.AddFunc(spec, func() {
		count, err := noteService.PurgeDeleted(context.Background())
		if err != nil {
			m.logger.Error("note purge task failed", zap.Error(err))
			return
		}
		if count > 0 {
			m.logger.Info("note purge task completed", zap.Int64("purged", count))
		}
	})
	return err
}

// Start 启动调度器
func (m *Manager) Start() {
	m.cron.Start()
}

// Stop 停止调度器，等待执行中的任务结束
func (m *Manager) Stop() {
	ctx := m.cron.Stop()
	<-ctx.Done()
}
