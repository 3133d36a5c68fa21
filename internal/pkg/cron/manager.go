package cron

import (
	log "log/slog"

	"github.com/robfig/cron/v3"

	"github.com/parteecat/folio/internal/job"
)

type Manager struct {
	engine      *cron.Cron
	hotPostsJob *job.HotPostsJob
}

func NewCronManager(hotPostsJob *job.HotPostsJob) *Manager {
	return &Manager{
		engine:      cron.New(),
		hotPostsJob: hotPostsJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@every 10m", s.hotPostsJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
