package job

import (
	"context"
	log "log/slog"

	"github.com/google/uuid"

	"github.com/parteecat/folio/internal/pkg/logger"
	"github.com/parteecat/folio/internal/service"
)

// HotPostsJob 周期性把浏览量最高的帖子刷进 Redis 缓存
type HotPostsJob struct {
	postSvc service.PostService
}

func NewHotPostsJob(postSvc service.PostService) *HotPostsJob {
	return &HotPostsJob{postSvc: postSvc}
}

func (s *HotPostsJob) Run() {
	traceID := "job-hot-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	if err := s.postSvc.RefreshHotCache(ctx); err != nil {
		log.ErrorContext(ctx, "refresh hot posts cache error", "err", err)
		return
	}
	log.InfoContext(ctx, "hot posts cache refreshed")
}
