package logger

import (
	"context"
	"io"
	log "log/slog"
	"os"
)

// TraceIDKey 请求链路追踪 ID 在 context 与 gin.Keys 中的键名
const TraceIDKey = "trace_id"

var LogWriter io.Writer

func InitLogger() {
	LogWriter = os.Stdout

	h := log.NewJSONHandler(LogWriter, &log.HandlerOptions{Level: log.LevelInfo})

	logger := log.New(&ContextHandler{h})
	log.SetDefault(logger)
}

// ContextHandler 从 context 中提取 trace_id 附加到每条日志
type ContextHandler struct {
	log.Handler
}

func (h *ContextHandler) Handle(ctx context.Context, r log.Record) error {
	if traceID, ok := ctx.Value(TraceIDKey).(string); ok && traceID != "" {
		r.AddAttrs(log.String(TraceIDKey, traceID))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []log.Attr) log.Handler {
	return &ContextHandler{h.Handler.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) log.Handler {
	return &ContextHandler{h.Handler.WithGroup(name)}
}
