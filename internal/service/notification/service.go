package notification

import (
	"context"
	"log/slog"

	"github.com/talentflow/hr-backend-go/internal/domain/notification"
)

// LogSink writes notifications to the structured log. It stands in for the
// toast surface of the reference UI; swapping in email or a message broker
// only means providing another Sink.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) notification.Sink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Notify(ctx context.Context, kind notification.Kind, message string) {
	level := slog.LevelInfo
	switch kind {
	case notification.KindWarning:
		level = slog.LevelWarn
	case notification.KindError:
		level = slog.LevelError
	}

	s.logger.LogAttrs(ctx, level, "notification",
		slog.String("kind", string(kind)),
		slog.String("message", message))
}
