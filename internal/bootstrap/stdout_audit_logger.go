package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
	At      time.Time
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

type StdoutAuditLogger struct{}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{}
}

func (l *StdoutAuditLogger) Log(_ context.Context, entry AuditLog) {
	if entry.At.IsZero() {
		entry.At = time.Now().UTC()
	}
	zap.L().Named("audit").Info(entry.Message,
		zap.String("action", entry.Action),
		zap.Time("at", entry.At),
		zap.Any("meta", entry.Meta),
	)
}
