package notification

import (
	"context"

	"go.uber.org/zap"
)

// LogNotifier writes every notification to the structured log.
type LogNotifier struct {
	Logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{Logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, msg Message) error {
	n.Logger.Info("notification",
		zap.String("title", msg.Title),
		zap.String("description", msg.Description),
		zap.String("variant", msg.Variant))
	return nil
}
