package broker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"
)

// slogAt adapts l to the kafka-go logger, writing every line at level.
func slogAt(l *slog.Logger, level slog.Level) kafka.LoggerFunc {
	return func(format string, v ...any) {
		l.Log(context.Background(), level, fmt.Sprintf(format, v...))
	}
}
