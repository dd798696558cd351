package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/Nik0lakt/cafeteria-project/internal/entity"
	"github.com/Nik0lakt/cafeteria-project/pkg/logger"
)

type Service interface {
	Deliver(ctx context.Context, event entity.NotificationEvent) error
}

type EventHandler struct {
	s Service
}

func NewEventHandler(s Service) *EventHandler {
	return &EventHandler{s: s}
}

// Notification delivers one event from the notifications topic. The message key
// is the transaction id and is used as the request id in logs.
func (h *EventHandler) Notification(ctx context.Context, msg kafka.Message) error {
	var event entity.NotificationEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	if len(msg.Key) > 0 {
		ctx = logger.WithRequestID(ctx, string(msg.Key))
	}

	err = h.s.Deliver(ctx, event)
	if err != nil {
		return fmt.Errorf("deliver %s: %w", event.Type, err)
	}

	return nil
}
