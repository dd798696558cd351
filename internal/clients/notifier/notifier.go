// Package notifier publishes settlement notifications to Kafka for the notifier process.
package notifier

import (
	"context"
	"log/slog"

	"github.com/Nik0lakt/cafeteria-project/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=notifier.go -destination=../../mocks/notifier.go -package=mocks

type Publisher interface {
	Publish(ctx context.Context, key string, event any) error
}

type Notifier struct {
	p Publisher
}

func New(p Publisher) *Notifier {
	return &Notifier{p: p}
}

func (n *Notifier) SendReceipt(ctx context.Context, r entity.Receipt) {
	n.publish(ctx, r.TransactionID.String(), entity.NotificationEvent{
		Type:    entity.NotificationReceipt,
		Receipt: &r,
	})
}

func (n *Notifier) SendManualPaymentReport(ctx context.Context, r entity.ManualPaymentReport) {
	n.publish(ctx, r.TransactionID.String(), entity.NotificationEvent{
		Type:   entity.NotificationManualPayment,
		Report: &r,
	})
}

func (n *Notifier) publish(ctx context.Context, key string, event entity.NotificationEvent) {
	err := n.p.Publish(ctx, key, event)
	if err != nil {
		slog.ErrorContext(ctx, "publish notification", "type", event.Type, "transaction_id", key, "error", err)
		return
	}

	slog.DebugContext(ctx, "notification published", "type", event.Type, "transaction_id", key)
}
