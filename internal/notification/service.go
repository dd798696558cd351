// Package notification delivers settlement notifications consumed from Kafka.
package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/Nik0lakt/cafeteria-project/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/notification.go -package=mocks

type Telegram interface {
	SendText(ctx context.Context, chatID int64, html string) error
	SendPhotos(ctx context.Context, chatID int64, caption string, photos ...[]byte) error
}

type Mailer interface {
	SendMessage(ctx context.Context, subject, message string, recipients []string, contentType string) error
}

type Service struct {
	telegram    Telegram
	mailer      Mailer
	adminChatID int64
}

// New builds the delivery service. A nil mailer disables email, a zero
// adminChatID disables manual payment reports.
func New(telegram Telegram, mailer Mailer, adminChatID int64) *Service {
	return &Service{
		telegram:    telegram,
		mailer:      mailer,
		adminChatID: adminChatID,
	}
}

func (s *Service) Deliver(ctx context.Context, event entity.NotificationEvent) error {
	switch event.Type {
	case entity.NotificationReceipt:
		if event.Receipt == nil {
			return fmt.Errorf("%w: receipt event without receipt", entity.ErrInvalidArgument)
		}

		return s.SendReceipt(ctx, *event.Receipt)
	case entity.NotificationManualPayment:
		if event.Report == nil {
			return fmt.Errorf("%w: manual payment event without report", entity.ErrInvalidArgument)
		}

		return s.SendManualPaymentReport(ctx, *event.Report)
	default:
		return fmt.Errorf("%w: %s", entity.ErrUnknownNotificationType, event.Type)
	}
}

// SendReceipt tries every configured channel of the recipient.
func (s *Service) SendReceipt(ctx context.Context, r entity.Receipt) error {
	var (
		errs []error
		sent int
	)

	body := RenderReceipt(r)

	if r.Recipient.TelegramChatID != "" {
		chatID, err := strconv.ParseInt(r.Recipient.TelegramChatID, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("parse chat id %q: %w", r.Recipient.TelegramChatID, err))
		} else if err = s.telegram.SendText(ctx, chatID, body); err != nil {
			errs = append(errs, fmt.Errorf("telegram: %w", err))
		} else {
			sent++
		}
	}

	if r.Recipient.Email != "" && s.mailer != nil {
		subject := fmt.Sprintf("Чек столовой №%s", shortID(r))

		err := s.mailer.SendMessage(ctx, subject, "<pre>"+body+"</pre>", []string{r.Recipient.Email}, "text/html")
		if err != nil {
			errs = append(errs, fmt.Errorf("email: %w", err))
		} else {
			sent++
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", entity.ErrDeliveryFailed, errors.Join(errs...))
	}

	if sent == 0 {
		return entity.ErrNoDeliveryChannel
	}

	slog.InfoContext(ctx, "receipt delivered", "transaction_id", r.TransactionID, "channels", sent)

	return nil
}

// SendManualPaymentReport sends the enrolled photo and the live snapshot to the admin chat.
func (s *Service) SendManualPaymentReport(ctx context.Context, r entity.ManualPaymentReport) error {
	if s.adminChatID == 0 {
		return entity.ErrNoDeliveryChannel
	}

	err := s.telegram.SendPhotos(ctx, s.adminChatID, RenderManualReport(r), r.EnrolledPhoto, r.LivePhoto)
	if err != nil {
		return fmt.Errorf("%w: telegram: %w", entity.ErrDeliveryFailed, err)
	}

	slog.InfoContext(ctx, "manual payment report delivered", "transaction_id", r.TransactionID)

	return nil
}
