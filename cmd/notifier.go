package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Nik0lakt/cafeteria-project/internal/api/events"
	"github.com/Nik0lakt/cafeteria-project/internal/clients/mailer"
	"github.com/Nik0lakt/cafeteria-project/internal/clients/telegram"
	"github.com/Nik0lakt/cafeteria-project/internal/notification"
	"github.com/Nik0lakt/cafeteria-project/pkg/broker"
	"github.com/Nik0lakt/cafeteria-project/pkg/config"
	"github.com/Nik0lakt/cafeteria-project/pkg/logger"
)

var notifierCmd = &cobra.Command{
	Use:   "notifier",
	Short: "Deliver receipts and manual payment reports",
	RunE:  runNotifier,
}

func runNotifier(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	cfg, err := config.NewNotifier(envPath)
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("create logger", err)

	tg, err := telegram.NewClient(cfg.Telegram.Token)
	panicOnErr("create telegram client", err)

	var mail notification.Mailer
	if cfg.Mailer.Enabled {
		mail = mailer.New(cfg.Mailer)
	}

	s := notification.New(tg, mail, cfg.Telegram.AdminChatID)

	// Kafka consumers
	{
		consumer := broker.NewConsumer(l, cfg.Kafka.Brokers, cfg.Kafka.ConsumerID, []string{cfg.Kafka.NotificationsTopic})
		defer consumer.Close()

		eventHandler := events.NewEventHandler(s)

		consumer.Handle(cfg.Kafka.NotificationsTopic, eventHandler.Notification)
		consumer.Consume(ctx)
	}

	slog.InfoContext(ctx, "notifier started", "topic", cfg.Kafka.NotificationsTopic)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)
	sig := <-ch

	slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

	cancel()

	return nil
}
