package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nik0lakt/cafeteria-project/internal/api"
	"github.com/Nik0lakt/cafeteria-project/internal/api/bot"
	"github.com/Nik0lakt/cafeteria-project/internal/clients/embedder"
	"github.com/Nik0lakt/cafeteria-project/internal/clients/notifier"
	"github.com/Nik0lakt/cafeteria-project/internal/clients/telegram"
	"github.com/Nik0lakt/cafeteria-project/internal/repository"
	"github.com/Nik0lakt/cafeteria-project/internal/service"
	"github.com/Nik0lakt/cafeteria-project/pkg/broker"
	"github.com/Nik0lakt/cafeteria-project/pkg/config"
	"github.com/Nik0lakt/cafeteria-project/pkg/job"
	"github.com/Nik0lakt/cafeteria-project/pkg/logger"
	"github.com/Nik0lakt/cafeteria-project/pkg/postgres"
	"github.com/Nik0lakt/cafeteria-project/pkg/ratelimit"
	"github.com/Nik0lakt/cafeteria-project/pkg/security"
)

const (
	readTimeout       = 10 * time.Second
	readHeaderTimeout = time.Second
	writeTimeout      = 30 * time.Second
	shutdownTimeout   = 10 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	cfg, err := config.New(envPath)
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("create logger", err)

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	repo := repository.New(pool)
	sessions := repository.NewSessionRepository(pool)

	limiter := ratelimit.New(nil, "", 0, 0)

	if cfg.Redis.URL != "" {
		redisClient, err := ratelimit.Connect(ctx, cfg.Redis.URL)
		panicOnErr("connect to redis", err)
		defer redisClient.Close()

		limiter = ratelimit.New(redisClient, "liveness:frames:", int64(cfg.Liveness.FramesPerSecond), time.Second)
	}

	producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.NotificationsTopic)
	defer producer.Close()

	s := service.New(
		repo,
		sessions,
		embedder.NewClient(cfg.Embedder),
		notifier.New(producer),
		limiter,
		service.Options{
			Tolerance:  cfg.Liveness.Tolerance,
			SessionTTL: cfg.Liveness.SessionTTL,
			MaxFrames:  cfg.Liveness.MaxFrames,
		},
	)

	jobs := job.NewService(l).
		RegisterJob("expire liveness sessions", cfg.Liveness.SweepInterval, s.ExpireSessions)
	jobs.Start(ctx)

	var wg sync.WaitGroup

	if cfg.Telegram.BalanceBotEnabled {
		tg, err := telegram.NewClient(cfg.Telegram.Token)
		panicOnErr("create telegram client", err)

		wg.Add(1)

		go func() {
			defer wg.Done()

			bot.New(tg.Bot(), tg, s).Run(ctx)
		}()
	}

	publicKey, err := security.LoadPublicKey(cfg.Auth.JWTPublicKey)
	if cfg.Auth.JWTEnabled {
		panicOnErr("load jwt public key", err)
	}

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(cfg.Auth.JWTEnabled, publicKey, cfg.HTTP.APIKeyEnabled, cfg.HTTP.APIKey)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           api.NewRouter(handler, mw),
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(ctx, "server shutdown", "error", err)
	}

	cancel()
	jobs.Stop()
	wg.Wait()

	return nil
}
