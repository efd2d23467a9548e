// Command walletdesk serves the customer wallet desk.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/walletdesk/modules/desk"
	"github.com/dmitrymomot/walletdesk/pkg/broadcast"
	"github.com/dmitrymomot/walletdesk/pkg/config"
	"github.com/dmitrymomot/walletdesk/pkg/environment"
	"github.com/dmitrymomot/walletdesk/pkg/httpserver"
	"github.com/dmitrymomot/walletdesk/pkg/logger"
	"github.com/dmitrymomot/walletdesk/pkg/redis"
	"github.com/dmitrymomot/walletdesk/pkg/requestid"
	"github.com/dmitrymomot/walletdesk/pkg/toast"
	"github.com/dmitrymomot/walletdesk/pkg/wallet"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad[appConfig]()
	env := environment.Parse(cfg.Env)

	log := logger.New(
		logger.WithEnvironment(env, cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	if err := run(ctx, cfg, env, log); err != nil {
		log.ErrorContext(ctx, "walletdesk stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, env environment.Environment, log *slog.Logger) error {
	formatter, err := wallet.ParseFormatter(cfg.WalletLocale)
	if err != nil {
		return err
	}

	var (
		events broadcast.Broadcaster[toast.Event]
		checks []func(context.Context) error
	)
	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()

		shared, err := broadcast.NewRedis[toast.Event](ctx, client, cfg.ToastStreamChannel, cfg.ToastStreamBuffer, log)
		if err != nil {
			return err
		}
		events = shared
		checks = append(checks, redis.Healthcheck(client))
		log.InfoContext(ctx, "toast stream shared through redis", slog.String("channel", cfg.ToastStreamChannel))
	} else {
		events = broadcast.NewMemory[toast.Event](cfg.ToastStreamBuffer)
	}
	defer events.Close()

	toasts := toast.NewController(
		toast.WithDefaultDuration(cfg.ToastDefaultDuration),
		toast.WithBroadcaster(events),
		toast.WithLogger(log),
	)
	defer toasts.Close()

	balances := wallet.NewClient(cfg.WalletAPIURL, wallet.WithTimeout(cfg.WalletAPITimeout))

	r := chi.NewRouter()
	r.Use(requestid.Middleware, environment.Middleware(env))
	r.Get("/healthz", httpserver.Liveness)
	r.Get("/readyz", httpserver.Readiness(checks...))
	r.Mount("/", desk.New(toasts, events, balances, formatter, desk.WithLogger(log)).Router())

	return httpserver.New(cfg.HTTP, log).Run(ctx, r)
}
