package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/validify/modules/playground"
	"github.com/dmitrymomot/validify/pkg/config"
	"github.com/dmitrymomot/validify/pkg/formstore"
	"github.com/dmitrymomot/validify/pkg/httpserver"
	"github.com/dmitrymomot/validify/pkg/logger"
)

type appConfig struct {
	Env      string        `env:"APP_ENV" envDefault:"development"`
	Name     string        `env:"APP_NAME" envDefault:"validify-playground"`
	LogLevel string        `env:"LOG_LEVEL"`
	FormTTL  time.Duration `env:"FORM_TTL" envDefault:"30m"`

	HTTP  httpserver.Config
	Redis formstore.RedisConfig
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextValue("request_id", middleware.RequestIDKey),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	log := logger.New(opts...)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("playground stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	var (
		store  formstore.Store
		checks []httpserver.Check
	)

	if cfg.Redis.ConnectionURL != "" {
		client, err := formstore.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()

		rs := formstore.NewRedisStore(client, cfg.Redis.KeyPrefix, cfg.FormTTL)
		store = rs
		checks = append(checks, httpserver.Check{Name: "redis", Fn: rs.Ping})
		log.Info("using redis form store")
	} else {
		ms := formstore.NewMemoryStore(cfg.FormTTL, time.Minute)
		defer ms.Close()
		store = ms
		log.Info("using in-memory form store")
	}

	pg, err := playground.New(store, playground.WithLogger(log))
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/health", httpserver.Readiness(log, checks...))
	r.Mount("/", pg.Router())

	return httpserver.New(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, r)
}
