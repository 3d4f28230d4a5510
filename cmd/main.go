package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/stylehub/order-service/docs"
	"github.com/stylehub/order-service/internal/app"
	"github.com/stylehub/order-service/internal/config"
	"github.com/stylehub/order-service/internal/handler"
	"github.com/stylehub/order-service/internal/notifier"
	"github.com/stylehub/order-service/internal/postgres"
	"github.com/stylehub/order-service/internal/repo"
	"github.com/stylehub/order-service/internal/service"
	"github.com/stylehub/order-service/pkg/cache"
	"github.com/stylehub/order-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Storefront Order Service API
// @version         1.0
// @description     Документация HTTP API сервиса заказов
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	statusNotifier := notifier.NewKafkaNotifier(logger, conf.Kafka)
	defer statusNotifier.Close()

	lifecycleService := service.NewLifecycleService(logger, txManager, orderRepo, orderCache, statusNotifier)
	queryService := service.NewQueryService(logger, orderRepo)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, lifecycleService)
	httpHandler := handler.NewHTTPHandler(logger, lifecycleService, queryService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache, cacheWarmUpAdapter{svc: lifecycleService, count: conf.Cache.Capacity})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
