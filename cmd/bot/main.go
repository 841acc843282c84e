package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"max.ks1230/khqr-bot/internal/clients/cache"
	"max.ks1230/khqr-bot/internal/clients/kafka"
	"max.ks1230/khqr-bot/internal/clients/tg"
	"max.ks1230/khqr-bot/internal/config"
	"max.ks1230/khqr-bot/internal/logger"
	"max.ks1230/khqr-bot/internal/model/messages"
	"max.ks1230/khqr-bot/internal/model/popup"
	"max.ks1230/khqr-bot/internal/model/storage"
	"max.ks1230/khqr-bot/internal/tracing"
)

const serviceName = "khqr-bot"

func main() {
	logger.Info("Bot init - start")
	defer logger.Sync()

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	closer, err := tracing.Init(serviceName, conf.Jaeger())
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}
	defer closer.Close()

	client, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init client", zap.Error(err))
	}

	db, err := storage.NewPostgresStorage(conf.Postgres())
	if err != nil {
		logger.Fatal("failed to init postgres", zap.Error(err))
	}
	defer db.Close()

	fileCache, err := cache.NewMemcache(conf.Memcached())
	if err != nil {
		logger.Fatal("failed to init memcached", zap.Error(err))
	}

	popups := popup.NewRegistry(func(chatID int64) popup.Surface {
		return tg.NewSurface(client, fileCache, conf.App(), db, chatID)
	})
	msgService := messages.NewService(client, db, popups)

	consumer, err := kafka.NewConsumer(conf.Kafka(), msgService)
	if err != nil {
		logger.Fatal("failed to init kafka consumer", zap.Error(err))
	}
	defer consumer.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go serveMetrics(conf.App().MetricsListenPort())
	go func() {
		if err := consumer.StartConsuming(ctx); err != nil {
			logger.Error("key press consumer stopped", zap.Error(err))
			cancel()
		}
	}()

	logger.Info("Bot init - end")

	client.ListenUpdates(ctx, msgService)
}

func serveMetrics(port int) {
	addr := fmt.Sprintf(":%d", port)
	logger.Info("metrics listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, promhttp.Handler()); err != nil {
		logger.Error("metrics server stopped", zap.Error(err))
	}
}
