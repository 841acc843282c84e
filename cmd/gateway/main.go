package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"max.ks1230/khqr-bot/internal/clients/kafka"
	"max.ks1230/khqr-bot/internal/config"
	"max.ks1230/khqr-bot/internal/gateway"
	"max.ks1230/khqr-bot/internal/logger"
	"max.ks1230/khqr-bot/internal/tracing"
)

const (
	serviceName     = "khqr-gateway"
	shutdownTimeout = 5 * time.Second
)

func main() {
	logger.Info("Gateway init - start")
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

	producer, err := kafka.NewProducer(conf.Kafka())
	if err != nil {
		logger.Fatal("failed to init kafka producer", zap.Error(err))
	}
	defer producer.Close()

	acceptor, err := gateway.NewServer(conf.Gateway().GRPCListenPort(), producer)
	if err != nil {
		logger.Fatal("failed to init grpc server", zap.Error(err))
	}
	go acceptor.Serve()
	defer acceptor.Shutdown()

	server := &http.Server{
		Addr:              conf.Gateway().HTTPListenAddr(),
		Handler:           gateway.NewHandler(producer),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("http server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to serve http", zap.Error(err))
		}
	}()

	logger.Info("Gateway init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	<-ctx.Done()

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to stop http server", zap.Error(err))
	}
}
