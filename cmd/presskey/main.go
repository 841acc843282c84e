package main

import (
	"context"
	"flag"
	"time"

	"go.uber.org/zap"
	"max.ks1230/khqr-bot/internal/entity/currency"
	"max.ks1230/khqr-bot/internal/gateway"
	"max.ks1230/khqr-bot/internal/logger"
)

const pressTimeout = 5 * time.Second

func main() {
	addr := flag.String("addr", "127.0.0.1:8080", "gateway gRPC address")
	flag.Parse()

	if flag.NArg() != 1 {
		logger.Fatal("usage: presskey [-addr host:port] <key>", zap.Strings("keys", currency.Keys()))
	}
	key := flag.Arg(0)

	sender, err := gateway.NewSender(*addr)
	if err != nil {
		logger.Fatal("failed to connect", zap.Error(err))
	}
	defer sender.Close()

	ctx, cancel := context.WithTimeout(context.Background(), pressTimeout)
	defer cancel()

	if err = sender.Press(ctx, key); err != nil {
		logger.Error("failed to press key", zap.Error(err), zap.String("key", key))
		return
	}
	logger.Info("key pressed", zap.String("key", key))
}
