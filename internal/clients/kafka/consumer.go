package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/khqr-bot/internal/logger"
)

// Key presses older than maxPressAge are dropped when consumed.
const maxPressAge = time.Minute

type consumerConfig interface {
	producerConfig
	ConsumerGroup() string
}

type keyPressHandler interface {
	HandleKeyPress(ctx context.Context, key string) error
}

type Consumer struct {
	consumerGroup sarama.ConsumerGroup
	topic         string
	handler       keyPressHandler
}

func NewConsumer(cfg consumerConfig, handler keyPressHandler) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Consumer.Offsets.Initial = sarama.OffsetNewest

	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers(), cfg.ConsumerGroup(), config)
	if err != nil {
		return nil, errors.Wrap(err, "new consumer group")
	}
	return &Consumer{
		consumerGroup: consumerGroup,
		topic:         cfg.KeyPressesTopic(),
		handler:       handler,
	}, nil
}

func (c *Consumer) StartConsuming(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			err := c.consumerGroup.Consume(ctx, []string{c.topic}, c)
			if err != nil {
				return errors.Wrap(err, fmt.Sprintf("consume from %s", c.topic))
			}
		}
	}
}

func (c *Consumer) Close() {
	if err := c.consumerGroup.Close(); err != nil {
		logger.Error("failed to close consumer group", zap.Error(err))
	}
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - setup")
	return nil
}

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - cleanup")
	return nil
}

func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		c.processMessage(session.Context(), message.Value, time.Now())
		session.MarkMessage(message, "")
	}

	return nil
}

func (c *Consumer) processMessage(ctx context.Context, value []byte, now time.Time) {
	press, err := decodePress(value)
	if err != nil {
		logger.Error("cannot decode kafka message", zap.Error(err))
		return
	}

	logger.Info(
		"received key press",
		zap.String("key", press.Key),
		zap.String("source", press.Source),
		zap.Time("pressedAt", press.PressedAt),
	)
	if !press.PressedAt.IsZero() && now.Sub(press.PressedAt) > maxPressAge {
		logger.Warn("dropping stale key press", zap.String("key", press.Key))
		return
	}

	if err = c.handler.HandleKeyPress(ctx, press.Key); err != nil {
		logger.Error("failed to handle key press", zap.Error(err))
	}
}
