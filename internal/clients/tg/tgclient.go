package tg

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/khqr-bot/internal/entity/currency"
	"max.ks1230/khqr-bot/internal/logger"
	"max.ks1230/khqr-bot/internal/model/messages"
)

const (
	defaultUpdateOffset = 0
	timeoutSeconds      = 5
)

type config interface {
	Token() string
	UpdateTimeoutSeconds() int
}

type Client struct {
	client        *tgbotapi.BotAPI
	updateTimeout int
}

func New(config config) (*Client, error) {
	client, err := tgbotapi.NewBotAPI(config.Token())
	if err != nil {
		return nil, errors.Wrap(err, "cannot NewBotApi")
	}
	return &Client{client: client, updateTimeout: config.UpdateTimeoutSeconds()}, nil
}

func (c *Client) SendMessage(text string, chatID int64) error {
	_, err := c.client.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return errors.Wrap(err, "client.Send")
	}
	return nil
}

// SendModeKeyboard sends text with one inline button per currency mode.
func (c *Client) SendModeKeyboard(text string, chatID int64, modes []currency.Mode) error {
	buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(modes))
	for _, m := range modes {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(m.AltText(), m.Key()))
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(buttons...))

	_, err := c.client.Send(msg)
	if err != nil {
		return errors.Wrap(err, "client.Send keyboard")
	}
	return nil
}

func (c *Client) SendPhoto(chatID int64, photo tgbotapi.RequestFileData, caption string) (tgbotapi.Message, error) {
	cfg := tgbotapi.NewPhoto(chatID, photo)
	cfg.Caption = caption

	msg, err := c.client.Send(cfg)
	if err != nil {
		return tgbotapi.Message{}, errors.Wrap(err, "client.Send photo")
	}
	return msg, nil
}

func (c *Client) DeleteMessage(chatID int64, messageID int) error {
	_, err := c.client.Request(tgbotapi.NewDeleteMessage(chatID, messageID))
	if err != nil {
		return errors.Wrap(err, "client.Request delete")
	}
	return nil
}

func (c *Client) ListenUpdates(ctx context.Context, msgModel *messages.Service) {
	u := tgbotapi.NewUpdate(defaultUpdateOffset)
	u.Timeout = c.updateTimeout

	updates := c.client.GetUpdatesChan(u)

	logger.Info("Start listening for messages")

	for {
		select {
		case <-ctx.Done():
			c.client.StopReceivingUpdates()
			logger.Info("Stop listening for messages")
			return
		case update := <-updates:
			c.listenOnce(ctx, update, msgModel)
		}
	}
}

func (c *Client) listenOnce(ctx context.Context, update tgbotapi.Update, msgModel *messages.Service) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*timeoutSeconds)
	defer cancel()

	switch {
	case update.Message != nil:
		logger.Info(update.Message.Text, zap.Int64("chatID", update.Message.Chat.ID))

		err := msgModel.HandleIncomingMessage(ctx, messages.Message{
			Text:   update.Message.Text,
			ChatID: update.Message.Chat.ID,
		})
		if err != nil {
			logger.Error("error processing message:", zap.Error(err))
		}
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		cb := update.CallbackQuery
		logger.Info("callback", zap.String("data", cb.Data), zap.Int64("chatID", cb.Message.Chat.ID))

		if _, err := c.client.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
			logger.Error("cannot answer callback", zap.Error(err))
		}

		err := msgModel.HandleCallback(ctx, messages.Callback{
			Data:   cb.Data,
			ChatID: cb.Message.Chat.ID,
		})
		if err != nil {
			logger.Error("error processing callback:", zap.Error(err))
		}
	}
}
