package messages

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/khqr-bot/internal/entity/currency"
	"max.ks1230/khqr-bot/internal/logger"
)

type messageSender interface {
	SendMessage(text string, chatID int64) error
	SendModeKeyboard(text string, chatID int64, modes []currency.Mode) error
}

type chatStorage interface {
	Subscribe(ctx context.Context, chatID int64) error
	Unsubscribe(ctx context.Context, chatID int64) error
	SubscribedChats(ctx context.Context) ([]int64, error)
	CountPopups(ctx context.Context, chatID int64, since time.Time) (map[string]int64, error)
}

type popupActivator interface {
	Activate(chatID int64, mode currency.Mode)
}

type Service struct {
	tgClient messageSender
	handler  *handlerService
	storage  chatStorage
	popups   popupActivator
}

func NewService(tgClient messageSender, storage chatStorage, popups popupActivator) *Service {
	return &Service{
		tgClient: tgClient,
		handler:  newHandler(storage, popups),
		storage:  storage,
		popups:   popups,
	}
}

type Message struct {
	Text   string
	ChatID int64
}

// Callback is a press of an inline keyboard button.
type Callback struct {
	Data   string
	ChatID int64
}

func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()

	start := time.Now()
	err := s.handle(ctx, msg)
	elapsed := time.Since(start)

	observeResponse(elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

func (s *Service) handle(ctx context.Context, msg Message) error {
	resp, err := s.handler.HandleMessage(ctx, msg.Text, msg.ChatID)
	if err != nil {
		_ = s.tgClient.SendMessage("Sorry, something wrong happened...\n"+resp.text, msg.ChatID)
		return err
	}
	return s.reply(resp, msg.ChatID)
}

func (s *Service) reply(resp response, chatID int64) error {
	switch {
	case resp.keyboard:
		return s.tgClient.SendModeKeyboard(resp.text, chatID, currency.Modes())
	case resp.text != "":
		return s.tgClient.SendMessage(resp.text, chatID)
	}
	return nil
}

func (s *Service) HandleCallback(ctx context.Context, cb Callback) error {
	span, _ := opentracing.StartSpanFromContext(ctx, "handleCallback")
	defer span.Finish()
	span.SetTag("key", cb.Data)

	mode, ok := currency.Lookup(cb.Data)
	if !ok {
		ext.Error.Set(span, true)
		return s.reply(response{text: unknownCurrencyMessage, keyboard: true}, cb.ChatID)
	}
	s.popups.Activate(cb.ChatID, mode)
	return nil
}

// HandleKeyPress shows the popup for key in every subscribed chat.
func (s *Service) HandleKeyPress(ctx context.Context, key string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleKeyPress")
	defer span.Finish()
	span.SetTag("key", key)

	mode, ok := currency.Lookup(key)
	if !ok {
		keyPresses.WithLabelValues("unknown").Inc()
		logger.Warn("unknown key pressed", zap.String("key", key))
		return nil
	}
	keyPresses.WithLabelValues(mode.Key()).Inc()

	chats, err := s.storage.SubscribedChats(ctx)
	if err != nil {
		ext.Error.Set(span, true)
		return errors.Wrap(err, "handle key press")
	}

	logger.Info("broadcast key press", zap.String("currency", mode.Key()), zap.Int("chats", len(chats)))
	for _, chatID := range chats {
		s.popups.Activate(chatID, mode)
	}
	return nil
}
