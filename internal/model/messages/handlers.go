package messages

import (
	"context"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"max.ks1230/khqr-bot/internal/entity/currency"
)

const (
	helloMessage           = "Hello! I am KHQR bot 🤖\nPick a currency to show its payment QR code"
	goodbyeMessage         = "You will no longer receive QR codes from the counter. Send /start to come back"
	unknownCurrencyMessage = "I don't know this currency, pick one below"
	noPopupsMessage        = "No QR codes were shown yet"

	cannotSubscribeMessage   = "Can't subscribe you atm. Try later"
	cannotUnsubscribeMessage = "Can't unsubscribe you atm. Try later"
	cannotGetStatsMessage    = "Can't get your stats atm. Try later"
)

const (
	startCommand = "/start"
	stopCommand  = "/stop"
	statsCommand = "/stats"
)

type response struct {
	text     string
	keyboard bool
}

type handler func(ctx context.Context, arg string, chatID int64) (response, error)

type handlerMap map[string]handler

type handlerService struct {
	handlersMap handlerMap
	storage     chatStorage
	popups      popupActivator
}

func newHandler(storage chatStorage, popups popupActivator) *handlerService {
	res := &handlerService{
		handlersMap: nil,
		storage:     storage,
		popups:      popups,
	}
	res.handlersMap = newMap(res)
	return res
}

func (s *handlerService) HandleMessage(ctx context.Context, text string, chatID int64) (response, error) {
	cmd, arg := parseCommand(text)

	handler, ok := s.handlersMap[cmd]
	if ok {
		return handler(ctx, arg, chatID)
	}
	return response{text: unknownCurrencyMessage, keyboard: true}, nil
}

func newMap(s *handlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[stopCommand] = s.handleStop
	m[statsCommand] = s.handleStats

	m[""] = s.handleNoCommand

	return m
}

func (s *handlerService) handleStart(ctx context.Context, _ string, chatID int64) (response, error) {
	if err := s.storage.Subscribe(ctx, chatID); err != nil {
		return response{text: cannotSubscribeMessage}, errors.Wrap(err, "handle start")
	}
	return response{text: helloMessage, keyboard: true}, nil
}

func (s *handlerService) handleStop(ctx context.Context, _ string, chatID int64) (response, error) {
	if err := s.storage.Unsubscribe(ctx, chatID); err != nil {
		return response{text: cannotUnsubscribeMessage}, errors.Wrap(err, "handle stop")
	}
	return response{text: goodbyeMessage}, nil
}

func (s *handlerService) handleStats(ctx context.Context, _ string, chatID int64) (response, error) {
	windows := []statsWindow{
		{title: "Today", since: now.BeginningOfDay()},
		{title: "This week", since: now.BeginningOfWeek()},
		{title: "This month", since: now.BeginningOfMonth()},
	}

	for i := range windows {
		counts, err := s.storage.CountPopups(ctx, chatID, windows[i].since)
		if err != nil {
			return response{text: cannotGetStatsMessage}, errors.Wrap(err, "handle stats")
		}
		windows[i].counts = counts
	}

	if totalOf(windows[len(windows)-1].counts) == 0 {
		return response{text: noPopupsMessage}, nil
	}
	return response{text: formatStats(windows)}, nil
}

// Plain text carrying a currency key shows its popup without a reply.
func (s *handlerService) handleNoCommand(_ context.Context, arg string, chatID int64) (response, error) {
	mode, ok := currency.Lookup(arg)
	if !ok {
		return response{text: unknownCurrencyMessage, keyboard: true}, nil
	}
	s.popups.Activate(chatID, mode)
	return response{}, nil
}
