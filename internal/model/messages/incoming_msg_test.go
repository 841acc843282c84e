package messages

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/khqr-bot/internal/entity/currency"
	"max.ks1230/khqr-bot/internal/model/messages/mock"
	"max.ks1230/khqr-bot/internal/model/storage"
)

func Test_OnStartCommand_ShouldSubscribeAndShowKeyboard(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	popups := mock.NewPopupActivatorMock(m)
	db := storage.NewInMemStorage()

	sender.SendModeKeyboardMock.
		Expect(helloMessage, int64(123), currency.Modes()).
		Return(nil)

	model := NewService(sender, db, popups)
	err := model.HandleIncomingMessage(ctx, Message{
		Text:   "/start",
		ChatID: 123,
	})

	assert.NoError(t, err)
	chats, _ := db.SubscribedChats(ctx)
	assert.Equal(t, []int64{123}, chats)
}

func Test_OnStopCommand_ShouldUnsubscribe(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	popups := mock.NewPopupActivatorMock(m)
	db := storage.NewInMemStorage()
	require.NoError(t, db.Subscribe(ctx, 123))

	sender.SendMessageMock.
		Expect(goodbyeMessage, int64(123)).
		Return(nil)

	model := NewService(sender, db, popups)
	err := model.HandleIncomingMessage(ctx, Message{
		Text:   "/stop",
		ChatID: 123,
	})

	assert.NoError(t, err)
	chats, _ := db.SubscribedChats(ctx)
	assert.Empty(t, chats)
}

func Test_OnCurrencyKeyText_ShouldActivatePopupWithoutReply(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	popups := mock.NewPopupActivatorMock(m)

	popups.ActivateMock.Expect(int64(123), currency.Riel).Return()

	model := NewService(sender, storage.NewInMemStorage(), popups)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   " a ",
		ChatID: 123,
	})

	assert.NoError(t, err)
	assert.Equal(t, uint64(0), sender.SendMessageAfterCounter())
}

func Test_OnUnknownText_ShouldAnswerWithKeyboard(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	popups := mock.NewPopupActivatorMock(m)

	sender.SendModeKeyboardMock.
		Expect(unknownCurrencyMessage, int64(123), currency.Modes()).
		Return(nil)

	model := NewService(sender, storage.NewInMemStorage(), popups)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "z",
		ChatID: 123,
	})

	assert.NoError(t, err)
	assert.Equal(t, uint64(0), popups.ActivateAfterCounter())
}

func Test_OnCallback_ShouldActivatePopup(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	popups := mock.NewPopupActivatorMock(m)

	popups.ActivateMock.Expect(int64(7), currency.Dollar).Return()

	model := NewService(sender, storage.NewInMemStorage(), popups)
	err := model.HandleCallback(context.Background(), Callback{Data: "b", ChatID: 7})

	assert.NoError(t, err)
}

func Test_OnUnknownCallback_ShouldNotActivate(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	popups := mock.NewPopupActivatorMock(m)

	sender.SendModeKeyboardMock.
		Expect(unknownCurrencyMessage, int64(7), currency.Modes()).
		Return(nil)

	model := NewService(sender, storage.NewInMemStorage(), popups)
	err := model.HandleCallback(context.Background(), Callback{Data: "z", ChatID: 7})

	assert.NoError(t, err)
}

func Test_OnKeyPress_ShouldActivateEverySubscribedChat(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	popups := mock.NewPopupActivatorMock(m)
	db := storage.NewInMemStorage()
	require.NoError(t, db.Subscribe(ctx, 1))
	require.NoError(t, db.Subscribe(ctx, 2))

	activated := make([]int64, 0)
	popups.ActivateMock.Set(func(chatID int64, mode currency.Mode) {
		assert.Equal(m, currency.Riel, mode)
		activated = append(activated, chatID)
	})

	model := NewService(sender, db, popups)
	err := model.HandleKeyPress(ctx, "a")

	assert.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, activated)
}

func Test_OnUnknownKeyPress_ShouldDropIt(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	popups := mock.NewPopupActivatorMock(m)
	db := storage.NewInMemStorage()
	require.NoError(t, db.Subscribe(ctx, 1))

	model := NewService(sender, db, popups)
	err := model.HandleKeyPress(ctx, "z")

	assert.NoError(t, err)
	assert.Equal(t, uint64(0), popups.ActivateAfterCounter())
}

func Test_OnStatsWithoutPopups_ShouldSayNothingShown(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	popups := mock.NewPopupActivatorMock(m)

	sender.SendMessageMock.
		Expect(noPopupsMessage, int64(5)).
		Return(nil)

	model := NewService(sender, storage.NewInMemStorage(), popups)
	err := model.HandleIncomingMessage(context.Background(), Message{Text: "/stats", ChatID: 5})

	assert.NoError(t, err)
}

func Test_OnStats_ShouldCountTodaysPopups(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	popups := mock.NewPopupActivatorMock(m)
	db := storage.NewInMemStorage()
	require.NoError(t, db.RecordPopup(ctx, 5, "a", time.Now()))
	require.NoError(t, db.RecordPopup(ctx, 5, "a", time.Now()))
	require.NoError(t, db.RecordPopup(ctx, 5, "b", time.Now()))

	sender.SendMessageMock.
		Inspect(func(text string, chatID int64) {
			assert.Contains(m, text, "Today: 3 (Khmer Riel: 2, US Dollar: 1)")
		}).
		Return(nil)

	model := NewService(sender, db, popups)
	err := model.HandleIncomingMessage(ctx, Message{Text: "/stats", ChatID: 5})

	assert.NoError(t, err)
}
