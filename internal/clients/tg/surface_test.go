package tg

import (
	"context"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"max.ks1230/khqr-bot/internal/clients/tg/mock"
	appconfig "max.ks1230/khqr-bot/internal/config"
	"max.ks1230/khqr-bot/internal/entity/currency"
)

var assets = &appconfig.AppConfig{Assets: "/srv/khqr"}

func expectRecord(m *minimock.Controller, recorder *mock.PopupRecorderMock, chatID int64, key string) {
	recorder.RecordPopupMock.
		Inspect(func(_ context.Context, gotChatID int64, gotKey string, shownAt time.Time) {
			assert.Equal(m, chatID, gotChatID)
			assert.Equal(m, key, gotKey)
			assert.False(m, shownAt.IsZero())
		}).
		Return(nil)
}

func Test_OnOpenWithoutCachedFile_ShouldUploadAndCacheFileID(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	client := mock.NewPhotoClientMock(m)
	cache := mock.NewFileIDCacheMock(m)
	recorder := mock.NewPopupRecorderMock(m)

	cache.GetFileIDMock.Expect("a").Return("", nil)
	client.SendPhotoMock.
		Expect(int64(9), tgbotapi.FilePath("/srv/khqr/images/qrcode/khr.webp"), "Khmer Riel").
		Return(tgbotapi.Message{
			MessageID: 10,
			Photo:     []tgbotapi.PhotoSize{{FileID: "small"}, {FileID: "big"}},
		}, nil)
	cache.SetFileIDMock.Expect("a", "big").Return(nil)
	expectRecord(m, recorder, 9, "a")

	surface := NewSurface(client, cache, assets, recorder, 9)
	surface.Open(currency.Riel)

	assert.Equal(t, 10, surface.messageID)
	assert.Equal(t, uint64(1), recorder.RecordPopupAfterCounter())
}

func Test_OnOpenWithCachedFile_ShouldSendByFileID(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	client := mock.NewPhotoClientMock(m)
	cache := mock.NewFileIDCacheMock(m)
	recorder := mock.NewPopupRecorderMock(m)

	cache.GetFileIDMock.Expect("b").Return("cached", nil)
	client.SendPhotoMock.
		Expect(int64(9), tgbotapi.FileID("cached"), "US Dollar").
		Return(tgbotapi.Message{MessageID: 11}, nil)
	expectRecord(m, recorder, 9, "b")

	surface := NewSurface(client, cache, assets, recorder, 9)
	surface.Open(currency.Dollar)

	assert.Equal(t, 11, surface.messageID)
	assert.Equal(t, uint64(0), cache.SetFileIDAfterCounter())
	assert.Equal(t, uint64(0), cache.InvalidateFileIDAfterCounter())
}

func Test_OnRejectedFileID_ShouldInvalidateAndFallBackToUpload(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	client := mock.NewPhotoClientMock(m)
	cache := mock.NewFileIDCacheMock(m)
	recorder := mock.NewPopupRecorderMock(m)

	cache.GetFileIDMock.Return("stale", nil)
	client.SendPhotoMock.
		When(int64(9), tgbotapi.FileID("stale"), "US Dollar").
		Then(tgbotapi.Message{}, errors.New("wrong file identifier")).
		SendPhotoMock.
		When(int64(9), tgbotapi.FilePath("/srv/khqr/images/qrcode/usd.webp"), "US Dollar").
		Then(tgbotapi.Message{MessageID: 12, Photo: []tgbotapi.PhotoSize{{FileID: "fresh"}}}, nil)
	cache.InvalidateFileIDMock.Expect("b").Return(nil)
	cache.SetFileIDMock.Expect("b", "fresh").Return(nil)
	expectRecord(m, recorder, 9, "b")

	surface := NewSurface(client, cache, assets, recorder, 9)
	surface.Open(currency.Dollar)

	assert.Equal(t, 12, surface.messageID)
	assert.Equal(t, uint64(1), cache.InvalidateFileIDAfterCounter())
}

func Test_OnRejectedFileIDAndFailedUpload_ShouldStillInvalidate(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	client := mock.NewPhotoClientMock(m)
	cache := mock.NewFileIDCacheMock(m)
	recorder := mock.NewPopupRecorderMock(m)

	cache.GetFileIDMock.Return("stale", nil)
	client.SendPhotoMock.Return(tgbotapi.Message{}, errors.New("network"))
	cache.InvalidateFileIDMock.Expect("a").Return(nil)

	surface := NewSurface(client, cache, assets, recorder, 9)
	surface.Open(currency.Riel)

	assert.Equal(t, noMessage, surface.messageID)
	assert.Equal(t, uint64(1), cache.InvalidateFileIDAfterCounter())
	assert.Equal(t, uint64(0), recorder.RecordPopupAfterCounter())
}

func Test_OnClose_ShouldDeleteShownMessageOnce(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	client := mock.NewPhotoClientMock(m)
	cache := mock.NewFileIDCacheMock(m)
	recorder := mock.NewPopupRecorderMock(m)

	cache.GetFileIDMock.Return("cached", nil)
	client.SendPhotoMock.Return(tgbotapi.Message{MessageID: 13}, nil)
	client.DeleteMessageMock.Expect(int64(9), 13).Return(nil)
	recorder.RecordPopupMock.Return(nil)

	surface := NewSurface(client, cache, assets, recorder, 9)
	surface.Open(currency.Riel)
	surface.Close()
	surface.Close()

	assert.Equal(t, uint64(1), client.DeleteMessageAfterCounter())
}

func Test_OnOpenOtherMode_ShouldReplaceShownMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	client := mock.NewPhotoClientMock(m)
	cache := mock.NewFileIDCacheMock(m)
	recorder := mock.NewPopupRecorderMock(m)

	cache.GetFileIDMock.Return("cached", nil)
	client.SendPhotoMock.
		When(int64(9), tgbotapi.FileID("cached"), "Khmer Riel").
		Then(tgbotapi.Message{MessageID: 20}, nil).
		SendPhotoMock.
		When(int64(9), tgbotapi.FileID("cached"), "US Dollar").
		Then(tgbotapi.Message{MessageID: 21}, nil)
	client.DeleteMessageMock.Expect(int64(9), 20).Return(nil)
	recorder.RecordPopupMock.Return(nil)

	surface := NewSurface(client, cache, assets, recorder, 9)
	surface.Open(currency.Riel)
	surface.Open(currency.Dollar)

	assert.Equal(t, 21, surface.messageID)
	assert.Equal(t, uint64(2), recorder.RecordPopupAfterCounter())
}

func Test_OnFailedSend_ShouldStayClosedAndNotRecord(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	client := mock.NewPhotoClientMock(m)
	cache := mock.NewFileIDCacheMock(m)
	recorder := mock.NewPopupRecorderMock(m)

	cache.GetFileIDMock.Return("", errors.New("memcache down"))
	client.SendPhotoMock.Return(tgbotapi.Message{}, errors.New("network"))

	surface := NewSurface(client, cache, assets, recorder, 9)
	surface.Open(currency.Riel)
	surface.Close()

	assert.Equal(t, noMessage, surface.messageID)
	assert.Equal(t, uint64(0), client.DeleteMessageAfterCounter())
	assert.Equal(t, uint64(0), recorder.RecordPopupAfterCounter())
}

func Test_OnFailedRecord_ShouldKeepPopupShown(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	client := mock.NewPhotoClientMock(m)
	cache := mock.NewFileIDCacheMock(m)
	recorder := mock.NewPopupRecorderMock(m)

	cache.GetFileIDMock.Return("cached", nil)
	client.SendPhotoMock.Return(tgbotapi.Message{MessageID: 30}, nil)
	recorder.RecordPopupMock.Return(errors.New("db down"))

	surface := NewSurface(client, cache, assets, recorder, 9)
	surface.Open(currency.Dollar)

	assert.Equal(t, 30, surface.messageID)
}
