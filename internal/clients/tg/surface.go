package tg

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"max.ks1230/khqr-bot/internal/entity/currency"
	"max.ks1230/khqr-bot/internal/logger"
)

const (
	noMessage     = 0
	recordTimeout = 2 * time.Second
)

type photoClient interface {
	SendPhoto(chatID int64, photo tgbotapi.RequestFileData, caption string) (tgbotapi.Message, error)
	DeleteMessage(chatID int64, messageID int) error
}

type fileIDCache interface {
	GetFileID(key string) (string, error)
	SetFileID(key string, fileID string) error
	InvalidateFileID(key string) error
}

type popupRecorder interface {
	RecordPopup(ctx context.Context, chatID int64, currency string, shownAt time.Time) error
}

type assetResolver interface {
	AssetPath(src string) string
}

// Surface shows popups in one chat as a photo message, captioned with the
// mode's alt text, and closes them by deleting that message. Every photo
// that was actually sent is written to the popup log.
type Surface struct {
	client    photoClient
	cache     fileIDCache
	assets    assetResolver
	recorder  popupRecorder
	chatID    int64
	messageID int
}

func NewSurface(client photoClient, cache fileIDCache, assets assetResolver, recorder popupRecorder, chatID int64) *Surface {
	return &Surface{
		client:   client,
		cache:    cache,
		assets:   assets,
		recorder: recorder,
		chatID:   chatID,
	}
}

func (s *Surface) Open(mode currency.Mode) {
	s.deleteShown()

	msg, err := s.sendPhoto(mode)
	if err != nil {
		logger.Error("failed to open popup", zap.Error(err), zap.Int64("chatID", s.chatID), zap.String("currency", mode.Key()))
		return
	}
	s.messageID = msg.MessageID
	s.record(mode)

	if len(msg.Photo) == 0 {
		return
	}
	// the last size is the original upload
	fileID := msg.Photo[len(msg.Photo)-1].FileID
	if err = s.cache.SetFileID(mode.Key(), fileID); err != nil {
		logger.Error("failed to cache file id", zap.Error(err), zap.String("currency", mode.Key()))
	}
}

func (s *Surface) Close() {
	s.deleteShown()
}

func (s *Surface) sendPhoto(mode currency.Mode) (tgbotapi.Message, error) {
	fileID, err := s.cache.GetFileID(mode.Key())
	if err != nil {
		logger.Error("failed to get cached file id", zap.Error(err), zap.String("currency", mode.Key()))
	}
	if fileID != "" {
		msg, err := s.client.SendPhoto(s.chatID, tgbotapi.FileID(fileID), mode.AltText())
		if err == nil {
			return msg, nil
		}
		logger.Warn("cached file id rejected, uploading", zap.Error(err), zap.String("currency", mode.Key()))
		if err = s.cache.InvalidateFileID(mode.Key()); err != nil {
			logger.Error("failed to invalidate file id", zap.Error(err), zap.String("currency", mode.Key()))
		}
	}
	return s.client.SendPhoto(s.chatID, tgbotapi.FilePath(s.assets.AssetPath(mode.ImageSrc())), mode.AltText())
}

func (s *Surface) record(mode currency.Mode) {
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	if err := s.recorder.RecordPopup(ctx, s.chatID, mode.Key(), time.Now()); err != nil {
		logger.Error("failed to record popup", zap.Error(err), zap.Int64("chatID", s.chatID))
	}
}

func (s *Surface) deleteShown() {
	if s.messageID == noMessage {
		return
	}
	if err := s.client.DeleteMessage(s.chatID, s.messageID); err != nil {
		logger.Error("failed to close popup", zap.Error(err), zap.Int64("chatID", s.chatID))
	}
	s.messageID = noMessage
}
