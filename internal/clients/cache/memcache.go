package cache

import (
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/khqr-bot/internal/logger"
)

const fileIDPrefix = "khqr:file:"

type MemcacheClient struct {
	client     *memcache.Client
	expiration int32
}

type config interface {
	Hosts() []string
	Expiration() time.Duration
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{
		client:     mc,
		expiration: int32(config.Expiration().Seconds()),
	}, mc.Ping()
}

func formatKey(key string) string {
	return fileIDPrefix + key
}

// GetFileID returns the Telegram file id cached for a currency key, or an
// empty string on a miss.
func (mc *MemcacheClient) GetFileID(key string) (string, error) {
	item, err := mc.client.Get(formatKey(key))
	if errors.Is(err, memcache.ErrCacheMiss) {
		logger.Debug("file id cache miss", zap.String("currency", key))
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "get file id")
	}
	return string(item.Value), nil
}

func (mc *MemcacheClient) SetFileID(key string, fileID string) error {
	logger.Info("cache file id", zap.String("currency", key))
	err := mc.client.Set(&memcache.Item{
		Key:        formatKey(key),
		Value:      []byte(fileID),
		Expiration: mc.expiration,
	})
	return errors.Wrap(err, "set file id")
}

func (mc *MemcacheClient) InvalidateFileID(key string) error {
	err := mc.client.Delete(formatKey(key))
	if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		return errors.Wrap(err, "invalidate file id")
	}
	return nil
}
