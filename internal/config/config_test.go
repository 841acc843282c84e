package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
telegram:
  token: secret
app:
  assets-dir: /srv/khqr
kafka:
  brokers: [k1:9092, k2:9092]
  consumer-group: bots
  key-presses-topic: keys
memcached:
  hosts: [mc:11211]
  ttl-seconds: 60
postgres:
  host: db
  db: khqr
  username: u
  password: p
gateway:
  http-addr: ":8000"
  grpc-port: 8080
`

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_OnNewFromFile_ShouldParseAllSections(t *testing.T) {
	s, err := NewFromFile(writeConfig(t, testYAML))
	require.NoError(t, err)

	assert.Equal(t, "secret", s.Telegram().Token())
	assert.Equal(t, 60, s.Telegram().UpdateTimeoutSeconds())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, s.Kafka().Brokers())
	assert.Equal(t, "bots", s.Kafka().ConsumerGroup())
	assert.Equal(t, "keys", s.Kafka().KeyPressesTopic())
	assert.Equal(t, []string{"mc:11211"}, s.Memcached().Hosts())
	assert.Equal(t, time.Minute, s.Memcached().Expiration())
	assert.Equal(t, "user=u password=p host=db dbname=khqr sslmode=disable", s.Postgres().DSN())
	assert.Equal(t, ":8000", s.Gateway().HTTPListenAddr())
	assert.Equal(t, 8080, s.Gateway().GRPCListenPort())
	assert.Equal(t, filepath.Join("/srv/khqr", "images", "qrcode", "khr.webp"),
		s.App().AssetPath("images/qrcode/khr.webp"))
}

func Test_OnAssetPath_ShouldDefaultToWorkingDir(t *testing.T) {
	app := AppConfig{}
	assert.Equal(t, filepath.Join("images", "qrcode", "usd.webp"), app.AssetPath("images/qrcode/usd.webp"))
}

func Test_OnNewFromFile_ShouldFailOnMissingFile(t *testing.T) {
	_, err := NewFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func Test_OnNewFromFile_ShouldFailOnBrokenYAML(t *testing.T) {
	_, err := NewFromFile(writeConfig(t, "telegram: [unclosed"))
	assert.Error(t, err)
}
