package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/khqr-bot/internal/clients/kafka/mock"
	"max.ks1230/khqr-bot/internal/entity/keypress"
)

func Test_OnDecodeEncodedPress_ShouldKeepFields(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 123, time.UTC)
	raw, err := encodePress(keypress.Press{Key: "a", Source: keypress.SourceHTTP, PressedAt: at})
	require.NoError(t, err)

	press, err := decodePress(raw)
	require.NoError(t, err)
	assert.Equal(t, "a", press.Key)
	assert.Equal(t, keypress.SourceHTTP, press.Source)
	assert.True(t, at.Equal(press.PressedAt))
}

func Test_OnDecodeGarbage_ShouldFail(t *testing.T) {
	_, err := decodePress([]byte{0xff, 0x01, 0x02})
	assert.Error(t, err)
}

func Test_OnProcessFreshPress_ShouldCallHandler(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	handler := mock.NewKeyPressHandlerMock(m)

	now := time.Now()
	raw, err := encodePress(keypress.Press{Key: "b", Source: keypress.SourceGRPC, PressedAt: now})
	require.NoError(t, err)

	handler.HandleKeyPressMock.
		Inspect(func(_ context.Context, key string) {
			assert.Equal(m, "b", key)
		}).
		Return(nil)

	c := &Consumer{handler: handler}
	c.processMessage(context.Background(), raw, now.Add(time.Second))
}

func Test_OnProcessStalePress_ShouldDropIt(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	handler := mock.NewKeyPressHandlerMock(m)

	pressedAt := time.Now()
	raw, err := encodePress(keypress.Press{Key: "a", Source: keypress.SourceHTTP, PressedAt: pressedAt})
	require.NoError(t, err)

	c := &Consumer{handler: handler}
	c.processMessage(context.Background(), raw, pressedAt.Add(maxPressAge+time.Second))

	assert.Equal(t, uint64(0), handler.HandleKeyPressAfterCounter())
}

func Test_OnProcessGarbage_ShouldNotCallHandler(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	handler := mock.NewKeyPressHandlerMock(m)

	c := &Consumer{handler: handler}
	c.processMessage(context.Background(), []byte("not a proto"), time.Now())

	assert.Equal(t, uint64(0), handler.HandleKeyPressAfterCounter())
}
