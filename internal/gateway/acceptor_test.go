package gateway

import (
	"context"
	"net"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"max.ks1230/khqr-bot/internal/entity/keypress"
	"max.ks1230/khqr-bot/internal/gateway/mock"
)

const bufSize = 1024 * 1024

func startAcceptor(t *testing.T, publisher keyPublisher) *Sender {
	lis := bufconn.Listen(bufSize)
	server := newServer(lis, publisher)
	go server.Serve()
	t.Cleanup(server.Shutdown)

	sender, err := NewSender("bufnet", grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
		return lis.Dial()
	}))
	require.NoError(t, err)
	t.Cleanup(sender.Close)
	return sender
}

func Test_OnPress_ShouldPublishGRPCKeyPress(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	publisher := mock.NewKeyPublisherMock(m)

	publisher.ProduceKeyPressMock.
		Inspect(func(_ context.Context, press keypress.Press) {
			assert.Equal(m, "b", press.Key)
			assert.Equal(m, keypress.SourceGRPC, press.Source)
		}).
		Return(nil)

	sender := startAcceptor(t, publisher)
	err := sender.Press(context.Background(), "b")

	assert.NoError(t, err)
}

func Test_OnPressEmptyKey_ShouldBeInvalidArgument(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	publisher := mock.NewKeyPublisherMock(m)

	sender := startAcceptor(t, publisher)
	err := sender.Press(context.Background(), "")

	assert.Equal(t, codes.InvalidArgument, status.Code(errors.Cause(err)))
}

func Test_OnPressWhenPublishFails_ShouldBeUnavailable(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	publisher := mock.NewKeyPublisherMock(m)

	publisher.ProduceKeyPressMock.Return(errors.New("kafka is down"))

	sender := startAcceptor(t, publisher)
	err := sender.Press(context.Background(), "a")

	assert.Equal(t, codes.Unavailable, status.Code(errors.Cause(err)))
}
