package gateway

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"max.ks1230/khqr-bot/internal/logger"
)

// Sender is a client of the khqr.KeyPress service.
type Sender struct {
	conn *grpc.ClientConn
}

func NewSender(addr string, opts ...grpc.DialOption) (*Sender, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.Dial(addr, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "cannot initiate new connection")
	}
	return &Sender{conn}, nil
}

func (s *Sender) Close() {
	err := s.conn.Close()
	if err != nil {
		logger.Error("failed to close grpc connection", zap.Error(err))
	}
}

func (s *Sender) Press(ctx context.Context, key string) error {
	logger.Info("Press - start", zap.String("key", key))
	defer logger.Info("Press - end")

	out := new(emptypb.Empty)
	err := s.conn.Invoke(ctx, pressMethod, wrapperspb.String(key), out)
	return errors.Wrap(err, "press key")
}
