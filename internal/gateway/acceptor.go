package gateway

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"max.ks1230/khqr-bot/internal/entity/keypress"
	"max.ks1230/khqr-bot/internal/logger"
)

const (
	keyPressServiceName = "khqr.KeyPress"
	pressMethod         = "/" + keyPressServiceName + "/Press"
)

// KeyPressServer is the server API of the khqr.KeyPress service.
type KeyPressServer interface {
	Press(ctx context.Context, in *wrapperspb.StringValue) (*emptypb.Empty, error)
}

var keyPressServiceDesc = grpc.ServiceDesc{
	ServiceName: keyPressServiceName,
	HandlerType: (*KeyPressServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Press",
			Handler:    pressHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "khqr/keypress.proto",
}

func pressHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KeyPressServer).Press(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: pressMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KeyPressServer).Press(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

type AcceptorServer struct {
	publisher keyPublisher
	server    *grpc.Server
	lis       net.Listener
}

func NewServer(port int, publisher keyPublisher) (*AcceptorServer, error) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, errors.Wrap(err, "cannot create server")
	}
	return newServer(lis, publisher), nil
}

func newServer(lis net.Listener, publisher keyPublisher) *AcceptorServer {
	rpcServer := grpc.NewServer()
	service := &AcceptorServer{
		publisher: publisher,
		server:    rpcServer,
		lis:       lis,
	}
	rpcServer.RegisterService(&keyPressServiceDesc, service)
	return service
}

func (s *AcceptorServer) Serve() {
	logger.Info("gRPC server listening", zap.Any("addr", s.lis.Addr()))
	err := s.server.Serve(s.lis)
	if err != nil {
		logger.Error("failed to serve gPRC", zap.Error(err))
	}
}

func (s *AcceptorServer) Shutdown() {
	s.server.GracefulStop()
	logger.Info("grpc server stopped")
}

func (s *AcceptorServer) Press(ctx context.Context, in *wrapperspb.StringValue) (*emptypb.Empty, error) {
	start := time.Now()
	res, err := s.press(ctx, in.GetValue())
	observeRequest(keypress.SourceGRPC, int(status.Code(err)), time.Since(start))
	return res, err
}

func (s *AcceptorServer) press(ctx context.Context, key string) (*emptypb.Empty, error) {
	if key == "" {
		return nil, status.Error(codes.InvalidArgument, "key is required")
	}

	err := s.publisher.ProduceKeyPress(ctx, keypress.Press{
		Key:       key,
		Source:    keypress.SourceGRPC,
		PressedAt: time.Now(),
	})
	if err != nil {
		logger.Error("failed to publish key press", zap.Error(err), zap.String("key", key))
		return nil, status.Error(codes.Unavailable, "cannot broadcast key")
	}
	return &emptypb.Empty{}, nil
}
