package ipc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"sync"

	"log/slog"

	"promptvault/internal/app"
	"promptvault/internal/logging"
)

// Server exposes the coordinator via JSON-RPC over a Unix domain socket.
type Server struct {
	path      string
	logger    *slog.Logger
	listener  net.Listener
	rpcServer *rpc.Server

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewServer configures the IPC server at the given socket path.
func NewServer(ctx context.Context, path string, coord *app.Coordinator, logger *slog.Logger) (*Server, error) {
	if coord == nil {
		return nil, errors.New("ipc server requires coordinator")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	if err := os.RemoveAll(path); err != nil {
		return nil, fmt.Errorf("remove existing socket: %w", err)
	}

	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listen on socket: %w", err)
	}

	rpcServer := rpc.NewServer()
	srv := &service{coord: coord, logger: logger, ctx: ctx}
	if err := rpcServer.RegisterName("PromptVault", srv); err != nil {
		listener.Close()
		return nil, fmt.Errorf("register rpc service: %w", err)
	}

	serverCtx, cancel := context.WithCancel(ctx)
	return &Server{
		path:      path,
		logger:    logger,
		listener:  listener,
		rpcServer: rpcServer,
		ctx:       serverCtx,
		cancel:    cancel,
	}, nil
}

// Serve starts accepting RPC connections until the context is canceled.
func (s *Server) Serve() {
	s.logger.Debug("IPC server listening", logging.String("socket", s.path))
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				select {
				case <-s.ctx.Done():
					return
				default:
				}
				s.logger.Warn("accept failed", logging.Error(err))
				continue
			}
			s.wg.Add(1)
			go func(c net.Conn) {
				defer s.wg.Done()
				s.rpcServer.ServeCodec(jsonrpc.NewServerCodec(c))
			}(conn)
		}
	}()
}

// Close stops the server and removes the socket file.
func (s *Server) Close() {
	s.cancel()
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.wg.Wait()
	if err := os.RemoveAll(s.path); err != nil {
		s.logger.Warn("failed to remove socket",
			logging.String("socket", s.path),
			logging.Error(err))
	}
}

type service struct {
	coord  *app.Coordinator
	logger *slog.Logger
	ctx    context.Context
}

func (s *service) log() *slog.Logger {
	return logging.NewComponentLogger(s.logger, "ipc")
}

func (s *service) Ready(_ ReadyRequest, resp *ReadyResponse) error {
	url, pending := s.coord.Ready(s.ctx)
	resp.URL = url
	resp.Pending = pending
	return nil
}

func (s *service) Forward(req ForwardRequest, resp *ForwardResponse) error {
	s.log().Debug("second instance forward received",
		logging.Int("arg_count", len(req.Args)))
	resp.Matched = s.coord.ForwardSecondInstance(s.ctx, req.Args)
	return nil
}

func (s *service) OpenURL(req OpenURLRequest, _ *OpenURLResponse) error {
	s.coord.HandleOpenURL(s.ctx, req.URLs)
	return nil
}

func (s *service) Show(_ ShowRequest, _ *ShowResponse) error {
	s.coord.RaiseWindow()
	return nil
}

func (s *service) Status(_ StatusRequest, resp *StatusResponse) error {
	status := s.coord.Status(s.ctx)
	resp.Running = status.Running
	resp.PID = status.PID
	resp.LockPath = status.LockPath
	resp.SocketPath = status.SocketPath
	resp.EventAddr = status.EventAddr
	resp.Subscribers = status.Subscribers
	resp.JournalPath = status.JournalPath
	resp.Activations = status.Activations
	return nil
}
