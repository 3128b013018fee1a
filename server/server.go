// Package server exposes a patch.Manager over gRPC and Connect on one
// port, so patches can be inspected and changed in a running host.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/tliron/commonlog"
	"go.opentelemetry.io/otel/trace"

	"github.com/chazu/patchwork/gen/patchwork/v1/patchworkv1connect"
	"github.com/chazu/patchwork/patch"
)

// PatchServer serves the PatchService for one manager.
type PatchServer struct {
	service *PatchService
	mux     *http.ServeMux
	http    *http.Server
	log     commonlog.Logger

	// ctx is the base context of every request; Stop cancels it to end
	// watch streams.
	ctx    context.Context
	cancel context.CancelFunc
}

// ServerOption configures a PatchServer.
type ServerOption func(*serverConfig)

type serverConfig struct {
	handlerOptions []connect.HandlerOption
	readTimeout    time.Duration
	tracerProvider trace.TracerProvider
}

// WithHandlerOptions adds Connect handler options such as interceptors.
func WithHandlerOptions(opts ...connect.HandlerOption) ServerOption {
	return func(c *serverConfig) { c.handlerOptions = append(c.handlerOptions, opts...) }
}

// WithReadHeaderTimeout bounds how long a client may take to send headers.
func WithReadHeaderTimeout(d time.Duration) ServerOption {
	return func(c *serverConfig) { c.readTimeout = d }
}

// WithTracerProvider traces calls with tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) ServerOption {
	return func(c *serverConfig) { c.tracerProvider = tp }
}

// New creates a PatchServer for m.
func New(m *patch.Manager, opts ...ServerOption) *PatchServer {
	cfg := &serverConfig{readTimeout: 10 * time.Second}
	for _, opt := range opts {
		opt(cfg)
	}

	s := &PatchServer{
		service: NewPatchService(m),
		mux:     http.NewServeMux(),
		log:     commonlog.GetLogger("patchwork.server"),
	}
	opts := append([]connect.HandlerOption{
		connect.WithInterceptors(NewTracingInterceptor(cfg.tracerProvider)),
	}, cfg.handlerOptions...)
	path, handler := patchworkv1connect.NewPatchServiceHandler(s.service, opts...)
	s.mux.Handle(path, handler)
	s.ctx, s.cancel = context.WithCancel(context.Background())

	// gRPC clients speak HTTP/2 without TLS
	protocols := new(http.Protocols)
	protocols.SetHTTP1(true)
	protocols.SetUnencryptedHTTP2(true)
	s.http = &http.Server{
		Handler:           s.mux,
		ReadHeaderTimeout: cfg.readTimeout,
		BaseContext:       func(net.Listener) context.Context { return s.ctx },
		Protocols:         protocols,
	}
	return s
}

// Handler returns the server's root handler.
func (s *PatchServer) Handler() http.Handler {
	return s.mux
}

// ListenAndServe starts the HTTP server on the given address.
// The address should be in the form "host:port" or ":port".
func (s *PatchServer) ListenAndServe(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Stop is called. It returns nil
// after a clean shutdown.
func (s *PatchServer) Serve(ln net.Listener) error {
	s.log.Noticef("patch service listening on %s", ln.Addr())
	s.log.Infof("  Connect (HTTP/JSON): http://%s%s", ln.Addr(), patchworkv1connect.PatchServiceListBundlesProcedure)
	s.log.Infof("  gRPC (binary):       grpc://%s", ln.Addr())
	err := s.http.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop shuts the server down, waiting for in-flight calls until ctx ends.
// Open watch streams are closed.
func (s *PatchServer) Stop(ctx context.Context) error {
	s.cancel()
	err := s.http.Shutdown(ctx)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return s.http.Close()
	}
	return err
}
