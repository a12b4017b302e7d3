package namingapi

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrymomot/basenames/pkg/config"
	"github.com/dmitrymomot/basenames/pkg/logger"
)

const defaultShutdownTimeout = 5 * time.Second

// Server wraps http.Server with graceful shutdown and logging.
type Server struct {
	cfg config.HTTP
	log *slog.Logger

	mu   sync.Mutex
	srv  *http.Server
	once sync.Once
	addr chan net.Addr
}

// NewServer returns a server configured from cfg. A nil logger discards output.
func NewServer(cfg config.HTTP, log *slog.Logger) *Server {
	if log == nil {
		log = logger.Discard()
	}
	return &Server{
		cfg:  cfg,
		log:  log.With(logger.Component("http")),
		addr: make(chan net.Addr, 1),
	}
}

// Addr blocks until the listener is bound and returns its address, or
// returns nil if ctx ends first.
func (s *Server) Addr(ctx context.Context) net.Addr {
	select {
	case a := <-s.addr:
		s.addr <- a
		return a
	case <-ctx.Done():
		return nil
	}
}

// Run serves handler until ctx is cancelled or the process receives SIGINT
// or SIGTERM, then shuts down gracefully.
// Listener failures are wrapped with ErrStart.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, errors.New("server already running"))
	}
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, err)
	}
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      handler,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(s.log.Handler(), slog.LevelError),
	}
	s.srv = srv
	s.mu.Unlock()
	s.addr <- ln.Addr()
	s.log.Info("server started", slog.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	var runErr error
	select {
	case <-ctx.Done():
		runErr = s.shutdownAndWait(errCh)
	case sig := <-stop:
		s.log.Info("signal received", slog.String("signal", sig.String()))
		runErr = s.shutdownAndWait(errCh)
	case runErr = <-errCh:
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		if errors.Is(runErr, ErrShutdown) {
			return runErr
		}
		return errors.Join(ErrStart, runErr)
	}
	return nil
}

func (s *Server) shutdownAndWait(errCh <-chan error) error {
	if err := s.Shutdown(context.Background()); err != nil {
		<-errCh
		return err
	}
	return <-errCh
}

// Shutdown stops the server, waiting up to the configured shutdown timeout
// for in-flight requests. It is safe for repeated calls.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.once.Do(func() {
		s.mu.Lock()
		srv := s.srv
		s.mu.Unlock()
		if srv == nil {
			return
		}
		timeout := s.cfg.ShutdownTimeout
		if timeout <= 0 {
			timeout = defaultShutdownTimeout
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		err = srv.Shutdown(ctx)
		s.log.Info("server stopped")
	})

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
