package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.trai.ch/cookbook/internal/adapters/config"
	"go.trai.ch/cookbook/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Server serves the cookbook API.
type Server struct {
	settings config.ServerSettings
	handler  http.Handler
	logger   ports.Logger
}

// NewServer creates a Server routing requests to svc.
func NewServer(settings config.ServerSettings, svc Service, log ports.Logger) *Server {
	return &Server{
		settings: settings,
		handler:  NewRouter(svc, log),
		logger:   log,
	}
}

// NewRouter builds the chi router with the request ID, access log and recovery middleware.
func NewRouter(svc Service, log ports.Logger) http.Handler {
	h := &handlers{svc: svc}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(AccessLog(log))
	r.Use(Recoverer(log))

	r.Post("/parse", h.parse)
	r.Post("/entry", h.addEntry)
	r.Get("/summary", h.summary)
	r.Get("/healthz", healthz)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Serve listens on the configured address until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.settings.Address)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to listen"), "address", s.settings.Address)
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener serves on ln until ctx is cancelled, then drains in-flight requests
// for at most the shutdown timeout.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadTimeout:       s.settings.ReadTimeout,
		ReadHeaderTimeout: s.settings.ReadTimeout,
		WriteTimeout:      s.settings.WriteTimeout,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return zerr.Wrap(err, "server stopped")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		timeout := s.settings.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return zerr.Wrap(err, "graceful shutdown failed")
		}
		s.logger.Info("server stopped")
		return nil
	})
	return g.Wait()
}
