package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/textscrub/textscrub/censor"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = ":8080"

// shutdownGrace bounds how long in-flight requests may drain after the serve
// context is canceled.
const shutdownGrace = 5 * time.Second

// Config carries everything a Server needs. Zero values fall back to
// sensible defaults, so server.New(server.Config{}) is usable as-is.
type Config struct {
	// Addr is the host:port to listen on.
	Addr string
	// Logger receives one line per request plus lifecycle events.
	Logger hclog.Logger
	// Censorer handles /v1/censor calls. Nil uses the stock pipeline backed
	// by the process-wide dictionary.
	Censorer *censor.Censorer
	// Defaults is applied wholesale to censor payloads that carry neither
	// kinds nor a pattern, letting a config file decide what an unadorned
	// request means.
	Defaults censor.Request
}

// Server exposes the censoring pipeline and dictionary over HTTP.
type Server struct {
	addr     string
	log      hclog.Logger
	censorer *censor.Censorer
	defaults censor.Request
}

// New builds a Server from cfg.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = hclog.L()
	}
	censorer := cfg.Censorer
	if censorer == nil {
		censorer = censor.New(nil)
	}
	addr := cfg.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	return &Server{
		addr:     addr,
		log:      logger,
		censorer: censorer,
		defaults: cfg.Defaults,
	}
}

// Routes builds the router with middleware and every endpoint attached.
func (s *Server) Routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(requestID, s.logRequests, s.recoverPanics)

	r.HandleFunc("/v1/censor", s.handleCensor).Methods(http.MethodPost)
	r.HandleFunc("/v1/words", s.handleWords).Methods(http.MethodPost)
	r.HandleFunc("/v1/health", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", metricsHandler()).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, fmt.Errorf("no route for %s %s", r.Method, r.URL.Path))
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed for %s", r.Method, r.URL.Path))
	})
	return r
}

// ListenAndServe blocks serving HTTP until ctx is canceled, then drains
// in-flight requests before returning. A nil return means a clean shutdown.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.log.Info("shutting down", "grace", shutdownGrace)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
