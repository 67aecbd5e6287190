package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/levenlabs/go-lflag"
	"github.com/raterudder/energyusage/pkg/log"
	"github.com/raterudder/energyusage/pkg/types"
)

const defaultMaxBodyBytes = 1 << 20

// Calculator is the subset of energy.Calculator the server needs.
type Calculator interface {
	Period() int
	Usage(profile types.Profile) (int, error)
	Savings(profile types.Profile) (int, error)
	Report(profile types.Profile) (types.Report, error)
	ValidateDay(day float64) (int, error)
	ReportForDay(profile types.Profile, day int) (types.Report, error)
}

// Server exposes the energy calculations over HTTP.
type Server struct {
	calc Calculator

	listenAddr   string
	maxBodyBytes int64
	httpServer   *http.Server
	serverName   string
}

// Configured initializes the Server with dependencies.
// It uses lflag to register command-line flags for configuration.
func Configured(calc Calculator) *Server {
	srv := &Server{
		calc:       calc,
		serverName: "energyusage",
	}
	revision := os.Getenv("K_REVISION")
	if revision != "" {
		srv.serverName = revision
	}

	// get the port from PORT when running in cloud run
	port := os.Getenv("PORT")
	if port == "" {
		// otherwise default to 8080
		port = "8080"
	}

	listenAddr := lflag.String("http-listen", ":"+port, "HTTP server listen address")
	maxBodyBytes := lflag.Int("max-body-bytes", defaultMaxBodyBytes, "Maximum size of a request body in bytes")

	lflag.Do(func() {
		srv.listenAddr = *listenAddr
		if *maxBodyBytes <= 0 {
			log.Ctx(context.Background()).Error("max-body-bytes must be positive", slog.Int("maxBodyBytes", *maxBodyBytes))
			os.Exit(1)
		}
		srv.maxBodyBytes = int64(*maxBodyBytes)
	})

	return srv
}

func (s *Server) setupHandler() http.Handler {
	apiMux := http.NewServeMux()
	apiMux.HandleFunc("POST /api/usage", s.handleUsage)
	apiMux.HandleFunc("POST /api/savings", s.handleSavings)
	apiMux.HandleFunc("POST /api/report", s.handleReport)
	apiMux.HandleFunc("POST /api/day", s.handleDay)

	mux := http.NewServeMux()
	mux.Handle("/api/", s.loggerMiddleware(apiMux))
	mux.HandleFunc("/healthz", s.handleHealthz)
	return s.revisionMiddleware(gziphandler.GzipHandler(s.securityHeadersMiddleware(mux)))
}

// Run starts the HTTP server and blocks until the context is canceled or an error occurs.
// It also handles graceful shutdown when the context is done.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         s.listenAddr,
		Handler:      s.setupHandler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  15 * time.Second,
		// requests keep the logger from ctx but not its cancellation
		BaseContext: func(net.Listener) context.Context {
			return context.WithoutCancel(ctx)
		},
	}

	// use a channel to capturing server errors
	errChan := make(chan error, 1)
	go func() {
		defer close(errChan)
		log.Ctx(ctx).InfoContext(ctx, "starting server", slog.String("addr", s.listenAddr), slog.Int("period", s.calc.Period()))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Ctx(ctx).InfoContext(ctx, "shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	case err, ok := <-errChan:
		if !ok {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		panic(http.ErrAbortHandler)
	}
}

func writeJSONError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: msg}); err != nil {
		slog.Warn("failed to write error response", slog.Any("error", err))
		panic(http.ErrAbortHandler)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		panic(http.ErrAbortHandler)
	}
}
