package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/ekimwerac/observable-clock-demo/internal/clocksvc"
	"github.com/ekimwerac/observable-clock-demo/internal/log"
	"github.com/ekimwerac/observable-clock-demo/internal/metrics"
	"github.com/ekimwerac/observable-clock-demo/internal/stream"
)

type FilterFunc[T any] func(val T) bool

type HTTPServer struct {
	logger     *slog.Logger
	server     http.Server
	service    *clocksvc.Service
	logStream  *stream.Buffered[log.Entry]
	tickStream *stream.Buffered[clocksvc.Tick]
}

func NewHTTPServer(
	addr string,
	logger *slog.Logger,
	service *clocksvc.Service,
	logStream *stream.Buffered[log.Entry],
) *HTTPServer {
	return &HTTPServer{
		logger: logger,
		server: http.Server{
			Addr:              addr,
			ReadHeaderTimeout: 10 * time.Second,
		},
		service:    service,
		logStream:  logStream,
		tickStream: service.TickStream(),
	}
}

func (s *HTTPServer) Serve(ctx context.Context) {
	s.server.Handler = s.createHandler()

	context.AfterFunc(ctx, func() {
		s.logger.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("failed to shutdown server", "err", err)
		}
	})

	s.logger.Info("server starting...", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("failed to start server", "err", err)
		os.Exit(1)
	}
}

func (s *HTTPServer) createHandler() http.Handler {
	wsLogger := log.WithPrefix(s.logger, "ws")

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("GET /api/ticks", createListHandler(s.tickStream, s.filterTicks))
	mux.Handle("GET /api/ticks/ws", createStreamHandler(s.tickStream, wsLogger, s.filterTicks))
	mux.Handle("GET /api/logs", createListHandler(s.logStream, s.filterLogs))
	mux.Handle("GET /api/logs/ws", createStreamHandler(s.logStream, wsLogger, s.filterLogs))
	mux.Handle("GET /api/activations", s.wrapHandler(s.handleListActivations))
	mux.Handle("POST /api/activations", s.wrapHandler(s.handleStartActivation))
	mux.Handle("DELETE /api/activations/{id}", s.wrapHandler(s.handleStopActivation))
	mux.Handle("GET /app.js", staticFileHandler("app.js"))
	mux.Handle("GET /", staticFileHandler("index.html"))

	return cors.Default().Handler(mux)
}

func (s *HTTPServer) wrapHandler(handler func(w http.ResponseWriter, req *http.Request) (statusCode int, err error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path := r.Method, r.URL.Path
		operation := fmt.Sprintf("%s %s", method, path)
		defer metrics.TrackDuration(operation)()
		statusCode, err := handler(w, r)
		if err != nil {
			w.WriteHeader(statusCode)
			s.logger.Error(err.Error(), "method", method, "path", path, "statusCode", statusCode)
		}
		metrics.TrackStatus(operation, strconv.Itoa(statusCode))
	})
}
