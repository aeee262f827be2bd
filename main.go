package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/ekimwerac/observable-clock-demo/internal/clock"
	"github.com/ekimwerac/observable-clock-demo/internal/clocksvc"
	"github.com/ekimwerac/observable-clock-demo/internal/config"
	"github.com/ekimwerac/observable-clock-demo/internal/log"
	"github.com/ekimwerac/observable-clock-demo/internal/server"
	"github.com/ekimwerac/observable-clock-demo/internal/setup"
	"github.com/ekimwerac/observable-clock-demo/internal/stream"
)

func main() {
	ctx := setup.ListenStopSignal(context.Background())

	configFile := flag.String("config", "./config.yaml", "config file path")
	pprofAddr := flag.String("pprof", "", "pprof handler address")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to load config: %v", err)
		os.Exit(1)
	}

	logger, logStream, err := setupLogger(*debug, cfg.Log.File, cfg.History.LogSize)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to setup logger: %v", err)
		os.Exit(1)
	}

	setup.Pprof(ctx, *pprofAddr, logger)

	source := clock.NewSource(clock.System, cfg.Tick.Period, cfg.Tick.Layout)

	service := clocksvc.NewService(log.WithPrefix(logger, "clock"), source, cfg.History.TickSize)
	service.Start(ctx)

	httpServer := server.NewHTTPServer(cfg.HTTPAddr, log.WithPrefix(logger, "http"), service, logStream)
	go httpServer.Serve(ctx)

	<-ctx.Done()
}

func setupLogger(debug bool, logFile string, historySize int) (*slog.Logger, *stream.Buffered[log.Entry], error) {
	var recorder log.Recorder
	logger, err := setup.Logger(debug, logFile, func(handler slog.Handler) slog.Handler {
		recorder = log.NewRecorder(handler, historySize)
		return recorder
	})
	if err != nil {
		return nil, nil, err
	}
	return logger, recorder.Stream(), nil
}
