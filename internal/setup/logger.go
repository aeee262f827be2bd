package setup

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ekimwerac/observable-clock-demo/internal/log"
)

func Logger(debug bool, logFile string, wrapHandler func(slog.Handler) slog.Handler) (*slog.Logger, error) {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}
	var handler slog.Handler
	handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		handler = log.TeeHandler{handler, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: logLevel})}
	}
	handler = log.NewPrefixHandler(handler)
	if wrapHandler != nil {
		handler = wrapHandler(handler)
	}
	return slog.New(handler), nil
}
