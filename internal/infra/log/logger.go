package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"linkvault/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type Params struct {
	fx.In

	Config *config.Config
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// New builds the process logger. Every record carries the app name, version and environment.
func New(params Params) (*slog.Logger, error) {
	cfg := params.Config
	logger, err := newLogger(os.Stdout, cfg.Env.Log)
	if err != nil {
		return nil, err
	}

	return logger.With(
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.Env.Env),
	), nil
}

func newLogger(w io.Writer, cfg config.Log) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}
	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if cfg.Pretty {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler), nil
}

// parseLogLevel treats an empty level as info.
func parseLogLevel(level string) (slog.Level, error) {
	if level == "" {
		return slog.LevelInfo, nil
	}
	parsed, ok := levels[strings.ToLower(level)]
	if !ok {
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}

	return parsed, nil
}
