package core

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultTopN = 10

type Core struct {
	cfg Config
}

func MustSetupCore(cfg Config) *Core {
	{
		var writer io.Writer = os.Stderr
		if cfg.Log.Path != "" {
			writer = &lumberjack.Logger{
				Filename:   cfg.Log.Path,
				MaxSize:    500, // megabytes
				MaxBackups: 3,
				MaxAge:     28, //days
				Compress:   true,
			}
		}
		l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level: cfg.Log.SlogLevel(),
		}))
		slog.SetDefault(l)
	}

	if cfg.Analyze.TopN <= 0 {
		cfg.Analyze.TopN = defaultTopN
	}

	return &Core{
		cfg: cfg,
	}
}

func (s *Core) Cfg() Config {
	return s.cfg
}
