package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/andrescamacho/kinestep/internal/infrastructure/config"
)

// NewLoggerWithWriter builds a zerolog logger from the logging configuration writing to out.
func NewLoggerWithWriter(cfg config.LoggingConfig, out io.Writer) zerolog.Logger {
	if cfg.Format == "text" {
		out = zerolog.ConsoleWriter{Out: out, NoColor: true, TimeFormat: "15:04:05"}
	}

	ctx := zerolog.New(out).Level(ParseLevel(cfg.Level)).With().Timestamp()
	if cfg.IncludeCaller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// ParseLevel converts a configured level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// ZerologAdapter adapts zerolog.Logger to the application logging.Logger interface.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter creates a new ZerologAdapter wrapping a zerolog.Logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// Log writes message at the given level with metadata as fields.
func (a *ZerologAdapter) Log(level, message string, metadata map[string]interface{}) {
	a.logger.WithLevel(ParseLevel(level)).Fields(metadata).Msg(message)
}
