package log

import (
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	config "github.com/thirdweb-dev/blocklinks/configs"
)

const defaultLevel = zerolog.WarnLevel

// InitLogger replaces the zerolog global logger and puts gin in release mode unless
// debug logging is on.
func InitLogger() {
	log.Logger = NewLogger("blocklinks", config.Cfg.Log, os.Stderr)
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
}

func NewLogger(component string, cfg config.LogConfig, out io.Writer) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	if cfg.Prettify {
		out = zerolog.ConsoleWriter{Out: out}
	}
	return zerolog.New(out).With().
		Timestamp().
		Str("component", component).
		Caller().
		Logger()
}

// parseLevel falls back to warn for empty or unknown levels.
func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return defaultLevel
	}
	return lvl
}
