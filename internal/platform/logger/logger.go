package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New arma un zerolog.Logger según nivel y formato pedidos.
// format "text" usa ConsoleWriter; cualquier otra cosa sale JSON a stdout.
func New(level, format, app string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var log zerolog.Logger
	if strings.EqualFold(strings.TrimSpace(format), "text") {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	} else {
		log = zerolog.New(os.Stdout)
	}

	ctx := log.Level(lvl).With().Timestamp()
	if app = strings.TrimSpace(app); app != "" {
		ctx = ctx.Str("app", app)
	}
	return ctx.Logger()
}

// NewFromEnv crea el logger desde env:
// - LOG_LEVEL=debug|info|warn|error (default info)
// - LOG_FORMAT=text|json (default json)
// - APP_NAME=kitty-catalog (opcional)
func NewFromEnv() zerolog.Logger {
	return New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Getenv("APP_NAME"))
}
