package automation

import (
	"strings"

	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/rs/zerolog"
	waLog "go.mau.fi/whatsmeow/util/log"
)

// libraryLogger forwards whatsmeow's printf-style log lines into zerolog.
type libraryLogger struct {
	base   zerolog.Logger
	log    zerolog.Logger
	module string
}

// NewLibraryLogger returns a whatsmeow logger writing through log. Lines
// below level ("debug", "info", "warn", "error") are discarded; an unknown
// level falls back to warn.
func NewLibraryLogger(log *logger.Logger, level string) waLog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}

	return newLibraryLogger(log.Level(lvl), "whatsmeow")
}

func newLibraryLogger(base zerolog.Logger, module string) *libraryLogger {
	return &libraryLogger{
		base:   base,
		log:    base.With().Str("module", module).Logger(),
		module: module,
	}
}

func (l *libraryLogger) Errorf(msg string, args ...interface{}) {
	l.log.Error().Msgf(msg, args...)
}

func (l *libraryLogger) Warnf(msg string, args ...interface{}) {
	l.log.Warn().Msgf(msg, args...)
}

func (l *libraryLogger) Infof(msg string, args ...interface{}) {
	l.log.Info().Msgf(msg, args...)
}

func (l *libraryLogger) Debugf(msg string, args ...interface{}) {
	l.log.Debug().Msgf(msg, args...)
}

func (l *libraryLogger) Sub(module string) waLog.Logger {
	return newLibraryLogger(l.base, l.module+"/"+module)
}
