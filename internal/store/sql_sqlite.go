package store

import (
	"context"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"go.mau.fi/whatsmeow/store/sqlstore"
	waLog "go.mau.fi/whatsmeow/util/log"

	"github.com/MKhiriev/go-wa-desk/internal/config"
	"github.com/MKhiriev/go-wa-desk/internal/logger"
)

const sqliteDialect = "sqlite3"

// NewDeviceContainer opens the whatsmeow device store described by
// cfg.StoreDSN and brings its schema up to date. The default DSN is an
// in-memory database, so nothing outlives the process.
func NewDeviceContainer(ctx context.Context, cfg config.Automation, libLog waLog.Logger, log *logger.Logger) (*sqlstore.Container, error) {
	if strings.TrimSpace(cfg.StoreDSN) == "" {
		return nil, ErrEmptyDSN
	}

	container, err := sqlstore.New(ctx, sqliteDialect, cfg.StoreDSN, libLog)
	if err != nil {
		log.Err(err).Str("func", "NewDeviceContainer").Msg("error opening device store")
		return nil, fmt.Errorf("open device store: %w", err)
	}
	log.Debug().
		Str("func", "NewDeviceContainer").
		Bool("in_memory", IsInMemory(cfg.StoreDSN)).
		Msg("device store opened")

	return container, nil
}

// IsInMemory reports whether dsn points at a sqlite in-memory database.
func IsInMemory(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}
