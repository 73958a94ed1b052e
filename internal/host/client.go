package host

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wa-desk/internal/automation"
	"github.com/MKhiriev/go-wa-desk/internal/config"
	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/internal/store"
)

// AutomationClient is the client the host owns for the whole process.
type AutomationClient interface {
	automation.Client
	Close()
}

// ClientFactory constructs the process's single automation client.
type ClientFactory func(ctx context.Context, cfg config.Automation, log *logger.Logger) (AutomationClient, error)

// NewWhatsAppClient is the production [ClientFactory]: a whatsmeow client
// over the configured sqlite device store.
func NewWhatsAppClient(ctx context.Context, cfg config.Automation, log *logger.Logger) (AutomationClient, error) {
	libLog := automation.NewLibraryLogger(log, cfg.LogLevel)

	container, err := store.NewDeviceContainer(ctx, cfg, libLog.Sub("Database"), log)
	if err != nil {
		return nil, fmt.Errorf("device store: %w", err)
	}

	client, err := automation.NewWhatsAppClient(ctx, container, cfg, log)
	if err != nil {
		return nil, err
	}
	return client, nil
}
