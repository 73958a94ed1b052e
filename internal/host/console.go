package host

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-wa-desk/internal/automation"
	"github.com/MKhiriev/go-wa-desk/internal/config"
	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/internal/relay"
)

// RunConsole runs the console shape: lifecycle events are printed to out and
// errOut, and the process stays up until ctx ends. A failed initialisation is
// logged and does not end the process.
func RunConsole(ctx context.Context, cfg *config.StructuredConfig, newClient ClientFactory, out, errOut io.Writer, log *logger.Logger) error {
	client, err := newClient(ctx, cfg.Automation, log)
	if err != nil {
		return fmt.Errorf("create automation client: %w", err)
	}
	defer client.Close()

	relay.Attach(client, relay.NewConsoleObserver(out, errOut, log))

	if err = client.Initialize(ctx); err != nil {
		logInitFailure(log, err)
	}

	<-ctx.Done()
	log.Info().Msg("console host stopped")

	return nil
}

// logInitFailure logs a failed Initialize. A rejected login is already
// reported by the observer, so its reason is not repeated here. Shutdown
// interrupting Initialize is not a failure.
func logInitFailure(log *logger.Logger, err error) {
	if errors.Is(err, context.Canceled) {
		log.Debug().Msg("automation client initialisation stopped")
		return
	}
	var authErr *automation.AuthFailure
	if errors.As(err, &authErr) {
		log.Warn().Msg("automation client initialisation failed, login rejected")
		return
	}
	log.Err(err).Msg("automation client initialisation failed")
}
