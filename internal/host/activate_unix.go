//go:build !windows

package host

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// watchActivate turns SIGUSR1 into Activate calls until ctx ends.
func watchActivate(ctx context.Context, m *WindowManager) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGUSR1)
	defer signal.Stop(sig)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sig:
			m.Activate()
		}
	}
}
