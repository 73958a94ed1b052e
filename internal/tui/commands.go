package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-wa-desk/internal/adapter"
	"github.com/MKhiriev/go-wa-desk/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 4 * time.Second

func cmdSendFile(ctx context.Context, bridge adapter.BridgeAdapter, path string) tea.Cmd {
	return func() tea.Msg {
		req, err := loadFile(path)
		if err != nil {
			return fileSentMsg{err: err}
		}

		result, err := bridge.SendFile(ctx, req)
		return fileSentMsg{name: req.Name, result: result, err: err}
	}
}

func cmdWaitNotification(ch <-chan models.Notification) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return notificationsClosedMsg{}
		}
		return notificationMsg{notification: n}
	}
}

func cmdPaste(read func() (string, error)) tea.Cmd {
	return func() tea.Msg {
		text, err := read()
		return pastedMsg{text: strings.TrimSpace(text), err: err}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// readClipboard is swapped out in tests.
var readClipboard = clipboard.ReadAll
