package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wa-desk/internal/adapter"
	"github.com/MKhiriev/go-wa-desk/internal/app"
	"github.com/MKhiriev/go-wa-desk/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type bannerKind int

const (
	bannerNone bannerKind = iota
	bannerAuthenticated
	bannerAuthFailure
)

type windowModel struct {
	ctx       context.Context
	bridge    adapter.BridgeAdapter
	buildInfo models.AppBuildInfo

	notifications <-chan models.Notification
	paste         func() (string, error)

	path    textinput.Model
	spinner spinner.Model

	sending   bool
	status    string
	statusErr bool
	banner    bannerKind

	showError    bool
	errorOverlay errorOverlayModel
	showInfo     bool

	width  int
	height int
}

func newWindowModel(ctx context.Context, bridge adapter.BridgeAdapter, notifications <-chan models.Notification, buildInfo models.AppBuildInfo, width, height int) windowModel {
	path := textinput.New()
	path.Placeholder = "/path/to/file"
	path.Prompt = "File: "
	path.Width = max(width-12, 10)
	path.Focus()

	return windowModel{
		ctx:           ctx,
		bridge:        bridge,
		buildInfo:     buildInfo,
		notifications: notifications,
		paste:         readClipboard,
		path:          path,
		spinner:       spinner.New(spinner.WithSpinner(spinner.Dot)),
		width:         width,
		height:        height,
	}
}

func (m windowModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, cmdWaitNotification(m.notifications))
}

func (m windowModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case fileSentMsg:
		return m.onFileSent(msg)
	case notificationMsg:
		switch msg.notification.Channel {
		case models.ChannelAuthenticated:
			m.banner = bannerAuthenticated
		case models.ChannelAuthFailure:
			m.banner = bannerAuthFailure
		}
		return m, cmdWaitNotification(m.notifications)
	case notificationsClosedMsg:
		m.notifications = nil
		return m, nil
	case pastedMsg:
		if msg.err != nil {
			m.showErrorf(fmt.Sprintf("paste from clipboard: %v", msg.err))
			return m, nil
		}
		m.path.SetValue(msg.text)
		m.path.CursorEnd()
		return m, nil
	case clearStatusMsg:
		if !m.sending {
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	case spinner.TickMsg:
		if !m.sending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		// the window keeps its configured size
		return m, nil
	}

	var cmd tea.Cmd
	m.path, cmd = m.path.Update(msg)
	return m, cmd
}

func (m windowModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showError {
		if key.Matches(msg, keys.send) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorOverlay.message = ""
		}
		return m, nil
	}
	if m.showInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
			m.showInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.info):
		m.showInfo = true
		return m, nil
	case key.Matches(msg, keys.paste):
		if m.sending {
			return m, nil
		}
		return m, cmdPaste(m.paste)
	case key.Matches(msg, keys.send):
		if m.sending {
			return m, nil
		}
		m.sending = true
		m.status = "Sending " + m.path.Value()
		m.statusErr = false
		return m, tea.Batch(m.spinner.Tick, cmdSendFile(m.ctx, m.bridge, m.path.Value()))
	}

	if m.sending {
		return m, nil
	}

	var cmd tea.Cmd
	m.path, cmd = m.path.Update(msg)
	return m, cmd
}

func (m windowModel) onFileSent(msg fileSentMsg) (tea.Model, tea.Cmd) {
	m.sending = false

	switch {
	case msg.err != nil:
		m.status = "Failed: " + msg.err.Error()
		m.statusErr = true
	case !msg.result.Success:
		m.status = "Failed: " + valueOrNA(msg.result.Error)
		m.statusErr = true
	default:
		m.status = "Sent " + msg.name
		m.statusErr = false
		m.path.Reset()
	}

	return m, cmdClearStatus()
}

func (m windowModel) View() string {
	body := m.banner.View()
	body += m.path.View() + "\n\n"

	switch {
	case m.sending:
		body += m.spinner.View() + " " + fitText(m.status, m.width-8)
	case m.statusErr:
		body += errorStyle.Render(fitText(m.status, m.width-8))
	case m.status != "":
		body += okStyle.Render(fitText(m.status, m.width-8))
	}

	out := renderPage("Send a file to WhatsApp", body, "enter: send  ctrl+v: paste path  f1: about  ctrl+w: close")

	if m.showInfo {
		out += "\n\n" + renderBuildInfo(m.buildInfo)
	}
	if m.showError {
		out += "\n\n" + m.errorOverlay.View()
	}

	return windowStyle.Width(m.width).Height(m.height).Render(out)
}

func (m *windowModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (b bannerKind) View() string {
	switch b {
	case bannerAuthenticated:
		return okStyle.Render(app.MsgWhatsAppAuthenticated) + "\n\n"
	case bannerAuthFailure:
		return errorStyle.Render(app.MsgWhatsAppAuthFailure) + "\n\n"
	default:
		return ""
	}
}
