package relay

import (
	"fmt"
	"io"

	"github.com/MKhiriev/go-wa-desk/internal/app"
	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/mdp/qrterminal/v3"
)

// QRRenderer draws a login code onto w.
type QRRenderer func(code string, w io.Writer)

// RenderQR draws code as a half-block QR code, small enough for an 80x24
// terminal.
func RenderQR(code string, w io.Writer) {
	qrterminal.GenerateHalfBlock(code, qrterminal.L, w)
}

// ConsoleObserver prints human-readable status lines and renders login codes
// on a terminal-like stream. Every event is also logged.
type ConsoleObserver struct {
	out    io.Writer
	errOut io.Writer
	render QRRenderer
	logger *logger.Logger
}

// NewConsoleObserver returns an observer printing status to out and
// failures to errOut.
func NewConsoleObserver(out, errOut io.Writer, log *logger.Logger) *ConsoleObserver {
	return &ConsoleObserver{
		out:    out,
		errOut: errOut,
		render: RenderQR,
		logger: log,
	}
}

// WithRenderer replaces the QR renderer.
func (o *ConsoleObserver) WithRenderer(render QRRenderer) *ConsoleObserver {
	o.render = render
	return o
}

func (o *ConsoleObserver) LoginCode(code string) {
	fmt.Fprintln(o.out, app.MsgQRCodeReceived)
	o.render(code, o.out)
	o.logger.Info().Msg("login code received")
}

func (o *ConsoleObserver) Authenticated() {
	fmt.Fprintln(o.out, app.MsgClientAuthenticated)
	o.logger.Info().Msg("client authenticated")
}

func (o *ConsoleObserver) Ready() {
	fmt.Fprintln(o.out, app.MsgClientReady)
	o.logger.Info().Msg("client ready")
}

func (o *ConsoleObserver) AuthFailure(message string) {
	fmt.Fprintln(o.errOut, app.MsgAuthenticationFailed, message)
	// the reason goes to errOut only
	o.logger.Warn().Msg("authentication failed")
}
