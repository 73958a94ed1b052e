package bridge

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wa-desk/internal/automation"
	"github.com/MKhiriev/go-wa-desk/internal/config"
	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/models"
)

// Bridge turns UI file-send requests into automation sends.
type Bridge struct {
	sender      automation.Sender
	target      string
	maxFileSize int64

	logger *logger.Logger
}

// NewBridge returns a Bridge that sends every file to automationCfg.Target.
func NewBridge(sender automation.Sender, automationCfg config.Automation, bridgeCfg config.Bridge, log *logger.Logger) *Bridge {
	target := automationCfg.Target
	if target == "" {
		target = models.SelfTarget
	}

	return &Bridge{
		sender:      sender,
		target:      target,
		maxFileSize: bridgeCfg.MaxFileSize,
		logger:      log,
	}
}

// SendFile makes exactly one send attempt for req. It never returns an
// error: failures are reported in the result with the failing call's
// message text.
func (b *Bridge) SendFile(ctx context.Context, req models.FileSendRequest) models.SendFileResult {
	log := b.logger.With().
		Str("file", req.Name).
		Str("type", req.Type).
		Int("size", len(req.Data)).
		Logger()

	if b.maxFileSize > 0 && int64(len(req.Data)) > b.maxFileSize {
		err := fmt.Errorf("%w: %d bytes exceeds limit of %d bytes", ErrFileTooLarge, len(req.Data), b.maxFileSize)
		log.Warn().Err(err).Msg("send-file rejected")
		return failed(err)
	}

	media := automation.Media{
		FileName: req.Name,
		MimeType: req.Type,
		Data:     req.Data,
	}
	if err := b.sender.SendMessage(ctx, b.target, media); err != nil {
		log.Error().Err(err).Msg("send-file failed")
		return failed(err)
	}

	log.Info().Msg("send-file delivered")
	return models.SendFileResult{Success: true}
}

func failed(err error) models.SendFileResult {
	return models.SendFileResult{Success: false, Error: errorText(err)}
}

// errorText returns err's message, or its type when the message is empty, so
// a failed result always carries some text.
func errorText(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fmt.Sprintf("unknown error (%T)", err)
}
