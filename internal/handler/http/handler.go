package http

import (
	"context"

	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/models"
)

// FileSender serves the send-file channel.
type FileSender interface {
	SendFile(ctx context.Context, req models.FileSendRequest) models.SendFileResult
}

// NotificationSource hands out push-notification subscriptions.
type NotificationSource interface {
	Subscribe() (<-chan models.Notification, func())
}

type Handler struct {
	files         FileSender
	notifications NotificationSource
	buildInfo     models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(files FileSender, notifications NotificationSource, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		files:         files,
		notifications: notifications,
		buildInfo:     buildInfo,
		logger:        logger,
	}
}
