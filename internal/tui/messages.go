package tui

import (
	"github.com/MKhiriev/go-wa-desk/models"
)

type fileSentMsg struct {
	name   string
	result models.SendFileResult
	err    error
}

type notificationMsg struct {
	notification models.Notification
}

type notificationsClosedMsg struct{}

type pastedMsg struct {
	text string
	err  error
}

type clearStatusMsg struct{}
