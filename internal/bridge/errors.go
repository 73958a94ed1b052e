package bridge

import "errors"

var (
	// ErrFileTooLarge is reported when a payload exceeds the configured
	// size bound.
	ErrFileTooLarge = errors.New("file too large")

	// ErrNotDelivered is returned by Hub.Publish when no subscriber took the
	// notification.
	ErrNotDelivered = errors.New("notification not delivered")
)
