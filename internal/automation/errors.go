package automation

import (
	"errors"
	"fmt"
)

var (
	// ErrNotReady is wrapped by SendError when a send is attempted before the
	// session reached the ready phase.
	ErrNotReady = errors.New("session is not ready")

	// ErrInvalidTarget is wrapped by SendError when the target cannot be
	// resolved to a chat.
	ErrInvalidTarget = errors.New("invalid target")
)

// ConnectionError reports that the automation session could not be
// established.
type ConnectionError struct {
	Message string
	Err     error
}

func (e *ConnectionError) Error() string {
	return describe(e.Message, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// AuthFailure reports that the account rejected the login or invalidated the
// session.
type AuthFailure struct {
	Message string
}

func (e *AuthFailure) Error() string {
	return "authentication failed: " + e.Message
}

// SendError reports that a payload could not be delivered.
type SendError struct {
	Message string
	Err     error
}

func (e *SendError) Error() string {
	return describe(e.Message, e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}

func describe(message string, err error) string {
	switch {
	case err == nil:
		return message
	case message == "":
		return err.Error()
	default:
		return fmt.Sprintf("%s: %v", message, err)
	}
}
