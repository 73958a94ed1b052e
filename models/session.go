// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Phase is the lifecycle stage of the messaging session held by the
// automation client.
//
// Phases only move forward:
//
//	pending-login -> authenticated -> ready
//	pending-login -> failed
//	authenticated -> failed
type Phase string

const (
	PhasePendingLogin  Phase = "pending-login"
	PhaseAuthenticated Phase = "authenticated"
	PhaseFailed        Phase = "failed"
	PhaseReady         Phase = "ready"
)

// CanAdvanceTo reports whether the session may move from p to next.
func (p Phase) CanAdvanceTo(next Phase) bool {
	switch p {
	case PhasePendingLogin:
		return next == PhaseAuthenticated || next == PhaseFailed
	case PhaseAuthenticated:
		return next == PhaseReady || next == PhaseFailed
	default:
		return false
	}
}

// Terminal reports whether no further transition is possible from p.
func (p Phase) Terminal() bool {
	return p == PhaseReady || p == PhaseFailed
}

// EventName names one of the lifecycle events emitted by the automation
// client.
type EventName string

const (
	// EventQR is emitted every time a fresh login code is issued.
	// Payload: the code string to be rendered as a QR code.
	EventQR EventName = "qr"

	// EventAuthenticated is emitted once the account accepted the login.
	EventAuthenticated EventName = "authenticated"

	// EventAuthFailure is emitted when the credentials are rejected or the
	// session became invalid. Payload: diagnostic message.
	EventAuthFailure EventName = "auth_failure"

	// EventReady is emitted when the session is fully operational and
	// messages can be sent.
	EventReady EventName = "ready"
)

// Event is a single lifecycle notification.
type Event struct {
	Name    EventName
	Payload string
}

// TargetPhase returns the phase the session enters when e is emitted, and
// false for events that leave the phase untouched (qr).
func (e Event) TargetPhase() (Phase, bool) {
	switch e.Name {
	case EventAuthenticated:
		return PhaseAuthenticated, true
	case EventAuthFailure:
		return PhaseFailed, true
	case EventReady:
		return PhaseReady, true
	default:
		return "", false
	}
}
