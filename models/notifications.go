// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Channel names a fire-and-forget push message sent from the host process
// to the UI.
type Channel string

const (
	ChannelAuthenticated Channel = "whatsapp-authenticated"
	ChannelAuthFailure   Channel = "whatsapp-auth-failure"
)

// Notification is a push message without payload.
type Notification struct {
	Channel Channel `json:"channel"`
}
