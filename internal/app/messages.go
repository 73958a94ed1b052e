// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the user-facing message strings shared by the console
// observer, the bridge transport and the window.
//
// Keeping them in one place keeps the wording identical across both
// deployment shapes.
package app

const (
	// MsgQRCodeReceived is printed before each rendered login code.
	MsgQRCodeReceived = "QR Code received!"

	// MsgClientAuthenticated is printed once the login code was accepted.
	MsgClientAuthenticated = "Client authenticated!"

	// MsgClientReady is printed once the client can send messages.
	MsgClientReady = "Client is ready!"

	// MsgAuthenticationFailed prefixes the failure reason on the error
	// stream.
	MsgAuthenticationFailed = "Authentication failed:"

	// MsgWhatsAppAuthenticated is the window banner for an authenticated
	// session.
	MsgWhatsAppAuthenticated = "WhatsApp authenticated"

	// MsgWhatsAppAuthFailure is the window banner for a rejected session.
	MsgWhatsAppAuthFailure = "WhatsApp authentication failed"

	// MsgInvalidDataProvided answers a send-file body that cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"
)
