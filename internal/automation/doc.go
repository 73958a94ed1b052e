// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package automation wraps the messaging automation engine behind a small
// contract: start the login sequence, subscribe to lifecycle events, send a
// media payload.
//
// [Emitter] holds the event handlers and the session [models.Phase]; every
// implementation embeds it so that phase bookkeeping and handler dispatch
// behave identically. [WhatsAppClient] is the whatsmeow-backed
// implementation used by the binaries.
package automation
