// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bridge implements the host side of the UI bridge: the send-file
// request handler ([Bridge]) and the push-notification channel ([Hub]).
//
// Neither part returns errors across the process boundary. Send failures
// become a structured [models.SendFileResult]; undeliverable notifications
// are dropped.
package bridge
