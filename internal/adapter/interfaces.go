// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the UI-side end of the bridge.
//
// [BridgeAdapter] hides the transport from the window: the shipped
// implementation ([NewHTTPBridgeAdapter]) talks to the bridge over HTTP and
// reads push notifications from its Server-Sent Events stream.
//
// Transport failures are mapped to the sentinel errors in errors.go so the
// window can match them with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-wa-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/bridge_adapter_mock.go -package=mock

// BridgeAdapter defines how the window reaches the host process.
type BridgeAdapter interface {
	// SendFile invokes the send-file channel and returns its structured
	// result. A delivery failure is reported inside the result; the error is
	// non-nil only when the bridge itself could not be reached or answered
	// with a non-2xx status.
	SendFile(ctx context.Context, req models.FileSendRequest) (models.SendFileResult, error)

	// Notifications subscribes to push notifications. The returned channel
	// is closed when ctx is cancelled or the stream ends.
	Notifications(ctx context.Context) (<-chan models.Notification, error)
}
