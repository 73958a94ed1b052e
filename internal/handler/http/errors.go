// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidSendFileRequest is reported when the send-file body is not a
	// decodable JSON document.
	ErrInvalidSendFileRequest = errors.New("invalid send-file request body")

	// ErrStreamingUnsupported is logged when the response writer cannot flush
	// partial responses, which the notification stream requires.
	ErrStreamingUnsupported = errors.New("response writer does not support streaming")
)
