// Package http implements the HTTP transport of the UI bridge.
//
// It exposes the send-file request/response channel, the push-notification
// stream (Server-Sent Events) and the bundled UI document. Request tracing,
// access logging and panic recovery are handled here before requests reach
// the bridge.
package http
