// Package server runs the bridge HTTP server.
//
// It binds the listener, serves the bridge routes and shuts the server down
// gracefully when the owning context is cancelled.
package server
