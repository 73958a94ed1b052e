// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-wa-desk/internal/config"
	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) BridgeAdapter {
	t.Helper()

	a, err := NewHTTPBridgeAdapter(config.Adapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

// ── SendFile ─────────────────────────────────────────────────────────────────

func TestSendFile_Success(t *testing.T) {
	req := models.FileSendRequest{Name: "a.txt", Type: "text/plain", Data: []byte("hi")}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, sendFilePath, r.URL.Path)

		var got models.FileSendRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, req, got)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).SendFile(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, models.SendFileResult{Success: true}, got)
}

func TestSendFile_DeliveryFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false,"error":"session not ready"}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).SendFile(context.Background(), models.FileSendRequest{Name: "a"})

	require.NoError(t, err)
	assert.Equal(t, models.SendFileResult{Success: false, Error: "session not ready"}, got)
}

func TestSendFile_HTTPErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"not found", http.StatusNotFound, ErrNotFound},
		{"internal", http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("boom"))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).SendFile(context.Background(), models.FileSendRequest{})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSendFile_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).SendFile(context.Background(), models.FileSendRequest{})

	assert.Error(t, err)
}

// ── Notifications ────────────────────────────────────────────────────────────

func TestNotifications_ReceivesEvents(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, notificationsPath, r.URL.Path)

		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(": keep-alive\n\n"))
		_, _ = w.Write([]byte("event: whatsapp-authenticated\ndata: {\"channel\":\"whatsapp-authenticated\"}\n\n"))
		_, _ = w.Write([]byte("data: {\"channel\":\"whatsapp-auth-failure\"}\n\n"))
		w.(http.Flusher).Flush()

		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := newTestAdapter(t, srv.URL).Notifications(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.ChannelAuthenticated, (<-ch).Channel)
	assert.Equal(t, models.ChannelAuthFailure, (<-ch).Channel)
}

func TestNotifications_ClosedWhenStreamEnds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte("event: whatsapp-auth-failure\ndata: {}\n\n"))
	}))
	defer srv.Close()

	ch, err := newTestAdapter(t, srv.URL).Notifications(context.Background())
	require.NoError(t, err)

	n, ok := <-ch
	require.True(t, ok)
	assert.Equal(t, models.ChannelAuthFailure, n.Channel)

	_, ok = <-ch
	assert.False(t, ok)
}

func TestNotifications_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Notifications(context.Background())

	assert.ErrorIs(t, err, ErrNotFound)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func TestReadEvents_IgnoresUnnamedGarbage(t *testing.T) {
	out := make(chan models.Notification, 4)
	stream := "data: not-json\n\n" +
		"event: whatsapp-authenticated\n\n" +
		"\n"

	require.NoError(t, readEvents(context.Background(), strings.NewReader(stream), out))
	close(out)

	var got []models.Notification
	for n := range out {
		got = append(got, n)
	}
	assert.Equal(t, []models.Notification{{Channel: models.ChannelAuthenticated}}, got)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "127.0.0.1:8765", want: "http://127.0.0.1:8765"},
		{raw: " http://localhost:8080/ ", want: "http://localhost:8080"},
		{raw: "https://example.com", want: "https://example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPBridgeAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPBridgeAdapter(config.Adapter{}, logger.Nop())

	assert.ErrorIs(t, err, ErrInvalidAddress)
}
