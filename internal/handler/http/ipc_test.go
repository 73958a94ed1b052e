package http

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── send-file ────────────────────────────────────────────────────────────────

func TestSendFile(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		result     models.SendFileResult
		wantStatus int
		wantCalls  int
		wantBody   string
	}{
		{
			name:       "delivered",
			body:       `{"name":"a.txt","type":"text/plain","data":"aGk="}`,
			result:     models.SendFileResult{Success: true},
			wantStatus: http.StatusOK,
			wantCalls:  1,
			wantBody:   `{"success":true}`,
		},
		{
			name:       "delivery failed",
			body:       `{"name":"a.txt","type":"text/plain","data":"aGk="}`,
			result:     models.SendFileResult{Success: false, Error: "session not ready"},
			wantStatus: http.StatusOK,
			wantCalls:  1,
			wantBody:   `{"success":false,"error":"session not ready"}`,
		},
		{
			name:       "undecodable body",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantCalls:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &stubSender{result: tt.result}
			h := NewHandler(sender, newStubSource(), models.AppBuildInfo{}, logger.Nop())
			rec := httptest.NewRecorder()

			h.sendFile(rec, httptest.NewRequest(http.MethodPost, "/ipc/send-file", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Len(t, sender.calls(), tt.wantCalls)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestSendFile_DecodesPayload(t *testing.T) {
	sender := &stubSender{result: models.SendFileResult{Success: true}}
	h := NewHandler(sender, newStubSource(), models.AppBuildInfo{}, logger.Nop())

	h.sendFile(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/ipc/send-file",
		strings.NewReader(`{"name":"photo.png","type":"image/png","data":"iVBORw=="}`)))

	calls := sender.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "photo.png", calls[0].Name)
	assert.Equal(t, "image/png", calls[0].Type)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, calls[0].Data)
}

// ── notifications ────────────────────────────────────────────────────────────

func TestStreamNotifications_WritesEventsUntilChannelCloses(t *testing.T) {
	source := newStubSource()
	source.ch <- models.Notification{Channel: models.ChannelAuthenticated}
	source.ch <- models.Notification{Channel: models.ChannelAuthFailure}
	close(source.ch)

	h := NewHandler(&stubSender{}, source, models.AppBuildInfo{}, logger.Nop())
	rec := httptest.NewRecorder()

	h.streamNotifications(rec, httptest.NewRequest(http.MethodGet, "/ipc/notifications", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t,
		"event: whatsapp-authenticated\ndata: {\"channel\":\"whatsapp-authenticated\"}\n\n"+
			"event: whatsapp-auth-failure\ndata: {\"channel\":\"whatsapp-auth-failure\"}\n\n",
		rec.Body.String())

	select {
	case <-source.cancelled:
	default:
		t.Fatal("subscription was not cancelled")
	}
}

func TestStreamNotifications_StopsWhenClientLeaves(t *testing.T) {
	source := newStubSource()
	h := NewHandler(&stubSender{}, source, models.AppBuildInfo{}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/ipc/notifications", nil).WithContext(ctx)

	done := make(chan struct{})
	go func() {
		h.streamNotifications(httptest.NewRecorder(), req)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not stop after the client went away")
	}
	<-source.cancelled
}

// TestStreamNotifications_OverHTTP exercises the full middleware chain, which
// must keep the stream flushable.
func TestStreamNotifications_OverHTTP(t *testing.T) {
	source := newStubSource()
	h := NewHandler(&stubSender{}, source, models.AppBuildInfo{}, logger.Nop())
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/ipc/notifications", nil)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	source.ch <- models.Notification{Channel: models.ChannelAuthFailure}

	reader := bufio.NewReader(resp.Body)
	eventLine, err := reader.ReadString('\n')
	require.NoError(t, err)
	dataLine, err := reader.ReadString('\n')
	require.NoError(t, err)

	assert.Equal(t, "event: whatsapp-auth-failure\n", eventLine)

	var n models.Notification
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(strings.TrimSpace(dataLine), "data: ")), &n))
	assert.Equal(t, models.ChannelAuthFailure, n.Channel)
}
