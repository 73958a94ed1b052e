package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-wa-desk/internal/app"
	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/internal/utils"
	"github.com/MKhiriev/go-wa-desk/models"
)

// sendFile answers every decodable request with 200 and a structured result;
// delivery failures travel inside the result, not in the status code.
func (h *Handler) sendFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.FileSendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(fmt.Errorf("%w: %w", ErrInvalidSendFileRequest, err)).Msg("error decoding send-file request")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	result := h.files.SendFile(r.Context(), req)
	if !result.Success {
		log.Warn().Str("file", req.Name).Str("error", result.Error).Msg("send-file failed")
	}

	if _, err := utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing send-file result")
	}
}

// streamNotifications keeps the connection open and writes one SSE event per
// notification until the client goes away.
func (h *Handler) streamNotifications(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	rc := http.NewResponseController(w)

	notifications, cancel := h.notifications.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if err := rc.Flush(); err != nil {
		log.Err(fmt.Errorf("%w: %w", ErrStreamingUnsupported, err)).Msg("notification stream closed")
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case n, ok := <-notifications:
			if !ok {
				return
			}
			if err := writeEvent(w, n); err != nil {
				log.Debug().Err(err).Msg("notification stream write failed")
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}

func writeEvent(w http.ResponseWriter, n models.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", n.Channel, data)
	return err
}
