package adapter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-wa-desk/internal/config"
	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/internal/utils"
	"github.com/MKhiriev/go-wa-desk/models"
)

const (
	sendFilePath      = "/ipc/send-file"
	notificationsPath = "/ipc/notifications"
)

type httpBridgeAdapter struct {
	// client carries the request timeout; stream never times out because
	// the notification stream lives as long as the window.
	client *utils.HTTPClient
	stream *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPBridgeAdapter builds the HTTP implementation of [BridgeAdapter]
// against adapterCfg.HTTPAddress, which may omit the scheme.
func NewHTTPBridgeAdapter(adapterCfg config.Adapter, logger *logger.Logger) (BridgeAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpBridgeAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		stream: utils.NewHTTPClient(baseURL, 0),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SendFile implements [BridgeAdapter] with POST /ipc/send-file.
func (h *httpBridgeAdapter) SendFile(ctx context.Context, req models.FileSendRequest) (models.SendFileResult, error) {
	var result models.SendFileResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post(sendFilePath)
	if err != nil {
		return models.SendFileResult{}, fmt.Errorf("send-file request: %w", err)
	}
	if err = mapHTTPError(resp.StatusCode(), resp.Body()); err != nil {
		return models.SendFileResult{}, err
	}

	return result, nil
}

// Notifications implements [BridgeAdapter] by reading the SSE stream at
// GET /ipc/notifications on a background goroutine.
func (h *httpBridgeAdapter) Notifications(ctx context.Context) (<-chan models.Notification, error) {
	resp, err := h.stream.R().
		SetContext(ctx).
		SetHeader("Accept", "text/event-stream").
		SetDoNotParseResponse(true).
		Get(notificationsPath)
	if err != nil {
		return nil, fmt.Errorf("notifications request: %w", err)
	}

	body := resp.RawBody()
	if err = mapHTTPError(resp.StatusCode(), nil); err != nil {
		body.Close()
		return nil, err
	}

	out := make(chan models.Notification)
	go func() {
		defer close(out)
		defer body.Close()

		if err := readEvents(ctx, body, out); err != nil && ctx.Err() == nil {
			h.logger.Debug().Err(err).Msg("notification stream ended")
		}
	}()

	return out, nil
}

// readEvents decodes "event:" / "data:" blocks separated by blank lines. The
// event name is taken as the channel; data is informational.
func readEvents(ctx context.Context, r io.Reader, out chan<- models.Notification) error {
	scanner := bufio.NewScanner(r)

	var (
		event string
		data  string
	)
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case line == "":
			if n, ok := decodeEvent(event, data); ok {
				select {
				case out <- n:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			event, data = "", ""
		case strings.HasPrefix(line, ":"):
			// comment / keep-alive
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data = strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		}
	}

	return scanner.Err()
}

func decodeEvent(event, data string) (models.Notification, bool) {
	if event != "" {
		return models.Notification{Channel: models.Channel(event)}, true
	}

	var n models.Notification
	if data == "" || json.Unmarshal([]byte(data), &n) != nil || n.Channel == "" {
		return models.Notification{}, false
	}
	return n, true
}
