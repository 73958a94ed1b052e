package adapter

import (
	"fmt"
	"net/http"
	"strings"
)

func mapHTTPError(status int, body []byte) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	text := strings.TrimSpace(string(body))

	switch status {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, text)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, text)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, text)
	default:
		if text == "" {
			text = http.StatusText(status)
		}
		return fmt.Errorf("http %d: %s", status, text)
	}
}
