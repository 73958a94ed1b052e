package store

import "errors"

// ErrEmptyDSN is returned when no device store DSN is configured.
var ErrEmptyDSN = errors.New("empty device store DSN")
