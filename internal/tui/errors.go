package tui

import "errors"

var (
	ErrEmptyPath  = errors.New("no file path entered")
	ErrNotRegular = errors.New("not a regular file")
)
