package tui

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-wa-desk/models"
	"github.com/gabriel-vasile/mimetype"
)

const fallbackMIME = "application/octet-stream"

// loadFile reads the file at path into a send-file request. The MIME type
// is sniffed from the content; when sniffing only yields the generic binary
// type the extension decides.
func loadFile(path string) (models.FileSendRequest, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return models.FileSendRequest{}, ErrEmptyPath
	}

	info, err := os.Stat(path)
	if err != nil {
		return models.FileSendRequest{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return models.FileSendRequest{}, fmt.Errorf("%s: %w", path, ErrNotRegular)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.FileSendRequest{}, fmt.Errorf("read %s: %w", path, err)
	}

	return models.FileSendRequest{
		Name: filepath.Base(path),
		Type: detectMIME(filepath.Ext(path), data),
		Data: data,
	}, nil
}

func detectMIME(ext string, data []byte) string {
	detected := mimetype.Detect(data)
	if !detected.Is(fallbackMIME) {
		return baseMIME(detected.String())
	}

	if byExt := mime.TypeByExtension(ext); byExt != "" {
		return baseMIME(byExt)
	}
	return fallbackMIME
}

// baseMIME drops parameters such as "; charset=utf-8".
func baseMIME(v string) string {
	base, _, _ := strings.Cut(v, ";")
	return strings.TrimSpace(base)
}
