package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRawJSON(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseJSON_Success(t *testing.T) {
	path := writeRawJSON(t, `{
		"app": {"version": "1.4.0", "console_log": "/var/log/wa.log"},
		"automation": {"store_dsn": "file:wa.db", "target": "me", "log_level": "info"},
		"bridge": {"http_address": "127.0.0.1:8765", "max_file_size": 2048},
		"window": {"width": 90, "height": 28, "platform": "linux"},
		"adapter": {"http_address": "localhost:8765", "request_timeout": "1m"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "1.4.0", cfg.App.Version)
	assert.Equal(t, "/var/log/wa.log", cfg.App.ConsoleLogPath)
	assert.Equal(t, "file:wa.db", cfg.Automation.StoreDSN)
	assert.Equal(t, "info", cfg.Automation.LogLevel)
	assert.Equal(t, int64(2048), cfg.Bridge.MaxFileSize)
	assert.Equal(t, 90, cfg.Window.Width)
	assert.Equal(t, "linux", cfg.Window.Platform)
	assert.Equal(t, "localhost:8765", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("/nonexistent/path/config.json")
	assert.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	_, err := parseJSON(writeRawJSON(t, `{"app": `))
	assert.Error(t, err)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	_, err := parseJSON(writeRawJSON(t, `{"adapter": {"request_timeout": "soon"}}`))
	assert.Error(t, err)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	cfg, err := parseJSON(writeRawJSON(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_NumericValue(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, time.Second, time.Duration(d))

	out, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1s"`, string(out))
}
