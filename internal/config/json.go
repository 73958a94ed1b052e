package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the on-disk JSON layout.
type StructuredJSONConfig struct {
	App struct {
		Version        string `json:"version"`
		ConsoleLogPath string `json:"console_log"`
	} `json:"app,omitempty"`

	Automation struct {
		StoreDSN string `json:"store_dsn"`
		Target   string `json:"target"`
		LogLevel string `json:"log_level"`
	} `json:"automation,omitempty"`

	Bridge struct {
		HTTPAddress string `json:"http_address"`
		MaxFileSize int64  `json:"max_file_size"`
	} `json:"bridge,omitempty"`

	Window struct {
		Width    int    `json:"width"`
		Height   int    `json:"height"`
		Platform string `json:"platform"`
	} `json:"window,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:        jsonCfg.App.Version,
			ConsoleLogPath: jsonCfg.App.ConsoleLogPath,
		},
		Automation: Automation{
			StoreDSN: jsonCfg.Automation.StoreDSN,
			Target:   jsonCfg.Automation.Target,
			LogLevel: jsonCfg.Automation.LogLevel,
		},
		Bridge: Bridge{
			HTTPAddress: jsonCfg.Bridge.HTTPAddress,
			MaxFileSize: jsonCfg.Bridge.MaxFileSize,
		},
		Window: Window{
			Width:    jsonCfg.Window.Width,
			Height:   jsonCfg.Window.Height,
			Platform: jsonCfg.Window.Platform,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
