package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

// Config holds the demo's settings.
type Config struct {
	ServerAddr  string `json:"server_addr"`
	LogLevel    string `json:"log_level"`
	DatasetPath string `json:"dataset_path"`
	DefaultRows int    `json:"default_rows"`
	MaxRows     int    `json:"max_rows"`
	TableHeight string `json:"table_height"`
}

// DefaultConfig creates a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		ServerAddr:  ":7280",
		LogLevel:    "info",
		DatasetPath: "./data/mtcars.csv",
		DefaultRows: 5,
		MaxRows:     20,
		TableHeight: "200px",
	}
}

// LoadConfig reads the configuration from a JSON file at the given path.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				fmt.Printf("warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}
