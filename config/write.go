package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const sampleHeader = "# pinelog settings\n"

// Marshal encodes rec as a settings file.
func Marshal(rec Record) ([]byte, error) {
	body, err := toml.Marshal(SettingsFrom(rec))
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	return append([]byte(sampleHeader), body...), nil
}

// Write stores rec as a settings file at path, replacing any existing file.
func Write(path string, rec Record) error {
	data, err := Marshal(rec)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write settings %s: %w", path, err)
	}
	return nil
}
