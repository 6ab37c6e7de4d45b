package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pomotimer/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	FocusSeconds      int   `yaml:"focus_seconds"`
	ShortBreakSeconds int   `yaml:"short_break_seconds"`
	LongBreakSeconds  int   `yaml:"long_break_seconds"`
	SoundEnabled      *bool `yaml:"sound_enabled"`
	IdlePause         bool  `yaml:"idle_pause"`
	Autostart         bool  `yaml:"autostart"`
}

// LoadSettings reads user preferences from the per-user config dir. A
// missing file yields the defaults.
func LoadSettings(appName string) (preferences.Settings, error) {
	path, err := settingsPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return readSettings(path)
}

// SaveSettings writes user preferences to the per-user config dir.
func SaveSettings(appName string, settings preferences.Settings) error {
	path, err := settingsPath(appName)
	if err != nil {
		return err
	}
	return writeSettings(path, settings)
}

func settingsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func readSettings(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("read settings: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(raw, &fileData); err != nil {
		return settings, fmt.Errorf("decode settings: %w", err)
	}
	fileData.apply(&settings)
	return settings, nil
}

func writeSettings(path string, settings preferences.Settings) error {
	raw, err := yaml.Marshal(encodeSettings(settings))
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

func encodeSettings(settings preferences.Settings) yamlSettings {
	soundEnabled := settings.SoundEnabled
	return yamlSettings{
		FocusSeconds:      int(settings.Focus / time.Second),
		ShortBreakSeconds: int(settings.ShortBreak / time.Second),
		LongBreakSeconds:  int(settings.LongBreak / time.Second),
		SoundEnabled:      &soundEnabled,
		IdlePause:         settings.IdlePause,
		Autostart:         settings.Autostart,
	}
}

// apply folds file values onto the defaults. Non-positive durations are
// dropped; a file written before the sound flag existed keeps sound on.
func (fileData yamlSettings) apply(settings *preferences.Settings) {
	if fileData.FocusSeconds > 0 {
		settings.Focus = time.Duration(fileData.FocusSeconds) * time.Second
	}
	if fileData.ShortBreakSeconds > 0 {
		settings.ShortBreak = time.Duration(fileData.ShortBreakSeconds) * time.Second
	}
	if fileData.LongBreakSeconds > 0 {
		settings.LongBreak = time.Duration(fileData.LongBreakSeconds) * time.Second
	}
	if fileData.SoundEnabled != nil {
		settings.SoundEnabled = *fileData.SoundEnabled
	}
	settings.IdlePause = fileData.IdlePause
	settings.Autostart = fileData.Autostart
}
