//go:build linux

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Enable writes a freedesktop autostart entry under the user config
// directory.
func (item *LoginItem) Enable(execPath string) error {
	if execPath == "" {
		return fmt.Errorf("enable login item: empty exec path")
	}

	entryPath, err := item.entryPath()
	if err != nil {
		return fmt.Errorf("enable login item: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(entryPath), 0o755); err != nil {
		return fmt.Errorf("enable login item: %w", err)
	}
	if err := os.WriteFile(entryPath, []byte(desktopEntry(item.appName, execPath)), 0o644); err != nil {
		return fmt.Errorf("enable login item: %w", err)
	}
	return nil
}

// Disable removes the autostart entry. A missing entry is not an error.
func (item *LoginItem) Disable() error {
	entryPath, err := item.entryPath()
	if err != nil {
		return fmt.Errorf("disable login item: %w", err)
	}
	if err := os.Remove(entryPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("disable login item: %w", err)
	}
	return nil
}

func (item *LoginItem) entryPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "autostart", slug(item.appName)+".desktop"), nil
}

func desktopEntry(appName, execPath string) string {
	execLine := execPath
	if strings.Contains(execLine, " ") && !strings.HasPrefix(execLine, `"`) {
		execLine = `"` + execLine + `"`
	}

	lines := []string{
		"[Desktop Entry]",
		"Type=Application",
		"Name=" + appName,
		"Comment=Pomodoro countdown timer",
		"Exec=" + execLine,
		"X-GNOME-Autostart-enabled=true",
		"Terminal=false",
		"",
	}
	return strings.Join(lines, "\n")
}
