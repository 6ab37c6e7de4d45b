//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

const runKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

// Enable registers the app under the current user's Run key.
func (item *LoginItem) Enable(execPath string) error {
	if execPath == "" {
		return fmt.Errorf("enable login item: empty exec path")
	}

	value := `"` + strings.Trim(execPath, `"`) + `"`
	if err := regRun("add", runKey, "/v", item.appName, "/t", "REG_SZ", "/d", value, "/f"); err != nil {
		return fmt.Errorf("enable login item: %w", err)
	}
	return nil
}

// Disable removes the Run key value.
func (item *LoginItem) Disable() error {
	if err := regRun("delete", runKey, "/v", item.appName, "/f"); err != nil {
		return fmt.Errorf("disable login item: %w", err)
	}
	return nil
}

func regRun(args ...string) error {
	output, err := exec.Command("reg", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("reg %s: %w: %s", args[0], err, strings.TrimSpace(string(output)))
	}
	return nil
}
