//go:build darwin

package platform

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Enable writes a user LaunchAgent plist that runs the app at login.
func (item *LoginItem) Enable(execPath string) error {
	if execPath == "" {
		return fmt.Errorf("enable login item: empty exec path")
	}

	agentPath, err := item.agentPath()
	if err != nil {
		return fmt.Errorf("enable login item: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(agentPath), 0o755); err != nil {
		return fmt.Errorf("enable login item: %w", err)
	}
	body := launchAgent(item.label(), execPath)
	if err := os.WriteFile(agentPath, []byte(body), 0o644); err != nil {
		return fmt.Errorf("enable login item: %w", err)
	}
	return nil
}

// Disable removes the LaunchAgent plist. A missing plist is not an error.
func (item *LoginItem) Disable() error {
	agentPath, err := item.agentPath()
	if err != nil {
		return fmt.Errorf("disable login item: %w", err)
	}
	if err := os.Remove(agentPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("disable login item: %w", err)
	}
	return nil
}

func (item *LoginItem) label() string {
	return "com.pomotimer." + slug(item.appName)
}

func (item *LoginItem) agentPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "Library", "LaunchAgents", item.label()+".plist"), nil
}

func launchAgent(label, execPath string) string {
	var body strings.Builder
	body.WriteString(xml.Header)
	body.WriteString(`<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">` + "\n")
	body.WriteString("<plist version=\"1.0\">\n<dict>\n")
	writePlistString(&body, "Label", label)
	writePlistString(&body, "Program", execPath)
	body.WriteString("\t<key>RunAtLoad</key>\n\t<true/>\n")
	body.WriteString("</dict>\n</plist>\n")
	return body.String()
}

func writePlistString(body *strings.Builder, key, value string) {
	body.WriteString("\t<key>" + key + "</key>\n\t<string>")
	_ = xml.EscapeText(body, []byte(value))
	body.WriteString("</string>\n")
}
