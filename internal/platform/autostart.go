package platform

import "strings"

// LoginItem manages the OS login entry that starts the application when
// the user signs in. One instance serves a single application name.
type LoginItem struct {
	appName string
}

// NewLoginItem returns the login-entry manager for the named application.
func NewLoginItem(appName string) *LoginItem {
	return &LoginItem{appName: appName}
}

// slug turns the application name into a lowercase dashed identifier for
// file and label names.
func slug(appName string) string {
	name := strings.ToLower(strings.TrimSpace(appName))
	name = strings.ReplaceAll(name, " ", "-")
	if name == "" {
		return "pomotimer"
	}
	return name
}
