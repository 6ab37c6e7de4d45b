package platform

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"pomotimer/internal/core/countdown"
)

// xprintidleChecker shells out to xprintidle, which prints milliseconds
// since the last X11 input event.
type xprintidleChecker struct {
	binPath string
}

type unsupportedChecker struct{}

// A Wayland session without XWayland has no X server for xprintidle to
// query.
func newIdleChecker() countdown.IdleChecker {
	binPath, err := exec.LookPath("xprintidle")
	if err != nil {
		return unsupportedChecker{}
	}
	if strings.EqualFold(os.Getenv("XDG_SESSION_TYPE"), "wayland") && os.Getenv("DISPLAY") == "" {
		return unsupportedChecker{}
	}
	return &xprintidleChecker{binPath: binPath}
}

func (checker *xprintidleChecker) IdleDuration() (time.Duration, error) {
	raw, err := exec.Command(checker.binPath).Output()
	if err != nil {
		return 0, fmt.Errorf("run xprintidle: %w", err)
	}
	text := strings.TrimSpace(string(raw))
	millis, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse xprintidle output %q: %w", text, err)
	}
	return time.Duration(millis) * time.Millisecond, nil
}

func (unsupportedChecker) IdleDuration() (time.Duration, error) {
	return 0, countdown.ErrIdleUnsupported
}
