package platform

import (
	"time"

	"pomotimer/internal/core/countdown"
)

type unsupportedChecker struct{}

// Reading macOS input-idle time takes a cgo IOKit call, which this build
// does not link. The engine turns idle pause off when it sees the
// sentinel.
func newIdleChecker() countdown.IdleChecker {
	return unsupportedChecker{}
}

func (unsupportedChecker) IdleDuration() (time.Duration, error) {
	return 0, countdown.ErrIdleUnsupported
}
