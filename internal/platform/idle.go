package platform

import "pomotimer/internal/core/countdown"

// NewIdleChecker returns the input-idle source for this OS. Platforms
// without a usable source return a checker that always reports
// countdown.ErrIdleUnsupported.
func NewIdleChecker() countdown.IdleChecker {
	return newIdleChecker()
}
