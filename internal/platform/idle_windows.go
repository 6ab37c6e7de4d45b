package platform

import (
	"fmt"
	"syscall"
	"time"
	"unsafe"

	"pomotimer/internal/core/countdown"
)

var (
	user32            = syscall.NewLazyDLL("user32.dll")
	kernel32          = syscall.NewLazyDLL("kernel32.dll")
	procLastInputInfo = user32.NewProc("GetLastInputInfo")
	procTickCount     = kernel32.NewProc("GetTickCount")
)

type win32IdleChecker struct{}

// lastInputInfo mirrors the Win32 LASTINPUTINFO struct.
type lastInputInfo struct {
	size     uint32
	tickTime uint32
}

func newIdleChecker() countdown.IdleChecker {
	return win32IdleChecker{}
}

func (win32IdleChecker) IdleDuration() (time.Duration, error) {
	var info lastInputInfo
	info.size = uint32(unsafe.Sizeof(info))

	ok, _, callErr := procLastInputInfo.Call(uintptr(unsafe.Pointer(&info)))
	if ok == 0 {
		return 0, fmt.Errorf("GetLastInputInfo: %v", callErr)
	}

	now, _, _ := procTickCount.Call()
	// Both tick counts wrap at 32 bits; subtracting in uint32 keeps the
	// difference valid across the wrap.
	elapsed := uint32(now) - info.tickTime
	return time.Duration(elapsed) * time.Millisecond, nil
}
