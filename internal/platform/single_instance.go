package platform

import (
	"errors"
	"hash/fnv"
	"net"
	"strconv"
)

// ErrAlreadyRunning reports that another process holds the instance lock.
var ErrAlreadyRunning = errors.New("another instance is already running")

// InstanceGuard keeps the single-instance lock for the life of the
// process. The lock is a listener on a localhost port derived from the
// app name; the OS releases the bind when the process exits.
type InstanceGuard struct {
	listener net.Listener
}

// AcquireSingleInstance takes the instance lock for the named application.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := net.JoinHostPort("127.0.0.1", strconv.Itoa(portFromName(appName)))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, ErrAlreadyRunning
	}
	return &InstanceGuard{listener: listener}, nil
}

// Release gives the lock up early. Safe on a nil guard.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	return guard.listener.Close()
}

// portFromName maps the app name onto the 20000-39999 port range.
func portFromName(appName string) int {
	digest := fnv.New32a()
	digest.Write([]byte(appName))
	return 20000 + int(digest.Sum32()%20000)
}
