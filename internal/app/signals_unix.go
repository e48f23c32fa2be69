//go:build !windows

package app

import (
	"os"
	"syscall"
)

// stopSignals end the viewer the same way a quit key does.
func stopSignals() []os.Signal {
	return []os.Signal{syscall.SIGTERM, syscall.SIGHUP}
}

func contSignals() []os.Signal {
	return []os.Signal{syscall.SIGCONT}
}
