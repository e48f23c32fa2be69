//go:build windows

package app

import (
	"os"
	"syscall"
)

func stopSignals() []os.Signal {
	return []os.Signal{syscall.SIGTERM}
}

func contSignals() []os.Signal {
	return nil
}
