//go:build windows

package app

// There is no job control on Windows; suspending is a no-op.
func (app *Application) suspendToShell() {}

func (app *Application) resumeAfterStop() {}
