//go:build !windows

package app

import (
	"syscall"

	"github.com/gdamore/tcell/v2"
)

func (app *Application) suspendToShell() {
	// Hand the terminal back before stopping.
	if err := app.screen.Suspend(); err != nil {
		app.logger.Printf("cannot suspend screen: %v", err)
		return
	}
	// Stop only this process, not the process group of the launching shell.
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}

func (app *Application) resumeAfterStop() {
	if err := app.screen.Resume(); err != nil {
		app.logger.Printf("cannot resume screen: %v", err)
		return
	}
	app.screen.Sync()
	app.redraw.Invalidate()
	_ = app.screen.PostEvent(tcell.NewEventInterrupt("resume"))
}
