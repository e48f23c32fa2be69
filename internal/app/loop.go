package app

import (
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/capview/internal/pager"
	inputui "github.com/kk-code-lab/capview/internal/ui/input"
	renderui "github.com/kk-code-lab/capview/internal/ui/render"
)

// Run drives the viewer until the user quits. Events are handled one at a
// time on the calling goroutine and the screen is released on return, panics
// included.
func (app *Application) Run() error {
	defer func() {
		if r := recover(); r != nil {
			_ = app.Close()
			app.logger.Printf("panic: %v", r)
			panic(r)
		}
	}()
	defer func() {
		_ = app.Close()
	}()

	stop := app.forwardSignals()
	defer stop()

	app.syncSize()
	for {
		app.draw()

		ev := app.screen.PollEvent()
		if ev == nil {
			// Screen was finalized underneath us.
			return nil
		}
		if quit := app.handleEvent(ev); quit {
			app.logger.Printf("quit at line %d/%d", app.viewport.Start(), app.viewport.TotalLines())
			return nil
		}
	}
}

// forwardSignals turns process signals into interrupt events so they are
// handled on the event loop like any other input.
func (app *Application) forwardSignals() func() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, append(stopSignals(), contSignals()...)...)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigs:
				_ = app.screen.PostEvent(tcell.NewEventInterrupt(sig))
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(sigs)
		close(done)
	}
}

func (app *Application) frame() pager.Frame {
	w, h := app.screen.Size()
	return pager.Frame{
		Start:        app.viewport.Start(),
		LinesPerPage: app.viewport.LinesPerPage(),
		Width:        w,
		Height:       h,
		Overlay:      app.showHelp,
	}
}

// draw renders only when the visible frame differs from the last one drawn.
func (app *Application) draw() {
	f := app.frame()
	if !app.redraw.NeedsRedraw(f) {
		return
	}
	app.renderer.Render(renderui.View{
		Path:     app.path,
		Document: app.doc,
		Viewport: app.viewport,
		ShowHelp: app.showHelp,
	})
	app.redraw.Mark(f)
	app.draws++
}

// syncSize re-reads the terminal height and resizes the viewport.
func (app *Application) syncSize() bool {
	w, h := app.screen.Size()
	changed := app.viewport.Resize(renderui.ContentRows(h))
	if changed {
		app.logger.Printf("resized to %dx%d, %d lines per page", w, h, app.viewport.LinesPerPage())
	}
	return changed
}

// handleEvent applies at most one transition and reports whether to quit.
func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		app.syncSize()
		return false
	case *tcell.EventKey:
		return app.handleCommand(app.input.ProcessEvent(ev))
	case *tcell.EventInterrupt:
		sig, ok := ev.Data().(os.Signal)
		if !ok {
			return false
		}
		if isContSignal(sig) {
			app.resumeAfterStop()
			return false
		}
		app.logger.Printf("received %v", sig)
		return true
	default:
		// Mouse and everything else is ignored.
		return false
	}
}

func (app *Application) handleCommand(cmd inputui.Command) bool {
	if app.showHelp {
		// Any key dismisses the help overlay and does nothing else.
		if cmd != inputui.CommandNone {
			app.showHelp = false
		}
		return false
	}

	vp := app.viewport
	switch cmd {
	case inputui.CommandHelp:
		app.showHelp = true
	case inputui.CommandQuit:
		return true
	case inputui.CommandScrollUp:
		vp.ScrollUp()
	case inputui.CommandScrollDown:
		vp.ScrollDown()
	case inputui.CommandPageUp:
		vp.PageUp()
	case inputui.CommandPageDown:
		vp.PageDown()
	case inputui.CommandFirst:
		vp.First()
	case inputui.CommandLast:
		vp.Last()
	case inputui.CommandSuspend:
		app.suspendToShell()
	case inputui.CommandRefresh:
		app.screen.Sync()
		app.syncSize()
		app.redraw.Invalidate()
		app.logger.Printf("refresh requested")
	}
	return false
}

func isContSignal(sig os.Signal) bool {
	for _, s := range contSignals() {
		if s == sig {
			return true
		}
	}
	return false
}
