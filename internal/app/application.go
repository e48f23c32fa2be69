package app

import (
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/capview/internal/hexview"
	"github.com/kk-code-lab/capview/internal/pager"
	inputui "github.com/kk-code-lab/capview/internal/ui/input"
	renderui "github.com/kk-code-lab/capview/internal/ui/render"
)

// Application represents the running viewer.
type Application struct {
	screen   tcell.Screen
	path     string
	doc      *hexview.Document
	viewport *pager.Viewport
	renderer *renderui.Renderer
	input    *inputui.InputHandler
	redraw   pager.RedrawTracker
	logger   *log.Logger

	showHelp  bool
	draws     int
	closeOnce sync.Once
}

// NewApplication loads the capture and takes over the terminal. The caller
// must Close the application on every exit path.
func NewApplication(opts Options, logger *log.Logger) (*Application, error) {
	doc, err := LoadDocument(opts, logger)
	if err != nil {
		return nil, err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newApplication(screen, doc, opts, logger)
}

func newApplication(screen tcell.Screen, doc *hexview.Document, opts Options, logger *log.Logger) (*Application, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}

	theme := renderui.GetColorTheme()
	if !opts.Color {
		theme = renderui.MonochromeTheme()
	}

	_, h := screen.Size()
	viewport := pager.NewViewport(renderui.ContentRows(h), doc.TotalLines())
	viewport.JumpToLine(doc.LineForOffset(opts.StartOffset))

	return &Application{
		screen:   screen,
		path:     opts.Path,
		doc:      doc,
		viewport: viewport,
		renderer: renderui.NewRenderer(screen, theme),
		input:    inputui.NewInputHandler(opts.Debounce),
		logger:   logger,
	}, nil
}

// Close restores the terminal. It is safe to call more than once.
func (app *Application) Close() error {
	app.closeOnce.Do(func() {
		app.screen.Fini()
	})
	return nil
}

// Viewport exposes the pagination state, mainly for callers that report the
// final position.
func (app *Application) Viewport() *pager.Viewport {
	return app.viewport
}
