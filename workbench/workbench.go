package workbench

import (
	"fmt"

	"github.com/rivo/tview"

	"goxfer/cryptocore/consts/errs"
	"goxfer/cryptocore/logger"
	"goxfer/cryptocore/workbench/creds"
)

const pageFiles = "files"
const pageOverlay = "overlay"

// App is the workbench's top-level tview wiring: a file browser page and
// an operation-form page that swap in and out of a tview.Pages, the way
// the donor TUI's router switches between named pages instead of
// mutating a single fixed layout.
type App struct {
	app  *tview.Application
	log  logger.Logger
	pass *creds.Manager

	pages  *tview.Pages
	status *tview.TextView
	files  *filesView
}

// New builds a workbench rooted at dir, logging through log (which may be
// nil to disable logging).
func New(dir string, log logger.Logger) (*App, error) {
	a := &App{
		app:  tview.NewApplication(),
		log:  log,
		pass: creds.NewManager(),
	}

	a.status = tview.NewTextView().SetDynamicColors(true)
	a.status.SetBorder(true).SetTitle("status")

	a.files = newFilesView(a, dir)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.files.table, 0, 1, true).
		AddItem(a.status, 3, 0, false)

	a.pages = tview.NewPages().AddPage(pageFiles, root, true, true)

	return a, nil
}

// Run starts the tview event loop. It blocks until the user quits.
func (a *App) Run() error {
	a.files.reload()
	return a.app.SetRoot(a.pages, true).SetFocus(a.files.table).Run()
}

func (a *App) setStatus(msg string) {
	a.app.QueueUpdateDraw(func() {
		a.status.SetText("[white]" + msg)
	})
	if a.log != nil {
		a.log.Log(logger.InfoLevel, msg)
	}
}

func (a *App) setError(msg string) {
	a.app.QueueUpdateDraw(func() {
		a.status.SetText("[red]" + msg)
	})
	if a.log != nil {
		a.log.Log(logger.ErrorLevel, msg)
	}
}

// emitErr logs a classified error and surfaces its user-facing message on
// the status bar, returning a plain error carrying that same message.
func (a *App) emitErr(errf *errs.Errorf) error {
	a.app.QueueUpdateDraw(func() {
		a.status.SetText("[red]" + errf.Message)
	})
	if a.log != nil {
		a.log.Log(logger.ErrorLevel, "%s: %v: %s", errf.Type, errf.Error, errf.Message)
	}
	return fmt.Errorf("%s", errf.Message)
}

// showOverlay replaces the overlay page with view and switches to it,
// returning a function that switches back to the file browser.
func (a *App) showOverlay(view tview.Primitive) func() {
	if a.pages.HasPage(pageOverlay) {
		a.pages.RemovePage(pageOverlay)
	}
	a.pages.AddPage(pageOverlay, view, true, true)
	a.app.SetFocus(view)
	return func() {
		a.pages.SwitchToPage(pageFiles)
		a.app.SetFocus(a.files.table)
	}
}
