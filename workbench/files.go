package workbench

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/docker/go-units"
	"github.com/gdamore/tcell/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/rivo/tview"

	"goxfer/cryptocore/consts/errs"
)

// filesView is the local-directory analogue of the donor's remote file
// table: it lists dir's contents, supports a fuzzy filter, and drives
// encrypt/decrypt actions on the selected entry via Alt-key shortcuts.
type filesView struct {
	app *App
	dir string

	table  *tview.Table
	filter string
	all    []os.DirEntry
	shown  []os.DirEntry
}

func newFilesView(app *App, dir string) *filesView {
	f := &filesView{app: app, dir: dir}

	f.table = tview.NewTable().SetSeparator(tview.Borders.Vertical)
	f.table.SetBorder(true).SetTitle(dir).SetTitleAlign(tview.AlignLeft)
	f.table.SetInputCapture(f.onKey)

	return f
}

func (f *filesView) onKey(event *tcell.EventKey) *tcell.EventKey {
	if event.Modifiers() == tcell.ModAlt {
		switch event.Rune() {
		case 'E', 'e':
			f.withSelected(f.showEncryptForm)
		case 'D', 'd':
			f.withSelected(f.showDecryptForm)
		case 'R', 'r':
			go f.reload()
		case '/', '?':
			f.showFilterForm()
		}
		return nil
	}
	return event
}

func (f *filesView) withSelected(fn func(path string)) {
	row, _ := f.table.GetSelection()
	idx, ok := f.table.GetCell(row, 0).Reference.(int)
	if !ok || idx < 0 || idx >= len(f.shown) {
		return
	}
	fn(filepath.Join(f.dir, f.shown[idx].Name()))
}

func (f *filesView) reload() {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		f.app.emitErr(&errs.Errorf{
			Type:    errs.ErrFileNotFound,
			Error:   err,
			Message: fmt.Sprintf("read dir: %v", err),
		})
		return
	}
	regular := make([]os.DirEntry, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			regular = append(regular, e)
		}
	}
	sort.Slice(regular, func(i, j int) bool { return regular[i].Name() < regular[j].Name() })
	f.all = regular
	f.applyFilter()
}

func (f *filesView) applyFilter() {
	if f.filter == "" {
		f.shown = f.all
	} else {
		f.shown = make([]os.DirEntry, 0, len(f.all))
		for _, e := range f.all {
			if fuzzy.MatchNormalizedFold(f.filter, e.Name()) {
				f.shown = append(f.shown, e)
			}
		}
	}
	f.redraw()
}

func (f *filesView) redraw() {
	f.app.app.QueueUpdateDraw(func() {
		f.table.Clear()
		headers := []string{"#", "Name", "Size"}
		for col, h := range headers {
			cell := tview.NewTableCell(h).SetSelectable(false).SetAttributes(tcell.AttrBold)
			if col == 1 {
				cell.SetExpansion(1)
			}
			f.table.SetCell(0, col, cell)
		}
		for i, e := range f.shown {
			info, _ := e.Info()
			var size string
			if info != nil {
				size = units.HumanSize(float64(info.Size()))
			}
			f.table.SetCell(i+1, 0, tview.NewTableCell(fmt.Sprintf(" %d ", i+1)).SetReference(i))
			f.table.SetCell(i+1, 1, tview.NewTableCell(" "+e.Name()+" ").SetExpansion(1))
			f.table.SetCell(i+1, 2, tview.NewTableCell(" "+size+" ").SetAlign(tview.AlignRight))
		}
		f.table.SetFixed(1, 0).SetSelectable(true, false)
		if len(f.shown) > 0 {
			f.table.Select(1, 0)
		}
		title := fmt.Sprintf("%s  (alt+e encrypt, alt+d decrypt, alt+r refresh, alt+/ filter)", f.dir)
		f.table.SetTitle(title)
	})
}

func (f *filesView) showFilterForm() {
	form := tview.NewForm()
	form.AddInputField("filter:", f.filter, 40, nil, nil)
	close := f.app.showOverlay(form)
	finish := func(apply bool) {
		if apply {
			f.filter = form.GetFormItemByLabel("filter:").(*tview.InputField).GetText()
			f.applyFilter()
		}
		close()
	}
	form.AddButton("Apply", func() { finish(true) })
	form.AddButton("Cancel", func() { finish(false) })
}
