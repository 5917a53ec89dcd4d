package fileexp

import (
	"github.com/filetug/fileexp/pkg/files"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
)

const columnGap = 1

var (
	dirColor           = tcell.ColorLightSkyBlue
	fileColor          = tcell.ColorWhite
	notSelectableColor = tcell.ColorDimGray
)

// explorer shows a listing as a menu laid out row-major in columns.
type explorer struct {
	*tview.Table
	maxColumns int
	entries    []files.Entry
	columns    int
	selected   int
	syncing    bool
	onSelect   func(index int)
}

func newExplorer(maxColumns int) *explorer {
	e := &explorer{
		Table:      tview.NewTable(),
		maxColumns: maxColumns,
		columns:    1,
		selected:   -1,
	}
	e.SetSelectable(true, true)
	e.SetBorder(true)
	e.SetSelectionChangedFunc(e.selectionChanged)
	return e
}

func (e *explorer) Draw(screen tcell.Screen) {
	_, _, width, _ := e.GetInnerRect()
	if columns := e.columnsFor(width); columns != e.columns {
		e.columns = columns
		e.render()
	}
	e.Table.Draw(screen)
}

// columnsFor returns min(maxColumns, width / widest name), at least 1.
// A non-positive maxColumns leaves the count to the width.
func (e *explorer) columnsFor(width int) int {
	widest := 1
	for _, entry := range e.entries {
		if w := runewidth.StringWidth(entry.Name) + columnGap; w > widest {
			widest = w
		}
	}
	columns := width / widest
	if e.maxColumns > 0 && columns > e.maxColumns {
		columns = e.maxColumns
	}
	if columns < 1 {
		columns = 1
	}
	return columns
}

func (e *explorer) setEntries(title string, entries []files.Entry, selected int) {
	e.SetTitle(" " + tview.Escape(title) + " ")
	e.entries = entries
	e.selected = selected
	_, _, width, _ := e.GetInnerRect()
	e.columns = e.columnsFor(width)
	e.render()
}

func (e *explorer) render() {
	e.syncing = true
	defer func() { e.syncing = false }()

	e.Clear()
	for i, entry := range e.entries {
		row, col := e.cellOf(i)
		e.SetCell(row, col, entryCell(entry))
	}
	// Pad the last row so every cell of the grid exists.
	if n := len(e.entries); n > 0 {
		for i := n; i%e.columns != 0; i++ {
			row, col := e.cellOf(i)
			e.SetCell(row, col, tview.NewTableCell("").SetSelectable(false))
		}
	}
	e.ScrollToBeginning()
	if e.selected >= 0 && e.selected < len(e.entries) {
		e.Select(e.cellOf(e.selected))
	}
}

func entryCell(entry files.Entry) *tview.TableCell {
	cell := tview.NewTableCell(tview.Escape(entry.Name)).
		SetSelectable(entry.Selectable).
		SetReference(entry)
	switch {
	case !entry.Selectable:
		cell.SetTextColor(notSelectableColor)
	case entry.IsDir():
		cell.SetTextColor(dirColor)
	default:
		cell.SetTextColor(fileColor)
	}
	return cell
}

func (e *explorer) cellOf(index int) (row, col int) {
	return index / e.columns, index % e.columns
}

func (e *explorer) indexOf(row, col int) int {
	return row*e.columns + col
}

func (e *explorer) selectionChanged(row, col int) {
	if e.syncing {
		return
	}
	index := e.indexOf(row, col)
	if index < 0 || index >= len(e.entries) || !e.entries[index].Selectable {
		return
	}
	e.selected = index
	if e.onSelect != nil {
		e.onSelect(index)
	}
}
