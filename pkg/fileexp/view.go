package fileexp

import (
	"github.com/filetug/fileexp/pkg/files"
	"github.com/filetug/fileexp/pkg/navigator"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var _ navigator.Screen = (*View)(nil)

// View is the file explorer screen: the listing on the left, the info
// panel on the right and the hint line at the bottom.
type View struct {
	*tview.Flex
	app       App
	nav       *navigator.Navigator
	rootTitle string

	explorer *explorer
	info     *infoPanel
	bottom   *bottom
}

func NewView(app App, rootTitle string, maxColumns int) *View {
	v := &View{
		app:       app,
		rootTitle: rootTitle,
		explorer:  newExplorer(maxColumns),
		info:      newInfoPanel(),
	}
	v.bottom = newBottom(v.menuItems())
	v.explorer.onSelect = func(index int) {
		if v.nav != nil {
			v.nav.Select(index)
		}
	}
	v.explorer.SetInputCapture(v.inputCapture)

	columns := tview.NewFlex().
		AddItem(v.explorer, 0, 3, true).
		AddItem(v.info, 0, 2, false)
	v.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(columns, 0, 1, true).
		AddItem(v.bottom, 1, 0, false)
	return v
}

// SetNavigator binds the view to the navigator that feeds it.
func (v *View) SetNavigator(nav *navigator.Navigator) {
	v.nav = nav
}

func (v *View) ShowListing(dir string, entries []files.Entry, selected int) {
	title := dir
	if v.rootTitle != "" {
		title = v.rootTitle + ": " + dir
	}
	v.explorer.setEntries(title, entries, selected)
}

func (v *View) ShowFileInfo(info *files.FileInfo) {
	v.info.showFileInfo(info)
}

func (v *View) menuItems() []menuItem {
	return []menuItem{
		{Title: "Enter open", HotKeys: []string{"Enter"}, Region: "enter", Action: v.enter},
		{Title: "Bksp up", HotKeys: []string{"Bksp"}, Region: "up", Action: v.up},
		{Title: ". hidden", HotKeys: []string{"."}, Region: "hidden", Action: v.toggleHidden},
		{Title: "Alt+~ home", HotKeys: []string{"~"}, Region: "home", Action: v.goHome},
		{Title: "Alt+/ root", HotKeys: []string{"/"}, Region: "root", Action: v.goRoot},
		{Title: "q quit", HotKeys: []string{"q"}, Region: "quit", Action: v.quit},
	}
}

func (v *View) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	if v.nav == nil {
		return event
	}
	switch event.Key() {
	case tcell.KeyEnter:
		v.enter()
		return nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		v.up()
		return nil
	case tcell.KeyRune:
		if event.Modifiers()&tcell.ModAlt != 0 {
			switch event.Rune() {
			case '~', 'h', 'H':
				v.goHome()
				return nil
			case '/', 'r', 'R':
				v.goRoot()
				return nil
			}
			return event
		}
		switch event.Rune() {
		case '.':
			v.toggleHidden()
			return nil
		case 'q', 'Q':
			v.quit()
			return nil
		}
	default:
	}
	return event
}

func (v *View) enter() {
	if v.nav != nil {
		v.nav.Enter()
	}
}

func (v *View) up() {
	if v.nav != nil {
		v.nav.Up()
	}
}

func (v *View) toggleHidden() {
	if v.nav != nil {
		v.nav.ToggleHidden()
	}
}

func (v *View) goHome() {
	if v.nav != nil {
		v.nav.GoHome()
	}
}

func (v *View) goRoot() {
	if v.nav != nil {
		v.nav.GoRoot()
	}
}

func (v *View) quit() {
	if v.nav != nil {
		v.nav.Quit()
	}
	v.app.Stop()
}
