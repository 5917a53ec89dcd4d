package fileexp

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const hotkeyColor = "white"

type menuItem struct {
	Title   string
	HotKeys []string
	// Region of the item in the hint line, defaults to the first hot key.
	Region string
	Action  func()
}

// bottom is the hint line. Clicking an item runs its action.
type bottom struct {
	*tview.TextView
	menuItems []menuItem
}

func newBottom(menuItems []menuItem) *bottom {
	b := &bottom{
		menuItems: menuItems,
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetRegions(true).
			SetTextColor(tcell.ColorSlateGray),
	}
	b.SetHighlightedFunc(b.highlighted)
	b.render()
	return b
}

func (b *bottom) render() {
	b.SetText(renderMenuItems(b.menuItems))
}

func renderMenuItems(menuItems []menuItem) string {
	const separator = "┊"
	titles := make([]string, 0, len(menuItems))
	for _, mi := range menuItems {
		title := mi.Title
		for _, key := range mi.HotKeys {
			hotkeyText := fmt.Sprintf("[%s]%s[-]", hotkeyColor, tview.Escape(key))
			title = strings.Replace(title, key, hotkeyText, 1)
		}
		titles = append(titles, fmt.Sprintf(`["%s"]%s[""]`, mi.region(), title))
	}
	return strings.Join(titles, separator)
}

func (mi menuItem) region() string {
	if mi.Region != "" {
		return mi.Region
	}
	return mi.HotKeys[0]
}

func (b *bottom) highlighted(added, _, _ []string) {
	if len(added) == 0 {
		return
	}
	region := added[0]
	for _, mi := range b.menuItems {
		if mi.region() == region && mi.Action != nil {
			mi.Action()
			return
		}
	}
}
