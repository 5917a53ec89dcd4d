package fileexp

import (
	"path/filepath"
	"testing"

	"github.com/filetug/fileexp/pkg/navigator"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func altKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModAlt)
}

func cellTexts(v *View) []string {
	var texts []string
	for i := range v.explorer.entries {
		row, col := v.explorer.cellOf(i)
		texts = append(texts, v.explorer.GetCell(row, col).Text)
	}
	return texts
}

func TestSetupApp(t *testing.T) {
	v, _, home := newViewForTest(t)
	require.NotNil(t, v.nav)
	assert.Equal(t, home, v.nav.Dir())
	assert.Equal(t, []string{"..", "docs/", "notes.txt"}, cellTexts(v))
	assert.Contains(t, v.explorer.GetTitle(), home)
	assert.Contains(t, v.info.GetText(true), "..")
	assert.Contains(t, v.info.GetText(true), "Directory")
}

func TestView_SelectAndEnter(t *testing.T) {
	v, _, home := newViewForTest(t)
	capture := v.explorer.GetInputCapture()

	v.explorer.Select(v.explorer.cellOf(2))
	assert.Equal(t, 2, v.nav.Selected())
	assert.Contains(t, v.info.GetText(true), "Text File")

	v.explorer.Select(v.explorer.cellOf(1))
	assert.Nil(t, capture(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	assert.Equal(t, filepath.Join(home, "docs"), v.nav.Dir())
	assert.Equal(t, []string{".."}, cellTexts(v))

	assert.Nil(t, capture(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone)))
	assert.Equal(t, home, v.nav.Dir())
}

func TestView_Keys(t *testing.T) {
	v, app, home := newViewForTest(t)
	capture := v.explorer.GetInputCapture()

	assert.Nil(t, capture(runeKey('.')))
	assert.True(t, v.nav.ShowHidden())
	assert.Equal(t, []string{"..", ".profile", "docs/", "notes.txt"}, cellTexts(v))

	assert.Nil(t, capture(altKey('/')))
	assert.Equal(t, "/", v.nav.Dir())

	assert.Nil(t, capture(altKey('~')))
	assert.Equal(t, home, v.nav.Dir())

	unhandled := altKey('z')
	assert.Equal(t, unhandled, capture(unhandled))
	down := tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)
	assert.Equal(t, down, capture(down))
	other := runeKey('x')
	assert.Equal(t, other, capture(other))

	app.EXPECT().Stop().Times(1)
	assert.Nil(t, capture(runeKey('q')))
	assert.True(t, v.nav.Done())
}

func TestView_WithoutNavigator(t *testing.T) {
	v := NewView(NewApp(nil), "", 0)
	event := runeKey('.')
	assert.Equal(t, event, v.inputCapture(event))
	for _, mi := range v.menuItems() {
		mi.Action()
	}
}

func TestView_Options(t *testing.T) {
	v, _, home := newViewForTest(t,
		WithMaxColumns(1),
		WithNavigatorOptions(navigator.WithShowHidden(true), navigator.WithStartDir("docs")),
	)
	assert.Equal(t, 1, v.explorer.maxColumns)
	assert.True(t, v.nav.ShowHidden())
	assert.Equal(t, filepath.Join(home, "docs"), v.nav.Dir())
}
