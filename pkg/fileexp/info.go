package fileexp

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/filetug/fileexp/pkg/files"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const modTimeLayout = "2006-01-02 15:04:05"

var timeNow = time.Now

var printer = message.NewPrinter(language.English)

type infoPanel struct {
	*tview.TextView
}

func newInfoPanel() *infoPanel {
	p := &infoPanel{
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetWrap(true),
	}
	p.SetBorder(true).SetTitle(" Info ")
	p.SetTextColor(tcell.ColorLightGray)
	return p
}

func (p *infoPanel) showFileInfo(info *files.FileInfo) {
	p.SetText(renderFileInfo(info))
	p.ScrollToBeginning()
}

func renderFileInfo(info *files.FileInfo) string {
	if info == nil {
		return "[gray]No entry selected[-]"
	}
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "[::b]%s[::-]\n\n", tview.Escape(info.Name))
	field := func(name, value string) {
		_, _ = fmt.Fprintf(&sb, "[gray]%-13s[-]%s\n", name+":", value)
	}
	field("Type", tview.Escape(info.TypeDesc))
	if info.Kind.IsError() {
		return sb.String()
	}
	if info.Regular != nil && info.Regular.MIME != "" {
		field("MIME", tview.Escape(info.Regular.MIME))
	}
	field("Permissions", info.PermString())
	field("Size", sizeText(info))
	if info.Symlink != nil {
		target := info.Symlink.Target
		if target == "" {
			target = "N/A"
		}
		field("Symlink", "-> "+tview.Escape(target))
	}
	if !info.ModTime.IsZero() {
		field("Last mod.", modTimeText(info.ModTime))
	}
	return sb.String()
}

func sizeText(info *files.FileInfo) string {
	switch {
	case info.Regular != nil:
		if !info.Regular.SizeOK {
			return "N/A"
		}
		return printer.Sprintf("%d bytes (%s)", info.Regular.Size, info.SizeText())
	case info.Dir != nil:
		if !info.Dir.HasAccess {
			return "N/A"
		}
		return printer.Sprintf("%d subdirectories, %d files", info.Dir.SubdirCount, info.Dir.FileCount)
	default:
		return "N/A"
	}
}

func modTimeText(t time.Time) string {
	return t.Format(modTimeLayout) + " (" + humanize.RelTime(t, timeNow(), "ago", "from now") + ")"
}
