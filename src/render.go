package minase

import (
	"fmt"

	"github.com/sat1226/minase/src/tui"
)

// RenderFrame draws one frame: header, two panes (directory listing +
// preview), and the status/input line, following spec.md 4.2's rendering
// contract and 4.6's three-row chrome budget (header + status + input).
func RenderFrame(c *Controller) {
	maxY, maxX := c.renderer.MaxY(), c.renderer.MaxX()
	if maxY < 4 || maxX < 4 {
		return
	}
	bodyHeight := maxY - 3
	paneWidth := (maxX - 1) / 2

	header := c.renderer.NewWindow(0, 0, maxX, 1, false, tui.MakeBorderStyle(tui.BorderNone, true))
	drawHeader(c, header)
	header.Refresh()
	header.Close()

	left := c.renderer.NewWindow(1, 0, paneWidth, bodyHeight, false, tui.MakeBorderStyle(tui.BorderNone, true))
	drawPane(c, left, c.focusedPane(), bodyHeight)
	left.Refresh()
	left.Close()

	preview := c.renderer.NewWindow(1, paneWidth+1, maxX-paneWidth-1, bodyHeight, true, tui.MakeBorderStyle(tui.BorderNone, true))
	drawPreview(c, preview, bodyHeight)
	preview.Refresh()
	preview.Close()

	status := c.renderer.NewWindow(maxY-1, 0, maxX, 1, false, tui.MakeBorderStyle(tui.BorderNone, true))
	drawStatusLine(c, status)
	status.Refresh()
	status.Close()

	c.renderer.Refresh()
}

func drawHeader(c *Controller, w tui.Window) {
	p := c.focusedPane()
	indicator := ""
	if n := c.tasks.TaskCount(); n > 0 {
		indicator = fmt.Sprintf(" [tasks: %d]", n)
	}
	count := p.Model().Count()
	cursor := p.Cursor() + 1
	if count == 0 {
		cursor = 0
	}
	text := fmt.Sprintf("%d/%d %s%s", cursor, count, p.Path(), indicator)
	w.CPrint(tui.ColHeader, tui.Bold, text)
}

func drawPane(c *Controller, w tui.Window, p *PaneState, height int) {
	if p.ScrollDirty() {
		p.RecomputeScroll(height)
	}
	count := p.Model().Count()
	if count == 0 {
		w.Print("empty")
		return
	}
	for row := 0; row < height; row++ {
		idx := p.Top() + row
		if idx >= count {
			break
		}
		w.Move(row, 0)
		drawRow(w, p, idx)
	}
}

func drawRow(w tui.Window, p *PaneState, idx int) {
	e := p.Model().At(idx)
	col := colorForKind(e)
	attr := tui.AttrUndefined
	if idx == p.Cursor() {
		col = tui.ColCursor
		attr = tui.Reverse
	}
	gutter := " "
	if IsSelected(e.Path()) {
		gutter = "*"
		if idx != p.Cursor() {
			col = tui.ColSelected
		}
	}
	name := e.DisplayName()
	if p.style == ViewDetail {
		name = TruncateName(name, 40) + fmt.Sprintf(" %8d", e.Size)
	}
	w.CPrint(col, attr, gutter+e.Glyph()+" "+name)
}

func colorForKind(e FileEntry) tui.ColorPair {
	switch {
	case e.IsDir():
		return tui.ColDir
	case e.Kind == KindSymlink:
		return tui.ColSymlink
	case e.Kind == KindSocket, e.Kind == KindFifo:
		return tui.ColSocket
	case e.Executable:
		return tui.ColExec
	default:
		return tui.ColFile
	}
}

func drawPreview(c *Controller, w tui.Window, height int) {
	job := c.preview.CurrentJob()
	if job == nil {
		return
	}
	payload := job.Payload()
	switch payload.Kind {
	case PayloadSixel:
		// Sixel bytes bypass the cell buffer entirely and are written
		// straight to stdout (spec.md 4.3 "draw() ... prints directly to
		// stdout"); drawSixel positions the cursor first.
		drawSixel(w, payload.Sixel)
	case PayloadDirectory, PayloadText:
		lines := payload.Lines
		scroll := job.Scroll()
		for row := 0; row < height; row++ {
			li := scroll + row
			if li >= len(lines) {
				break
			}
			w.Move(row, 0)
			w.CPrint(tui.ColPreview, tui.AttrUndefined, lines[li])
		}
	default:
		w.Print(payload.Label)
	}
}

func drawSixel(w tui.Window, data []byte) {
	w.Move(0, 0)
	w.Print(string(data))
}

func drawStatusLine(c *Controller, w tui.Window) {
	if msg, _ := c.status.Current(); msg != "" {
		w.CPrint(tui.ColInfo, tui.AttrUndefined, msg)
		return
	}
	_, kind := c.focusedPane().Model().FilterSetting()
	w.Print(filterKindName(kind))
}

// promptLine is a minimal synchronous line editor: it redraws the input row
// each keystroke and returns the committed string on Enter, "" on ESC.
// CtrlP/CtrlN replace the input with the previous/next filter-history entry.
func (c *Controller) promptLine(label string, seed string) string {
	buf := []rune(seed)
	defer c.filterHist.Reset()
	for {
		c.drawPrompt(label, string(buf))
		evt := c.renderer.GetChar()
		switch evt.Type {
		case tui.CtrlM:
			return string(buf)
		case tui.ESC:
			return ""
		case tui.BSpace:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case tui.Rune:
			buf = append(buf, evt.Char)
		case tui.CtrlP:
			buf = []rune(c.filterHist.Previous())
		case tui.CtrlN:
			buf = []rune(c.filterHist.Next())
		}
	}
}

func (c *Controller) drawPrompt(label string, text string) {
	maxY, maxX := c.renderer.MaxY(), c.renderer.MaxX()
	w := c.renderer.NewWindow(maxY-1, 0, maxX, 1, false, tui.MakeBorderStyle(tui.BorderNone, true))
	w.Print(label + text)
	w.Refresh()
	w.Close()
	c.renderer.Refresh()
}
