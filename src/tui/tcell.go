package tui

import (
	"os"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/gdamore/tcell/v2/encoding"
	"github.com/mattn/go-runewidth"
)

func (p ColorPair) style() tcell.Style {
	return tcell.StyleDefault.Foreground(p.Fg().tcell()).Background(p.Bg().tcell())
}

// Attr is a bitmask of SGR-style text attributes, independent of colour --
// matches the nano-rule renderer's need to combine a colour pair with bold/
// underline/reverse (spec.md 4.5).
type Attr int32

const (
	AttrUndefined Attr = 0
	Bold          Attr = 1 << iota
	Dim
	Italic
	Underline
	Blink
	Reverse
)

// TcellWindow implements Window over one rectangular region of the screen.
type TcellWindow struct {
	preview     bool
	top         int
	left        int
	width       int
	height      int
	normal      ColorPair
	lastX       int
	lastY       int
	moveCursor  bool
	borderStyle BorderStyle
	screen      tcell.Screen
}

func (w *TcellWindow) Top() int    { return w.top }
func (w *TcellWindow) Left() int   { return w.left }
func (w *TcellWindow) Width() int  { return w.width }
func (w *TcellWindow) Height() int { return w.height }

func (w *TcellWindow) Refresh() {
	if w.moveCursor {
		w.screen.ShowCursor(w.left+w.lastX, w.top+w.lastY)
		w.moveCursor = false
	}
	w.lastX = 0
	w.lastY = 0
	w.drawBorder()
}

func (r Color) tcell() tcell.Color {
	switch {
	case r <= colDefault:
		return tcell.ColorDefault
	case r.is24():
		rr := (int32(r) >> 16) & 0xff
		gg := (int32(r) >> 8) & 0xff
		bb := int32(r) & 0xff
		return tcell.NewRGBColor(rr, gg, bb)
	case r >= colBlack && r <= colWhite:
		return [...]tcell.Color{
			tcell.ColorBlack, tcell.ColorRed, tcell.ColorGreen, tcell.ColorYellow,
			tcell.ColorBlue, tcell.ColorDarkMagenta, tcell.ColorLightCyan, tcell.ColorWhite,
		}[int(r)]
	default:
		return tcell.PaletteColor(int(r))
	}
}

func (r *FullscreenRenderer) defaultTheme(screen tcell.Screen) *ColorTheme {
	if screen.Colors() >= 256 {
		return Dark256
	}
	return Default16
}

func (r *FullscreenRenderer) screen() tcell.Screen {
	return globalScreen
}

var globalScreen tcell.Screen

func (r *FullscreenRenderer) initScreen() {
	s, err := tcell.NewScreen()
	if err != nil {
		errorExit(err.Error())
	}
	if err = s.Init(); err != nil {
		errorExit(err.Error())
	}
	if r.mouse {
		s.EnableMouse()
	} else {
		s.DisableMouse()
	}
	globalScreen = s
}

func (r *FullscreenRenderer) Init() {
	if os.Getenv("TERM") == "cygwin" {
		os.Setenv("TERM", "")
	}
	encoding.Register()
	r.initScreen()
	if r.theme == nil {
		r.theme = r.defaultTheme(globalScreen)
	}
	initTheme(r.theme)
}

func (r *FullscreenRenderer) MaxX() int { w, _ := globalScreen.Size(); return w }
func (r *FullscreenRenderer) MaxY() int { _, h := globalScreen.Size(); return h }

func (r *FullscreenRenderer) Clear() {
	globalScreen.Sync()
	globalScreen.Clear()
}

func (r *FullscreenRenderer) Refresh() { globalScreen.Show() }

// GetChar blocks until the next keyboard/mouse/resize event; it has no
// timeout. Minase's Controller (C7) calls it directly at the start of each
// tick, so the main loop advances only when an event arrives.
func (r *FullscreenRenderer) GetChar() Event {
	ev := globalScreen.PollEvent()
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Event{Resize, 0, nil}

	case *tcell.EventMouse:
		x, y := ev.Position()
		button := ev.Buttons()
		if button&tcell.WheelDown != 0 {
			return Event{Mouse, 0, &MouseEvent{y, x, false, false, false}}
		} else if button&tcell.WheelUp != 0 {
			return Event{Mouse, 0, &MouseEvent{y, x, false, false, false}}
		}
		left := button&tcell.Button1 != 0
		down := left || button&tcell.Button2 != 0
		double := false
		if down {
			now := time.Now()
			if now.Sub(r.prevDownTime) < doubleClickDuration {
				double = true
			}
			r.prevDownTime = now
		}
		return Event{Mouse, 0, &MouseEvent{y, x, left, down, double}}

	case *tcell.EventKey:
		alt := (ev.Modifiers() & tcell.ModAlt) > 0
		switch ev.Key() {
		case tcell.KeyCtrlA:
			return Event{CtrlA, 0, nil}
		case tcell.KeyCtrlD:
			return Event{CtrlD, 0, nil}
		case tcell.KeyCtrlG:
			return Event{CtrlG, 0, nil}
		case tcell.KeyCtrlJ:
			return Event{CtrlJ, 0, nil}
		case tcell.KeyCtrlK:
			return Event{CtrlK, 0, nil}
		case tcell.KeyCtrlL:
			return Event{CtrlL, 0, nil}
		case tcell.KeyCtrlO:
			return Event{CtrlO, 0, nil}
		case tcell.KeyCtrlR:
			return Event{CtrlR, 0, nil}
		case tcell.KeyCtrlU:
			return Event{CtrlU, 0, nil}
		case tcell.KeyCtrlX:
			return Event{CtrlX, 0, nil}
		case tcell.KeyCtrlUnderscore:
			return Event{CtrlSlash, 0, nil}
		case tcell.KeyBackspace2, tcell.KeyBackspace:
			return Event{BSpace, 0, nil}
		case tcell.KeyUp:
			return Event{Up, 0, nil}
		case tcell.KeyDown:
			return Event{Down, 0, nil}
		case tcell.KeyLeft:
			return Event{Left, 0, nil}
		case tcell.KeyRight:
			return Event{Right, 0, nil}
		case tcell.KeyHome:
			return Event{Home, 0, nil}
		case tcell.KeyEnd:
			return Event{End, 0, nil}
		case tcell.KeyDelete:
			return Event{Del, 0, nil}
		case tcell.KeyPgUp:
			return Event{PgUp, 0, nil}
		case tcell.KeyPgDn:
			return Event{PgDn, 0, nil}
		case tcell.KeyF1, tcell.KeyF2, tcell.KeyF3, tcell.KeyF4:
			return Event{F1 + int(ev.Key()-tcell.KeyF1), 0, nil}
		case tcell.KeyEnter:
			return Event{CtrlM, 0, nil}
		case tcell.KeyTab:
			return Event{Tab, 0, nil}
		case tcell.KeyEsc:
			return Event{ESC, 0, nil}
		case tcell.KeyRune:
			r := ev.Rune()
			if alt {
				return Event{Alt0 + int(r) - '0', r, nil}
			}
			return Event{Rune, r, nil}
		}
	}
	return Event{Invalid, 0, nil}
}

func (r *FullscreenRenderer) Pause()  { globalScreen.Fini() }
func (r *FullscreenRenderer) Resume() { r.initScreen() }
func (r *FullscreenRenderer) Close()  { globalScreen.Fini() }

func (r *FullscreenRenderer) NewWindow(top, left, width, height int, preview bool, borderStyle BorderStyle) Window {
	normal := ColNormal
	if preview {
		normal = ColPreview
	}
	return &TcellWindow{
		preview: preview,
		top: top, left: left, width: width, height: height,
		normal: normal, borderStyle: borderStyle, screen: globalScreen,
	}
}

func (w *TcellWindow) Close() {}

func (w *TcellWindow) fill(r rune, style tcell.Style) {
	for ly := 0; ly < w.height; ly++ {
		for lx := 0; lx < w.width; lx++ {
			w.screen.SetContent(w.left+lx, w.top+ly, r, nil, style)
		}
	}
}

func (w *TcellWindow) Erase() { w.fill(' ', w.normal.style()) }

func (w *TcellWindow) Move(y, x int) {
	w.lastX = x
	w.lastY = y
	w.moveCursor = true
}

func (w *TcellWindow) MoveAndClear(y, x int) {
	w.Move(y, x)
	for i := w.lastX; i < w.width; i++ {
		w.screen.SetContent(i+w.left, w.lastY+w.top, ' ', nil, w.normal.style())
	}
	w.lastX = x
}

func (w *TcellWindow) Print(text string) { w.CPrint(w.normal, AttrUndefined, text) }

func styleWithAttr(style tcell.Style, a Attr) tcell.Style {
	return style.
		Bold(a&Bold != 0).
		Dim(a&Dim != 0).
		Italic(a&Italic != 0).
		Underline(a&Underline != 0).
		Blink(a&Blink != 0).
		Reverse(a&Reverse != 0)
}

func (w *TcellWindow) CPrint(pair ColorPair, attr Attr, text string) {
	style := styleWithAttr(pair.style(), attr)
	lx := 0
	t := text
	for len(t) > 0 {
		r, size := utf8.DecodeRuneInString(t)
		t = t[size:]
		if r < ' ' && r != '\n' {
			continue
		}
		if r == '\n' {
			w.lastY++
			lx = 0
			continue
		}
		if r == '\r' {
			continue
		}
		xPos := w.left + w.lastX + lx
		yPos := w.top + w.lastY
		if xPos < w.left+w.width && yPos < w.top+w.height {
			w.screen.SetContent(xPos, yPos, r, nil, style)
		}
		lx += runewidth.RuneWidth(r)
	}
	w.lastX += lx
}

func (w *TcellWindow) Fill(str string) FillReturn {
	style := w.normal.style()
	lx := 0
	for _, r := range str {
		if r == '\n' {
			w.lastY++
			w.lastX = 0
			lx = 0
			continue
		}
		xPos := w.left + w.lastX + lx
		if xPos >= w.left+w.width {
			w.lastY++
			w.lastX = 0
			lx = 0
			xPos = w.left
		}
		yPos := w.top + w.lastY
		if yPos >= w.top+w.height {
			return FillSuspend
		}
		w.screen.SetContent(xPos, yPos, r, nil, style)
		lx += runewidth.RuneWidth(r)
	}
	w.lastX += lx
	if w.lastX == w.width {
		w.lastY++
		w.lastX = 0
		return FillNextLine
	}
	return FillContinue
}

func (w *TcellWindow) drawBorder() {
	shape := w.borderStyle.shape
	if shape == BorderNone {
		return
	}
	left, right := w.left, w.left+w.width
	top, bot := w.top, w.top+w.height
	style := ColBorder.style()
	if w.preview {
		style = ColPreviewBorder.style()
	}
	for x := left; x < right; x++ {
		w.screen.SetContent(x, top, w.borderStyle.horizontal, nil, style)
		w.screen.SetContent(x, bot-1, w.borderStyle.horizontal, nil, style)
	}
	for y := top; y < bot; y++ {
		w.screen.SetContent(left, y, w.borderStyle.vertical, nil, style)
		w.screen.SetContent(right-1, y, w.borderStyle.vertical, nil, style)
	}
	w.screen.SetContent(left, top, w.borderStyle.topLeft, nil, style)
	w.screen.SetContent(right-1, top, w.borderStyle.topRight, nil, style)
	w.screen.SetContent(left, bot-1, w.borderStyle.bottomLeft, nil, style)
	w.screen.SetContent(right-1, bot-1, w.borderStyle.bottomRight, nil, style)
}
