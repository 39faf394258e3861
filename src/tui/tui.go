// Package tui is the terminal backend Minase renders through: a cell-grid
// abstraction over keyboard/resize events and foreground/background colour
// attributes. It is the out-of-scope "terminal backend" collaborator --
// Minase's controller never touches a concrete terminal library directly,
// only the Renderer/Window interfaces declared here.
package tui

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Types of input event the backend can report.
const (
	Rune = iota

	CtrlA
	CtrlB
	CtrlC
	CtrlD
	CtrlE
	CtrlF
	CtrlG
	CtrlH
	Tab
	CtrlJ
	CtrlK
	CtrlL
	CtrlM
	CtrlN
	CtrlO
	CtrlP
	CtrlQ
	CtrlR
	CtrlS
	CtrlT
	CtrlU
	CtrlV
	CtrlW
	CtrlX
	CtrlY
	CtrlZ
	ESC
	CtrlSpace
	CtrlSlash

	Invalid
	Resize
	Mouse

	BTab
	BSpace

	Del
	PgUp
	PgDn

	Up
	Down
	Left
	Right
	Home
	End
	Insert

	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12

	AltSpace
	AltSlash
	AltBS

	Alt0
)

const ( // Reset iota: Alt+letter shortcuts used by the plugin bridge (C8)
	AltA = Alt0 + 'a' - '0' + iota
	AltB
	AltC
	AltD
	AltE
	AltF
	AltZ = AltA + 'z' - 'a'
)

const (
	doubleClickDuration = 500 * time.Millisecond
)

// Color is a terminal colour: palette index 0-255, or a packed 24-bit RGB
// value when is24() is true.
type Color int32

func (c Color) is24() bool {
	return c > 0 && (c&(1<<24)) > 0
}

const (
	colUndefined Color = -2
	colDefault   Color = -1
)

const (
	colBlack Color = iota
	colRed
	colGreen
	colYellow
	colBlue
	colMagenta
	colCyan
	colWhite
)

// FillReturn reports how much of a Fill request was consumed.
type FillReturn int

const (
	FillContinue FillReturn = iota
	FillNextLine
	FillSuspend
)

// ColorPair is a resolved (fg, bg) pair registered with the backend.
type ColorPair struct {
	fg Color
	bg Color
	id int
}

// HexToColor parses a "#rrggbb" string into a 24-bit Color.
func HexToColor(rrggbb string) Color {
	r, _ := strconv.ParseInt(rrggbb[1:3], 16, 0)
	g, _ := strconv.ParseInt(rrggbb[3:5], 16, 0)
	b, _ := strconv.ParseInt(rrggbb[5:7], 16, 0)
	return Color((1 << 24) + (r << 16) + (g << 8) + b)
}

func NewColorPair(fg Color, bg Color) ColorPair {
	return ColorPair{fg, bg, -1}
}

func (p ColorPair) Fg() Color {
	return p.fg
}

func (p ColorPair) Bg() Color {
	return p.bg
}

// ColorTheme names every semantic colour Minase's panes and preview need:
// per-kind file colours (spec.md 4.2's "colour by kind"), selection gutter,
// cursor reversal, header/info/border chrome.
type ColorTheme struct {
	Fg         Color
	Bg         Color
	DarkBg     Color
	Dir        Color
	File       Color
	Symlink    Color
	Exec       Color
	Socket     Color
	Gutter     Color
	Selected   Color
	Cursor     Color
	Header     Color
	Info       Color
	Border     Color
	PreviewFg  Color
	PreviewBg  Color
}

// Event is one reported input event.
type Event struct {
	Type       int
	Char       rune
	MouseEvent *MouseEvent
}

type MouseEvent struct {
	Y, X   int
	Left   bool
	Down   bool
	Double bool
}

type BorderShape int

const (
	BorderNone BorderShape = iota
	BorderRounded
	BorderSharp
)

type BorderStyle struct {
	shape                                            BorderShape
	horizontal, vertical                             rune
	topLeft, topRight, bottomLeft, bottomRight        rune
}

func MakeBorderStyle(shape BorderShape, unicode bool) BorderStyle {
	if unicode {
		if shape == BorderRounded {
			return BorderStyle{shape: shape, horizontal: '─', vertical: '│', topLeft: '╭', topRight: '╮', bottomLeft: '╰', bottomRight: '╯'}
		}
		return BorderStyle{shape: shape, horizontal: '─', vertical: '│', topLeft: '┌', topRight: '┐', bottomLeft: '└', bottomRight: '┘'}
	}
	return BorderStyle{shape: shape, horizontal: '-', vertical: '|', topLeft: '+', topRight: '+', bottomLeft: '+', bottomRight: '+'}
}

// Renderer is the cell-grid terminal backend: the only thing Minase's
// Controller (C7) drives directly. A sixel-capable preview payload bypasses
// this and writes straight to stdout (spec.md 4.3, 4.6) -- everything else
// goes through Renderer/Window.
type Renderer interface {
	Init()
	Pause()
	Resume()
	Clear()
	Refresh()
	Close()

	GetChar() Event

	MaxX() int
	MaxY() int

	NewWindow(top, left, width, height int, preview bool, borderStyle BorderStyle) Window
}

type Window interface {
	Top() int
	Left() int
	Width() int
	Height() int

	Refresh()
	Close()

	Move(y, x int)
	MoveAndClear(y, x int)
	Print(text string)
	CPrint(color ColorPair, attr Attr, text string)
	Fill(text string) FillReturn
	Erase()
}

type FullscreenRenderer struct {
	theme        *ColorTheme
	mouse        bool
	prevDownTime time.Time
}

func NewFullscreenRenderer(theme *ColorTheme, mouse bool) Renderer {
	return &FullscreenRenderer{
		theme:        theme,
		mouse:        mouse,
		prevDownTime: time.Unix(0, 0),
	}
}

var (
	Default16 *ColorTheme
	Dark256   *ColorTheme

	ColNormal          ColorPair
	ColDir             ColorPair
	ColFile            ColorPair
	ColSymlink         ColorPair
	ColExec            ColorPair
	ColSocket          ColorPair
	ColCursor          ColorPair
	ColCurrentDir      ColorPair
	ColSelected        ColorPair
	ColCurrentSelected ColorPair
	ColInfo            ColorPair
	ColHeader          ColorPair
	ColBorder          ColorPair
	ColPreview         ColorPair
	ColPreviewBorder   ColorPair
)

func EmptyTheme() *ColorTheme {
	return &ColorTheme{
		Fg: colUndefined, Bg: colUndefined, DarkBg: colUndefined,
		Dir: colUndefined, File: colUndefined, Symlink: colUndefined,
		Exec: colUndefined, Socket: colUndefined, Gutter: colUndefined,
		Selected: colUndefined, Cursor: colUndefined, Header: colUndefined,
		Info: colUndefined, Border: colUndefined,
		PreviewFg: colUndefined, PreviewBg: colUndefined,
	}
}

func errorExit(message string) {
	fmt.Fprintln(os.Stderr, message)
	os.Exit(2)
}

func init() {
	Default16 = &ColorTheme{
		Fg: colDefault, Bg: colDefault, DarkBg: colBlack,
		Dir: colBlue, File: colDefault, Symlink: colCyan,
		Exec: colGreen, Socket: colMagenta, Gutter: colUndefined,
		Selected: colMagenta, Cursor: colDefault, Header: colYellow,
		Info: colWhite, Border: colBlack,
		PreviewFg: colUndefined, PreviewBg: colUndefined,
	}
	Dark256 = &ColorTheme{
		Fg: colDefault, Bg: colDefault, DarkBg: 236,
		Dir: 110, File: 252, Symlink: 80,
		Exec: 108, Socket: 168, Gutter: colUndefined,
		Selected: 168, Cursor: colDefault, Header: 144,
		Info: 144, Border: 59,
		PreviewFg: colUndefined, PreviewBg: colUndefined,
	}
}

func initTheme(theme *ColorTheme) {
	idx := 0
	pair := func(fg, bg Color) ColorPair {
		idx++
		return ColorPair{fg, bg, idx}
	}
	ColNormal = pair(theme.Fg, theme.Bg)
	ColDir = pair(theme.Dir, theme.Bg)
	ColFile = pair(theme.File, theme.Bg)
	ColSymlink = pair(theme.Symlink, theme.Bg)
	ColExec = pair(theme.Exec, theme.Bg)
	ColSocket = pair(theme.Socket, theme.Bg)
	ColCursor = pair(theme.Fg, theme.DarkBg)
	ColCurrentDir = pair(theme.Dir, theme.DarkBg)
	ColSelected = pair(theme.Selected, theme.Bg)
	ColCurrentSelected = pair(theme.Selected, theme.DarkBg)
	ColInfo = pair(theme.Info, theme.Bg)
	ColHeader = pair(theme.Header, theme.Bg)
	ColBorder = pair(theme.Border, theme.Bg)
	ColPreview = pair(theme.PreviewFg, theme.PreviewBg)
	ColPreviewBorder = pair(theme.Border, theme.PreviewBg)
}
