package ui

import (
	"starmutt/keys"
	"starmutt/ui/overlay"
)

// Overlay draws a top widget at a fixed position over a bottom widget. Input
// goes to the top widget only.
type Overlay struct {
	top    Widget
	bottom Widget
	left   int
	row    int
	width  int
	// height 0 sizes the top widget to its rows.
	height int
	// centered ignores left and row.
	centered bool
}

// NewOverlay places top with its corner at (left, row).
func NewOverlay(top, bottom Widget, left, row, width, height int) *Overlay {
	return &Overlay{top: top, bottom: bottom, left: left, row: row, width: width, height: height}
}

// NewCenteredOverlay places top in the middle of bottom.
func NewCenteredOverlay(top, bottom Widget, width, height int) *Overlay {
	return &Overlay{top: top, bottom: bottom, width: width, height: height, centered: true}
}

func (o *Overlay) Top() Widget {
	return o.top
}

func (o *Overlay) Bottom() Widget {
	return o.bottom
}

// box returns the area of the top widget for a given size.
func (o *Overlay) box(size Size) (x, y int, top Size) {
	w := o.width
	if w <= 0 || w > size.Width {
		w = size.Width
	}
	h := o.height
	if h <= 0 {
		h = o.top.Rows(w, true)
	}
	if size.Height > 0 {
		h = min(h, size.Height)
	}
	x, y = o.left, o.row
	if o.centered {
		x, y = overlay.Center(w, h, size.Width, max(size.Height, h))
	}
	x = clamp(x, 0, max(0, size.Width-w))
	if size.Height > 0 {
		y = clamp(y, 0, max(0, size.Height-h))
	}
	return x, y, Size{w, h}
}

func (o *Overlay) Selectable() bool {
	return o.top.Selectable()
}

func (o *Overlay) Rows(width int, focused bool) int {
	_, y, top := o.box(Flow(width))
	return max(o.bottom.Rows(width, false), y+top.Height)
}

func (o *Overlay) Render(size Size, focused bool) string {
	if size.Height == 0 {
		size.Height = o.Rows(size.Width, focused)
	}
	x, y, ts := o.box(size)
	bg := fitBlock(o.bottom.Render(size, false), size.Width, size.Height)
	fg := fitBlock(o.top.Render(ts, focused), ts.Width, ts.Height)
	return overlay.PlaceOverlay(x, y, fg, bg)
}

func (o *Overlay) KeyPress(size Size, chord keys.Chord) keys.Chord {
	_, _, ts := o.box(size)
	return o.top.KeyPress(ts, chord)
}

// MouseEvent forwards events inside the top widget's area.
func (o *Overlay) MouseEvent(size Size, ev MouseEvent, focused bool) bool {
	x, y, ts := o.box(size)
	if ev.X < x || ev.X >= x+ts.Width || ev.Y < y || ev.Y >= y+ts.Height {
		return false
	}
	return sendMouse(o.top, ts, ev.At(x, y), focused)
}

// Host owns the widget drawn on the whole screen. Menus and dialogs swap it to
// show themselves on top of the current screen.
type Host interface {
	Root() Widget
	SetRoot(w Widget)
}

// Root is the top of a widget tree, drawn on the whole terminal.
type Root struct {
	widget Widget
}

func NewRoot(w Widget) *Root {
	return &Root{widget: w}
}

func (r *Root) Root() Widget {
	return r.widget
}

func (r *Root) SetRoot(w Widget) {
	r.widget = w
}

// View renders the tree for the terminal size.
func (r *Root) View(width, height int) string {
	if r.widget == nil || width <= 0 || height <= 0 {
		return ""
	}
	size := Size{width, height}
	return fitBlock(r.widget.Render(size, true), width, height)
}

// KeyPress dispatches a chord down the focus path and returns what nobody used.
func (r *Root) KeyPress(width, height int, chord keys.Chord) keys.Chord {
	if r.widget == nil {
		return chord
	}
	return r.widget.KeyPress(Size{width, height}, chord)
}

// MouseEvent dispatches a pointer event in screen coordinates.
func (r *Root) MouseEvent(width, height int, ev MouseEvent) bool {
	if r.widget == nil {
		return false
	}
	return sendMouse(r.widget, Size{width, height}, ev, true)
}

// CursorCoords returns the screen cursor position, if the focused widget shows one.
func (r *Root) CursorCoords(width, height int) (int, int, bool) {
	if cw, ok := r.widget.(CursorWidget); ok {
		return cw.CursorCoords(Size{width, height})
	}
	return 0, 0, false
}
