package ui

import (
	"starmutt/keys"

	tea "github.com/charmbracelet/bubbletea"
)

// Size is the space a widget renders into. Height 0 asks a widget to use as many
// rows as it needs for Width (flow rendering).
type Size struct {
	Width  int
	Height int
}

// Flow returns the flow size for a width.
func Flow(width int) Size {
	return Size{Width: width}
}

// Widget is the capability every element of the tree exposes.
//
// Render returns the widget as newline-separated rows, each exactly Width cells
// wide. KeyPress returns keys.None when the chord was consumed, otherwise the
// chord to hand back to the parent.
type Widget interface {
	Selectable() bool
	Rows(width int, focused bool) int
	Render(size Size, focused bool) string
	KeyPress(size Size, chord keys.Chord) keys.Chord
}

// MouseHandler is implemented by widgets reacting to pointer events. Coordinates
// are relative to the widget.
type MouseHandler interface {
	MouseEvent(size Size, ev MouseEvent, focused bool) bool
}

// CursorWidget is implemented by widgets that display a terminal cursor.
type CursorWidget interface {
	CursorCoords(size Size) (col, row int, ok bool)
}

// Texter is implemented by widgets whose natural width comes from their text.
type Texter interface {
	Text() string
}

// MouseEvent is a pointer event in widget-local coordinates.
type MouseEvent struct {
	Button tea.MouseButton
	Action tea.MouseAction
	X, Y   int
}

// FromMouseMsg converts a bubbletea mouse message.
func FromMouseMsg(msg tea.MouseMsg) MouseEvent {
	return MouseEvent{Button: msg.Button, Action: msg.Action, X: msg.X, Y: msg.Y}
}

// IsPress reports whether the event is a press of button.
func (e MouseEvent) IsPress(button tea.MouseButton) bool {
	return e.Action == tea.MouseActionPress && e.Button == button
}

// At returns a copy of the event translated by (-dx, -dy).
func (e MouseEvent) At(dx, dy int) MouseEvent {
	e.X -= dx
	e.Y -= dy
	return e
}

// sendMouse forwards ev to w when it handles pointer events.
func sendMouse(w Widget, size Size, ev MouseEvent, focused bool) bool {
	if m, ok := w.(MouseHandler); ok {
		return m.MouseEvent(size, ev, focused)
	}
	return false
}

var keymap = keys.Default()

// SetKeyMap replaces the keymap used by every widget. It must be called before
// the widget tree handles input.
func SetKeyMap(m *keys.ActionMap) {
	if m == nil {
		m = keys.Default()
	}
	keymap = m
}

// KeyMap returns the keymap widgets dispatch on.
func KeyMap() *keys.ActionMap {
	return keymap
}
