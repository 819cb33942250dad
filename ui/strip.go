package ui

import (
	"starmutt/keys"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	arrowLeft  = "◀"
	arrowRight = "▶"
)

// Window is the visible part of a Strip for one viewport width.
type Window struct {
	ShowLeft  bool
	ShowRight bool
	First     int
	Last      int
	// Slack is the unused width once the window fits. It is drawn as trailing
	// fill, or absorbed by the right arrow when one is shown.
	Slack int
}

type stripItem struct {
	widget Widget
	width  int
}

// Strip lays fixed-width widgets out horizontally. When they do not fit, it
// shows the part around the focused item with an arrow on each clipped side.
type Strip struct {
	items  []stripItem
	focus  int
	window Window

	// FocusChanged is emitted when the focused item changes.
	FocusChanged Signal
}

func NewStrip() *Strip {
	return &Strip{window: Window{Last: -1}}
}

// AddItem appends w with a fixed width. The first item receives focus.
func (s *Strip) AddItem(w Widget, width int) {
	s.items = append(s.items, stripItem{widget: w, width: max(1, width)})
	if len(s.items) == 1 {
		s.focus = 0
	}
}

// Len returns the number of items.
func (s *Strip) Len() int {
	return len(s.items)
}

// Item returns the widget at index i.
func (s *Strip) Item(i int) Widget {
	return s.items[i].widget
}

// FocusColumn returns the index of the focused item.
func (s *Strip) FocusColumn() int {
	return s.focus
}

// Focused returns the focused widget, or nil for an empty strip.
func (s *Strip) Focused() Widget {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[s.focus].widget
}

// SetFocusColumn focuses item i, clamped to the existing items.
func (s *Strip) SetFocusColumn(i int) {
	if len(s.items) == 0 {
		s.focus = 0
		return
	}
	i = clamp(i, 0, len(s.items)-1)
	if i != s.focus {
		s.focus = i
		s.FocusChanged.Emit()
	}
}

// MoveFocus moves the focus by delta items without wrapping and reports whether
// it moved.
func (s *Strip) MoveFocus(delta int) bool {
	target := s.focus + delta
	if target < 0 || target >= len(s.items) {
		return false
	}
	s.SetFocusColumn(target)
	return true
}

// Layout computes the visible window for a viewport width. The result is kept
// for StartCol and pointer events.
//
// Items are dropped from the end farther from the focus (the right end on a
// tie, the opposite end when the focus sits on one) until the rest fits. The
// focused item is never dropped, so it stays visible even when wider than the
// viewport. Each side charges one column for its arrow the first time it loses
// an item.
func (s *Strip) Layout(viewport int) Window {
	if len(s.items) == 0 {
		s.window = Window{Last: -1, Slack: max(0, viewport)}
		return s.window
	}

	first, last := 0, len(s.items)-1
	used := 0
	for _, it := range s.items {
		used += it.width
	}
	var left, right bool
	for used > viewport && first < last {
		var dropLeft bool
		switch {
		case s.focus == last:
			dropLeft = true
		case s.focus == first:
			dropLeft = false
		default:
			dropLeft = s.focus-first > last-s.focus
		}
		if dropLeft {
			used -= s.items[first].width
			first++
			if !left {
				left = true
				used++
			}
		} else {
			used -= s.items[last].width
			last--
			if !right {
				right = true
				used++
			}
		}
	}

	s.window = Window{
		ShowLeft:  left,
		ShowRight: right,
		First:     first,
		Last:      last,
		Slack:     max(0, viewport-used),
	}
	return s.window
}

// StartCol returns the column where w starts in the last computed window, the
// left arrow included.
func (s *Strip) StartCol(w Widget) (int, bool) {
	col := 0
	if s.window.ShowLeft {
		col = 1
	}
	for i := s.window.First; i <= s.window.Last && i < len(s.items); i++ {
		if s.items[i].widget == w {
			return col, true
		}
		col += s.items[i].width
	}
	return 0, false
}

// Selectable reports whether the focused item accepts input.
func (s *Strip) Selectable() bool {
	if len(s.items) == 0 {
		return false
	}
	return s.items[s.focus].widget.Selectable()
}

func (s *Strip) Rows(width int, focused bool) int {
	w := s.Layout(width)
	rows := 1
	for i := w.First; i <= w.Last; i++ {
		it := s.items[i]
		rows = max(rows, it.widget.Rows(it.width, focused && i == s.focus))
	}
	return rows
}

func (s *Strip) Render(size Size, focused bool) string {
	height := size.Height
	if height == 0 {
		height = s.Rows(size.Width, focused)
	}
	if len(s.items) == 0 {
		s.Layout(size.Width)
		return blank(size.Width, height)
	}

	w := s.Layout(size.Width)
	blocks := make([]string, 0, w.Last-w.First+3)
	if w.ShowLeft {
		blocks = append(blocks, fitBlock(arrowLeft, 1, height))
	}
	for i := w.First; i <= w.Last; i++ {
		it := s.items[i]
		blocks = append(blocks, fitBlock(it.widget.Render(Size{it.width, height}, focused && i == s.focus), it.width, height))
	}
	if w.ShowRight {
		arrow := lipgloss.PlaceHorizontal(1+w.Slack, lipgloss.Right, arrowRight)
		blocks = append(blocks, fitBlock(arrow, 1+w.Slack, height))
	} else if w.Slack > 0 {
		blocks = append(blocks, blank(w.Slack, height))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// KeyPress moves between items on the strip scroll keys; every other chord goes
// to the focused item.
func (s *Strip) KeyPress(size Size, chord keys.Chord) keys.Chord {
	if keymap.Is(chord, keys.ColumnsRollerLeft) && s.MoveFocus(-1) {
		return keys.None
	}
	if keymap.Is(chord, keys.ColumnsRollerRight) && s.MoveFocus(1) {
		return keys.None
	}
	if len(s.items) == 0 {
		return chord
	}
	it := s.items[s.focus]
	return it.widget.KeyPress(Size{it.width, size.Height}, chord)
}

// MouseEvent focuses the clicked item and forwards the event in its coordinates.
// A left press on an arrow scrolls instead.
func (s *Strip) MouseEvent(size Size, ev MouseEvent, focused bool) bool {
	if !ev.IsPress(tea.MouseButtonLeft) || len(s.items) == 0 {
		return false
	}
	w := s.Layout(size.Width)
	if w.ShowLeft && ev.X == 0 {
		s.MoveFocus(-1)
		return true
	}
	if w.ShowRight && ev.X == size.Width-1 {
		s.MoveFocus(1)
		return true
	}

	col := 0
	if w.ShowLeft {
		col = 1
	}
	for i := w.First; i <= w.Last; i++ {
		it := s.items[i]
		if ev.X >= col && ev.X < col+it.width {
			s.SetFocusColumn(i)
			return sendMouse(it.widget, Size{it.width, size.Height}, ev.At(col, 0), focused)
		}
		col += it.width
	}
	return false
}
