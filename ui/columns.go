package ui

import (
	"starmutt/keys"

	"github.com/charmbracelet/lipgloss"
)

// WidthKind tells Columns how to size a column.
type WidthKind int

const (
	// WidthWeight shares the width left over by given columns.
	WidthWeight WidthKind = iota
	// WidthGiven is a fixed number of cells.
	WidthGiven
)

// Column is one child of a Columns container.
type Column struct {
	Widget Widget
	Kind   WidthKind
	Value  int
}

// Given returns a fixed-width column.
func Given(w Widget, width int) Column {
	return Column{Widget: w, Kind: WidthGiven, Value: max(0, width)}
}

// Weighted returns a column sharing the free width.
func Weighted(w Widget, weight int) Column {
	return Column{Widget: w, Kind: WidthWeight, Value: max(1, weight)}
}

// Columns lays widgets out side by side, separated by DivideChars blank cells.
type Columns struct {
	cols        []Column
	focus       int
	divideChars int

	FocusChanged Signal
}

func NewColumns(divideChars int, cols ...Column) *Columns {
	c := &Columns{divideChars: max(0, divideChars)}
	for _, col := range cols {
		c.Add(col)
	}
	return c
}

// Add appends a column. A selectable column takes the focus from an
// unselectable one.
func (c *Columns) Add(col Column) {
	c.cols = append(c.cols, col)
	last := len(c.cols) - 1
	if last == 0 {
		c.focus = 0
		return
	}
	if !c.cols[c.focus].Widget.Selectable() && col.Widget.Selectable() {
		c.SetFocus(last)
	}
}

// Set replaces column i.
func (c *Columns) Set(i int, col Column) {
	if i >= 0 && i < len(c.cols) {
		c.cols[i] = col
	}
}

// SetWidth turns column i into a given column of width cells.
func (c *Columns) SetWidth(i, width int) {
	if i >= 0 && i < len(c.cols) {
		c.cols[i].Kind = WidthGiven
		c.cols[i].Value = max(0, width)
	}
}

func (c *Columns) Len() int {
	return len(c.cols)
}

func (c *Columns) Column(i int) Column {
	return c.cols[i]
}

func (c *Columns) Focus() int {
	return c.focus
}

// Focused returns the focused widget, or nil when empty.
func (c *Columns) Focused() Widget {
	if len(c.cols) == 0 {
		return nil
	}
	return c.cols[c.focus].Widget
}

// SetFocus focuses column i, clamped to the existing columns.
func (c *Columns) SetFocus(i int) {
	if len(c.cols) == 0 {
		return
	}
	i = clamp(i, 0, len(c.cols)-1)
	if i != c.focus {
		c.focus = i
		c.FocusChanged.Emit()
	}
}

func (c *Columns) widgets() []Widget {
	ws := make([]Widget, len(c.cols))
	for i, col := range c.cols {
		ws[i] = col.Widget
	}
	return ws
}

func (c *Columns) Selectable() bool {
	return anySelectable(c.widgets())
}

// collapsed reports a given column of zero width. It takes no divider either.
func (col Column) collapsed() bool {
	return col.Kind == WidthGiven && col.Value == 0
}

// dividers returns the cells taken by dividers between the columns that are
// not collapsed.
func (c *Columns) dividers() int {
	shown := 0
	for _, col := range c.cols {
		if !col.collapsed() {
			shown++
		}
	}
	return c.divideChars * max(0, shown-1)
}

// widths distributes width between columns. Weighted columns share what the
// given columns and dividers leave, the last one taking the rounding remainder.
func (c *Columns) widths(width int) []int {
	ws := make([]int, len(c.cols))
	if len(c.cols) == 0 {
		return ws
	}
	free := width - c.dividers()
	weights, lastWeighted := 0, -1
	for i, col := range c.cols {
		if col.Kind == WidthGiven {
			ws[i] = col.Value
			free -= col.Value
		} else {
			weights += col.Value
			lastWeighted = i
		}
	}
	if weights == 0 || free <= 0 {
		return ws
	}
	given := 0
	for i, col := range c.cols {
		if col.Kind == WidthWeight {
			ws[i] = free * col.Value / weights
			given += ws[i]
		}
	}
	ws[lastWeighted] += free - given
	return ws
}

func (c *Columns) Rows(width int, focused bool) int {
	rows := 1
	for i, w := range c.widths(width) {
		rows = max(rows, c.cols[i].Widget.Rows(w, focused && i == c.focus))
	}
	return rows
}

func (c *Columns) Render(size Size, focused bool) string {
	if len(c.cols) == 0 {
		return blank(size.Width, size.Height)
	}
	height := size.Height
	if height == 0 {
		height = c.Rows(size.Width, focused)
	}
	ws := c.widths(size.Width)
	blocks := make([]string, 0, 2*len(c.cols))
	shown := false
	for i, col := range c.cols {
		if col.collapsed() {
			continue
		}
		if shown && c.divideChars > 0 {
			blocks = append(blocks, blank(c.divideChars, height))
		}
		shown = true
		if ws[i] == 0 {
			continue
		}
		blocks = append(blocks, fitBlock(col.Widget.Render(Size{ws[i], height}, focused && i == c.focus), ws[i], height))
	}
	return fitBlock(lipgloss.JoinHorizontal(lipgloss.Top, blocks...), size.Width, height)
}

// KeyPress sends the chord to the focused column, then moves between selectable
// columns on unconsumed cursor and focus chords. Moves stop at the edges and hand
// the chord back.
func (c *Columns) KeyPress(size Size, chord keys.Chord) keys.Chord {
	if len(c.cols) == 0 {
		return chord
	}
	ws := c.widths(size.Width)
	rest := c.cols[c.focus].Widget.KeyPress(Size{ws[c.focus], size.Height}, chord)
	if rest == keys.None {
		return keys.None
	}
	var dir int
	switch {
	case keymap.Is(rest, keys.CursorLeft), keymap.Is(rest, keys.FocusLeft):
		dir = -1
	case keymap.Is(rest, keys.CursorRight), keymap.Is(rest, keys.FocusRight):
		dir = 1
	default:
		return rest
	}
	pos, left := rotateOnChord(c.widgets(), c.focus, dir, false, rest)
	c.SetFocus(pos)
	return left
}

func (c *Columns) MouseEvent(size Size, ev MouseEvent, focused bool) bool {
	ws := c.widths(size.Width)
	x, shown := 0, false
	for i, col := range c.cols {
		if col.collapsed() {
			continue
		}
		if shown {
			x += c.divideChars
		}
		shown = true
		if ev.X >= x && ev.X < x+ws[i] {
			if col.Widget.Selectable() {
				c.SetFocus(i)
			}
			return sendMouse(col.Widget, Size{ws[i], size.Height}, ev.At(x, 0), focused && i == c.focus)
		}
		x += ws[i]
	}
	return false
}
