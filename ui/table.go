package ui

import (
	"errors"
	"fmt"

	"starmutt/keys"
)

var (
	ErrInvalidColumnCount = errors.New("table needs at least one column")
	ErrRowNotFound        = errors.New("table has no row")
)

// HighlightColumns is a table row. While the row holds focus, the highlighted
// cells, or the whole row, switch to the focus attribute.
type HighlightColumns struct {
	columns   *Columns
	cells     []*AttrMap
	highlight []int
	wholeRow  bool
	focusAttr string
	hasFocus  bool
	index     int
	// swaps counts attribute changes; they happen only on focus transitions.
	swaps int
}

// NewHighlightColumns creates an empty row highlighting the listed cells, or
// every cell when wholeRow is set.
func NewHighlightColumns(highlight []int, wholeRow bool, focusAttr string, divideChars int) *HighlightColumns {
	return &HighlightColumns{
		columns:   NewColumns(divideChars),
		highlight: highlight,
		wholeRow:  wholeRow,
		focusAttr: focusAttr,
	}
}

func (h *HighlightColumns) highlights() bool {
	return h.wholeRow || len(h.highlight) > 0
}

// AddCell appends a cell. Cells are wrapped so their attribute can be swapped.
func (h *HighlightColumns) AddCell(w Widget, kind WidthKind, value int) {
	cell := NewAttrMap(w, "", "")
	h.cells = append(h.cells, cell)
	h.columns.Add(Column{Widget: cell, Kind: kind, Value: value})
}

// Index is the index reported for this row.
func (h *HighlightColumns) Index() int {
	return h.index
}

// Cells returns the widgets of the row.
func (h *HighlightColumns) Cells() []Widget {
	out := make([]Widget, len(h.cells))
	for i, c := range h.cells {
		out[i] = c.Widget()
	}
	return out
}

func (h *HighlightColumns) Selectable() bool {
	return h.columns.Selectable()
}

func (h *HighlightColumns) Rows(width int, focused bool) int {
	return h.columns.Rows(width, focused)
}

func (h *HighlightColumns) Render(size Size, focused bool) string {
	if h.highlights() && focused != h.hasFocus {
		h.hasFocus = focused
		if !h.wholeRow {
			attr := ""
			if focused {
				attr = h.focusAttr
			}
			for _, idx := range h.highlight {
				if idx >= 0 && idx < len(h.cells) {
					h.cells[idx].SetAttr(attr)
				}
			}
		}
		h.swaps++
	}
	block := h.columns.Render(size, focused)
	if h.wholeRow && h.hasFocus {
		return theme.Apply(h.focusAttr, false, block)
	}
	return block
}

func (h *HighlightColumns) KeyPress(size Size, chord keys.Chord) keys.Chord {
	return h.columns.KeyPress(size, chord)
}

func (h *HighlightColumns) MouseEvent(size Size, ev MouseEvent, focused bool) bool {
	return sendMouse(h.columns, size, ev, focused)
}

// TableOptions configures a Table.
type TableOptions struct {
	DivideChars int
	// RowSelectable makes every row focusable even without selectable cells, and
	// reports SelectKey presses through OnRowClick.
	RowSelectable bool
	// SelectKey defaults to the TABLE_SELECT binding.
	SelectKey keys.Chord
	// Adapt lists columns sized to their widest cell; AdaptAll adapts every column.
	Adapt    []int
	AdaptAll bool
	// Highlight lists columns highlighted on the focused row; HighlightRow
	// highlights whole rows. With neither, rows are not highlighted.
	Highlight    []int
	HighlightRow bool
	// FocusAttr defaults to "table_selected".
	FocusAttr string
}

// rowAnchor is a zero-width selectable cell that makes a row focusable.
type rowAnchor struct{}

func (rowAnchor) Selectable() bool                             { return true }
func (rowAnchor) Rows(int, bool) int                           { return 1 }
func (rowAnchor) Render(size Size, _ bool) string              { return blank(size.Width, size.Height) }
func (rowAnchor) KeyPress(_ Size, chord keys.Chord) keys.Chord { return chord }

// Table lays widgets out in rows of a fixed number of columns.
type Table struct {
	pile       *Pile
	rows       []*HighlightColumns
	columns    int
	opts       TableOptions
	count      int
	longest    []int
	nextIndex  *int
	onRowClick func(index int)
}

// NewTable creates a table of columns columns and adds items to it.
func NewTable(columns int, opts TableOptions, items ...Widget) (*Table, error) {
	if columns < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidColumnCount, columns)
	}
	if opts.FocusAttr == "" {
		opts.FocusAttr = AttrTableSelected
	}
	t := &Table{
		pile:    NewPile(),
		columns: columns,
		opts:    opts,
		longest: make([]int, columns),
	}
	t.AddWidgets(items...)
	return t, nil
}

// OnRowClick sets the callback called with the row index when the select key is
// pressed on a selectable row.
func (t *Table) OnRowClick(fn func(index int)) {
	t.onRowClick = fn
}

// SetRowIndex sets the index reported for the next row instead of its ordinal.
func (t *Table) SetRowIndex(i int) {
	t.nextIndex = &i
}

func (t *Table) adapts(col int) bool {
	if t.opts.AdaptAll {
		return true
	}
	for _, c := range t.opts.Adapt {
		if c == col {
			return true
		}
	}
	return false
}

// AddWidgets adds widgets in order.
func (t *Table) AddWidgets(ws ...Widget) {
	for _, w := range ws {
		t.AddWidget(w)
	}
}

// AddWidget puts w in the next cell, starting a new row when the current one is
// full. Adapted columns widen earlier rows when w is wider than any cell seen.
func (t *Table) AddWidget(w Widget) {
	col := t.count % t.columns
	if col == 0 {
		row := t.newRow()
		t.rows = append(t.rows, row)
		t.pile.Add(row)
	}
	row := t.rows[len(t.rows)-1]

	kind, value := WidthWeight, 1
	if t.adapts(col) {
		widest := max(t.longest[col], NaturalWidth(w))
		if widest > t.longest[col] {
			t.longest[col] = widest
			for _, r := range t.rows[:len(t.rows)-1] {
				r.columns.SetWidth(col, widest)
			}
		}
		if widest > 0 {
			kind, value = WidthGiven, widest
		}
	}
	row.AddCell(w, kind, value)

	if t.opts.RowSelectable && col == t.columns-1 {
		row.columns.Add(Given(rowAnchor{}, 0))
	}

	if !t.pile.Focused().Selectable() && row.Selectable() {
		t.pile.SetFocus(t.pile.Len() - 1)
	}
	t.count++
}

func (t *Table) newRow() *HighlightColumns {
	row := NewHighlightColumns(t.opts.Highlight, t.opts.HighlightRow, t.opts.FocusAttr, t.opts.DivideChars)
	row.index = len(t.rows)
	if t.nextIndex != nil {
		row.index = *t.nextIndex
		t.nextIndex = nil
	}
	return row
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// ColumnWidth returns the adapted width of a column, 0 if it is not adapted.
func (t *Table) ColumnWidth(col int) int {
	if col < 0 || col >= t.columns {
		return 0
	}
	return t.longest[col]
}

// Row returns row i.
func (t *Table) Row(i int) *HighlightColumns {
	return t.rows[i]
}

// FocusRow focuses row i.
func (t *Table) FocusRow(i int) {
	t.pile.SetFocus(i)
}

func (t *Table) focusedRow() (*HighlightColumns, error) {
	if len(t.rows) == 0 {
		return nil, ErrRowNotFound
	}
	return t.rows[t.pile.Focus()], nil
}

// SelectedIndex returns the index of the focused row.
func (t *Table) SelectedIndex() (int, error) {
	row, err := t.focusedRow()
	if err != nil {
		return 0, err
	}
	return row.index, nil
}

// SelectedWidgets returns the cells of the focused row.
func (t *Table) SelectedWidgets() ([]Widget, error) {
	row, err := t.focusedRow()
	if err != nil {
		return nil, err
	}
	return row.Cells(), nil
}

func (t *Table) selectKey() keys.Chord {
	if t.opts.SelectKey != keys.None {
		return t.opts.SelectKey
	}
	return keymap.Key(keys.TableSelect)
}

func (t *Table) Selectable() bool {
	return t.pile.Selectable()
}

func (t *Table) Rows(width int, focused bool) int {
	return t.pile.Rows(width, focused)
}

func (t *Table) Render(size Size, focused bool) string {
	return t.pile.Render(size, focused)
}

func (t *Table) KeyPress(size Size, chord keys.Chord) keys.Chord {
	if t.opts.RowSelectable && chord == t.selectKey() {
		if idx, err := t.SelectedIndex(); err == nil && t.onRowClick != nil {
			t.onRowClick(idx)
		}
		return keys.None
	}
	return t.pile.KeyPress(size, chord)
}

func (t *Table) MouseEvent(size Size, ev MouseEvent, focused bool) bool {
	return t.pile.MouseEvent(size, ev, focused)
}
