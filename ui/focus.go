package ui

import (
	"strings"

	"starmutt/keys"
)

// RotateFocus steps from current in direction dir until a selectable candidate
// is found. nil candidates are treated as absent. Without wrap the search stops at
// the ends of the list. It returns the new position and whether one was found;
// when none is, current is returned.
func RotateFocus(candidates []Widget, current, dir int, wrap bool) (int, bool) {
	n := len(candidates)
	if n == 0 || dir == 0 {
		return current, false
	}
	for step := 1; step <= n; step++ {
		pos := current + dir*step
		if wrap {
			pos = ((pos % n) + n) % n
		} else if pos < 0 || pos >= n {
			break
		}
		if c := candidates[pos]; c != nil && c.Selectable() {
			return pos, true
		}
	}
	return current, false
}

func anySelectable(ws []Widget) bool {
	for _, w := range ws {
		if w != nil && w.Selectable() {
			return true
		}
	}
	return false
}

// rotateOnChord applies the focus protocol shared by containers. It returns the
// new position and the chord left for the parent: a chord with no selectable
// target is swallowed, a non-wrapping step past an edge is returned.
func rotateOnChord(candidates []Widget, current, dir int, wrap bool, chord keys.Chord) (int, keys.Chord) {
	if !anySelectable(candidates) {
		return current, keys.None
	}
	pos, ok := RotateFocus(candidates, current, dir, wrap)
	if !ok && !wrap {
		return current, chord
	}
	return pos, keys.None
}

// HeightKind tells a Pile how to size a child.
type HeightKind int

const (
	// HeightFlow lets the child choose its rows for the width.
	HeightFlow HeightKind = iota
	// HeightFixed gives the child a fixed number of rows.
	HeightFixed
	// HeightWeight shares the rows left over by flow and fixed children.
	HeightWeight
)

type pileItem struct {
	widget Widget
	kind   HeightKind
	value  int
}

// Pile stacks widgets vertically and routes focus between them.
type Pile struct {
	items []pileItem
	focus int

	FocusChanged Signal
}

// NewPile creates a pile of flow children.
func NewPile(widgets ...Widget) *Pile {
	p := &Pile{}
	for _, w := range widgets {
		p.Add(w)
	}
	return p
}

// Add appends a flow child.
func (p *Pile) Add(w Widget) {
	p.add(pileItem{widget: w, kind: HeightFlow})
}

// AddFixed appends a child with a fixed height.
func (p *Pile) AddFixed(w Widget, rows int) {
	p.add(pileItem{widget: w, kind: HeightFixed, value: max(0, rows)})
}

// AddWeight appends a child sharing the remaining height.
func (p *Pile) AddWeight(w Widget, weight int) {
	p.add(pileItem{widget: w, kind: HeightWeight, value: max(1, weight)})
}

func (p *Pile) add(it pileItem) {
	p.items = append(p.items, it)
	last := len(p.items) - 1
	if last == 0 {
		p.focus = 0
		return
	}
	if !p.items[p.focus].widget.Selectable() && it.widget.Selectable() {
		p.SetFocus(last)
	}
}

// Remove deletes child i; the focus is clamped to the remaining children.
func (p *Pile) Remove(i int) {
	if i < 0 || i >= len(p.items) {
		return
	}
	p.items = append(p.items[:i], p.items[i+1:]...)
	if p.focus >= len(p.items) {
		p.focus = max(0, len(p.items)-1)
	}
}

// Clear removes every child.
func (p *Pile) Clear() {
	p.items = nil
	p.focus = 0
}

func (p *Pile) Len() int {
	return len(p.items)
}

func (p *Pile) Item(i int) Widget {
	return p.items[i].widget
}

func (p *Pile) Focus() int {
	return p.focus
}

// Focused returns the focused child, or nil for an empty pile.
func (p *Pile) Focused() Widget {
	if len(p.items) == 0 {
		return nil
	}
	return p.items[p.focus].widget
}

// SetFocus focuses child i, clamped to the existing children.
func (p *Pile) SetFocus(i int) {
	if len(p.items) == 0 {
		return
	}
	i = clamp(i, 0, len(p.items)-1)
	if i != p.focus {
		p.focus = i
		p.FocusChanged.Emit()
	}
}

func (p *Pile) widgets() []Widget {
	ws := make([]Widget, len(p.items))
	for i, it := range p.items {
		ws[i] = it.widget
	}
	return ws
}

func (p *Pile) Selectable() bool {
	return anySelectable(p.widgets())
}

func (p *Pile) Rows(width int, focused bool) int {
	return sum(p.heights(Flow(width), focused))
}

// heights distributes size.Height between children. In flow mode every child
// gets its natural rows.
func (p *Pile) heights(size Size, focused bool) []int {
	hs := make([]int, len(p.items))
	used, weights := 0, 0
	for i, it := range p.items {
		switch {
		case it.kind == HeightFixed:
			hs[i] = it.value
		case it.kind == HeightWeight && size.Height > 0:
			weights += it.value
			continue
		default:
			hs[i] = it.widget.Rows(size.Width, focused && i == p.focus)
		}
		used += hs[i]
	}
	if weights == 0 {
		return hs
	}
	free := max(0, size.Height-used)
	lastWeighted := -1
	given := 0
	for i, it := range p.items {
		if it.kind == HeightWeight {
			hs[i] = free * it.value / weights
			given += hs[i]
			lastWeighted = i
		}
	}
	hs[lastWeighted] += free - given
	return hs
}

func (p *Pile) Render(size Size, focused bool) string {
	if len(p.items) == 0 {
		return blank(size.Width, size.Height)
	}
	hs := p.heights(size, focused)
	var blocks []string
	for i, it := range p.items {
		if hs[i] == 0 {
			continue
		}
		blocks = append(blocks, fitBlock(it.widget.Render(Size{size.Width, hs[i]}, focused && i == p.focus), size.Width, hs[i]))
	}
	return fitBlock(strings.Join(blocks, "\n"), size.Width, size.Height)
}

// KeyPress sends the chord to the focused child, then handles focus and cursor
// chords the child left unconsumed.
func (p *Pile) KeyPress(size Size, chord keys.Chord) keys.Chord {
	if len(p.items) == 0 {
		return chord
	}
	hs := p.heights(size, true)
	rest := p.items[p.focus].widget.KeyPress(Size{size.Width, hs[p.focus]}, chord)
	if rest == keys.None {
		return keys.None
	}

	var (
		dir  int
		wrap bool
		ok   bool
	)
	if dir, wrap, ok = keymap.FocusDirection(rest); !ok {
		switch {
		case keymap.Is(rest, keys.CursorUp):
			dir, ok = -1, true
		case keymap.Is(rest, keys.CursorDown):
			dir, ok = 1, true
		}
	}
	if !ok {
		return rest
	}
	pos, left := rotateOnChord(p.widgets(), p.focus, dir, wrap, rest)
	p.SetFocus(pos)
	return left
}

// MouseEvent focuses the child under the pointer when it is selectable and
// forwards the event to it.
func (p *Pile) MouseEvent(size Size, ev MouseEvent, focused bool) bool {
	hs := p.heights(size, focused)
	top := 0
	for i, it := range p.items {
		if ev.Y >= top && ev.Y < top+hs[i] {
			if it.widget.Selectable() {
				p.SetFocus(i)
			}
			return sendMouse(it.widget, Size{size.Width, hs[i]}, ev.At(0, top), focused && i == p.focus)
		}
		top += hs[i]
	}
	return false
}

// CursorCoords reports the cursor of the focused child.
func (p *Pile) CursorCoords(size Size) (int, int, bool) {
	if len(p.items) == 0 {
		return 0, 0, false
	}
	cw, ok := p.items[p.focus].widget.(CursorWidget)
	if !ok {
		return 0, 0, false
	}
	hs := p.heights(size, true)
	col, row, ok := cw.CursorCoords(Size{size.Width, hs[p.focus]})
	if !ok {
		return 0, 0, false
	}
	return col, row + sum(hs[:p.focus]), true
}

func sum(vs []int) int {
	total := 0
	for _, v := range vs {
		total += v
	}
	return total
}

// FramePart names one of the three areas of a Frame.
type FramePart int

const (
	FrameHeader FramePart = iota
	FrameBody
	FrameFooter
)

func (p FramePart) String() string {
	switch p {
	case FrameHeader:
		return "header"
	case FrameFooter:
		return "footer"
	}
	return "body"
}

// Frame shows an optional header and footer around a body that takes the rest of
// the height. Focus moves header, body, footer in that order.
type Frame struct {
	header Widget
	body   Widget
	footer Widget
	focus  FramePart

	FocusChanged Signal
}

// NewFrame creates a frame. header and footer may be nil.
func NewFrame(body, header, footer Widget) *Frame {
	return &Frame{header: header, body: body, footer: footer, focus: FrameBody}
}

func (f *Frame) Header() Widget { return f.header }
func (f *Frame) Body() Widget   { return f.body }
func (f *Frame) Footer() Widget { return f.footer }

func (f *Frame) SetHeader(w Widget) {
	f.header = w
	f.fixFocus()
}

func (f *Frame) SetBody(w Widget) {
	f.body = w
	f.fixFocus()
}

func (f *Frame) SetFooter(w Widget) {
	f.footer = w
	f.fixFocus()
}

func (f *Frame) part(p FramePart) Widget {
	switch p {
	case FrameHeader:
		return f.header
	case FrameFooter:
		return f.footer
	}
	return f.body
}

// fixFocus moves the focus back to the body when its part disappeared.
func (f *Frame) fixFocus() {
	if f.part(f.focus) == nil {
		f.focus = FrameBody
	}
}

func (f *Frame) FocusPart() FramePart {
	return f.focus
}

// SetFocusPart focuses a part. Missing parts are ignored.
func (f *Frame) SetFocusPart(p FramePart) {
	if f.part(p) == nil || p == f.focus {
		return
	}
	f.focus = p
	f.FocusChanged.Emit()
}

func (f *Frame) candidates() []Widget {
	return []Widget{f.header, f.body, f.footer}
}

func (f *Frame) Selectable() bool {
	return anySelectable(f.candidates())
}

// heights returns the rows of header, body and footer.
func (f *Frame) heights(size Size, focused bool) (int, int, int) {
	var h, b, ft int
	if f.header != nil {
		h = f.header.Rows(size.Width, focused && f.focus == FrameHeader)
	}
	if f.footer != nil {
		ft = f.footer.Rows(size.Width, focused && f.focus == FrameFooter)
	}
	if size.Height == 0 {
		if f.body != nil {
			b = f.body.Rows(size.Width, focused && f.focus == FrameBody)
		}
		return h, b, ft
	}
	// Header and footer shrink only when the body has no room left.
	if h+ft > size.Height {
		ft = min(ft, size.Height)
		h = size.Height - ft
	}
	return h, size.Height - h - ft, ft
}

func (f *Frame) Rows(width int, focused bool) int {
	h, b, ft := f.heights(Flow(width), focused)
	return h + b + ft
}

func (f *Frame) Render(size Size, focused bool) string {
	h, b, ft := f.heights(size, focused)
	var blocks []string
	add := func(w Widget, rows int, part FramePart) {
		if rows == 0 {
			return
		}
		if w == nil {
			blocks = append(blocks, blank(size.Width, rows))
			return
		}
		blocks = append(blocks, fitBlock(w.Render(Size{size.Width, rows}, focused && f.focus == part), size.Width, rows))
	}
	add(f.header, h, FrameHeader)
	add(f.body, b, FrameBody)
	add(f.footer, ft, FrameFooter)
	if len(blocks) == 0 {
		return blank(size.Width, size.Height)
	}
	return strings.Join(blocks, "\n")
}

func (f *Frame) partSize(size Size, p FramePart) (Size, int) {
	h, b, ft := f.heights(size, true)
	switch p {
	case FrameHeader:
		return Size{size.Width, h}, 0
	case FrameFooter:
		return Size{size.Width, ft}, h + b
	}
	return Size{size.Width, b}, h
}

// KeyPress sends the chord to the focused part, then rotates focus on focus
// chords it left unconsumed. Focus chords never leave the frame.
func (f *Frame) KeyPress(size Size, chord keys.Chord) keys.Chord {
	w := f.part(f.focus)
	if w == nil {
		return chord
	}
	ps, _ := f.partSize(size, f.focus)
	rest := w.KeyPress(ps, chord)
	if rest == keys.None {
		return keys.None
	}
	dir, wrap, ok := keymap.FocusDirection(rest)
	if !ok {
		return rest
	}
	// A frame keeps its focus chords: a step past an edge is swallowed too.
	pos, _ := rotateOnChord(f.candidates(), int(f.focus), dir, wrap, rest)
	f.SetFocusPart(FramePart(pos))
	return keys.None
}

func (f *Frame) MouseEvent(size Size, ev MouseEvent, focused bool) bool {
	for _, p := range []FramePart{FrameHeader, FrameBody, FrameFooter} {
		w := f.part(p)
		if w == nil {
			continue
		}
		ps, top := f.partSize(size, p)
		if ev.Y >= top && ev.Y < top+ps.Height {
			if w.Selectable() {
				f.SetFocusPart(p)
			}
			return sendMouse(w, ps, ev.At(0, top), focused && f.focus == p)
		}
	}
	return false
}

// CursorCoords returns the cursor of the focused part in frame coordinates.
func (f *Frame) CursorCoords(size Size) (int, int, bool) {
	if !f.Selectable() {
		return 0, 0, false
	}
	cw, ok := f.part(f.focus).(CursorWidget)
	if !ok {
		return 0, 0, false
	}
	ps, top := f.partSize(size, f.focus)
	col, row, ok := cw.CursorCoords(ps)
	if !ok {
		return 0, 0, false
	}
	return col, row + top, true
}
