package ui

import (
	"strings"

	"starmutt/keys"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Text is a static, word-wrapped block of text.
type Text struct {
	text  string
	attr  string
	align lipgloss.Position
}

// NewText creates a left-aligned text.
func NewText(text string) *Text {
	return &Text{text: text, align: lipgloss.Left}
}

// WithAlign sets the horizontal alignment.
func (t *Text) WithAlign(align lipgloss.Position) *Text {
	t.align = align
	return t
}

// WithAttr sets the theme attribute used to draw the text.
func (t *Text) WithAttr(attr string) *Text {
	t.attr = attr
	return t
}

func (t *Text) Text() string {
	return t.text
}

func (t *Text) SetText(text string) {
	t.text = text
}

func (t *Text) Selectable() bool {
	return false
}

func (t *Text) lines(width int) []string {
	var out []string
	for _, para := range strings.Split(t.text, "\n") {
		for _, l := range wrapText(para, width) {
			out = append(out, lipgloss.PlaceHorizontal(width, t.align, strings.TrimRight(l, " ")))
		}
	}
	return out
}

func (t *Text) Rows(width int, focused bool) int {
	return len(t.lines(width))
}

func (t *Text) Render(size Size, focused bool) string {
	block := fitBlock(strings.Join(t.lines(size.Width), "\n"), size.Width, size.Height)
	return theme.Apply(t.attr, false, block)
}

func (t *Text) KeyPress(size Size, chord keys.Chord) keys.Chord {
	return chord
}

// SelectableText is a single-line text that toggles a selected state on the
// select keys or a left click.
type SelectableText struct {
	text     string
	attr     string
	selected bool

	// OnChange is called with the new state after every toggle.
	OnChange func(selected bool)
}

func NewSelectableText(text string) *SelectableText {
	return &SelectableText{text: text, attr: AttrSelectable}
}

func (s *SelectableText) Text() string {
	return s.text
}

func (s *SelectableText) SetText(text string) {
	s.text = text
}

func (s *SelectableText) IsSelected() bool {
	return s.selected
}

// SetSelected changes the state without notifying OnChange.
func (s *SelectableText) SetSelected(selected bool) {
	s.selected = selected
}

func (s *SelectableText) toggle() {
	s.selected = !s.selected
	if s.OnChange != nil {
		s.OnChange(s.selected)
	}
}

func (s *SelectableText) Selectable() bool {
	return true
}

func (s *SelectableText) Rows(width int, focused bool) int {
	return 1
}

func (s *SelectableText) Render(size Size, focused bool) string {
	attr := s.attr
	if s.selected {
		attr = AttrSelected
	}
	return theme.Apply(attr, focused, fitBlock(s.text, size.Width, size.Height))
}

func (s *SelectableText) KeyPress(size Size, chord keys.Chord) keys.Chord {
	if keymap.Is(chord, keys.TextSelect) || keymap.Is(chord, keys.TextSelect2) {
		s.toggle()
		return keys.None
	}
	return chord
}

func (s *SelectableText) MouseEvent(size Size, ev MouseEvent, focused bool) bool {
	if ev.IsPress(tea.MouseButtonLeft) {
		s.toggle()
		return true
	}
	return false
}

// ClickableText is a single-line text reporting activation instead of keeping a
// selected state.
type ClickableText struct {
	text string
	attr string

	OnClick func()
}

func NewClickableText(text string) *ClickableText {
	return &ClickableText{text: text, attr: AttrSelectable}
}

// WithAttr sets the theme attribute used to draw the text.
func (c *ClickableText) WithAttr(attr string) *ClickableText {
	c.attr = attr
	return c
}

func (c *ClickableText) Text() string {
	return c.text
}

func (c *ClickableText) SetText(text string) {
	c.text = text
}

func (c *ClickableText) click() {
	if c.OnClick != nil {
		c.OnClick()
	}
}

func (c *ClickableText) Selectable() bool {
	return true
}

func (c *ClickableText) Rows(width int, focused bool) int {
	return 1
}

func (c *ClickableText) Render(size Size, focused bool) string {
	return theme.Apply(c.attr, focused, fitBlock(c.text, size.Width, size.Height))
}

func (c *ClickableText) KeyPress(size Size, chord keys.Chord) keys.Chord {
	if keymap.Is(chord, keys.TextSelect) || keymap.Is(chord, keys.TextSelect2) {
		c.click()
		return keys.None
	}
	return chord
}

func (c *ClickableText) MouseEvent(size Size, ev MouseEvent, focused bool) bool {
	if ev.IsPress(tea.MouseButtonLeft) {
		c.click()
		return true
	}
	return false
}

// Button is a clickable label drawn between two borders, "[ label ]" by default.
type Button struct {
	ClickableText
	label string
	left  string
	right string
}

// NewButton creates a button. onClick may be nil.
func NewButton(label string, onClick func()) *Button {
	return NewButtonWithBorders(label, "[ ", " ]", onClick)
}

// NewButtonWithBorders creates a button with custom borders.
func NewButtonWithBorders(label, left, right string, onClick func()) *Button {
	b := &Button{label: label, left: left, right: right}
	b.attr = AttrButton
	b.OnClick = onClick
	b.text = left + label + right
	return b
}

func (b *Button) Label() string {
	return b.label
}

func (b *Button) SetLabel(label string) {
	b.label = label
	b.text = b.left + label + b.right
}

// Width is the number of cells the button needs, borders included.
func (b *Button) Width() int {
	return DisplayWidth(b.text)
}

// Divider is a horizontal line made of one repeated character.
type Divider struct {
	char string
}

func NewDivider(char string) *Divider {
	if char == "" {
		char = " "
	}
	return &Divider{char: char}
}

func (d *Divider) Selectable() bool {
	return false
}

func (d *Divider) Rows(width int, focused bool) int {
	return 1
}

func (d *Divider) Render(size Size, focused bool) string {
	n := max(0, size.Width/max(1, DisplayWidth(d.char)))
	return fitBlock(strings.Repeat(d.char, n), size.Width, size.Height)
}

func (d *Divider) KeyPress(size Size, chord keys.Chord) keys.Chord {
	return chord
}

// Filler places a flow widget inside a box, vertically aligned.
type Filler struct {
	widget Widget
	valign lipgloss.Position
}

func NewFiller(w Widget, valign lipgloss.Position) *Filler {
	return &Filler{widget: w, valign: valign}
}

func (f *Filler) Widget() Widget {
	return f.widget
}

func (f *Filler) SetWidget(w Widget) {
	f.widget = w
}

func (f *Filler) Selectable() bool {
	return f.widget.Selectable()
}

func (f *Filler) Rows(width int, focused bool) int {
	return f.widget.Rows(width, focused)
}

func (f *Filler) top(size Size, focused bool) int {
	if size.Height == 0 {
		return 0
	}
	free := size.Height - f.widget.Rows(size.Width, focused)
	switch {
	case free <= 0:
		return 0
	case f.valign == lipgloss.Bottom:
		return free
	case f.valign == lipgloss.Center:
		return free / 2
	}
	return 0
}

func (f *Filler) Render(size Size, focused bool) string {
	content := f.widget.Render(Flow(size.Width), focused)
	if size.Height == 0 {
		return content
	}
	placed := lipgloss.PlaceVertical(size.Height, f.valign, content)
	return fitBlock(placed, size.Width, size.Height)
}

func (f *Filler) KeyPress(size Size, chord keys.Chord) keys.Chord {
	return f.widget.KeyPress(Flow(size.Width), chord)
}

func (f *Filler) MouseEvent(size Size, ev MouseEvent, focused bool) bool {
	return sendMouse(f.widget, Flow(size.Width), ev.At(0, f.top(size, focused)), focused)
}

// AttrMap draws its child with a theme attribute, and with focusAttr while
// focused. An empty attribute leaves the child untouched.
type AttrMap struct {
	widget    Widget
	attr      string
	focusAttr string
}

// NewAttrMap wraps w. focusAttr may be empty to keep attr while focused.
func NewAttrMap(w Widget, attr, focusAttr string) *AttrMap {
	return &AttrMap{widget: w, attr: attr, focusAttr: focusAttr}
}

func (a *AttrMap) Widget() Widget {
	return a.widget
}

// SetAttr changes the attribute; used by containers that highlight children.
func (a *AttrMap) SetAttr(attr string) {
	a.attr = attr
}

func (a *AttrMap) Attr() string {
	return a.attr
}

func (a *AttrMap) Text() string {
	if t, ok := a.widget.(Texter); ok {
		return t.Text()
	}
	return ""
}

func (a *AttrMap) Selectable() bool {
	return a.widget.Selectable()
}

func (a *AttrMap) Rows(width int, focused bool) int {
	return a.widget.Rows(width, focused)
}

func (a *AttrMap) Render(size Size, focused bool) string {
	block := a.widget.Render(size, focused)
	if focused && a.focusAttr != "" {
		return theme.Apply(a.focusAttr, false, block)
	}
	return theme.Apply(a.attr, false, block)
}

func (a *AttrMap) KeyPress(size Size, chord keys.Chord) keys.Chord {
	return a.widget.KeyPress(size, chord)
}

func (a *AttrMap) MouseEvent(size Size, ev MouseEvent, focused bool) bool {
	return sendMouse(a.widget, size, ev, focused)
}
