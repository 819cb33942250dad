package ui

import (
	"errors"
	"fmt"

	"starmutt/keys"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var ErrDuplicateShortcut = errors.New("shortcut already assigned")

// MenuCallback receives the category and item of a selected menu entry.
type MenuCallback func(category, item string)

// MenuBox lists the items of one category inside a border. It reports a selected
// item through OnSelect. Chords meaning "leave the box" are handed back unconsumed
// to whoever opened it.
type MenuBox struct {
	pile  *Pile
	items []string

	OnSelect func(item string)
}

// NewMenuBox creates a box for items.
func NewMenuBox(items []string) *MenuBox {
	b := &MenuBox{pile: NewPile(), items: items}
	for _, label := range items {
		entry := NewClickableText(label).WithAttr(AttrMenuitem)
		entry.OnClick = func() {
			if b.OnSelect != nil {
				b.OnSelect(label)
			}
		}
		b.pile.Add(entry)
	}
	return b
}

// Width is the width of the box, borders included.
func (b *MenuBox) Width() int {
	widest := 0
	for _, label := range b.items {
		widest = max(widest, DisplayWidth(label))
	}
	return widest + 2
}

// Focus returns the index of the focused item.
func (b *MenuBox) Focus() int {
	return b.pile.Focus()
}

func (b *MenuBox) Selectable() bool {
	return true
}

func (b *MenuBox) Rows(width int, focused bool) int {
	return len(b.items) + 2
}

func (b *MenuBox) inner(size Size) Size {
	return Size{max(0, size.Width-2), len(b.items)}
}

func (b *MenuBox) Render(size Size, focused bool) string {
	content := b.pile.Render(b.inner(size), focused)
	boxed := theme.Style(AttrMenubar).
		Border(lipgloss.NormalBorder()).
		Render(content)
	return fitBlock(boxed, size.Width, size.Height)
}

// KeyPress moves between items and selects them. MENU_BOX_UP on the first item,
// MENU_BOX_LEFT and MENU_BOX_RIGHT are returned to the caller.
func (b *MenuBox) KeyPress(size Size, chord keys.Chord) keys.Chord {
	switch {
	case keymap.Is(chord, keys.MenuBoxUp) && b.pile.Focus() == 0:
		return chord
	case keymap.Is(chord, keys.MenuBoxLeft), keymap.Is(chord, keys.MenuBoxRight):
		return chord
	}
	return b.pile.KeyPress(b.inner(size), chord)
}

func (b *MenuBox) MouseEvent(size Size, ev MouseEvent, focused bool) bool {
	// Border rows and columns are not items.
	if ev.X < 1 || ev.Y < 1 || ev.Y > len(b.items) {
		return false
	}
	return b.pile.MouseEvent(b.inner(size), ev.At(1, 1), focused)
}

type menuEntry struct {
	label    string
	callback MenuCallback
}

type menuShortcut struct {
	category string
	item     string
	callback MenuCallback
}

// Menu is a bar of categories. Activating a category opens a MenuBox with its
// items on top of the host's screen.
type Menu struct {
	host       Host
	strip      *Strip
	categories []string
	buttons    map[string]*Button
	entries    map[string][]menuEntry
	shortcuts  map[keys.Chord]menuShortcut
	xOrig      int

	saved Widget
	box   *MenuBox
	open  string
}

// NewMenu creates a menu drawn at column xOrig of the host's screen.
func NewMenu(host Host, xOrig int) *Menu {
	return &Menu{
		host:      host,
		strip:     NewStrip(),
		buttons:   make(map[string]*Button),
		entries:   make(map[string][]menuEntry),
		shortcuts: make(map[keys.Chord]menuShortcut),
		xOrig:     xOrig,
	}
}

// SetOrigX sets the screen column where the menu bar starts.
func (m *Menu) SetOrigX(x int) {
	m.xOrig = x
}

// Size returns the number of categories.
func (m *Menu) Size() int {
	return len(m.categories)
}

// Categories returns the category names in display order.
func (m *Menu) Categories() []string {
	return append([]string(nil), m.categories...)
}

// Items returns the item labels of a category.
func (m *Menu) Items(category string) []string {
	entries := m.entries[category]
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.label
	}
	return out
}

// AddMenu creates category if needed and appends item to it. An empty item only
// creates the category. A non-empty shortcut triggers the item from anywhere
// through CheckShortcuts.
func (m *Menu) AddMenu(category, item string, callback MenuCallback, shortcut string) error {
	chord := keys.NormalizeChord(shortcut)
	if item != "" && chord != keys.None {
		if prev, taken := m.shortcuts[chord]; taken {
			return fmt.Errorf("%w: [%s] is used by %s/%s", ErrDuplicateShortcut, chord, prev.category, prev.item)
		}
	}

	if _, exists := m.entries[category]; !exists {
		m.categories = append(m.categories, category)
		m.entries[category] = nil
		button := NewButton(category, func() { m.Open(category) })
		button.WithAttr(AttrMenubar)
		m.buttons[category] = button
		m.strip.AddItem(button, button.Width())
	}
	if item == "" {
		return nil
	}
	m.entries[category] = append(m.entries[category], menuEntry{label: item, callback: callback})
	if chord != keys.None {
		m.shortcuts[chord] = menuShortcut{category: category, item: item, callback: callback}
	}
	return nil
}

// CheckShortcuts runs the item bound to chord. It returns keys.None when a
// shortcut fired, otherwise the chord.
func (m *Menu) CheckShortcuts(chord keys.Chord) keys.Chord {
	sc, ok := m.shortcuts[chord]
	if !ok {
		return chord
	}
	if sc.callback != nil {
		sc.callback(sc.category, sc.item)
	}
	return keys.None
}

// IsOpen reports whether a category box is shown.
func (m *Menu) IsOpen() bool {
	return m.saved != nil
}

// Box returns the open box, or nil.
func (m *Menu) Box() *MenuBox {
	return m.box
}

// OpenCategory returns the category whose box is shown, or "".
func (m *Menu) OpenCategory() string {
	return m.open
}

// FocusedCategory returns the category under the focus, or "".
func (m *Menu) FocusedCategory() string {
	if len(m.categories) == 0 {
		return ""
	}
	return m.categories[m.strip.FocusColumn()]
}

// Open shows the box of category below the menu bar.
func (m *Menu) Open(category string) {
	entries, ok := m.entries[category]
	if !ok {
		return
	}
	m.Close()
	for i, c := range m.categories {
		if c == category {
			m.strip.SetFocusColumn(i)
		}
	}

	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.label
	}
	box := NewMenuBox(labels)
	box.OnSelect = func(item string) { m.selectItem(category, item) }

	col, _ := m.strip.StartCol(m.buttons[category])
	m.saved = m.host.Root()
	m.box = box
	m.open = category
	m.host.SetRoot(&menuLayer{
		Overlay: NewOverlay(box, m.saved, m.xOrig+col, 1, box.Width(), box.Rows(0, true)),
		menu:    m,
	})
}

// Close restores the screen that was shown before the box opened.
func (m *Menu) Close() {
	if m.saved == nil {
		return
	}
	m.host.SetRoot(m.saved)
	m.saved = nil
	m.box = nil
	m.open = ""
}

func (m *Menu) selectItem(category, item string) {
	var callback MenuCallback
	for _, e := range m.entries[category] {
		if e.label == item {
			callback = e.callback
			break
		}
	}
	if callback == nil {
		return
	}
	m.Close()
	callback(category, item)
}

func (m *Menu) Selectable() bool {
	return true
}

func (m *Menu) Rows(width int, focused bool) int {
	return m.strip.Rows(width, focused)
}

func (m *Menu) Render(size Size, focused bool) string {
	return theme.Apply(AttrMenubar, false, m.strip.Render(size, focused))
}

// KeyPress opens the focused category on MENU_DOWN and closes an open box on
// MENU_UP; other chords go to the category bar.
func (m *Menu) KeyPress(size Size, chord keys.Chord) keys.Chord {
	// Opening a box needs the strip window for this width.
	m.strip.Layout(size.Width)
	switch {
	case keymap.Is(chord, keys.MenuDown):
		if c := m.FocusedCategory(); c != "" {
			m.Open(c)
			return keys.None
		}
	case keymap.Is(chord, keys.MenuUp):
		if m.IsOpen() {
			m.Close()
			return keys.None
		}
	}
	return m.strip.KeyPress(size, chord)
}

func (m *Menu) MouseEvent(size Size, ev MouseEvent, focused bool) bool {
	return m.strip.MouseEvent(size, ev, focused)
}

// menuLayer is the screen while a box is open. It turns the chords the box hands
// back into menu navigation.
type menuLayer struct {
	*Overlay
	menu *Menu
}

func (l *menuLayer) KeyPress(size Size, chord keys.Chord) keys.Chord {
	rest := l.Overlay.KeyPress(size, chord)
	switch {
	case rest == keys.None:
		return keys.None
	case keymap.Is(rest, keys.MenuBoxUp):
		l.menu.Close()
		return keys.None
	case keymap.Is(rest, keys.MenuBoxLeft):
		l.menu.Close()
		l.menu.strip.MoveFocus(-1)
		return keys.None
	case keymap.Is(rest, keys.MenuBoxRight):
		l.menu.Close()
		l.menu.strip.MoveFocus(1)
		return keys.None
	}
	return rest
}

// MouseEvent closes the box on a right click inside it.
func (l *menuLayer) MouseEvent(size Size, ev MouseEvent, focused bool) bool {
	x, y, ts := l.box(size)
	inside := ev.X >= x && ev.X < x+ts.Width && ev.Y >= y && ev.Y < y+ts.Height
	if inside && ev.IsPress(tea.MouseButtonRight) {
		l.menu.Close()
		return true
	}
	return l.Overlay.MouseEvent(size, ev, focused)
}
