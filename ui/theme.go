package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Attribute names used by the built-in widgets.
const (
	AttrMenubar       = "menubar"
	AttrMenuitem      = "menuitem"
	AttrTitle         = "title"
	AttrStatusBar     = "status_bar"
	AttrSelectable    = "selectable"
	AttrSelected      = "selected"
	AttrTableSelected = "table_selected"
	AttrButton        = "button"
	AttrDialog        = "dialog"

	focusSuffix = "_focus"
)

// PaletteEntry describes an attribute with terminal colour names or hex values.
type PaletteEntry struct {
	Foreground string
	Background string
	Bold       bool
}

// Style converts the entry to a lipgloss style.
func (p PaletteEntry) Style() lipgloss.Style {
	st := lipgloss.NewStyle().Bold(p.Bold)
	if p.Foreground != "" {
		st = st.Foreground(lipgloss.Color(p.Foreground))
	}
	if p.Background != "" {
		st = st.Background(lipgloss.Color(p.Background))
	}
	return st
}

// Theme maps attribute names to styles. An attribute "x_focus" is used for "x"
// while the widget holds focus.
type Theme struct {
	styles map[string]lipgloss.Style
}

// DefaultPalette is the built-in colour set.
var DefaultPalette = map[string]PaletteEntry{
	AttrMenubar:                  {Foreground: "7", Background: "1", Bold: true},
	AttrMenubar + focusSuffix:    {Foreground: "7", Background: "2", Bold: true},
	AttrMenuitem:                 {Foreground: "7", Background: "1", Bold: true},
	AttrMenuitem + focusSuffix:   {Foreground: "7", Background: "2", Bold: true},
	AttrStatusBar:                {Foreground: "0", Background: "7"},
	AttrTitle:                    {Bold: true},
	AttrSelected:                 {Foreground: "0", Background: "6"},
	AttrTableSelected:            {Foreground: "0", Background: "7"},
	AttrSelectable + focusSuffix: {Foreground: "0", Background: "7"},
	AttrButton + focusSuffix:     {Foreground: "0", Background: "7", Bold: true},
}

// NewTheme builds a theme from a palette.
func NewTheme(palette map[string]PaletteEntry) *Theme {
	t := &Theme{styles: make(map[string]lipgloss.Style, len(palette))}
	for attr, entry := range palette {
		t.styles[attr] = entry.Style()
	}
	return t
}

// DefaultTheme returns a theme built from DefaultPalette.
func DefaultTheme() *Theme {
	return NewTheme(DefaultPalette)
}

// Set defines or overrides one attribute.
func (t *Theme) Set(attr string, st lipgloss.Style) {
	t.styles[attr] = st
}

// Has reports whether attr is defined.
func (t *Theme) Has(attr string) bool {
	_, ok := t.styles[attr]
	return ok
}

// Style returns the style of attr, or an empty style.
func (t *Theme) Style(attr string) lipgloss.Style {
	if st, ok := t.styles[attr]; ok {
		return st
	}
	return lipgloss.NewStyle()
}

// Focus returns the focused variant of attr. Attributes without an explicit
// variant are shown reversed.
func (t *Theme) Focus(attr string) lipgloss.Style {
	if st, ok := t.styles[attr+focusSuffix]; ok {
		return st
	}
	return t.Style(attr).Reverse(true)
}

// Apply styles every line of a rendered block.
func (t *Theme) Apply(attr string, focused bool, block string) string {
	if attr == "" {
		return block
	}
	st := t.Style(attr)
	if focused {
		st = t.Focus(attr)
	}
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = st.Render(l)
	}
	return strings.Join(lines, "\n")
}

var theme = DefaultTheme()

// SetTheme replaces the theme used by every widget.
func SetTheme(t *Theme) {
	if t == nil {
		t = DefaultTheme()
	}
	theme = t
}

// CurrentTheme returns the active theme.
func CurrentTheme() *Theme {
	return theme
}
