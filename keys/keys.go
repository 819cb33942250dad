package keys

import (
	"fmt"
	"sync"
)

// Action names a user action that can be bound to a chord.
type Action string

// Namespace groups actions sharing a keybinding conflict domain.
type Namespace string

const (
	TextSelect  Action = "TEXT_SELECT"
	TextSelect2 Action = "TEXT_SELECT2"

	MenuBoxUp    Action = "MENU_BOX_UP"
	MenuBoxLeft  Action = "MENU_BOX_LEFT"
	MenuBoxRight Action = "MENU_BOX_RIGHT"

	MenuDown Action = "MENU_DOWN"
	MenuUp   Action = "MENU_UP"

	MenuRollerUp    Action = "MENU_ROLLER_UP"
	MenuRollerDown  Action = "MENU_ROLLER_DOWN"
	MenuRollerRight Action = "MENU_ROLLER_RIGHT"

	ColumnsRollerLeft  Action = "COLUMNS_ROLLER_LEFT"
	ColumnsRollerRight Action = "COLUMNS_ROLLER_RIGHT"

	// Focus keys rotate focus between the children of piles and frames.
	FocusNext  Action = "FOCUS_NEXT"
	FocusPrev  Action = "FOCUS_PREV"
	FocusUp    Action = "FOCUS_UP"
	FocusDown  Action = "FOCUS_DOWN"
	FocusLeft  Action = "FOCUS_LEFT"
	FocusRight Action = "FOCUS_RIGHT"

	// Cursor keys move between neighbouring selectable children.
	CursorUp    Action = "CURSOR_UP"
	CursorDown  Action = "CURSOR_DOWN"
	CursorLeft  Action = "CURSOR_LEFT"
	CursorRight Action = "CURSOR_RIGHT"

	TableSelect Action = "TABLE_SELECT"
	ModalEscape Action = "MODAL_ESCAPE"

	AppQuit   Action = "APP_QUIT"
	AppRedraw Action = "APP_REDRAW"
)

const (
	NamespaceSelectable    Namespace = "selectable"
	NamespaceMenuBox       Namespace = "menu_box"
	NamespaceMenu          Namespace = "menu"
	NamespaceMenuRoller    Namespace = "menu_roller"
	NamespaceColumnsRoller Namespace = "columns_roller"
	NamespaceFocus         Namespace = "focus"
	NamespaceCursor        Namespace = "cursor"
	NamespaceTable         Namespace = "table"
	NamespaceModal         Namespace = "modal"
	NamespaceGlobal        Namespace = "global"
)

// DefaultBindings is the built-in keymap. It is loaded once by Default.
var DefaultBindings = []Binding{
	{TextSelect, "space", []Namespace{NamespaceSelectable}},
	{TextSelect2, "enter", []Namespace{NamespaceSelectable}},

	{MenuBoxUp, "up", []Namespace{NamespaceMenuBox}},
	{MenuBoxLeft, "left", []Namespace{NamespaceMenuBox}},
	{MenuBoxRight, "right", []Namespace{NamespaceMenuBox}},

	{MenuDown, "down", []Namespace{NamespaceMenu}},
	{MenuUp, "up", []Namespace{NamespaceMenu}},

	{MenuRollerUp, "up", []Namespace{NamespaceMenuRoller}},
	{MenuRollerDown, "down", []Namespace{NamespaceMenuRoller}},
	{MenuRollerRight, "right", []Namespace{NamespaceMenuRoller}},

	{ColumnsRollerLeft, "left", []Namespace{NamespaceColumnsRoller}},
	{ColumnsRollerRight, "right", []Namespace{NamespaceColumnsRoller}},

	{FocusNext, "tab", []Namespace{NamespaceFocus}},
	{FocusPrev, "shift+tab", []Namespace{NamespaceFocus}},
	{FocusUp, "ctrl+up", []Namespace{NamespaceFocus}},
	{FocusDown, "ctrl+down", []Namespace{NamespaceFocus}},
	{FocusLeft, "ctrl+left", []Namespace{NamespaceFocus}},
	{FocusRight, "ctrl+right", []Namespace{NamespaceFocus}},

	{CursorUp, "up", []Namespace{NamespaceCursor}},
	{CursorDown, "down", []Namespace{NamespaceCursor}},
	{CursorLeft, "left", []Namespace{NamespaceCursor}},
	{CursorRight, "right", []Namespace{NamespaceCursor}},

	{TableSelect, "enter", []Namespace{NamespaceTable}},
	{ModalEscape, "esc", []Namespace{NamespaceModal}},

	{AppQuit, "ctrl+c", []Namespace{NamespaceGlobal}},
	{AppRedraw, "ctrl+l", []Namespace{NamespaceGlobal}},
}

// DefaultConflictGroups lists namespaces whose widgets are active at the same time,
// so a chord must not mean two things across them.
var DefaultConflictGroups = [][]Namespace{
	{NamespaceFocus, NamespaceCursor},
	{NamespaceFocus, NamespaceSelectable},
	{NamespaceFocus, NamespaceMenu},
	{NamespaceFocus, NamespaceTable},
	{NamespaceModal, NamespaceSelectable},
}

// DefaultAlwaysCheck namespaces are checked against every group.
var DefaultAlwaysCheck = []Namespace{NamespaceGlobal}

var (
	defaultMap  *ActionMap
	defaultOnce sync.Once
)

// Default returns the process-wide keymap built from DefaultBindings.
// The built-in table is validated once; a broken table is a programming error.
func Default() *ActionMap {
	defaultOnce.Do(func() {
		m, err := NewDefaultMap()
		if err != nil {
			panic(fmt.Sprintf("invalid built-in keymap: %v", err))
		}
		defaultMap = m
	})
	return defaultMap
}

// NewDefaultMap builds a fresh, validated copy of the built-in keymap. Callers that
// apply user overrides start from this instead of mutating Default.
func NewDefaultMap() (*ActionMap, error) {
	m := NewActionMap()
	if err := m.Update(DefaultBindings); err != nil {
		return nil, err
	}
	if err := m.SetConflictGroups(DefaultConflictGroups, DefaultAlwaysCheck); err != nil {
		return nil, err
	}
	if err := m.CheckConflicts(); err != nil {
		return nil, err
	}
	return m, nil
}
