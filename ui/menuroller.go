package ui

import (
	"errors"
	"fmt"

	"starmutt/keys"

	"github.com/google/uuid"
)

var (
	ErrMenuIDConflict = errors.New("menu id already used")
	ErrMenuExists     = errors.New("menu name already used by another menu")
	ErrUnknownMenu    = errors.New("unknown menu")
)

type rollerItem struct {
	id   string
	name string
	menu *Menu
}

// MenuRoller shows one of several named menus: the name of the current menu on
// the left and the menu itself on the right.
type MenuRoller struct {
	items    []rollerItem
	selected string
	columns  *Columns
}

func NewMenuRoller() *MenuRoller {
	r := &MenuRoller{columns: NewColumns(0)}
	r.showSelected()
	return r
}

func (r *MenuRoller) find(id string) int {
	for i, it := range r.items {
		if it.id == id {
			return i
		}
	}
	return -1
}

// AddMenu adds menu under name and returns its id. An empty id is generated.
// Adding the same menu under the same name again returns its id; a name already
// used by another menu is an error.
func (r *MenuRoller) AddMenu(name string, menu *Menu, id string) (string, error) {
	for _, it := range r.items {
		if it.name != name {
			continue
		}
		if it.menu != menu {
			return "", fmt.Errorf("%w: %q (id %s), use ReplaceMenu to change it", ErrMenuExists, name, it.id)
		}
		return it.id, nil
	}

	if id == "" {
		id = uuid.New().String()
	}
	if r.find(id) >= 0 {
		return "", fmt.Errorf("%w: %s", ErrMenuIDConflict, id)
	}
	r.items = append(r.items, rollerItem{id: id, name: name, menu: menu})
	if r.selected == "" {
		r.selected = id
		r.showSelected()
	}
	return id, nil
}

// ReplaceMenu adds a menu, replacing the one with the same id if any.
func (r *MenuRoller) ReplaceMenu(name string, menu *Menu, id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty id", ErrUnknownMenu)
	}
	if i := r.find(id); i >= 0 {
		r.items = append(r.items[:i], r.items[i+1:]...)
	}
	if _, err := r.AddMenu(name, menu, id); err != nil {
		return err
	}
	if r.selected == id {
		r.showSelected()
	}
	return nil
}

// RemoveMenu removes a menu. When it was shown, the first remaining menu is.
func (r *MenuRoller) RemoveMenu(id string) error {
	i := r.find(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownMenu, id)
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	if r.selected == id {
		r.selected = ""
		if len(r.items) > 0 {
			r.selected = r.items[0].id
		}
		r.showSelected()
	}
	return nil
}

// Selected returns the id of the shown menu, or "".
func (r *MenuRoller) Selected() string {
	return r.selected
}

// Current returns the shown menu, or nil.
func (r *MenuRoller) Current() *Menu {
	if i := r.find(r.selected); i >= 0 {
		return r.items[i].menu
	}
	return nil
}

// Select shows the menu with id.
func (r *MenuRoller) Select(id string) error {
	if r.find(id) < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownMenu, id)
	}
	r.selected = id
	r.showSelected()
	return nil
}

// FocusColumn is 0 on the menu name and 1 on the menu.
func (r *MenuRoller) FocusColumn() int {
	return r.columns.Focus()
}

func (r *MenuRoller) showSelected() {
	focus := r.columns.Focus()
	i := r.find(r.selected)
	if i < 0 {
		r.columns = NewColumns(0, Given(NewText(""), 0), Weighted(NewText(""), 1))
		return
	}
	it := r.items[i]
	label := "⇉ " + it.name + " ⇇ "
	width := DisplayWidth(label)
	it.menu.SetOrigX(width)
	r.columns = NewColumns(0,
		Given(NewClickableText(label).WithAttr(AttrMenubar), width),
		Weighted(it.menu, 1),
	)
	r.columns.SetFocus(focus)
}

// CheckShortcuts offers chord to every menu. It returns keys.None when one fired.
func (r *MenuRoller) CheckShortcuts(chord keys.Chord) keys.Chord {
	for _, it := range r.items {
		if chord = it.menu.CheckShortcuts(chord); chord == keys.None {
			return keys.None
		}
	}
	return chord
}

func (r *MenuRoller) Selectable() bool {
	return true
}

func (r *MenuRoller) Rows(width int, focused bool) int {
	return r.columns.Rows(width, focused)
}

func (r *MenuRoller) Render(size Size, focused bool) string {
	return theme.Apply(AttrMenubar, false, r.columns.Render(size, focused))
}

// KeyPress switches menus on MENU_ROLLER_UP and MENU_ROLLER_DOWN while the name
// is focused, and refuses MENU_ROLLER_RIGHT onto an empty menu.
func (r *MenuRoller) KeyPress(size Size, chord keys.Chord) keys.Chord {
	idx := r.find(r.selected)
	if idx < 0 {
		return r.columns.KeyPress(size, chord)
	}
	onName := r.columns.Focus() == 0
	switch {
	case keymap.Is(chord, keys.MenuRollerUp) && onName:
		if idx > 0 {
			r.selected = r.items[idx-1].id
			r.showSelected()
		}
		return keys.None
	case keymap.Is(chord, keys.MenuRollerDown) && onName:
		if idx < len(r.items)-1 {
			r.selected = r.items[idx+1].id
			r.showSelected()
		}
		return keys.None
	case keymap.Is(chord, keys.MenuRollerRight) && onName:
		if r.items[idx].menu.Size() == 0 {
			return keys.None
		}
	}
	return r.columns.KeyPress(size, chord)
}

func (r *MenuRoller) MouseEvent(size Size, ev MouseEvent, focused bool) bool {
	return r.columns.MouseEvent(size, ev, focused)
}
