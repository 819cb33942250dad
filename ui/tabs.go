package ui

import (
	"errors"
	"fmt"

	"starmutt/keys"
)

var ErrTabNotFound = errors.New("tab not found")

type tab struct {
	name   string
	button *Button
	body   Widget
}

// Tabs is a frame whose header is a strip of tab names and whose body is the
// page of the selected tab. The first tab added is selected.
type Tabs struct {
	*Frame
	strip    *Strip
	tabs     []tab
	selected int

	// OnChange fires after the selected tab changed.
	OnChange Signal
}

func NewTabs() *Tabs {
	t := &Tabs{strip: NewStrip(), selected: -1}
	header := NewPile(t.strip, NewDivider("─"))
	t.Frame = NewFrame(NewText(""), header, nil)
	return t
}

// KeyPress hands FOCUS_UP back from the tab names, so the container holding the
// tabs can move focus above them.
func (t *Tabs) KeyPress(size Size, chord keys.Chord) keys.Chord {
	if t.FocusPart() == FrameHeader && keymap.Is(chord, keys.FocusUp) {
		return chord
	}
	return t.Frame.KeyPress(size, chord)
}

// AddTab appends a page named name.
func (t *Tabs) AddTab(name string, body Widget) {
	button := NewButtonWithBorders(name, "", " | ", func() { _ = t.SelectTab(name) })
	t.tabs = append(t.tabs, tab{name: name, button: button, body: body})
	t.strip.AddItem(button, button.Width())
	if t.selected < 0 {
		_ = t.SelectTab(name)
	}
}

// SelectTab shows the page named name.
func (t *Tabs) SelectTab(name string) error {
	for i, tb := range t.tabs {
		if tb.name != name {
			continue
		}
		if i == t.selected {
			return nil
		}
		if t.selected >= 0 {
			t.tabs[t.selected].button.WithAttr(AttrButton)
		}
		t.selected = i
		tb.button.WithAttr(AttrTitle)
		t.strip.SetFocusColumn(i)
		t.SetBody(tb.body)
		t.OnChange.Emit()
		return nil
	}
	return fmt.Errorf("%w: %q", ErrTabNotFound, name)
}

// Current returns the name and page of the selected tab.
func (t *Tabs) Current() (string, Widget) {
	if t.selected < 0 {
		return "", nil
	}
	tb := t.tabs[t.selected]
	return tb.name, tb.body
}

// Names returns the tab names in order.
func (t *Tabs) Names() []string {
	out := make([]string, len(t.tabs))
	for i, tb := range t.tabs {
		out[i] = tb.name
	}
	return out
}
