package ui

import (
	"starmutt/keys"

	"github.com/charmbracelet/lipgloss"
)

// DialogStyle selects the buttons of a dialog.
type DialogStyle int

const (
	DialogOK DialogStyle = iota
	DialogOKCancel
	DialogYesNo
)

// Button names passed to SetCallback.
const (
	DialogButtonOK     = "ok"
	DialogButtonCancel = "cancel"
	DialogButtonYes    = "yes"
	DialogButtonNo     = "no"
)

func (s DialogStyle) buttons() []string {
	switch s {
	case DialogOKCancel:
		return []string{DialogButtonOK, DialogButtonCancel}
	case DialogYesNo:
		return []string{DialogButtonYes, DialogButtonNo}
	}
	return []string{DialogButtonOK}
}

// escapeButton is the button MODAL_ESCAPE presses.
func (s DialogStyle) escapeButton() string {
	switch s {
	case DialogOKCancel:
		return DialogButtonCancel
	case DialogYesNo:
		return DialogButtonNo
	}
	return DialogButtonOK
}

var dialogLabels = map[string]string{
	DialogButtonOK:     "OK",
	DialogButtonCancel: "Cancel",
	DialogButtonYes:    "Yes",
	DialogButtonNo:     "No",
}

// Dialog is a bordered frame with a centred title, a body and a row of buttons.
// Shown with Show, it covers the host screen until a button is pressed.
type Dialog struct {
	frame     *Frame
	body      *Pile
	style     DialogStyle
	callbacks map[string]func()

	host  Host
	saved Widget
}

// NewDialog creates a dialog. The focus starts on the buttons.
func NewDialog(title string, style DialogStyle, body ...Widget) *Dialog {
	d := &Dialog{
		body:      NewPile(body...),
		style:     style,
		callbacks: make(map[string]func()),
	}
	buttons := NewColumns(2)
	for _, name := range style.buttons() {
		b := NewButton(dialogLabels[name], func() { d.press(name) })
		buttons.Add(Given(b, b.Width()))
	}
	header := NewText(title).WithAlign(lipgloss.Center).WithAttr(AttrTitle)
	d.frame = NewFrame(d.body, header, buttons)
	d.frame.SetFocusPart(FrameFooter)
	return d
}

// NewAlert creates a dialog showing message with an OK button.
func NewAlert(title, message string) *Dialog {
	return NewDialog(title, DialogOK, NewText(message))
}

// NewConfirmDialog creates a dialog asking message with Yes and No buttons.
func NewConfirmDialog(title, message string) *Dialog {
	return NewDialog(title, DialogYesNo, NewText(message))
}

// SetCallback sets the function run when the named button is pressed.
func (d *Dialog) SetCallback(name string, fn func()) {
	d.callbacks[name] = fn
}

// Body returns the pile holding the dialog content.
func (d *Dialog) Body() *Pile {
	return d.body
}

// Show draws the dialog centred over the host screen.
func (d *Dialog) Show(host Host, width int) {
	d.Close()
	d.host = host
	d.saved = host.Root()
	host.SetRoot(NewCenteredOverlay(d, d.saved, width, 0))
}

// IsShown reports whether the dialog covers a host screen.
func (d *Dialog) IsShown() bool {
	return d.saved != nil
}

// Close restores the host screen.
func (d *Dialog) Close() {
	if d.saved == nil {
		return
	}
	d.host.SetRoot(d.saved)
	d.saved = nil
}

func (d *Dialog) press(name string) {
	d.Close()
	if fn := d.callbacks[name]; fn != nil {
		fn()
	}
}

func (d *Dialog) inner(size Size) Size {
	h := 0
	if size.Height > 0 {
		h = max(1, size.Height-2)
	}
	return Size{max(1, size.Width-2), h}
}

func (d *Dialog) Selectable() bool {
	return true
}

func (d *Dialog) Rows(width int, focused bool) int {
	return d.frame.Rows(max(1, width-2), focused) + 2
}

func (d *Dialog) Render(size Size, focused bool) string {
	content := d.frame.Render(d.inner(size), focused)
	boxed := theme.Style(AttrDialog).
		Border(lipgloss.NormalBorder()).
		Render(content)
	return fitBlock(boxed, size.Width, size.Height)
}

// KeyPress presses the cancelling button on MODAL_ESCAPE.
func (d *Dialog) KeyPress(size Size, chord keys.Chord) keys.Chord {
	rest := d.frame.KeyPress(d.inner(size), chord)
	if rest != keys.None && keymap.Is(rest, keys.ModalEscape) {
		d.press(d.style.escapeButton())
		return keys.None
	}
	return rest
}

func (d *Dialog) MouseEvent(size Size, ev MouseEvent, focused bool) bool {
	if ev.X < 1 || ev.Y < 1 {
		return false
	}
	return d.frame.MouseEvent(d.inner(size), ev.At(1, 1), focused)
}
