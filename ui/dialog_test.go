package ui

import (
	"testing"

	"starmutt/keys"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmDialog(t *testing.T) {
	screen := NewText("screen")
	root := NewRoot(screen)
	var pressed []string

	d := NewConfirmDialog("Quit?", "Really quit?")
	d.SetCallback(DialogButtonYes, func() { pressed = append(pressed, "yes") })
	d.SetCallback(DialogButtonNo, func() { pressed = append(pressed, "no") })

	d.Show(root, 30)
	require.True(t, d.IsShown())
	assert.NotSame(t, screen, root.Root())

	view := plain(root.View(40, 10))
	assert.Contains(t, view, "Quit?")
	assert.Contains(t, view, "Really quit?")
	assert.Contains(t, view, "[ Yes ]  [ No ]")

	assert.Equal(t, keys.None, root.KeyPress(40, 10, "right"))
	assert.Equal(t, keys.None, root.KeyPress(40, 10, "enter"))
	assert.Equal(t, []string{"no"}, pressed)
	assert.False(t, d.IsShown())
	assert.Same(t, screen, root.Root())

	d.Show(root, 30)
	assert.Equal(t, keys.None, root.KeyPress(40, 10, "esc"))
	assert.Equal(t, []string{"no", "no"}, pressed, "escape answers no")
	assert.Same(t, screen, root.Root())
}

func TestAlertDialog(t *testing.T) {
	root := NewRoot(NewText("screen"))
	ok := 0
	d := NewAlert("Error", "Something failed")
	d.SetCallback(DialogButtonOK, func() { ok++ })

	d.Show(root, 24)
	assert.Equal(t, keys.None, root.KeyPress(40, 10, "enter"))
	assert.Equal(t, 1, ok)

	d.Show(root, 24)
	assert.Equal(t, keys.None, root.KeyPress(40, 10, "esc"))
	assert.Equal(t, 2, ok)
}

func TestDialogStyles(t *testing.T) {
	assert.Equal(t, []string{DialogButtonOK}, DialogOK.buttons())
	assert.Equal(t, []string{DialogButtonOK, DialogButtonCancel}, DialogOKCancel.buttons())
	assert.Equal(t, DialogButtonCancel, DialogOKCancel.escapeButton())
	assert.Equal(t, DialogButtonNo, DialogYesNo.escapeButton())
}

func TestDialogRows(t *testing.T) {
	d := NewDialog("Title", DialogOKCancel, NewText("one"), NewText("two"))
	// border, title, two body rows, buttons, border
	assert.Equal(t, 6, d.Rows(20, true))
	assert.Equal(t, 2, d.Body().Len())
}
