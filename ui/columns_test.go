package ui

import (
	"testing"

	"starmutt/keys"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnsWidths(t *testing.T) {
	c := NewColumns(1,
		Given(newFakeWidget("xxx", false), 3),
		Weighted(newFakeWidget("yyy", false), 1),
		Weighted(newFakeWidget("zzzzzzzz", false), 2),
	)
	assert.Equal(t, []int{3, 3, 8}, c.widths(16))
	assert.Equal(t, "xxx yyy zzzzzzzz", plain(c.Render(Size{16, 1}, false)))

	// Given columns keep their width even when nothing is left.
	assert.Equal(t, []int{3, 0, 0}, c.widths(4))

	c.SetWidth(1, 5)
	assert.Equal(t, WidthGiven, c.Column(1).Kind)
	assert.Equal(t, []int{3, 5, 6}, c.widths(16))
}

func TestColumnsRowsAndRender(t *testing.T) {
	tall := newFakeWidget("a\nb", false)
	tall.rows = 2
	c := NewColumns(0, Given(newFakeWidget("x", false), 1), Weighted(tall, 1))
	assert.Equal(t, 2, c.Rows(4, false))
	assert.Equal(t, []string{"xa  ", " b  "}, lines(c.Render(Size{4, 0}, false)))
}

func TestColumnsFocus(t *testing.T) {
	label := newFakeWidget("label", false)
	a := newFakeWidget("a", true)
	b := newFakeWidget("b", true)
	c := NewColumns(1, Given(label, 5), Weighted(a, 1), Weighted(b, 1))
	size := Size{20, 1}

	require.Equal(t, 1, c.Focus(), "first selectable column takes the focus")

	assert.Equal(t, keys.None, c.KeyPress(size, "right"))
	assert.Equal(t, 2, c.Focus())
	assert.Equal(t, keys.Chord("right"), c.KeyPress(size, "right"), "right edge")
	assert.Equal(t, keys.None, c.KeyPress(size, "ctrl+left"))
	assert.Equal(t, 1, c.Focus())
	assert.Equal(t, keys.Chord("left"), c.KeyPress(size, "left"), "label is not selectable")
	assert.Equal(t, keys.Chord("up"), c.KeyPress(size, "up"))
	assert.Equal(t, []keys.Chord{"right", "left", "up"}, a.got)
	assert.Equal(t, []keys.Chord{"right", "ctrl+left"}, b.got)
}

func TestColumnsMouse(t *testing.T) {
	a := newFakeWidget("a", true)
	b := newFakeWidget("b", true)
	c := NewColumns(2, Given(a, 3), Given(b, 3))

	assert.True(t, c.MouseEvent(Size{8, 1}, leftClick(6, 0), true))
	assert.Equal(t, 1, c.Focus())
	require.Len(t, b.clicks, 1)
	assert.Equal(t, 1, b.clicks[0].X)

	assert.False(t, c.MouseEvent(Size{8, 1}, leftClick(4, 0), true), "divider")
	assert.Equal(t, 1, c.Focus())
}

func TestColumnsZeroWidthTakesNoDivider(t *testing.T) {
	a := newFakeWidget("aaaaaaaaaa", true)
	c := NewColumns(1, Weighted(a, 1), Given(newFakeWidget("", true), 0))

	assert.Equal(t, []int{10, 0}, c.widths(10))
	assert.Equal(t, "aaaaaaaaaa", plain(c.Render(Size{10, 1}, false)))

	assert.True(t, c.MouseEvent(Size{10, 1}, leftClick(9, 0), true))
	require.Len(t, a.clicks, 1)
	assert.Equal(t, 9, a.clicks[0].X)

	// Between shown columns the divider is still charged.
	c = NewColumns(1, Given(newFakeWidget("", true), 0), Given(newFakeWidget("x", false), 1), Weighted(a, 1))
	assert.Equal(t, []int{0, 1, 8}, c.widths(10))
}
