package ui

import (
	"testing"

	"starmutt/keys"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlayRender(t *testing.T) {
	top := newFakeWidget("XX", true)
	bottom := NewText("......\n......\n......")
	o := NewOverlay(top, bottom, 2, 1, 2, 1)

	assert.Equal(t, []string{"......", "..XX..", "......"}, lines(o.Render(Size{6, 3}, true)))
}

func TestOverlayClampsToScreen(t *testing.T) {
	top := newFakeWidget("XX", true)
	bottom := NewText("....\n....")
	o := NewOverlay(top, bottom, 10, 5, 2, 1)

	assert.Equal(t, []string{"....", "..XX"}, lines(o.Render(Size{4, 2}, true)))
}

func TestCenteredOverlay(t *testing.T) {
	top := newFakeWidget("XX", true)
	bottom := NewText("......\n......\n......")
	o := NewCenteredOverlay(top, bottom, 2, 1)

	assert.Equal(t, []string{"......", "..XX..", "......"}, lines(o.Render(Size{6, 3}, true)))
}

func TestOverlayInput(t *testing.T) {
	top := newFakeWidget("XX", true)
	bottom := newFakeWidget("bottom", true)
	o := NewOverlay(top, bottom, 2, 1, 2, 1)
	size := Size{6, 3}

	assert.Equal(t, keys.Chord("a"), o.KeyPress(size, "a"))
	assert.Equal(t, []keys.Chord{"a"}, top.got)
	assert.Empty(t, bottom.got)

	assert.True(t, o.MouseEvent(size, leftClick(3, 1), true))
	require.Len(t, top.clicks, 1)
	assert.Equal(t, 1, top.clicks[0].X)
	assert.Equal(t, 0, top.clicks[0].Y)

	assert.False(t, o.MouseEvent(size, leftClick(0, 0), true))
	assert.Empty(t, bottom.clicks)
}

func TestRoot(t *testing.T) {
	r := NewRoot(nil)
	assert.Equal(t, "", r.View(10, 2))
	assert.Equal(t, keys.Chord("x"), r.KeyPress(10, 2, "x"))
	assert.False(t, r.MouseEvent(10, 2, leftClick(0, 0)))

	r.SetRoot(NewText("hello"))
	assert.Equal(t, "hello\n     ", r.View(5, 2))
	assert.Equal(t, "", r.View(0, 2))

	_, _, ok := r.CursorCoords(5, 2)
	assert.False(t, ok)
}
