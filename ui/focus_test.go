package ui

import (
	"testing"

	"starmutt/keys"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateFocus(t *testing.T) {
	sel := newFakeWidget("s", true)
	off := newFakeWidget("o", false)
	candidates := []Widget{sel, off, sel, nil, sel}

	testCases := []struct {
		name    string
		current int
		dir     int
		wrap    bool
		want    int
		found   bool
	}{
		{"next skips unselectable", 0, 1, true, 2, true},
		{"next skips absent", 2, 1, true, 4, true},
		{"next wraps", 4, 1, true, 0, true},
		{"prev wraps", 0, -1, true, 4, true},
		{"down stops at the end", 4, 1, false, 4, false},
		{"up stops at the start", 0, -1, false, 0, false},
		{"up skips unselectable", 2, -1, false, 0, true},
		{"no direction", 2, 0, true, 2, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, found := RotateFocus(candidates, tc.current, tc.dir, tc.wrap)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.found, found)
		})
	}

	t.Run("nothing selectable", func(t *testing.T) {
		got, found := RotateFocus([]Widget{off, nil, off}, 1, 1, true)
		assert.Equal(t, 1, got)
		assert.False(t, found)
	})

	t.Run("full cycle returns to the start", func(t *testing.T) {
		selectable := 3
		for _, dir := range []int{1, -1} {
			pos := 2
			for i := 0; i < selectable; i++ {
				pos, _ = RotateFocus(candidates, pos, dir, true)
			}
			assert.Equal(t, 2, pos)
		}
	})
}

func TestRotateOnChord(t *testing.T) {
	sel := newFakeWidget("s", true)
	off := newFakeWidget("o", false)

	pos, rest := rotateOnChord([]Widget{off, off}, 0, 1, true, "tab")
	assert.Equal(t, 0, pos)
	assert.Equal(t, keys.None, rest, "chord without a target is swallowed")

	pos, rest = rotateOnChord([]Widget{sel, sel}, 1, 1, false, "ctrl+down")
	assert.Equal(t, 1, pos)
	assert.Equal(t, keys.Chord("ctrl+down"), rest, "edge step goes to the parent")

	pos, rest = rotateOnChord([]Widget{sel, sel}, 1, 1, true, "tab")
	assert.Equal(t, 0, pos)
	assert.Equal(t, keys.None, rest)
}

func TestPileFocus(t *testing.T) {
	title := newFakeWidget("title", false)
	a := newFakeWidget("a", true)
	b := newFakeWidget("b", true)
	p := NewPile(title, a, b)
	size := Size{10, 3}

	require.Equal(t, 1, p.Focus(), "first selectable child takes the focus")
	changes := 0
	p.FocusChanged.Connect(func() { changes++ })

	assert.Equal(t, keys.None, p.KeyPress(size, "down"))
	assert.Equal(t, 2, p.Focus())
	assert.Equal(t, []keys.Chord{"down"}, a.got, "child sees the chord first")

	assert.Equal(t, keys.Chord("down"), p.KeyPress(size, "down"), "no wrap past the end")
	assert.Equal(t, 2, p.Focus())

	assert.Equal(t, keys.None, p.KeyPress(size, "tab"))
	assert.Equal(t, 1, p.Focus())

	assert.Equal(t, keys.None, p.KeyPress(size, "shift+tab"))
	assert.Equal(t, 2, p.Focus())

	p.SetFocus(1)
	assert.Equal(t, keys.Chord("up"), p.KeyPress(size, "up"), "title is skipped and the edge hands the chord back")
	assert.Equal(t, 1, p.Focus())
	assert.Equal(t, 4, changes)

	b.consume["tab"] = true
	p.SetFocus(2)
	assert.Equal(t, keys.None, p.KeyPress(size, "tab"))
	assert.Equal(t, 2, p.Focus(), "consumed chords do not move the focus")
}

func TestPileWithoutSelectableChildren(t *testing.T) {
	p := NewPile(newFakeWidget("x", false), newFakeWidget("y", false))
	assert.False(t, p.Selectable())
	assert.Equal(t, keys.None, p.KeyPress(Size{5, 2}, "tab"))
	assert.Equal(t, keys.None, p.KeyPress(Size{5, 2}, "down"))
	assert.Equal(t, keys.Chord("x"), p.KeyPress(Size{5, 2}, "x"))
	assert.Equal(t, 0, p.Focus())
}

func TestPileHeights(t *testing.T) {
	p := NewPile()
	p.AddFixed(newFakeWidget("f", false), 2)
	p.AddWeight(newFakeWidget("w1", false), 1)
	p.AddWeight(newFakeWidget("w2", false), 1)

	assert.Equal(t, []int{2, 3, 4}, p.heights(Size{4, 9}, false))
	assert.Equal(t, 4, p.Rows(4, false))

	out := p.Render(Size{4, 9}, false)
	rows := lines(out)
	require.Len(t, rows, 9)
	assert.Equal(t, "f   ", rows[0])
	assert.Equal(t, "w1  ", rows[2])
	assert.Equal(t, "w2  ", rows[5])
}

func TestPileRemove(t *testing.T) {
	p := NewPile(newFakeWidget("a", true), newFakeWidget("b", true))
	p.SetFocus(1)
	p.Remove(1)
	assert.Equal(t, 0, p.Focus())
	assert.Equal(t, 1, p.Len())
	p.Clear()
	assert.Nil(t, p.Focused())
	assert.Equal(t, keys.Chord("tab"), p.KeyPress(Size{5, 1}, "tab"))
}

func TestPileMouse(t *testing.T) {
	a := newFakeWidget("a", true)
	b := newFakeWidget("b", true)
	b.rows = 2
	p := NewPile(a, b)
	assert.True(t, p.MouseEvent(Size{5, 3}, leftClick(3, 2), true))
	assert.Equal(t, 1, p.Focus())
	require.Len(t, b.clicks, 1)
	assert.Equal(t, 1, b.clicks[0].Y)
	assert.False(t, p.MouseEvent(Size{5, 3}, leftClick(3, 7), true))
}

func TestFrameFocus(t *testing.T) {
	header := newFakeWidget("header", true)
	body := newFakeWidget("body", true)
	footer := newFakeWidget("footer", true)
	f := NewFrame(body, header, footer)
	size := Size{10, 5}

	require.Equal(t, FrameBody, f.FocusPart())

	assert.Equal(t, keys.None, f.KeyPress(size, "tab"))
	assert.Equal(t, FrameFooter, f.FocusPart())
	assert.Equal(t, keys.None, f.KeyPress(size, "tab"))
	assert.Equal(t, FrameHeader, f.FocusPart(), "next wraps around")
	assert.Equal(t, keys.None, f.KeyPress(size, "tab"))
	assert.Equal(t, FrameBody, f.FocusPart(), "three steps return to the start")

	assert.Equal(t, keys.None, f.KeyPress(size, "ctrl+up"))
	assert.Equal(t, FrameHeader, f.FocusPart())
	assert.Equal(t, keys.None, f.KeyPress(size, "ctrl+up"), "up does not wrap and is swallowed")
	assert.Equal(t, FrameHeader, f.FocusPart())

	assert.Equal(t, keys.None, f.KeyPress(size, "shift+tab"))
	assert.Equal(t, FrameFooter, f.FocusPart())
	assert.Equal(t, keys.None, f.KeyPress(size, "ctrl+down"))
	assert.Equal(t, FrameFooter, f.FocusPart())
}

func TestFrameKeepsFocusChordsAtEdges(t *testing.T) {
	header := NewSelectableText("header")
	body := NewSelectableText("body")
	f := NewFrame(body, header, nil)
	f.SetFocusPart(FrameHeader)
	size := Size{10, 5}

	assert.Equal(t, keys.None, f.KeyPress(size, keymap.Key(keys.FocusUp)))
	assert.Equal(t, FrameHeader, f.FocusPart())

	// The same chord inside a frame nested in a pile never reaches the pile.
	outer := NewPile(NewSelectableText("above"), f)
	outer.SetFocus(1)
	assert.Equal(t, keys.None, outer.KeyPress(Size{10, 0}, keymap.Key(keys.FocusUp)))
	assert.Equal(t, 1, outer.Focus())

	f.SetFocusPart(FrameBody)
	assert.Equal(t, keys.None, f.KeyPress(size, keymap.Key(keys.FocusDown)))
	assert.Equal(t, FrameBody, f.FocusPart())
}

func TestFrameMissingParts(t *testing.T) {
	body := newFakeWidget("body", true)
	footer := newFakeWidget("footer", true)
	f := NewFrame(body, nil, footer)
	size := Size{10, 5}

	assert.Equal(t, keys.None, f.KeyPress(size, "shift+tab"))
	assert.Equal(t, FrameFooter, f.FocusPart(), "absent header is skipped")

	f.SetFocusPart(FrameHeader)
	assert.Equal(t, FrameFooter, f.FocusPart(), "absent parts cannot be focused")

	f.SetFooter(nil)
	assert.Equal(t, FrameBody, f.FocusPart())
	assert.Equal(t, keys.None, f.KeyPress(size, "tab"), "only the body is left")
	assert.Equal(t, FrameBody, f.FocusPart())
}

func TestFrameRender(t *testing.T) {
	f := NewFrame(newFakeWidget("body", true), newFakeWidget("head", false), newFakeWidget("foot", false))
	rows := lines(f.Render(Size{6, 5}, true))
	assert.Equal(t, []string{"head  ", "body  ", "      ", "      ", "foot  "}, rows)
	assert.Equal(t, 3, f.Rows(6, true))
}

func TestFrameMouse(t *testing.T) {
	header := newFakeWidget("header", true)
	body := newFakeWidget("body", true)
	footer := newFakeWidget("footer", true)
	f := NewFrame(body, header, footer)

	assert.True(t, f.MouseEvent(Size{10, 5}, leftClick(1, 4), true))
	assert.Equal(t, FrameFooter, f.FocusPart())
	require.Len(t, footer.clicks, 1)
	assert.Equal(t, 0, footer.clicks[0].Y)

	assert.True(t, f.MouseEvent(Size{10, 5}, leftClick(1, 2), true))
	assert.Equal(t, FrameBody, f.FocusPart())
	assert.Equal(t, 1, body.clicks[0].Y)
}
