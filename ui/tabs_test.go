package ui

import (
	"strings"
	"testing"

	"starmutt/keys"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabsSelect(t *testing.T) {
	tabs := NewTabs()
	boards := NewText("boards page")
	help := NewText("help page")
	tabs.AddTab("Boards", boards)
	tabs.AddTab("Help", help)

	name, body := tabs.Current()
	assert.Equal(t, "Boards", name, "first tab is selected")
	assert.Same(t, boards, body)
	assert.Equal(t, []string{"Boards", "Help"}, tabs.Names())

	changes := 0
	tabs.OnChange.Connect(func() { changes++ })

	require.NoError(t, tabs.SelectTab("Help"))
	name, body = tabs.Current()
	assert.Equal(t, "Help", name)
	assert.Same(t, help, tabs.Body())
	assert.Same(t, help, body)
	assert.Equal(t, 1, changes)

	require.NoError(t, tabs.SelectTab("Help"))
	assert.Equal(t, 1, changes, "reselecting is not a change")

	assert.ErrorIs(t, tabs.SelectTab("Nope"), ErrTabNotFound)
}

func TestTabsRender(t *testing.T) {
	tabs := NewTabs()
	tabs.AddTab("Boards", NewText("boards page"))
	tabs.AddTab("Help", NewText("help page"))
	require.NoError(t, tabs.SelectTab("Help"))

	rows := lines(tabs.Render(Size{20, 4}, false))
	require.Len(t, rows, 4)
	assert.Equal(t, "Boards | Help |     ", rows[0])
	assert.Equal(t, strings.Repeat("─", 20), rows[1])
	assert.Equal(t, "help page           ", rows[2])
}

func TestTabsKeyboard(t *testing.T) {
	tabs := NewTabs()
	tabs.AddTab("Boards", NewText("boards page"))
	tabs.AddTab("Help", NewText("help page"))
	size := Size{30, 6}

	assert.Equal(t, keys.None, tabs.KeyPress(size, "tab"), "the text body hands focus to the header")
	assert.Equal(t, FrameHeader, tabs.FocusPart())

	assert.Equal(t, keys.None, tabs.KeyPress(size, "right"))
	name, _ := tabs.Current()
	assert.Equal(t, "Boards", name, "moving along the names does not select")

	assert.Equal(t, keys.None, tabs.KeyPress(size, "enter"))
	name, _ = tabs.Current()
	assert.Equal(t, "Help", name)

	// Up from the names leaves the tabs, unlike a plain frame.
	assert.Equal(t, keys.Chord("ctrl+up"), tabs.KeyPress(size, "ctrl+up"))
	assert.Equal(t, FrameHeader, tabs.FocusPart())
}

func TestTabsFooter(t *testing.T) {
	tabs := NewTabs()
	tabs.AddTab("Only", NewText("page"))
	tabs.SetFooter(NewText("status"))
	rows := lines(tabs.Render(Size{10, 5}, false))
	assert.Equal(t, "status    ", rows[4])
}
