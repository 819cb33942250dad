package app

import (
	"errors"
	"os"
	"strings"
	"testing"

	"starmutt/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func newTestHome(t *testing.T) *home {
	t.Helper()
	m, err := newHome()
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func press(m *home, keys ...tea.KeyType) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(tea.KeyMsg{Type: k})
	}
	return cmd
}

func isQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView(t *testing.T) {
	m := newTestHome(t)
	lines := strings.Split(ansi.Strip(m.View()), "\n")
	require.Len(t, lines, 24)

	assert.True(t, strings.HasPrefix(lines[0], "⇉ Chan ⇇ "), lines[0])
	assert.Contains(t, lines[0], "Boards")
	assert.True(t, strings.HasPrefix(lines[1], "Boards | Help | "), lines[1])
	assert.Contains(t, ansi.Strip(m.View()), "chancli version 0.0.1")
	assert.Contains(t, ansi.Strip(m.View()), "/g/")
	assert.Contains(t, lines[22], statusWelcome)
}

func TestViewBeforeWindowSize(t *testing.T) {
	m, err := newHome()
	require.NoError(t, err)
	assert.Equal(t, "", m.View())
}

func TestQuit(t *testing.T) {
	t.Run("app quit chord", func(t *testing.T) {
		m := newTestHome(t)
		isQuit(t, press(m, tea.KeyCtrlC))
	})

	t.Run("menu shortcut asks first", func(t *testing.T) {
		m := newTestHome(t)
		assert.Nil(t, press(m, tea.KeyCtrlX))
		assert.False(t, m.quitting)
		assert.Equal(t, "Menu selected: File/Quit (C-x)", m.status.Text())
		assert.NotSame(t, m.frame, m.root.Root())
		assert.Contains(t, m.View(), quitQuestion)

		// A second shortcut while asking does not stack another dialog.
		assert.Nil(t, press(m, tea.KeyCtrlX))
		isQuit(t, press(m, tea.KeyEnter))
		assert.True(t, m.quitting)
	})

	t.Run("escape keeps running", func(t *testing.T) {
		m := newTestHome(t)
		press(m, tea.KeyCtrlX)
		assert.Nil(t, press(m, tea.KeyEscape))
		assert.False(t, m.quitting)
		assert.Same(t, m.frame, m.root.Root())
		assert.Equal(t, statusWelcome, m.status.Text())
	})

	t.Run("other keys keep running", func(t *testing.T) {
		m := newTestHome(t)
		assert.Nil(t, press(m, tea.KeyCtrlA))
		assert.False(t, m.quitting)
	})
}

func TestMenuNavigation(t *testing.T) {
	m := newTestHome(t)
	var copied []string
	m.copyToClipboard = func(s string) error {
		copied = append(copied, s)
		return nil
	}

	// Into the menu, open "Boards", move to "Copy row" and select it.
	press(m, tea.KeyRight, tea.KeyDown)
	_, open := m.root.Root().(*ui.Frame)
	assert.False(t, open, "the box covers the screen")
	press(m, tea.KeyDown, tea.KeyEnter)

	assert.Same(t, m.frame, m.root.Root())
	assert.Equal(t, []string{"/a/\tAnime & Manga"}, copied)
	assert.Equal(t, "Copied: /a/\tAnime & Manga", m.status.Text())
}

func TestShowHelpTab(t *testing.T) {
	m := newTestHome(t)

	// Second menu of the roller, then its only category and first item.
	press(m, tea.KeyDown, tea.KeyRight, tea.KeyDown, tea.KeyEnter)

	name, _ := m.tabs.Current()
	assert.Equal(t, tabHelp, name)
	assert.Equal(t, ui.FrameBody, m.frame.FocusPart())
	assert.Equal(t, "Menu selected: Help/Show help", m.status.Text())
	assert.Contains(t, ansi.Strip(m.View()), "Basic Commands")
}

func TestBoardRowClick(t *testing.T) {
	m := newTestHome(t)
	m.frame.SetFocusPart(ui.FrameBody)

	press(m, tea.KeyDown, tea.KeyEnter)
	assert.Equal(t, "Board /c/ - Anime/Cute", m.status.Text())
}

func TestCopyRowFailure(t *testing.T) {
	m := newTestHome(t)
	m.copyToClipboard = func(string) error { return errors.New("no clipboard") }

	m.copySelectedRow()
	assert.Equal(t, "Copy failed: no clipboard", m.status.Text())
}

func TestMouseSelectsTab(t *testing.T) {
	m := newTestHome(t)

	// "Boards | Help | " on the row below the menu bar.
	m.Update(tea.MouseMsg{X: 10, Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})

	name, _ := m.tabs.Current()
	assert.Equal(t, tabHelp, name)
}

func TestFocusUpFromTabsReachesMenu(t *testing.T) {
	m := newTestHome(t)
	m.frame.SetFocusPart(ui.FrameBody)
	m.tabs.SetFocusPart(ui.FrameHeader)

	assert.Nil(t, press(m, tea.KeyCtrlUp))
	assert.Equal(t, ui.FrameHeader, m.frame.FocusPart())

	// The outer frame keeps the chord at its top edge.
	assert.Nil(t, press(m, tea.KeyCtrlUp))
	assert.Equal(t, ui.FrameHeader, m.frame.FocusPart())
}
