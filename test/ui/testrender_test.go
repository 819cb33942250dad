package ui

import (
	"os"
	"path/filepath"
	"testing"

	"starmutt/keys"
	widget "starmutt/ui"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestDialogRendering(t *testing.T) {
	dialog := widget.NewConfirmDialog("Quit", "Really quit?")

	renderer := NewTestRenderer().
		SetDimensions(30, 0).
		SetSnapshotPath(t.TempDir()).
		DisableColors()

	output, err := renderer.RenderComponent(dialog)
	require.NoError(t, err)
	assert.Contains(t, output, "Quit")
	assert.Contains(t, output, "Really quit?")
	assert.Contains(t, output, "Yes")
	assert.Contains(t, output, "No")
}

func TestSnapshotRoundTrip(t *testing.T) {
	text := widget.NewText("hello")
	renderer := NewTestRenderer().
		SetDimensions(10, 1).
		SetSnapshotPath(filepath.Join(t.TempDir(), "nested")).
		DisableColors()

	renderer.EnableUpdateSnapshots()
	renderer.CompareComponentWithSnapshot(t, text, "text.txt")
	saved, err := os.ReadFile(filepath.Join(renderer.SnapshotPath, "text.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello     ", string(saved))

	renderer.UpdateSnapshots = false
	renderer.CompareComponentWithSnapshot(t, text, "text.txt")

	text.SetText("world")
	diff, err := renderer.Snapshot(text, "text.txt")
	require.NoError(t, err)
	assert.Contains(t, diff, "Line 1:")
	assert.Contains(t, diff, `"world     "`)
}

func TestSnapshotMissing(t *testing.T) {
	renderer := NewTestRenderer().SetSnapshotPath(t.TempDir())
	renderer.UpdateSnapshots = false

	_, err := renderer.Snapshot(widget.NewText("x"), "missing.txt")
	assert.ErrorContains(t, err, "does not exist")
}

func TestRenderComponentRejectsUnknown(t *testing.T) {
	_, err := NewTestRenderer().RenderComponent(42)
	assert.Error(t, err)
}

func TestRenderRoot(t *testing.T) {
	root := widget.NewRoot(widget.NewFrame(
		widget.NewText("body"),
		widget.NewText("head"),
		widget.NewText("foot"),
	))
	output, err := NewTestRenderer().SetDimensions(6, 4).DisableColors().RenderComponent(root)
	require.NoError(t, err)
	assert.Equal(t, "head  \nbody  \n      \nfoot  ", output)
}

func TestKeyMsg(t *testing.T) {
	for _, chord := range []string{"enter", "esc", "tab", "shift+tab", "space", "up", "ctrl+left", "ctrl+x", "q", "N"} {
		assert.Equal(t, keys.NormalizeChord(chord), keys.FromKeyMsg(KeyMsg(chord)), chord)
	}
}

func TestTabsInteraction(t *testing.T) {
	tabs := widget.NewTabs()
	tabs.AddTab("One", widget.NewText("first page"))
	tabs.AddTab("Two", widget.NewText("second page"))
	root := widget.NewRoot(tabs)
	term := NewMockTerminal().SetSize(20, 4)
	renderer := NewTestRenderer().SetDimensions(term.Width, term.Height).DisableColors()

	// The tab strip is the first row: "One | Two | ".
	assert.True(t, term.Click(root, 7, 0))
	name, _ := tabs.Current()
	assert.Equal(t, "Two", name)

	output, err := renderer.RenderComponent(root)
	require.NoError(t, err)
	assert.Contains(t, output, "second page")

	tabs.SetFocusPart(widget.FrameHeader)
	assert.Equal(t, keys.None, term.Press(root, "left", "enter"))
	name, _ = tabs.Current()
	assert.Equal(t, "One", name)
}
