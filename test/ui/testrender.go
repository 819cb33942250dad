package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"starmutt/keys"
	widget "starmutt/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// TestRenderer captures the rendered output of widgets and models for testing
// purposes. It provides methods to save the output to files and compare with
// expected results.
type TestRenderer struct {
	// Path where snapshots will be stored
	SnapshotPath string
	// Whether to update existing snapshots
	UpdateSnapshots bool
	// Width of the terminal for rendering
	Width int
	// Height of the terminal for rendering; 0 renders widgets at their natural height
	Height int
	// Whether to strip ANSI escape codes from output
	StripColors bool
}

// NewTestRenderer creates a new TestRenderer with default settings
func NewTestRenderer() *TestRenderer {
	return &TestRenderer{
		SnapshotPath:    "snapshots",
		UpdateSnapshots: os.Getenv("UPDATE_SNAPSHOTS") == "true",
		Width:           80,
		Height:          24,
	}
}

// SetDimensions sets the terminal dimensions for rendering
func (r *TestRenderer) SetDimensions(width, height int) *TestRenderer {
	r.Width = width
	r.Height = height
	return r
}

// SetSnapshotPath sets the path where snapshots will be stored
func (r *TestRenderer) SetSnapshotPath(path string) *TestRenderer {
	r.SnapshotPath = path
	return r
}

// EnableUpdateSnapshots enables updating existing snapshots
func (r *TestRenderer) EnableUpdateSnapshots() *TestRenderer {
	r.UpdateSnapshots = true
	return r
}

// DisableColors strips ANSI escape codes from output
func (r *TestRenderer) DisableColors() *TestRenderer {
	r.StripColors = true
	return r
}

// RenderComponent renders a widget at the renderer size, or any component with a
// View() or String() method.
func (r *TestRenderer) RenderComponent(component interface{}) (string, error) {
	var output string
	switch c := component.(type) {
	case *widget.Root:
		output = c.View(r.Width, r.Height)
	case widget.Widget:
		output = c.Render(widget.Size{Width: r.Width, Height: r.Height}, true)
	case interface{ View() string }:
		output = c.View()
	case fmt.Stringer:
		output = c.String()
	default:
		return "", fmt.Errorf("component %T is not a widget and does not implement View() or String()", component)
	}

	if r.StripColors {
		output = ansi.Strip(output)
	}
	return output, nil
}

// SaveComponentOutput renders a component and saves its output to a file
func (r *TestRenderer) SaveComponentOutput(component interface{}, filename string) error {
	output, err := r.RenderComponent(component)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(r.SnapshotPath, 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	return os.WriteFile(filepath.Join(r.SnapshotPath, filename), []byte(output), 0644)
}

// Snapshot renders a component and compares it with a saved snapshot. It returns
// a line diff, empty when they match. With UpdateSnapshots the snapshot is
// rewritten instead.
func (r *TestRenderer) Snapshot(component interface{}, filename string) (string, error) {
	if r.UpdateSnapshots {
		return "", r.SaveComponentOutput(component, filename)
	}

	output, err := r.RenderComponent(component)
	if err != nil {
		return "", err
	}
	expected, err := os.ReadFile(filepath.Join(r.SnapshotPath, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("snapshot %s does not exist, run with UPDATE_SNAPSHOTS=true to create it", filename)
		}
		return "", fmt.Errorf("failed to read snapshot: %w", err)
	}
	return diffStrings(string(expected), output), nil
}

// CompareComponentWithSnapshot compares a rendered component with a saved snapshot
func (r *TestRenderer) CompareComponentWithSnapshot(t *testing.T, component interface{}, filename string) {
	t.Helper()

	diff, err := r.Snapshot(component, filename)
	if err != nil {
		t.Fatalf("Snapshot %s: %v", filename, err)
	}
	if r.UpdateSnapshots {
		t.Logf("Updated snapshot: %s", filename)
		return
	}
	if diff != "" {
		t.Errorf("Rendered output does not match snapshot %s", filename)
		t.Errorf("Diff:\n%s", diff)
	}
}

// Create a simple text diff between two strings
func diffStrings(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var builder strings.Builder
	for i := 0; i < max(len(expectedLines), len(actualLines)); i++ {
		var expectedLine, actualLine string
		if i < len(expectedLines) {
			expectedLine = expectedLines[i]
		}
		if i < len(actualLines) {
			actualLine = actualLines[i]
		}
		if expectedLine != actualLine {
			builder.WriteString(fmt.Sprintf("Line %d:\n", i+1))
			builder.WriteString(fmt.Sprintf("  Expected: %q\n", expectedLine))
			builder.WriteString(fmt.Sprintf("  Actual:   %q\n", actualLine))
		}
	}
	return builder.String()
}

// MockTerminal provides a simulated terminal environment for testing
type MockTerminal struct {
	Width  int
	Height int
}

// NewMockTerminal creates a new MockTerminal with default dimensions
func NewMockTerminal() *MockTerminal {
	return &MockTerminal{
		Width:  80,
		Height: 24,
	}
}

// SetSize sets the terminal dimensions
func (m *MockTerminal) SetSize(width, height int) *MockTerminal {
	m.Width = width
	m.Height = height
	return m
}

// KeyMsg builds the bubbletea message for a chord such as "enter" or "ctrl+x".
func KeyMsg(chord string) tea.KeyMsg {
	switch c := keys.NormalizeChord(chord); c {
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	default:
		for t, name := range keyNames {
			if name == string(c) {
				return tea.KeyMsg{Type: t}
			}
		}
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(string(c))}
	}
}

var keyNames = map[tea.KeyType]string{
	tea.KeyEnter:     "enter",
	tea.KeyEscape:    "esc",
	tea.KeyTab:       "tab",
	tea.KeyBackspace: "backspace",
	tea.KeyUp:        "up",
	tea.KeyDown:      "down",
	tea.KeyLeft:      "left",
	tea.KeyRight:     "right",
	tea.KeyCtrlUp:    "ctrl+up",
	tea.KeyCtrlDown:  "ctrl+down",
	tea.KeyCtrlLeft:  "ctrl+left",
	tea.KeyCtrlRight: "ctrl+right",
	tea.KeyCtrlC:     "ctrl+c",
	tea.KeyCtrlL:     "ctrl+l",
	tea.KeyCtrlX:     "ctrl+x",
}

// SimulateKeyPress simulates a key press on a model
func (m *MockTerminal) SimulateKeyPress(model tea.Model, chord string) (tea.Model, tea.Cmd) {
	return model.Update(KeyMsg(chord))
}

// SimulateWindowResize simulates a window resize event
func (m *MockTerminal) SimulateWindowResize(model tea.Model) (tea.Model, tea.Cmd) {
	return model.Update(tea.WindowSizeMsg{Width: m.Width, Height: m.Height})
}

// Press sends chords to a widget tree at the terminal size, the way the
// application does, and returns what was left unconsumed by the last one.
func (m *MockTerminal) Press(root *widget.Root, chords ...string) keys.Chord {
	rest := keys.None
	for _, c := range chords {
		rest = root.KeyPress(m.Width, m.Height, keys.FromKeyMsg(KeyMsg(c)))
	}
	return rest
}

// Click sends a left click at screen cell (x, y).
func (m *MockTerminal) Click(root *widget.Root, x, y int) bool {
	return root.MouseEvent(m.Width, m.Height, widget.MouseEvent{
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionPress,
		X:      x,
		Y:      y,
	})
}
