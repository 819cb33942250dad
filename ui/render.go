package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// fitLine truncates or pads a single line to exactly width cells.
func fitLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return padding.String(truncate.String(s, uint(width)), uint(width))
}

// fitBlock fits every line to width and forces the block to height rows. A zero
// height keeps the block's own row count.
func fitBlock(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}
	for i, l := range lines {
		lines[i] = fitLine(l, width)
	}
	return strings.Join(lines, "\n")
}

// blank renders an empty block.
func blank(width, height int) string {
	if height < 1 {
		height = 1
	}
	line := strings.Repeat(" ", max(0, width))
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// wrapText word-wraps s to width, hard-wrapping words longer than a line.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return []string{""}
	}
	return strings.Split(wrap.String(wordwrap.String(s, width), width), "\n")
}

// DisplayWidth is the number of terminal cells s occupies, ignoring escape
// sequences. Multi-line strings report their widest line.
func DisplayWidth(s string) int {
	widest := 0
	for _, line := range strings.Split(ansi.Strip(s), "\n") {
		widest = max(widest, runewidth.StringWidth(line))
	}
	return widest
}

// NaturalWidth is the width a widget would like, taken from its text. Widgets
// without text have no preference.
func NaturalWidth(w Widget) int {
	if t, ok := w.(Texter); ok {
		return DisplayWidth(t.Text())
	}
	return 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
