package overlay

import (
	"bytes"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"
)

// WhitespaceOption sets a styling rule for rendering the gaps left around an
// overlay when the background line is too short.
type WhitespaceOption func(*whitespace)

type whitespace struct {
	style termenv.Style
	chars string
}

// WithWhitespaceChars sets the characters used to fill gaps.
func WithWhitespaceChars(s string) WhitespaceOption {
	return func(w *whitespace) {
		w.chars = s
	}
}

// WithWhitespaceStyle sets the style of the gap filler.
func WithWhitespaceStyle(style termenv.Style) WhitespaceOption {
	return func(w *whitespace) {
		w.style = style
	}
}

// render returns a run of whitespace width cells wide.
func (w whitespace) render(width int) string {
	if w.chars == "" {
		w.chars = " "
	}

	r := []rune(w.chars)
	j := 0
	b := strings.Builder{}

	for i := 0; i < width; {
		b.WriteRune(r[j])
		j++
		if j >= len(r) {
			j = 0
		}
		i += ansi.PrintableRuneWidth(string(r[j]))
	}

	// Fill any extra gaps with spaces, wide characters may leave one.
	short := width - ansi.PrintableRuneWidth(b.String())
	if short > 0 {
		b.WriteString(strings.Repeat(" ", short))
	}

	return w.style.Styled(b.String())
}

// PlaceOverlay draws fg on top of bg with its top-left corner at column x and
// row y. Both strings may contain ANSI escape sequences. The overlay is clamped
// so it stays inside the background; the background keeps its own size.
func PlaceOverlay(x, y int, fg, bg string, opts ...WhitespaceOption) string {
	fgLines, fgWidth := getLines(fg)
	bgLines, bgWidth := getLines(bg)
	bgHeight := len(bgLines)
	fgHeight := len(fgLines)

	if fgWidth >= bgWidth && fgHeight >= bgHeight {
		return fg
	}

	x = clamp(x, 0, bgWidth-fgWidth)
	y = clamp(y, 0, bgHeight-fgHeight)

	ws := &whitespace{}
	for _, opt := range opts {
		opt(ws)
	}

	var b strings.Builder
	for i, bgLine := range bgLines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i < y || i >= y+fgHeight {
			b.WriteString(bgLine)
			continue
		}

		pos := 0
		if x > 0 {
			left := truncate.String(bgLine, uint(x))
			pos = ansi.PrintableRuneWidth(left)
			b.WriteString(left)
			if pos < x {
				b.WriteString(ws.render(x - pos))
				pos = x
			}
		}

		fgLine := fgLines[i-y]
		b.WriteString(fgLine)
		pos += ansi.PrintableRuneWidth(fgLine)

		right := cutLeft(bgLine, pos)
		lineWidth := ansi.PrintableRuneWidth(bgLine)
		rightWidth := ansi.PrintableRuneWidth(right)
		if rightWidth <= lineWidth-pos {
			b.WriteString(ws.render(lineWidth - rightWidth - pos))
		}

		b.WriteString(right)
	}

	return b.String()
}

// Center returns the position that centers a block of fgWidth x fgHeight in
// a bgWidth x bgHeight area.
func Center(fgWidth, fgHeight, bgWidth, bgHeight int) (int, int) {
	return max(0, (bgWidth-fgWidth)/2), max(0, (bgHeight-fgHeight)/2)
}

// cutLeft cuts printable characters from the left, keeping the escape
// sequences that were active at the cut.
func cutLeft(s string, cutWidth int) string {
	var (
		pos    int
		isAnsi bool
		ab     bytes.Buffer
		b      bytes.Buffer
	)
	for _, c := range s {
		var w int
		if c == ansi.Marker || isAnsi {
			isAnsi = true
			ab.WriteRune(c)
			if ansi.IsTerminator(c) {
				isAnsi = false
				if bytes.HasSuffix(ab.Bytes(), []byte("[0m")) {
					ab.Reset()
				}
			}
		} else {
			w = runewidth.RuneWidth(c)
		}

		if pos >= cutWidth {
			if b.Len() == 0 && ab.Len() > 0 {
				b.Write(ab.Bytes())
			}
			b.WriteRune(c)
		}
		pos += w
	}
	return b.String()
}

// getLines splits a string into lines and returns the widest line width.
func getLines(s string) (lines []string, widest int) {
	lines = strings.Split(s, "\n")

	for _, l := range lines {
		w := ansi.PrintableRuneWidth(l)
		if widest < w {
			widest = w
		}
	}

	return lines, widest
}

func clamp(v, lower, upper int) int {
	if upper < lower {
		return lower
	}
	return min(upper, max(lower, v))
}
