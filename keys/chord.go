package keys

import (
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

// Chord is a normalized token for one input key event, e.g. "ctrl+o", "enter", "N".
// The empty chord means "no event": widgets return it once they consumed a key.
type Chord string

// None is returned by KeyPress implementations that consumed the chord.
const None Chord = ""

// NormalizeChord turns a user or toolkit key description into a Chord.
//
// Separators (spaces and '+', or '-' right after a modifier as in "ctrl-o")
// collapse to '+', modifier and named keys are lowercased. A lone printable
// character keeps its case because the terminal reports shifted letters that way
// ("N" is not "n"); with modifiers the character is lowercased as well
// ("ctrl X" == "ctrl+x").
func NormalizeChord(s string) Chord {
	if s == " " {
		return "space"
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return None
	}
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == '+' })
	if strings.HasSuffix(s, "++") || (len(fields) > 0 && strings.HasSuffix(s, " +")) {
		fields = append(fields, "+")
	}
	if len(fields) == 0 {
		return Chord(s)
	}
	var split []string
	for _, f := range fields {
		split = append(split, splitModifiers(f)...)
	}
	fields = split
	if len(fields) == 1 && utf8.RuneCountInString(fields[0]) == 1 {
		return Chord(fields[0])
	}
	for i, f := range fields {
		fields[i] = strings.ToLower(f)
	}
	return Chord(strings.Join(fields, "+"))
}

var modifiers = []string{"ctrl", "alt", "shift", "meta"}

// splitModifiers breaks "ctrl-shift-o" into its modifiers and key. A lone "-"
// and a trailing "ctrl-" stay whole.
func splitModifiers(field string) []string {
	var out []string
	for {
		mod := ""
		for _, m := range modifiers {
			if len(field) > len(m)+1 && strings.EqualFold(field[:len(m)], m) && field[len(m)] == '-' {
				mod = m
				break
			}
		}
		if mod == "" {
			return append(out, field)
		}
		out = append(out, mod)
		field = field[len(mod)+1:]
	}
}

// FromKeyMsg converts a bubbletea key message into a Chord.
func FromKeyMsg(msg tea.KeyMsg) Chord {
	return NormalizeChord(msg.String())
}

func (c Chord) String() string {
	return string(c)
}
