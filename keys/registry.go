package keys

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrDuplicateAction  = errors.New("action already registered")
	ErrUnknownAction    = errors.New("unknown action")
	ErrUnknownNamespace = errors.New("unknown namespace")
	ErrShortcutConflict = errors.New("shortcut conflict")
)

// Binding is one registry entry: an action, its chord and the namespaces it lives in.
type Binding struct {
	Action     Action
	Chord      Chord
	Namespaces []Namespace
}

// ConflictError reports two actions sharing a chord inside one conflict check set.
type ConflictError struct {
	Chord           Chord
	First           Action
	FirstNamespace  Namespace
	Second          Action
	SecondNamespace Namespace
}

func (e *ConflictError) Error() string {
	if e.FirstNamespace == e.SecondNamespace {
		return fmt.Sprintf("shortcut [%s] is not unique in namespace %q: used by %s and %s",
			e.Chord, e.FirstNamespace, e.First, e.Second)
	}
	return fmt.Sprintf("shortcut [%s] is used both in namespace %q (%s) and namespace %q (%s)",
		e.Chord, e.FirstNamespace, e.First, e.SecondNamespace, e.Second)
}

func (e *ConflictError) Unwrap() error {
	return ErrShortcutConflict
}

// ActionMap maps actions to chords and checks that chords stay unambiguous inside
// groups of namespaces that are active together.
//
// It is not safe for concurrent use; the UI mutates it only during startup.
type ActionMap struct {
	chords      map[Action]Chord
	order       []Action
	namespaces  map[Namespace][]Action
	groups      [][]Namespace
	alwaysCheck []Namespace
}

// NewActionMap creates an empty registry.
func NewActionMap() *ActionMap {
	return &ActionMap{
		chords:     make(map[Action]Chord),
		namespaces: make(map[Namespace][]Action),
	}
}

// Register binds a new action to chord in the given namespaces.
func (m *ActionMap) Register(action Action, chord string, namespaces ...Namespace) error {
	if _, exists := m.chords[action]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateAction, action)
	}
	m.add(Binding{Action: action, Chord: NormalizeChord(chord), Namespaces: namespaces})
	return nil
}

// Update registers a batch of bindings. Either all of them are added or, when any
// action is already known, none is.
func (m *ActionMap) Update(bindings []Binding) error {
	var dups []string
	seen := make(map[Action]bool, len(bindings))
	for _, b := range bindings {
		if _, exists := m.chords[b.Action]; exists || seen[b.Action] {
			dups = append(dups, string(b.Action))
		}
		seen[b.Action] = true
	}
	if len(dups) > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateAction, strings.Join(dups, ", "))
	}
	for _, b := range bindings {
		b.Chord = NormalizeChord(string(b.Chord))
		m.add(b)
	}
	return nil
}

func (m *ActionMap) add(b Binding) {
	m.chords[b.Action] = b.Chord
	m.order = append(m.order, b.Action)
	for _, ns := range b.Namespaces {
		m.namespaces[ns] = append(m.namespaces[ns], b.Action)
	}
}

// Rebind changes the chord of an existing action.
func (m *ActionMap) Rebind(action Action, chord string) error {
	if _, exists := m.chords[action]; !exists {
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}
	m.chords[action] = NormalizeChord(chord)
	return nil
}

// Replace rebinds several actions. Actions are applied in sorted order and the
// first unknown one stops the operation.
func (m *ActionMap) Replace(overrides map[Action]Chord) error {
	actions := make([]Action, 0, len(overrides))
	for a := range overrides {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
	for _, a := range actions {
		if err := m.Rebind(a, string(overrides[a])); err != nil {
			return err
		}
	}
	return nil
}

// SetConflictGroups declares which namespaces are checked together by
// CheckConflicts. alwaysCheck namespaces are merged into every group.
func (m *ActionMap) SetConflictGroups(groups [][]Namespace, alwaysCheck []Namespace) error {
	var unknown []string
	seen := make(map[Namespace]bool)
	check := func(ns Namespace) {
		if _, ok := m.namespaces[ns]; !ok && !seen[ns] {
			unknown = append(unknown, string(ns))
		}
		seen[ns] = true
	}
	for _, g := range groups {
		for _, ns := range g {
			check(ns)
		}
	}
	for _, ns := range alwaysCheck {
		check(ns)
	}
	if len(unknown) > 0 {
		return fmt.Errorf("%w: %s", ErrUnknownNamespace, strings.Join(unknown, ", "))
	}

	m.groups = make([][]Namespace, len(groups))
	for i, g := range groups {
		m.groups[i] = append([]Namespace(nil), g...)
	}
	m.alwaysCheck = append([]Namespace(nil), alwaysCheck...)
	return nil
}

// CheckConflicts verifies that no chord is bound to two actions inside any conflict
// group, then inside every namespace that no group covered.
func (m *ActionMap) CheckConflicts() error {
	checked := make(map[Namespace]bool)
	for _, g := range m.groups {
		if err := m.checkSet(g, checked); err != nil {
			return err
		}
	}
	for _, ns := range m.Namespaces() {
		if checked[ns] {
			continue
		}
		if err := m.checkSet([]Namespace{ns}, checked); err != nil {
			return err
		}
	}
	return nil
}

func (m *ActionMap) checkSet(namespaces []Namespace, checked map[Namespace]bool) error {
	set := make(map[Namespace]bool)
	for _, ns := range namespaces {
		set[ns] = true
	}
	for _, ns := range m.alwaysCheck {
		set[ns] = true
	}
	ordered := make([]Namespace, 0, len(set))
	for ns := range set {
		ordered = append(ordered, ns)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	type owner struct {
		action Action
		ns     Namespace
	}
	owners := make(map[Chord]owner)
	for _, ns := range ordered {
		checked[ns] = true
		for _, action := range m.namespaces[ns] {
			chord := m.chords[action]
			prev, taken := owners[chord]
			if !taken {
				owners[chord] = owner{action, ns}
				continue
			}
			if prev.action != action {
				return &ConflictError{
					Chord:           chord,
					First:           prev.action,
					FirstNamespace:  prev.ns,
					Second:          action,
					SecondNamespace: ns,
				}
			}
		}
	}
	return nil
}

// Key returns the chord bound to action, or None when the action is unknown.
func (m *ActionMap) Key(action Action) Chord {
	return m.chords[action]
}

// Is reports whether chord triggers action.
func (m *ActionMap) Is(chord Chord, action Action) bool {
	bound, ok := m.chords[action]
	return ok && chord != None && bound == chord
}

// Lookup finds the action bound to chord inside namespace.
func (m *ActionMap) Lookup(chord Chord, namespace Namespace) (Action, bool) {
	for _, action := range m.namespaces[namespace] {
		if m.chords[action] == chord {
			return action, true
		}
	}
	return "", false
}

// Namespaces returns all namespaces that own at least one action, sorted.
func (m *ActionMap) Namespaces() []Namespace {
	out := make([]Namespace, 0, len(m.namespaces))
	for ns := range m.namespaces {
		out = append(out, ns)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Actions returns the actions of namespace in registration order.
func (m *ActionMap) Actions(namespace Namespace) []Action {
	return append([]Action(nil), m.namespaces[namespace]...)
}

// Bindings returns every registered binding in registration order.
func (m *ActionMap) Bindings() []Binding {
	nsByAction := make(map[Action][]Namespace)
	for _, ns := range m.Namespaces() {
		for _, a := range m.namespaces[ns] {
			nsByAction[a] = append(nsByAction[a], ns)
		}
	}
	out := make([]Binding, 0, len(m.order))
	for _, a := range m.order {
		out = append(out, Binding{Action: a, Chord: m.chords[a], Namespaces: nsByAction[a]})
	}
	return out
}

// FocusDirection maps a focus chord to a rotation step: next and previous wrap
// around, up and down stop at the edges.
func (m *ActionMap) FocusDirection(chord Chord) (dir int, wrap bool, ok bool) {
	switch {
	case m.Is(chord, FocusNext):
		return 1, true, true
	case m.Is(chord, FocusPrev):
		return -1, true, true
	case m.Is(chord, FocusUp):
		return -1, false, true
	case m.Is(chord, FocusDown):
		return 1, false, true
	}
	return 0, false, false
}
