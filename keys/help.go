package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

// HelpCategory organizes actions by function
type HelpCategory string

const (
	HelpCategoryNavigation HelpCategory = "Navigation"
	HelpCategoryMenu       HelpCategory = "Menu"
	HelpCategorySelection  HelpCategory = "Selection"
	HelpCategoryOther      HelpCategory = "Other"
	HelpCategoryUncategory HelpCategory = "Uncategorized" // For actions without categories
)

// KeyHelpInfo adds help information to a registered action
type KeyHelpInfo struct {
	Short       string       // Short label used by the footer help line
	Description string       // Extended description for help text
	Category    HelpCategory // Category for organizing in help screens
}

// HelpMap maps actions to their help information
var HelpMap = map[Action]KeyHelpInfo{
	// Navigation category
	FocusNext:          {Short: "next", Description: "Move focus to the next widget", Category: HelpCategoryNavigation},
	FocusPrev:          {Short: "prev", Description: "Move focus to the previous widget", Category: HelpCategoryNavigation},
	FocusUp:            {Short: "focus up", Description: "Move focus one widget up", Category: HelpCategoryNavigation},
	FocusDown:          {Short: "focus down", Description: "Move focus one widget down", Category: HelpCategoryNavigation},
	FocusLeft:          {Short: "focus left", Description: "Move focus one widget left", Category: HelpCategoryNavigation},
	FocusRight:         {Short: "focus right", Description: "Move focus one widget right", Category: HelpCategoryNavigation},
	CursorUp:           {Short: "up", Description: "Move the cursor up", Category: HelpCategoryNavigation},
	CursorDown:         {Short: "down", Description: "Move the cursor down", Category: HelpCategoryNavigation},
	CursorLeft:         {Short: "left", Description: "Move the cursor left", Category: HelpCategoryNavigation},
	CursorRight:        {Short: "right", Description: "Move the cursor right", Category: HelpCategoryNavigation},
	ColumnsRollerLeft:  {Short: "scroll left", Description: "Focus the previous item of a rolling strip", Category: HelpCategoryNavigation},
	ColumnsRollerRight: {Short: "scroll right", Description: "Focus the next item of a rolling strip", Category: HelpCategoryNavigation},

	// Menu category
	MenuUp:          {Short: "up", Description: "Previous menu item", Category: HelpCategoryMenu},
	MenuDown:        {Short: "down", Description: "Next menu item", Category: HelpCategoryMenu},
	MenuBoxUp:       {Short: "close", Description: "Close the menu when on its first item", Category: HelpCategoryMenu},
	MenuBoxLeft:     {Short: "left", Description: "Open the previous menu category", Category: HelpCategoryMenu},
	MenuBoxRight:    {Short: "right", Description: "Open the next menu category", Category: HelpCategoryMenu},
	MenuRollerUp:    {Short: "prev menu", Description: "Show the previous menu", Category: HelpCategoryMenu},
	MenuRollerDown:  {Short: "next menu", Description: "Show the next menu", Category: HelpCategoryMenu},
	MenuRollerRight: {Short: "enter menu", Description: "Move into the current menu", Category: HelpCategoryMenu},

	// Selection category
	TextSelect:  {Short: "select", Description: "Toggle the selection of an item", Category: HelpCategorySelection},
	TextSelect2: {Short: "select", Description: "Toggle the selection of an item", Category: HelpCategorySelection},
	TableSelect: {Short: "open", Description: "Activate the focused row", Category: HelpCategorySelection},

	// Other category
	ModalEscape: {Short: "cancel", Description: "Close the current dialog", Category: HelpCategoryOther},
	AppQuit:     {Short: "quit", Description: "Quit the application", Category: HelpCategoryOther},
	AppRedraw:   {Short: "redraw", Description: "Redraw the screen", Category: HelpCategoryOther},
}

// GetKeyHelp returns the help information for an action
func GetKeyHelp(action Action) KeyHelpInfo {
	info, exists := HelpMap[action]
	if !exists {
		return KeyHelpInfo{
			Short:       string(action),
			Description: "No description",
			Category:    HelpCategoryUncategory,
		}
	}
	return info
}

// GetActionsInCategory returns all actions in a given category, in registration order
func (m *ActionMap) GetActionsInCategory(category HelpCategory) []Action {
	var actions []Action
	for _, a := range m.order {
		if GetKeyHelp(a).Category == category {
			actions = append(actions, a)
		}
	}
	return actions
}

// HelpBindings exports the actions of a namespace as bubbles key bindings, for use
// with help.Model.
func (m *ActionMap) HelpBindings(namespace Namespace) []key.Binding {
	actions := m.namespaces[namespace]
	bindings := make([]key.Binding, 0, len(actions))
	for _, a := range actions {
		chord := m.chords[a]
		if chord == None {
			continue
		}
		info := GetKeyHelp(a)
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(string(chord)),
			key.WithHelp(string(chord), info.Short),
		))
	}
	return bindings
}
