package app

import (
	"fmt"
	"strings"

	"starmutt/keys"
	"starmutt/ui"
)

var helpCategories = []keys.HelpCategory{
	keys.HelpCategoryNavigation,
	keys.HelpCategoryMenu,
	keys.HelpCategorySelection,
	keys.HelpCategoryOther,
}

// newHelpPage builds the Help tab: one section per key category listing the
// chords bound in km.
func newHelpPage(km *keys.ActionMap) ui.Widget {
	page := ui.NewPile(ui.NewText("Basic Commands").WithAttr(ui.AttrTitle), ui.NewDivider(" "))
	for _, category := range helpCategories {
		actions := km.GetActionsInCategory(category)
		if len(actions) == 0 {
			continue
		}
		var b strings.Builder
		for _, a := range actions {
			chord := km.Key(a)
			if chord == keys.None {
				continue
			}
			fmt.Fprintf(&b, "%-12s - %s\n", chord, keys.GetKeyHelp(a).Description)
		}
		page.Add(ui.NewText(string(category)).WithAttr(ui.AttrTitle))
		page.Add(ui.NewText(strings.TrimSuffix(b.String(), "\n")))
		page.Add(ui.NewDivider(" "))
	}
	page.Add(ui.NewText("ctrl+x       - quit through the Chan menu"))
	return page
}
