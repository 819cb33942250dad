package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"starmutt/config"
	"starmutt/keys"
	"starmutt/log"
	"starmutt/ui"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	version = "0.0.1"

	statusWelcome = "Type help for instructions, :q to quit."

	menuChan = "Chan"
	menuHelp = "Help"

	categoryBoards = "Boards"
	categoryFile   = "File"
	categoryHelp   = "Help"

	itemListBoards = "List boards"
	itemCopyRow    = "Copy row"
	itemQuit       = "Quit (C-x)"
	itemShowHelp   = "Show help"
	itemAbout      = "About"

	quitQuestion = "Really quit?"

	tabBoards = "Boards"
	tabHelp   = "Help"

	aboutWidth = 40
)

const banner = `  ____ _   _    _    _   _    ____ _     ___
 / ___| | | |  / \  | \ | |  / ___| |   |_ _|
| |   | |_| | / _ \ |  \| | | |   | |    | |
| |___|  _  |/ ___ \| |\  | | |___| |___ | |
 \____|_| |_/_/   \_\_| \_|  \____|_____|___|`

// board is one row of the boards table.
type board struct {
	code  string
	title string
}

var defaultBoards = []board{
	{"a", "Anime & Manga"},
	{"c", "Anime/Cute"},
	{"g", "Technology"},
	{"k", "Weapons"},
	{"m", "Mecha"},
	{"o", "Auto"},
	{"p", "Photography"},
	{"v", "Video Games"},
	{"vg", "Video Game Generals"},
	{"w", "Anime/Wallpapers"},
}

// Run starts the TUI and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg == nil || cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	m, err := newHome()
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, opts...).Run()
	return err
}

// home is the bubbletea model. It owns the widget tree and turns bubbletea
// messages into chords and pointer events for it.
type home struct {
	root   *ui.Root
	frame  *ui.Frame
	roller *ui.MenuRoller
	tabs   *ui.Tabs
	boards *ui.Table
	status *ui.Text
	hint   *ui.Text
	help   help.Model

	quitDialog *ui.Dialog

	width, height int
	quitting      bool

	// copyToClipboard is replaced in tests.
	copyToClipboard func(string) error
	copyWarnings    *log.Every
}

func newHome() (*home, error) {
	m := &home{
		root:            ui.NewRoot(nil),
		status:          ui.NewText(statusWelcome).WithAttr(ui.AttrStatusBar),
		hint:            ui.NewText(""),
		help:            help.New(),
		copyToClipboard: clipboard.WriteAll,
		copyWarnings:    log.NewEvery(time.Minute),
	}

	boards, err := m.newBoardsTable()
	if err != nil {
		return nil, err
	}
	m.boards = boards
	m.tabs = ui.NewTabs()
	m.tabs.AddTab(tabBoards, ui.NewPile(
		ui.NewText(banner).WithAlign(lipgloss.Center),
		ui.NewText("chancli version "+version).WithAlign(lipgloss.Center),
		ui.NewDivider(" "),
		m.boards,
	))
	m.tabs.AddTab(tabHelp, newHelpPage(ui.KeyMap()))

	m.roller = ui.NewMenuRoller()
	for _, name := range []string{menuChan, menuHelp} {
		menu, err := m.buildMenu(name)
		if err != nil {
			return nil, fmt.Errorf("build menu %s: %w", name, err)
		}
		if _, err := m.roller.AddMenu(name, menu, ""); err != nil {
			return nil, fmt.Errorf("add menu %s: %w", name, err)
		}
	}

	footer := ui.NewPile(m.status, m.hint)
	m.frame = ui.NewFrame(m.tabs, m.roller, footer)
	m.frame.SetFocusPart(ui.FrameHeader)
	m.root.SetRoot(m.frame)
	m.refreshHint()
	return m, nil
}

func (m *home) newBoardsTable() (*ui.Table, error) {
	t, err := ui.NewTable(2, ui.TableOptions{
		DivideChars:   2,
		RowSelectable: true,
		Adapt:         []int{0},
		HighlightRow:  true,
	})
	if err != nil {
		return nil, err
	}
	for _, b := range defaultBoards {
		t.AddWidgets(ui.NewText("/"+b.code+"/"), ui.NewText(b.title))
	}
	t.OnRowClick(func(index int) {
		if index < 0 || index >= len(defaultBoards) {
			return
		}
		b := defaultBoards[index]
		m.setStatus(fmt.Sprintf("Board /%s/ - %s", b.code, b.title))
	})
	return t, nil
}

func (m *home) buildMenu(name string) (*ui.Menu, error) {
	menu := ui.NewMenu(m.root, 0)
	type entry struct {
		category, item, shortcut string
		action                   func()
	}
	var entries []entry
	switch name {
	case menuChan:
		entries = []entry{
			{categoryBoards, itemListBoards, "", func() { m.showTab(tabBoards) }},
			{categoryBoards, itemCopyRow, "", m.copySelectedRow},
			{categoryFile, itemQuit, "ctrl x", m.confirmQuit},
		}
	case menuHelp:
		entries = []entry{
			{categoryHelp, itemShowHelp, "", func() { m.showTab(tabHelp) }},
			{categoryHelp, itemAbout, "", m.showAbout},
		}
	}
	for _, e := range entries {
		action := e.action
		cb := func(category, item string) {
			m.setStatus(fmt.Sprintf("Menu selected: %s/%s", category, item))
			action()
		}
		if err := menu.AddMenu(e.category, e.item, cb, e.shortcut); err != nil {
			return nil, err
		}
	}
	return menu, nil
}

func (m *home) setStatus(s string) {
	m.status.SetText(s)
}

func (m *home) showTab(name string) {
	if err := m.tabs.SelectTab(name); err != nil {
		log.ErrorLog.Printf("could not select tab: %v", err)
		return
	}
	m.frame.SetFocusPart(ui.FrameBody)
}

func (m *home) showAbout() {
	ui.NewAlert(itemAbout, "chancli version "+version).Show(m.root, aboutWidth)
}

// confirmQuit asks before quitting. Yes is focused, so enter confirms.
func (m *home) confirmQuit() {
	if m.quitDialog != nil && m.quitDialog.IsShown() {
		return
	}
	d := ui.NewConfirmDialog("Quit", quitQuestion)
	d.SetCallback(ui.DialogButtonYes, func() { m.quitting = true })
	d.SetCallback(ui.DialogButtonNo, func() { m.setStatus(statusWelcome) })
	d.Show(m.root, aboutWidth)
	m.quitDialog = d
}

// copySelectedRow puts the focused board row on the clipboard, cells separated
// by a tab.
func (m *home) copySelectedRow() {
	cells, err := m.boards.SelectedWidgets()
	if err != nil {
		m.setStatus("Nothing to copy")
		return
	}
	parts := make([]string, 0, len(cells))
	for _, c := range cells {
		if t, ok := c.(ui.Texter); ok {
			parts = append(parts, t.Text())
		}
	}
	row := strings.Join(parts, "\t")
	if err := m.copyToClipboard(row); err != nil {
		if m.copyWarnings.ShouldLog() {
			log.WarningLog.Printf("could not copy to clipboard: %v", err)
		}
		m.setStatus("Copy failed: " + err.Error())
		return
	}
	m.setStatus("Copied: " + row)
}

// refreshHint renders the footer help line for the current width.
func (m *home) refreshHint() {
	km := ui.KeyMap()
	bindings := append(km.HelpBindings(keys.NamespaceFocus), km.HelpBindings(keys.NamespaceGlobal)...)
	m.help.Width = m.width
	m.hint.SetText(m.help.ShortHelpView(bindings))
}

func (m *home) Init() tea.Cmd {
	return nil
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.refreshHint()
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.MouseMsg:
		m.root.MouseEvent(m.width, m.height, ui.FromMouseMsg(msg))
		if m.quitting {
			return m.handleQuit()
		}
		return m, nil
	}
	return m, nil
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	chord := keys.FromKeyMsg(msg)
	km := ui.KeyMap()
	switch {
	case km.Is(chord, keys.AppQuit):
		return m.handleQuit()
	case km.Is(chord, keys.AppRedraw):
		return m, tea.ClearScreen
	}

	if rest := m.root.KeyPress(m.width, m.height, chord); rest != keys.None {
		m.roller.CheckShortcuts(rest)
	}
	if m.quitting {
		return m.handleQuit()
	}
	return m, nil
}

func (m *home) handleQuit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m *home) View() string {
	return m.root.View(m.width, m.height)
}
