package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ferndev/fern/internal/filetree"
	"github.com/ferndev/fern/internal/storage"
	"github.com/ferndev/fern/internal/theme"
	"github.com/ferndev/fern/internal/ui"
	"github.com/ferndev/fern/internal/viewer"
	"github.com/ferndev/fern/internal/watcher"
)

// Mode represents the current input mode.
type Mode int

const (
	ModeNormal  Mode = iota // viewer focused
	ModeFiles               // navigation panel focused
	ModeInsert              // omnibox focused
	ModeCommand             // command bar active
	ModeHistory             // history panel active
)

// Model is the top-level bubbletea model for fern.
type Model struct {
	// UI components
	omnibox      ui.Omnibox
	statusBar    ui.StatusBar
	commandBar   ui.CommandBar
	splitPane    ui.SplitPane
	navPanel     ui.NavPanel
	historyPanel ui.HistoryPanel
	viewport     ui.DocViewport

	// Core state
	history  *viewer.History
	renderer *viewer.Renderer
	fetcher  *viewer.Fetcher
	tree     *filetree.Tree
	watch    *watcher.Watcher

	// Storage
	db          *storage.DB
	bookmarks   *storage.BookmarkStore
	historyFile *storage.HistoryFile
	config      *storage.Config

	keys     KeyMap
	mode     Mode
	width    int
	height   int
	lastGKey bool // for "gg" detection
	ready    bool

	current    *viewer.Document
	loading    bool
	cancelFunc context.CancelFunc

	startLocation string
}

// docLoadedMsg is sent when a document finishes rendering.
type docLoadedMsg struct {
	doc        *viewer.Document
	loc        viewer.Location
	remember   bool
	keepOffset bool
	err        error
}

// treeChangedMsg is sent when the watcher reports a filesystem change.
type treeChangedMsg struct{}

// New creates a new fern Model rooted at the given directory. start, if
// non-empty, is a path or URL opened on launch.
func New(cfg *storage.Config, root, start string) Model {
	if cfg == nil {
		c := storage.DefaultConfig()
		cfg = &c
	}

	mode := filetree.ModeGeneral
	if cfg.MarkdownOnly {
		mode = filetree.ModeMarkdown
	}
	tree := filetree.NewTree(root, filetree.NewFilter(mode, cfg.Suffixes))

	sp := ui.NewSplitPane()
	sp.DockLeft = cfg.NavLeft

	m := Model{
		omnibox:      ui.NewOmnibox(),
		statusBar:    ui.NewStatusBar(),
		commandBar:   ui.NewCommandBar(),
		splitPane:    sp,
		navPanel:     ui.NewNavPanel(),
		historyPanel: ui.NewHistoryPanel(),
		viewport:     ui.NewDocViewport(),

		history:  viewer.NewHistory(),
		renderer: viewer.NewRenderer(theme.Current.ChromaStyle),
		fetcher:  viewer.NewFetcher(),
		tree:     tree,
		watch:    watcher.New(),

		config:        cfg,
		keys:          DefaultKeyMap(),
		mode:          ModeFiles,
		startLocation: start,
	}

	// Initialize storage (best-effort, non-fatal on error).
	dataDir, err := storage.DataDir()
	if err == nil {
		if db, dbErr := storage.OpenDB(dataDir); dbErr == nil {
			m.db = db
			m.bookmarks = storage.NewBookmarkStore(db)
		}
		if hf, hfErr := storage.NewHistoryFile(dataDir); hfErr == nil {
			m.historyFile = hf
			if locations, loadErr := hf.Load(); loadErr == nil && len(locations) > 0 {
				m.history = viewer.NewHistoryFrom(locations)
			}
		}
	}

	m.navPanel.SetRows(tree.Rows())
	m.statusBar.SetMode("FILES")
	m.syncFilterLabel()

	// The watcher failing to start only disables auto-refresh.
	m.watch.Start(root)

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForChange(m.watch)}
	if m.startLocation != "" {
		if cmd := m.openInput(m.startLocation); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// waitForChange blocks on the watcher and re-enters the message loop when
// the tree changes. This is the only handoff between the watcher goroutine
// and model state.
func waitForChange(w *watcher.Watcher) tea.Cmd {
	return func() tea.Msg {
		<-w.Events()
		return treeChangedMsg{}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case docLoadedMsg:
		return m.handleDocLoaded(msg)

	case treeChangedMsg:
		return m.handleTreeChanged()

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	// Forward to the viewport for mouse scroll, etc.
	vp, cmd := m.viewport.Update(msg)
	m.viewport = *vp
	m.syncStatusBar()
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "\n  Loading fern..."
	}

	var sections []string
	sections = append(sections, m.omnibox.View())

	// The history panel borrows the navigation slot while open.
	var side string
	switch {
	case m.historyPanel.IsVisible():
		side = m.historyPanel.View()
	case m.navPanel.IsVisible():
		side = m.navPanel.View(filepath.Base(m.tree.Root()), m.mode == ModeFiles)
	}
	sections = append(sections, m.splitPane.Render(side, m.viewport.View()))

	sections = append(sections, m.statusBar.View())
	if m.commandBar.IsActive() {
		sections = append(sections, m.commandBar.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// layout recalculates dimensions for all components.
func (m *Model) layout() {
	m.omnibox.SetWidth(m.width)
	m.statusBar.SetWidth(m.width)
	m.commandBar.SetWidth(m.width)

	omniboxHeight := 3 // border adds height
	statusBarHeight := 1
	commandBarHeight := 0
	if m.commandBar.IsActive() {
		commandBarHeight = 1
	}
	contentHeight := m.height - omniboxHeight - statusBarHeight - commandBarHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	m.splitPane.SetSize(m.width, contentHeight)
	m.splitPane.SetNavOpen(m.navPanel.IsVisible() || m.historyPanel.IsVisible())

	navW, navH := m.splitPane.NavDimensions()
	m.navPanel.SetSize(navW, navH)
	m.historyPanel.SetSize(navW, navH)

	viewerW, viewerH := m.splitPane.ViewerDimensions()
	m.viewport.SetSize(viewerW, viewerH)
}

// handleKeyMsg processes key events based on current mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Always allow Ctrl+C to quit.
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch m.mode {
	case ModeInsert:
		return m.handleInsertMode(msg)
	case ModeCommand:
		return m.handleCommandMode(msg)
	case ModeHistory:
		return m.handleHistoryMode(msg)
	case ModeFiles:
		return m.handleFilesMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

// handleNormalMode processes keys when the viewer has focus.
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	// gg detection: first "g" sets the flag, second goes to top.
	case msg.String() == "g":
		if m.lastGKey {
			m.lastGKey = false
			m.viewport.GotoTop()
			m.syncStatusBar()
			return m, nil
		}
		m.lastGKey = true
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.lastGKey = false
		m.viewport.LineDown(1)
		m.syncStatusBar()
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp):
		m.lastGKey = false
		m.viewport.LineUp(1)
		m.syncStatusBar()
		return m, nil

	case key.Matches(msg, m.keys.HalfPageDown):
		m.lastGKey = false
		m.viewport.HalfPageDown()
		m.syncStatusBar()
		return m, nil

	case key.Matches(msg, m.keys.HalfPageUp):
		m.lastGKey = false
		m.viewport.HalfPageUp()
		m.syncStatusBar()
		return m, nil

	case key.Matches(msg, m.keys.GotoBottom):
		m.lastGKey = false
		m.viewport.GotoBottom()
		m.syncStatusBar()
		return m, nil

	case key.Matches(msg, m.keys.NavFocus):
		m.lastGKey = false
		if m.navPanel.IsVisible() {
			m.mode = ModeFiles
			m.statusBar.SetMode("FILES")
		}
		return m, nil
	}

	m.lastGKey = false
	if model, cmd, handled := m.handleSharedKeys(msg); handled {
		return model, cmd
	}

	// Forward to viewport for mouse scroll, etc.
	vp, cmd := m.viewport.Update(msg)
	m.viewport = *vp
	m.syncStatusBar()
	return m, cmd
}

// handleFilesMode processes keys when the navigation panel has focus.
func (m Model) handleFilesMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.navPanel.CursorDown()
		return m, nil

	case "k", "up":
		m.navPanel.CursorUp()
		return m, nil

	case "g":
		m.navPanel.HandleGKey()
		return m, nil

	case "G":
		m.navPanel.GotoBottom()
		return m, nil

	case "ctrl+d":
		m.navPanel.HalfPageDown()
		return m, nil

	case "ctrl+u":
		m.navPanel.HalfPageUp()
		return m, nil

	case "enter", "l":
		m.navPanel.ResetGKey()
		row := m.navPanel.SelectedRow()
		if row == nil {
			return m, nil
		}
		if row.IsDir {
			m.tree.ToggleExpand(row.Path)
			m.navPanel.SetRows(m.tree.Rows())
			return m, nil
		}
		if msg.String() == "l" {
			return m, nil
		}
		return m.openLocal(viewer.PathLocation(row.Path))

	case "h":
		m.navPanel.ResetGKey()
		row := m.navPanel.SelectedRow()
		if row != nil && row.IsDir && m.tree.IsExpanded(row.Path) {
			m.tree.ToggleExpand(row.Path)
			m.navPanel.SetRows(m.tree.Rows())
		}
		return m, nil

	case "tab", "esc":
		m.navPanel.ResetGKey()
		m.mode = ModeNormal
		m.statusBar.SetMode("NORMAL")
		return m, nil

	case "q":
		return m.quit()
	}

	m.navPanel.ResetGKey()
	if model, cmd, handled := m.handleSharedKeys(msg); handled {
		return model, cmd
	}
	return m, nil
}

// handleSharedKeys processes keys that behave the same in normal and files
// mode. Returns handled=false for keys it does not recognize.
func (m Model) handleSharedKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Open):
		m.mode = ModeInsert
		m.omnibox.Reset()
		m.statusBar.SetMode("INSERT")
		cmd := m.omnibox.Focus()
		return m, cmd, true

	case key.Matches(msg, m.keys.Back):
		if loc, ok := m.history.Back(); ok {
			model, cmd := m.load(loc, false, false)
			return model, cmd, true
		}
		m.statusBar.SetMessage("Already at the oldest entry")
		return m, nil, true

	case key.Matches(msg, m.keys.Forward):
		if loc, ok := m.history.Forward(); ok {
			model, cmd := m.load(loc, false, false)
			return model, cmd, true
		}
		m.statusBar.SetMessage("Already at the newest entry")
		return m, nil, true

	case key.Matches(msg, m.keys.Reload):
		model, cmd := m.reload()
		return model, cmd, true

	case key.Matches(msg, m.keys.NavToggle):
		m.navPanel.Toggle()
		if !m.navPanel.IsVisible() && m.mode == ModeFiles {
			m.mode = ModeNormal
			m.statusBar.SetMode("NORMAL")
		}
		m.layout()
		return m, nil, true

	case key.Matches(msg, m.keys.HistoryToggle):
		model, cmd := m.openHistoryPanel()
		return model, cmd, true

	case key.Matches(msg, m.keys.FilterToggle):
		m.toggleMarkdownFilter()
		return m, nil, true

	case key.Matches(msg, m.keys.CommandMode):
		m.mode = ModeCommand
		m.statusBar.SetMode("COMMAND")
		cmd := m.commandBar.Open()
		m.layout()
		return m, cmd, true

	case key.Matches(msg, m.keys.Bookmark):
		m.bookmarkCurrent()
		return m, nil, true

	case key.Matches(msg, m.keys.Help):
		m.showHelp()
		return m, nil, true
	}

	return m, nil, false
}

// handleHistoryMode processes keys when the history panel is active.
func (m Model) handleHistoryMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.historyPanel.ResetGKey()
		m.historyPanel.CursorDown()
		return m, nil

	case "k", "up":
		m.historyPanel.ResetGKey()
		m.historyPanel.CursorUp()
		return m, nil

	case "g":
		m.historyPanel.HandleGKey()
		return m, nil

	case "G":
		m.historyPanel.ResetGKey()
		m.historyPanel.GotoBottom()
		return m, nil

	case "ctrl+d":
		m.historyPanel.ResetGKey()
		m.historyPanel.HalfPageDown()
		return m, nil

	case "ctrl+u":
		m.historyPanel.ResetGKey()
		m.historyPanel.HalfPageUp()
		return m, nil

	case "d":
		m.historyPanel.ResetGKey()
		if idx := m.historyPanel.SelectedIndex(); idx >= 0 {
			m.history.Delete(idx)
			m.persistHistory()
			m.historyPanel.SetEntries(m.history.Entries(), m.history.Position())
		}
		return m, nil

	case "enter":
		m.historyPanel.ResetGKey()
		if loc, ok := m.historyPanel.SelectedEntry(); ok {
			m.closeHistoryPanel()
			return m.openVisit(loc)
		}
		return m, nil

	case "esc", "ctrl+h", "q":
		m.historyPanel.ResetGKey()
		m.closeHistoryPanel()
		return m, nil
	}

	m.historyPanel.ResetGKey()
	return m, nil
}

// handleInsertMode processes keys when the omnibox is focused.
func (m Model) handleInsertMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeNormal
		m.omnibox.Blur()
		m.statusBar.SetMode("NORMAL")
		return m, nil

	case tea.KeyEnter:
		input := m.omnibox.Value()
		m.mode = ModeNormal
		m.omnibox.Blur()
		m.statusBar.SetMode("NORMAL")
		if input != "" {
			cmd := m.openInput(input)
			return m, cmd
		}
		return m, nil
	}

	ob, cmd := m.omnibox.Update(msg)
	m.omnibox = *ob
	return m, cmd
}

// handleCommandMode processes keys while the command bar is open.
func (m Model) handleCommandMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.commandBar.Close()
		m.mode = ModeNormal
		m.statusBar.SetMode("NORMAL")
		m.layout()
		return m, nil

	case tea.KeyEnter:
		result := m.commandBar.Submit()
		m.mode = ModeNormal
		m.statusBar.SetMode("NORMAL")
		m.layout()
		return m.executeCommand(result.Value)
	}

	cb, cmd := m.commandBar.Update(msg)
	m.commandBar = *cb
	return m, cmd
}

// executeCommand handles :commands.
func (m Model) executeCommand(cmd string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return m, nil
	}

	switch parts[0] {
	case "q", "quit":
		return m.quit()

	case "o", "open":
		if len(parts) > 1 {
			cmd := m.openInput(strings.Join(parts[1:], " "))
			return m, cmd
		}
		m.statusBar.SetMessage("Usage: :open <path or url>")

	case "cd":
		if len(parts) > 1 {
			return m.changeRoot(strings.Join(parts[1:], " "))
		}
		m.statusBar.SetMessage("Usage: :cd <directory>")

	case "r", "reload":
		return m.reload()

	case "theme":
		if len(parts) > 1 {
			if theme.Set(parts[1]) {
				m.renderer = viewer.NewRenderer(theme.Current.ChromaStyle)
				m.config.Theme = parts[1]
				m.config.Save()
				m.statusBar.SetMessage(fmt.Sprintf("Theme: %s", parts[1]))
			} else {
				m.statusBar.SetMessage(fmt.Sprintf("Unknown theme: %s (available: %s)",
					parts[1], strings.Join(theme.List(), ", ")))
			}
		} else {
			m.statusBar.SetMessage(fmt.Sprintf("Current: %s | Available: %s",
				theme.Current.Name, strings.Join(theme.List(), ", ")))
		}

	case "markdown", "md":
		m.toggleMarkdownFilter()

	case "nav":
		if len(parts) > 1 {
			switch parts[1] {
			case "left":
				m.splitPane.DockLeft = true
				m.config.NavLeft = true
				m.config.Save()
			case "right":
				m.splitPane.DockLeft = false
				m.config.NavLeft = false
				m.config.Save()
			default:
				m.statusBar.SetMessage("Usage: :nav left|right")
			}
		} else {
			m.navPanel.Toggle()
			m.layout()
		}

	case "bookmark":
		m.bookmarkCurrent()

	case "bookmarks", "bm":
		if m.bookmarks != nil {
			m.viewport.SetContent(storage.RenderBookmarks(m.bookmarks.List()))
			m.statusBar.SetTitle("Bookmarks")
		} else {
			m.statusBar.SetMessage("Bookmarks not available")
		}

	case "history":
		return m.openHistoryPanel()

	case "clearhistory":
		m.history.Clear()
		m.persistHistory()
		m.statusBar.SetMessage("History cleared")

	case "help":
		m.showHelp()

	default:
		m.statusBar.SetMessage(fmt.Sprintf("Unknown command: %s", parts[0]))
	}

	return m, nil
}

// openInput resolves user input into a location and opens it. Relative
// paths resolve against the working directory.
func (m *Model) openInput(input string) tea.Cmd {
	loc := viewer.ParseLocation(strings.TrimSpace(input))
	if loc.IsZero() {
		return nil
	}

	if loc.IsRemote() {
		model, cmd := m.load(loc, true, false)
		*m = model.(Model)
		return cmd
	}

	path := loc.String()
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		model, cmd := m.changeRoot(path)
		*m = model.(Model)
		return cmd
	}

	model, cmd := m.openLocal(viewer.PathLocation(path))
	*m = model.(Model)
	return cmd
}

// openVisit opens a location as a fresh visit.
func (m Model) openVisit(loc viewer.Location) (tea.Model, tea.Cmd) {
	if loc.IsRemote() {
		return m.load(loc, true, false)
	}
	return m.openLocal(loc)
}

// openLocal records the visit, then dispatches the file by display kind.
// The visit is remembered up front: a file that fails to read still gets a
// history entry (the error renders inline), and external hand-offs count as
// visits too.
func (m Model) openLocal(loc viewer.Location) (tea.Model, tea.Cmd) {
	m.history.Remember(loc)
	m.persistHistory()

	if viewer.Classify(loc.String()) == viewer.KindExternal {
		if err := viewer.OpenExternal(loc.String()); err != nil {
			m.statusBar.SetMessage(fmt.Sprintf("Error: %s", err))
		} else {
			m.statusBar.SetMessage(fmt.Sprintf("Opened externally: %s", filepath.Base(loc.String())))
		}
		return m, nil
	}
	return m.load(loc, false, false)
}

// load renders a location asynchronously. remember marks a fresh remote
// visit, recorded only once the fetch succeeds; local visits are recorded
// by openLocal before dispatch, and back/forward/reload never record.
func (m Model) load(loc viewer.Location, remember, keepOffset bool) (tea.Model, tea.Cmd) {
	width := m.viewport.Width()
	if width <= 0 {
		width = 80
	}

	if loc.IsRemote() {
		if m.cancelFunc != nil {
			m.cancelFunc()
		}
		ctx, cancel := context.WithCancel(context.Background())
		m.cancelFunc = cancel

		m.loading = true
		m.statusBar.SetLoading(true)
		m.omnibox.SetValue(loc.String())

		fetcher := m.fetcher
		return m, func() tea.Msg {
			doc, err := fetcher.RenderRemote(ctx, loc, width)
			return docLoadedMsg{doc: doc, loc: loc, remember: remember, keepOffset: keepOffset, err: err}
		}
	}

	m.loading = true
	m.statusBar.SetLoading(true)
	m.omnibox.SetValue(loc.String())

	renderer := m.renderer
	return m, func() tea.Msg {
		doc, err := renderer.RenderFile(loc, width)
		return docLoadedMsg{doc: doc, loc: loc, remember: remember, keepOffset: keepOffset, err: err}
	}
}

// handleDocLoaded processes a completed render.
func (m Model) handleDocLoaded(msg docLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.cancelFunc = nil
	m.statusBar.SetLoading(false)

	if msg.err != nil {
		m.statusBar.SetMessage(fmt.Sprintf("Error: %s", msg.err))

		errStyle := lipgloss.NewStyle().
			Foreground(theme.Current.Error).
			Bold(true).
			Padding(2, 4)
		detailStyle := lipgloss.NewStyle().
			Foreground(theme.Current.TextDim).
			Padding(0, 4)

		m.viewport.SetContent(errStyle.Render("Failed to open document") + "\n\n" +
			detailStyle.Render(fmt.Sprintf("Location: %s\nError: %s", msg.loc.String(), msg.err)))
		m.statusBar.SetTitle("Error")
		// Local visits are already in history; a failed remote fetch never
		// becomes an entry.
		return m, nil
	}

	m.current = msg.doc
	if msg.loc.IsRemote() {
		m.renderer.Cache(msg.loc, m.viewport.Width(), msg.doc)
	}

	if msg.keepOffset {
		m.viewport.SetContentKeepOffset(msg.doc.Content)
	} else {
		m.viewport.SetContent(msg.doc.Content)
	}

	m.omnibox.SetValue(msg.loc.String())
	m.statusBar.SetTitle(msg.doc.Title)
	m.statusBar.SetLocation(msg.loc.String())
	m.statusBar.SetMessage("")
	m.syncStatusBar()

	if msg.remember {
		m.history.Remember(msg.loc)
		m.persistHistory()
	}

	if m.mode == ModeFiles {
		m.mode = ModeNormal
		m.statusBar.SetMode("NORMAL")
	}
	return m, nil
}

// handleTreeChanged rebuilds the tree view and re-renders the current
// document from disk, keeping the reader's scroll position.
func (m Model) handleTreeChanged() (tea.Model, tea.Cmd) {
	m.navPanel.SetRows(m.tree.Rows())

	cmds := []tea.Cmd{waitForChange(m.watch)}
	if m.current != nil && !m.current.Location.IsRemote() {
		m.renderer.Invalidate(m.current.Location)
		model, cmd := m.load(m.current.Location, false, true)
		m = model.(Model)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// reload re-renders the current document from its source.
func (m Model) reload() (tea.Model, tea.Cmd) {
	loc, ok := m.history.Current()
	if !ok {
		m.statusBar.SetMessage("Nothing to reload")
		return m, nil
	}
	if !loc.IsRemote() {
		m.renderer.Invalidate(loc)
	}
	return m.load(loc, false, true)
}

// changeRoot points the navigation pane (and the watcher) at a new
// directory.
func (m Model) changeRoot(dir string) (tea.Model, tea.Cmd) {
	if strings.HasPrefix(dir, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, dir[2:])
		}
	}
	abs, err := filepath.Abs(dir)
	if err == nil {
		dir = abs
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		m.statusBar.SetMessage(fmt.Sprintf("Not a directory: %s", dir))
		return m, nil
	}

	m.tree.SetRoot(dir)
	m.navPanel.SetRows(m.tree.Rows())
	m.navPanel.GotoTop()
	m.watch.Start(dir)
	m.statusBar.SetMessage(fmt.Sprintf("Browsing %s", dir))
	return m, nil
}

// toggleMarkdownFilter flips the tree between markdown-only and general
// browsing.
func (m *Model) toggleMarkdownFilter() {
	f := m.tree.Filter()
	if f.Mode() == filetree.ModeMarkdown {
		m.tree.SetFilter(f.WithMode(filetree.ModeGeneral))
		m.config.MarkdownOnly = false
	} else {
		m.tree.SetFilter(f.WithMode(filetree.ModeMarkdown))
		m.config.MarkdownOnly = true
	}
	m.config.Save()
	m.navPanel.SetRows(m.tree.Rows())
	m.syncFilterLabel()
}

func (m *Model) syncFilterLabel() {
	if m.tree.Filter().Mode() == filetree.ModeMarkdown {
		m.statusBar.SetFilter("markdown")
	} else {
		m.statusBar.SetFilter("")
	}
}

// openHistoryPanel shows the history panel with the cursor on the current
// entry.
func (m Model) openHistoryPanel() (tea.Model, tea.Cmd) {
	if m.historyPanel.IsVisible() {
		m.closeHistoryPanel()
		return m, nil
	}
	m.historyPanel.SetEntries(m.history.Entries(), m.history.Position())
	m.historyPanel.Show()
	m.mode = ModeHistory
	m.statusBar.SetMode("HISTORY")
	m.layout()
	return m, nil
}

func (m *Model) closeHistoryPanel() {
	m.historyPanel.Hide()
	m.mode = ModeNormal
	m.statusBar.SetMode("NORMAL")
	m.layout()
}

// bookmarkCurrent saves the current document as a bookmark.
func (m *Model) bookmarkCurrent() {
	if m.bookmarks == nil {
		m.statusBar.SetMessage("Bookmarks not available")
		return
	}
	if m.current == nil {
		m.statusBar.SetMessage("No document to bookmark")
		return
	}
	if m.bookmarks.Has(m.current.Location) {
		m.statusBar.SetMessage("Already bookmarked")
		return
	}
	if m.bookmarks.Add(m.current.Location, m.current.Title) {
		m.statusBar.SetMessage(fmt.Sprintf("Bookmarked: %s", m.current.Title))
	} else {
		m.statusBar.SetMessage("Bookmark failed")
	}
}

// persistHistory writes the history entries to disk. Best-effort; a failed
// write only costs persistence across restarts.
func (m *Model) persistHistory() {
	if m.historyFile != nil {
		m.historyFile.Save(m.history.Entries())
	}
}

// quit stops the watcher, flushes state, and exits.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.watch.Stop()
	m.persistHistory()
	if m.db != nil {
		m.db.Close()
	}
	return m, tea.Quit
}

// syncStatusBar updates the status bar with current state.
func (m *Model) syncStatusBar() {
	m.statusBar.SetScrollInfo(m.viewport.ScrollInfo())
	if m.current != nil {
		m.statusBar.SetTitle(m.current.Title)
		m.statusBar.SetLocation(m.current.Location.String())
	}
}

// showHelp displays the keybinding reference in the viewport.
func (m *Model) showHelp() {
	t := theme.Current

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Secondary).
		Width(16)

	descStyle := lipgloss.NewStyle().
		Foreground(t.Text)

	var sb strings.Builder

	sb.WriteString(titleStyle.Render("fern Keybindings"))
	sb.WriteString("\n\n")

	sections := []struct {
		name string
		keys []struct{ k, d string }
	}{
		{"Viewing", []struct{ k, d string }{
			{"j / Down", "Scroll down"},
			{"k / Up", "Scroll up"},
			{"Ctrl+d", "Half page down"},
			{"Ctrl+u", "Half page up"},
			{"gg", "Go to top"},
			{"G", "Go to bottom"},
			{"r", "Reload document"},
		}},
		{"Documents", []struct{ k, d string }{
			{"o", "Open a path or URL"},
			{"H", "Go back in history"},
			{"L", "Go forward in history"},
			{"B", "Bookmark current document"},
			{"Ctrl+h", "Toggle history panel"},
		}},
		{"File Tree", []struct{ k, d string }{
			{"Tab", "Switch focus tree/viewer"},
			{"Ctrl+n", "Show or hide the tree"},
			{"Enter", "Open file / expand directory"},
			{"h / l", "Collapse / expand directory"},
			{"m", "Markdown-only filter"},
		}},
		{"History Panel", []struct{ k, d string }{
			{"j / k", "Move cursor"},
			{"Enter", "Open entry"},
			{"d", "Delete entry"},
			{"Esc", "Close panel"},
		}},
		{"Commands", []struct{ k, d string }{
			{":open <loc>", "Open a path or URL"},
			{":cd <dir>", "Change the tree root"},
			{":reload", "Reload document"},
			{":theme <n>", "Change theme"},
			{":markdown", "Toggle markdown filter"},
			{":nav left|right", "Dock the tree"},
			{":bookmark", "Bookmark current document"},
			{":bookmarks", "List bookmarks"},
			{":history", "Open history panel"},
			{":clearhistory", "Clear all history"},
			{":quit", "Quit fern"},
		}},
	}

	for _, section := range sections {
		sb.WriteString(sectionStyle.Render(section.name))
		sb.WriteString("\n\n")
		for _, binding := range section.keys {
			sb.WriteString(keyStyle.Render(binding.k))
			sb.WriteString(descStyle.Render(binding.d))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	m.viewport.SetContent(sb.String())
	m.statusBar.SetTitle("Help - Keybindings")
}
