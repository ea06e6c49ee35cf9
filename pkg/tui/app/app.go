// Package teaui hosts the Bubble Tea program for the hoist editor.
package teaui

import (
	"context"

	"github.com/charmbracelet/bubbles/v2/textinput"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/outlinehq/hoist/pkg/app"
	"github.com/outlinehq/hoist/pkg/store"
	"github.com/outlinehq/hoist/pkg/tui/theme"
)

type mode int

const (
	modeView mode = iota
	modeEdit
	modeFind
	modeImportPath
	modeImportTarget
	modeConfirm
	modeHelp
)

// area says which pane owns view-mode arrow keys.
type area int

const (
	areaOutline area = iota
	areaSidebar
)

// Model contains UI state. All outline mutations go through the session,
// synchronously inside Update; the session is not safe for concurrent use, so
// no command goroutine ever touches it.
type Model struct {
	session *app.Session
	theme   theme.Theme
	ctx     context.Context
	cancel  context.CancelFunc

	mode mode
	area area

	input textinput.Model

	popup popupState
	find  finderState
	imp   importState
	help  viewport.Model

	confirmID string

	sidebarAt int
	scroll    int

	status    string
	statusErr bool

	termWidth  int
	termHeight int

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New creates the editor model over a loaded session.
func New(session *app.Session) *Model {
	ti := textinput.New()
	ti.CharLimit = 0
	ti.Prompt = ""
	ti.VirtualCursor = true
	ti.Styles.Cursor.Color = lipgloss.Color("212")
	ti.Styles.Cursor.Shape = tea.CursorBlock
	ti.Styles.Cursor.Blink = true

	ctx, cancel := context.WithCancel(context.Background())

	m := &Model{
		session: session,
		theme:   theme.ForSession(session.Theme(), session.Settings().MainColor),
		ctx:     ctx,
		cancel:  cancel,
		mode:    modeView,
		input:   ti,
		find:    newFinderState(),
		imp:     newImportState(),
		help:    viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
	}
	if rows := session.VisibleRows(); len(rows) > 0 && session.Focus().ID == "" {
		session.SetFocus(rows[0].Bullet.ID, app.End(), app.ModeView)
	}
	m.syncInputFromFocus()
	return m
}

// Init starts the storage watcher.
func (m *Model) Init() tea.Cmd {
	return startWatchCmd(m.ctx, m.session)
}

type errMsg struct{ err error }

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func startWatchCmd(parent context.Context, session *app.Session) tea.Cmd {
	if session == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := session.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// handleWatchEvent refreshes from storage after an external write. Unsaved
// local edits win: the reload is skipped until they are persisted.
func (m *Model) handleWatchEvent(ev store.Event) {
	_ = ev
	if m.session.Dirty() {
		return
	}
	m.session.Reload()
	m.theme = theme.ForSession(m.session.Theme(), m.session.Settings().MainColor)
	m.clampSidebar()
	m.syncInputFromFocus()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case errMsg:
		m.setError(msg.err)
	case watchStartedMsg:
		if msg.err != nil {
			m.setStatus("ERR: watch " + msg.err.Error())
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		m.handleWatchEvent(msg.event)
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
		cmds = append(cmds, startWatchCmd(m.ctx, m.session))
	case tea.KeyPressMsg:
		m.status = ""
		m.statusErr = false
		m.handleKeyPress(msg, &cmds)
		m.ensureFocusVisible()
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch m.mode {
	case modeHelp:
		m.handleHelpKey(msg)
	case modeConfirm:
		m.handleConfirmKey(msg)
	case modeFind:
		m.handleFindKey(msg, cmds)
	case modeImportPath:
		m.handleImportPathKey(msg, cmds)
	case modeImportTarget:
		m.handleImportTargetKey(msg, cmds)
	case modeEdit:
		m.handleEditKey(msg, cmds)
	default:
		m.handleViewKey(msg, cmds)
	}
}

// save persists dirty state right away. Persistence is best-effort: a failure
// lands in the status bar and the session keeps running in memory.
func (m *Model) save() {
	if !m.session.Dirty() {
		return
	}
	if err := m.session.Save(); err != nil {
		m.setError(err)
	}
}

func (m *Model) quit(cmds *[]tea.Cmd) {
	m.save()
	m.stopWatch()
	m.cancel()
	*cmds = append(*cmds, tea.Quit)
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = "ERR: " + err.Error()
	m.statusErr = true
}

func (m *Model) clampSidebar() {
	if n := len(m.sidebarEntries()); m.sidebarAt >= n {
		m.sidebarAt = n - 1
	}
	if m.sidebarAt < 0 {
		m.sidebarAt = 0
	}
	if m.area == areaSidebar && !m.session.SidebarOpen() {
		m.area = areaOutline
	}
}

// Run launches the interactive editor program.
func Run(session *app.Session) error {
	p := tea.NewProgram(New(session), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
