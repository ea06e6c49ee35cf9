package teaui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/outlinehq/hoist/pkg/app"
	"github.com/outlinehq/hoist/pkg/search"
	"github.com/outlinehq/hoist/pkg/tui/theme"
)

func (m *Model) handleViewKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	if m.area == areaSidebar && m.handleSidebarKey(msg) {
		return
	}

	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		m.quit(cmds)
	case "enter":
		if id := m.session.Focus().ID; id != "" {
			m.enterEdit(id, app.End())
			return
		}
		// Empty page: start its first bullet.
		m.session.AddSiblingAfter("")
		m.syncInputFromFocus()
	case "up":
		m.session.MoveFocusBy(-1)
	case "down":
		m.session.MoveFocusBy(1)
	case "left":
		m.session.CollapseOrFocusParent()
		m.save()
	case "right":
		m.session.ExpandOrFocusChild()
		m.save()
	case "ctrl+left", "cmd+left":
		if id := m.session.Focus().ID; id != "" {
			m.session.Fold(id, true, true)
			m.save()
		}
	case "ctrl+right", "cmd+right":
		if id := m.session.Focus().ID; id != "" {
			m.session.Fold(id, false, true)
			m.save()
		}
	case "alt+up":
		if id := m.session.Focus().ID; id != "" {
			m.session.MoveUp(id)
			m.save()
		}
	case "alt+down":
		if id := m.session.Focus().ID; id != "" {
			m.session.MoveDown(id)
			m.save()
		}
	case "ctrl+down", "cmd+down":
		if id := m.session.Focus().ID; id != "" {
			m.session.Zoom(id)
			m.save()
			m.syncInputFromFocus()
		}
	case "ctrl+up", "cmd+up":
		m.session.ZoomOut()
	case "backspace":
		m.beginDelete()
	case "ctrl+.":
		if id := m.session.Focus().ID; id != "" {
			m.session.ToggleFold(id)
			m.save()
		}
	case "ctrl+y":
		if id := m.session.Focus().ID; id != "" {
			m.session.ToggleFavorite(id)
			m.save()
			m.clampSidebar()
		}
	case "ctrl+shift+k":
		m.openFind("")
	case "ctrl+shift+h":
		m.session.Home()
		m.save()
	case "ctrl+j":
		m.session.OpenJournal(time.Now())
		m.save()
	case "ctrl+b":
		open := !m.session.SidebarOpen()
		m.session.SetSidebarOpen(open)
		m.save()
		if !open && m.area == areaSidebar {
			m.area = areaOutline
		}
	case "ctrl+t":
		name := m.session.ToggleTheme()
		m.theme = theme.ForSession(name, m.session.Settings().MainColor)
		m.save()
		m.setStatus(name + " theme")
	case "ctrl+g":
		m.followLink()
	case "ctrl+e":
		m.exportNow()
	case "ctrl+o":
		m.beginImport()
	case "?":
		m.openHelp()
	case "tab":
		if m.session.SidebarOpen() {
			m.area = areaSidebar
			m.clampSidebar()
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.jumpCrumb(int(key[0] - '0'))
	}
}

// handleSidebarKey owns keys while the sidebar pane has input focus. Unhandled
// keys fall through to the global bindings.
func (m *Model) handleSidebarKey(msg tea.KeyPressMsg) bool {
	entries := m.sidebarEntries()
	switch msg.String() {
	case "up":
		if m.sidebarAt > 0 {
			m.sidebarAt--
		}
		return true
	case "down":
		if m.sidebarAt < len(entries)-1 {
			m.sidebarAt++
		}
		return true
	case "enter":
		if m.sidebarAt < len(entries) {
			m.session.NavigateTo(entries[m.sidebarAt].id)
			m.area = areaOutline
			m.save()
		}
		return true
	case "<":
		m.session.SetSidebarWidth(m.session.SidebarWidth() - 4)
		m.save()
		return true
	case ">":
		m.session.SetSidebarWidth(m.session.SidebarWidth() + 4)
		m.save()
		return true
	case "esc", "tab":
		m.area = areaOutline
		return true
	}
	return false
}

// beginDelete removes the focused row, detouring through a confirmation when
// the subtree would take children with it.
func (m *Model) beginDelete() {
	node, ok := m.session.FocusedBullet()
	if !ok {
		return
	}
	if node.IsReadOnly {
		m.setStatus("read-only bullet")
		return
	}
	if node.HasChildren() {
		m.confirmID = node.ID
		m.mode = modeConfirm
		return
	}
	m.session.Delete(node.ID, app.ModeView)
	m.save()
	m.syncInputFromFocus()
}

func (m *Model) handleConfirmKey(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "y", "enter":
		m.session.Delete(m.confirmID, app.ModeView)
		m.save()
		m.confirmID = ""
		m.mode = modeView
		m.syncInputFromFocus()
		m.setStatus("deleted")
	case "n", "esc", "q":
		m.confirmID = ""
		m.mode = modeView
	}
}

func (m *Model) openHelp() {
	m.mode = modeHelp
	m.applySizes()
	m.help.SetContent(m.helpContent())
	m.help.SetYOffset(0)
}

func (m *Model) handleHelpKey(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "q", "esc", "?":
		m.mode = modeView
	default:
		m.help, _ = m.help.Update(msg)
	}
}

// followLink chases the first [[link]] in the focused bullet. A target that
// matches nothing becomes a pre-filled quick-find instead.
func (m *Model) followLink() {
	node, ok := m.session.FocusedBullet()
	if !ok {
		return
	}
	target, ok := search.FirstLink(node.Text)
	if !ok {
		m.setStatus("no link here")
		return
	}
	if m.session.ResolveLink(target) {
		m.save()
		return
	}
	m.openFind(target)
}

func (m *Model) jumpCrumb(n int) {
	crumbs := m.session.Breadcrumbs()
	if n < 1 || n > len(crumbs) {
		return
	}
	m.session.Zoom(crumbs[n-1].ID)
	m.save()
	m.syncInputFromFocus()
}

func (m *Model) exportNow() {
	data, err := m.session.ExportJSON()
	if err != nil {
		m.setError(err)
		return
	}
	file := m.session.ExportFileName()
	if err := os.WriteFile(file, data, 0o644); err != nil {
		m.setError(err)
		return
	}
	m.setStatus(fmt.Sprintf("exported %d bullets to %s", m.session.Count(), file))
}
