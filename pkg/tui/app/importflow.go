package teaui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/outlinehq/hoist/pkg/search"
)

// importState carries a two-step import: first a file path prompt, then a
// target picker over the finder. The raw bytes are held between the steps so
// the file is read exactly once.
type importState struct {
	path textinput.Model
	data []byte
}

func newImportState() importState {
	ti := textinput.New()
	ti.Placeholder = "outline.json"
	ti.CharLimit = 0
	ti.Prompt = ""
	ti.VirtualCursor = true
	ti.Styles.Cursor.Color = lipgloss.Color("212")
	ti.Styles.Cursor.Shape = tea.CursorBlock
	ti.Styles.Cursor.Blink = true
	return importState{path: ti}
}

func (m *Model) beginImport() {
	m.imp.path.SetValue(m.session.ExportFileName())
	m.imp.path.CursorEnd()
	m.imp.path.Focus()
	m.mode = modeImportPath
}

func (m *Model) handleImportPathKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quit(cmds)
	case "esc":
		m.imp.path.Blur()
		m.mode = modeView
	case "enter":
		data, err := os.ReadFile(m.imp.path.Value())
		if err != nil {
			m.setError(err)
			return
		}
		m.imp.data = data
		m.imp.path.Blur()
		m.find.input.Reset()
		m.find.input.Focus()
		m.find.sort = search.SortInsertion
		m.find.index = 0
		m.refreshFind()
		m.mode = modeImportTarget
	default:
		var cmd tea.Cmd
		m.imp.path, cmd = m.imp.path.Update(msg)
		if cmd != nil {
			*cmds = append(*cmds, cmd)
		}
	}
}

// handleImportTargetKey picks where the imported bullets land. Index zero is
// the synthetic top-level row; everything after maps to a finder hit.
func (m *Model) handleImportTargetKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quit(cmds)
	case "esc":
		m.find.input.Blur()
		m.imp.data = nil
		m.mode = modeView
	case "up":
		if m.find.index > 0 {
			m.find.index--
		}
	case "down":
		if m.find.index < len(m.find.hits) {
			m.find.index++
		}
	case "enter":
		targetID := ""
		if m.find.index > 0 {
			targetID = m.find.hits[m.find.index-1].ID
		}
		count, err := m.session.ImportJSON(m.imp.data, targetID)
		m.find.input.Blur()
		m.imp.data = nil
		m.mode = modeView
		if err != nil {
			m.setError(err)
			return
		}
		m.save()
		m.syncInputFromFocus()
		m.setStatus(fmt.Sprintf("imported %d bullets", count))
	default:
		var cmd tea.Cmd
		m.find.input, cmd = m.find.input.Update(msg)
		if cmd != nil {
			*cmds = append(*cmds, cmd)
		}
		m.find.index = 0
		m.refreshFind()
	}
}
