package teaui

import (
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/outlinehq/hoist/pkg/search"
)

// finderState backs the quick-find modal, and doubles as the filter for the
// import target picker.
type finderState struct {
	input textinput.Model
	sort  search.SortMode
	hits  []search.FlatBullet
	index int
}

func newFinderState() finderState {
	ti := textinput.New()
	ti.Placeholder = "Search"
	ti.CharLimit = 0
	ti.Prompt = ""
	ti.VirtualCursor = true
	ti.Styles.Cursor.Color = lipgloss.Color("212")
	ti.Styles.Cursor.Shape = tea.CursorBlock
	ti.Styles.Cursor.Blink = true
	return finderState{input: ti}
}

// openFind raises the quick-find modal, optionally pre-filled with a query.
func (m *Model) openFind(prefill string) {
	m.find.input.SetValue(prefill)
	m.find.input.CursorEnd()
	m.find.input.Focus()
	m.find.sort = search.SortInsertion
	m.find.index = 0
	m.refreshFind()
	m.mode = modeFind
}

func (m *Model) refreshFind() {
	m.find.hits = m.session.Search(m.find.input.Value(), m.find.sort)
	if m.find.index >= len(m.find.hits) {
		m.find.index = len(m.find.hits) - 1
	}
	if m.find.index < 0 {
		m.find.index = 0
	}
}

func (m *Model) handleFindKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quit(cmds)
	case "esc":
		m.find.input.Blur()
		m.mode = modeView
	case "tab":
		m.find.sort = nextSort(m.find.sort)
		m.refreshFind()
	case "up":
		if m.find.index > 0 {
			m.find.index--
		}
	case "down":
		if m.find.index < len(m.find.hits)-1 {
			m.find.index++
		}
	case "enter":
		if len(m.find.hits) == 0 {
			return
		}
		m.find.input.Blur()
		m.mode = modeView
		m.session.NavigateTo(m.find.hits[m.find.index].ID)
		m.save()
		m.syncInputFromFocus()
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

func nextSort(s search.SortMode) search.SortMode {
	switch s {
	case search.SortInsertion:
		return search.SortEdited
	case search.SortEdited:
		return search.SortCreated
	default:
		return search.SortInsertion
	}
}
