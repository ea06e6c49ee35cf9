package teaui

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/outlinehq/hoist/pkg/app"
	"github.com/outlinehq/hoist/pkg/search"
)

// popupState is the inline tag/link autocomplete attached to the edit line.
type popupState struct {
	open    bool
	trigger search.Trigger
	tags    []string
	links   []search.FlatBullet
	index   int
}

func (p popupState) size() int {
	if p.trigger.Kind == search.TriggerTag {
		return len(p.tags)
	}
	return len(p.links)
}

// enterEdit moves session focus into id and mirrors it in the input.
func (m *Model) enterEdit(id string, pos app.Position) {
	m.session.SetFocus(id, pos, app.ModeEdit)
	m.syncInputFromFocus()
}

// syncInputFromFocus maps the session's focus state onto the UI: the mode,
// the input's text and cursor, and the popup all derive from it. Every
// operation that may move focus is followed by this call, so there is exactly
// one place where session state becomes screen state.
func (m *Model) syncInputFromFocus() {
	fs := m.session.Focus()
	if fs.Mode != app.ModeEdit || fs.ID == "" {
		m.mode = modeView
		m.input.Blur()
		m.input.Reset()
		m.popup = popupState{}
		return
	}

	node, ok := m.session.FocusedBullet()
	if !ok {
		m.mode = modeView
		m.input.Blur()
		m.popup = popupState{}
		return
	}

	m.mode = modeEdit
	m.area = areaOutline
	m.input.SetValue(node.Text)
	m.input.SetCursor(fs.Pos.Offset(node.Text))
	m.input.Focus()
	m.refreshPopup()
}

func (m *Model) handleEditKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	id := m.session.Focus().ID
	if id == "" {
		m.mode = modeView
		return
	}
	if m.popup.open && m.handlePopupKey(msg) {
		return
	}

	switch msg.String() {
	case "ctrl+c":
		m.quit(cmds)
	case "enter":
		m.session.AddSiblingAfter(id)
		m.save()
		m.syncInputFromFocus()
	case "esc":
		m.session.SetFocus(id, app.End(), app.ModeView)
		m.save()
		m.syncInputFromFocus()
	case "tab":
		m.session.Indent(id)
		m.save()
	case "shift+tab":
		m.session.Outdent(id)
		m.save()
	case "ctrl+up", "cmd+up":
		m.session.MoveUp(id)
		m.save()
	case "ctrl+down", "cmd+down":
		m.session.MoveDown(id)
		m.save()
	case "backspace":
		if m.input.Position() == 0 {
			m.backspaceAtStart(id)
			return
		}
		m.applyInputKey(msg, cmds, id)
	default:
		m.applyInputKey(msg, cmds, id)
	}
}

// backspaceAtStart handles the two cursor-at-zero cases: an empty leaf dies,
// nonempty text merges into the previous sibling. An empty bullet that still
// has children does nothing.
func (m *Model) backspaceAtStart(id string) {
	if m.input.Value() == "" {
		if node, ok := m.session.FocusedBullet(); ok && !node.HasChildren() {
			m.session.Delete(id, app.ModeEdit)
			m.save()
			m.syncInputFromFocus()
		}
		return
	}
	m.session.Merge(id)
	m.save()
	m.syncInputFromFocus()
}

// applyInputKey routes a key into the text input and writes the result back
// to the bullet, then rescans for an autocomplete trigger at the cursor.
func (m *Model) applyInputKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd, id string) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	m.session.UpdateText(id, m.input.Value())
	m.refreshPopup()
}

// refreshPopup re-evaluates the trigger scanner against the current text and
// cursor. A trigger with no suggestions keeps the popup closed.
func (m *Model) refreshPopup() {
	trig := search.DetectTrigger(m.input.Value(), m.input.Position())
	if trig.Kind == search.TriggerNone {
		m.popup = popupState{}
		return
	}

	moved := trig.Kind != m.popup.trigger.Kind || trig.Start != m.popup.trigger.Start
	next := popupState{trigger: trig, index: m.popup.index}
	if moved {
		next.index = 0
	}

	switch trig.Kind {
	case search.TriggerTag:
		next.tags = m.session.TagSuggestions(trig.Partial)
	case search.TriggerLink:
		next.links = m.session.LinkSuggestions(trig.Partial)
	}
	if next.size() == 0 {
		m.popup = popupState{}
		return
	}
	if next.index >= next.size() {
		next.index = next.size() - 1
	}
	next.open = true
	m.popup = next
}

// handlePopupKey gives an open popup first claim on navigation keys. Keys it
// does not consume fall through to the edit handler.
func (m *Model) handlePopupKey(msg tea.KeyPressMsg) bool {
	switch msg.String() {
	case "up":
		if m.popup.index > 0 {
			m.popup.index--
		}
		return true
	case "down":
		if m.popup.index < m.popup.size()-1 {
			m.popup.index++
		}
		return true
	case "tab", "enter":
		m.acceptPopup()
		return true
	case "esc":
		m.popup = popupState{}
		return true
	}
	return false
}

// acceptPopup splices the highlighted suggestion over the in-progress token.
func (m *Model) acceptPopup() {
	id := m.session.Focus().ID
	var sel search.Selection
	switch m.popup.trigger.Kind {
	case search.TriggerTag:
		sel = search.TagSelection{Tag: m.popup.tags[m.popup.index]}
	case search.TriggerLink:
		sel = search.LinkSelection{Bullet: m.popup.links[m.popup.index]}
	default:
		m.popup = popupState{}
		return
	}

	text, cursor := search.Complete(m.input.Value(), m.input.Position(), m.popup.trigger, sel)
	m.session.UpdateText(id, text)
	m.input.SetValue(text)
	m.input.SetCursor(cursor)
	m.popup = popupState{}
	m.save()
}
