package teaui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"github.com/outlinehq/hoist/pkg/bullet"
	"github.com/outlinehq/hoist/pkg/glyph"
	"github.com/outlinehq/hoist/pkg/outline"
	"github.com/outlinehq/hoist/pkg/search"
	"github.com/outlinehq/hoist/pkg/timeutil"
)

func (m *Model) View() string {
	var sections []string

	switch m.mode {
	case modeFind:
		sections = append(sections, m.renderFinder("Quick Find", true, false))
	case modeImportTarget:
		sections = append(sections, m.renderFinder("Import Into", false, true))
	case modeImportPath:
		sections = append(sections, m.renderImportPrompt())
	case modeHelp:
		sections = append(sections, m.renderHelp())
	default:
		sections = append(sections, m.renderBody())
	}

	if m.mode == modeEdit && m.popup.open {
		sections = append(sections, m.renderPopup())
	}
	if m.mode == modeConfirm {
		sections = append(sections, m.renderConfirm())
	}

	sections = append(sections, m.renderStatusBar())
	return strings.Join(sections, "\n\n")
}

func (m *Model) renderBody() string {
	main := m.renderCrumbs() + "\n\n" + m.renderOutline()
	if !m.session.SidebarOpen() {
		return main
	}
	gap := lipgloss.NewStyle().Padding(0, 1).Render
	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), gap(" "), main)
}

// renderCrumbs draws the header: the outline's name at the root, or the
// numbered ancestor chain plus the zoom target's text when hoisted. The
// numbers are the 1..9 jump targets.
func (m *Model) renderCrumbs() string {
	th := m.theme.Crumbs
	crumbs := m.session.Breadcrumbs()
	if len(crumbs) == 0 {
		return th.Title.Render(m.session.Settings().FileName)
	}

	var b strings.Builder
	for i, c := range crumbs[:len(crumbs)-1] {
		if i > 0 {
			b.WriteString(th.Sep.Render(" › "))
		}
		b.WriteString(th.Crumb.Render(fmt.Sprintf("%d %s", i+1, c.DisplayText())))
	}
	title := th.Current.Render(crumbs[len(crumbs)-1].DisplayText())
	if b.Len() == 0 {
		return title
	}
	return b.String() + th.Sep.Render(" › ") + title
}

func (m *Model) renderOutline() string {
	rows := m.session.VisibleRows()
	if len(rows) == 0 {
		return m.theme.Outline.Empty.Render("press enter to start writing")
	}

	start := m.scroll
	if start > len(rows)-1 {
		start = len(rows) - 1
	}
	if start < 0 {
		start = 0
	}
	end := start + m.pageHeight()
	if end > len(rows) {
		end = len(rows)
	}

	focusID := m.session.Focus().ID
	now := time.Now()
	lines := make([]string, 0, end-start)
	for _, r := range rows[start:end] {
		lines = append(lines, m.rowLine(r, focusID, now))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) rowLine(r outline.Row, focusID string, now time.Time) string {
	th := m.theme.Outline
	indent := strings.Repeat("  ", r.Depth)
	marker := th.Marker.Render(glyph.For(r.Bullet.HasChildren(), r.Bullet.IsCollapsed).String())
	focused := r.Bullet.ID == focusID && m.area == areaOutline

	var text string
	switch {
	case focused && m.mode == modeEdit:
		text = m.input.View()
	case r.Bullet.Text == "":
		text = th.Untitled.Render(r.Bullet.DisplayText())
	case focused:
		text = th.Focused.Render(r.Bullet.Text)
	default:
		text = th.Text.Render(r.Bullet.Text)
	}

	line := indent + marker + " " + text
	if r.Bullet.IsFavorite {
		line += " " + th.Favorite.Render(glyph.Favorite.String())
	}
	if r.Bullet.IsReadOnly {
		line += " " + th.Lock.Render(glyph.ReadOnly.String())
	}
	if focused && m.mode == modeView {
		line += " " + th.Meta.Render(timeutil.Relative(r.Bullet.UpdatedAt.Time, now))
	}
	return line
}

type sidebarEntry struct {
	id    string
	label string
	at    time.Time
}

// sidebarEntries flattens the sidebar into its selectable rows, favorites
// first. The selection index counts across both lists.
func (m *Model) sidebarEntries() []sidebarEntry {
	var entries []sidebarEntry
	for _, f := range m.session.Favorites() {
		entries = append(entries, sidebarEntry{id: f.ID, label: bullet.DisplayText(f.Text)})
	}
	for _, r := range m.session.Recents() {
		entries = append(entries, sidebarEntry{
			id:    r.ID,
			label: bullet.DisplayText(r.Text),
			at:    r.UpdatedAt.Time,
		})
	}
	return entries
}

func (m *Model) renderSidebar() string {
	th := m.theme.Sidebar
	width := m.session.SidebarWidth()
	inner := uint(width - 4)
	active := m.area == areaSidebar
	favCount := len(m.session.Favorites())
	now := time.Now()

	var lines []string
	lines = append(lines, th.Title.Render("Favorites"))
	entries := m.sidebarEntries()
	if favCount == 0 {
		lines = append(lines, th.Time.Render("none yet"))
	}
	for i, e := range entries {
		if i == favCount {
			lines = append(lines, "", th.Title.Render("Recent"))
		}
		style := th.Entry
		if active && i == m.sidebarAt {
			style = th.Selected
		}
		label := truncate.StringWithTail(e.label, inner, "…")
		line := style.Render(label)
		if !e.at.IsZero() {
			line += " " + th.Time.Render(timeutil.Relative(e.at, now))
		}
		lines = append(lines, line)
	}
	if favCount == len(entries) {
		lines = append(lines, "", th.Title.Render("Recent"), th.Time.Render("no edits yet"))
	}

	return th.Frame.Width(width).Render(strings.Join(lines, "\n"))
}

// renderFinder draws the search modal. With topRow, a synthetic "top level"
// destination occupies index zero and the hits shift down one.
func (m *Model) renderFinder(title string, tabs, topRow bool) string {
	th := m.theme.Finder
	var b []string
	b = append(b, th.Title.Render(title), "")
	b = append(b, m.find.input.View())

	if tabs {
		var labels []string
		for _, s := range []search.SortMode{search.SortInsertion, search.SortEdited, search.SortCreated} {
			style := th.Tab
			if s == m.find.sort {
				style = th.TabActive
			}
			labels = append(labels, style.Render(s.String()))
		}
		b = append(b, strings.Join(labels, "  "))
	}
	b = append(b, "")

	total := len(m.find.hits)
	sel := m.find.index
	if topRow {
		total++
	}
	window := m.pageHeight() - 4
	if window < 3 {
		window = 3
	}
	start := 0
	if sel >= window {
		start = sel - window + 1
	}
	end := start + window
	if end > total {
		end = total
	}

	for i := start; i < end; i++ {
		style := th.Hit
		if i == sel {
			style = th.HitSelected
		}
		if topRow && i == 0 {
			b = append(b, style.Render("(top level)"))
			continue
		}
		at := i
		if topRow {
			at = i - 1
		}
		hit := m.find.hits[at]
		line := style.Render(bullet.DisplayText(hit.Text))
		if label := hit.PathLabel(); label != "" {
			line += "  " + th.Path.Render(label)
		}
		b = append(b, line)
	}
	if len(m.find.hits) == 0 {
		b = append(b, th.Path.Render("no matches"))
	}

	b = append(b, "", th.Count.Render(fmt.Sprintf("%d results", len(m.find.hits))))
	return th.Frame.Render(strings.Join(b, "\n"))
}

func (m *Model) renderImportPrompt() string {
	th := m.theme.Overlay
	body := strings.Join([]string{
		th.Title.Render("Import"),
		"",
		th.Body.Render("File to read:"),
		m.imp.path.View(),
		"",
		th.Desc.Render("enter choose target · esc cancel"),
	}, "\n")
	return th.Frame.Render(body)
}

func (m *Model) renderConfirm() string {
	th := m.theme.Overlay
	loc, ok := outline.Locate(m.session.Forest(), m.confirmID)
	if !ok {
		return ""
	}
	descendants := outline.Count(outline.Forest{loc.Node}) - 1
	prompt := fmt.Sprintf("Delete %q and %d more? (y/n)", loc.Node.DisplayText(), descendants)
	return th.Frame.Render(th.Title.Render(prompt))
}

func (m *Model) renderPopup() string {
	th := m.theme.Popup
	var lines []string
	switch m.popup.trigger.Kind {
	case search.TriggerTag:
		for i, tag := range m.popup.tags {
			style := th.Item
			if i == m.popup.index {
				style = th.Selected
			}
			lines = append(lines, style.Render(tag))
			if len(lines) == 8 {
				break
			}
		}
	case search.TriggerLink:
		for i, hit := range m.popup.links {
			style := th.Item
			if i == m.popup.index {
				style = th.Selected
			}
			line := style.Render(bullet.DisplayText(hit.Text))
			if label := hit.PathLabel(); label != "" {
				line += "  " + m.theme.Finder.Path.Render(label)
			}
			lines = append(lines, line)
			if len(lines) == 8 {
				break
			}
		}
	}
	return th.Frame.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderStatusBar() string {
	th := m.theme.Status
	parts := []string{th.Mode.Render(m.modeLabel())}
	if m.status != "" {
		if m.statusErr {
			parts = append(parts, th.Error.Render(m.status))
		} else {
			parts = append(parts, th.Info.Render(m.status))
		}
	}
	parts = append(parts, th.Info.Render(fmt.Sprintf("%d bullets", m.session.Count())))

	line := " " + strings.Join(parts, "  ")
	if m.termWidth > 0 {
		return th.Bar.Width(m.termWidth).Render(line)
	}
	return th.Bar.Render(line)
}

func (m *Model) modeLabel() string {
	switch m.mode {
	case modeEdit:
		return "EDIT"
	case modeFind:
		return "FIND"
	case modeImportPath, modeImportTarget:
		return "IMPORT"
	case modeConfirm:
		return "CONFIRM"
	case modeHelp:
		return "HELP"
	default:
		if m.area == areaSidebar {
			return "SIDEBAR"
		}
		return "VIEW"
	}
}

func (m *Model) renderHelp() string {
	th := m.theme.Overlay
	return th.Frame.Render(th.Title.Render("Keys") + "\n\n" + m.help.View())
}

func (m *Model) helpContent() string {
	th := m.theme.Overlay
	line := func(key, desc string) string {
		return th.Key.Render(fmt.Sprintf("  %-14s", key)) + th.Desc.Render(desc)
	}

	var b []string
	b = append(b, th.Body.Render("Navigate"))
	b = append(b,
		line("↑ ↓", "move between rows"),
		line("← →", "fold, or climb and descend"),
		line("ctrl+← →", "fold or unfold the whole subtree"),
		line("ctrl+↓", "hoist the focused bullet"),
		line("ctrl+↑", "zoom back out one level"),
		line("1..9", "jump to a breadcrumb"),
		line("ctrl+shift+h", "home: root page, top bullets folded"),
		line("ctrl+j", "today's journal entry"),
		line("ctrl+shift+k", "quick find"),
		line("ctrl+g", "follow the first [[link]] in the row"),
	)
	b = append(b, "", th.Body.Render("Edit"))
	b = append(b,
		line("enter", "edit the row; again for a new sibling"),
		line("esc", "back to view mode"),
		line("tab", "indent (shift+tab outdents)"),
		line("alt+↑ ↓", "reorder among siblings (ctrl while editing)"),
		line("backspace", "delete row; at text start, merge upward"),
		line("ctrl+.", "fold toggle"),
		line("ctrl+y", "favorite toggle"),
	)
	b = append(b, "", th.Body.Render("Panes"))
	b = append(b,
		line("ctrl+b", "sidebar show or hide"),
		line("tab", "switch pane (view mode)"),
		line("< >", "sidebar width"),
		line("ctrl+t", "light or dark theme"),
		line("ctrl+e", "export to a JSON file"),
		line("ctrl+o", "import from a JSON file"),
		line("q", "quit"),
	)

	b = append(b, "", th.Body.Render("Marks"))
	for _, g := range glyph.DefaultGlyphs() {
		label := g.Symbol
		if g.Key != "" && !g.Syntax {
			label = fmt.Sprintf("%s  (%s)", g.Symbol, g.Key)
		}
		if g.Syntax {
			label = fmt.Sprintf("%s  (type %s)", g.Symbol, g.Key)
		}
		b = append(b, line(label, g.Meaning))
	}

	return strings.Join(b, "\n")
}

// pageHeight is how many outline rows fit on the page: the terminal minus
// the header, the section gaps, and the status bar. Unsized terminals get an
// effectively unbounded page.
func (m *Model) pageHeight() int {
	if m.termHeight <= 0 {
		return 1 << 16
	}
	h := m.termHeight - 6
	if h < 5 {
		h = 5
	}
	return h
}

func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	w := m.termWidth - 10
	if w < 20 {
		w = 20
	}
	h := m.termHeight - 8
	if h < 5 {
		h = 5
	}
	m.help.SetWidth(w)
	m.help.SetHeight(h)
}

// ensureFocusVisible scrolls the outline window so the focused row stays on
// the page.
func (m *Model) ensureFocusVisible() {
	rows := m.session.VisibleRows()
	if len(rows) == 0 {
		m.scroll = 0
		return
	}
	if m.scroll > len(rows)-1 {
		m.scroll = len(rows) - 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}

	focusID := m.session.Focus().ID
	at := -1
	for i, r := range rows {
		if r.Bullet.ID == focusID {
			at = i
			break
		}
	}
	if at < 0 {
		return
	}
	if at < m.scroll {
		m.scroll = at
	}
	if h := m.pageHeight(); at >= m.scroll+h {
		m.scroll = at - h + 1
	}
}
