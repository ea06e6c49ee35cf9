package teaui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"github.com/outlinehq/hoist/pkg/outline"
)

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestViewRendersMarkersTitleAndStatus(t *testing.T) {
	m := newTestModel(t, outline.Forest{node("parent", node("kid")), node("leaf")})

	out := stripANSI(m.View())
	for _, want := range []string{"outline", "▾ parent", "• kid", "• leaf", "VIEW", "3 bullets"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyLeft})
	out = stripANSI(m.View())
	if !strings.Contains(out, "▸ parent") {
		t.Fatalf("folding should flip the marker:\n%s", out)
	}
	if strings.Contains(out, "kid") {
		t.Fatalf("folded children should not render:\n%s", out)
	}
}

func TestViewEmptyOutlinePrompt(t *testing.T) {
	m := newTestModel(t, outline.Forest{})
	out := stripANSI(m.View())
	if !strings.Contains(out, "press enter to start writing") {
		t.Fatalf("empty page should invite typing:\n%s", out)
	}
}

func TestViewMarksFavoriteAndReadOnly(t *testing.T) {
	locked := node("locked")
	locked.IsReadOnly = true
	m := newTestModel(t, outline.Forest{node("alpha"), locked})

	press(m, tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl})
	out := stripANSI(m.View())
	if !strings.Contains(out, "★") {
		t.Fatalf("favorite star missing:\n%s", out)
	}
	if !strings.Contains(out, "⊘") {
		t.Fatalf("read-only mark missing:\n%s", out)
	}
}

func TestViewEditModeShowsTypedText(t *testing.T) {
	m := newTestModel(t, outline.Forest{node("alpha")})

	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	typeText(m, "x")
	out := stripANSI(m.View())
	if !strings.Contains(out, "alphax") {
		t.Fatalf("edit line should show the typed value:\n%s", out)
	}
	if !strings.Contains(out, "EDIT") {
		t.Fatalf("status should report edit mode:\n%s", out)
	}
}

func TestViewFinderTabsAndResultCount(t *testing.T) {
	m := newTestModel(t, outline.Forest{node("alpha plan"), node("beta")})

	press(m, tea.KeyPressMsg{Code: 'k', Mod: tea.ModCtrl | tea.ModShift})
	out := stripANSI(m.View())
	for _, want := range []string{"Quick Find", "search", "edited", "created", "alpha plan", "2 results", "FIND"} {
		if !strings.Contains(out, want) {
			t.Fatalf("finder missing %q:\n%s", want, out)
		}
	}

	typeText(m, "beta")
	out = stripANSI(m.View())
	if !strings.Contains(out, "1 results") {
		t.Fatalf("filter should narrow the count:\n%s", out)
	}
	if strings.Contains(out, "alpha plan") {
		t.Fatalf("non-matching hit should drop out:\n%s", out)
	}
}

func TestViewImportPromptShowsDefaultPath(t *testing.T) {
	m := newTestModel(t, outline.Forest{node("alpha")})

	m.beginImport()
	out := stripANSI(m.View())
	for _, want := range []string{"Import", "File to read:", "outline.json", "IMPORT"} {
		if !strings.Contains(out, want) {
			t.Fatalf("import prompt missing %q:\n%s", want, out)
		}
	}
}

func TestViewConfirmNamesSubtreeSize(t *testing.T) {
	m := newTestModel(t, outline.Forest{node("parent", node("kid"), node("kid2"))})

	press(m, tea.KeyPressMsg{Code: tea.KeyBackspace})
	out := stripANSI(m.View())
	if !strings.Contains(out, `Delete "parent" and 2 more? (y/n)`) {
		t.Fatalf("confirm prompt missing:\n%s", out)
	}
	if !strings.Contains(out, "CONFIRM") {
		t.Fatalf("status should report confirm mode:\n%s", out)
	}
}

func TestViewHelpScrolls(t *testing.T) {
	m := newTestModel(t, outline.Forest{node("alpha")})

	press(m, tea.KeyPressMsg{Text: "?", Code: '?'})
	out := stripANSI(m.View())
	for _, want := range []string{"Keys", "Navigate", "quick find", "favorite toggle"} {
		if !strings.Contains(out, want) {
			t.Fatalf("help missing %q:\n%s", want, out)
		}
	}

	for i := 0; i < 12; i++ {
		press(m, tea.KeyPressMsg{Code: tea.KeyDown})
	}
	out = stripANSI(m.View())
	if !strings.Contains(out, "sidebar show or hide") {
		t.Fatalf("scrolling should reveal the panes section:\n%s", out)
	}

	press(m, tea.KeyPressMsg{Text: "?", Code: '?'})
	if m.mode != modeView {
		t.Fatalf("? should close help, mode=%v", m.mode)
	}
}

func TestViewSidebarHeadersAndToggle(t *testing.T) {
	m := newTestModel(t, outline.Forest{node("alpha")})

	out := stripANSI(m.View())
	for _, want := range []string{"Favorites", "none yet", "Recent", "no edits yet"} {
		if !strings.Contains(out, want) {
			t.Fatalf("sidebar missing %q:\n%s", want, out)
		}
	}

	press(m, tea.KeyPressMsg{Code: 'b', Mod: tea.ModCtrl})
	out = stripANSI(m.View())
	if strings.Contains(out, "Favorites") {
		t.Fatalf("ctrl+b should hide the sidebar:\n%s", out)
	}
}

func TestViewSidebarTruncatesLongLabels(t *testing.T) {
	long := "this favorite label runs far past the sidebar and cannot fit"
	m := newTestModel(t, outline.Forest{node(long)})

	press(m, tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl})
	out := stripANSI(m.View())
	if !strings.Contains(out, "…") {
		t.Fatalf("long labels should truncate with an ellipsis:\n%s", out)
	}
}

func TestViewBreadcrumbsNumberAncestors(t *testing.T) {
	m := newTestModel(t, outline.Forest{node("home", node("projects", node("deep")))})

	press(m,
		tea.KeyPressMsg{Code: tea.KeyDown, Mod: tea.ModCtrl},
		tea.KeyPressMsg{Code: tea.KeyDown, Mod: tea.ModCtrl},
	)
	out := stripANSI(m.View())
	if !strings.Contains(out, "1 home") {
		t.Fatalf("ancestors should be numbered jump targets:\n%s", out)
	}
	if !strings.Contains(out, "›") {
		t.Fatalf("crumb separator missing:\n%s", out)
	}
	if !strings.Contains(out, "projects") {
		t.Fatalf("zoom target should head the page:\n%s", out)
	}
}

func TestViewTagPopupRendersBelowOutline(t *testing.T) {
	m := newTestModel(t, outline.Forest{node("#work errand"), node("todo")})

	press(m, tea.KeyPressMsg{Code: tea.KeyDown}, tea.KeyPressMsg{Code: tea.KeyEnter})
	before := strings.Count(stripANSI(m.View()), "#work")
	typeText(m, " #wo")
	after := strings.Count(stripANSI(m.View()), "#work")
	if after <= before {
		t.Fatalf("open popup should add a #work suggestion line, before=%d after=%d", before, after)
	}
}
