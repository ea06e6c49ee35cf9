package teaui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/outlinehq/hoist/pkg/outline"
	"github.com/outlinehq/hoist/pkg/search"
)

func TestFirstBulletThroughKeys(t *testing.T) {
	m := newTestModel(t, outline.Forest{})

	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.mode != modeEdit {
		t.Fatalf("enter on an empty page should start editing, mode=%v", m.mode)
	}
	typeText(m, "first")
	if got := focusedText(t, m); got != "first" {
		t.Fatalf("typing should write through to the bullet, got %q", got)
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	typeText(m, "second")
	if got := len(m.session.Forest()); got != 2 {
		t.Fatalf("enter should add a sibling, got %d roots", got)
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyTab})
	f := m.session.Forest()
	if len(f) != 1 || len(f[0].Children) != 1 || f[0].Children[0].Text != "second" {
		t.Fatal("tab should indent the second bullet under the first")
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if got := len(m.session.Forest()); got != 2 {
		t.Fatalf("shift+tab should undo the indent, got %d roots", got)
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.mode != modeView {
		t.Fatalf("esc should return to view mode, got %v", m.mode)
	}
	if m.session.Dirty() {
		t.Fatal("esc should have persisted the outline")
	}
}

func TestBackspaceAtTextStartMerges(t *testing.T) {
	m := newTestModel(t, outline.Forest{node("Hello"), node(" World")})

	press(m, tea.KeyPressMsg{Code: tea.KeyDown}, tea.KeyPressMsg{Code: tea.KeyEnter})
	m.input.CursorStart()
	press(m, tea.KeyPressMsg{Code: tea.KeyBackspace})

	f := m.session.Forest()
	if len(f) != 1 || f[0].Text != "Hello World" {
		t.Fatalf("merge should concatenate with no separator, got %q", f[0].Text)
	}
	if m.mode != modeEdit {
		t.Fatalf("merge should keep editing, mode=%v", m.mode)
	}
	if got := m.input.Position(); got != len("Hello") {
		t.Fatalf("cursor should sit on the seam, got %d", got)
	}
}

func TestBackspaceOnEmptyLeafDeletesIt(t *testing.T) {
	m := newTestModel(t, outline.Forest{node("alpha")})

	press(m,
		tea.KeyPressMsg{Code: tea.KeyEnter},
		tea.KeyPressMsg{Code: tea.KeyEnter},
		tea.KeyPressMsg{Code: tea.KeyBackspace},
	)
	if got := len(m.session.Forest()); got != 1 {
		t.Fatalf("empty leaf should be deleted, got %d roots", got)
	}
	if m.mode != modeEdit {
		t.Fatalf("focus should fall back still editing, mode=%v", m.mode)
	}
	if got := focusedText(t, m); got != "alpha" {
		t.Fatalf("expected alpha focused, got %q", got)
	}
}

func TestTagPopupCompletesToken(t *testing.T) {
	m := newTestModel(t, outline.Forest{node("#work errand"), node("todo")})

	press(m, tea.KeyPressMsg{Code: tea.KeyDown}, tea.KeyPressMsg{Code: tea.KeyEnter})
	typeText(m, " #wo")
	if !m.popup.open || m.popup.trigger.Kind != search.TriggerTag {
		t.Fatalf("expected an open tag popup, %+v", m.popup)
	}
	at := -1
	for i, tag := range m.popup.tags {
		if tag == "#work" {
			at = i
		}
	}
	if at < 0 {
		t.Fatalf("expected #work among suggestions: %v", m.popup.tags)
	}

	for i := 0; i < at; i++ {
		press(m, tea.KeyPressMsg{Code: tea.KeyDown})
	}
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if got := focusedText(t, m); got != "todo #work" {
		t.Fatalf("accepting should splice the tag, got %q", got)
	}
	if m.popup.open {
		t.Fatal("popup should close after accepting")
	}
	if got := m.input.Position(); got != len("todo #work") {
		t.Fatalf("cursor should land after the tag, got %d", got)
	}
}

func TestLinkPopupCompletesToken(t *testing.T) {
	m := newTestModel(t, outline.Forest{node("Beta plan"), node("alpha")})

	press(m, tea.KeyPressMsg{Code: tea.KeyDown}, tea.KeyPressMsg{Code: tea.KeyEnter})
	typeText(m, " [[Beta p")
	if !m.popup.open || m.popup.trigger.Kind != search.TriggerLink {
		t.Fatalf("expected an open link popup, %+v", m.popup)
	}
	if len(m.popup.links) == 0 || m.popup.links[0].Text != "Beta plan" {
		t.Fatalf("expected Beta plan first, got %+v", m.popup.links)
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := focusedText(t, m); got != "alpha [[Beta plan]]" {
		t.Fatalf("accepting should splice the link, got %q", got)
	}
}

func TestPopupEscCloses_SecondEscLeavesEditMode(t *testing.T) {
	m := newTestModel(t, outline.Forest{node("#work errand"), node("todo")})

	press(m, tea.KeyPressMsg{Code: tea.KeyDown}, tea.KeyPressMsg{Code: tea.KeyEnter})
	typeText(m, " #w")
	if !m.popup.open {
		t.Fatal("expected an open popup")
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.popup.open {
		t.Fatal("esc should close the popup first")
	}
	if m.mode != modeEdit {
		t.Fatalf("first esc must not leave edit mode, got %v", m.mode)
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.mode != modeView {
		t.Fatalf("second esc should return to view mode, got %v", m.mode)
	}
}

func TestMovingCursorPastTokenClosesPopup(t *testing.T) {
	m := newTestModel(t, outline.Forest{node("#work errand"), node("todo")})

	press(m, tea.KeyPressMsg{Code: tea.KeyDown}, tea.KeyPressMsg{Code: tea.KeyEnter})
	typeText(m, " #w")
	if !m.popup.open {
		t.Fatal("expected an open popup")
	}
	typeText(m, " done")
	if m.popup.open {
		t.Fatal("typing past the token should close the popup")
	}
}

func TestImportFlowTopLevelAndUnderTarget(t *testing.T) {
	m := newTestModel(t, outline.Forest{node("existing")})

	file := filepath.Join(t.TempDir(), "in.json")
	payload := []byte(`[{"id":"a","text":"imported root","children":[{"id":"b","text":"imported child"}]}]`)
	if err := os.WriteFile(file, payload, 0o644); err != nil {
		t.Fatalf("write payload: %v", err)
	}

	m.beginImport()
	if m.mode != modeImportPath {
		t.Fatalf("expected the path prompt, mode=%v", m.mode)
	}
	m.imp.path.SetValue(file)
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.mode != modeImportTarget {
		t.Fatalf("expected the target picker, mode=%v", m.mode)
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyEnter}) // index 0 = top level
	f := m.session.Forest()
	if len(f) != 2 || f[1].Text != "imported root" {
		t.Fatalf("top-level import should append roots, got %d", len(f))
	}
	if f[1].ID == "a" || f[1].OriginalID != "a" {
		t.Fatal("imported ids must be regenerated with provenance kept")
	}

	m.beginImport()
	m.imp.path.SetValue(file)
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	press(m, tea.KeyPressMsg{Code: tea.KeyDown}, tea.KeyPressMsg{Code: tea.KeyEnter})
	f = m.session.Forest()
	if got := len(f[0].Children); got != 1 {
		t.Fatalf("second import should nest under the first hit, got %d children", got)
	}
}

func TestImportBadPathStaysOnPrompt(t *testing.T) {
	m := newTestModel(t, outline.Forest{node("existing")})

	m.beginImport()
	m.imp.path.SetValue(filepath.Join(t.TempDir(), "missing.json"))
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.mode != modeImportPath {
		t.Fatalf("a bad path should keep the prompt open, mode=%v", m.mode)
	}
	if !m.statusErr {
		t.Fatal("expected the failure surfaced in the status bar")
	}
}

func TestExportWritesConfiguredFile(t *testing.T) {
	m := newTestModel(t, outline.Forest{node("alpha", node("beta"))})

	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restore cwd: %v", err)
		}
	}()

	m.exportNow()
	if m.statusErr {
		t.Fatalf("export failed: %s", m.status)
	}
	data, err := os.ReadFile(filepath.Join(dir, m.session.ExportFileName()))
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	count, err := m.session.ImportJSON(data, "")
	if err != nil {
		t.Fatalf("round-trip import: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 bullets back, got %d", count)
	}
}
