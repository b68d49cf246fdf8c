package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-launcher/internal/nav"
	"github.com/atomicstack/popup-launcher/internal/testutil"
)

func TestViewListsCatalogWithHeader(t *testing.T) {
	m := newTestModel(t, &testutil.Spawner{}, Options{})
	view := m.View()
	for _, want := range []string{"[browse] 3/3  #1", "Firefox", "Files", "Terminal"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
}

func TestViewVerboseShowsDetail(t *testing.T) {
	m := newTestModel(t, &testutil.Spawner{}, Options{Verbose: true})
	view := m.View()
	if !strings.Contains(view, "firefox  (vector:/icons/firefox.svg)") {
		t.Fatalf("expected detail line for focused entry, got:\n%s", view)
	}
}

func TestViewFooterListsBindings(t *testing.T) {
	m := newTestModel(t, &testutil.Spawner{}, Options{ShowFooter: true})
	footer := m.footerText()
	for _, want := range []string{"down/j down", "k/up up", "//i search", "enter launch", "esc quit"} {
		if !strings.Contains(footer, want) {
			t.Fatalf("expected %q in footer %q", want, footer)
		}
	}
	if !strings.Contains(m.View(), "enter launch") {
		t.Fatal("expected footer rendered")
	}
}

func TestViewFooterOmitsUnboundActions(t *testing.T) {
	keymap, err := nav.DefaultKeymap().Merge(map[string]string{"i": "none", "/": "none"})
	if err != nil {
		t.Fatalf("merge keymap: %v", err)
	}
	m := newTestModel(t, &testutil.Spawner{}, Options{ShowFooter: true, Keymap: keymap})
	if footer := m.footerText(); strings.Contains(footer, "search") {
		t.Fatalf("expected search hint dropped, got %q", footer)
	}
	bindings := helpBindings(keymap)
	if bindings[2].Enabled() {
		t.Fatal("expected unbound search binding disabled")
	}
	if got := bindings[0].Keys(); len(got) != 2 || got[0] != "down" || got[1] != "j" {
		t.Fatalf("unexpected move-next keys %v", got)
	}
}

func TestViewFooterTruncatesToWidth(t *testing.T) {
	m := newTestModel(t, &testutil.Spawner{}, Options{ShowFooter: true, Width: 30})
	footer := m.footerText()
	if !strings.HasSuffix(footer, "…") {
		t.Fatalf("expected ellipsis on narrow footer, got %q", footer)
	}
	if strings.Contains(footer, "esc quit") {
		t.Fatalf("expected trailing hints dropped, got %q", footer)
	}
}

func TestViewScrollsToFocusedRow(t *testing.T) {
	m := newTestModel(t, &testutil.Spawner{}, Options{Height: 4})
	h := NewHarness(m)
	h.Press("j")
	h.Press("j")
	view := h.View()
	if !strings.Contains(view, "Terminal") {
		t.Fatalf("expected focused row visible, got:\n%s", view)
	}
	if strings.Contains(view, "Firefox") {
		t.Fatalf("expected first row scrolled away, got:\n%s", view)
	}
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	m := newTestModel(t, &testutil.Spawner{}, Options{Width: 30})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	if m.width != 30 || m.height != 20 {
		t.Fatalf("expected fixed width 30 and height 20, got %dx%d", m.width, m.height)
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("launcher", 5); got != "laun…" {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := truncateText("abc", 0); got != "abc" {
		t.Fatalf("expected no truncation for zero width, got %q", got)
	}
	if got := truncateText("abc", 1); got != "a" {
		t.Fatalf("unexpected single-column truncation %q", got)
	}
}
