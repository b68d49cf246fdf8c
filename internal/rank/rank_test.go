package rank

import (
	"testing"

	"github.com/atomicstack/popup-launcher/internal/catalog"
)

func mustCatalog(t *testing.T, entries ...catalog.Candidate) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(entries)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return cat
}

func names(view View) []string {
	out := make([]string, len(view))
	for i, c := range view {
		out[i] = c.Name
	}
	return out
}

func launcherCatalog(t *testing.T) *catalog.Catalog {
	return mustCatalog(t,
		catalog.Candidate{Name: "Firefox", Command: "firefox"},
		catalog.Candidate{Name: "Files", Command: "nautilus"},
		catalog.Candidate{Name: "Terminal", Command: "alacritty"},
	)
}

func TestRankEmptyQueryIsIdentity(t *testing.T) {
	cat := launcherCatalog(t)
	for _, name := range ScorerNames() {
		scorer, err := ScorerByName(name)
		if err != nil {
			t.Fatalf("scorer %s: %v", name, err)
		}
		view := Rank(cat, "", scorer)
		got := names(view)
		want := []string{"Firefox", "Files", "Terminal"}
		if len(got) != len(want) {
			t.Fatalf("%s: expected %v, got %v", name, want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("%s: expected %v, got %v", name, want, got)
			}
		}
	}
}

func TestRankExcludesNonMatches(t *testing.T) {
	cat := launcherCatalog(t)
	for _, name := range ScorerNames() {
		scorer, _ := ScorerByName(name)
		view := Rank(cat, "fi", scorer)
		if len(view) != 2 {
			t.Fatalf("%s: expected two matches, got %v", name, names(view))
		}
		for _, c := range view {
			if c.Name == "Terminal" {
				t.Fatalf("%s: expected Terminal excluded, got %v", name, names(view))
			}
		}
	}
}

func TestSkimTiesKeepCatalogOrder(t *testing.T) {
	view := Rank(launcherCatalog(t), "fi", Skim{})
	got := names(view)
	if got[0] != "Firefox" || got[1] != "Files" {
		t.Fatalf("expected [Firefox Files], got %v", got)
	}

	reversed := mustCatalog(t,
		catalog.Candidate{Name: "Files", Command: "nautilus"},
		catalog.Candidate{Name: "Firefox", Command: "firefox"},
	)
	got = names(Rank(reversed, "fi", Skim{}))
	if got[0] != "Files" || got[1] != "Firefox" {
		t.Fatalf("expected [Files Firefox], got %v", got)
	}
}

func TestRankStableForEqualScores(t *testing.T) {
	equal := ScorerFunc(func(query, name string) (int, bool) { return 7, true })
	cat := mustCatalog(t,
		catalog.Candidate{Name: "d", Command: "d"},
		catalog.Candidate{Name: "c", Command: "c"},
		catalog.Candidate{Name: "b", Command: "b"},
		catalog.Candidate{Name: "a", Command: "a"},
	)
	got := names(Rank(cat, "x", equal))
	want := []string{"d", "c", "b", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected catalog order %v, got %v", want, got)
		}
	}
}

func TestRankOrdersByScoreDescending(t *testing.T) {
	byLen := ScorerFunc(func(query, name string) (int, bool) { return len(name), true })
	cat := mustCatalog(t,
		catalog.Candidate{Name: "ab", Command: "1"},
		catalog.Candidate{Name: "abcd", Command: "2"},
		catalog.Candidate{Name: "abc", Command: "3"},
		catalog.Candidate{Name: "wxyz", Command: "4"},
	)
	got := names(Rank(cat, "q", byLen))
	want := []string{"abcd", "wxyz", "abc", "ab"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestDistancePrefersShorterNames(t *testing.T) {
	got := names(Rank(launcherCatalog(t), "fi", Distance{}))
	if got[0] != "Files" || got[1] != "Firefox" {
		t.Fatalf("expected [Files Firefox], got %v", got)
	}
}

func TestSkimPrefersWordStartsAndRuns(t *testing.T) {
	s := Skim{}
	start, ok := s.Score("term", "Terminal")
	if !ok {
		t.Fatal("expected match")
	}
	scattered, ok := s.Score("term", "The Extra Room Mode")
	if !ok {
		t.Fatal("expected scattered match")
	}
	if start <= scattered {
		t.Fatalf("expected contiguous prefix (%d) to beat scattered (%d)", start, scattered)
	}

	boundary, _ := s.Score("c", "Visual Code")
	inner, _ := s.Score("c", "Visual Dock")
	if boundary <= inner {
		t.Fatalf("expected boundary match (%d) to beat inner match (%d)", boundary, inner)
	}

	camel, _ := s.Score("o", "LibreOffice")
	plain, _ := s.Score("o", "Librewoffice")
	if camel <= plain {
		t.Fatalf("expected camel hump (%d) to beat plain (%d)", camel, plain)
	}
}

func TestSkimPicksBestAlignment(t *testing.T) {
	s := Skim{}
	// the first "g" is inside a word, the second starts one
	score, ok := s.Score("gi", "Logo GIMP")
	if !ok {
		t.Fatal("expected match")
	}
	greedy, _ := alignFrom(foldRunes("gi"), []rune("Logo GIMP"), foldRunes("Logo GIMP"), 2)
	if score <= greedy {
		t.Fatalf("expected best alignment (%d) above leftmost (%d)", score, greedy)
	}
}

func TestSkimCaseInsensitive(t *testing.T) {
	if _, ok := (Skim{}).Score("FIRE", "firefox"); !ok {
		t.Fatal("expected case-insensitive match")
	}
	if _, ok := (Skim{}).Score("xf", "firefox"); ok {
		t.Fatal("expected no match for out-of-order characters")
	}
}

func TestScorerByName(t *testing.T) {
	s, err := ScorerByName("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.(Skim); !ok {
		t.Fatalf("expected skim default, got %T", s)
	}
	if _, err := ScorerByName(" Distance "); err != nil {
		t.Fatalf("expected case-insensitive lookup, got %v", err)
	}
	if _, err := ScorerByName("nope"); err == nil {
		t.Fatal("expected error for unknown scorer")
	}
}

func TestMatchesCarryIndex(t *testing.T) {
	matches := Matches(launcherCatalog(t), "term", Skim{})
	if len(matches) != 1 || matches[0].Index != 2 {
		t.Fatalf("expected Terminal at catalog index 2, got %#v", matches)
	}
}
