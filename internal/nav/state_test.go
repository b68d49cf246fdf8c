package nav

import (
	"math"
	"testing"
)

func TestNewStateBrowsesFirstCandidate(t *testing.T) {
	s := NewState()
	if s.Query() != "" {
		t.Fatalf("expected empty query, got %q", s.Query())
	}
	if s.Focus().Position() != 1 {
		t.Fatalf("expected position 1, got %d", s.Focus().Position())
	}
	if _, ok := s.Saved(); ok {
		t.Fatal("expected no saved focus")
	}
}

func TestSetQueryResetsFocusAndSaved(t *testing.T) {
	s := NewState()
	s.MoveNext()
	s.FocusSearch()
	s.SetQuery("fi")
	if s.Query() != "fi" {
		t.Fatalf("expected query fi, got %q", s.Query())
	}
	if !s.Focus().IsEditing() {
		t.Fatalf("expected editing focus, got %v", s.Focus())
	}
	if _, ok := s.Saved(); ok {
		t.Fatal("expected saved focus cleared")
	}
}

func TestMoveNextAndPrev(t *testing.T) {
	s := NewState()
	s.MoveNext()
	if s.Focus().Position() != 2 {
		t.Fatalf("expected position 2, got %d", s.Focus().Position())
	}
	s.MovePrev()
	s.MovePrev()
	if !s.Focus().IsEditing() {
		t.Fatalf("expected editing focus, got %v", s.Focus())
	}
}

func TestMovePrevSaturatesAtQueryField(t *testing.T) {
	s := NewState()
	s.SetQuery("")
	for i := 0; i < 5; i++ {
		s.MovePrev()
		if s.Focus().Position() != 0 {
			t.Fatalf("expected position 0 after %d moves, got %d", i+1, s.Focus().Position())
		}
	}
}

func TestMoveNextSaturatesAtMaximum(t *testing.T) {
	f := Candidate(math.MaxInt)
	if f.Position() != math.MaxInt {
		t.Fatalf("expected clamped position MaxInt, got %d", f.Position())
	}
	for i := 0; i < 3; i++ {
		f = f.Next()
	}
	if f.Position() != math.MaxInt {
		t.Fatalf("expected saturated position, got %d", f.Position())
	}
}

func TestModeToggleRoundTrip(t *testing.T) {
	s := NewState()
	s.focus = FromPosition(3)
	s.FocusSearch()
	saved, ok := s.Saved()
	if !ok || saved.Position() != 3 {
		t.Fatalf("expected saved position 3, got %v (%v)", saved, ok)
	}
	if s.Focus().Position() != 0 {
		t.Fatalf("expected position 0, got %d", s.Focus().Position())
	}
	s.MoveNext()
	if s.Focus().Position() != 4 {
		t.Fatalf("expected position 4, got %d", s.Focus().Position())
	}
	if _, ok := s.Saved(); ok {
		t.Fatal("expected saved focus consumed")
	}
}

func TestMovePrevRestoresThenSteps(t *testing.T) {
	s := NewState()
	s.focus = FromPosition(3)
	s.FocusSearch()
	s.MovePrev()
	if s.Focus().Position() != 2 {
		t.Fatalf("expected position 2, got %d", s.Focus().Position())
	}
}

func TestFocusSearchAliasesShareTransition(t *testing.T) {
	km := DefaultKeymap()
	if km.Lookup("i") != FocusSearch || km.Lookup("/") != FocusSearch {
		t.Fatalf("expected i and / bound to focus-search, got %v/%v", km.Lookup("i"), km.Lookup("/"))
	}
	a, b := NewState(), NewState()
	a.Apply(km.Lookup("i"))
	b.Apply(km.Lookup("/"))
	if a != b {
		t.Fatalf("expected identical states, got %#v vs %#v", a, b)
	}
}

func TestApplyIgnoresConfirmAndNone(t *testing.T) {
	s := NewState()
	before := s
	if s.Apply(Confirm) || s.Apply(None) {
		t.Fatal("expected confirm and none not to be transitions")
	}
	if s != before {
		t.Fatalf("expected state unchanged, got %#v", s)
	}
}

func TestFocusPositionEncoding(t *testing.T) {
	if FromPosition(0) != EditingQuery || FromPosition(-4) != EditingQuery {
		t.Fatal("expected non-positive positions to map to the query field")
	}
	f := FromPosition(2)
	idx, ok := f.Index()
	if !ok || idx != 1 {
		t.Fatalf("expected index 1, got %d (%v)", idx, ok)
	}
	if _, ok := EditingQuery.Index(); ok {
		t.Fatal("expected editing focus to have no index")
	}
	if EditingQuery.String() != "query" || f.String() != "candidate[1]" {
		t.Fatalf("unexpected strings %q/%q", EditingQuery.String(), f.String())
	}
}
