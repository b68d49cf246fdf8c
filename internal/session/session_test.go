package session

import (
	"errors"
	"testing"

	"github.com/atomicstack/popup-launcher/internal/catalog"
	"github.com/atomicstack/popup-launcher/internal/launch"
	"github.com/atomicstack/popup-launcher/internal/nav"
	"github.com/atomicstack/popup-launcher/internal/rank"
	"github.com/atomicstack/popup-launcher/internal/testutil"
)

func newTestSession(t *testing.T, spawner launch.Spawner) *Session {
	t.Helper()
	return New(testutil.LauncherCatalog(t), rank.Skim{}, launch.NewLauncher(spawner))
}

func TestEndToEndLaunchSecondMatch(t *testing.T) {
	rec := &testutil.Spawner{}
	s := newTestSession(t, rec)

	s.SetQuery("fi")
	view := s.View()
	if len(view) != 2 || view[0].Name != "Firefox" || view[1].Name != "Files" {
		t.Fatalf("expected [Firefox Files], got %#v", view)
	}

	// text change leaves the query field focused; step onto the list
	s.Handle(nav.MoveNext)
	if got := s.State().Focus().Position(); got != 1 {
		t.Fatalf("expected position 1, got %d", got)
	}
	s.Handle(nav.MoveNext)
	if got := s.State().Focus().Position(); got != 2 {
		t.Fatalf("expected position 2, got %d", got)
	}

	out := s.Handle(nav.Confirm)
	if out.Err != nil {
		t.Fatalf("unexpected error: %v", out.Err)
	}
	if out.Launched == nil || out.Launched.Program != "nautilus" {
		t.Fatalf("expected nautilus launch, got %#v", out.Launched)
	}
	calls := rec.Calls()
	if len(calls) != 1 || calls[0].Program != "nautilus" || len(calls[0].Args) != 0 {
		t.Fatalf("expected one spawn of nautilus with no args, got %#v", calls)
	}
	if out.Refocus {
		t.Fatal("expected no refocus while a candidate is focused")
	}
}

func TestMoveNextFromInitialFocus(t *testing.T) {
	rec := &testutil.Spawner{}
	s := newTestSession(t, rec)
	s.Handle(nav.MoveNext)
	out := s.Handle(nav.Confirm)
	if out.Launched == nil || out.Launched.Program != "nautilus" {
		t.Fatalf("expected second catalog entry launched, got %#v (%v)", out.Launched, out.Err)
	}
}

func TestConfirmOutOfRangeLeavesStateUnchanged(t *testing.T) {
	rec := &testutil.Spawner{}
	s := newTestSession(t, rec)
	s.SetQuery("fi")
	for i := 0; i < 5; i++ {
		s.Handle(nav.MoveNext)
	}
	before := s.State()
	if before.Focus().Position() != 5 {
		t.Fatalf("expected position 5, got %d", before.Focus().Position())
	}

	out := s.Handle(nav.Confirm)
	if !errors.Is(out.Err, launch.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", out.Err)
	}
	if out.Launched != nil || len(rec.Calls()) != 0 {
		t.Fatal("expected nothing launched")
	}
	if s.State() != before {
		t.Fatalf("expected state unchanged, got %#v", s.State())
	}
}

func TestConfirmWhileEditingIsNoSelection(t *testing.T) {
	rec := &testutil.Spawner{}
	s := newTestSession(t, rec)
	s.SetQuery("term")
	out := s.Handle(nav.Confirm)
	if !errors.Is(out.Err, launch.ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", out.Err)
	}
	if !out.Refocus {
		t.Fatal("expected refocus of the query field")
	}
	if len(rec.Calls()) != 0 {
		t.Fatal("expected nothing launched")
	}
}

func TestConfirmOnEmptyView(t *testing.T) {
	s := New(catalog.Empty(), nil, launch.NewLauncher(&testutil.Spawner{}))
	out := s.Handle(nav.Confirm)
	if !errors.Is(out.Err, launch.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange on empty catalog, got %v", out.Err)
	}
}

func TestConfirmReportsDispatchFailure(t *testing.T) {
	rec := &testutil.Spawner{Err: errors.New("no such file")}
	s := newTestSession(t, rec)
	out := s.Handle(nav.Confirm)
	if !errors.Is(out.Err, launch.ErrDispatch) {
		t.Fatalf("expected ErrDispatch, got %v", out.Err)
	}
	if s.State().Focus().Position() != 1 {
		t.Fatalf("expected focus unchanged, got %d", s.State().Focus().Position())
	}
}

func TestQueryEditAfterBrowsingBeyondView(t *testing.T) {
	s := newTestSession(t, &testutil.Spawner{})
	s.Handle(nav.MoveNext)
	s.Handle(nav.MoveNext)
	if _, ok := s.Focused(); !ok {
		t.Fatal("expected Terminal focused at position 3")
	}
	s.Handle(nav.FocusSearch)
	s.SetQuery("term")
	if !s.State().Focus().IsEditing() {
		t.Fatal("expected text change to focus the query field")
	}
	s.Handle(nav.MoveNext)
	c, ok := s.Focused()
	if !ok || c.Name != "Terminal" {
		t.Fatalf("expected Terminal focused, got %#v (%v)", c, ok)
	}
	s.Handle(nav.MoveNext)
	if _, ok := s.Focused(); ok {
		t.Fatal("expected no focused candidate past the end of the view")
	}
}

func TestRefocusFollowsFocus(t *testing.T) {
	s := newTestSession(t, &testutil.Spawner{})
	if out := s.Handle(nav.FocusSearch); !out.Refocus || !out.Changed {
		t.Fatalf("expected refocus after focus-search, got %#v", out)
	}
	if out := s.Handle(nav.MoveNext); out.Refocus {
		t.Fatalf("expected no refocus after move-next, got %#v", out)
	}
	if out := s.Handle(nav.None); out.Changed {
		t.Fatalf("expected no change for unbound key, got %#v", out)
	}
}

func TestSetQueryUnchangedTextKeepsState(t *testing.T) {
	s := newTestSession(t, &testutil.Spawner{})
	s.SetQuery("fi")
	s.SetQuery("fi")
	if !s.State().Focus().IsEditing() || s.State().Query() != "fi" {
		t.Fatalf("unexpected state %#v", s.State())
	}
}
