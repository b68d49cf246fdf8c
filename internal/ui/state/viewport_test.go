package state

import "testing"

func TestEnsureVisibleScrollsDown(t *testing.T) {
	var v Viewport
	v.EnsureVisible(4, 10, 3)
	if v.Offset != 2 {
		t.Fatalf("expected offset 2, got %d", v.Offset)
	}
	start, end := v.Window(10, 3)
	if start != 2 || end != 5 {
		t.Fatalf("expected window [2,5), got [%d,%d)", start, end)
	}
}

func TestEnsureVisibleScrollsUp(t *testing.T) {
	v := Viewport{Offset: 6}
	v.EnsureVisible(1, 10, 3)
	if v.Offset != 1 {
		t.Fatalf("expected offset 1, got %d", v.Offset)
	}
}

func TestEnsureVisibleKeepsOffsetWhenCursorShown(t *testing.T) {
	v := Viewport{Offset: 2}
	v.EnsureVisible(3, 10, 3)
	if v.Offset != 2 {
		t.Fatalf("expected offset unchanged, got %d", v.Offset)
	}
}

func TestEnsureVisibleCursorPastEnd(t *testing.T) {
	var v Viewport
	v.EnsureVisible(42, 5, 2)
	if v.Offset != 3 {
		t.Fatalf("expected bottom offset 3, got %d", v.Offset)
	}
}

func TestEnsureVisibleWithoutCursorClamps(t *testing.T) {
	v := Viewport{Offset: 8}
	v.EnsureVisible(-1, 4, 2)
	if v.Offset != 2 {
		t.Fatalf("expected clamped offset 2, got %d", v.Offset)
	}
	v.EnsureVisible(-1, 0, 2)
	if v.Offset != 0 {
		t.Fatalf("expected reset offset for empty list, got %d", v.Offset)
	}
}

func TestWindowUnlimited(t *testing.T) {
	v := Viewport{Offset: 3}
	start, end := v.Window(4, 0)
	if start != 0 || end != 4 {
		t.Fatalf("expected full window, got [%d,%d)", start, end)
	}
	start, end = v.Window(0, 5)
	if start != 0 || end != 0 {
		t.Fatalf("expected empty window, got [%d,%d)", start, end)
	}
}
