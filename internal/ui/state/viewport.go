// Package state holds presentation state that is independent of Bubble Tea.
package state

// Viewport tracks the first visible row of a scrolling list.
type Viewport struct {
	Offset int
}

// EnsureVisible adjusts the offset so the row at cursor stays visible.
// A negative cursor (no row focused) only clamps the offset; a cursor past
// the end scrolls to the bottom.
func (v *Viewport) EnsureVisible(cursor, total, maxVisible int) {
	if total <= 0 || maxVisible <= 0 {
		v.Offset = 0
		return
	}
	maxOffset := total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
	if cursor < 0 {
		return
	}
	if cursor >= total {
		cursor = total - 1
	}
	if cursor < v.Offset {
		v.Offset = cursor
	}
	if upper := v.Offset + maxVisible - 1; cursor > upper {
		v.Offset = cursor - maxVisible + 1
		if v.Offset > maxOffset {
			v.Offset = maxOffset
		}
	}
}

// Window returns the half-open row range to draw.
func (v Viewport) Window(total, maxVisible int) (int, int) {
	if total <= 0 {
		return 0, 0
	}
	if maxVisible <= 0 || maxVisible >= total {
		return 0, total
	}
	start := v.Offset
	if start < 0 {
		start = 0
	}
	if start+maxVisible > total {
		start = total - maxVisible
	}
	return start, start + maxVisible
}
