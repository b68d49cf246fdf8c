package nav

// State is the per-session navigation state: the query, the focus, and the
// focus saved when jumping back to the query field.
type State struct {
	query    string
	focus    Focus
	saved    Focus
	hasSaved bool
}

// NewState starts browsing the top of the unfiltered list.
func NewState() State {
	return State{focus: Candidate(0)}
}

func (s State) Query() string { return s.query }

func (s State) Focus() Focus { return s.focus }

// Saved returns the focus remembered by FocusSearch, if any.
func (s State) Saved() (Focus, bool) {
	return s.saved, s.hasSaved
}

// SetQuery handles a text change: the query is replaced, any saved focus is
// dropped, and focus returns to the query field.
func (s *State) SetQuery(query string) {
	s.query = query
	s.clearSaved()
	s.focus = EditingQuery
}

// MoveNext restores a saved focus, then steps down from it.
func (s *State) MoveNext() {
	s.restoreSaved()
	s.focus = s.focus.Next()
}

// MovePrev restores a saved focus, then steps up from it.
func (s *State) MovePrev() {
	s.restoreSaved()
	s.focus = s.focus.Prev()
}

// FocusSearch remembers the current focus and moves to the query field.
func (s *State) FocusSearch() {
	s.saved = s.focus
	s.hasSaved = true
	s.focus = EditingQuery
}

// Apply runs the transition for a navigation action. Confirm and None leave
// the state alone; confirming is the session's job. It reports whether the
// action is a state transition.
func (s *State) Apply(action Action) bool {
	switch action {
	case MoveNext:
		s.MoveNext()
	case MovePrev:
		s.MovePrev()
	case FocusSearch:
		s.FocusSearch()
	default:
		return false
	}
	return true
}

func (s *State) restoreSaved() {
	if !s.hasSaved {
		return
	}
	s.focus = s.saved
	s.clearSaved()
}

func (s *State) clearSaved() {
	s.saved = Focus{}
	s.hasSaved = false
}
