// Package session owns the state of one launcher run: the catalog, the
// scorer, the navigation state and the launcher. All mutation goes through
// a single Session value driven by one event loop.
package session

import (
	"errors"

	"github.com/atomicstack/popup-launcher/internal/catalog"
	"github.com/atomicstack/popup-launcher/internal/launch"
	"github.com/atomicstack/popup-launcher/internal/logging/events"
	"github.com/atomicstack/popup-launcher/internal/nav"
	"github.com/atomicstack/popup-launcher/internal/rank"
)

// Outcome reports what handling an action did.
type Outcome struct {
	// Changed is true when the navigation state moved.
	Changed bool
	// Launched is set when Confirm dispatched a command.
	Launched *launch.Command
	// Err carries ErrNoSelection, ErrOutOfRange or a dispatch failure.
	Err error
	// Refocus is true when the query field should take input focus.
	Refocus bool
}

type Session struct {
	catalog  *catalog.Catalog
	scorer   rank.Scorer
	launcher *launch.Launcher
	state    nav.State
}

func New(cat *catalog.Catalog, scorer rank.Scorer, launcher *launch.Launcher) *Session {
	if cat == nil {
		cat = catalog.Empty()
	}
	if scorer == nil {
		scorer = rank.Skim{}
	}
	return &Session{
		catalog:  cat,
		scorer:   scorer,
		launcher: launcher,
		state:    nav.NewState(),
	}
}

func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

func (s *Session) State() nav.State { return s.state }

// View ranks the catalog against the live query.
func (s *Session) View() rank.View {
	return rank.Rank(s.catalog, s.state.Query(), s.scorer)
}

// SetQuery applies a text change.
func (s *Session) SetQuery(query string) {
	s.state.SetQuery(query)
	events.Query.Changed(query, len(s.View()))
}

// Focused returns the candidate under focus in the current view.
func (s *Session) Focused() (catalog.Candidate, bool) {
	view := s.View()
	idx, ok := s.state.Focus().Index()
	if !ok || idx >= len(view) {
		return catalog.Candidate{}, false
	}
	return view[idx], true
}

// Handle runs one key action against the session.
func (s *Session) Handle(action nav.Action) Outcome {
	var out Outcome
	switch action {
	case nav.Confirm:
		out = s.confirm()
	default:
		out.Changed = s.state.Apply(action)
		if out.Changed {
			saved := -1
			if f, ok := s.state.Saved(); ok {
				saved = f.Position()
			}
			events.Focus.Move(action.String(), s.state.Focus().Position(), saved)
		}
	}
	out.Refocus = s.state.Focus().IsEditing()
	return out
}

// confirm never mutates navigation state.
func (s *Session) confirm() Outcome {
	line, err := launch.Resolve(s.View(), s.state.Focus())
	if err != nil {
		if !errors.Is(err, launch.ErrNoSelection) {
			events.Launch.Error(err)
		}
		return Outcome{Err: err}
	}
	cmd, err := s.launcher.Dispatch(line)
	if err != nil {
		return Outcome{Err: err}
	}
	return Outcome{Launched: &cmd}
}
