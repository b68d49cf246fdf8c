package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-launcher/internal/nav"
)

// editingKeys are list bindings that stay live while the query field has
// focus, on top of the keymap's non-printable keys.
var editingKeys = map[string]nav.Action{
	"tab":       nav.MoveNext,
	"ctrl+n":    nav.MoveNext,
	"shift+tab": nav.MovePrev,
	"ctrl+p":    nav.MovePrev,
}

func (m *Model) handleEditingKey(msg tea.KeyMsg) tea.Cmd {
	if !isTextKey(msg) {
		action := m.keymap.Lookup(msg.String())
		if action == nav.None {
			action = editingKeys[msg.String()]
		}
		if action != nav.None {
			return m.apply(action)
		}
	}
	return m.updateQuery(msg)
}

// updateQuery forwards a key to the text input and reports a text change to
// the session when the value moved.
func (m *Model) updateQuery(msg tea.KeyMsg) tea.Cmd {
	before := m.query.Value()
	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	if after := m.query.Value(); after != before {
		m.session.SetQuery(after)
		m.errMsg = ""
		m.forceClearInfo()
		m.syncInputFocus()
		m.syncViewport()
	}
	return cmd
}

func isTextKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		return true
	}
	return false
}
