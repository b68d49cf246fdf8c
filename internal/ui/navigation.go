package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-launcher/internal/launch"
	"github.com/atomicstack/popup-launcher/internal/logging/events"
	"github.com/atomicstack/popup-launcher/internal/nav"
)

// launchResultMsg reports the outcome of a confirm.
type launchResultMsg struct {
	command *launch.Command
	err     error
}

// copiedMsg reports a clipboard copy.
type copiedMsg struct {
	command string
	err     error
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "esc":
		events.App.Exit(keyMsg.String())
		return tea.Quit
	case "ctrl+y":
		return m.copyFocused()
	}
	if m.Editing() {
		return m.handleEditingKey(keyMsg)
	}
	return m.handleBrowseKey(keyMsg)
}

// handleBrowseKey applies the keymap; unbound keys do nothing.
func (m *Model) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	action := m.keymap.Lookup(msg.String())
	if action == nav.None {
		return nil
	}
	return m.apply(action)
}

func (m *Model) apply(action nav.Action) tea.Cmd {
	out := m.session.Handle(action)
	if action == nav.Confirm {
		return m.confirmResult(out.Launched, out.Err)
	}
	if out.Changed {
		m.errMsg = ""
	}
	m.syncInputFocus()
	m.syncViewport()
	return nil
}

func (m *Model) confirmResult(cmd *launch.Command, err error) tea.Cmd {
	if errors.Is(err, launch.ErrNoSelection) {
		return nil
	}
	return func() tea.Msg {
		return launchResultMsg{command: cmd, err: err}
	}
}

func (m *Model) handleLaunchResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(launchResultMsg)
	if !ok {
		return nil
	}
	if result.err != nil {
		m.errMsg = result.err.Error()
		m.forceClearInfo()
		return nil
	}
	m.errMsg = ""
	if m.keepOpen {
		if result.command != nil {
			m.setInfo(fmt.Sprintf("Launched %s", result.command.Program))
		}
		return nil
	}
	events.App.Exit("launched")
	return tea.Quit
}

func (m *Model) copyFocused() tea.Cmd {
	candidate, ok := m.session.Focused()
	if !ok {
		return nil
	}
	copyFn := m.copy
	command := candidate.Command
	return func() tea.Msg {
		return copiedMsg{command: command, err: copyFn(command)}
	}
}

func (m *Model) handleCopiedMsg(msg tea.Msg) tea.Cmd {
	copied, ok := msg.(copiedMsg)
	if !ok {
		return nil
	}
	if copied.err != nil {
		m.errMsg = fmt.Sprintf("copy: %v", copied.err)
		m.forceClearInfo()
		return nil
	}
	events.Launch.Copy(copied.command)
	m.setInfo(fmt.Sprintf("Copied %s", copied.command))
	return nil
}
