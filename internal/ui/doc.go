// Package ui contains the Bubble Tea program that drives the launcher.
// The Model type focuses on message orchestration, while dedicated helpers
// own key handling, query input, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses are interpreted by mode. While the query field has focus,
//     printable keys edit the query and only non-printable bindings (enter,
//     arrows, tab) act on the list. While a row has focus, the keymap applies
//     and unbound keys are ignored.
//   - Confirming a row dispatches its command and reports back with a
//     launchResultMsg; clipboard copies report with a copiedMsg.
//
// State ownership:
//   - Query, focus, and saved focus live in session.Session, which also ranks
//     the catalog for every render. The text input mirrors the session query
//     and takes input focus whenever the session focus is on the query.
//   - Scrolling lives in internal/ui/state.Viewport.
package ui
