package ui

import (
	"reflect"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-launcher/internal/nav"
	"github.com/atomicstack/popup-launcher/internal/session"
	"github.com/atomicstack/popup-launcher/internal/theme"
	uistate "github.com/atomicstack/popup-launcher/internal/ui/state"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options carries presentation settings for a Model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	KeepOpen   bool
	Keymap     nav.Keymap
	// Copy writes text to the system clipboard.
	Copy func(string) error
}

// Model implements the Bubble Tea model for the launcher.
type Model struct {
	session     *session.Session
	keymap      nav.Keymap
	query       textinput.Model
	help        help.Model
	viewport    uistate.Viewport
	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	keepOpen    bool
	copy        func(string) error

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps a session. A non-empty session query is mirrored into the
// query field.
func NewModel(sess *session.Session, opts Options) *Model {
	keymap := opts.Keymap
	if keymap == nil {
		keymap = nav.DefaultKeymap()
	}
	copyFn := opts.Copy
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	m := &Model{
		session:    sess,
		keymap:     keymap,
		query:      newQueryInput(),
		help:       newHelp(),
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		keepOpen:   opts.KeepOpen,
		copy:       copyFn,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.query.SetValue(sess.State().Query())
	m.syncInputFocus()
	m.syncViewport()
	m.registerHandlers()
	return m
}

func newQueryInput() textinput.Model {
	in := textinput.New()
	in.Prompt = "» "
	in.Placeholder = "(press i or / to search)"
	if styles.FilterPrompt != nil {
		in.PromptStyle = styles.FilterPrompt.Copy()
	}
	if styles.Filter != nil {
		in.TextStyle = styles.Filter.Copy()
	}
	if styles.FilterPlaceholder != nil {
		in.PlaceholderStyle = styles.FilterPlaceholder.Copy()
	}
	if styles.Cursor != nil {
		in.Cursor.Style = styles.Cursor.Copy()
	}
	in.Cursor.SetMode(cursor.CursorStatic)
	return in
}

func newHelp() help.Model {
	h := help.New()
	h.ShortSeparator = "  "
	if styles.Footer != nil {
		h.Styles.ShortKey = styles.Footer.Copy().Bold(true)
		h.Styles.ShortDesc = styles.Footer.Copy()
		h.Styles.ShortSeparator = styles.Footer.Copy()
		h.Styles.Ellipsis = styles.Footer.Copy()
	}
	return h
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(launchResultMsg{}):   m.handleLaunchResultMsg,
		reflect.TypeOf(copiedMsg{}):         m.handleCopiedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Session exposes the wrapped session.
func (m *Model) Session() *session.Session {
	return m.session
}

// Editing reports whether key presses currently go to the query field.
func (m *Model) Editing() bool {
	return m.session.State().Focus().IsEditing()
}

func (m *Model) syncInputFocus() {
	if m.Editing() {
		m.query.Focus()
		return
	}
	m.query.Blur()
}
