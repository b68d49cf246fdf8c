package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/popup-launcher/internal/catalog"
	"github.com/atomicstack/popup-launcher/internal/nav"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	view := m.session.View()
	lines := make([]styledLine, 0, 16)
	lines = append(lines, m.headerLine(len(view)))

	m.syncViewport()
	if len(view) == 0 {
		msg := "(no applications)"
		if q := m.session.State().Query(); q != "" {
			msg = fmt.Sprintf("No matches for %q", q)
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
	} else {
		focused, hasFocus := m.session.State().Focus().Index()
		start, end := m.viewport.Window(len(view), m.maxVisibleItems())
		for idx := start; idx < end; idx++ {
			lines = append(lines, buildItemLine(view[idx].Name, hasFocus && idx == focused, m.width))
		}
	}
	if detail := m.detailText(); detail != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: detail, style: styles.Detail})
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.footerText(), raw: true})
	}
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	// Bottom bar: error/status line + query prompt.
	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	bottomLines := []styledLine{
		statusLine,
		{text: m.query.View(), raw: true},
	}
	bottomLines = applyWidth(bottomLines, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

func (m *Model) headerLine(matches int) styledLine {
	mode := "browse"
	if m.Editing() {
		mode = "search"
	}
	count := fmt.Sprintf("%d/%d", matches, m.session.Catalog().Len())
	if pos := m.session.State().Focus().Position(); pos > 0 {
		count = fmt.Sprintf("%s  #%d", count, pos)
	}
	text := fmt.Sprintf("[%s] %s", mode, count)
	return styledLine{
		text:          text,
		style:         styles.Header,
		prefixStyle:   styles.Mode,
		highlightFrom: len([]rune(mode)) + 2,
	}
}

// buildItemLine constructs a single styledLine for a list row. When width is
// positive the text is padded so the focused row's background spans the
// full container.
func buildItemLine(label string, focused bool, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if focused {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := indicator + " " + label
	if width > 0 {
		if pad := width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

// detailText describes the focused row when verbose output is enabled.
func (m *Model) detailText() string {
	if !m.verbose {
		return ""
	}
	candidate, ok := m.session.Focused()
	if !ok {
		return ""
	}
	return describe(candidate)
}

func describe(c catalog.Candidate) string {
	if c.Icon.Path() == "" {
		return c.Command
	}
	return fmt.Sprintf("%s  (%s)", c.Command, c.Icon)
}

func (m *Model) footerText() string {
	m.help.Width = m.width
	return m.help.ShortHelpView(helpBindings(m.keymap))
}

// helpBindings projects the keymap into help bindings. Actions without a
// key stay disabled and are left out of the footer.
func helpBindings(keymap nav.Keymap) []key.Binding {
	return []key.Binding{
		actionBinding(keymap, nav.MoveNext, "down"),
		actionBinding(keymap, nav.MovePrev, "up"),
		actionBinding(keymap, nav.FocusSearch, "search"),
		actionBinding(keymap, nav.Confirm, "launch"),
		key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
		key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func actionBinding(keymap nav.Keymap, action nav.Action, desc string) key.Binding {
	keys := keymap.Keys(action)
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.query.Width = m.promptWidth()
	m.syncViewport()
	return nil
}

func (m *Model) promptWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := m.width - lipgloss.Width(m.query.Prompt) - 1
	if w < 1 {
		return 1
	}
	return w
}

// syncViewport keeps the focused row on screen for the current view.
func (m *Model) syncViewport() {
	total := len(m.session.View())
	idx, ok := m.session.State().Focus().Index()
	if !ok {
		idx = -1
	}
	m.viewport.EnsureVisible(idx, total, m.maxVisibleItems())
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 3 // header + bottom bar: error/status + query prompt
	if m.detailText() != "" {
		used += 2
	}
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if w := lipgloss.Width(text); w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
