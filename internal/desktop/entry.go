package desktop

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-shellwords"
)

var (
	ErrNoEntryGroup = errors.New("desktop: missing [Desktop Entry] group")
	ErrBadExec      = errors.New("desktop: unparsable Exec")
)

const entryGroup = "[Desktop Entry]"

// Entry holds the keys of a desktop file the launcher cares about.
type Entry struct {
	ID        string
	Path      string
	Type      string
	Name      string
	Exec      string
	Icon      string
	NoDisplay bool
	Hidden    bool
}

// Launchable reports whether the entry belongs in the catalog.
func (e Entry) Launchable() (bool, string) {
	switch {
	case e.Type != "" && e.Type != "Application":
		return false, "type " + e.Type
	case e.Hidden:
		return false, "hidden"
	case e.NoDisplay:
		return false, "nodisplay"
	case strings.TrimSpace(e.Name) == "":
		return false, "empty name"
	case strings.TrimSpace(e.Exec) == "":
		return false, "empty exec"
	}
	return true, ""
}

// ParseEntry reads the [Desktop Entry] group. Localised keys, comments and
// other groups are ignored.
func ParseEntry(r io.Reader) (Entry, error) {
	var (
		e     Entry
		in    bool
		found bool
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			in = line == entryGroup
			found = found || in
			continue
		}
		if !in {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "Type":
			e.Type = value
		case "Name":
			e.Name = value
		case "Exec":
			e.Exec = value
		case "Icon":
			e.Icon = value
		case "NoDisplay":
			e.NoDisplay = value == "true"
		case "Hidden":
			e.Hidden = value == "true"
		}
	}
	if err := sc.Err(); err != nil {
		return Entry{}, err
	}
	if !found {
		return Entry{}, ErrNoEntryGroup
	}
	return e, nil
}

// CleanExec drops field codes from an Exec value and re-joins the
// remaining arguments with single spaces.
func CleanExec(exec string) (string, error) {
	words, err := shellwords.Parse(exec)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadExec, err)
	}
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = stripFieldCodes(w); w != "" {
			out = append(out, w)
		}
	}
	return strings.Join(out, " "), nil
}

func stripFieldCodes(word string) string {
	if !strings.Contains(word, "%") {
		return word
	}
	var b strings.Builder
	runes := []rune(word)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '%' || i+1 == len(runes) {
			b.WriteRune(runes[i])
			continue
		}
		next := runes[i+1]
		i++
		switch {
		case next == '%':
			b.WriteRune('%')
		case strings.ContainsRune("fFuUdDnNickvm", next):
		default:
			b.WriteRune('%')
			b.WriteRune(next)
		}
	}
	return b.String()
}
