// Package launch turns the focused candidate into a process launch.
package launch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/popup-launcher/internal/nav"
	"github.com/atomicstack/popup-launcher/internal/rank"
)

var (
	// ErrNoSelection means the query field has focus. Confirming then is a
	// no-op, not a fault.
	ErrNoSelection = errors.New("no candidate selected")
	// ErrOutOfRange means focus points past the end of the ranked view.
	ErrOutOfRange   = errors.New("focused position is outside the ranked view")
	ErrEmptyCommand = errors.New("empty launch command")
	// ErrDispatch wraps failures reported by a Spawner.
	ErrDispatch = errors.New("launch dispatch failed")
)

// Command is a launch command split into program and arguments.
type Command struct {
	Line    string
	Program string
	Args    []string
}

func (c Command) String() string {
	return c.Line
}

// Resolve returns the launch command of the candidate focused in view.
func Resolve(view rank.View, focus nav.Focus) (string, error) {
	idx, ok := focus.Index()
	if !ok {
		return "", ErrNoSelection
	}
	if idx >= len(view) {
		return "", fmt.Errorf("%w: position %d, %d candidates", ErrOutOfRange, focus.Position(), len(view))
	}
	return view[idx].Command, nil
}

// Split breaks a command line on whitespace. Quotes carry no meaning here;
// the first field is the program and the rest are passed through verbatim.
func Split(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrEmptyCommand
	}
	return Command{Line: line, Program: fields[0], Args: fields[1:]}, nil
}
