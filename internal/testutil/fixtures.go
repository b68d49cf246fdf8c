// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/atomicstack/popup-launcher/internal/catalog"
)

// Call is one recorded Spawn.
type Call struct {
	Program string
	Args    []string
}

// Spawner records launches instead of starting processes.
type Spawner struct {
	Err error

	mu    sync.Mutex
	calls []Call
}

func (s *Spawner) Spawn(program string, args []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, Call{Program: program, Args: append([]string(nil), args...)})
	return s.Err
}

// Calls returns a copy of the recorded launches.
func (s *Spawner) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// Programs lists the launched program names in order.
func (s *Spawner) Programs() []string {
	calls := s.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.Program
	}
	return out
}

// LauncherCatalog is the three-entry catalog used across the UI and session
// tests: Firefox, Files (nautilus) and Terminal (alacritty).
func LauncherCatalog(t testing.TB) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Candidate{
		{Name: "Firefox", Command: "firefox", Icon: catalog.VectorPath("/icons/firefox.svg")},
		{Name: "Files", Command: "nautilus"},
		{Name: "Terminal", Command: "alacritty"},
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return cat
}

// DesktopEntry renders an Application desktop file body.
func DesktopEntry(name, exec string, extra ...string) string {
	lines := []string{"[Desktop Entry]", "Type=Application", "Name=" + name, "Exec=" + exec}
	lines = append(lines, extra...)
	return strings.Join(lines, "\n") + "\n"
}

// WriteFile writes body to dir/rel, creating parent directories.
func WriteFile(t testing.TB, dir, rel, body string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// Env turns a map into a getenv function.
func Env(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}
