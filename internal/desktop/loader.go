// Package desktop builds the launcher catalog from XDG desktop entries.
package desktop

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/atomicstack/popup-launcher/internal/catalog"
	"github.com/atomicstack/popup-launcher/internal/logging/events"
)

// IconResolver maps an Icon key to a file reference.
type IconResolver interface {
	Resolve(name string) catalog.IconRef
}

// DataDirs lists the applications directories in XDG precedence order.
func DataDirs(getenv func(string) string) []string {
	if getenv == nil {
		getenv = os.Getenv
	}
	var roots []string
	if home := getenv("XDG_DATA_HOME"); home != "" {
		roots = append(roots, home)
	} else if h := getenv("HOME"); h != "" {
		roots = append(roots, filepath.Join(h, ".local", "share"))
	}
	dirs := getenv("XDG_DATA_DIRS")
	if dirs == "" {
		dirs = "/usr/local/share:/usr/share"
	}
	roots = append(roots, filepath.SplitList(dirs)...)

	seen := make(map[string]struct{}, len(roots))
	out := make([]string, 0, len(roots))
	for _, root := range roots {
		if root == "" {
			continue
		}
		dir := filepath.Join(root, "applications")
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		out = append(out, dir)
	}
	return out
}

type Loader struct {
	Dirs  []string
	Icons IconResolver
}

// Load scans every directory and returns the catalog sorted by name.
// Entries that cannot be read or parsed are skipped; of entries sharing a
// command, the first one found wins.
func (l Loader) Load(ctx context.Context) (*catalog.Catalog, error) {
	seen := map[string]struct{}{}
	var entries []Entry
	for _, dir := range l.Dirs {
		found, err := scanDir(ctx, dir, seen)
		if err != nil {
			return nil, err
		}
		entries = append(entries, found...)
	}

	candidates := make([]catalog.Candidate, 0, len(entries))
	for _, e := range entries {
		if ok, reason := e.Launchable(); !ok {
			events.Catalog.Skip(e.Path, reason)
			continue
		}
		cmd, err := CleanExec(e.Exec)
		if err != nil || cmd == "" {
			events.Catalog.Skip(e.Path, "exec")
			continue
		}
		c := catalog.Candidate{Name: e.Name, Command: cmd}
		if l.Icons != nil {
			c.Icon = l.Icons.Resolve(e.Icon)
		}
		candidates = append(candidates, c)
	}

	// earlier dirs win duplicate commands
	candidates = catalog.Dedup(candidates)
	sort.SliceStable(candidates, func(i, j int) bool {
		return strings.ToLower(candidates[i].Name) < strings.ToLower(candidates[j].Name)
	})
	events.Catalog.Loaded(len(candidates), l.Dirs)
	return catalog.New(candidates)
}

// scanDir reads desktop files under dir whose ID has not been seen in an
// earlier directory.
func scanDir(ctx context.Context, dir string, seen map[string]struct{}) ([]Entry, error) {
	var out []Entry
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == dir {
				return filepath.SkipDir
			}
			events.Catalog.Skip(path, err.Error())
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(path, ".desktop") {
			return nil
		}
		id := fileID(dir, path)
		if _, ok := seen[id]; ok {
			return nil
		}
		seen[id] = struct{}{}

		e, err := readEntry(path)
		if err != nil {
			events.Catalog.Skip(path, err.Error())
			return nil
		}
		e.ID = id
		out = append(out, e)
		return nil
	})
	return out, err
}

func readEntry(path string) (Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return Entry{}, err
	}
	defer f.Close()
	e, err := ParseEntry(f)
	if err != nil {
		return Entry{}, err
	}
	e.Path = path
	return e, nil
}

func fileID(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	return strings.ReplaceAll(filepath.ToSlash(rel), "/", "-")
}
